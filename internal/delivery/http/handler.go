package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/vitrine/frontend/internal/domain"
	"github.com/vitrine/frontend/internal/usecase"
)

// HandlerConfig holds presentation settings for the handlers
type HandlerConfig struct {
	TransitionDelay time.Duration
	Layout          usecase.LayoutConfig
	MenuItems       []usecase.MenuItem
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog         domain.CatalogReader
	transitionDelay time.Duration
	layout          usecase.LayoutConfig
	menuItems       []usecase.MenuItem
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog domain.CatalogReader, config HandlerConfig) *Handler {
	menuItems := config.MenuItems
	if len(menuItems) == 0 {
		menuItems = usecase.DefaultMenuItems()
	}
	return &Handler{
		catalog:         catalog,
		transitionDelay: config.TransitionDelay,
		layout:          config.Layout,
		menuItems:       menuItems,
	}
}

// pageData is what every page template receives
type pageData struct {
	Title      string
	Menu       []usecase.MenuItem
	Refresh    string
	Transition bool
	Body       any
}

type homeView struct {
	CategoryCount int
	ProductCount  int
	Categories    []domain.Category
}

type treeView struct {
	*usecase.TreeView
	Bounds usecase.Box
}

type searchView struct {
	DropdownOpen    bool
	TriggerVisible  bool
	TriggerLabel    string
	ToggleURL       string
	Query           string
	Categories      []domain.Category
	ProductsVisible bool
	Empty           bool
	EmptyMessage    string
	Header          string
	Results         []domain.Product
}

type transitionView struct {
	Target string
	Label  string
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "vitrine",
		"version": "1.0.0",
	})
}

// Home renders the landing page with a catalog summary
func (h *Handler) Home(c *gin.Context) {
	page := usecase.NewSearchPage(h.catalog)
	page.Init(c.Request.Context())

	view := homeView{
		CategoryCount: len(page.Categories()),
		ProductCount:  len(page.Products()),
		Categories:    page.Categories(),
	}
	h.render(c, "home", "início", view)
}

// Tree renders the category tree. Expanded node IDs come from repeated open
// parameters; ?toggle= flips one more node on top of them.
func (h *Handler) Tree(c *gin.Context) {
	visualizer := h.newVisualizer(c)

	var view *usecase.TreeView
	if id := c.Query(usecase.ToggleParam); id != "" {
		view = visualizer.Toggle(id)
	} else {
		view = visualizer.Render()
	}

	h.render(c, "tree", "categorias", treeView{
		TreeView: view,
		Bounds:   usecase.Box{Width: view.Width, Height: view.Height},
	})
}

// TreeJSON returns the normalized tree, or the subtree of ?node= when given
func (h *Handler) TreeJSON(c *gin.Context) {
	visualizer := h.newVisualizer(c)
	root := visualizer.Root()

	if id := c.Query("node"); id != "" {
		node := usecase.FindNode(root, id)
		if node == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error()})
			return
		}
		root = node
	}
	c.JSON(http.StatusOK, root)
}

// Recommendations returns the products of the ?node= category and of every category below it
func (h *Handler) Recommendations(c *gin.Context) {
	id := c.Query("node")
	if id == "" {
		_ = c.Error(domain.ErrInvalidRequest)
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	root := h.newVisualizer(c).Root()
	if usecase.FindNode(root, id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrCategoryNotFound.Error()})
		return
	}

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		log.WithError(err).WithField("node", id).Error("Failed to load products for recommendation")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": domain.ErrCatalogUnavailable.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"node":     id,
		"products": usecase.Recommend(root, id, products),
	})
}

func (h *Handler) newVisualizer(c *gin.Context) *usecase.TreeVisualizer {
	expanded := usecase.ParseExpansionState(c.Request.URL.Query())
	visualizer := usecase.NewTreeVisualizer(h.catalog, expanded, h.layout)
	visualizer.Load(c.Request.Context())
	return visualizer
}

// Search renders the product search page.
// ?categoria= selects a category, ?q= filters by name, ?aberto=1 opens the dropdown;
// with no parameters the page is in its reset state.
func (h *Handler) Search(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	page := usecase.NewSearchPage(h.catalog)
	page.Init(c.Request.Context())
	applySearchParams(c.Request.Context(), page, c)

	h.render(c, "search", "buscar", newSearchView(page))
}

func applySearchParams(ctx context.Context, page *usecase.SearchPage, c *gin.Context) {
	if category := c.Query("categoria"); category != "" {
		page.SelectCategory(ctx, category)
		return
	}
	if query, ok := c.GetQuery("q"); ok {
		page.FilterProducts(query)
	}
	if c.Query("aberto") == "1" {
		page.ToggleCategoryDropdown()
	}
}

func newSearchView(page *usecase.SearchPage) searchView {
	toggleURL := "/buscar?aberto=1"
	if page.DropdownOpen {
		toggleURL = "/buscar"
	}
	return searchView{
		DropdownOpen:    page.DropdownOpen,
		TriggerVisible:  page.TriggerVisible,
		TriggerLabel:    page.TriggerLabel,
		ToggleURL:       toggleURL,
		Query:           page.Query,
		Categories:      page.Categories(),
		ProductsVisible: page.ProductsVisible,
		Empty:           page.IsEmpty(),
		EmptyMessage:    usecase.EmptyStateMessage,
		Header:          page.ResultsHeader,
		Results:         page.Results,
	}
}

// Navigate renders the menu transition to ?para= and refreshes to it after the delay
func (h *Handler) Navigate(c *gin.Context) {
	target, ok := c.GetQuery("para")
	if !ok || target == "" {
		_ = c.Error(domain.ErrInvalidRequest)
		c.String(http.StatusBadRequest, "destino ausente")
		return
	}

	menu := usecase.NewMenu(h.menuItems, h.transitionDelay)
	menu.Build(c.Request.URL.Path)

	nav, err := menu.Click(target)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownDestination) {
			log.WithField("para", target).Warn("Rejected navigation target")
			c.String(http.StatusBadRequest, "destino desconhecido")
			return
		}
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	label := nav.Target
	for _, item := range menu.Items() {
		if item.Active {
			label = item.Label
		}
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "transition", pageData{
		Title:      label,
		Menu:       menu.Items(),
		Refresh:    strconv.FormatFloat(nav.Delay.Seconds(), 'f', -1, 64) + ";url=" + nav.Target,
		Transition: true,
		Body:       transitionView{Target: nav.Target, Label: label},
	})
}

// render writes a page with the menu built for the current path
func (h *Handler) render(c *gin.Context, name, title string, body any) {
	menu := usecase.NewMenu(h.menuItems, h.transitionDelay)
	menu.Build(c.Request.URL.Path)

	c.HTML(http.StatusOK, name, pageData{
		Title: title,
		Menu:  menu.Items(),
		Body:  body,
	})
}
