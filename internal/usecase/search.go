package usecase

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vitrine/frontend/internal/domain"
)

const (
	// DefaultTriggerLabel is the search trigger text before any selection
	DefaultTriggerLabel = "o que você deseja buscar?"
	// SearchResultsHeader heads free-text results
	SearchResultsHeader = "resultados da busca"
	// EmptyStateMessage is shown when nothing matches
	EmptyStateMessage = "nenhum produto encontrado"
)

// SearchPage holds the state of the product search view
type SearchPage struct {
	catalog    domain.CatalogReader
	categories []domain.Category
	products   []domain.Product

	DropdownOpen     bool
	TriggerLabel     string
	TriggerVisible   bool
	SelectedCategory string
	Query            string
	ProductsVisible  bool
	ResultsHeader    string
	Results          []domain.Product
}

// NewSearchPage creates a search page in its reset state
func NewSearchPage(catalog domain.CatalogReader) *SearchPage {
	p := &SearchPage{
		catalog:    catalog,
		categories: []domain.Category{},
		products:   []domain.Product{},
	}
	p.Reset()
	return p
}

// Init loads categories and products concurrently. Failures leave the
// corresponding list empty and never fail the page.
func (p *SearchPage) Init(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		if err := p.LoadCategories(ctx); err != nil {
			log.WithError(err).Warn("Search page continues without categories")
		}
		return nil
	})
	g.Go(func() error {
		if err := p.LoadProducts(ctx); err != nil {
			log.WithError(err).Warn("Search page continues without products")
		}
		return nil
	})
	_ = g.Wait()
}

// LoadCategories fetches the category list for the dropdown
func (p *SearchPage) LoadCategories(ctx context.Context) error {
	categories, err := p.catalog.Categories(ctx)
	if err != nil {
		p.categories = []domain.Category{}
		return err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	p.categories = categories
	return nil
}

// LoadProducts fetches the full product list used for local filtering
func (p *SearchPage) LoadProducts(ctx context.Context) error {
	products, err := p.catalog.Products(ctx)
	if err != nil {
		p.products = []domain.Product{}
		return err
	}
	if products == nil {
		products = []domain.Product{}
	}
	p.products = products
	return nil
}

// Categories returns the loaded categories
func (p *SearchPage) Categories() []domain.Category {
	return p.categories
}

// Products returns the loaded product list
func (p *SearchPage) Products() []domain.Product {
	return p.products
}

// ToggleCategoryDropdown shows or hides the category list
func (p *SearchPage) ToggleCategoryDropdown() {
	p.DropdownOpen = !p.DropdownOpen
}

// CloseDropdown hides the category list
func (p *SearchPage) CloseDropdown() {
	p.DropdownOpen = false
}

// SelectCategory shows the products of the named category.
// The category endpoint is used when the name resolves to an ID; otherwise,
// or when that request fails, the loaded products are filtered by category name.
func (p *SearchPage) SelectCategory(ctx context.Context, name string) {
	p.CloseDropdown()
	p.SelectedCategory = name
	p.TriggerLabel = name
	p.TriggerVisible = false
	p.Query = ""

	p.showResults(name, p.productsInCategory(ctx, name))
}

func (p *SearchPage) productsInCategory(ctx context.Context, name string) []domain.Product {
	category, err := p.resolveCategory(name)
	if err != nil {
		log.WithError(err).WithField("category", name).Debug("Filtering products locally")
		return p.filterByCategoryName(name)
	}

	products, err := p.catalog.ProductsByCategory(ctx, category.ID)
	if err != nil {
		log.WithError(err).WithField("category", name).Warn("Category fetch failed, filtering locally")
		return p.filterByCategoryName(name)
	}
	return products
}

// resolveCategory finds a loaded category by name, preferring an exact match
func (p *SearchPage) resolveCategory(name string) (domain.Category, error) {
	for _, c := range p.categories {
		if c.Name == name {
			return c, nil
		}
	}
	for _, c := range p.categories {
		if equalFolded(c.Name, name) {
			return c, nil
		}
	}
	return domain.Category{}, domain.ErrCategoryNotFound
}

func (p *SearchPage) filterByCategoryName(name string) []domain.Product {
	matches := make([]domain.Product, 0)
	for _, product := range p.products {
		if equalFolded(product.CategoryName, name) {
			matches = append(matches, product)
		}
	}
	return matches
}

// FilterProducts shows the loaded products whose name contains query,
// ignoring case and accents. A blank query resets the page.
func (p *SearchPage) FilterProducts(query string) {
	query = NormalizeQuery(query)
	if query == "" {
		p.Reset()
		return
	}

	matches := make([]domain.Product, 0)
	for _, product := range p.products {
		if containsFolded(product.Name, query) {
			matches = append(matches, product)
		}
	}

	p.CloseDropdown()
	p.Query = query
	p.showResults(SearchResultsHeader, matches)
}

// Reset restores the initial view: default trigger shown, results hidden
func (p *SearchPage) Reset() {
	p.DropdownOpen = false
	p.TriggerLabel = DefaultTriggerLabel
	p.TriggerVisible = true
	p.SelectedCategory = ""
	p.Query = ""
	p.ProductsVisible = false
	p.ResultsHeader = ""
	p.Results = nil
}

// IsEmpty reports whether results are shown but nothing matched
func (p *SearchPage) IsEmpty() bool {
	return p.ProductsVisible && len(p.Results) == 0
}

func (p *SearchPage) showResults(header string, products []domain.Product) {
	if products == nil {
		products = []domain.Product{}
	}
	p.ResultsHeader = header
	p.Results = products
	p.ProductsVisible = true
}
