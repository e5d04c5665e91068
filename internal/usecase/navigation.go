package usecase

import (
	"strings"
	"time"

	"github.com/vitrine/frontend/internal/domain"
)

// DefaultTransitionDelay is the pause between a menu click and navigation
const DefaultTransitionDelay = 200 * time.Millisecond

// MenuItem is one entry of the navigation menu.
// Page, when set, also matches paths under /{Page}.
type MenuItem struct {
	Label  string
	Href   string
	Page   string
	Active bool
}

// DefaultMenuItems returns the site menu
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Início", Href: "/"},
		{Label: "Categorias", Href: "/arvore", Page: "arvore"},
		{Label: "Buscar", Href: "/buscar", Page: "buscar"},
	}
}

// Navigation is a pending page change
type Navigation struct {
	Target string
	Delay  time.Duration
}

// Menu tracks which entry is active
type Menu struct {
	items []MenuItem
	delay time.Duration
}

// NewMenu creates a menu over a copy of items
func NewMenu(items []MenuItem, delay time.Duration) *Menu {
	if delay < 0 {
		delay = DefaultTransitionDelay
	}
	copied := make([]MenuItem, len(items))
	copy(copied, items)
	return &Menu{items: copied, delay: delay}
}

// Items returns the menu entries
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Build marks the entries matching path active
func (m *Menu) Build(path string) {
	for i := range m.items {
		m.items[i].Active = m.items[i].matches(path)
	}
}

// Click activates the entry with href and returns the navigation to perform.
// Hrefs that are not in the menu are rejected.
func (m *Menu) Click(href string) (Navigation, error) {
	index := -1
	for i, item := range m.items {
		if item.Href == href {
			index = i
			break
		}
	}
	if index < 0 {
		return Navigation{}, domain.ErrUnknownDestination
	}

	for i := range m.items {
		m.items[i].Active = i == index
	}
	return Navigation{Target: href, Delay: m.delay}, nil
}

func (item MenuItem) matches(path string) bool {
	if path == item.Href {
		return true
	}
	if item.Page == "" {
		return false
	}
	prefix := "/" + item.Page
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
