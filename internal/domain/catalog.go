package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CatalogID identifies a category or product of the catalog API.
// The API serves IDs both as numbers and as strings; both decode to the
// same textual form, so 2 and "2" are equal.
type CatalogID string

// UnmarshalJSON accepts a JSON number or a JSON string
func (id *CatalogID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*id = CatalogID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("catalog id must be a number or a string: %s", raw)
	}
	*id = CatalogID(n.String())
	return nil
}

// String returns the ID text
func (id CatalogID) String() string {
	return string(id)
}

// CategoryTreeNode is a display-ready category node of the catalog tree
type CategoryTreeNode struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Initials     string              `json:"initials"`
	ProductCount int                 `json:"productCount"`
	Depth        int                 `json:"depth"`
	Children     []*CategoryTreeNode `json:"children"`
}

// HasChildren reports whether the node has at least one child
func (n *CategoryTreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// Category is the summary view of a catalog category
type Category struct {
	ID           CatalogID `json:"id"`
	Name         string    `json:"name"`
	ProductCount int       `json:"productCount"`
}

// Product is the canonical product shape used by every view.
// Legacy API products without a breadcrumb get a single-element breadcrumb
// holding their category name.
type Product struct {
	ID           CatalogID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	CategoryName string    `json:"categoryName"`
	Breadcrumb   []string  `json:"breadcrumb"`
	Description  *string   `json:"description,omitempty"`
}

// APITreeNode is a node of GET /api/tree
type APITreeNode struct {
	ID       CatalogID          `json:"id"`
	Name     string             `json:"nome"`
	Products *[]json.RawMessage `json:"produtos,omitempty"`
	Children *[]APITreeNode     `json:"children,omitempty"`
}

// ProductCount returns the number of products attached to the node, zero when absent
func (n APITreeNode) ProductCount() int {
	if n.Products == nil {
		return 0
	}
	return len(*n.Products)
}

// ChildNodes returns the node children, empty when absent
func (n APITreeNode) ChildNodes() []APITreeNode {
	if n.Children == nil {
		return []APITreeNode{}
	}
	return *n.Children
}

// APICategory is an element of GET /api/categorias.
// produtos is either a count or the product array itself.
type APICategory struct {
	ID       CatalogID       `json:"id"`
	Name     string          `json:"nome"`
	Products json.RawMessage `json:"produtos,omitempty"`
}

// ProductCount returns the category product count, zero when absent or unreadable
func (c APICategory) ProductCount() int {
	raw := bytes.TrimSpace(c.Products)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	if raw[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return 0
		}
		return len(items)
	}

	var count int
	if err := json.Unmarshal(raw, &count); err != nil || count < 0 {
		return 0
	}
	return count
}

// APIProduct is an element of GET /api/produtos and /api/produtos/categoria/{id}.
// The API serves two shapes: {categoria, breadcrumb} and the legacy
// {categoria_nome, descricao}.
type APIProduct struct {
	ID                 CatalogID `json:"id"`
	Name               string    `json:"nome"`
	Price              float64   `json:"preco"`
	Category           *string   `json:"categoria,omitempty"`
	Breadcrumb         *[]string `json:"breadcrumb,omitempty"`
	LegacyCategoryName *string   `json:"categoria_nome,omitempty"`
	Description        *string   `json:"descricao,omitempty"`
}
