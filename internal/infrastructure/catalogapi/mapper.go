package catalogapi

import (
	"strings"

	"github.com/vitrine/frontend/internal/domain"
)

// MapCategories converts API categories to domain categories
func MapCategories(apiCategories []domain.APICategory) []domain.Category {
	categories := make([]domain.Category, 0, len(apiCategories))
	for _, c := range apiCategories {
		categories = append(categories, domain.Category{
			ID:           c.ID,
			Name:         c.Name,
			ProductCount: c.ProductCount(),
		})
	}
	return categories
}

// MapProducts converts API products to the canonical domain product shape
func MapProducts(apiProducts []domain.APIProduct) []domain.Product {
	products := make([]domain.Product, 0, len(apiProducts))
	for _, p := range apiProducts {
		products = append(products, MapProduct(p))
	}
	return products
}

// MapProduct converts one API product. The breadcrumb variant wins when both
// shapes are present; the legacy variant becomes a one-step breadcrumb.
func MapProduct(p domain.APIProduct) domain.Product {
	product := domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Breadcrumb:  []string{},
		Description: nonEmpty(p.Description),
	}

	switch {
	case p.Category != nil:
		product.CategoryName = *p.Category
	case p.LegacyCategoryName != nil:
		product.CategoryName = *p.LegacyCategoryName
	}

	if p.Breadcrumb != nil && len(*p.Breadcrumb) > 0 {
		product.Breadcrumb = append(product.Breadcrumb, *p.Breadcrumb...)
	} else if product.CategoryName != "" {
		product.Breadcrumb = append(product.Breadcrumb, product.CategoryName)
	}

	return product
}

// nonEmpty drops blank optional strings
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
