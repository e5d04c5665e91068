package usecase

import (
	"github.com/vitrine/frontend/internal/domain"
)

// Recommend returns the products of the category nodeID and of every
// category below it. A product belongs to a category when its category
// name or any breadcrumb entry names it. An unknown node yields an empty list.
func Recommend(root *domain.CategoryTreeNode, nodeID string, products []domain.Product) []domain.Product {
	recommended := []domain.Product{}

	node := FindNode(root, nodeID)
	if node == nil {
		return recommended
	}

	names := make(map[string]struct{})
	collectNames(node, names)

	for _, p := range products {
		if inCategories(p, names) {
			recommended = append(recommended, p)
		}
	}
	return recommended
}

func collectNames(node *domain.CategoryTreeNode, names map[string]struct{}) {
	names[foldText(node.Name)] = struct{}{}
	for _, c := range node.Children {
		collectNames(c, names)
	}
}

func inCategories(p domain.Product, names map[string]struct{}) bool {
	if _, ok := names[foldText(p.CategoryName)]; ok {
		return true
	}
	for _, crumb := range p.Breadcrumb {
		if _, ok := names[foldText(crumb)]; ok {
			return true
		}
	}
	return false
}
