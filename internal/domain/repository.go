package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque encoded payloads so every backend stores the same bytes.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for the catalog REST API
type CatalogClient interface {
	GetTree(ctx context.Context) ([]APITreeNode, error)
	GetCategories(ctx context.Context) ([]APICategory, error)
	GetProducts(ctx context.Context) ([]APIProduct, error)
	GetProductsByCategory(ctx context.Context, categoryID CatalogID) ([]APIProduct, error)
}

// CatalogReader is the read side the page components depend on
type CatalogReader interface {
	Tree(ctx context.Context) ([]APITreeNode, error)
	Categories(ctx context.Context) ([]Category, error)
	Products(ctx context.Context) ([]Product, error)
	ProductsByCategory(ctx context.Context, categoryID CatalogID) ([]Product, error)
}
