package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vitrine/frontend/internal/domain"
	"github.com/vitrine/frontend/internal/infrastructure/catalogapi"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService reads the catalog API through the cache.
// It implements domain.CatalogReader.
type CatalogService struct {
	cache    domain.CacheRepository
	client   domain.CatalogClient
	cacheTTL time.Duration
}

// NewCatalogService creates a new catalog service. cache may be nil to disable caching.
func NewCatalogService(
	cache domain.CacheRepository,
	client domain.CatalogClient,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &CatalogService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Tree returns the raw category hierarchy
func (s *CatalogService) Tree(ctx context.Context) ([]domain.APITreeNode, error) {
	return cachedFetch(ctx, s, "catalog:tree", s.client.GetTree)
}

// Categories returns the flat category list
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return cachedFetch(ctx, s, "catalog:categories", func(ctx context.Context) ([]domain.Category, error) {
		categories, err := s.client.GetCategories(ctx)
		if err != nil {
			return nil, err
		}
		return catalogapi.MapCategories(categories), nil
	})
}

// Products returns every product in canonical shape
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return cachedFetch(ctx, s, "catalog:products", func(ctx context.Context) ([]domain.Product, error) {
		products, err := s.client.GetProducts(ctx)
		if err != nil {
			return nil, err
		}
		return catalogapi.MapProducts(products), nil
	})
}

// ProductsByCategory returns the products of one category
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID domain.CatalogID) ([]domain.Product, error) {
	key := fmt.Sprintf("catalog:products:category:%s", categoryID)
	return cachedFetch(ctx, s, key, func(ctx context.Context) ([]domain.Product, error) {
		products, err := s.client.GetProductsByCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		return catalogapi.MapProducts(products), nil
	})
}

// Invalidate drops every cached catalog listing except per-category product lists
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, key := range []string{"catalog:tree", "catalog:categories", "catalog:products"} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.WithError(err).WithField("key", key).Warn("Failed to invalidate cache entry")
		}
	}
}

// cachedFetch checks the cache, falls back to fetch and stores the result.
// Cache failures are logged and never fail the request; upstream errors are not cached.
func cachedFetch[T any](
	ctx context.Context,
	s *CatalogService,
	key string,
	fetch func(context.Context) (T, error),
) (T, error) {
	if s.cache != nil {
		if payload, err := s.cache.Get(ctx, key); err == nil {
			var cached T
			if err := json.Unmarshal(payload, &cached); err == nil {
				log.WithField("key", key).Debug("Catalog cache hit")
				return cached, nil
			}
			log.WithField("key", key).Warn("Discarding unreadable cache entry")
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if s.cache != nil {
		payload, err := json.Marshal(value)
		if err == nil {
			err = s.cache.Set(ctx, key, payload, s.cacheTTL)
		}
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("Failed to cache catalog response")
		}
	}

	return value, nil
}
