package domain

import "errors"

var (
	// ErrCatalogUnavailable is returned when a catalog API request fails
	ErrCatalogUnavailable = errors.New("catalog API request failed")

	// ErrCategoryNotFound is returned when a category name or ID cannot be resolved
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownDestination is returned when a navigation target is not a menu entry
	ErrUnknownDestination = errors.New("unknown navigation destination")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
