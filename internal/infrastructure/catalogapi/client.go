package catalogapi

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/vitrine/frontend/internal/domain"
)

// Catalog API endpoints
const (
	pathTree               = "/api/tree"
	pathCategories         = "/api/categorias"
	pathProducts           = "/api/produtos"
	pathProductsByCategory = "/api/produtos/categoria/{id}"
)

// ClientConfig holds tuning options for the catalog API client
type ClientConfig struct {
	Timeout           time.Duration
	RetryCount        int
	RequestsPerSecond float64
}

// Client handles communication with the catalog REST API
type Client struct {
	httpClient  *resty.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new catalog API client
func NewClient(baseURL string, cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "vitrine/1.0")

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

// Close releases the underlying HTTP client resources
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// GetTree fetches the top-level category nodes with their nested children
func (c *Client) GetTree(ctx context.Context) ([]domain.APITreeNode, error) {
	var nodes []domain.APITreeNode
	if err := c.get(ctx, pathTree, nil, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// GetCategories fetches the flat category list
func (c *Client) GetCategories(ctx context.Context) ([]domain.APICategory, error) {
	var categories []domain.APICategory
	if err := c.get(ctx, pathCategories, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProducts fetches every product of the catalog
func (c *Client) GetProducts(ctx context.Context) ([]domain.APIProduct, error) {
	var products []domain.APIProduct
	if err := c.get(ctx, pathProducts, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByCategory fetches the products scoped to one category
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID domain.CatalogID) ([]domain.APIProduct, error) {
	params := map[string]string{"id": categoryID.String()}

	var products []domain.APIProduct
	if err := c.get(ctx, pathProductsByCategory, params, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// get executes a rate-limited GET and decodes the JSON body into result
func (c *Client) get(ctx context.Context, path string, pathParams map[string]string, result any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	log.Debugf("[catalog] GET %s%s", c.baseURL, path)

	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(result)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Get(path)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if resp.IsError() {
		log.Warnf("[catalog] GET %s returned status %d", path, resp.StatusCode())
		return fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}

	return nil
}
