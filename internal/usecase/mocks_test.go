package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/vitrine/frontend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu        sync.Mutex
	data      map[string][]byte
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string][]byte),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

// MockCatalogClient is a mock implementation of domain.CatalogClient
type MockCatalogClient struct {
	mu         sync.Mutex
	tree       []domain.APITreeNode
	categories []domain.APICategory
	products   []domain.APIProduct
	byCategory map[domain.CatalogID][]domain.APIProduct
	err        error
	calls      map[string]int
}

func NewMockCatalogClient() *MockCatalogClient {
	return &MockCatalogClient{
		byCategory: make(map[domain.CatalogID][]domain.APIProduct),
		calls:      make(map[string]int),
	}
}

func (m *MockCatalogClient) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[name]++
	return m.err
}

func (m *MockCatalogClient) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *MockCatalogClient) GetTree(ctx context.Context) ([]domain.APITreeNode, error) {
	if err := m.record("tree"); err != nil {
		return nil, err
	}
	return m.tree, nil
}

func (m *MockCatalogClient) GetCategories(ctx context.Context) ([]domain.APICategory, error) {
	if err := m.record("categories"); err != nil {
		return nil, err
	}
	return m.categories, nil
}

func (m *MockCatalogClient) GetProducts(ctx context.Context) ([]domain.APIProduct, error) {
	if err := m.record("products"); err != nil {
		return nil, err
	}
	return m.products, nil
}

func (m *MockCatalogClient) GetProductsByCategory(ctx context.Context, categoryID domain.CatalogID) ([]domain.APIProduct, error) {
	if err := m.record("byCategory"); err != nil {
		return nil, err
	}
	return m.byCategory[categoryID], nil
}

// MockCatalogReader is a mock implementation of domain.CatalogReader
type MockCatalogReader struct {
	tree          []domain.APITreeNode
	treeErr       error
	categories    []domain.Category
	categoriesErr error
	products      []domain.Product
	productsErr   error
	byCategory    map[domain.CatalogID][]domain.Product
	byCategoryErr error
}

func (m *MockCatalogReader) Tree(ctx context.Context) ([]domain.APITreeNode, error) {
	return m.tree, m.treeErr
}

func (m *MockCatalogReader) Categories(ctx context.Context) ([]domain.Category, error) {
	return m.categories, m.categoriesErr
}

func (m *MockCatalogReader) Products(ctx context.Context) ([]domain.Product, error) {
	return m.products, m.productsErr
}

func (m *MockCatalogReader) ProductsByCategory(ctx context.Context, categoryID domain.CatalogID) ([]domain.Product, error) {
	if m.byCategoryErr != nil {
		return nil, m.byCategoryErr
	}
	return m.byCategory[categoryID], nil
}

func strPtr(s string) *string {
	return &s
}
