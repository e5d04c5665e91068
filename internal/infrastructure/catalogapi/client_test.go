package catalogapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine/frontend/internal/domain"
)

// newTestServer serves a fixed JSON body for one path and 404 elsewhere
func newTestServer(t *testing.T, path, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != path {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, ClientConfig{Timeout: 2 * time.Second})
}

func TestNewClient(t *testing.T) {
	client := NewClient("https://catalogo.example.com", ClientConfig{RequestsPerSecond: 5})

	assert.NotNil(t, client)
	assert.Equal(t, "https://catalogo.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.Equal(t, 5, client.rateLimiter.Burst())
}

func TestGetTree_Success(t *testing.T) {
	server := newTestServer(t, "/api/tree", `[
		{"id": 1, "nome": "Eletronicos", "produtos": [{"id": 1}, {"id": 2}],
		 "children": [{"id": 3, "nome": "Celulares"}]},
		{"id": 2, "nome": "Livros"}
	]`)

	client := newTestClient(server.URL)
	nodes, err := client.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Eletronicos", nodes[0].Name)
	assert.Equal(t, 2, nodes[0].ProductCount())
	require.Len(t, nodes[0].ChildNodes(), 1)
	assert.Equal(t, "Celulares", nodes[0].ChildNodes()[0].Name)
	assert.Equal(t, 0, nodes[1].ProductCount())
}

func TestGetTree_StringIDs(t *testing.T) {
	server := newTestServer(t, "/api/tree", `[
		{"id": "eletronicos", "nome": "Eletronicos", "children": [{"id": 3, "nome": "Celulares"}]},
		{"id": "2", "nome": "Livros"}
	]`)

	client := newTestClient(server.URL)
	nodes, err := client.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, domain.CatalogID("eletronicos"), nodes[0].ID)
	assert.Equal(t, domain.CatalogID("3"), nodes[0].ChildNodes()[0].ID)
	assert.Equal(t, domain.CatalogID("2"), nodes[1].ID)
}

func TestGetTree_EmptyArray(t *testing.T) {
	server := newTestServer(t, "/api/tree", `[]`)

	client := newTestClient(server.URL)
	nodes, err := client.GetTree(context.Background())

	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestGetCategories_Success(t *testing.T) {
	server := newTestServer(t, "/api/categorias", `[
		{"id": 1, "nome": "Eletronicos", "produtos": 2},
		{"id": 5, "nome": "Esportes"}
	]`)

	client := newTestClient(server.URL)
	categories, err := client.GetCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, domain.CatalogID("1"), categories[0].ID)
	assert.Equal(t, 2, categories[0].ProductCount())
	assert.Equal(t, "Esportes", categories[1].Name)
}

func TestGetProducts_BothVariants(t *testing.T) {
	server := newTestServer(t, "/api/produtos", `[
		{"id": 3, "nome": "Arroz Integral 1kg", "preco": 12.9, "categoria": "Alimentos",
		 "breadcrumb": ["Alimentos", "Graos", "Arroz"]},
		{"id": 6, "nome": "Bola de Futebol", "preco": 99.5, "categoria_nome": "Esportes",
		 "descricao": "tamanho oficial"}
	]`)

	client := newTestClient(server.URL)
	products, err := client.GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	require.NotNil(t, products[0].Breadcrumb)
	assert.Equal(t, []string{"Alimentos", "Graos", "Arroz"}, *products[0].Breadcrumb)
	assert.InDelta(t, 12.9, products[0].Price, 0.0001)
	require.NotNil(t, products[1].LegacyCategoryName)
	assert.Equal(t, "Esportes", *products[1].LegacyCategoryName)
	require.NotNil(t, products[1].Description)
}

func TestGetProductsByCategory_UsesCategoryPath(t *testing.T) {
	server := newTestServer(t, "/api/produtos/categoria/2", `[
		{"id": 3, "nome": "Arroz Integral 1kg", "preco": 12.9, "categoria": "Alimentos"}
	]`)

	client := newTestClient(server.URL)
	products, err := client.GetProductsByCategory(context.Background(), "2")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Arroz Integral 1kg", products[0].Name)
}

func TestGetProductsByCategory_StringID(t *testing.T) {
	server := newTestServer(t, "/api/produtos/categoria/eletronicos", `[
		{"id": "p-9", "nome": "Fone Bluetooth", "preco": 199.9, "categoria": "Eletronicos"}
	]`)

	client := newTestClient(server.URL)
	products, err := client.GetProductsByCategory(context.Background(), "eletronicos")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, domain.CatalogID("p-9"), products[0].ID)
}

func TestGet_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	nodes, err := client.GetTree(context.Background())

	assert.Nil(t, nodes)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGet_NotFound(t *testing.T) {
	server := newTestServer(t, "/api/tree", `[]`)

	client := newTestClient(server.URL)
	products, err := client.GetProductsByCategory(context.Background(), "99")

	assert.Nil(t, products)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGet_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url)
	_, err := client.GetCategories(context.Background())

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestGet_CancelledContext(t *testing.T) {
	server := newTestServer(t, "/api/tree", `[]`)

	client := newTestClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetTree(ctx)

	assert.Error(t, err)
}
