package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerhub/internal/domain"
)

func TestStoreBridge_ValidateCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/stores/credentials/validate", r.URL.Path)

		var req credentialsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shopee", req.StoreType)
		assert.Equal(t, "k", req.Credentials["api_key"])

		json.NewEncoder(w).Encode(credentialsResponse{Valid: true})
	}))
	defer server.Close()

	bridge := NewStoreBridge(server.URL)

	valid, err := bridge.ValidateCredentials(context.Background(), "shopee", map[string]string{"api_key": "k"})
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestStoreBridge_FetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stores/products", r.URL.Path)
		json.NewEncoder(w).Encode(productsResponse{Products: []*domain.StoreProduct{
			{ExternalID: "MLB-1", Name: "Fone Bluetooth", Price: 99.90, StockQuantity: 12, Category: "eletronicos"},
		}})
	}))
	defer server.Close()

	bridge := NewStoreBridge(server.URL)

	products, err := bridge.FetchProducts(context.Background(), "mercadolivre", map[string]string{"api_key": "k"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "MLB-1", products[0].ExternalID)
	assert.Equal(t, 99.90, products[0].Price)
}

func TestStoreBridge_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bridge down", http.StatusInternalServerError)
	}))
	defer server.Close()

	bridge := NewStoreBridge(server.URL)

	_, err := bridge.ValidateCredentials(context.Background(), "shopee", map[string]string{"api_key": "k"})
	var depErr *domain.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "store bridge", depErr.Dependency)
}

func TestStoreBridge_Unreachable(t *testing.T) {
	bridge := NewStoreBridge("http://127.0.0.1:1")

	_, err := bridge.FetchProducts(context.Background(), "shopee", map[string]string{"api_key": "k"})
	var depErr *domain.DependencyError
	assert.ErrorAs(t, err, &depErr)
}
