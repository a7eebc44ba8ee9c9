// Package adapter contains HTTP clients for the external integration
// bridges the backend depends on.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sellerhub/internal/domain"
)

// StoreBridge implements the StoreGateway interface against the
// marketplace integration bridge
type StoreBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewStoreBridge creates a new store gateway client
func NewStoreBridge(baseURL string) domain.StoreGateway {
	return &StoreBridge{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type credentialsRequest struct {
	StoreType   string            `json:"store_type"`
	Credentials map[string]string `json:"credentials"`
}

type credentialsResponse struct {
	Valid bool `json:"valid"`
}

type productsResponse struct {
	Products []*domain.StoreProduct `json:"products"`
}

// ValidateCredentials checks API credentials against the store
func (b *StoreBridge) ValidateCredentials(ctx context.Context, storeType string, credentials map[string]string) (bool, error) {
	var result credentialsResponse
	if err := b.post(ctx, "/stores/credentials/validate", credentialsRequest{
		StoreType:   storeType,
		Credentials: credentials,
	}, &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

// FetchProducts retrieves the store's product catalog
func (b *StoreBridge) FetchProducts(ctx context.Context, storeType string, credentials map[string]string) ([]*domain.StoreProduct, error) {
	var result productsResponse
	if err := b.post(ctx, "/stores/products", credentialsRequest{
		StoreType:   storeType,
		Credentials: credentials,
	}, &result); err != nil {
		return nil, err
	}
	return result.Products, nil
}

func (b *StoreBridge) post(ctx context.Context, path string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := b.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &domain.DependencyError{Dependency: "store bridge", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &domain.DependencyError{
			Dependency: "store bridge",
			Err:        fmt.Errorf("status=%d, body=%s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.DependencyError{Dependency: "store bridge", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
