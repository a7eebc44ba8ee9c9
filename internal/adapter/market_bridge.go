package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sellerhub/internal/domain"
)

// MarketBridge implements the MarketDataProvider interface against the
// market analysis bridge
type MarketBridge struct {
	baseURL    string
	httpClient *http.Client
}

// NewMarketBridge creates a new market data client
func NewMarketBridge(baseURL string) domain.MarketDataProvider {
	return &MarketBridge{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second, // market analysis can take a while
		},
	}
}

type researchRequest struct {
	ProductName string         `json:"product_name"`
	Category    string         `json:"category"`
	SearchData  map[string]any `json:"search_data,omitempty"`
}

// Research produces a market insight for a single product
func (b *MarketBridge) Research(ctx context.Context, productName, category string, searchData map[string]any) (*domain.MarketInsight, error) {
	jsonData, err := json.Marshal(researchRequest{
		ProductName: productName,
		Category:    category,
		SearchData:  searchData,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := b.baseURL + "/market/research"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var insight domain.MarketInsight
	if err := b.do(req, &insight); err != nil {
		return nil, err
	}
	return &insight, nil
}

// Trends produces a market-wide trend report
func (b *MarketBridge) Trends(ctx context.Context, category, period string) (*domain.TrendReport, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	query.Set("period", period)

	endpoint := b.baseURL + "/market/trends?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var report domain.TrendReport
	if err := b.do(req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (b *MarketBridge) do(req *http.Request, out any) error {
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &domain.DependencyError{Dependency: "market bridge", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &domain.DependencyError{
			Dependency: "market bridge",
			Err:        fmt.Errorf("status=%d, body=%s", resp.StatusCode, string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.DependencyError{Dependency: "market bridge", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
