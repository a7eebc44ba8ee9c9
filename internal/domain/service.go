package domain

import "context"

// StoreGateway defines the interface to external marketplace stores
type StoreGateway interface {
	// ValidateCredentials checks API credentials against the store
	ValidateCredentials(ctx context.Context, storeType string, credentials map[string]string) (bool, error)

	// FetchProducts retrieves the store's product catalog
	FetchProducts(ctx context.Context, storeType string, credentials map[string]string) ([]*StoreProduct, error)
}

// MarketDataProvider defines the interface to the market analysis backend
type MarketDataProvider interface {
	// Research produces a market insight for a single product
	Research(ctx context.Context, productName, category string, searchData map[string]any) (*MarketInsight, error)

	// Trends produces a market-wide trend report
	Trends(ctx context.Context, category, period string) (*TrendReport, error)
}
