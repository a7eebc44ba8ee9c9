package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreConnection links a user account to an external marketplace store
type StoreConnection struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	StoreType      string            `json:"store_type"`
	StoreName      string            `json:"store_name"`
	APICredentials map[string]string `json:"-"` // Never expose credentials in JSON
	IsActive       bool              `json:"is_active"`
	LastSyncAt     *time.Time        `json:"last_sync,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// StoreProduct is a product as reported by the store gateway
type StoreProduct struct {
	ExternalID    string         `json:"external_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	StockQuantity int            `json:"stock_quantity"`
	Category      string         `json:"category"`
	Data          map[string]any `json:"data,omitempty"`
}

// SyncedProduct is a store product mirrored into the local catalog
type SyncedProduct struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	ConnectionID  uuid.UUID      `json:"connection_id"`
	ExternalID    string         `json:"external_id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	StockQuantity int            `json:"stock_quantity"`
	Category      string         `json:"category"`
	ProductData   map[string]any `json:"product_data,omitempty"`
	LastUpdatedAt time.Time      `json:"last_updated"`
}

// ConnectionFilter narrows a connection listing
type ConnectionFilter struct {
	StoreType string
	IsActive  *bool
}

// ProductFilter narrows a synced-product listing
type ProductFilter struct {
	ConnectionID *uuid.UUID
	Category     string
}
