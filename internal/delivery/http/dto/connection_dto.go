package dto

// CreateConnectionRequest represents the store connection payload
type CreateConnectionRequest struct {
	StoreType      string            `json:"store_type" validate:"required,oneof=mercadolivre shopee amazon magalu"`
	StoreName      string            `json:"store_name" validate:"required,min=2,max=255"`
	APICredentials map[string]string `json:"api_credentials" validate:"required"`
}

// UpdateConnectionRequest represents the connection update payload.
// Pointer fields distinguish "absent" from zero values.
type UpdateConnectionRequest struct {
	StoreName      *string           `json:"store_name" validate:"omitempty,min=2,max=255"`
	APICredentials map[string]string `json:"api_credentials"`
	IsActive       *bool             `json:"is_active"`
}
