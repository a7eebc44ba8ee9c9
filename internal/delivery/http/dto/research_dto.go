package dto

// CreateResearchRequest represents the market research payload
type CreateResearchRequest struct {
	ProductName string         `json:"product_name" validate:"required,min=2,max=255"`
	Category    string         `json:"category" validate:"required,min=2,max=100"`
	SearchData  map[string]any `json:"search_data"`
}

// UpdateResearchRequest represents the research update payload
type UpdateResearchRequest struct {
	ProductName string         `json:"product_name" validate:"required,min=2,max=255"`
	Category    string         `json:"category" validate:"required,min=2,max=100"`
	SearchData  map[string]any `json:"search_data"`
}
