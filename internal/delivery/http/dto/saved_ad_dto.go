package dto

// CreateSavedAdRequest represents the saved ad payload
type CreateSavedAdRequest struct {
	Name           string         `json:"name" validate:"required,min=1,max=255"`
	CalculatorType string         `json:"calculator_type" validate:"required,oneof=dre pricing"`
	CalcData       map[string]any `json:"calc_data" validate:"required"`
	PhotoURL       *string        `json:"photo_url" validate:"omitempty,url"`
	Comment        *string        `json:"comment"`
	Tags           []string       `json:"tags"`
}

// UpdateSavedAdRequest represents the saved ad update payload. Pointer
// and nil-able fields distinguish "absent" from zero values.
type UpdateSavedAdRequest struct {
	Name     *string        `json:"name" validate:"omitempty,min=1,max=255"`
	CalcData map[string]any `json:"calc_data"`
	PhotoURL *string        `json:"photo_url" validate:"omitempty,url"`
	Comment  *string        `json:"comment"`
	Tags     []string       `json:"tags"`
}
