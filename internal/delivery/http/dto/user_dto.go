package dto

// UpdateProfileRequest represents the profile update payload. Omitted
// fields keep their current value.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
}

// UpdatePlanRequest represents the plan change payload
type UpdatePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=free premium enterprise"`
}
