package dto

// Preferences is what a user asks for. Omitted fields are not matched on.
type Preferences struct {
	Amenities []string `json:"amenities,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty" validate:"omitempty,gte=0"`
	Bedrooms  *int     `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
}

// RegisterPreferencesRequest is the body of POST /users/preferences.
type RegisterPreferencesRequest struct {
	UserID      string      `json:"user_id" validate:"required"`
	Preferences Preferences `json:"preferences"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func Float(v float64) *float64 {
	return &v
}

func Int(v int) *int {
	return &v
}
