package models

import "time"

// Preference holds what a user wants from a stay. Nil fields are not matched on.
type Preference struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Amenities []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	PriceMax  *float64  `json:"price_max,omitempty"`
	Bedrooms  *int      `json:"bedrooms,omitempty"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`
}
