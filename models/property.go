package models

import (
	"fmt"
	"time"
)

// Location is the exact place of a property, withheld until a booking is revealed.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type Property struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Seq           int       `json:"-" gorm:"uniqueIndex"`
	Name          string    `json:"name"`
	OriginalPrice float64   `json:"original_price"`
	DiscountPrice float64   `json:"discount_price"`
	Amenities     []string  `json:"amenities" gorm:"serializer:json"`
	Bedrooms      int       `json:"bedrooms"`
	Location      Location  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Address       string    `json:"address,omitempty"`
	Directions    string    `json:"directions,omitempty"`
	CreatedAt     time.Time `json:"-" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"-" gorm:"autoUpdateTime"`
}

// DiscountRate is applied to every listed property.
const DiscountRate = 0.5

// PropertyID formats the sequential id of the n-th property.
func PropertyID(n int) string {
	return fmt.Sprintf("prop_%d", n)
}

// Region is the coarse "City, Country" shown before a booking is revealed.
func (l Location) Region() string {
	city, country := l.City, l.Country
	if city == "" {
		city = "Unknown City"
	}
	if country == "" {
		country = "Unknown Country"
	}
	return fmt.Sprintf("%s, %s", city, country)
}
