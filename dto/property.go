package dto

import "mysterystays/models"

// PropertyRequest is the body of POST /properties/add.
type PropertyRequest struct {
	Name          string          `json:"name" validate:"required"`
	OriginalPrice float64         `json:"original_price" validate:"gte=0"`
	Amenities     []string        `json:"amenities"`
	Bedrooms      int             `json:"bedrooms" validate:"gte=0"`
	Location      models.Location `json:"location"`
	Address       string          `json:"address,omitempty"`
	Directions    string          `json:"directions,omitempty"`
}

type AddPropertyResponse struct {
	Status     string `json:"status"`
	PropertyID string `json:"property_id"`
}

// MatchedProperty is a property as shown to a matched user: location replaced by region.
type MatchedProperty struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	OriginalPrice float64  `json:"original_price"`
	DiscountPrice float64  `json:"discount_price"`
	Amenities     []string `json:"amenities"`
	Bedrooms      int      `json:"bedrooms"`
	Region        string   `json:"region"`
}

type MatchResponse struct {
	Status  string            `json:"status"`
	Matches []MatchedProperty `json:"matches"`
}

// PropertyDetails is the full property, location included, returned by a reveal.
type PropertyDetails struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	OriginalPrice float64         `json:"original_price"`
	DiscountPrice float64         `json:"discount_price"`
	Amenities     []string        `json:"amenities"`
	Bedrooms      int             `json:"bedrooms"`
	Location      models.Location `json:"location"`
	Address       string          `json:"address,omitempty"`
	Directions    string          `json:"directions,omitempty"`
}

func ToMatchedProperty(p models.Property) MatchedProperty {
	return MatchedProperty{
		ID:            p.ID,
		Name:          p.Name,
		OriginalPrice: p.OriginalPrice,
		DiscountPrice: p.DiscountPrice,
		Amenities:     p.Amenities,
		Bedrooms:      p.Bedrooms,
		Region:        p.Location.Region(),
	}
}

func ToPropertyDetails(p models.Property) PropertyDetails {
	return PropertyDetails{
		ID:            p.ID,
		Name:          p.Name,
		OriginalPrice: p.OriginalPrice,
		DiscountPrice: p.DiscountPrice,
		Amenities:     p.Amenities,
		Bedrooms:      p.Bedrooms,
		Location:      p.Location,
		Address:       p.Address,
		Directions:    p.Directions,
	}
}
