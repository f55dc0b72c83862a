package dto

// BookingRequest is the body of POST /bookings/create.
type BookingRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// LimitedPropertyDetails is a booked property before its location is revealed.
type LimitedPropertyDetails struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	OriginalPrice float64  `json:"original_price"`
	DiscountPrice float64  `json:"discount_price"`
	Amenities     []string `json:"amenities"`
	Bedrooms      int      `json:"bedrooms"`
	Region        string   `json:"region"`
}

type BookingConfirmation struct {
	BookingID       string                 `json:"booking_id"`
	UserID          string                 `json:"user_id"`
	PropertyID      string                 `json:"property_id"`
	CheckIn         string                 `json:"check_in"`
	CheckOut        string                 `json:"check_out"`
	TotalPrice      float64                `json:"total_price"`
	Status          string                 `json:"status"`
	PropertyDetails LimitedPropertyDetails `json:"property_details"`
}

// FailedResponse is returned with HTTP 200 when a lookup by id finds nothing.
type FailedResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}
