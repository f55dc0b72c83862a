package builders

import (
	"mysterystays/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: models.BookingStatusConfirmed},
	}
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithProperty links the property and keeps it on the booking for pricing.
func (b *BookingBuilder) WithProperty(property *models.Property) *BookingBuilder {
	b.booking.PropertyID = property.ID
	b.booking.Property = property
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithStay sets the dates and the number of nights between them.
func (b *BookingBuilder) WithStay(checkIn, checkOut string, nights int) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	b.booking.Nights = nights
	return b
}

// Build prices the stay at the property's discount price and returns the booking.
func (b *BookingBuilder) Build() *models.Booking {
	if b.booking.Property != nil {
		b.booking.TotalPrice = b.booking.Property.DiscountPrice * float64(b.booking.Nights)
	}
	return b.booking
}
