package commands

import (
	"context"

	"mysterystays/models"

	"gorm.io/gorm"
)

// BookingCommand is a single write against the bookings table.
type BookingCommand interface {
	Execute(ctx context.Context) error
}

type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

// Execute inserts the booking without touching the associated property row.
func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).Omit("Property").Create(c.booking).Error
}

type UpdateBookingStatusCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingStatusCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingStatusCommand {
	return &UpdateBookingStatusCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingStatusCommand) Execute(ctx context.Context) error {
	return c.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", c.booking.ID).
		Update("status", c.booking.Status).Error
}
