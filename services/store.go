package services

import (
	"context"

	"mysterystays/models"
)

// Store persists properties, preferences and bookings.
// CreateProperty and CreateBooking assign the sequential ID.
type Store interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	ListProperties(ctx context.Context) ([]models.Property, error)

	SavePreference(ctx context.Context, pref *models.Preference) error
	// GetPreference returns nil, nil for a user who never registered.
	GetPreference(ctx context.Context, userID string) (*models.Preference, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, booking *models.Booking) error
	ListBookingsByStatus(ctx context.Context, statuses ...string) ([]models.Booking, error)
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*GormStore)(nil)
)
