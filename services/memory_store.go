package services

import (
	"context"
	"sync"

	"mysterystays/errors"
	"mysterystays/models"
)

// MemoryStore keeps everything in process memory, in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	properties  []models.Property
	preferences map[string]models.Preference
	bookings    []models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		preferences: make(map[string]models.Preference),
	}
}

func (s *MemoryStore) CreateProperty(ctx context.Context, property *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	property.Seq = len(s.properties) + 1
	property.ID = models.PropertyID(property.Seq)
	stored := *property
	stored.Amenities = append([]string(nil), property.Amenities...)
	s.properties = append(s.properties, stored)
	return nil
}

func (s *MemoryStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodePropertyNotFound, "Property not found", errors.ErrPropertyNotFound)
}

func (s *MemoryStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

func (s *MemoryStore) SavePreference(ctx context.Context, pref *models.Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.preferences[pref.UserID] = *pref
	return nil
}

func (s *MemoryStore) GetPreference(ctx context.Context, userID string) (*models.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.preferences[userID]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

func (s *MemoryStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.Seq = len(s.bookings) + 1
	booking.ID = models.BookingID(booking.Seq)
	stored := *booking
	stored.Property = nil
	s.bookings = append(s.bookings, stored)
	return nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", errors.ErrBookingNotFound)
}

func (s *MemoryStore) UpdateBookingStatus(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i].Status = booking.Status
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeBookingNotFound, "Booking not found", errors.ErrBookingNotFound)
}

func (s *MemoryStore) ListBookingsByStatus(ctx context.Context, statuses ...string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if want[b.Status] {
			out = append(out, b)
		}
	}
	return out, nil
}
