package models

import "errors"

// BookingState defines the transitions allowed from one booking status.
type BookingState interface {
	Reveal(booking *Booking) error
	Complete(booking *Booking) error
	Cancel(booking *Booking) error
}

// ConfirmedState is a paid booking whose location is still hidden.
type ConfirmedState struct{}

func (s *ConfirmedState) Reveal(booking *Booking) error {
	booking.Status = BookingStatusRevealed
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// RevealedState is a booking whose location has been disclosed.
type RevealedState struct{}

// Reveal is a no-op: the location can be fetched again.
func (s *RevealedState) Reveal(booking *Booking) error {
	return nil
}

func (s *RevealedState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

func (s *RevealedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CompletedState is a stay that has ended.
type CompletedState struct{}

// Reveal is allowed so guests can look up where they stayed.
func (s *CompletedState) Reveal(booking *Booking) error {
	return nil
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

// CancelledState is a booking that will not take place.
type CancelledState struct{}

func (s *CancelledState) Reveal(booking *Booking) error {
	return errors.New("cannot reveal cancelled booking")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState returns the state for a booking status.
func GetBookingState(status string) BookingState {
	switch status {
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusRevealed:
		return &RevealedState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &ConfirmedState{}
	}
}
