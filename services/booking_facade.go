package services

import (
	"context"
	"time"

	"mysterystays/builders"
	"mysterystays/dto"
	"mysterystays/errors"
	"mysterystays/models"
	"mysterystays/services/notification"
	"mysterystays/validator"
)

// Book reserves a property for the requested dates. The confirmation hides the location.
func (s *StayService) Book(ctx context.Context, req dto.BookingRequest) (*dto.BookingConfirmation, error) {
	nights, err := validator.ValidateBooking(&req)
	if err != nil {
		return nil, err
	}

	property, err := s.store.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithUser(req.UserID).
		WithProperty(property).
		WithStay(req.CheckIn, req.CheckOut, nights).
		Build()

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	// A failed notification does not fail the booking.
	s.notify(booking.ID, property.Location.Region(), booking.Status)

	s.logger.Info("booking %s confirmed: %s for %s, %d nights, total %.2f",
		booking.ID, property.ID, booking.UserID, booking.Nights, booking.TotalPrice)
	return toConfirmation(booking, property), nil
}

// Reveal discloses the full property details of a booking and marks it revealed.
func (s *StayService) Reveal(ctx context.Context, bookingID string) (*dto.PropertyDetails, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	if err := models.GetBookingState(booking.Status).Reveal(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), errors.ErrBookingCancelled)
	}
	if booking.Status != previous {
		if err := s.store.UpdateBookingStatus(ctx, booking); err != nil {
			return nil, err
		}
	}

	property, err := s.store.GetProperty(ctx, booking.PropertyID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking %s revealed", booking.ID)
	details := dto.ToPropertyDetails(*property)
	return &details, nil
}

// Cancel cancels a booking that has not been completed.
func (s *StayService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := models.GetBookingState(booking.Status).Cancel(booking); err != nil {
		cause := errors.ErrBookingCancelled
		if booking.Status == models.BookingStatusCompleted {
			cause = errors.ErrBookingCompleted
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), cause)
	}
	if err := s.store.UpdateBookingStatus(ctx, booking); err != nil {
		return nil, err
	}

	s.notify(booking.ID, "", booking.Status)
	s.logger.Info("booking %s cancelled", booking.ID)
	return booking, nil
}

// CompletePastBookings marks every open booking whose check-out day has passed as completed.
func (s *StayService) CompletePastBookings(ctx context.Context) (int, error) {
	bookings, err := s.store.ListBookingsByStatus(ctx, models.BookingStatusConfirmed, models.BookingStatusRevealed)
	if err != nil {
		return 0, err
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	completed := 0
	for i := range bookings {
		booking := &bookings[i]
		checkOut, err := booking.CheckOutDate()
		if err != nil {
			s.logger.Error("booking %s has unreadable check_out %q: %v", booking.ID, booking.CheckOut, err)
			continue
		}
		if !checkOut.Before(today) {
			continue
		}
		if err := models.GetBookingState(booking.Status).Complete(booking); err != nil {
			continue
		}
		if err := s.store.UpdateBookingStatus(ctx, booking); err != nil {
			return completed, err
		}
		completed++
	}

	if completed > 0 {
		s.logger.Info("completed %d past bookings", completed)
	}
	return completed, nil
}

func (s *StayService) notify(bookingID, region, status string) {
	if s.notifier == nil {
		return
	}
	if region == "" {
		region = "an undisclosed location"
	}
	message := notification.NewMessageBuilder(bookingID, region, status).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("notify booking %s: %v", bookingID, err)
	}
}

func toConfirmation(booking *models.Booking, property *models.Property) *dto.BookingConfirmation {
	return &dto.BookingConfirmation{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		PropertyID: booking.PropertyID,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		PropertyDetails: dto.LimitedPropertyDetails{
			ID:            property.ID,
			Name:          property.Name,
			OriginalPrice: property.OriginalPrice,
			DiscountPrice: property.DiscountPrice,
			Amenities:     property.Amenities,
			Bedrooms:      property.Bedrooms,
			Region:        property.Location.Region(),
		},
	}
}
