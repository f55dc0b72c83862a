// Package demo runs the one-click mystery stay walkthrough against the backend.
package demo

import (
	"context"
	"fmt"
	"time"

	"mysterystays/client"
	"mysterystays/dto"
	"mysterystays/models"
	"mysterystays/services/logger"

	"github.com/goccy/go-json"
)

// StayDuration is the length of the booked stay, starting today.
const StayDuration = 4 * 24 * time.Hour

// Step names a stage of the walkthrough.
type Step string

const (
	StepAddProperty         Step = "add property"
	StepRegisterPreferences Step = "register preferences"
	StepFindMatches         Step = "find matches"
	StepCreateBooking       Step = "create booking"
	StepReveal              Step = "reveal location"
)

// StepError records which stage failed. Stages after it are not run.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Backend is the part of the API the walkthrough calls.
type Backend interface {
	AddProperty(ctx context.Context, property dto.PropertyRequest) (json.RawMessage, error)
	RegisterPreferences(ctx context.Context, req dto.RegisterPreferencesRequest) (json.RawMessage, error)
	Matches(ctx context.Context, userID string) (*client.MatchResult, error)
	CreateBooking(ctx context.Context, req dto.BookingRequest) (*client.BookingResult, error)
	Reveal(ctx context.Context, bookingID string) (json.RawMessage, error)
}

type Orchestrator struct {
	Backend   Backend
	Generator Generator
	Now       func() time.Time
	Logger    logger.Logger
}

func NewOrchestrator(backend Backend, gen Generator) *Orchestrator {
	return &Orchestrator{
		Backend:   backend,
		Generator: gen,
		Now:       time.Now,
		Logger:    logger.Nop{},
	}
}

// Run adds a random property, registers a user who wants it, finds their matches, books
// the first one and reveals it. Each request waits for the previous response. Booking
// only happens when there is a match and the reveal only when the booking returned an id.
// The returned Result is never nil; on failure it holds everything gathered so far.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	log := o.Logger
	if log == nil {
		log = logger.Nop{}
	}

	property := o.Generator.Property()
	prefs := PreferencesFor(o.Generator.UserID(), property)
	result := &Result{Property: property, Preferences: prefs}

	fail := func(step Step, err error) (*Result, error) {
		result.Err = &StepError{Step: step, Err: err}
		log.Error("demo stopped at %s: %v", step, err)
		return result, result.Err
	}

	var err error
	if result.PropertyResponse, err = o.Backend.AddProperty(ctx, property); err != nil {
		return fail(StepAddProperty, err)
	}
	if result.PreferencesResponse, err = o.Backend.RegisterPreferences(ctx, prefs); err != nil {
		return fail(StepRegisterPreferences, err)
	}

	matches, err := o.Backend.Matches(ctx, prefs.UserID)
	if err != nil {
		return fail(StepFindMatches, err)
	}
	result.Matches = matches.Matches
	if len(matches.Matches) == 0 {
		log.Info("no matches for %s", prefs.UserID)
		return result, nil
	}

	today := now().UTC()
	booking, err := o.Backend.CreateBooking(ctx, dto.BookingRequest{
		UserID:     prefs.UserID,
		PropertyID: matches.FirstID(),
		CheckIn:    today.Format(models.DateLayout),
		CheckOut:   today.Add(StayDuration).Format(models.DateLayout),
	})
	if err != nil {
		return fail(StepCreateBooking, err)
	}
	result.Booking = booking.Raw
	if booking.BookingID == "" {
		log.Info("booking returned no booking_id, skipping reveal")
		return result, nil
	}

	if result.Reveal, err = o.Backend.Reveal(ctx, booking.BookingID); err != nil {
		return fail(StepReveal, err)
	}
	return result, nil
}
