package controllers

import (
	"context"

	"mysterystays/dto"
	"mysterystays/models"
	"mysterystays/response"

	"github.com/gin-gonic/gin"
)

// StayService is the mystery stay backend the controller serves.
type StayService interface {
	AddProperty(ctx context.Context, req dto.PropertyRequest) (string, error)
	RegisterPreferences(ctx context.Context, req dto.RegisterPreferencesRequest) error
	Match(ctx context.Context, userID string) ([]dto.MatchedProperty, error)
	Book(ctx context.Context, req dto.BookingRequest) (*dto.BookingConfirmation, error)
	Reveal(ctx context.Context, bookingID string) (*dto.PropertyDetails, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
}

type StayController struct {
	Service StayService
}

func NewStayController(service StayService) StayController {
	return StayController{Service: service}
}

// AddProperty godoc
// @Summary      List a vacant property at 50% off
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        property  body      dto.PropertyRequest  true  "Property"
// @Success      200       {object}  dto.AddPropertyResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /properties/add [post]
func (s StayController) AddProperty(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}

	propertyID, err := s.Service.AddProperty(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"property_id": propertyID})
}

// RegisterPreferences godoc
// @Summary      Register a user's stay preferences
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        preferences  body      dto.RegisterPreferencesRequest  true  "Preferences"
// @Success      200          {object}  dto.StatusResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /users/preferences [post]
func (s StayController) RegisterPreferences(c *gin.Context) {
	var req dto.RegisterPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}

	if err := s.Service.RegisterPreferences(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil)
}

// MatchProperties godoc
// @Summary      Properties matching a user's preferences, location hidden
// @Tags         properties
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  dto.MatchResponse
// @Router       /properties/match/{user_id} [get]
func (s StayController) MatchProperties(c *gin.Context) {
	matches, err := s.Service.Match(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"matches": matches})
}

// CreateBooking godoc
// @Summary      Book a mystery stay
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      dto.BookingRequest  true  "Booking"
// @Success      200      {object}  dto.BookingConfirmation
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /bookings/create [post]
func (s StayController) CreateBooking(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body: "+err.Error())
		return
	}

	confirmation, err := s.Service.Book(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, confirmation)
}

// RevealBooking godoc
// @Summary      Reveal the exact location of a booked stay
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  dto.PropertyDetails
// @Failure      409         {object}  dto.ErrorResponse
// @Router       /bookings/reveal/{booking_id} [get]
func (s StayController) RevealBooking(c *gin.Context) {
	details, err := s.Service.Reveal(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, details)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  dto.StatusResponse
// @Failure      409         {object}  dto.ErrorResponse
// @Router       /bookings/cancel/{booking_id} [post]
func (s StayController) CancelBooking(c *gin.Context) {
	booking, err := s.Service.Cancel(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"booking_id": booking.ID, "booking_status": booking.Status})
}
