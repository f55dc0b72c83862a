package models

import (
	"fmt"
	"time"
)

// Booking status values
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusRevealed  = "revealed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

type Booking struct {
	ID         string    `json:"booking_id" gorm:"primaryKey"`
	Seq        int       `json:"-" gorm:"uniqueIndex"`
	UserID     string    `json:"user_id" gorm:"index"`
	PropertyID string    `json:"property_id"`
	Property   *Property `json:"-" gorm:"foreignKey:PropertyID"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status" gorm:"index"`
	CreatedAt  time.Time `json:"-" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"-" gorm:"autoUpdateTime"`
}

// BookingID formats the sequential id of the n-th booking.
func BookingID(n int) string {
	return fmt.Sprintf("book_%d", n)
}

// CheckOutDate parses CheckOut in DateLayout.
func (b *Booking) CheckOutDate() (time.Time, error) {
	return time.Parse(DateLayout, b.CheckOut)
}
