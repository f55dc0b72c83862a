package dto

import "mysterystays/models"

// ScanRequest is the body of POST /scan_airbnb. Empty fields take defaults.
type ScanRequest struct {
	City     string `json:"city"`
	CheckIn  string `json:"check_in" validate:"omitempty,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
}

const (
	DefaultScanCity     = "Lisbon"
	DefaultScanCheckIn  = "2025-05-01"
	DefaultScanCheckOut = "2025-05-05"
)

// WithDefaults fills empty fields.
func (r ScanRequest) WithDefaults() ScanRequest {
	if r.City == "" {
		r.City = DefaultScanCity
	}
	if r.CheckIn == "" {
		r.CheckIn = DefaultScanCheckIn
	}
	if r.CheckOut == "" {
		r.CheckOut = DefaultScanCheckOut
	}
	return r
}

type ScanResponse struct {
	Status   string           `json:"status"`
	Listings []models.Listing `json:"listings"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
