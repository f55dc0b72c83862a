package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"mysterystays/dto"
	"mysterystays/errors"
	"mysterystays/models"

	playground "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// newValidate reports fields by their json names.
func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and folds the first failure into an AppError.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid request", err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return errors.NewAppError(errors.ErrCodeRequiredField, field+" is required", errors.ErrMissingRequired)
	case "datetime":
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%s must be a date in %s format", field, fe.Param()), errors.ErrInvalidFormat)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()), errors.ErrInvalidInput)
	}
}

// ValidateProperty validates a property listing.
func ValidateProperty(req *dto.PropertyRequest) error {
	return validateStruct(req)
}

// ValidatePreferences validates a preference registration.
func ValidatePreferences(req *dto.RegisterPreferencesRequest) error {
	return validateStruct(req)
}

// ValidateBooking validates a booking request and returns the number of nights.
func ValidateBooking(req *dto.BookingRequest) (int, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	checkIn, err := time.Parse(models.DateLayout, req.CheckIn)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check_in", err)
	}
	checkOut, err := time.Parse(models.DateLayout, req.CheckOut)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid check_out", err)
	}

	if !checkOut.After(checkIn) {
		return 0, errors.NewAppError(errors.ErrCodeValidation, "check_out must be after check_in", errors.ErrInvalidInput)
	}

	return int(checkOut.Sub(checkIn).Hours() / 24), nil
}

// ValidateScan validates a scan request after defaults are applied.
func ValidateScan(req *dto.ScanRequest) error {
	return validateStruct(req)
}
