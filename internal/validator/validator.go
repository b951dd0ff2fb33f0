package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRequired  = "is required"
	ErrMinLength = "must have at least %s elements"
	ErrGreaterTh = "must be greater than %s"
	ErrSeatLabel = "must be a seat label like A1"
	ErrInvalid   = "is invalid"

	seatLabelRgx = regexp.MustCompile(`^[A-Za-z][0-9]{1,2}$`)
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_label", validateSeatLabel)

	return validator
}

func validateSeatLabel(fl validator.FieldLevel) bool {
	return seatLabelRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreaterTh, err.Param())
	case "seat_label":
		return ErrSeatLabel
	default:
		return ErrInvalid
	}
}
