package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvalidSearchField    = errors.New("invalid search field")
	ErrDuplicateTrackingCode = errors.New("could not generate a unique tracking code")
	ErrInternalServer        = errors.New("internal server error")
)

// ValidationError reports every missing or malformed field of a request,
// not just the first one encountered.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid appointment data: %s", strings.Join(e.Fields, ", "))
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
