package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services. Callers match with errors.Is.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMovieNotFound    = errors.New("movie not found")
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrBookingNotFound  = errors.New("booking not found")

	ErrUserExists       = errors.New("user already exists")
	ErrDuplicateBooking = errors.New("movie already booked for this date")
	ErrInvalidRating    = errors.New("rating must be a number between 0 and 10")

	// ErrUpstreamUnavailable marks a dependency outage (transport failure,
	// timeout or unexpected status). Retryable, never a validation failure.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

type ValidationCode string

const (
	CodeMissingField      ValidationCode = "missing_field"
	CodeInvalidDateFormat ValidationCode = "invalid_date_format"
	CodeDateInPast        ValidationCode = "date_in_past"
	CodeMissingMovie      ValidationCode = "missing_movie"
	CodeDateNotScheduled  ValidationCode = "date_not_scheduled"
	CodeMovieNotScheduled ValidationCode = "movie_not_scheduled_this_date"
	CodeMovieNotFound     ValidationCode = "movie_not_found"
)

type FieldError struct {
	Field   string         `json:"field"`
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

// ValidationError accumulates every violated field of a request so the caller
// gets them all in a single response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field string, code ValidationCode, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid data: " + strings.Join(parts, "; ")
}
