package handlers

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// ErrorResponse is the JSON body returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: username is required
	Error string `json:"error"`
}

// statusForError maps service errors onto the HTTP error taxonomy:
// validation errors are 400, an unknown user is 404, and anything else is an
// unexpected storage failure reported as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrInvalidUserID),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrDurationRequired),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidFromDate),
		errors.Is(err, services.ErrInvalidToDate),
		errors.Is(err, services.ErrInvalidLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
