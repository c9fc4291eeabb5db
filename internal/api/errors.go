package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/mergington-activities/internal/api/shared"
	"github.com/phrazzld/mergington-activities/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrActivityNotFound):
		return http.StatusNotFound

	// Business-rule rejections
	case errors.Is(err, service.ErrAlreadySignedUp),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return "Activity not found"

	case errors.Is(err, service.ErrAlreadySignedUp):
		return "Student is already signed up for this activity"

	case errors.Is(err, service.ErrNotRegistered):
		return "Student is not registered for this activity"

	case errors.Is(err, service.ErrInvalidEmail):
		return "Email is required"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and detail for err. defaultMsg replaces
// the generic message for unexpected errors when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	detail := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		detail = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, detail, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'ParticipantRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
