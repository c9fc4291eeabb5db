// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyActivityName is returned when an activity has no name.
	ErrEmptyActivityName = errors.New("activity name cannot be empty")

	// ErrInvalidCapacity is returned when max_participants is not positive.
	ErrInvalidCapacity = errors.New("max participants must be greater than zero")

	// ErrEmptyEmail is returned when a participant email is empty.
	ErrEmptyEmail = errors.New("participant email cannot be empty")

	// ErrDuplicateParticipant is returned when an activity is constructed
	// with the same email listed more than once.
	ErrDuplicateParticipant = errors.New("duplicate participant")

	// ErrAlreadySignedUp is returned when a student signs up for an activity
	// they are already registered for.
	ErrAlreadySignedUp = errors.New("student is already signed up for this activity")

	// ErrNotRegistered is returned when a student unregisters from an activity
	// they are not registered for.
	ErrNotRegistered = errors.New("student is not registered for this activity")
)
