package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Activity represents an extracurricular offering students can sign up for.
// Participants are kept in signup order and each email appears at most once.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity creates a new Activity from the given attributes.
// The participants slice is copied so the caller keeps ownership of it.
// Returns an error if validation fails.
func NewActivity(
	name, description, schedule string,
	maxParticipants int,
	participants []string,
) (*Activity, error) {
	activity := &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    append([]string{}, participants...),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the Activity has valid data.
// Every returned error wraps ErrValidation and the specific cause.
// Capacity is only checked for being positive; it is never enforced
// against the participant count.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyActivityName)
	}

	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidCapacity)
	}

	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if email == "" {
			return fmt.Errorf("%w: %w in %s", ErrValidation, ErrEmptyEmail, a.Name)
		}
		if _, ok := seen[email]; ok {
			return fmt.Errorf("%w: %w: %s in %s", ErrValidation, ErrDuplicateParticipant, email, a.Name)
		}
		seen[email] = struct{}{}
	}

	return nil
}

// HasParticipant reports whether email is in the participant list.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// AddParticipant appends email to the participant list.
// Returns ErrAlreadySignedUp without modifying the list if email is present.
func (a *Activity) AddParticipant(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant deletes the single entry matching email, keeping the
// order of the remaining participants.
// Returns ErrNotRegistered without modifying the list if email is absent.
func (a *Activity) RemoveParticipant(email string) error {
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotRegistered
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	clone := *a
	clone.Participants = append([]string{}, a.Participants...)
	return &clone
}
