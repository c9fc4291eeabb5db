package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewActivity(t *testing.T) {
	t.Parallel() // Enable parallel execution
	participants := []string{"michael@mergington.edu", "daniel@mergington.edu"}

	activity, err := NewActivity(
		"Chess Club",
		"Learn strategies and compete in chess tournaments",
		"Fridays, 3:30 PM - 5:00 PM",
		12,
		participants,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if activity.Name != "Chess Club" {
		t.Errorf("Expected name %q, got %q", "Chess Club", activity.Name)
	}

	if activity.MaxParticipants != 12 {
		t.Errorf("Expected max participants 12, got %d", activity.MaxParticipants)
	}

	if !slices.Equal(activity.Participants, participants) {
		t.Errorf("Expected participants %v, got %v", participants, activity.Participants)
	}

	// The caller's slice must not alias the activity's list
	participants[0] = "changed@mergington.edu"
	if activity.Participants[0] != "michael@mergington.edu" {
		t.Error("Expected participants to be copied on construction")
	}

	// Test empty name
	_, err = NewActivity("  ", "desc", "schedule", 10, nil)
	if !errors.Is(err, ErrEmptyActivityName) || !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error wrapping %v, got %v", ErrEmptyActivityName, err)
	}

	// Test invalid capacity
	_, err = NewActivity("Chess Club", "desc", "schedule", 0, nil)
	if !errors.Is(err, ErrInvalidCapacity) || !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error wrapping %v, got %v", ErrInvalidCapacity, err)
	}

	// Test duplicate participant
	_, err = NewActivity("Chess Club", "desc", "schedule", 10, []string{"a@x.edu", "a@x.edu"})
	if !errors.Is(err, ErrDuplicateParticipant) || !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error %v, got %v", ErrDuplicateParticipant, err)
	}

	// Test empty participant email
	_, err = NewActivity("Chess Club", "desc", "schedule", 10, []string{""})
	if !errors.Is(err, ErrEmptyEmail) || !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error wrapping %v, got %v", ErrEmptyEmail, err)
	}
}

func TestActivityAddParticipant(t *testing.T) {
	t.Parallel() // Enable parallel execution
	activity, err := NewActivity("Digital Art", "desc", "schedule", 15, []string{"lily@mergington.edu"})
	if err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}

	if err := activity.AddParticipant("duplicate@mergington.edu"); err != nil {
		t.Fatalf("Expected first signup to succeed, got %v", err)
	}

	err = activity.AddParticipant("duplicate@mergington.edu")
	if err != ErrAlreadySignedUp {
		t.Errorf("Expected error %v, got %v", ErrAlreadySignedUp, err)
	}

	want := []string{"lily@mergington.edu", "duplicate@mergington.edu"}
	if !slices.Equal(activity.Participants, want) {
		t.Errorf("Expected participants %v, got %v", want, activity.Participants)
	}

	if err := activity.AddParticipant(""); err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}
}

func TestActivityRemoveParticipant(t *testing.T) {
	t.Parallel() // Enable parallel execution
	activity, err := NewActivity(
		"Volleyball",
		"desc",
		"schedule",
		14,
		[]string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
	)
	if err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}

	if err := activity.RemoveParticipant("b@mergington.edu"); err != nil {
		t.Fatalf("Expected removal to succeed, got %v", err)
	}

	want := []string{"a@mergington.edu", "c@mergington.edu"}
	if !slices.Equal(activity.Participants, want) {
		t.Errorf("Expected participants %v, got %v", want, activity.Participants)
	}

	err = activity.RemoveParticipant("doesnotexist@mergington.edu")
	if err != ErrNotRegistered {
		t.Errorf("Expected error %v, got %v", ErrNotRegistered, err)
	}

	if !slices.Equal(activity.Participants, want) {
		t.Errorf("Expected participants unchanged after failed removal, got %v", activity.Participants)
	}
}

func TestActivitySignupUnregisterRoundTrip(t *testing.T) {
	t.Parallel() // Enable parallel execution
	activity, err := NewActivity("Programming Class", "desc", "schedule", 20, []string{"emma@mergington.edu"})
	if err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}
	before := slices.Clone(activity.Participants)

	if err := activity.AddParticipant("roundtrip@mergington.edu"); err != nil {
		t.Fatalf("Expected signup to succeed, got %v", err)
	}
	if err := activity.RemoveParticipant("roundtrip@mergington.edu"); err != nil {
		t.Fatalf("Expected unregister to succeed, got %v", err)
	}

	if !slices.Equal(activity.Participants, before) {
		t.Errorf("Expected participants %v after round trip, got %v", before, activity.Participants)
	}
}

func TestActivityClone(t *testing.T) {
	t.Parallel() // Enable parallel execution
	activity, err := NewActivity("Basketball", "desc", "schedule", 15, []string{"marcus@mergington.edu"})
	if err != nil {
		t.Fatalf("Failed to create activity: %v", err)
	}

	clone := activity.Clone()
	if err := clone.AddParticipant("new@mergington.edu"); err != nil {
		t.Fatalf("Expected signup on clone to succeed, got %v", err)
	}

	if activity.HasParticipant("new@mergington.edu") {
		t.Error("Expected clone mutation not to affect the original")
	}
	if !clone.HasParticipant("marcus@mergington.edu") {
		t.Error("Expected clone to keep original participants")
	}
}
