package api

import (
	"bytes"
	"encoding/json"

	"github.com/phrazzld/mergington-activities/internal/domain"
)

// ParticipantRequest carries the inputs of the signup and unregister
// endpoints: the activity name from the path and the email from the query.
// Email is free-form; only its presence is checked, so a nil Email means
// the parameter was missing while a pointer to "" is an empty value.
type ParticipantRequest struct {
	ActivityName string  `validate:"required"`
	Email        *string `validate:"required"`
}

// ActivityResponse is the wire form of an activity. The name is the key of
// the enclosing object, so it is not repeated here.
type ActivityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse is returned by successful signup and unregister calls.
type MessageResponse struct {
	Message string `json:"message"`
}

// activityToResponse converts a domain.Activity to an ActivityResponse
func activityToResponse(activity *domain.Activity) ActivityResponse {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}

	return ActivityResponse{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

// NamedActivityResponse pairs an activity with the key it is listed under.
type NamedActivityResponse struct {
	Name     string
	Activity ActivityResponse
}

// ActivitiesResponse is the name-keyed object returned by GET /activities.
// It marshals to a JSON object whose keys keep registry order.
type ActivitiesResponse []NamedActivityResponse

// MarshalJSON implements json.Marshaler
func (a ActivitiesResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// activitiesToResponse builds the name-keyed object returned by GET /activities
func activitiesToResponse(activities []*domain.Activity) ActivitiesResponse {
	response := make(ActivitiesResponse, 0, len(activities))
	for _, activity := range activities {
		response = append(response, NamedActivityResponse{
			Name:     activity.Name,
			Activity: activityToResponse(activity),
		})
	}
	return response
}
