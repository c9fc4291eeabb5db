package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/mergington-activities/internal/api/shared"
)

// activityNameParam is the path parameter holding the activity name.
const activityNameParam = "activity_name"

// emailParam is the query parameter holding the participant email.
const emailParam = "email"

// getActivityName extracts the activity name from the URL path.
// Names contain spaces, so clients send them percent-encoded. chi routes on
// the raw path when the URL needed it (e.g. an encoded "/"), in which case
// the parameter is still escaped and has to be decoded here.
func getActivityName(r *http.Request) string {
	name := chi.URLParam(r, activityNameParam)
	if r.URL.RawPath == "" {
		return name
	}

	if unescaped, err := url.PathUnescape(name); err == nil {
		return unescaped
	}
	return name
}

// parseParticipantRequest builds and validates a ParticipantRequest from
// the path and the "email" query parameter. Only a missing parameter is a
// request error; "?email=" is passed on so the activity is resolved first.
func parseParticipantRequest(r *http.Request) (ParticipantRequest, error) {
	req := ParticipantRequest{
		ActivityName: getActivityName(r),
	}
	if query := r.URL.Query(); query.Has(emailParam) {
		email := query.Get(emailParam)
		req.Email = &email
	}

	if err := shared.ValidateRequest(req); err != nil {
		return ParticipantRequest{}, err
	}
	return req, nil
}
