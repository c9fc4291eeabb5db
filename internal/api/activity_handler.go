package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/mergington-activities/internal/api/shared"
	"github.com/phrazzld/mergington-activities/internal/platform/logger"
	"github.com/phrazzld/mergington-activities/internal/service"
)

// ActivityHandler handles activity-related HTTP requests
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService service.ActivityService, logger *slog.Logger) *ActivityHandler {
	if activityService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("activityService cannot be nil for ActivityHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActivityHandler{
		activityService: activityService,
		logger:          logger.With(slog.String("component", "activity_handler")),
	}
}

// RegisterRoutes mounts the activity endpoints on r.
func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Get("/{activity_name}", h.GetActivity)
		r.Post("/{activity_name}/signup", h.Signup)
		r.Delete("/{activity_name}/unregister", h.Unregister)
	})
}

// ListActivities handles GET /activities requests
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityService.ListActivities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list activities")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activitiesToResponse(activities))
}

// GetActivity handles GET /activities/{activity_name} requests
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.activityService.GetActivity(r.Context(), getActivityName(r))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get activity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activityToResponse(activity))
}

// Signup handles POST /activities/{activity_name}/signup?email= requests
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := parseParticipantRequest(r)
	if err != nil {
		log.Debug("invalid signup request", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	confirmation, err := h.activityService.Signup(r.Context(), req.ActivityName, *req.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to sign up")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: confirmation.Message})
}

// Unregister handles DELETE /activities/{activity_name}/unregister?email= requests
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, err := parseParticipantRequest(r)
	if err != nil {
		log.Debug("invalid unregister request", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	confirmation, err := h.activityService.Unregister(r.Context(), req.ActivityName, *req.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to unregister")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: confirmation.Message})
}
