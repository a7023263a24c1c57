package handler

import (
	"net/http"

	"github.com/biolink/api/internal/middleware"
	"github.com/biolink/api/internal/service"
)

// FollowHandler handles follow graph endpoints
type FollowHandler struct {
	graphService *service.GraphService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(graphService *service.GraphService) *FollowHandler {
	return &FollowHandler{
		graphService: graphService,
	}
}

// Toggle handles POST /v1/users/{userId}/follow.
//
// The endpoint is a toggle: following when the edge is absent, unfollowing
// when it is present. The response reports the direction taken and the
// resulting counts.
func (h *FollowHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r.Context())
	targetID := r.PathValue("userId")

	result, err := h.graphService.ToggleFollow(r.Context(), viewerID, targetID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"target": "/v1/users/" + targetID + "/follow",
	})
}
