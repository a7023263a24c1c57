package handler

import (
	"net/http"
	"strconv"

	"github.com/biolink/api/internal/middleware"
	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/service"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
	graphService   *service.GraphService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService, graphService *service.GraphService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		graphService:   graphService,
	}
}

// PublicProfileResponse is a public profile optionally annotated with the
// signed-in viewer's follow relationship.
type PublicProfileResponse struct {
	*model.PublicAccount
	ViewerFollows *bool `json:"viewer_follows,omitempty"`
}

// Get handles GET /v1/profiles/{username}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	profile, err := h.profileService.View(r.Context(), username)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := PublicProfileResponse{PublicAccount: profile}
	if viewerID := middleware.GetUserID(r.Context()); viewerID != "" && viewerID != profile.ID {
		if state, err := h.graphService.EdgeState(r.Context(), viewerID, profile.ID); err == nil && state != nil {
			response.ViewerFollows = &state.Follows
		}
	}

	WriteData(w, http.StatusOK, response, map[string]string{
		"self":   "/v1/profiles/" + profile.Username,
		"follow": "/v1/users/" + profile.ID + "/follow",
	})
}

// ClickLink handles POST /v1/profiles/{username}/links/{index}/click
func (h *ProfileHandler) ClickLink(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		WriteError(w, model.NewBadRequestError("link index must be an integer"))
		return
	}

	url, err := h.profileService.ClickLink(r.Context(), username, index)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]string{"url": url}, nil)
}

// GetOwn handles GET /v1/profile
func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	account, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toAccountResponse(account), map[string]string{
		"self":   "/v1/profile",
		"public": "/v1/profiles/" + account.Username,
	})
}

// Update handles PATCH /v1/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	account, err := h.profileService.Update(r.Context(), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toAccountResponse(account), map[string]string{
		"self":   "/v1/profile",
		"public": "/v1/profiles/" + account.Username,
	})
}
