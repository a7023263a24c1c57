package handler

import (
	"net/http"
	"strconv"

	"github.com/biolink/api/internal/service"
)

// LeaderboardHandler handles leaderboard and stats endpoints
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// MostFollowed handles GET /v1/leaderboard/followed
func (h *LeaderboardHandler) MostFollowed(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaderboardService.MostFollowed(r.Context(), queryLimit(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, list, len(list), map[string]string{
		"self": "/v1/leaderboard/followed",
	})
}

// MostViewed handles GET /v1/leaderboard/viewed
func (h *LeaderboardHandler) MostViewed(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaderboardService.MostViewed(r.Context(), queryLimit(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, list, len(list), map[string]string{
		"self": "/v1/leaderboard/viewed",
	})
}

// Trending handles GET /v1/leaderboard/trending
func (h *LeaderboardHandler) Trending(w http.ResponseWriter, r *http.Request) {
	list, err := h.leaderboardService.Trending(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, list, len(list), map[string]string{
		"self": "/v1/leaderboard/trending",
	})
}

// Stats handles GET /v1/stats
func (h *LeaderboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaderboardService.GlobalStats(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, stats, nil)
}

func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
