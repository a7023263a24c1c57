package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biolink/api/internal/middleware"
	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/service"
)

// ============================================================================
// Stub Repositories
// ============================================================================

type stubGraphRepo struct {
	state    *model.EdgeState
	followed bool
}

func (s *stubGraphRepo) EdgeState(ctx context.Context, viewerID, targetID string) (*model.EdgeState, error) {
	return s.state, nil
}

func (s *stubGraphRepo) Follow(ctx context.Context, viewerID, targetID string, maxFollowing int64) error {
	s.followed = true
	return nil
}

func (s *stubGraphRepo) Unfollow(ctx context.Context, viewerID, targetID string) error {
	return nil
}

type stubAccountRepo struct {
	account *model.Account
}

func (s *stubAccountRepo) GetByID(ctx context.Context, id string) (*model.Account, error) {
	return s.account, nil
}

func newFollowHandlerForTest(state *model.EdgeState, target *model.Account) (*FollowHandler, *stubGraphRepo) {
	graph := &stubGraphRepo{state: state}
	svc := service.NewGraphService(service.GraphServiceConfig{
		GraphRepo:   graph,
		AccountRepo: &stubAccountRepo{account: target},
	})
	return NewFollowHandler(svc), graph
}

func authedRequest(method, path, userID string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

// ============================================================================
// Tests
// ============================================================================

func TestToggle_Follow_Returns200WithCounts(t *testing.T) {
	t.Parallel()

	target := &model.Account{ID: "account:b", Stats: model.AccountStats{Followers: 5}}
	h, graph := newFollowHandlerForTest(&model.EdgeState{Follows: false, FollowingCount: 3}, target)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users/{userId}/follow", h.Toggle)

	req := authedRequest(http.MethodPost, "/v1/users/account:b/follow", "account:a")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !graph.followed {
		t.Error("expected a follow write")
	}

	var resp struct {
		Data model.ToggleResult `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Data.Following {
		t.Error("expected following=true")
	}
	if resp.Data.ViewerFollowing != 4 || resp.Data.TargetFollowers != 6 {
		t.Errorf("unexpected counts %d/%d", resp.Data.ViewerFollowing, resp.Data.TargetFollowers)
	}
}

func TestToggle_Anonymous_Returns401(t *testing.T) {
	t.Parallel()

	h, _ := newFollowHandlerForTest(&model.EdgeState{}, &model.Account{ID: "account:b"})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users/{userId}/follow", h.Toggle)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/account:b/follow", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestToggle_SelfFollow_Returns422(t *testing.T) {
	t.Parallel()

	h, _ := newFollowHandlerForTest(&model.EdgeState{}, &model.Account{ID: "account:a"})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users/{userId}/follow", h.Toggle)

	req := authedRequest(http.MethodPost, "/v1/users/account:a/follow", "account:a")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rr.Code)
	}
}

func TestToggle_MissingTarget_Returns404(t *testing.T) {
	t.Parallel()

	h, _ := newFollowHandlerForTest(&model.EdgeState{}, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/users/{userId}/follow", h.Toggle)

	req := authedRequest(http.MethodPost, "/v1/users/account:ghost/follow", "account:a")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}
