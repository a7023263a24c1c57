package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/service"
)

func TestMapServiceError_StatusCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account not found", service.ErrAccountNotFound, http.StatusNotFound},
		{"link not found", service.ErrLinkNotFound, http.StatusNotFound},
		{"username taken", service.ErrUsernameTaken, http.StatusConflict},
		{"email exists", service.ErrEmailExists, http.StatusConflict},
		{"follow conflict", service.ErrFollowConflict, http.StatusConflict},
		{"follow limit", service.ErrFollowLimit, http.StatusUnprocessableEntity},
		{"self follow", service.ErrSelfFollow, http.StatusUnprocessableEntity},
		{"bad email", service.ErrInvalidEmail, http.StatusUnprocessableEntity},
		{"bio too long", service.ErrBioTooLong, http.StatusUnprocessableEntity},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		problem := MapServiceError(tc.err)
		if problem.Status != tc.want {
			t.Errorf("%s: expected status %d, got %d", tc.name, tc.want, problem.Status)
		}
	}
}

func TestMapServiceError_FollowLimitCarriesCap(t *testing.T) {
	t.Parallel()

	problem := MapServiceError(service.ErrFollowLimit)
	if problem.Limit == nil || *problem.Limit != model.MaxFollowing {
		t.Fatalf("expected limit extension %d, got %v", model.MaxFollowing, problem.Limit)
	}
	if problem.Current == nil {
		t.Fatal("expected current extension field")
	}
}

func TestMapServiceError_Nil(t *testing.T) {
	t.Parallel()

	if MapServiceError(nil) != nil {
		t.Error("nil error must map to nil")
	}
}
