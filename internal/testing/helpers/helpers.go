// Package helpers provides common test utilities for e2e testing.
//
// This package includes JWT token generation, HTTP request builders, and
// response decoding helpers for testing API endpoints.
package helpers

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/pkg/jwt"
)

// ============================================================================
// JWT Helpers
// ============================================================================

// JWTHelper provides JWT token generation for tests
type JWTHelper struct {
	service *jwt.Service
}

// NewJWTHelper creates a new JWT helper with an in-memory key
func NewJWTHelper(t *testing.T) *JWTHelper {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("helpers: failed to generate RSA key: %v", err)
	}

	return &JWTHelper{
		service: jwt.NewServiceWithKey(privateKey, "biolink-test", 15*time.Minute),
	}
}

// Service returns the underlying JWT service for wiring into middleware.
func (h *JWTHelper) Service() *jwt.Service {
	return h.service
}

// GenerateToken creates a valid JWT token for the given account
func (h *JWTHelper) GenerateToken(t *testing.T, account *model.Account) string {
	t.Helper()

	token, err := h.service.Sign(account.ID, account.Email, account.Username)
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// ============================================================================
// HTTP Helpers
// ============================================================================

// JSONRequest builds a request with a JSON-encoded body
func JSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("helpers: failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AuthedJSONRequest builds a JSON request carrying a Bearer token
func AuthedJSONRequest(t *testing.T, method, path, token string, body interface{}) *http.Request {
	t.Helper()

	req := JSONRequest(t, method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// DecodeData unmarshals a wrapped {"data": ...} response body into v
func DecodeData(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("helpers: failed to decode envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		t.Fatalf("helpers: failed to decode data: %v", err)
	}
}
