package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// ============================================================================
// Chain Tests
// ============================================================================

func TestChain_MultipleMiddlewares_AppliesInOrder(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("H"))
	})

	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("1"))
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("2"))
			next.ServeHTTP(w, r)
		})
	}

	result := Chain(handler, mw1, mw2)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	result.ServeHTTP(rr, req)

	if rr.Body.String() != "12H" {
		t.Errorf("expected '12H', got %q", rr.Body.String())
	}
}

// ============================================================================
// RequestID Tests
// ============================================================================

func TestRequestID_NoHeader_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if captured == "" {
		t.Fatal("expected request ID in context")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("generated ID is not a UUID: %q", captured)
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Error("response header must carry the same request ID")
	}
}

func TestRequestID_WithHeader_PreservesExisting(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if captured != "client-supplied" {
		t.Errorf("expected client-supplied ID, got %q", captured)
	}
}

func TestGetRequestID_Missing_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

// ============================================================================
// Recovery Tests
// ============================================================================

func TestRecovery_WithPanic_Returns500JSON(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Internal Server Error") {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestRecovery_NoPanic_ProceedsNormally(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected pass-through status, got %d", rr.Code)
	}
}

// ============================================================================
// CORS Tests
// ============================================================================

func TestCORS_AllowedOrigin_SetsHeader(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://biolink.page"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://biolink.page")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://biolink.page" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

func TestCORS_DisallowedOrigin_NoHeader(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"https://biolink.page"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

func TestCORS_PreflightRequest_Returns204(t *testing.T) {
	t.Parallel()

	called := false
	handler := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rr.Code)
	}
	if called {
		t.Error("preflight must not reach the handler")
	}
}
