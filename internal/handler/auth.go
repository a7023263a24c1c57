package handler

import (
	"net/http"
	"time"

	"github.com/biolink/api/internal/middleware"
	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AccountResponse represents the caller's own account in API responses.
// It carries the email and the raw follow sets, which public views omit.
type AccountResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Username    string             `json:"username"`
	DisplayName string             `json:"display_name"`
	Bio         string             `json:"bio"`
	Theme       string             `json:"theme"`
	Links       []model.Link       `json:"links"`
	Connections []model.Connection `json:"connections"`
	Following   []string           `json:"following"`
	Stats       model.AccountStats `json:"stats"`
	CreatedOn   string             `json:"created_on"`
}

// TokenResponse represents a token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type authResponse struct {
	Account AccountResponse `json:"account"`
	Token   TokenResponse   `json:"token"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, authResponse{
		Account: toAccountResponse(result.Account),
		Token:   TokenResponse{AccessToken: result.Token, TokenType: "Bearer"},
	}, map[string]string{
		"self":    "/v1/auth/me",
		"profile": "/v1/profiles/" + result.Account.Username,
	})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, authResponse{
		Account: toAccountResponse(result.Account),
		Token:   TokenResponse{AccessToken: result.Token, TokenType: "Bearer"},
	}, map[string]string{
		"self": "/v1/auth/me",
	})
}

// Me handles GET /v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	account, err := h.authService.GetAccount(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toAccountResponse(account), map[string]string{
		"self":    "/v1/auth/me",
		"profile": "/v1/profiles/" + account.Username,
	})
}

func toAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Bio:         a.Bio,
		Theme:       a.Theme,
		Links:       a.Links,
		Connections: a.Connections,
		Following:   a.Following,
		Stats:       a.Stats,
		CreatedOn:   a.CreatedOn.Format(time.RFC3339),
	}
}
