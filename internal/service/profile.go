package service

import (
	"context"
	"log/slog"

	"github.com/biolink/api/internal/model"
)

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Account, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementLinkClick(ctx context.Context, id string, index int) error
}

// ProfileMetaRepository defines the global counter writes profile views trigger.
type ProfileMetaRepository interface {
	IncrementViews(ctx context.Context) error
}

// ProfileService handles public profile reads and owner edits.
type ProfileService struct {
	profileRepo ProfileRepository
	metaRepo    ProfileMetaRepository
}

// ProfileServiceConfig holds configuration for the profile service
type ProfileServiceConfig struct {
	ProfileRepo ProfileRepository
	MetaRepo    ProfileMetaRepository
}

// NewProfileService creates a new profile service
func NewProfileService(cfg ProfileServiceConfig) *ProfileService {
	return &ProfileService{
		profileRepo: cfg.ProfileRepo,
		metaRepo:    cfg.MetaRepo,
	}
}

// View fetches a public profile by username and records the view.
//
// The account view counter and the two global counters are independent
// best-effort increments: a failure is logged and never surfaced, and
// partial success is acceptable. Only the profile read itself can fail the
// request.
func (s *ProfileService) View(ctx context.Context, username string) (*model.PublicAccount, error) {
	account, err := s.profileRepo.GetByUsername(ctx, model.NormalizeUsername(username))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if err := s.profileRepo.IncrementViews(ctx, account.ID); err != nil {
		slog.Warn("profile view count not recorded",
			slog.String("account", account.ID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.metaRepo.IncrementViews(ctx); err != nil {
		slog.Warn("global view count not recorded",
			slog.String("error", err.Error()),
		)
	}

	return account.ToPublic(), nil
}

// ClickLink records a click on one of the profile's links and returns the
// link URL. The increment is best-effort: the URL is returned (and the
// client navigates) even when recording fails.
func (s *ProfileService) ClickLink(ctx context.Context, username string, index int) (string, error) {
	account, err := s.profileRepo.GetByUsername(ctx, model.NormalizeUsername(username))
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrAccountNotFound
	}

	if index < 0 || index >= len(account.Links) {
		return "", ErrLinkNotFound
	}

	if err := s.profileRepo.IncrementLinkClick(ctx, account.ID, index); err != nil {
		slog.Warn("link click not recorded",
			slog.String("account", account.ID),
			slog.Int("link", index),
			slog.String("error", err.Error()),
		)
	}

	return account.Links[index].URL, nil
}

// Get returns the owner's own account without recording a view.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Account, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	account, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Update applies an owner's profile edit after validation.
func (s *ProfileService) Update(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.Account, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	if err := validateProfileUpdate(req); err != nil {
		return nil, err
	}

	account, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	updates := make(map[string]interface{})
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Theme != nil {
		updates["theme"] = *req.Theme
	}
	if req.Links != nil {
		updates["links"] = linksToRecords(req.Links, account.Links)
	}
	if req.Connections != nil {
		updates["connections"] = connectionsToRecords(req.Connections)
	}

	return s.profileRepo.Update(ctx, userID, updates)
}

func validateProfileUpdate(req *model.UpdateProfileRequest) error {
	if req.DisplayName != nil && len(*req.DisplayName) > model.MaxDisplayName {
		return ErrDisplayNameTooLong
	}
	if req.Bio != nil && len(*req.Bio) > model.MaxBioLength {
		return ErrBioTooLong
	}
	if len(req.Links) > model.MaxLinks {
		return ErrTooManyLinks
	}
	if len(req.Connections) > model.MaxConnections {
		return ErrTooManyConnections
	}
	for _, l := range req.Links {
		if l.Title == "" || len(l.Title) > model.MaxLinkTitle || !model.ValidLinkURL(l.URL) {
			return ErrInvalidLink
		}
	}
	for _, c := range req.Connections {
		if !c.Type.Valid() || c.Value == "" {
			return ErrInvalidConnectionType
		}
	}
	return nil
}

// linksToRecords converts a submitted link list to storable records,
// preserving click counts for links whose URL survives the edit. New links
// start at zero; the owner cannot set counts directly.
func linksToRecords(links []model.Link, existing []model.Link) []map[string]interface{} {
	clicksByURL := make(map[string]int64, len(existing))
	for _, l := range existing {
		clicksByURL[l.URL] = l.Clicks
	}

	records := make([]map[string]interface{}, 0, len(links))
	for _, l := range links {
		records = append(records, map[string]interface{}{
			"title":  l.Title,
			"url":    l.URL,
			"clicks": clicksByURL[l.URL],
		})
	}
	return records
}

func connectionsToRecords(connections []model.Connection) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(connections))
	for _, c := range connections {
		records = append(records, map[string]interface{}{
			"type":  string(c.Type),
			"value": c.Value,
		})
	}
	return records
}
