package service

import (
	"context"

	"github.com/biolink/api/internal/model"
)

// GraphRepository defines the interface for follow graph storage.
// Follow and Unfollow must update both endpoints of the edge and their
// denormalized counters atomically: either every write commits or none do.
// Follow must also enforce maxFollowing inside the same transaction,
// aborting the commit when the viewer's set is already at the cap.
type GraphRepository interface {
	EdgeState(ctx context.Context, viewerID, targetID string) (*model.EdgeState, error)
	Follow(ctx context.Context, viewerID, targetID string, maxFollowing int64) error
	Unfollow(ctx context.Context, viewerID, targetID string) error
}

// GraphAccountRepository defines the account reads the graph service needs.
type GraphAccountRepository interface {
	GetByID(ctx context.Context, id string) (*model.Account, error)
}

// GraphService toggles follow edges between accounts. It is the only code
// path that mutates followers/following sets.
type GraphService struct {
	graphRepo   GraphRepository
	accountRepo GraphAccountRepository
	maxFollow   int64
}

// GraphServiceConfig holds configuration for the graph service
type GraphServiceConfig struct {
	GraphRepo   GraphRepository
	AccountRepo GraphAccountRepository

	// MaxFollowing overrides the default out-degree cap (tests only).
	MaxFollowing int64
}

// NewGraphService creates a new graph service
func NewGraphService(cfg GraphServiceConfig) *GraphService {
	maxFollow := cfg.MaxFollowing
	if maxFollow == 0 {
		maxFollow = model.MaxFollowing
	}
	return &GraphService{
		graphRepo:   cfg.GraphRepo,
		accountRepo: cfg.AccountRepo,
		maxFollow:   maxFollow,
	}
}

// ToggleFollow flips the directed follow edge from viewer to target.
//
// The direction is decided from the viewer's current following set: present
// means unfollow, absent means follow. A follow is rejected with
// ErrFollowLimit when the viewer is at the cap. The returned counts are
// computed from the state read before the commit, for optimistic UI
// refresh; a failed commit returns ErrFollowConflict and leaves both
// accounts untouched.
func (s *GraphService) ToggleFollow(ctx context.Context, viewerID, targetID string) (*model.ToggleResult, error) {
	if viewerID == "" {
		return nil, ErrNotAuthenticated
	}
	if viewerID == targetID {
		return nil, ErrSelfFollow
	}

	target, err := s.accountRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrAccountNotFound
	}

	state, err := s.graphRepo.EdgeState(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrAccountNotFound
	}

	if state.Follows {
		if err := s.graphRepo.Unfollow(ctx, viewerID, targetID); err != nil {
			return nil, ErrFollowConflict
		}
		return &model.ToggleResult{
			Following:       false,
			ViewerFollowing: floorZero(state.FollowingCount - 1),
			TargetFollowers: floorZero(target.Stats.Followers - 1),
		}, nil
	}

	if state.FollowingCount >= s.maxFollow {
		return nil, ErrFollowLimit
	}

	// The repo re-checks the cap inside the transaction. A breach that
	// slipped past the stale read above aborts the commit and surfaces
	// as a conflict; the retry's fresh read then reports ErrFollowLimit.
	if err := s.graphRepo.Follow(ctx, viewerID, targetID, s.maxFollow); err != nil {
		return nil, ErrFollowConflict
	}
	return &model.ToggleResult{
		Following:       true,
		ViewerFollowing: state.FollowingCount + 1,
		TargetFollowers: target.Stats.Followers + 1,
	}, nil
}

// EdgeState reads the viewer's side of the follow edge without mutating
// anything. Returns nil when the viewer record does not exist.
func (s *GraphService) EdgeState(ctx context.Context, viewerID, targetID string) (*model.EdgeState, error) {
	if viewerID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.graphRepo.EdgeState(ctx, viewerID, targetID)
}

// MaxFollowing returns the configured out-degree cap.
func (s *GraphService) MaxFollowing() int64 {
	return s.maxFollow
}

func floorZero(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
