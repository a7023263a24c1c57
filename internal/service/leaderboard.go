package service

import (
	"context"
	"sort"

	"github.com/biolink/api/internal/model"
)

// DefaultLeaderboardSize is the number of entries returned when the caller
// does not ask for a specific limit.
const DefaultLeaderboardSize = 20

// TrendingSize is the fixed number of trending entries.
const TrendingSize = 10

// MaxLeaderboardSize bounds caller-supplied limits.
const MaxLeaderboardSize = 100

// LeaderboardRepository defines the ranked account reads.
type LeaderboardRepository interface {
	TopByFollowers(ctx context.Context, limit int) ([]*model.Account, error)
	TopByViews(ctx context.Context, limit int) ([]*model.Account, error)
}

// MetaRepository defines the global counter reads.
type MetaRepository interface {
	Get(ctx context.Context) (*model.GlobalMeta, error)
}

// LeaderboardService serves ranked account lists and site-wide stats.
type LeaderboardService struct {
	accountRepo LeaderboardRepository
	metaRepo    MetaRepository
}

// LeaderboardServiceConfig holds configuration for the leaderboard service
type LeaderboardServiceConfig struct {
	AccountRepo LeaderboardRepository
	MetaRepo    MetaRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(cfg LeaderboardServiceConfig) *LeaderboardService {
	return &LeaderboardService{
		accountRepo: cfg.AccountRepo,
		metaRepo:    cfg.MetaRepo,
	}
}

// MostFollowed returns the top accounts ranked by follower count.
func (s *LeaderboardService) MostFollowed(ctx context.Context, limit int) ([]*model.PublicAccount, error) {
	accounts, err := s.accountRepo.TopByFollowers(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toPublicList(accounts), nil
}

// MostViewed returns the top accounts ranked by profile views.
func (s *LeaderboardService) MostViewed(ctx context.Context, limit int) ([]*model.PublicAccount, error) {
	accounts, err := s.accountRepo.TopByViews(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toPublicList(accounts), nil
}

// Trending returns the top accounts by trending score, where score is
// views + 2*followers. Candidates are pooled from the top 2x entries of
// each leaderboard before scoring; an account strong on both axes can
// outscore single-axis leaders from below the cut, so the pool is kept
// wider than the result.
func (s *LeaderboardService) Trending(ctx context.Context) ([]*model.PublicAccount, error) {
	byFollowers, err := s.accountRepo.TopByFollowers(ctx, 2*TrendingSize)
	if err != nil {
		return nil, err
	}
	byViews, err := s.accountRepo.TopByViews(ctx, 2*TrendingSize)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(byFollowers)+len(byViews))
	candidates := make([]*model.Account, 0, len(byFollowers)+len(byViews))
	for _, a := range append(byFollowers, byViews...) {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		candidates = append(candidates, a)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return trendingScore(candidates[i]) > trendingScore(candidates[j])
	})

	if len(candidates) > TrendingSize {
		candidates = candidates[:TrendingSize]
	}
	return toPublicList(candidates), nil
}

// GlobalStats returns the site-wide counters.
func (s *LeaderboardService) GlobalStats(ctx context.Context) (*model.GlobalMeta, error) {
	return s.metaRepo.Get(ctx)
}

func trendingScore(a *model.Account) int64 {
	return a.Stats.Views + 2*a.Stats.Followers
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardSize
	}
	if limit > MaxLeaderboardSize {
		return MaxLeaderboardSize
	}
	return limit
}

func toPublicList(accounts []*model.Account) []*model.PublicAccount {
	out := make([]*model.PublicAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ToPublic())
	}
	return out
}
