package tests

/*
FEATURE: Follow Graph
DOMAIN: Social Graph & Denormalized Counters

ACCEPTANCE CRITERIA:
===================

AC-FOL-001: Follow Toggle On
  GIVEN two accounts
  WHEN viewer toggles follow on target
  THEN viewer's following set contains target
  AND target's followers set contains viewer
  AND both denormalized counters increment

AC-FOL-002: Follow Toggle Off
  GIVEN viewer already follows target
  WHEN viewer toggles follow again
  THEN both sets no longer contain the edge
  AND both counters decrement back to zero

AC-FOL-003: Counters Match Sets
  GIVEN several accounts following a target
  WHEN we read the target's record
  THEN stats.followers equals the length of the followers set

AC-FOL-004: Self Follow Rejected
  GIVEN an account
  WHEN it toggles follow on itself
  THEN the operation fails
  AND no counters change

AC-FOL-005: Unknown Target Rejected
  GIVEN a viewer
  WHEN it toggles follow on a missing account ID
  THEN the operation fails with not found
*/

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biolink/api/internal/repository"
	"github.com/biolink/api/internal/service"
	"github.com/biolink/api/internal/testing/fixtures"
	"github.com/biolink/api/internal/testing/testdb"
)

func newGraphService(tdb *testdb.TestDB) *service.GraphService {
	return service.NewGraphService(service.GraphServiceConfig{
		GraphRepo:   repository.NewGraphRepository(tdb.DB),
		AccountRepo: repository.NewAccountRepository(tdb.DB),
	})
}

func TestFollow_ToggleOn(t *testing.T) {
	// AC-FOL-001: Follow Toggle On
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	viewer := f.CreateAccount(t)
	target := f.CreateAccount(t)

	svc := newGraphService(tdb)
	ctx := context.Background()

	result, err := svc.ToggleFollow(ctx, viewer.ID, target.ID)
	require.NoError(t, err)

	assert.True(t, result.Following)
	assert.Equal(t, int64(1), result.ViewerFollowing)
	assert.Equal(t, int64(1), result.TargetFollowers)

	accounts := repository.NewAccountRepository(tdb.DB)

	viewerRec, err := accounts.GetByID(ctx, viewer.ID)
	require.NoError(t, err)
	require.NotNil(t, viewerRec)
	assert.Contains(t, viewerRec.Following, target.ID)
	assert.Equal(t, int64(1), viewerRec.Stats.Following)

	targetRec, err := accounts.GetByID(ctx, target.ID)
	require.NoError(t, err)
	require.NotNil(t, targetRec)
	assert.Contains(t, targetRec.Followers, viewer.ID)
	assert.Equal(t, int64(1), targetRec.Stats.Followers)
}

func TestFollow_ToggleOff(t *testing.T) {
	// AC-FOL-002: Follow Toggle Off
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	viewer := f.CreateAccount(t)
	target := f.CreateAccount(t)

	svc := newGraphService(tdb)
	ctx := context.Background()

	_, err := svc.ToggleFollow(ctx, viewer.ID, target.ID)
	require.NoError(t, err)

	result, err := svc.ToggleFollow(ctx, viewer.ID, target.ID)
	require.NoError(t, err)

	assert.False(t, result.Following)
	assert.Equal(t, int64(0), result.ViewerFollowing)
	assert.Equal(t, int64(0), result.TargetFollowers)

	accounts := repository.NewAccountRepository(tdb.DB)

	viewerRec, err := accounts.GetByID(ctx, viewer.ID)
	require.NoError(t, err)
	assert.NotContains(t, viewerRec.Following, target.ID)
	assert.Equal(t, int64(0), viewerRec.Stats.Following)

	targetRec, err := accounts.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.NotContains(t, targetRec.Followers, viewer.ID)
	assert.Equal(t, int64(0), targetRec.Stats.Followers)
}

func TestFollow_CountersMatchSets(t *testing.T) {
	// AC-FOL-003: Counters Match Sets
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	target := f.CreateAccount(t)

	svc := newGraphService(tdb)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		viewer := f.CreateAccount(t)
		_, err := svc.ToggleFollow(ctx, viewer.ID, target.ID)
		require.NoError(t, err)
	}

	accounts := repository.NewAccountRepository(tdb.DB)
	targetRec, err := accounts.GetByID(ctx, target.ID)
	require.NoError(t, err)
	require.NotNil(t, targetRec)

	assert.Len(t, targetRec.Followers, 3)
	assert.Equal(t, int64(len(targetRec.Followers)), targetRec.Stats.Followers)
}

func TestFollow_SelfRejected(t *testing.T) {
	// AC-FOL-004: Self Follow Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	account := f.CreateAccount(t)

	svc := newGraphService(tdb)
	ctx := context.Background()

	_, err := svc.ToggleFollow(ctx, account.ID, account.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrSelfFollow))

	accounts := repository.NewAccountRepository(tdb.DB)
	rec, err := accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Stats.Following)
	assert.Equal(t, int64(0), rec.Stats.Followers)
}

func TestFollow_UnknownTarget(t *testing.T) {
	// AC-FOL-005: Unknown Target Rejected
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	viewer := f.CreateAccount(t)

	svc := newGraphService(tdb)

	_, err := svc.ToggleFollow(context.Background(), viewer.ID, "account:doesnotexist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAccountNotFound))
}
