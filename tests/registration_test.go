package tests

/*
FEATURE: Registration
DOMAIN: Account Creation & Uniqueness

ACCEPTANCE CRITERIA:
===================

AC-REG-001: Register New Account
  GIVEN a valid email, username, and password
  WHEN the account is registered
  THEN it is created with default profile fields
  AND a signed token is returned

AC-REG-002: Username Unique
  GIVEN account "taken" exists
  WHEN another registration uses username "taken"
  THEN it fails with username taken
  AND the first account's record is untouched

AC-REG-003: Username Normalized Before Uniqueness
  GIVEN account "casecheck" exists
  WHEN another registration uses "CaseCheck"
  THEN it fails with username taken

AC-REG-004: Email Unique
  GIVEN an account registered with an email
  WHEN another registration reuses that email
  THEN it fails with email exists

AC-REG-005: Global User Count
  GIVEN the site meta record
  WHEN an account is registered
  THEN the global user counter increments
*/

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/repository"
	"github.com/biolink/api/internal/service"
	"github.com/biolink/api/internal/testing/helpers"
	"github.com/biolink/api/internal/testing/testdb"
)

// jwtIssuer adapts the test JWT helper to the auth service.
type jwtIssuer struct {
	helper *helpers.JWTHelper
}

func (i jwtIssuer) Generate(claims model.TokenClaims) (string, error) {
	return i.helper.Service().Sign(claims.UserID, claims.Email, claims.Username)
}

func newAuthService(t *testing.T, tdb *testdb.TestDB) *service.AuthService {
	t.Helper()
	return service.NewAuthService(service.AuthServiceConfig{
		AccountRepo: repository.NewAccountRepository(tdb.DB),
		Tokens:      jwtIssuer{helper: helpers.NewJWTHelper(t)},
	})
}

func TestRegistration_NewAccount(t *testing.T) {
	// AC-REG-001: Register New Account
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newAuthService(t, tdb)
	ctx := context.Background()

	result, err := svc.Register(ctx, model.RegisterRequest{
		Email:    "fresh@gmail.com",
		Username: "freshuser",
		Password: "longenoughpass",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Account)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "freshuser", result.Account.Username)
	assert.Equal(t, "New to Biolink.", result.Account.Bio)
	assert.Equal(t, "dark", result.Account.Theme)
}

func TestRegistration_UsernameUnique(t *testing.T) {
	// AC-REG-002: Username Unique
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:    "first@gmail.com",
		Username: "taken",
		Password: "longenoughpass",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterRequest{
		Email:    "second@gmail.com",
		Username: "taken",
		Password: "longenoughpass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUsernameTaken))

	// The first registration wins; the stored record is untouched.
	repo := repository.NewAccountRepository(tdb.DB)
	winner, err := repo.GetByUsername(ctx, "taken")
	require.NoError(t, err)
	require.NotNil(t, winner)
	assert.Equal(t, "first@gmail.com", winner.Email)
}

func TestRegistration_UsernameCaseInsensitive(t *testing.T) {
	// AC-REG-003: Username Normalized Before Uniqueness
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:    "lower@gmail.com",
		Username: "casecheck",
		Password: "longenoughpass",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterRequest{
		Email:    "upper@gmail.com",
		Username: "CaseCheck",
		Password: "longenoughpass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUsernameTaken))
}

func TestRegistration_EmailUnique(t *testing.T) {
	// AC-REG-004: Email Unique
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newAuthService(t, tdb)
	ctx := context.Background()

	_, err := svc.Register(ctx, model.RegisterRequest{
		Email:    "shared@gmail.com",
		Username: "emailone",
		Password: "longenoughpass",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, model.RegisterRequest{
		Email:    "shared@gmail.com",
		Username: "emailtwo",
		Password: "longenoughpass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmailExists))
}

func TestRegistration_IncrementsUserCount(t *testing.T) {
	// AC-REG-005: Global User Count
	tdb := testdb.New(t)
	defer tdb.Close()

	svc := newAuthService(t, tdb)
	metaRepo := repository.NewMetaRepository(tdb.DB)
	ctx := context.Background()

	before, err := metaRepo.Get(ctx)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.Register(ctx, model.RegisterRequest{
			Email:    fmt.Sprintf("meta%d@gmail.com", i),
			Username: fmt.Sprintf("metauser%d", i),
			Password: "longenoughpass",
		})
		require.NoError(t, err)
	}

	after, err := metaRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Users+2, after.Users)
}
