// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories handle database insertion
// and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	account := f.CreateAccount(t)
//	popular := f.CreateAccount(t, fixtures.WithStats(5000, 120))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/model"
	"github.com/biolink/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db       database.Database
	accounts *repository.AccountRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:       db,
		accounts: repository.NewAccountRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// AccountOpts customizes account creation
type AccountOpts struct {
	Email    string
	Username string
	Password string
	Links    []model.Link
	Stats    model.AccountStats
}

// WithUsername sets a fixed username
func WithUsername(username string) func(*AccountOpts) {
	return func(o *AccountOpts) {
		o.Username = username
	}
}

// WithLinks sets the account's links
func WithLinks(links ...model.Link) func(*AccountOpts) {
	return func(o *AccountOpts) {
		o.Links = links
	}
}

// WithStats seeds denormalized counters (views and clicks only; follower
// counters must come from real follow operations to stay consistent).
func WithStats(views, clicks int64) func(*AccountOpts) {
	return func(o *AccountOpts) {
		o.Stats.Views = views
		o.Stats.Clicks = clicks
	}
}

// CreateAccount creates an account with optional customizations
func (f *Factory) CreateAccount(t *testing.T, opts ...func(*AccountOpts)) *model.Account {
	t.Helper()

	o := &AccountOpts{
		Email:    fmt.Sprintf("account_%s@gmail.com", randomID()),
		Username: fmt.Sprintf("user_%s", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}
	hashStr := string(hash)

	account := &model.Account{
		Email:       o.Email,
		Username:    o.Username,
		DisplayName: o.Username,
		Bio:         "New to Biolink.",
		Theme:       "dark",
		Links:       o.Links,
		Hash:        &hashStr,
	}

	if err := f.accounts.Create(ctx(), account); err != nil {
		t.Fatalf("fixtures: failed to create account: %v", err)
	}

	if o.Stats.Views != 0 || o.Stats.Clicks != 0 {
		err := f.db.Execute(ctx(), `UPDATE type::record($id) SET stats.views = $views, stats.clicks = $clicks`,
			map[string]interface{}{
				"id":     account.ID,
				"views":  o.Stats.Views,
				"clicks": o.Stats.Clicks,
			})
		if err != nil {
			t.Fatalf("fixtures: failed to seed stats: %v", err)
		}
		account.Stats.Views = o.Stats.Views
		account.Stats.Clicks = o.Stats.Clicks
	}

	return account
}
