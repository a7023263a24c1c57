package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/model"
)

// AccountRepository handles account data access
type AccountRepository struct {
	db database.Database
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db database.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create writes a new account and bumps the global user counter in one
// transaction. The unique index on username (migrations) rejects a
// concurrent registration of the same name at commit time, surfacing as
// database.ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	account.ID = "account:" + uuid.NewString()

	tb := database.NewTxBuilder()
	tb.Add(`
		CREATE type::record($id) CONTENT {
			email: $email,
			username: $username,
			display_name: $display_name,
			bio: $bio,
			theme: $theme,
			hash: $hash,
			links: [],
			connections: [],
			followers: [],
			following: [],
			stats: { followers: 0, following: 0, views: 0, clicks: 0 },
			created_on: time::now(),
			updated_on: time::now()
		}
	`, map[string]interface{}{
		"id":           account.ID,
		"email":        account.Email,
		"username":     account.Username,
		"display_name": account.DisplayName,
		"bio":          account.Bio,
		"theme":        account.Theme,
		"hash":         hashOrNil(account.Hash),
	})
	tb.AddRaw(`UPSERT meta:global SET users = (users ?? 0) + 1, views_today = views_today ?? 0, total_views = total_views ?? 0`)

	if _, err := database.ExecuteTransaction(ctx, r.db, tb); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return fmt.Errorf("%w: username already exists", database.ErrDuplicate)
		}
		return err
	}

	now := time.Now().UTC()
	account.CreatedOn = now
	account.UpdatedOn = now
	return nil
}

// GetByID retrieves an account by record ID. Returns nil, nil when missing.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseAccountRecord(result)
}

// GetByUsername retrieves an account by its (normalized) username.
// Returns nil, nil when missing.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT * FROM account WHERE username = $username LIMIT 1`
	vars := map[string]interface{}{"username": username}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseAccountRecord(result)
}

// GetByEmail retrieves an account by email. Returns nil, nil when missing.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT * FROM account WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseAccountRecord(result)
}

// profileFields are the account fields the owner may update directly.
var profileFields = map[string]bool{
	"display_name": true,
	"bio":          true,
	"theme":        true,
	"links":        true,
	"connections":  true,
}

// Update applies owner profile edits and returns the updated account.
func (r *AccountRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Account, error) {
	setClause := ""
	vars := map[string]interface{}{"id": id}
	for field, value := range updates {
		if !profileFields[field] {
			continue
		}
		setClause += fmt.Sprintf("%s = $%s, ", field, field)
		vars[field] = value
	}
	if setClause == "" {
		return r.GetByID(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE type::record($id) SET %supdated_on = time::now()`, setClause)
	if err := r.db.Execute(ctx, query, vars); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// IncrementViews bumps an account's view counter. Single-statement,
// non-transactional: a lost increment is acceptable.
func (r *AccountRepository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET stats.views += 1`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// IncrementLinkClick bumps one link's click counter and the account's total
// click counter. The index must already be bounds-checked by the caller.
func (r *AccountRepository) IncrementLinkClick(ctx context.Context, id string, index int) error {
	query := fmt.Sprintf(`UPDATE type::record($id) SET links[%d].clicks += 1, stats.clicks += 1`, index)
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// TopByFollowers returns accounts ranked by follower count.
func (r *AccountRepository) TopByFollowers(ctx context.Context, limit int) ([]*model.Account, error) {
	query := `SELECT * FROM account ORDER BY stats.followers DESC LIMIT $limit`
	return r.queryAccounts(ctx, query, map[string]interface{}{"limit": limit})
}

// TopByViews returns accounts ranked by view count.
func (r *AccountRepository) TopByViews(ctx context.Context, limit int) ([]*model.Account, error) {
	query := `SELECT * FROM account ORDER BY stats.views DESC LIMIT $limit`
	return r.queryAccounts(ctx, query, map[string]interface{}{"limit": limit})
}

func (r *AccountRepository) queryAccounts(ctx context.Context, query string, vars map[string]interface{}) ([]*model.Account, error) {
	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(results)
	if !ok {
		return nil, nil
	}

	accounts := make([]*model.Account, 0, len(records))
	for _, rec := range records {
		account, err := parseAccountRecord(rec)
		if err != nil {
			return nil, err
		}
		if account != nil {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// parseAccountRecord maps a raw SurrealDB record onto a model.Account.
func parseAccountRecord(result interface{}) (*model.Account, error) {
	if result == nil {
		return nil, nil
	}

	// Unwrap array wrappers the client sometimes leaves in place
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, nil
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected account record format: %T", result)
	}

	account := &model.Account{
		ID:          convertSurrealID(data["id"]),
		Email:       getString(data, "email"),
		Username:    getString(data, "username"),
		DisplayName: getString(data, "display_name"),
		Bio:         getString(data, "bio"),
		Theme:       getString(data, "theme"),
		Followers:   getStringSlice(data, "followers"),
		Following:   getStringSlice(data, "following"),
		CreatedOn:   parseTime(data["created_on"]),
		UpdatedOn:   parseTime(data["updated_on"]),
	}

	if h, ok := data["hash"].(string); ok && h != "" {
		account.Hash = &h
	}

	if stats := getMap(data, "stats"); stats != nil {
		account.Stats = model.AccountStats{
			Followers: getInt64(stats, "followers"),
			Following: getInt64(stats, "following"),
			Views:     getInt64(stats, "views"),
			Clicks:    getInt64(stats, "clicks"),
		}
	}

	for _, l := range getMapSlice(data, "links") {
		account.Links = append(account.Links, model.Link{
			Title:  getString(l, "title"),
			URL:    getString(l, "url"),
			Clicks: getInt64(l, "clicks"),
		})
	}

	for _, c := range getMapSlice(data, "connections") {
		account.Connections = append(account.Connections, model.Connection{
			Type:  model.ConnectionType(getString(c, "type")),
			Value: getString(c, "value"),
		})
	}

	return account, nil
}

func hashOrNil(hash *string) interface{} {
	if hash == nil {
		return nil
	}
	return *hash
}
