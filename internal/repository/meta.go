package repository

import (
	"context"
	"errors"

	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/model"
)

// MetaRepository handles the singleton global counters document.
type MetaRepository struct {
	db database.Database
}

// NewMetaRepository creates a new meta repository
func NewMetaRepository(db database.Database) *MetaRepository {
	return &MetaRepository{db: db}
}

// Get reads the global counters. A missing document reads as all zeros.
func (r *MetaRepository) Get(ctx context.Context) (*model.GlobalMeta, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": model.GlobalMetaID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &model.GlobalMeta{}, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return &model.GlobalMeta{}, nil
	}

	return &model.GlobalMeta{
		Users:      getInt64(data, "users"),
		ViewsToday: getInt64(data, "views_today"),
		TotalViews: getInt64(data, "total_views"),
	}, nil
}

// IncrementViews bumps both global view counters. Plain increments, not
// transactional with the per-account view counter: each may land or be
// lost independently.
func (r *MetaRepository) IncrementViews(ctx context.Context) error {
	query := `UPSERT meta:global SET views_today = (views_today ?? 0) + 1, total_views = (total_views ?? 0) + 1, users = users ?? 0`
	return r.db.Execute(ctx, query, nil)
}

// ResetViewsToday zeroes the daily view counter.
func (r *MetaRepository) ResetViewsToday(ctx context.Context) error {
	query := `UPSERT meta:global SET views_today = 0, users = users ?? 0, total_views = total_views ?? 0`
	return r.db.Execute(ctx, query, nil)
}
