package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/biolink/api/internal/database"
	"github.com/biolink/api/internal/model"
)

// GraphRepository mutates the follow graph. Both sides of an edge are
// written in one batch transaction, and the denormalized counters are
// recomputed from set cardinality inside the same transaction, so the
// counter == |set| invariant holds by construction no matter how toggles
// interleave.
type GraphRepository struct {
	db database.Database
}

// NewGraphRepository creates a new graph repository
func NewGraphRepository(db database.Database) *GraphRepository {
	return &GraphRepository{db: db}
}

// Follow adds the directed edge viewer -> target. The viewer's following
// set and the target's followers set are updated atomically with their
// counters; array::union keeps set semantics if the edge already exists.
//
// The out-degree cap is re-checked inside the transaction: the THROW
// aborts the whole batch, so a caller's stale pre-check can never push
// the viewer past the cap when toggles interleave.
func (r *GraphRepository) Follow(ctx context.Context, viewerID, targetID string, maxFollowing int64) error {
	batch := database.NewAtomicBatch().
		Add(`IF (SELECT VALUE array::len(following) FROM ONLY type::record($viewer)) >= $cap { THROW "following cap reached" }`, map[string]interface{}{
			"viewer": viewerID,
			"cap":    maxFollowing,
		}).
		Add(`UPDATE type::record($viewer) SET following = array::union(following, [$target])`, map[string]interface{}{
			"viewer": viewerID,
			"target": targetID,
		}).
		Add(`UPDATE type::record($viewer) SET stats.following = array::len(following)`, map[string]interface{}{
			"viewer": viewerID,
		}).
		Add(`UPDATE type::record($target) SET followers = array::union(followers, [$viewer])`, map[string]interface{}{
			"viewer": viewerID,
			"target": targetID,
		}).
		Add(`UPDATE type::record($target) SET stats.followers = array::len(followers)`, map[string]interface{}{
			"target": targetID,
		})

	return r.execute(ctx, batch)
}

// Unfollow removes the directed edge viewer -> target. Counters are
// recomputed from the sets, so they floor at zero.
func (r *GraphRepository) Unfollow(ctx context.Context, viewerID, targetID string) error {
	batch := database.NewAtomicBatch().
		Add(`UPDATE type::record($viewer) SET following = array::difference(following, [$target])`, map[string]interface{}{
			"viewer": viewerID,
			"target": targetID,
		}).
		Add(`UPDATE type::record($viewer) SET stats.following = array::len(following)`, map[string]interface{}{
			"viewer": viewerID,
		}).
		Add(`UPDATE type::record($target) SET followers = array::difference(followers, [$viewer])`, map[string]interface{}{
			"viewer": viewerID,
			"target": targetID,
		}).
		Add(`UPDATE type::record($target) SET stats.followers = array::len(followers)`, map[string]interface{}{
			"target": targetID,
		})

	return r.execute(ctx, batch)
}

func (r *GraphRepository) execute(ctx context.Context, batch *database.AtomicBatch) error {
	if err := batch.Execute(ctx, r.db); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return err
		}
		// The store aborts the whole batch on any failure; no partial
		// state is left behind.
		return fmt.Errorf("%w: %v", database.ErrConflict, err)
	}
	return nil
}

// EdgeState reads the viewer side of an edge for a toggle decision.
func (r *GraphRepository) EdgeState(ctx context.Context, viewerID, targetID string) (*model.EdgeState, error) {
	query := `SELECT array::len(following) AS following_count, $target IN following AS follows FROM type::record($viewer)`
	vars := map[string]interface{}{
		"viewer": viewerID,
		"target": targetID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected edge state format: %T", result)
	}

	state := &model.EdgeState{
		FollowingCount: getInt64(data, "following_count"),
	}
	if follows, ok := data["follows"].(bool); ok {
		state.Follows = follows
	}
	return state, nil
}
