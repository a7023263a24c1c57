package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxBuilder_NamespacesVariables(t *testing.T) {
	tb := NewTxBuilder()

	m1 := tb.Add("UPDATE type::record($id) SET stats.following += 1", map[string]interface{}{"id": "account:u1"})
	m2 := tb.Add("UPDATE type::record($id) SET stats.followers += 1", map[string]interface{}{"id": "account:u2"})

	assert.NotEqual(t, m1["id"], m2["id"], "same variable name in two statements must not collide")

	query, vars := tb.Build()
	require.Len(t, vars, 2)
	assert.Equal(t, "account:u1", vars[m1["id"]])
	assert.Equal(t, "account:u2", vars[m2["id"]])
	assert.NotContains(t, query, "$id ", "original variable name should be rewritten")
}

func TestTxBuilder_BuildWrapsInTransaction(t *testing.T) {
	tb := NewTxBuilder()
	tb.AddRaw("UPDATE meta:global SET users += 1")

	query, _ := tb.Build()
	assert.True(t, strings.HasPrefix(query, "BEGIN TRANSACTION;"))
	assert.True(t, strings.HasSuffix(query, "COMMIT TRANSACTION;"))
	assert.Contains(t, query, "UPDATE meta:global SET users += 1;")
}

func TestTxBuilder_EmptyBuild(t *testing.T) {
	query, vars := NewTxBuilder().Build()
	assert.Empty(t, query)
	assert.Nil(t, vars)
}

// recordingDB captures queries passed to it.
type recordingDB struct {
	Database
	lastQuery string
	lastVars  map[string]interface{}
}

func (r *recordingDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	r.lastQuery = query
	r.lastVars = vars
	return nil, nil
}

func TestAtomicBatch_ExecutesAsOneTransaction(t *testing.T) {
	db := &recordingDB{}

	batch := NewAtomicBatch().
		Add("UPDATE type::record($viewer) SET following += [$target]", map[string]interface{}{
			"viewer": "account:u1",
			"target": "account:u2",
		}).
		Add("UPDATE type::record($target) SET followers += [$viewer]", map[string]interface{}{
			"viewer": "account:u1",
			"target": "account:u2",
		})

	require.Equal(t, 2, batch.Len())
	require.NoError(t, batch.Execute(context.Background(), db))

	assert.Contains(t, db.lastQuery, "BEGIN TRANSACTION;")
	assert.Contains(t, db.lastQuery, "COMMIT TRANSACTION;")
	assert.Len(t, db.lastVars, 4)
}

func TestAtomicBatch_EmptyIsNoop(t *testing.T) {
	db := &recordingDB{}
	require.NoError(t, NewAtomicBatch().Execute(context.Background(), db))
	assert.Empty(t, db.lastQuery)
}
