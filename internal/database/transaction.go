package database

// Atomic batch utilities.
//
// SurrealDB transactions here are batch-based: statements accumulate and
// execute together inside BEGIN TRANSACTION / COMMIT TRANSACTION. TxBuilder
// namespaces query variables so statements from different call sites can be
// combined without collisions ($id in two statements becomes $v1_id and
// $v2_id). AtomicBatch is the fluent wrapper most callers want:
//
//	batch := NewAtomicBatch().
//	    Add(updateViewer, viewerVars).
//	    Add(updateTarget, targetVars)
//	err := batch.Execute(ctx, db) // all or nothing

import (
	"context"
	"fmt"
	"strings"
)

// TxBuilder builds atomic transaction queries with automatic variable namespacing.
type TxBuilder struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Add adds a statement to the transaction, namespacing variables to avoid
// collisions. Returns the namespaced variable map for reference.
func (tb *TxBuilder) Add(query string, vars map[string]interface{}) map[string]string {
	varMapping := make(map[string]string)
	newQuery := query

	for varName, varValue := range vars {
		tb.varCounter++
		newVarName := fmt.Sprintf("v%d_%s", tb.varCounter, varName)

		newQuery = strings.ReplaceAll(newQuery, "$"+varName, "$"+newVarName)

		tb.vars[newVarName] = varValue
		varMapping[varName] = newVarName
	}

	tb.statements = append(tb.statements, newQuery)
	return varMapping
}

// AddRaw adds a raw statement without variable substitution
func (tb *TxBuilder) AddRaw(query string) {
	tb.statements = append(tb.statements, query)
}

// Build returns the complete transaction query and merged variables
func (tb *TxBuilder) Build() (string, map[string]interface{}) {
	if len(tb.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), tb.vars
}

// ExecuteTransaction executes a transaction built with TxBuilder
func ExecuteTransaction(ctx context.Context, db Database, tb *TxBuilder) ([]interface{}, error) {
	query, vars := tb.Build()
	if query == "" {
		return nil, nil
	}

	return db.Query(ctx, query, vars)
}

// AtomicBatch provides a simpler API for batch operations that must be atomic
type AtomicBatch struct {
	queries []batchQuery
}

type batchQuery struct {
	query string
	vars  map[string]interface{}
}

// NewAtomicBatch creates a new atomic batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		queries: make([]batchQuery, 0),
	}
}

// Add adds a query to the batch
func (ab *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	ab.queries = append(ab.queries, batchQuery{query: query, vars: vars})
	return ab
}

// Execute runs all queries as a single transaction
func (ab *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(ab.queries) == 0 {
		return nil
	}

	tb := NewTxBuilder()
	for _, q := range ab.queries {
		tb.Add(q.query, q.vars)
	}

	_, err := ExecuteTransaction(ctx, db, tb)
	return err
}

// Len returns the number of queries in the batch
func (ab *AtomicBatch) Len() int {
	return len(ab.queries)
}
