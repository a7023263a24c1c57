// Package testdb provides test database utilities for e2e testing.
//
// This package creates isolated SurrealDB test environments that run real
// queries against a real database instance, ensuring tests validate actual
// database behavior including unique indexes and transactions.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(ctx, "SELECT * FROM account", nil)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/biolink/api/internal/database"
)

// TestDB provides an isolated database environment for testing.
// Each TestDB instance gets a unique namespace to ensure test isolation.
type TestDB struct {
	DB        database.Database
	Namespace string
	Database  string
	t         *testing.T
}

var (
	// migrationOnce ensures migrations are only loaded once
	migrationOnce sync.Once
	migrations    []string
	migrationErr  error

	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// getTestConfig returns database config from environment or defaults
func getTestConfig() database.Config {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// loadMigrations reads all migration files in order
func loadMigrations() ([]string, error) {
	migrationOnce.Do(func() {
		paths := []string{
			"migrations",
			"../migrations",
			"../../migrations",
			"../../../migrations",
			"../../../../migrations",
		}

		var migrationDir string
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				migrationDir = p
				break
			}
		}

		if migrationDir == "" {
			if root := os.Getenv("BIOLINK_ROOT"); root != "" {
				migrationDir = filepath.Join(root, "migrations")
			}
		}

		if migrationDir == "" {
			migrationErr = fmt.Errorf("could not find migrations directory")
			return
		}

		entries, err := os.ReadDir(migrationDir)
		if err != nil {
			migrationErr = fmt.Errorf("reading migrations dir: %w", err)
			return
		}

		var files []string
		for _, e := range entries {
			name := e.Name()
			if strings.HasSuffix(name, ".surql") && name != "seed.surql" {
				files = append(files, name)
			}
		}
		sort.Strings(files)

		for _, name := range files {
			content, err := os.ReadFile(filepath.Join(migrationDir, name))
			if err != nil {
				migrationErr = fmt.Errorf("reading %s: %w", name, err)
				return
			}
			migrations = append(migrations, string(content))
		}
	})

	return migrations, migrationErr
}

// New creates a new isolated test database with migrations applied.
// The test is skipped when no SurrealDB instance is reachable.
// Call Close() when done to clean up the namespace.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := getTestConfig()
	namespace := uniqueNamespace()
	dbName := "test"

	cfg.Namespace = namespace
	cfg.Database = dbName

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Skipf("testdb: no SurrealDB instance reachable: %v", err)
	}

	tdb := &TestDB{
		DB:        db,
		Namespace: namespace,
		Database:  dbName,
		t:         t,
	}

	migs, err := loadMigrations()
	if err != nil {
		db.Close()
		t.Fatalf("testdb: failed to load migrations: %v", err)
	}

	for i, mig := range migs {
		if err := db.Execute(ctx, mig, nil); err != nil {
			db.Close()
			t.Fatalf("testdb: migration %d failed: %v", i+1, err)
		}
	}

	return tdb
}

// Close cleans up the test database by removing the namespace.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace)
	_ = tdb.DB.Execute(ctx, query, nil) // Ignore errors on cleanup

	tdb.DB.Close()
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return ctx
}

// MustExec executes a query and fails the test on error.
func (tdb *TestDB) MustExec(query string, vars map[string]interface{}) {
	tdb.t.Helper()
	if err := tdb.DB.Execute(tdb.Ctx(), query, vars); err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v", err)
	}
}
