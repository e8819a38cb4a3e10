package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"web3dir/models"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection.
// Available after TestMain has run and SetupTestDB succeeded.
// Returns nil if called before TestMain.
func GetTestDB() *DB {
	return testDB
}

// SetupTestDB creates a test database connection and creates the projects table.
// Should be called once in TestMain, not in individual tests.
// The schema is owned elsewhere; the copy here only mirrors its columns.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL, Options{MaxConns: 4, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := createTestSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

func createTestSchema(db *DB) error {
	ctx := context.Background()

	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id SERIAL PRIMARY KEY,
			link TEXT NOT NULL,
			date DATE NOT NULL,
			tags TEXT[] DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_projects_date ON projects(date DESC);
	`)
	return err
}

// InsertTestProject writes a project row directly. The service itself has no
// write path, so tests seed data through this helper.
func InsertTestProject(t *testing.T, db *DB, link string, date models.Date, tags []string) models.Project {
	t.Helper()

	project, err := scanProject(db.Pool.QueryRow(context.Background(), `
		INSERT INTO projects (link, date, tags)
		VALUES ($1, $2, $3)
		RETURNING id, link, date, COALESCE(tags, '{}'), created_at
	`, link, date, tags))
	require.NoError(t, err)

	return *project
}

// CleanupTestDB truncates the projects table for a fresh test state.
// Call this at the start of each integration test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE projects RESTART IDENTITY")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection.
// Should be called once in TestMain after all tests complete.
// Safe to call with nil DB (no-op).
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}
