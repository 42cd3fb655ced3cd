package db

import (
	"database/sql"
	"testing"
)

// NewTestDB returns an isolated in-memory database with the full
// schema and all migrations applied. Open caps in-memory databases at
// a single connection, so the schema stays visible to every query the
// test runs. The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := Migrate(database); err != nil {
		t.Fatalf("preparing test schema: %v", err)
	}

	return database
}
