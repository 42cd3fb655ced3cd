package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// pragmas applied on open: WAL so inventory reads don't block stock
// writes, a busy timeout so concurrent adjustments queue instead of
// erroring, and enforced foreign keys for the item-owner relation.
var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA foreign_keys=ON",
	"PRAGMA synchronous=NORMAL",
}

// Open opens the inventory database at path. Passing ":memory:"
// yields a private in-memory database; the connection pool
// is capped at one in that case, since every new SQLite connection to
// ":memory:" would otherwise see its own empty database.
func Open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == ":memory:" {
		database.SetMaxOpenConns(1)
	}

	for _, pragma := range pragmas {
		if _, err := database.Exec(pragma); err != nil {
			database.Close()
			return nil, fmt.Errorf("setting %q: %w", pragma, err)
		}
	}

	return database, nil
}
