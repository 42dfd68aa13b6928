// Package sqlite provides SQLite-based storage for source records and digests.
// It is used for local runs and tests; the schema mirrors the production
// memory tables.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fwojciec/sifter"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
// Connection failures return an EUNAVAILABLE error.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return sifter.Errorf(sifter.EUNAVAILABLE, "failed to connect to database: %v", err)
	}

	// Wait 5 seconds on lock contention instead of failing immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// PingContext verifies the connection is still alive.
func (db *DB) PingContext(ctx context.Context) error {
	if err := db.db.PingContext(ctx); err != nil {
		return sifter.Errorf(sifter.EUNAVAILABLE, "failed to connect to database: %v", err)
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS domain_memory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER NOT NULL,
			category TEXT NOT NULL,
			key_field TEXT NOT NULL DEFAULT '',
			value TEXT,
			structured_data TEXT,
			updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS experience_memory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			member_id INTEGER NOT NULL,
			memory_type TEXT NOT NULL,
			content TEXT NOT NULL,
			confidence REAL NOT NULL,
			context TEXT,
			category TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			last_recalled TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_domain_memory_category ON domain_memory(category);
		CREATE INDEX IF NOT EXISTS idx_experience_memory_member_id ON experience_memory(member_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
