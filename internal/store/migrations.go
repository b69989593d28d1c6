package store

import (
	"context"
	"database/sql"
	"strings"
)

// schema contains the DDL for the dashboard's tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		email      TEXT NOT NULL,
		name       TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'staff',
		token      TEXT NOT NULL,
		token_exp  INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
}

// migrate applies every schema statement in order.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return migrationError(stmt, err)
		}
	}
	return nil
}

// migrationError wraps a failed DDL statement with a short identifier
// for the statement that failed.
func migrationError(stmt string, err error) error {
	// First two words of the statement are enough to identify it.
	fields := strings.Fields(stmt)
	head := stmt
	if len(fields) > 5 {
		head = strings.Join(fields[:6], " ")
	}
	return &MigrationError{Statement: head, Err: err}
}

// MigrationError reports which DDL statement failed during Migrate.
type MigrationError struct {
	Statement string
	Err       error
}

func (e *MigrationError) Error() string {
	return "migration failed at \"" + e.Statement + "\": " + e.Err.Error()
}

func (e *MigrationError) Unwrap() error { return e.Err }
