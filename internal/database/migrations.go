package database

import (
	"context"
	"database/sql"
)

// Migrate creates the tasks table and its indexes. It is idempotent and safe to
// run against an already initialized database.
func Migrate(ctx context.Context, db *sql.DB) error {
	return withConn(ctx, db, func(conn *sql.Conn) error {
		return withTx(ctx, conn, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tasks (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					title TEXT NOT NULL CHECK (length(title) > 0),
					description TEXT,
					status TEXT NOT NULL DEFAULT 'pending'
						CHECK (status IN ('pending', 'done', 'overdue')),
					priority TEXT DEFAULT 'medium'
						CHECK (priority IS NULL OR priority IN ('high', 'medium', 'low')),
					due_date TEXT,
					created_at TEXT NOT NULL
				)
			`)
			if err != nil {
				return err
			}

			// Speeds up status/due_date queries
			_, err = tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_tasks_status_due
				ON tasks(status, due_date)
			`)
			if err != nil {
				return err
			}

			// Speeds up priority/due_date queries
			_, err = tx.ExecContext(ctx, `
				CREATE INDEX IF NOT EXISTS idx_tasks_priority_due
				ON tasks(priority, due_date)
			`)
			return err
		})
	})
}
