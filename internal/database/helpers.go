package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tick/internal/models"
)

// createdAtLayout is fixed width so created_at sorts correctly as text
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// withConn acquires a dedicated connection for the duration of fn and
// always releases it, whether fn succeeds or not.
func withConn(ctx context.Context, db *sql.DB, fn func(*sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to release connection", "error", err)
		}
	}()

	return fn(conn)
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, conn *sql.Conn, fn func(*sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one tasks row in taskColumns order
func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task        models.Task
		description sql.NullString
		status      string
		priority    sql.NullString
		dueDate     sql.NullString
		createdAt   string
	)

	if err := row.Scan(&task.ID, &task.Title, &description, &status, &priority, &dueDate, &createdAt); err != nil {
		return nil, err
	}

	task.Description = NullStringToString(description)
	task.Status = models.Status(status)
	task.Priority = models.Priority(NullStringToString(priority))

	if dueDate.Valid {
		due, err := time.Parse(models.DateLayout, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("task %d has malformed due_date %q: %w", task.ID, dueDate.String, err)
		}
		task.DueDate = &due
	}

	created, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("task %d has malformed created_at %q: %w", task.ID, createdAt, err)
	}
	task.CreatedAt = created

	return &task, nil
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNullString stores empty strings as NULL
func stringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// dateToNullString converts an optional calendar date to its stored form
func dateToNullString(d *time.Time) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Format(models.DateLayout), Valid: true}
}
