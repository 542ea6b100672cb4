package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
	_ "modernc.org/sqlite"
)

// Today is the fixed "now" used by service and CLI tests
var Today = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

// FixedClock always reports Today
func FixedClock() time.Time {
	return Today
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema.
// The pool is pinned to one connection because every new connection
// to :memory: would open an empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// DaysFromToday returns the calendar date offset days away from Today
func DaysFromToday(offset int) *time.Time {
	d := models.DateOf(Today).AddDate(0, 0, offset)
	return &d
}

// CreateTestTask inserts a pending task straight into the store, bypassing the
// service so fixtures can hold states the service would derive away.
func CreateTestTask(t *testing.T, db *sql.DB, title string, opts ...func(*models.Task)) int {
	t.Helper()
	task := &models.Task{
		Title:     title,
		Status:    models.StatusPending,
		Priority:  models.PriorityMedium,
		CreatedAt: Today.Add(-24 * time.Hour),
	}
	for _, opt := range opts {
		opt(task)
	}

	id, err := database.NewRepository(db).InsertTask(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return id
}

// GetStatus reads a task's stored status without any derivation
func GetStatus(t *testing.T, db *sql.DB, id int) models.Status {
	t.Helper()
	var status string
	if err := db.QueryRowContext(context.Background(), "SELECT status FROM tasks WHERE id = ?", id).Scan(&status); err != nil {
		t.Fatalf("Failed to read status of task %d: %v", id, err)
	}
	return models.Status(status)
}

// CountTasks returns the number of stored rows
func CountTasks(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		t.Fatalf("Failed to count tasks: %v", err)
	}
	return n
}
