package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The App runs on testutil.FixedClock so due date derivation is deterministic.
// This lives in its own package to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db, app.WithClock(testutil.FixedClock))
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, title string, opts ...func(*models.Task)) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, title, opts...)
}
