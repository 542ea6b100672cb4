package task

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tickcli "github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil"
	"github.com/thenoetrevino/tick/internal/testutil/cli"
)

func TestListTasks_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	pastDue := cli.CreateTestTask(t, db, "Past due pending", func(tk *models.Task) {
		tk.Priority = models.PriorityLow
		tk.DueDate = testutil.DaysFromToday(-1)
	})
	future := cli.CreateTestTask(t, db, "Future task", func(tk *models.Task) {
		tk.Priority = models.PriorityHigh
		tk.DueDate = testutil.DaysFromToday(2)
	})
	finished := cli.CreateTestTask(t, db, "Finished already", func(tk *models.Task) {
		tk.Status = models.StatusDone
		tk.DueDate = testutil.DaysFromToday(-5)
	})
	undated := cli.CreateTestTask(t, db, "A rather long task title that will not fit in the table", func(tk *models.Task) {
		tk.Priority = models.PriorityNone
	})

	t.Run("Human table", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)

		for _, header := range []string{"ID", "Title", "Status", "Priority", "Due Date"} {
			assert.Contains(t, output, header)
		}
		assert.Contains(t, output, "Future task")
		assert.Contains(t, output, "overdue")
		assert.Contains(t, output, "None")
		assert.Contains(t, output, "…", "long titles are truncated")
		assert.NotContains(t, output, "will not fit in the table")
	})

	t.Run("Status filter uses derived status", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "overdue", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(pastDue), output)
		assert.Equal(t, models.StatusOverdue, testutil.GetStatus(t, db, pastDue), "listing persists the derived status")

		output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "done", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(finished), output)
	})

	t.Run("Priority filter", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--priority", "high", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(future), output)
	})

	t.Run("Due filter", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--due", testutil.DaysFromToday(2).Format(models.DateLayout), "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(future), output)
	})

	t.Run("Sort by due date puts undated last", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "due", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(finished, pastDue, future, undated), output)
	})

	t.Run("Sort by priority", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--sort", "priority", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idsOutput(future, finished, pastDue, undated), output)
	})

	t.Run("JSON output", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].([]any)
		require.Len(t, data, 4)
		first := data[0].(map[string]any)
		assert.Equal(t, "Past due pending", first["title"])
		assert.Equal(t, "overdue", first["status"])
	})
}

func TestListTasks_Empty(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found.")
}

func TestListTasks_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	tests := [][]string{
		{"--status", "archived"},
		{"--priority", "urgent"},
		{"--sort", "title"},
		{"--due", "tomorrow"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := cli.ExecuteCLICommand(t, app, ListCmd(), args)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Equal(t, tickcli.ExitValidation, tickcli.ExitCode(err))
		})
	}
}

func idsOutput(ids ...int) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.Itoa(id))
		b.WriteString("\n")
	}
	return b.String()
}
