package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tickcli "github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil"
	"github.com/thenoetrevino/tick/internal/testutil/cli"
)

func TestUpdateTask_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	ctx := context.Background()

	t.Run("Update status only", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "Original Title", func(tk *models.Task) {
			tk.Description = "Original Description"
			tk.Priority = models.PriorityLow
			tk.DueDate = testutil.DaysFromToday(3)
		})

		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			fmt.Sprintf("%d", taskID), "--status", "done", "--quiet",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d\n", taskID), output)

		task, err := app.Repo().GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDone, task.Status)
		assert.Equal(t, "Original Title", task.Title)
		assert.Equal(t, "Original Description", task.Description)
		assert.Equal(t, models.PriorityLow, task.Priority)
		assert.Equal(t, testutil.DaysFromToday(3).Format(models.DateLayout), task.DueDateString())
	})

	t.Run("Update several fields", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "Before")

		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			fmt.Sprintf("%d", taskID),
			"--title", "After",
			"--description", "New body",
			"--priority", "high",
			"--due", "2026-12-24",
		})
		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Task %d updated successfully.", taskID))

		task, err := app.Repo().GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "After", task.Title)
		assert.Equal(t, "New body", task.Description)
		assert.Equal(t, models.PriorityHigh, task.Priority)
		assert.Equal(t, "2026-12-24", task.DueDateString())
	})

	t.Run("Moving due date into the past derives overdue", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "Slipping")

		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			fmt.Sprintf("%d", taskID), "--due", testutil.DaysFromToday(-2).Format(models.DateLayout), "--json",
		})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, "overdue", data["status"])
		assert.Equal(t, models.StatusOverdue, testutil.GetStatus(t, db, taskID))
	})
}

func TestUpdateTask_Negative(t *testing.T) {
	t.Run("Unknown ID on empty store", func(t *testing.T) {
		db, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"999", "--status", "done"})
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrTaskNotFound)
		assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))
		assert.Zero(t, testutil.CountTasks(t, db), "update must not create a task")
	})

	t.Run("Invalid status leaves row unchanged", func(t *testing.T) {
		db, app := cli.SetupCLITest(t)
		taskID := cli.CreateTestTask(t, db, "Stable")

		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			fmt.Sprintf("%d", taskID), "--title", "Changed", "--status", "archived",
		})
		assert.ErrorIs(t, err, models.ErrValidation)

		task, err := app.Repo().GetTask(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, "Stable", task.Title)
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		db, app := cli.SetupCLITest(t)
		taskID := cli.CreateTestTask(t, db, "Named")

		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{fmt.Sprintf("%d", taskID), "--title", ""})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("Bad ID arguments", func(t *testing.T) {
		_, app := cli.SetupCLITest(t)

		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"abc", "--status", "done"})
		assert.Equal(t, tickcli.ExitUsage, tickcli.ExitCode(err))

		_, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--status", "done"})
		assert.Equal(t, tickcli.ExitUsage, tickcli.ExitCode(err))
	})
}
