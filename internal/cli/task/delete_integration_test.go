package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tickcli "github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	"github.com/thenoetrevino/tick/internal/testutil/cli"
)

func TestDeleteTask(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	t.Run("Delete existing task", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "Doomed")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{fmt.Sprintf("%d", taskID)})
		require.NoError(t, err)
		assert.Contains(t, output, fmt.Sprintf("Task %d deleted successfully.", taskID))

		_, err = app.Repo().GetTask(context.Background(), taskID)
		assert.ErrorIs(t, err, models.ErrTaskNotFound)

		// show after delete fails as not found
		_, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{fmt.Sprintf("%d", taskID)})
		assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))
	})

	t.Run("Delete in JSON mode", func(t *testing.T) {
		taskID := cli.CreateTestTask(t, db, "Doomed too")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{fmt.Sprintf("%d", taskID), "--json"})
		require.NoError(t, err)

		data := cli.ParseJSON(t, output)["data"].(map[string]any)
		assert.Equal(t, float64(taskID), data["id"])
		assert.Equal(t, true, data["deleted"])
	})

	t.Run("Delete unknown task", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"999", "--json"})
		require.Error(t, err)
		assert.Equal(t, tickcli.ExitNotFound, tickcli.ExitCode(err))

		result := cli.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		assert.Equal(t, "TASK_NOT_FOUND", result["error"].(map[string]any)["code"])
	})
}
