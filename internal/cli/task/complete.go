package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
)

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "complete ID",
		Aliases: []string{"done"},
		Short:   "Mark a task as done",
		Args:    cli.ExactlyOneID,
		RunE:    runComplete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runComplete(cmd *cobra.Command, args []string) error {
	return runWithTaskID(cmd, args, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id int) error {
		task, err := c.App.TaskService.CompleteTask(ctx, id)
		if err != nil {
			return err
		}

		return f.Success(newTaskView(task), func(w io.Writer) error {
			return printSuccess(w, "Task %d marked as done.", task.ID)
		})
	})
}
