package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
)

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cli.ExactlyOneID,
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (r deleteResult) GetID() int {
	return r.ID
}

func runDelete(cmd *cobra.Command, args []string) error {
	return runWithTaskID(cmd, args, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id int) error {
		if err := c.App.TaskService.DeleteTask(ctx, id); err != nil {
			return err
		}

		return f.Success(deleteResult{ID: id, Deleted: true}, func(w io.Writer) error {
			return printSuccess(w, "Task %d deleted successfully.", id)
		})
	})
}
