package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// UpdateCmd returns the update command
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task",
		Long: `Update fields of an existing task. Only the flags given are changed.

Examples:
  tick update 3 --status done
  tick update 3 --title "New title" --due 2026-04-01`,
		Args: cli.ExactlyOneID,
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New task title")
	cmd.Flags().String("description", "", "New task description")
	cmd.Flags().String("status", "", "New task status (pending, done, overdue)")
	cmd.Flags().String("priority", "", "New task priority (high, medium, low)")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	req, err := parseUpdateFlags(cmd)
	if err != nil {
		return formatter.Report(err)
	}

	return runWithTaskID(cmd, args, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id int) error {
		req.TaskID = id
		task, err := c.App.TaskService.UpdateTask(ctx, req)
		if err != nil {
			return err
		}

		return f.Success(newTaskView(task), func(w io.Writer) error {
			return printSuccess(w, "Task %d updated successfully.", task.ID)
		})
	})
}

// parseUpdateFlags turns the flags the user actually set into an update request.
// Enum and date values are validated here so nothing is opened for bad input.
func parseUpdateFlags(cmd *cobra.Command) (taskservice.UpdateTaskRequest, error) {
	req := taskservice.UpdateTaskRequest{
		Title:       cli.StringFlag(cmd, "title"),
		Description: cli.StringFlag(cmd, "description"),
	}

	if v := cli.StringFlag(cmd, "status"); v != nil {
		status, err := models.ParseStatus(*v)
		if err != nil {
			return req, err
		}
		req.Status = &status
	}
	if v := cli.StringFlag(cmd, "priority"); v != nil {
		priority, err := models.ParsePriority(*v)
		if err != nil {
			return req, err
		}
		req.Priority = &priority
	}

	due, err := cli.DateFlag(cmd, "due")
	if err != nil {
		return req, err
	}
	req.DueDate = due

	return req, nil
}
