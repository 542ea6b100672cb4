package task

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// AddCmd returns the add command
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task. New tasks start as pending.

Examples:
  tick add --title "Write report" --priority high --due 2026-03-01
  tick add --title "Call Bob" --description "About the **invoice**" --quiet`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (markdown)")
	cmd.Flags().String("priority", string(models.DefaultPriority), "Task priority (high, medium, low)")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	priorityStr, _ := cmd.Flags().GetString("priority")

	priority, err := models.ParsePriority(priorityStr)
	if err != nil {
		return formatter.Report(err)
	}
	due, err := cli.DateFlag(cmd, "due")
	if err != nil {
		return formatter.Report(err)
	}

	return runWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		task, err := c.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
			Title:       title,
			Description: description,
			Priority:    priority,
			DueDate:     due,
		})
		if err != nil {
			return err
		}

		return f.Success(newTaskView(task), func(w io.Writer) error {
			return printSuccess(w, "Task added successfully with ID: %d", task.ID)
		})
	})
}
