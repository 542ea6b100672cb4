package task

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
)

// Commands returns every task command. They are registered at the top level
// of the binary (tick add, tick list, ...).
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		UpdateCmd(),
		DeleteCmd(),
		CompleteCmd(),
		ShowCmd(),
		StatsCmd(),
	}
}

// taskView is the JSON shape of a task
type taskView struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        models.Status   `json:"status"`
	Priority      models.Priority `json:"priority,omitempty"`
	DueDate       string          `json:"due_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	DueAnnotation string          `json:"due_annotation,omitempty"`
}

func (v taskView) GetID() int {
	return v.ID
}

func newTaskView(task *models.Task) taskView {
	return taskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDateString(),
		CreatedAt:   task.CreatedAt,
	}
}

// runWithCLI opens the CLI for cmd and runs fn with it. Any error from
// either step is printed once through the command's formatter.
func runWithCLI(cmd *cobra.Command, fn func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Report(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return formatter.Report(fn(cmd.Context(), cliInstance, formatter))
}

// runWithTaskID is runWithCLI for commands taking a single task ID argument
func runWithTaskID(cmd *cobra.Command, args []string, fn func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id int) error) error {
	id, err := cli.ParseTaskID(args[0])
	if err != nil {
		return cli.NewFormatter(cmd).Report(err)
	}
	return runWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		return fn(ctx, c, f, id)
	})
}

// printSuccess writes a one-line confirmation in the success style
func printSuccess(w io.Writer, format string, args ...any) error {
	_, err := lipgloss.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf(format, args...)))
	return err
}
