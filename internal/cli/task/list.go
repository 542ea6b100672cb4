package task

import (
	"context"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// titleWidth is the widest title shown in the list table
const titleWidth = 30

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, optionally filtered by status, priority or due date.

Past-due tasks that are not done are reported (and stored) as overdue.

Examples:
  tick list --status overdue
  tick list --priority high --sort due
  tick list --due 2026-03-01 --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Filter by status (pending, done, overdue)")
	cmd.Flags().String("priority", "", "Filter by priority (high, medium, low)")
	cmd.Flags().String("due", "", "Filter by due date (YYYY-MM-DD)")
	cmd.Flags().String("sort", "", "Sort by priority, due or created (default from config, else created)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	req, err := parseListFlags(cmd)
	if err != nil {
		return formatter.Report(err)
	}

	return runWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		if req.Sort == "" {
			req.Sort = c.Config.SortKey()
		}

		tasks, err := c.App.TaskService.ListTasks(ctx, req)
		if err != nil {
			return err
		}

		if f.Quiet {
			items := make([]interface{ GetID() int }, len(tasks))
			for i, task := range tasks {
				items[i] = task
			}
			return f.Success(items, nil)
		}

		views := make([]taskView, len(tasks))
		for i, task := range tasks {
			views[i] = newTaskView(task)
		}
		return f.Success(views, func(w io.Writer) error {
			return renderTaskTable(w, tasks)
		})
	})
}

func parseListFlags(cmd *cobra.Command) (taskservice.ListTasksRequest, error) {
	var req taskservice.ListTasksRequest

	if v, _ := cmd.Flags().GetString("status"); cmd.Flags().Changed("status") {
		status, err := models.ParseStatus(v)
		if err != nil {
			return req, err
		}
		req.Status = status
	}
	if v, _ := cmd.Flags().GetString("priority"); cmd.Flags().Changed("priority") {
		priority, err := models.ParsePriority(v)
		if err != nil {
			return req, err
		}
		req.Priority = priority
	}
	if v, _ := cmd.Flags().GetString("sort"); cmd.Flags().Changed("sort") {
		sort, err := models.ParseSortKey(v)
		if err != nil {
			return req, err
		}
		req.Sort = sort
	}

	due, err := cli.DateFlag(cmd, "due")
	if err != nil {
		return req, err
	}
	req.DueDate = due

	return req, nil
}

func renderTaskTable(w io.Writer, tasks []*models.Task) error {
	if len(tasks) == 0 {
		_, err := lipgloss.Fprintln(w, styles.SubtitleStyle.Render("No tasks found."))
		return err
	}

	t := styles.NewTable(func(row, col int) string {
		if row < 0 || row >= len(tasks) {
			return ""
		}
		switch col {
		case 2:
			return styles.StatusColor(tasks[row].Status)
		case 3:
			return styles.PriorityColor(tasks[row].Priority)
		}
		return ""
	}).Headers("ID", "Title", "Status", "Priority", "Due Date")

	for _, task := range tasks {
		due := task.DueDateString()
		if due == "" {
			due = "None"
		}
		t.Row(
			strconv.Itoa(task.ID),
			truncate.StringWithTail(task.Title, titleWidth, "…"),
			string(task.Status),
			styles.PriorityLabel(task.Priority),
			due,
		)
	}

	_, err := lipgloss.Fprintln(w, t.Render())
	return err
}
