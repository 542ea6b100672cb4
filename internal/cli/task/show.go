package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Long:  "Display all details of a task, including how far its due date is from today.",
		Args:  cli.ExactlyOneID,
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return runWithTaskID(cmd, args, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, id int) error {
		detail, err := c.App.TaskService.ShowTask(ctx, id)
		if err != nil {
			return err
		}

		view := newTaskView(&detail.Task)
		view.DueAnnotation = detail.DueAnnotation

		return f.Success(view, func(w io.Writer) error {
			_, err := lipgloss.Fprintln(w, renderTaskCard(detail))
			return err
		})
	})
}

// renderTaskCard lays out a task as a bordered card
func renderTaskCard(detail *models.TaskDetail) string {
	var content strings.Builder

	field := func(label, value string) {
		content.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%-10s", label)))
		content.WriteString(" ")
		content.WriteString(value)
		content.WriteString("\n")
	}

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Task #%d", detail.ID)))
	content.WriteString("\n\n")

	field("Title:", styles.ValueStyle.Render(detail.Title))
	field("Status:", styles.RenderStatus(detail.Status))
	field("Priority:", styles.RenderPriority(detail.Priority))

	if detail.DueDate != nil {
		due := fmt.Sprintf("%s (%s)", detail.DueDateString(), detail.DueAnnotation)
		field("Due Date:", styles.ColoredText(due, dueColor(detail)))
	} else {
		field("Due Date:", styles.SubtitleStyle.Render("None"))
	}

	created := fmt.Sprintf("%s (%s)",
		detail.CreatedAt.Local().Format("2006-01-02 15:04"),
		humanize.RelTime(detail.CreatedAt, detail.Now, "ago", "from now"))
	field("Created:", styles.SubtitleStyle.Render(created))

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(renderDescription(detail.Description, styles.CardWidth-6))

	return styles.RenderCard(content.String())
}

func dueColor(detail *models.TaskDetail) string {
	switch {
	case detail.Status == models.StatusDone:
		return styles.StatusColor(models.StatusDone)
	case detail.DaysUntilDue < 0:
		return styles.StatusColor(models.StatusOverdue)
	default:
		return styles.StatusColor(models.StatusPending)
	}
}
