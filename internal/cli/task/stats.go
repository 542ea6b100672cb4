package task

import (
	"context"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/models"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count tasks by status",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	return runWithCLI(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		stats, err := c.App.TaskService.Stats(ctx)
		if err != nil {
			return err
		}

		if f.Quiet {
			_, err := io.WriteString(f.Out, strconv.Itoa(stats.Total)+"\n")
			return err
		}

		return f.Success(stats, func(w io.Writer) error {
			return renderStats(w, stats)
		})
	})
}

func renderStats(w io.Writer, stats *taskservice.Stats) error {
	t := styles.NewTable(func(row, col int) string {
		if col == 0 && row >= 0 && row < len(models.Statuses) {
			return styles.StatusColor(models.Statuses[row])
		}
		return ""
	}).Headers("Status", "Count")

	for _, status := range models.Statuses {
		t.Row(string(status), strconv.Itoa(stats.ByStatus[status]))
	}
	t.Row("total", strconv.Itoa(stats.Total))

	_, err := lipgloss.Fprintln(w, t.Render())
	return err
}
