package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/models"
)

// ExactlyOneID is a cobra.PositionalArgs requiring a single task ID argument
func ExactlyOneID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s expects exactly one task ID, got %d arguments", ErrUsage, cmd.Name(), len(args))
	}
	return nil
}

// ParseTaskID parses a positional task ID. Only non-numeric input is a usage
// error; an integer that names no task is left for the service to report.
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: task ID must be an integer, got %q", ErrUsage, arg)
	}
	return id, nil
}

// DateFlag parses an optional YYYY-MM-DD flag. It returns nil when the flag was not given.
func DateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	value, _ := cmd.Flags().GetString(name)
	d, err := models.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// StringFlag returns a pointer to the flag value only when the user set it
func StringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

// AddOutputFlags registers the --json and --quiet flags shared by every command
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}
