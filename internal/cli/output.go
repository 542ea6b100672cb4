package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// NewFormatter builds a formatter from the command's --json and --quiet flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Success outputs successful operation result. human renders the
// human-readable form and is skipped in JSON and quiet modes.
func (f *OutputFormatter) Success(data any, human func(io.Writer) error) error {
	if f.Quiet {
		return f.printIDs(data)
	}

	if f.JSON {
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human == nil {
		_, err := fmt.Fprintf(f.Out, "%+v\n", data)
		return err
	}
	return human(f.Out)
}

// printIDs writes one ID per line for anything exposing GetID
func (f *OutputFormatter) printIDs(data any) error {
	switch v := data.(type) {
	case interface{ GetID() int }:
		_, err := fmt.Fprintf(f.Out, "%d\n", v.GetID())
		return err
	case []interface{ GetID() int }:
		for _, item := range v {
			if _, err := fmt.Fprintf(f.Out, "%d\n", item.GetID()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.Out).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if _, err := fmt.Fprintf(f.Err, "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.Err, "Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}

// Report prints err once in the formatter's mode and returns it marked as
// reported. A nil err passes through.
func (f *OutputFormatter) Report(err error) error {
	if err == nil {
		return nil
	}
	var suggestion string
	if ExitCode(err) == ExitNotFound {
		suggestion = "Run 'tick list' to see existing task IDs"
	}
	if fmtErr := f.ErrorWithSuggestion(errorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &ReportedError{Err: err}
}
