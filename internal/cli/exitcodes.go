package cli

import (
	"errors"

	"github.com/thenoetrevino/tick/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing or non-numeric arguments, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	// Use for: Unknown IDs, including zero and negative ones.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Invalid status or priority values, malformed dates,
	// title or description limits.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("usage error")

// ReportedError wraps an error that has already been printed to the user,
// so the top level only needs to pick the exit code.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, models.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitError
	}
}

// errorCode is the machine readable code used in JSON error envelopes
func errorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "TASK_NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
