package task

import (
	"fmt"

	"github.com/thenoetrevino/tick/internal/models"
)

// Task-related errors
var (
	// ErrInvalidTaskID is returned for IDs that can never exist (zero or
	// negative). Such a task is simply absent, so it matches ErrTaskNotFound.
	ErrInvalidTaskID = fmt.Errorf("%w: task IDs start at 1", models.ErrTaskNotFound)
)
