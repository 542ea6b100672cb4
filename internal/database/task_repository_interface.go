package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/tick/internal/models"
)

// TaskFilter narrows QueryTasks. Zero-valued fields do not filter.
type TaskFilter struct {
	Status   models.Status
	Priority models.Priority
	DueDate  *time.Time // equality on the calendar date
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id int) (*models.Task, error)
	QueryTasks(ctx context.Context, filter TaskFilter, sort models.SortKey) ([]*models.Task, error)
	CountTasksByStatus(ctx context.Context) (map[models.Status]int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	InsertTask(ctx context.Context, task *models.Task) (int, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int) error
	MarkOverdue(ctx context.Context, today time.Time) (int, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
