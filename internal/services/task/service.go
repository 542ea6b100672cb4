package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tick/internal/database"
	"github.com/thenoetrevino/tick/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	ShowTask(ctx context.Context, taskID int) (*models.TaskDetail, error)
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error)
	Stats(ctx context.Context) (*Stats, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	CompleteTask(ctx context.Context, taskID int) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority // Optional: empty means medium
	DueDate     *time.Time
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *time.Time
}

// ListTasksRequest filters and orders a listing. Zero values mean no filter.
type ListTasksRequest struct {
	Status   models.Status
	Priority models.Priority
	DueDate  *time.Time
	Sort     models.SortKey
}

// Stats summarises the store by derived status
type Stats struct {
	Total    int                   `json:"total"`
	ByStatus map[models.Status]int `json:"by_status"`
}

// Clock reports the current time
type Clock func() time.Time

// service implements Service interface
type service struct {
	repo   database.DataStore
	now    Clock
	logger *slog.Logger
}

// Option configures the task service
type Option func(*service)

// WithClock replaces time.Now, mostly so tests can pin "today"
func WithClock(now Clock) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new task service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTask handles task creation with validation and business rules
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	priority := req.Priority
	if priority == models.PriorityNone {
		priority = models.DefaultPriority
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		CreatedAt:   s.now(),
	}
	if req.DueDate != nil {
		due := models.DateOf(*req.DueDate)
		task.DueDate = &due
	}

	if _, err := s.repo.InsertTask(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug("task created", "id", task.ID, "priority", task.Priority, "due", task.DueDateString())

	// A task created with a past due date is overdue from the start
	if err := s.applyOverdue(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task with its derived status applied
func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.applyOverdue(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ShowTask retrieves a task along with its due date annotation
func (s *service) ShowTask(ctx context.Context, taskID int) (*models.TaskDetail, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	detail := &models.TaskDetail{Task: *task, Now: s.now()}
	if task.DueDate != nil {
		detail.DaysUntilDue = daysBetween(models.DateOf(s.now()), *task.DueDate)
		detail.DueAnnotation = dueAnnotation(detail.DaysUntilDue)
	}
	return detail, nil
}

// ListTasks sweeps overdue tasks first so a status filter sees derived status
func (s *service) ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error) {
	if req.Sort == "" {
		req.Sort = models.DefaultSort
	}

	if err := s.sweepOverdue(ctx); err != nil {
		return nil, err
	}

	filter := database.TaskFilter{
		Status:   req.Status,
		Priority: req.Priority,
		DueDate:  req.DueDate,
	}
	tasks, err := s.repo.QueryTasks(ctx, filter, req.Sort)
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if err := s.applyOverdue(ctx, task); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of req and persists the result
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}

	task, err := s.repo.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		due := models.DateOf(*req.DueDate)
		task.DueDate = &due
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Debug("task updated", "id", task.ID, "status", task.Status)

	if err := s.applyOverdue(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// CompleteTask marks a task as done
func (s *service) CompleteTask(ctx context.Context, taskID int) (*models.Task, error) {
	done := models.StatusDone
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Status: &done})
}

// DeleteTask handles task deletion
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	s.logger.Debug("task deleted", "id", taskID)
	return nil
}

// Stats counts tasks per derived status
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	if err := s.sweepOverdue(ctx); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountTasksByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByStatus: counts}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// applyOverdue is the single place where a task read from the store gets its
// derived status. A flip is written back so the row matches what was shown.
func (s *service) applyOverdue(ctx context.Context, task *models.Task) error {
	if task.Status != models.StatusPending || !task.IsOverdue(s.now()) {
		return nil
	}

	task.Status = models.StatusOverdue
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("failed to persist overdue status: %w", err)
	}

	s.logger.Debug("task became overdue", "id", task.ID, "due", task.DueDateString())
	return nil
}

func (s *service) sweepOverdue(ctx context.Context) error {
	n, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Debug("marked tasks overdue", "count", n)
	}
	return nil
}

// daysBetween counts calendar days from today to due. Both are midnight UTC,
// so whole Unix seconds divide evenly; time.Duration would saturate past ~292 years.
func daysBetween(today, due time.Time) int {
	return int((due.Unix() - today.Unix()) / 86400)
}

func dueAnnotation(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Overdue by %d days", -days)
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
