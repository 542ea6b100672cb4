package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/tick/internal/models"
)

// TaskRepo handles all task-related database operations.
// Every call acquires its own connection and releases it before returning.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, description, status, priority, due_date, created_at`

// InsertTask validates and stores a new task, returning its assigned ID.
// task.ID is set on success.
func (r *TaskRepo) InsertTask(ctx context.Context, task *models.Task) (int, error) {
	if err := task.Validate(); err != nil {
		return 0, err
	}

	var id int
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		return withTx(ctx, conn, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (title, description, status, priority, due_date, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				task.Title,
				stringToNullString(task.Description),
				string(task.Status),
				stringToNullString(string(task.Priority)),
				dateToNullString(task.DueDate),
				task.CreatedAt.UTC().Format(createdAtLayout),
			)
			if err != nil {
				return err
			}

			lastID, err := result.LastInsertId()
			if err != nil {
				return err
			}
			id = int(lastID)
			return nil
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	task.ID = id
	task.CreatedAt = task.CreatedAt.UTC().Round(0)
	return id, nil
}

// GetTask retrieves a single task by ID
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var task *models.Task
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx,
			`SELECT `+taskColumns+` FROM tasks WHERE id = ?`,
			id,
		)
		var err error
		task, err = scanTask(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", models.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// UpdateTask persists every field of an already loaded task.
// created_at is never rewritten.
func (r *TaskRepo) UpdateTask(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		return withTx(ctx, conn, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx,
				`UPDATE tasks
				 SET title = ?, description = ?, status = ?, priority = ?, due_date = ?
				 WHERE id = ?`,
				task.Title,
				stringToNullString(task.Description),
				string(task.Status),
				stringToNullString(string(task.Priority)),
				dateToNullString(task.DueDate),
				task.ID,
			)
			if err != nil {
				return err
			}
			return requireAffected(result, task.ID)
		})
	})
	if errors.Is(err, models.ErrTaskNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, err)
	}
	return nil
}

// DeleteTask removes a task from the database
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		return withTx(ctx, conn, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
			if err != nil {
				return err
			}
			return requireAffected(result, id)
		})
	})
	if errors.Is(err, models.ErrTaskNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// QueryTasks returns every task matching filter, ordered ascending by sort.
// Ties are broken by ID so results are stable.
func (r *TaskRepo) QueryTasks(ctx context.Context, filter TaskFilter, sort models.SortKey) ([]*models.Task, error) {
	query, args := buildTaskQuery(filter, sort)

	var tasks []*models.Task
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			task, err := scanTask(rows)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	return tasks, nil
}

// MarkOverdue flips every pending task due before today to overdue in a single
// statement and returns how many rows changed.
func (r *TaskRepo) MarkOverdue(ctx context.Context, today time.Time) (int, error) {
	var n int64
	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		return withTx(ctx, conn, func(tx *sql.Tx) error {
			result, err := tx.ExecContext(ctx,
				`UPDATE tasks
				 SET status = ?
				 WHERE status = ? AND due_date IS NOT NULL AND due_date < ?`,
				string(models.StatusOverdue),
				string(models.StatusPending),
				models.DateOf(today).Format(models.DateLayout),
			)
			if err != nil {
				return err
			}
			n, err = result.RowsAffected()
			return err
		})
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue tasks: %w", err)
	}
	return int(n), nil
}

// CountTasksByStatus returns the number of stored tasks per status.
// Every status is present in the result, with zero when no task has it.
func (r *TaskRepo) CountTasksByStatus(ctx context.Context) (map[models.Status]int, error) {
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, s := range models.Statuses {
		counts[s] = 0
	}

	err := withConn(ctx, r.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var status string
			var count int
			if err := rows.Scan(&status, &count); err != nil {
				return err
			}
			counts[models.Status(status)] = count
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	return counts, nil
}

// buildTaskQuery assembles the SELECT for QueryTasks. Every filter is an
// equality match bound as a parameter.
func buildTaskQuery(filter TaskFilter, sort models.SortKey) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Priority != models.PriorityNone {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(filter.Priority))
	}
	if filter.DueDate != nil {
		conditions = append(conditions, "due_date = ?")
		args = append(args, filter.DueDate.Format(models.DateLayout))
	}

	var b strings.Builder
	b.WriteString("SELECT " + taskColumns + " FROM tasks")
	if len(conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY " + orderByClause(sort))

	return b.String(), args
}

// priorityRankExpr maps the priority column onto models.Priority.Rank
var priorityRankExpr = func() string {
	var b strings.Builder
	b.WriteString("CASE priority")
	for _, p := range models.Priorities {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, p.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END", models.PriorityNone.Rank())
	return b.String()
}()

func orderByClause(sort models.SortKey) string {
	switch sort {
	case models.SortByPriority:
		return priorityRankExpr + ", id"
	case models.SortByDueDate:
		// undated tasks last
		return `due_date IS NULL, due_date, id`
	default:
		return `created_at, id`
	}
}

// requireAffected turns a zero-row write into ErrTaskNotFound
func requireAffected(result sql.Result, id int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", models.ErrTaskNotFound, id)
	}
	return nil
}
