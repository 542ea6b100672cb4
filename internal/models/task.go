package models

import "time"

// DateLayout is the only accepted format for due dates, both on input and in the store
const DateLayout = "2006-01-02"

// Task represents a single to-do item
type Task struct {
	ID          int
	Title       string
	Description string
	Status      Status
	Priority    Priority   // PriorityNone when unset
	DueDate     *time.Time // calendar date at midnight UTC, nil when unset
	CreatedAt   time.Time
}

// GetID lets output formatters print the ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// DueDateString returns the due date as YYYY-MM-DD, or "" when unset
func (t *Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

// IsOverdue reports whether the task should be marked overdue on the given day.
// Tasks that are done never become overdue, and a task due today is not overdue yet.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.Status == StatusDone || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(DateOf(today))
}

// Validate checks the invariants that must hold before a task is persisted
func (t *Task) Validate() error {
	if t.Title == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if n := len([]rune(t.Title)); n > MaxTitleLength {
		return &ValidationError{Field: "title", Message: "cannot exceed 200 characters"}
	}
	if n := len([]rune(t.Description)); n > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: "cannot exceed 500 characters"}
	}
	if !t.Status.IsValid() {
		return &ValidationError{Field: "status", Value: string(t.Status), Message: "must be one of: pending, done, overdue"}
	}
	if t.Priority != PriorityNone && !t.Priority.IsValid() {
		return &ValidationError{Field: "priority", Value: string(t.Priority), Message: "must be one of: high, medium, low"}
	}
	return nil
}

// TaskDetail is the full view returned by show: the task plus a human readable due annotation
type TaskDetail struct {
	Task
	DueAnnotation string    // "Overdue by N days", "Due today", "N days left" or "" without a due date
	DaysUntilDue  int       // negative when overdue; only meaningful with a due date
	Now           time.Time // the clock reading the annotation was computed against
}

// DateOf truncates t to its calendar date in t's location, returned as midnight UTC
// so it compares cleanly with due dates read from the store.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "due", Value: s, Message: "date should be in format YYYY-MM-DD"}
	}
	return d, nil
}
