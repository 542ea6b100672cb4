package models

// ============================================================================
// FIELD LIMITS
// ============================================================================

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
)

// ============================================================================
// STATUS
// ============================================================================

// Status is the lifecycle state of a task
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusOverdue Status = "overdue"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusPending, StatusOverdue, StatusDone}

// IsValid checks if the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusOverdue:
		return true
	}
	return false
}

// ParseStatus converts user input into a Status
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", &ValidationError{Field: "status", Value: s, Message: "must be one of: pending, done, overdue"}
	}
	return status, nil
}

// ============================================================================
// PRIORITY
// ============================================================================

// Priority is the importance of a task. The zero value means no priority is set.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every settable priority, most important first
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// DefaultPriority is assigned to new tasks that do not specify one
const DefaultPriority = PriorityMedium

// IsValid checks if the priority is one of the known values (PriorityNone is not)
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities from most to least important; unset sorts last
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// ParsePriority converts user input into a Priority
func ParsePriority(s string) (Priority, error) {
	priority := Priority(s)
	if !priority.IsValid() {
		return PriorityNone, &ValidationError{Field: "priority", Value: s, Message: "must be one of: high, medium, low"}
	}
	return priority, nil
}

// ============================================================================
// SORT KEYS
// ============================================================================

// SortKey selects the ascending ordering of list results
type SortKey string

const (
	SortByPriority SortKey = "priority"
	SortByDueDate  SortKey = "due"
	SortByCreated  SortKey = "created"
)

// DefaultSort is used when no sort key is given
const DefaultSort = SortByCreated

// ParseSortKey converts user input into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortByPriority, SortByDueDate, SortByCreated:
		return key, nil
	}
	return "", &ValidationError{Field: "sort", Value: s, Message: "must be one of: priority, due, created"}
}
