package database

// DataStore defines the unified interface for all data operations needed by the
// service layer. Consumers can depend on the smaller TaskReader or TaskWriter
// interfaces when they only need one side.
type DataStore interface {
	TaskRepository
}
