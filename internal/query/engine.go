package query

import "context"

// State is the execution state of a submitted query.
type State string

const (
	StateQueued    State = "QUEUED"
	StateRunning   State = "RUNNING"
	StateSucceeded State = "SUCCEEDED"
	StateFailed    State = "FAILED"
	StateCancelled State = "CANCELLED"
)

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

// Status describes a query execution's current state. Reason carries the
// service's stated cause for FAILED/CANCELLED states, when available.
type Status struct {
	State  State
	Reason string
}

// Row is one result row, one string per column. Missing column values are
// empty strings.
type Row []string

// Engine runs queries against the snapshot analytics table.
type Engine interface {
	// Submit starts a query execution and returns its execution ID.
	Submit(ctx context.Context, sql string) (string, error)

	// Status fetches the current execution status.
	Status(ctx context.Context, executionID string) (Status, error)

	// Results fetches all result rows, header row included.
	Results(ctx context.Context, executionID string) ([]Row, error)
}
