// Package state defines the application state, the closed action set, and
// the pure reducer that maps (state, action) to (next state, effect).
package state

import "slices"

// Task is a single task item. Tasks have no identity beyond their position
// in the list.
type Task struct {
	Text string
	Done bool
}

// NoSelection is the Selected value meaning no task is selected.
const NoSelection = -1

// AppState is the single source of truth for the application.
//
// Only Tasks is persisted; every other field is transient and reset to its
// default when a snapshot is loaded from disk.
type AppState struct {
	// Tasks is the ordered task list. Insertion order is meaningful.
	Tasks []Task

	// Input is the in-progress new-task text.
	Input string

	// Selected is an index into Tasks, or NoSelection.
	Selected int

	// Status is the human-readable result of the last operation.
	Status string

	// ExitRequested tells the host loop to stop.
	ExitRequested bool
}

// New returns the initial application state.
func New() AppState {
	return AppState{
		Selected: NoSelection,
		Status:   "Ready",
	}
}

// Equal reports whether two states are identical, including task order.
func (s AppState) Equal(o AppState) bool {
	return s.Input == o.Input &&
		s.Selected == o.Selected &&
		s.Status == o.Status &&
		s.ExitRequested == o.ExitRequested &&
		slices.Equal(s.Tasks, o.Tasks)
}

// selectionValid reports whether Selected points at an existing task.
func (s AppState) selectionValid() bool {
	return s.Selected >= 0 && s.Selected < len(s.Tasks)
}
