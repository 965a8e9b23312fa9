package state

// Action is an immutable request to change state. The set of variants is
// closed: only the ten types below implement it, and Reduce handles all of
// them exhaustively.
type Action interface {
	isAction()
}

// SetInput replaces the in-progress new-task text.
type SetInput struct {
	Text string
}

// AddTask appends a task built from the current input.
type AddTask struct{}

// RemoveSelected removes the selected task, if any.
type RemoveSelected struct{}

// ToggleSelected flips the done flag on the selected task, if any.
type ToggleSelected struct{}

// SelectTask moves the selection. Index NoSelection deselects; out-of-range
// indexes are ignored.
type SelectTask struct {
	Index int
}

// RequestSave asks for the current task list to be persisted.
type RequestSave struct{}

// RequestLoad asks for the persisted task list to be loaded.
type RequestLoad struct{}

// LoadCompleted reports the outcome of a load effect. Loaded is false when
// the file was absent or unreadable; Tasks is only meaningful when Loaded
// is true.
type LoadCompleted struct {
	Tasks   []Task
	Loaded  bool
	Message string
}

// SetStatus replaces the status message.
type SetStatus struct {
	Message string
}

// Quit requests a clean exit.
type Quit struct{}

func (SetInput) isAction()       {}
func (AddTask) isAction()        {}
func (RemoveSelected) isAction() {}
func (ToggleSelected) isAction() {}
func (SelectTask) isAction()     {}
func (RequestSave) isAction()    {}
func (RequestLoad) isAction()    {}
func (LoadCompleted) isAction()  {}
func (SetStatus) isAction()      {}
func (Quit) isAction()           {}
