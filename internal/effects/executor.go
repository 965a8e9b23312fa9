// Package effects runs effect descriptors produced by the reducer. All file
// I/O in the application happens here, on a single worker goroutine, so the
// reduce step stays pure and the state file is never touched concurrently.
package effects

import (
	"log/slog"
	"sync"

	"vibetodo/internal/persist"
	"vibetodo/internal/state"
)

// Status messages dispatched on effect completion. Exported so front ends
// can recognize outcomes without re-deriving the strings.
const (
	StatusSaved         = "State saved successfully."
	StatusSaveError     = "ERROR saving state!"
	StatusLoaded        = "State loaded successfully."
	StatusLoadError     = "ERROR loading state or file not found."
	StatusSavePathUnset = "ERROR: Save path not configured."
	StatusLoadPathUnset = "ERROR: Load path not configured."
)

// Dispatcher accepts follow-up actions. The store implements it.
type Dispatcher interface {
	Dispatch(action state.Action)
}

// Executor performs save and load effects against a fixed state file path
// and reports each outcome as exactly one follow-up action.
//
// Effects are fire-and-forget: there is no mid-flight cancellation, only
// eventual completion reporting. The worker processes one effect at a time,
// which serializes access to the state file even if several requests are
// outstanding.
type Executor struct {
	path string
	log  *slog.Logger

	jobs    chan state.Effect
	pending sync.WaitGroup

	mu       sync.Mutex
	dispatch Dispatcher
	started  bool
}

// New creates an executor bound to the resolved state file path. An empty
// path means persistence was never configured; effects then short-circuit
// with an error status instead of touching the filesystem.
func New(path string, log *slog.Logger) *Executor {
	return &Executor{
		path: path,
		log:  log,
		jobs: make(chan state.Effect, 8),
	}
}

// Start binds the executor to a dispatcher and launches the worker.
// Must be called once, before any effect is run.
func (e *Executor) Start(d Dispatcher) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		panic("effects: executor started twice")
	}
	e.dispatch = d
	e.started = true
	go e.worker()
}

// Run enqueues an effect for the worker. Implements store.Runner.
func (e *Executor) Run(eff state.Effect) {
	e.pending.Add(1)
	e.jobs <- eff
}

// Wait blocks until every enqueued effect has completed and dispatched its
// follow-up action. Used by the one-shot CLI front end and by tests.
func (e *Executor) Wait() {
	e.pending.Wait()
}

func (e *Executor) worker() {
	for eff := range e.jobs {
		switch eff := eff.(type) {
		case state.SaveEffect:
			e.save(eff)
		case state.LoadEffect:
			e.load()
		}
		e.pending.Done()
	}
}

func (e *Executor) save(eff state.SaveEffect) {
	if e.path == "" {
		e.log.Error("save effect failed: state path not configured")
		e.dispatch.Dispatch(state.SetStatus{Message: StatusSavePathUnset})
		return
	}
	e.log.Debug("executing save effect", "path", e.path, "tasks", len(eff.Tasks))
	if err := persist.Save(e.path, eff.Tasks); err != nil {
		e.log.Error("save failed", "error", err)
		e.dispatch.Dispatch(state.SetStatus{Message: StatusSaveError})
		return
	}
	e.log.Info("save successful")
	e.dispatch.Dispatch(state.SetStatus{Message: StatusSaved})
}

func (e *Executor) load() {
	if e.path == "" {
		e.log.Error("load effect failed: state path not configured")
		e.dispatch.Dispatch(state.LoadCompleted{Message: StatusLoadPathUnset})
		return
	}
	e.log.Debug("executing load effect", "path", e.path)
	tasks, err := persist.Load(e.path)
	if err != nil {
		// A missing file and a corrupt one surface the same way: no
		// snapshot, informative status, in-memory state untouched.
		e.log.Warn("load failed or file not found", "error", err)
		e.dispatch.Dispatch(state.LoadCompleted{Message: StatusLoadError})
		return
	}
	e.log.Info("load successful", "tasks", len(tasks))
	e.dispatch.Dispatch(state.LoadCompleted{
		Tasks:   tasks,
		Loaded:  true,
		Message: StatusLoaded,
	})
}
