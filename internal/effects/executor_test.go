package effects_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"vibetodo/internal/effects"
	"vibetodo/internal/persist"
	"vibetodo/internal/state"
	"vibetodo/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingDispatcher captures follow-up actions.
type recordingDispatcher struct {
	mu      sync.Mutex
	actions []state.Action
}

func (d *recordingDispatcher) Dispatch(a state.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions = append(d.actions, a)
}

func (d *recordingDispatcher) all() []state.Action {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.actions)
}

// newExecutor builds a started executor with a recording dispatcher.
func newExecutor(t *testing.T, path string) (*effects.Executor, *recordingDispatcher) {
	t.Helper()
	exec := effects.New(path, testLogger())
	rec := &recordingDispatcher{}
	exec.Start(rec)
	return exec, rec
}

func TestSaveWritesFileAndReportsStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	exec, rec := newExecutor(t, path)

	tasks := []state.Task{{Text: "buy milk", Done: true}}
	exec.Run(state.SaveEffect{Tasks: tasks})
	exec.Wait()

	got := rec.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 follow-up action, got %d", len(got))
	}
	status, ok := got[0].(state.SetStatus)
	if !ok {
		t.Fatalf("expected SetStatus, got %T", got[0])
	}
	if status.Message != effects.StatusSaved {
		t.Errorf("expected %q, got %q", effects.StatusSaved, status.Message)
	}

	persisted, err := persist.Load(path)
	if err != nil {
		t.Fatalf("load back: %v", err)
	}
	if !slices.Equal(persisted, tasks) {
		t.Errorf("expected %v persisted, got %v", tasks, persisted)
	}
}

func TestSaveFailureReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.json")
	exec, rec := newExecutor(t, path)

	exec.Run(state.SaveEffect{Tasks: []state.Task{{Text: "x"}}})
	exec.Wait()

	got := rec.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 follow-up action, got %d", len(got))
	}
	status, ok := got[0].(state.SetStatus)
	if !ok {
		t.Fatalf("expected SetStatus, got %T", got[0])
	}
	if status.Message != effects.StatusSaveError {
		t.Errorf("expected %q, got %q", effects.StatusSaveError, status.Message)
	}
}

func TestLoadReportsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	tasks := []state.Task{{Text: "a"}, {Text: "b", Done: true}}
	if err := persist.Save(path, tasks); err != nil {
		t.Fatalf("seed state file: %v", err)
	}

	exec, rec := newExecutor(t, path)
	exec.Run(state.LoadEffect{})
	exec.Wait()

	got := rec.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 follow-up action, got %d", len(got))
	}
	load, ok := got[0].(state.LoadCompleted)
	if !ok {
		t.Fatalf("expected LoadCompleted, got %T", got[0])
	}
	if !load.Loaded {
		t.Fatal("expected Loaded true")
	}
	if !slices.Equal(load.Tasks, tasks) {
		t.Errorf("expected %v, got %v", tasks, load.Tasks)
	}
	if load.Message != effects.StatusLoaded {
		t.Errorf("expected %q, got %q", effects.StatusLoaded, load.Message)
	}
}

func TestLoadMissingAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "absent.json")},
		{"corrupt file", corrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec, rec := newExecutor(t, tt.path)
			exec.Run(state.LoadEffect{})
			exec.Wait()

			got := rec.all()
			if len(got) != 1 {
				t.Fatalf("expected 1 follow-up action, got %d", len(got))
			}
			load, ok := got[0].(state.LoadCompleted)
			if !ok {
				t.Fatalf("expected LoadCompleted, got %T", got[0])
			}
			if load.Loaded {
				t.Error("expected Loaded false")
			}
			if load.Message != effects.StatusLoadError {
				t.Errorf("expected %q, got %q", effects.StatusLoadError, load.Message)
			}
		})
	}
}

func TestUnconfiguredPathShortCircuits(t *testing.T) {
	exec, rec := newExecutor(t, "")

	exec.Run(state.SaveEffect{Tasks: []state.Task{{Text: "x"}}})
	exec.Run(state.LoadEffect{})
	exec.Wait()

	got := rec.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 follow-up actions, got %d", len(got))
	}
	status, ok := got[0].(state.SetStatus)
	if !ok || status.Message != effects.StatusSavePathUnset {
		t.Errorf("expected save short-circuit, got %#v", got[0])
	}
	load, ok := got[1].(state.LoadCompleted)
	if !ok || load.Loaded || load.Message != effects.StatusLoadPathUnset {
		t.Errorf("expected load short-circuit, got %#v", got[1])
	}
}

// TestStoreIntegration runs the full cycle: dispatch through a real store,
// let the executor perform the effect, and observe the follow-up action
// landing strictly after the triggering action's own transition.
func TestStoreIntegration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	exec := effects.New(path, testLogger())
	st := store.New(state.New(), exec)
	exec.Start(st)

	var mu sync.Mutex
	var statuses []string
	st.Subscribe(func(s state.AppState) {
		mu.Lock()
		statuses = append(statuses, s.Status)
		mu.Unlock()
	})

	st.Dispatch(state.SetInput{Text: "buy milk"})
	st.Dispatch(state.AddTask{})
	st.Dispatch(state.RequestSave{})
	exec.Wait()

	st.Dispatch(state.LoadCompleted{Loaded: true, Message: "reset"})
	st.Dispatch(state.RequestLoad{})
	exec.Wait()

	got := st.State()
	if len(got.Tasks) != 1 || got.Tasks[0].Text != "buy milk" {
		t.Errorf("expected loaded tasks, got %v", got.Tasks)
	}

	mu.Lock()
	defer mu.Unlock()
	expected := []string{
		"Ready",
		"Task added.",
		"Saving...",
		effects.StatusSaved,
		"reset",
		"Loading...",
		effects.StatusLoaded,
	}
	if !slices.Equal(statuses, expected) {
		t.Errorf("expected status sequence %v, got %v", expected, statuses)
	}
}
