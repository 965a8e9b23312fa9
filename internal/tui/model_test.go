package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vibetodo/internal/state"
)

// recorder captures dispatched actions.
type recorder struct {
	actions []state.Action
}

func (r *recorder) dispatch(a state.Action) {
	r.actions = append(r.actions, a)
}

func newTestModel(snap state.AppState) (Model, *recorder) {
	rec := &recorder{}
	return NewModel(rec.dispatch, snap), rec
}

// step runs Update and executes any returned command so the dispatches it
// carries land in the recorder.
func step(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	if cmd != nil {
		cmd()
	}
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowsingKeysDispatch(t *testing.T) {
	snap := state.AppState{
		Tasks:    []state.Task{{Text: "a"}, {Text: "b"}},
		Selected: 0,
	}

	tests := []struct {
		key  string
		want state.Action
	}{
		{"r", state.RemoveSelected{}},
		{"t", state.ToggleSelected{}},
		{" ", state.ToggleSelected{}},
		{"s", state.RequestSave{}},
		{"l", state.RequestLoad{}},
		{"q", state.Quit{}},
		{"down", state.SelectTask{Index: 1}},
		{"up", state.SelectTask{Index: -1}},
		{"esc", state.SelectTask{Index: state.NoSelection}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, rec := newTestModel(snap)
			step(m, key(tt.key))

			if len(rec.actions) != 1 {
				t.Fatalf("expected 1 action, got %v", rec.actions)
			}
			if rec.actions[0] != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, rec.actions[0])
			}
		})
	}
}

func TestMoveSelectionFromNoSelection(t *testing.T) {
	snap := state.AppState{
		Tasks:    []state.Task{{Text: "a"}, {Text: "b"}},
		Selected: state.NoSelection,
	}

	for _, k := range []string{"down", "up"} {
		m, rec := newTestModel(snap)
		step(m, key(k))
		want := state.Action(state.SelectTask{Index: 0})
		if len(rec.actions) != 1 || rec.actions[0] != want {
			t.Errorf("%s: expected %#v, got %v", k, want, rec.actions)
		}
	}
}

func TestMoveSelectionEmptyListDispatchesNothing(t *testing.T) {
	m, rec := newTestModel(state.New())
	step(m, key("down"))
	step(m, key("up"))
	if len(rec.actions) != 0 {
		t.Errorf("expected no actions, got %v", rec.actions)
	}
}

func TestAddFlow(t *testing.T) {
	m, rec := newTestModel(state.New())

	m = step(m, key("a"))
	if !m.editing {
		t.Fatal("expected editing mode after 'a'")
	}
	if len(rec.actions) != 0 {
		t.Fatalf("entering edit mode must not dispatch, got %v", rec.actions)
	}

	for _, r := range "hi" {
		m = step(m, key(string(r)))
	}
	m = step(m, key("enter"))

	if len(rec.actions) != 2 {
		t.Fatalf("expected 2 actions, got %v", rec.actions)
	}
	if got, want := rec.actions[0], (state.SetInput{Text: "hi"}); got != state.Action(want) {
		t.Errorf("expected %#v, got %#v", want, got)
	}
	if _, ok := rec.actions[1].(state.AddTask); !ok {
		t.Errorf("expected AddTask, got %#v", rec.actions[1])
	}
	if m.editing {
		t.Error("expected editing mode left after enter")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input reset, got %q", m.input.Value())
	}
}

func TestEscCancelsAdd(t *testing.T) {
	m, rec := newTestModel(state.New())

	m = step(m, key("a"))
	m = step(m, key("x"))
	m = step(m, key("esc"))

	if m.editing {
		t.Error("expected editing cancelled")
	}
	if m.input.Value() != "" {
		t.Errorf("expected input reset, got %q", m.input.Value())
	}
	if len(rec.actions) != 0 {
		t.Errorf("expected no actions, got %v", rec.actions)
	}
}

func TestSnapshotUpdatesModel(t *testing.T) {
	m, _ := newTestModel(state.New())

	snap := state.AppState{
		Tasks:  []state.Task{{Text: "loaded"}},
		Status: "State loaded successfully.",
	}
	next, cmd := m.Update(snapshotMsg(snap))
	m = next.(Model)

	if cmd != nil {
		t.Errorf("expected no command, got %v", cmd)
	}
	if len(m.snap.Tasks) != 1 || m.snap.Tasks[0].Text != "loaded" {
		t.Errorf("expected snapshot adopted, got %v", m.snap.Tasks)
	}
}

func TestExitRequestedQuits(t *testing.T) {
	m, _ := newTestModel(state.New())

	snap := state.New()
	snap.ExitRequested = true
	_, cmd := m.Update(snapshotMsg(snap))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
