// Package tui is the interactive terminal front end. It is a thin
// collaborator over the core: key presses dispatch actions into the store,
// and every store notification arrives back as a message carrying the new
// state snapshot, which is all the view renders from.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vibetodo/internal/config"
	"vibetodo/internal/effects"
	"vibetodo/internal/state"
	"vibetodo/internal/store"
)

// snapshotMsg carries a state snapshot from the store into the program.
type snapshotMsg state.AppState

// Model is the bubbletea model. It holds no task data of its own, only the
// latest snapshot, a dispatch handle, and the new-task input widget.
type Model struct {
	dispatch func(state.Action)
	snap     state.AppState

	input   textinput.Model
	editing bool
	width   int
}

// NewModel creates a model bound to a dispatch handle, seeded with the
// given snapshot.
func NewModel(dispatch func(state.Action), snap state.AppState) Model {
	ti := textinput.New()
	ti.Placeholder = "new task"
	ti.CharLimit = 256
	return Model{
		dispatch: dispatch,
		snap:     snap,
		input:    ti,
	}
}

// dispatchCmd returns a command that feeds the actions, in order, into the
// store. Dispatching happens on the command goroutine, never inside Update:
// the store's notification calls back into the program's message channel,
// which must stay free to receive.
func (m Model) dispatchCmd(actions ...state.Action) tea.Cmd {
	return func() tea.Msg {
		for _, a := range actions {
			m.dispatch(a)
		}
		return nil
	}
}

// Init requests a load of the persisted task list.
func (m Model) Init() tea.Cmd {
	return m.dispatchCmd(state.RequestLoad{})
}

// Update handles terminal events and store snapshots.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = state.AppState(msg)
		if m.snap.ExitRequested {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Reset()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.editing = false
		m.input.Reset()
		return m, m.dispatchCmd(state.SetInput{Text: text}, state.AddTask{})
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.editing = true
		m.input.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.dispatchCmd(state.RemoveSelected{})
	case "t", " ":
		return m, m.dispatchCmd(state.ToggleSelected{})
	case "s":
		return m, m.dispatchCmd(state.RequestSave{})
	case "l":
		return m, m.dispatchCmd(state.RequestLoad{})
	case "q", "ctrl+c":
		return m, m.dispatchCmd(state.Quit{})
	case "up", "k":
		return m, m.moveSelection(-1)
	case "down", "j":
		return m, m.moveSelection(1)
	case "esc":
		return m, m.dispatchCmd(state.SelectTask{Index: state.NoSelection})
	}
	return m, nil
}

// moveSelection requests a SelectTask one step in the given direction.
// With nothing selected, either direction selects the first task. The
// reducer ignores out-of-range indexes, so edges need no special casing
// here beyond the no-selection start.
func (m Model) moveSelection(delta int) tea.Cmd {
	if len(m.snap.Tasks) == 0 {
		return nil
	}
	idx := m.snap.Selected + delta
	if m.snap.Selected == state.NoSelection {
		idx = 0
	}
	return m.dispatchCmd(state.SelectTask{Index: idx})
}

// Run wires a store, executor, and program together and blocks until the
// user quits.
func Run(ctx context.Context, cfg *config.Config) error {
	path := cfg.ResolveStatePath()
	exec := effects.New(path, cfg.NewLogger())
	st := store.New(state.New(), exec)
	exec.Start(st)

	m := NewModel(st.Dispatch, st.State())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := st.Subscribe(func(s state.AppState) {
		p.Send(snapshotMsg(s))
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
