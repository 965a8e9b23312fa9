// Package session wires a store, executor, and resolved state path into a
// one-shot unit for the CLI front end. Commands dispatch actions through a
// Session and never touch the state file directly.
package session

import (
	"errors"
	"os"

	"vibetodo/internal/config"
	"vibetodo/internal/effects"
	"vibetodo/internal/state"
	"vibetodo/internal/store"
)

// ErrSaveFailed reports that a requested save did not complete.
var ErrSaveFailed = errors.New("save failed")

// Session drives one store for the duration of a single command.
type Session struct {
	store      *store.Store
	exec       *effects.Executor
	loadFailed bool
}

// Open resolves the state path, builds the store and executor, and loads
// any persisted state. A missing state file is a fresh start, not a
// failure; a file that exists but cannot be decoded is reported through
// LoadFailed while the session continues with defaults.
func Open(cfg *config.Config) *Session {
	path := cfg.ResolveStatePath()
	exec := effects.New(path, cfg.NewLogger())
	st := store.New(state.New(), exec)
	exec.Start(st)

	_, statErr := os.Stat(path)
	existed := statErr == nil

	st.Dispatch(state.RequestLoad{})
	exec.Wait()

	return &Session{
		store:      st,
		exec:       exec,
		loadFailed: existed && st.State().Status != effects.StatusLoaded,
	}
}

// Dispatch feeds an action into the store.
func (s *Session) Dispatch(action state.Action) {
	s.store.Dispatch(action)
}

// State waits for outstanding effects and returns the current snapshot.
func (s *Session) State() state.AppState {
	s.exec.Wait()
	return s.store.State()
}

// LoadFailed reports whether Open found a state file it could not read.
func (s *Session) LoadFailed() bool {
	return s.loadFailed
}

// Save persists the current task list and waits for the outcome.
func (s *Session) Save() error {
	s.store.Dispatch(state.RequestSave{})
	s.exec.Wait()
	if s.store.State().Status != effects.StatusSaved {
		return ErrSaveFailed
	}
	return nil
}
