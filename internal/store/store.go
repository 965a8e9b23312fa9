// Package store owns the current application state. It applies the reducer
// to each dispatched action, notifies observers with the resulting snapshot,
// and hands produced effect descriptors to a runner.
package store

import (
	"sync"

	"vibetodo/internal/state"
)

// Runner performs effect descriptors outside the reduce step. The executor
// implements it; a nil Runner drops effects on the floor (useful in tests
// that only exercise reduction).
type Runner interface {
	Run(eff state.Effect)
}

// Observer receives a read-only state snapshot after each transition.
type Observer func(state.AppState)

// Store is the single owner of the current AppState.
//
// Dispatch is synchronous: the action is reduced, the new state adopted,
// and observers notified before Dispatch returns. Actions dispatched from
// inside an observer or by a completing effect are appended to a FIFO queue
// and processed strictly after the action in flight, so no action jumps
// the queue.
type Store struct {
	mu       sync.Mutex
	state    state.AppState
	queue    []state.Action
	draining bool
	subs     map[int]Observer
	nextSub  int
	runner   Runner
}

// New creates a store holding initial. runner may be nil.
func New(initial state.AppState, runner Runner) *Store {
	return &Store{
		state:  initial,
		subs:   make(map[int]Observer),
		runner: runner,
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers an observer and returns a function that removes it.
// The observer is called after every subsequent transition.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Dispatch enqueues an action and, unless a drain is already in progress on
// another frame of the call stack, processes the queue to completion. Safe
// for concurrent use; there is still exactly one mutator, because only one
// caller drains at a time.
func (s *Store) Dispatch(action state.Action) {
	s.mu.Lock()
	s.queue = append(s.queue, action)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		newState, eff := state.Reduce(s.state, next)
		s.state = newState

		observers := make([]Observer, 0, len(s.subs))
		for _, fn := range s.subs {
			observers = append(observers, fn)
		}

		// Notify and run effects outside the lock so observers and the
		// runner may dispatch without deadlocking.
		s.mu.Unlock()
		for _, fn := range observers {
			fn(newState)
		}
		if eff != nil && s.runner != nil {
			s.runner.Run(eff)
		}
		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}
