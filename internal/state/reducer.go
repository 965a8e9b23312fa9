package state

import (
	"fmt"
	"slices"
)

// Reduce maps the current state and an action to the next state and an
// optional effect descriptor. It is pure: no I/O, no mutation of the input
// (the task slice is copied before any write), deterministic given its
// arguments.
//
// Invalid requests (out-of-range index, empty input) are absorbed as no-ops
// with a status message; Reduce never fails.
func Reduce(s AppState, action Action) (AppState, Effect) {
	switch act := action.(type) {
	case SetInput:
		s.Input = act.Text
		return s, nil

	case AddTask:
		if s.Input == "" {
			s.Status = "Input is empty."
			return s, nil
		}
		s.Tasks = append(slices.Clone(s.Tasks), Task{Text: s.Input})
		s.Input = ""
		s.Selected = len(s.Tasks) - 1
		s.Status = "Task added."
		return s, nil

	case RemoveSelected:
		if !s.selectionValid() {
			s.Status = "No item selected to remove."
			return s, nil
		}
		s.Tasks = slices.Delete(slices.Clone(s.Tasks), s.Selected, s.Selected+1)
		if len(s.Tasks) == 0 {
			s.Selected = NoSelection
		} else if s.Selected >= len(s.Tasks) {
			s.Selected = len(s.Tasks) - 1
		}
		s.Status = "Task removed."
		return s, nil

	case ToggleSelected:
		if !s.selectionValid() {
			s.Status = "No item selected to toggle."
			return s, nil
		}
		tasks := slices.Clone(s.Tasks)
		tasks[s.Selected].Done = !tasks[s.Selected].Done
		s.Tasks = tasks
		s.Status = "Task toggled."
		return s, nil

	case SelectTask:
		// NoSelection is a legitimate "deselect" request.
		if act.Index >= NoSelection && act.Index < len(s.Tasks) {
			s.Selected = act.Index
		}
		return s, nil

	case RequestSave:
		s.Status = "Saving..."
		return s, SaveEffect{Tasks: slices.Clone(s.Tasks)}

	case RequestLoad:
		s.Status = "Loading..."
		return s, LoadEffect{}

	case LoadCompleted:
		if act.Loaded {
			s.Tasks = slices.Clone(act.Tasks)
			if len(s.Tasks) == 0 {
				s.Selected = NoSelection
			} else {
				s.Selected = 0
			}
		}
		s.Status = act.Message
		return s, nil

	case SetStatus:
		s.Status = act.Message
		return s, nil

	case Quit:
		s.ExitRequested = true
		s.Status = "Exiting..."
		return s, nil

	default:
		// The action set is closed; reaching this is a programming error.
		panic(fmt.Sprintf("state: unhandled action %T", action))
	}
}
