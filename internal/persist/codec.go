// Package persist (de)serializes the task list and reads/writes the state
// file. The persisted document has a single recognized top-level field,
// "tasks"; anything else is ignored on read and never written.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"vibetodo/internal/state"
)

// taskRecord is the wire form of a single task. Pointer fields let Decode
// distinguish a missing key from a zero value.
type taskRecord struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

type document struct {
	Tasks []taskRecord `json:"tasks"`
}

// Encode serializes the ordered task list to the persisted document form.
// Only the task list is persisted; transient state never reaches disk.
func Encode(tasks []state.Task) ([]byte, error) {
	doc := document{Tasks: make([]taskRecord, len(tasks))}
	for i := range tasks {
		t := tasks[i]
		doc.Tasks[i] = taskRecord{Text: &t.Text, Done: &t.Done}
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode state document: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a persisted document and returns the task list. The document
// must carry a "tasks" array and every record must supply both "text"
// (string) and "done" (boolean); anything structurally off is an error,
// never a crash.
func Decode(data []byte) ([]state.Task, error) {
	var doc struct {
		Tasks *[]taskRecord `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse state document: %w", err)
	}
	if doc.Tasks == nil {
		return nil, errors.New(`state document missing "tasks" array`)
	}
	tasks := make([]state.Task, 0, len(*doc.Tasks))
	for i, rec := range *doc.Tasks {
		if rec.Text == nil {
			return nil, fmt.Errorf(`task %d: missing "text"`, i)
		}
		if rec.Done == nil {
			return nil, fmt.Errorf(`task %d: missing "done"`, i)
		}
		tasks = append(tasks, state.Task{Text: *rec.Text, Done: *rec.Done})
	}
	return tasks, nil
}
