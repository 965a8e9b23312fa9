package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"vibetodo/internal/state"
)

// ErrNotExist reports that no state file exists at the given path. A missing
// file is "no persisted state", not corruption; callers that care use
// errors.Is to tell the two apart.
var ErrNotExist = fs.ErrNotExist

// Save encodes the task list and writes it to path.
func Save(path string, tasks []state.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Load reads and decodes the task list from path. Returns an error wrapping
// ErrNotExist when the file is absent.
func Load(path string) ([]state.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("state file %s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return Decode(data)
}
