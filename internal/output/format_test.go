package output_test

import (
	"bytes"
	"testing"

	"vibetodo/internal/output"
	"vibetodo/internal/state"
	"vibetodo/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task state.Task
		want string
	}{
		{"open", 1, state.Task{Text: "buy milk"}, "   1  [ ] buy milk\n"},
		{"done", 2, state.Task{Text: "walk dog", Done: true}, "   2  [x] walk dog\n"},
		{"wide number", 1234, state.Task{Text: "x"}, "1234  [ ] x\n"},
		{"empty text", 3, state.Task{Text: "   "}, "   3  [ ] (untitled)\n"},
		{"newlines flattened", 4, state.Task{Text: "a\nb\r\nc"}, "   4  [ ] a b  c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTasks(&buf, nil)
	if buf.String() != "(no tasks)\n" {
		t.Errorf("expected placeholder, got %q", buf.String())
	}
}

func TestFormatTasksGolden(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTasks(&buf, []state.Task{
		{Text: "buy milk", Done: true},
		{Text: "walk dog"},
		{Text: "water plants"},
	})
	testutil.GoldenString(t, "tasks", buf.String())
}
