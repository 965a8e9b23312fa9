// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"vibetodo/internal/state"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [{x| }] {TEXT}\n" (4-wide right-aligned number, done
// marker, text). Numbers are 1-based for display.
func FormatTask(w io.Writer, num int, task state.Task) {
	marker := " "
	if task.Done {
		marker = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, marker, normalizeText(task.Text))
}

// FormatTasks formats the whole list, or a placeholder when it is empty.
func FormatTasks(w io.Writer, tasks []state.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "(no tasks)")
		return
	}
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
