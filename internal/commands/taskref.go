package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTaskNumRequired is returned when no task number was supplied.
var ErrTaskNumRequired = errors.New("task number required")

// ParseTaskNum parses a 1-based task number from the positional arguments.
// Accepts exactly one argument; anything non-numeric or non-positive is an
// error.
func ParseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskNumRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	raw := strings.TrimSpace(args[0])
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("task number out of range: %d", n)
	}
	return n, nil
}
