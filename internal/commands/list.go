package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibetodo/internal/config"
	"vibetodo/internal/exitcode"
	"vibetodo/internal/output"
	"vibetodo/internal/session"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `vibetodo` (no args) and `vibetodo list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "vibetodo list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if sess.LoadFailed() {
		fmt.Fprintf(errOut, "error: cannot read state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}
	output.FormatTasks(out, sess.State().Tasks)
	return exitcode.Success
}
