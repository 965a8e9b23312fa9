package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibetodo/internal/config"
	"vibetodo/internal/exitcode"
	"vibetodo/internal/session"
	"vibetodo/internal/state"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Toggling is symmetric, so `done` on
// a completed task reopens it; the toggle alias makes that explicit.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's done flag" }
func (c *DoneCmd) Usage() string     { return "vibetodo done <n>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	num, err := ParseTaskNum(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if sess.LoadFailed() {
		fmt.Fprintf(errOut, "error: cannot read state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}

	if num > len(sess.State().Tasks) {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", num)
		return exitcode.UserError
	}

	sess.Dispatch(state.SelectTask{Index: num - 1})
	sess.Dispatch(state.ToggleSelected{})

	if err := sess.Save(); err != nil {
		fmt.Fprintf(errOut, "error: cannot write state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
