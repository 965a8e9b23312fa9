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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove a task" }
func (c *RmCmd) Usage() string     { return "vibetodo rm <n>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
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
	sess.Dispatch(state.RemoveSelected{})

	if err := sess.Save(); err != nil {
		fmt.Fprintf(errOut, "error: cannot write state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
