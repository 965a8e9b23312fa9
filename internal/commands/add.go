package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"vibetodo/internal/config"
	"vibetodo/internal/exitcode"
	"vibetodo/internal/session"
	"vibetodo/internal/state"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "vibetodo add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}

	if sess.LoadFailed() {
		fmt.Fprintf(errOut, "error: cannot read state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}

	sess.Dispatch(state.SetInput{Text: text})
	sess.Dispatch(state.AddTask{})

	if err := sess.Save(); err != nil {
		fmt.Fprintf(errOut, "error: cannot write state file: %s\n", cfg.StatePath())
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
