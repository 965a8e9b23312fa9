package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibetodo/internal/config"
	"vibetodo/internal/exitcode"
	"vibetodo/internal/session"
	"vibetodo/internal/tui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd starts the interactive terminal front end. It wires its own store
// instead of using a one-shot session, so NeedsStore is false.
type TuiCmd struct{}

func (c *TuiCmd) Name() string      { return "tui" }
func (c *TuiCmd) Aliases() []string { return nil }
func (c *TuiCmd) Synopsis() string  { return "Start the interactive terminal UI" }
func (c *TuiCmd) Usage() string     { return "vibetodo tui" }
func (c *TuiCmd) NeedsStore() bool  { return false }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if err := tui.Run(ctx, cfg); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}
