package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vibetodo/internal/config"
	"vibetodo/internal/exitcode"
	"vibetodo/internal/session"
)

func init() {
	Register(&PathCmd{})
}

// PathCmd prints the resolved state file path.
type PathCmd struct{}

func (c *PathCmd) Name() string      { return "path" }
func (c *PathCmd) Aliases() []string { return nil }
func (c *PathCmd) Synopsis() string  { return "Print the state file path" }
func (c *PathCmd) Usage() string     { return "vibetodo path" }
func (c *PathCmd) NeedsStore() bool  { return false }

func (c *PathCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PathCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, cfg.ResolveStatePath())
	return exitcode.Success
}
