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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "vibetodo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  vibetodo                      List all tasks
  vibetodo list                 List all tasks
  vibetodo add <text...>        Add a task
  vibetodo done <n>             Toggle task n's done flag
  vibetodo toggle <n>           Alias for done
  vibetodo rm <n>               Remove task n
  vibetodo tui                  Start the interactive terminal UI
  vibetodo path                 Print the state file path
  vibetodo help
  vibetodo version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Write debug logs to the config directory
`
