package cli

import (
	"fmt"

	"github.com/mitchellh/cli"
)

var (
	Version   = "0.1.0"
	GitCommit = "HEAD"
)

type VersionCommand struct {
	ui cli.Ui
}

func (c *VersionCommand) Help() string {
	return "Show version"
}

func (c *VersionCommand) Synopsis() string {
	return "Show version"
}

func (c *VersionCommand) Run(args []string) int {
	c.ui.Output(fmt.Sprintf("od-increaser v%s (%s)", Version, GitCommit))
	return 0
}
