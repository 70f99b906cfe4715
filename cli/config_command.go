package cli

import (
	"flag"
	"fmt"

	"github.com/AssemblyAI/replacing-spotinst/config"
	"github.com/mitchellh/cli"
)

type ConfigCommand struct {
	ui cli.Ui
}

func (c *ConfigCommand) Help() string {
	return `Usage: od-increaser config [-config path]

  Show the configuration after applying environment variables.`
}

func (c *ConfigCommand) Run(args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	path := flags.String("config", "", "path to config YAML file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cc, err := config.Load(*path)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	c.ui.Output(fmt.Sprintf("%+v", cc))

	return 0
}

func (c *ConfigCommand) Synopsis() string {
	return "Show config in parsed format"
}
