package cli

import (
	"os"

	"github.com/mitchellh/cli"
)

func Commands() map[string]cli.CommandFactory {
	ui := &cli.PrefixedUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
		InfoPrefix:  "INFO:  ",
		ErrorPrefix: "ERROR: ",
		WarnPrefix:  "WARN:  ",
	}

	return map[string]cli.CommandFactory{
		"lambda": func() (cli.Command, error) {
			return &LambdaCommand{
				ui: ui,
			}, nil
		},
		"run": func() (cli.Command, error) {
			return &RunCommand{
				ui: ui,
			}, nil
		},
		"config": func() (cli.Command, error) {
			return &ConfigCommand{
				ui: ui,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{
				ui: ui,
			}, nil
		},
	}
}
