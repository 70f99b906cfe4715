package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Run starts CLI
func Run(args []string) int {
	// the Lambda runtime starts the binary without arguments
	if len(args) == 0 && os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		args = []string{"lambda"}
	}

	c := &cli.CLI{
		Name:     "od-increaser",
		Version:  Version,
		Args:     args,
		Commands: Commands(),
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err.Error())
		return 1
	}

	return exitCode
}
