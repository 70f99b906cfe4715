package main

import (
	"os"

	"github.com/AssemblyAI/replacing-spotinst/cli"
)

func main() {
	exitCode := cli.Run(os.Args[1:])
	os.Exit(exitCode)
}
