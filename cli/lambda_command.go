package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/AssemblyAI/replacing-spotinst/config"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/mitchellh/cli"
)

type LambdaCommand struct {
	ui cli.Ui
}

func (c *LambdaCommand) Help() string {
	return `Usage: od-increaser lambda [-config path]

  Serve invocations from the AWS Lambda runtime. Scheduled events lower the
  on-demand base of every group in ASG_GROUP_NAMES; "EC2 Instance Launch
  Unsuccessful" events raise the base of the failing group by one.`
}

func (c *LambdaCommand) Synopsis() string {
	return "Handle Lambda invocations"
}

func (c *LambdaCommand) Run(args []string) int {
	flags := flag.NewFlagSet("lambda", flag.ContinueOnError)
	path := flags.String("config", "", "path to config YAML file")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cc, err := config.Load(*path)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	h, err := NewHandler(cc, os.Stdout)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	// never returns
	lambda.Start(h.Handle)
	return 0
}

func requestIDFromContext(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
