package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/AssemblyAI/replacing-spotinst/config"
	"github.com/AssemblyAI/replacing-spotinst/trigger"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/mitchellh/cli"
)

type RunCommand struct {
	ui cli.Ui
}

func (c *RunCommand) Help() string {
	return `Usage: od-increaser run [options]

  Run a single invocation outside Lambda. Without -event or -group it is a
  scheduled run over the configured groups.

Options:

  -config path   Path to config YAML file
  -event path    Path to an EventBridge event JSON file ("-" for stdin)
  -group name    Raise the on-demand base of the group as on a launch failure
  -dry-run       Do not update any group`
}

func (c *RunCommand) Synopsis() string {
	return "Run once against the configured groups"
}

func (c *RunCommand) Run(args []string) int {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	path := flags.String("config", "", "path to config YAML file")
	eventPath := flags.String("event", "", "path to event JSON file")
	group := flags.String("group", "", "group with a failed launch")
	dryRun := flags.Bool("dry-run", false, "do not update any group")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *eventPath != "" && *group != "" {
		c.ui.Error("-event and -group cannot be used together")
		return 1
	}

	cc, err := config.Load(*path)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}
	if *dryRun {
		cc.DryRun = true
	}

	payload, err := c.payload(*eventPath, *group)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	h, err := NewHandler(cc, os.Stderr)
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigchan)
	go func() {
		select {
		case <-sigchan:
			cancel()
		case <-ctx.Done():
		}
	}()

	changes, err := h.Invoke(ctx, uuid.New().String(), payload)
	for _, ch := range changes {
		if ch.Applied {
			c.ui.Output(fmt.Sprintf("%s: %d -> %d", ch.Group, ch.From, ch.To))
		} else {
			c.ui.Output(fmt.Sprintf("%s: %d (unchanged)", ch.Group, ch.From))
		}
	}
	if err != nil {
		c.ui.Error(fmt.Sprint(err))
		return 1
	}

	return 0
}

func (c *RunCommand) payload(eventPath, group string) ([]byte, error) {
	switch {
	case group != "":
		detail, err := json.Marshal(trigger.LaunchUnsuccessfulDetail{AutoScalingGroupName: group})
		if err != nil {
			return nil, err
		}
		return json.Marshal(events.CloudWatchEvent{
			DetailType: trigger.LaunchUnsuccessfulDetailType,
			Source:     "aws.autoscaling",
			Detail:     detail,
		})
	case eventPath == "-":
		return ioutil.ReadAll(os.Stdin)
	case eventPath != "":
		return ioutil.ReadFile(eventPath)
	default:
		return nil, nil
	}
}
