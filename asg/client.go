package asg

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/sirupsen/logrus"
)

// Client reads and updates auto scaling groups.
type Client struct {
	sdk SDKClient

	Logger logrus.FieldLogger
	DryRun bool
}

func NewClient(sess *session.Session, logger logrus.FieldLogger) *Client {
	return &Client{
		sdk:    autoscaling.New(sess),
		Logger: logger,
	}
}

func (c *Client) DescribeGroup(ctx context.Context, name string) (*Group, error) {
	input := &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: aws.StringSlice([]string{name}),
	}

	output, err := c.sdk.DescribeAutoScalingGroupsWithContext(ctx, input)
	if err != nil {
		return nil, &TransientError{Name: name, Err: err}
	}
	c.Logger.Debugf("DescribeAutoScalingGroups response: %s", output)

	for _, g := range output.AutoScalingGroups {
		if aws.StringValue(g.AutoScalingGroupName) != name {
			continue
		}

		group, err := NewGroupFromSDK(g)
		if err != nil {
			return nil, err
		}
		if !group.MixedInstances {
			return nil, &NotMixedInstancesError{Name: name}
		}
		return group, nil
	}

	return nil, &NotFoundError{Name: name}
}

func (c *Client) ApplyOnDemandBase(ctx context.Context, name string, newBase int64) error {
	input := &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(name),
		MixedInstancesPolicy: &autoscaling.MixedInstancesPolicy{
			InstancesDistribution: &autoscaling.InstancesDistribution{
				OnDemandBaseCapacity: aws.Int64(newBase),
			},
		},
	}

	log := c.Logger.WithFields(logrus.Fields{
		"group":    name,
		"new_base": newBase,
	})

	if c.DryRun {
		log.Infof("(dry run) Updating auto scaling group %s", input)
		return nil
	}

	output, err := c.sdk.UpdateAutoScalingGroupWithContext(ctx, input)
	if err != nil {
		// alerts key off this entry
		log.WithError(err).WithField("severity", "critical").Error("Error updating ASG on-demand base")
		return &UpdateError{Name: name, NewBase: newBase, Err: err}
	}
	log.Debugf("UpdateAutoScalingGroup response: %s", output)
	log.Info("Updated on-demand base")

	return nil
}
