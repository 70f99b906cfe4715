package asg

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
)

// MinimumOnDemandBaseTagKey marks a group's minimum on-demand base.
const MinimumOnDemandBaseTagKey = "od-increaser/od-minimum"

type Tag struct {
	Key   string
	Value string
}

type Tags []Tag

// Group is the part of an auto scaling group that on-demand base decisions
// depend on.
type Group struct {
	Name                string
	CurrentOnDemandBase int64
	MinimumOnDemandBase int64
	MixedInstances      bool
	Tags                Tags
}

// NewGroupFromSDK converts a described group. Tags keep the order AWS
// returned them in.
func NewGroupFromSDK(g *autoscaling.Group) (*Group, error) {
	tags := Tags{}
	for _, t := range g.Tags {
		tags = append(tags, Tag{
			Key:   aws.StringValue(t.Key),
			Value: aws.StringValue(t.Value),
		})
	}

	minimum, err := tags.MinimumOnDemandBase()
	if err != nil {
		return nil, err
	}

	group := &Group{
		Name:                aws.StringValue(g.AutoScalingGroupName),
		MinimumOnDemandBase: minimum,
		Tags:                tags,
	}

	if p := g.MixedInstancesPolicy; p != nil && p.InstancesDistribution != nil {
		group.MixedInstances = true
		group.CurrentOnDemandBase = aws.Int64Value(p.InstancesDistribution.OnDemandBaseCapacity)
	}

	return group, nil
}

// Find returns the first tag with the key.
func (ts Tags) Find(key string) (Tag, bool) {
	for _, t := range ts {
		if t.Key == key {
			return t, true
		}
	}
	return Tag{}, false
}

// MinimumOnDemandBase parses the minimum on-demand base tag. It is 0 if the
// tag is absent.
func (ts Tags) MinimumOnDemandBase() (int64, error) {
	t, ok := ts.Find(MinimumOnDemandBaseTagKey)
	if !ok {
		return 0, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
	if err != nil {
		return 0, &TagValueError{Key: t.Key, Value: t.Value, Err: err}
	}
	if v < 0 {
		return 0, &TagValueError{Key: t.Key, Value: t.Value, Err: errors.New("must not be negative")}
	}

	return v, nil
}
