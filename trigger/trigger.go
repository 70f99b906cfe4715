package trigger

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// LaunchUnsuccessfulDetailType is the detail-type of the EventBridge event
// Auto Scaling emits when it fails to launch an instance.
const LaunchUnsuccessfulDetailType = "EC2 Instance Launch Unsuccessful"

type Kind int

const (
	KindScheduled Kind = iota
	KindLaunchFailure
)

func (k Kind) String() string {
	switch k {
	case KindLaunchFailure:
		return "launch-failure"
	default:
		return "scheduled"
	}
}

// Trigger is what caused an invocation. GroupName is only set for launch
// failures.
type Trigger struct {
	Kind      Kind
	GroupName string
}

func Scheduled() Trigger {
	return Trigger{Kind: KindScheduled}
}

func LaunchFailure(groupName string) Trigger {
	return Trigger{Kind: KindLaunchFailure, GroupName: groupName}
}

// LaunchUnsuccessfulDetail is the detail of a launch unsuccessful event.
type LaunchUnsuccessfulDetail struct {
	AutoScalingGroupName string `json:"AutoScalingGroupName"`
	ActivityID           string `json:"ActivityId"`
	StatusCode           string `json:"StatusCode"`
	StatusMessage        string `json:"StatusMessage"`
	Cause                string `json:"Cause"`
}

// FromEvent classifies an EventBridge event. Everything other than a launch
// unsuccessful event is a scheduled run.
func FromEvent(e events.CloudWatchEvent) (Trigger, error) {
	if e.DetailType != LaunchUnsuccessfulDetailType {
		return Scheduled(), nil
	}

	d := LaunchUnsuccessfulDetail{}
	if len(e.Detail) > 0 {
		if err := json.Unmarshal(e.Detail, &d); err != nil {
			return Trigger{}, fmt.Errorf("parsing %q detail: %w", e.DetailType, err)
		}
	}

	if d.AutoScalingGroupName == "" {
		return Trigger{}, fmt.Errorf("%q event has no AutoScalingGroupName", e.DetailType)
	}

	return LaunchFailure(d.AutoScalingGroupName), nil
}

// Parse classifies a raw invocation payload. Only detail-type is inspected
// until the payload is known to be a launch unsuccessful event, so any other
// payload, including an empty or malformed one, is a scheduled run.
func Parse(payload []byte) (Trigger, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Scheduled(), nil
	}

	var detailType string
	if err := json.Unmarshal(fields["detail-type"], &detailType); err != nil {
		return Scheduled(), nil
	}

	return FromEvent(events.CloudWatchEvent{
		DetailType: detailType,
		Detail:     fields["detail"],
	})
}
