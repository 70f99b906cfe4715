package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/AssemblyAI/replacing-spotinst/asg"
	"github.com/AssemblyAI/replacing-spotinst/policy"
	"github.com/AssemblyAI/replacing-spotinst/trigger"
	"github.com/sirupsen/logrus"
)

// GroupAccessor reads and updates auto scaling groups. *asg.Client
// implements it.
type GroupAccessor interface {
	DescribeGroup(ctx context.Context, name string) (*asg.Group, error)
	ApplyOnDemandBase(ctx context.Context, name string, newBase int64) error
}

// Publisher records on-demand bases that were applied.
type Publisher interface {
	PublishOnDemandBase(ctx context.Context, group string, base int64) error
}

// Change is the outcome for one group.
type Change struct {
	Group   string
	From    int64
	To      int64
	Applied bool
}

// ErrNoGroups is returned by scheduled runs without configured groups.
var ErrNoGroups = errors.New("no auto scaling groups are configured")

type Dispatcher struct {
	Accessor   GroupAccessor
	GroupNames []string
	Logger     logrus.FieldLogger
	// Publisher is optional
	Publisher Publisher
}

// Dispatch lowers the on-demand base of every configured group on a
// scheduled trigger, or raises the base of the failing group by one on a
// launch failure.
func (d *Dispatcher) Dispatch(ctx context.Context, t trigger.Trigger) error {
	_, err := d.DispatchWithResult(ctx, t)
	return err
}

// DispatchWithResult is Dispatch returning the changes made before it
// finished or failed.
func (d *Dispatcher) DispatchWithResult(ctx context.Context, t trigger.Trigger) ([]Change, error) {
	if t.Kind == trigger.KindLaunchFailure {
		d.Logger.Info("Starting failed launch-invoked run")
		c, err := d.increase(ctx, t.GroupName)
		if err != nil {
			return nil, err
		}
		return []Change{c}, nil
	}

	d.Logger.Info("Starting cron-invoked run")
	if len(d.GroupNames) == 0 {
		return nil, ErrNoGroups
	}
	d.Logger.Debugf("%v will have their on-demand base reduced", d.GroupNames)

	changes := []Change{}
	for _, name := range d.GroupNames {
		c, err := d.reduce(ctx, name)
		if err != nil {
			return changes, err
		}
		changes = append(changes, c)
	}

	return changes, nil
}

func (d *Dispatcher) reduce(ctx context.Context, name string) (Change, error) {
	log := d.Logger.WithField("group", name)
	log.Debug("Starting on-demand base reduction")

	g, err := d.Accessor.DescribeGroup(ctx, name)
	if err != nil {
		return Change{}, fmt.Errorf("reducing on-demand base of %s: %w", name, err)
	}

	log = log.WithFields(logrus.Fields{
		"current_base": g.CurrentOnDemandBase,
		"minimum_base": g.MinimumOnDemandBase,
	})

	if g.CurrentOnDemandBase < g.MinimumOnDemandBase {
		log.Warnf("Current on-demand base is less than minimum. Setting on-demand base to %d", g.MinimumOnDemandBase)
	}

	newBase := policy.ReduceBase(g.CurrentOnDemandBase, g.MinimumOnDemandBase)
	c := Change{Group: name, From: g.CurrentOnDemandBase, To: newBase}

	if newBase == g.CurrentOnDemandBase {
		log.Info("Skipping ASG modification as current and new on-demand bases are the same")
		return c, nil
	}

	if err := d.apply(ctx, name, newBase); err != nil {
		return Change{}, fmt.Errorf("reducing on-demand base of %s: %w", name, err)
	}
	c.Applied = true

	return c, nil
}

func (d *Dispatcher) increase(ctx context.Context, name string) (Change, error) {
	log := d.Logger.WithField("group", name)
	log.Info("Increasing on-demand base")

	g, err := d.Accessor.DescribeGroup(ctx, name)
	if err != nil {
		return Change{}, fmt.Errorf("increasing on-demand base of %s: %w", name, err)
	}

	newBase := policy.IncreaseBase(g.CurrentOnDemandBase)
	if err := d.apply(ctx, name, newBase); err != nil {
		return Change{}, fmt.Errorf("increasing on-demand base of %s: %w", name, err)
	}

	return Change{Group: name, From: g.CurrentOnDemandBase, To: newBase, Applied: true}, nil
}

func (d *Dispatcher) apply(ctx context.Context, name string, newBase int64) error {
	d.Logger.WithField("group", name).Debugf("New on-demand base is %d", newBase)

	if err := d.Accessor.ApplyOnDemandBase(ctx, name, newBase); err != nil {
		return err
	}

	if d.Publisher != nil {
		if err := d.Publisher.PublishOnDemandBase(ctx, name, newBase); err != nil {
			d.Logger.WithError(err).WithField("group", name).Warn("Failed to publish on-demand base metric")
		}
	}

	return nil
}
