package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/AssemblyAI/replacing-spotinst/asg"
	"github.com/AssemblyAI/replacing-spotinst/config"
	"github.com/AssemblyAI/replacing-spotinst/dispatcher"
	"github.com/AssemblyAI/replacing-spotinst/logging"
	"github.com/AssemblyAI/replacing-spotinst/metrics"
	"github.com/AssemblyAI/replacing-spotinst/trigger"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/sirupsen/logrus"
)

// Handler runs one invocation per event. It is built once per process.
type Handler struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Publisher dispatcher.Publisher

	newAccessor func(logrus.FieldLogger) dispatcher.GroupAccessor
}

// NewHandler sets up logging and the AWS clients from c.
func NewHandler(c *config.Config, out io.Writer) (*Handler, error) {
	logger, err := logging.New(c.LogLevel, c.Env, out)
	if err != nil {
		return nil, err
	}

	err = logging.SetStdLogLevel(c.LogLevel, out)
	if err != nil {
		return nil, err
	}

	awsConfig := aws.NewConfig().WithLogger(logging.AWSLogger())
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebug)
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		Config: c,
		Logger: logger,
		newAccessor: func(l logrus.FieldLogger) dispatcher.GroupAccessor {
			client := asg.NewClient(sess, l)
			client.DryRun = c.DryRun
			return client
		},
	}

	if c.MetricNamespace != "" {
		h.Publisher = metrics.NewCloudWatchPublisher(sess, c.MetricNamespace)
	}

	return h, nil
}

// Handle is the Lambda handler. Errors are returned so the invocation is
// marked failed.
func (h *Handler) Handle(ctx context.Context, payload json.RawMessage) error {
	_, err := h.Invoke(ctx, requestIDFromContext(ctx), payload)
	return err
}

// Invoke parses payload and dispatches it.
func (h *Handler) Invoke(ctx context.Context, requestID string, payload []byte) ([]dispatcher.Change, error) {
	log := h.Logger.WithField("aws_request_id", requestID)

	t, err := trigger.Parse(payload)
	if err != nil {
		log.WithError(err).Error("Invalid event")
		return nil, err
	}
	log = log.WithField("trigger", t.Kind.String())

	d := &dispatcher.Dispatcher{
		Accessor:   h.newAccessor(log),
		GroupNames: h.Config.GroupNames,
		Logger:     log,
		Publisher:  h.Publisher,
	}

	changes, err := d.DispatchWithResult(ctx, t)
	if err != nil {
		log.WithError(err).Error("Invocation failed")
		return changes, err
	}

	log.WithField("changes", len(changes)).Info("Invocation finished")
	return changes, nil
}
