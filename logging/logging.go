package logging

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/hashicorp/logutils"
	"github.com/sirupsen/logrus"
)

const LoggerName = "od-increaser"

// ParseLevel accepts logrus level names plus "critical", which maps to
// error.
func ParseLevel(level string) (logrus.Level, error) {
	level = strings.ToLower(level)
	if level == "critical" {
		return logrus.ErrorLevel, nil
	}
	return logrus.ParseLevel(level)
}

// New returns a JSON logger. Every entry carries the logger name and env.
func New(level, env string, out io.Writer) (*logrus.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.Out = out
	logger.Level = l
	logger.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "asctime",
			logrus.FieldKeyLevel: "levelname",
			logrus.FieldKeyMsg:   "message",
		},
	}
	logger.AddHook(&ContextHook{Name: LoggerName, Env: env})

	return logger, nil
}

// ContextHook stamps static fields on every entry.
type ContextHook struct {
	Name string
	Env  string
}

func (h *ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ContextHook) Fire(e *logrus.Entry) error {
	e.Data["name"] = h.Name
	e.Data["env"] = h.Env
	return nil
}

// SetStdLogLevel filters the standard logger, which the AWS SDK writes to,
// by "[LEVEL]" prefixes.
func SetStdLogLevel(level string, out io.Writer) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: stdLogLevel(l),
		Writer:   out,
	}
	log.SetOutput(filter)
	return nil
}

func stdLogLevel(l logrus.Level) logutils.LogLevel {
	switch {
	case l >= logrus.DebugLevel:
		return "DEBUG"
	case l == logrus.InfoLevel:
		return "INFO"
	case l == logrus.WarnLevel:
		return "WARN"
	default:
		return "ERROR"
	}
}

// AWSLogger sends SDK log lines to the standard logger at DEBUG.
func AWSLogger() aws.Logger {
	return aws.LoggerFunc(func(args ...interface{}) {
		log.Printf("[DEBUG] aws: %s", fmt.Sprint(args...))
	})
}
