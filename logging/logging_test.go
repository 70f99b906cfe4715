package logging

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"critical", logrus.ErrorLevel},
	}

	for _, test := range tests {
		l, err := ParseLevel(test.level)
		if assert.NoError(t, err, test.level) {
			assert.Equal(t, test.expected, l, test.level)
		}
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New("info", "staging", buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("hidden")
	logger.WithField("group", "g1").Info("Updated on-demand base")

	entry := map[string]interface{}{}
	if assert.NoError(t, json.Unmarshal(buf.Bytes(), &entry)) {
		assert.Equal(t, "Updated on-demand base", entry["message"])
		assert.Equal(t, "info", entry["levelname"])
		assert.Equal(t, "staging", entry["env"])
		assert.Equal(t, LoggerName, entry["name"])
		assert.Equal(t, "g1", entry["group"])
		assert.Contains(t, entry, "asctime")
	}
}

func TestSetStdLogLevel(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	buf := &bytes.Buffer{}
	assert.NoError(t, SetStdLogLevel("info", buf))

	AWSLogger().Log("DEBUG: Request autoscaling/DescribeAutoScalingGroups")
	assert.Equal(t, 0, buf.Len())

	assert.NoError(t, SetStdLogLevel("debug", buf))
	AWSLogger().Log("DEBUG: Request autoscaling/DescribeAutoScalingGroups")
	assert.Contains(t, buf.String(), "[DEBUG] aws: DEBUG: Request autoscaling/DescribeAutoScalingGroups")
}
