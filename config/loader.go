package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v2"
)

// Environment variables read by LoadFromEnv.
const (
	EnvGroupNames      = "ASG_GROUP_NAMES"
	EnvLogLevel        = "LAMBDA_LOG_LEVEL"
	EnvAppEnv          = "APP_ENV"
	EnvDryRun          = "DRY_RUN"
	EnvMetricNamespace = "METRIC_NAMESPACE"
)

func LoadFromYAMLPath(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return LoadFromYAML(b)
}

func LoadFromYAML(data []byte) (*Config, error) {
	c := NewConfig()
	err := yaml.UnmarshalStrict(data, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the YAML file at path, if any, and applies environment
// variables on top of it.
func Load(path string) (*Config, error) {
	c := NewConfig()
	if path != "" {
		var err error
		c, err = LoadFromYAMLPath(path)
		if err != nil {
			return nil, err
		}
	}

	err := c.LoadFromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFromEnv overrides fields whose environment variable is set.
func (c *Config) LoadFromEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGroupNames); ok {
		c.GroupNames = ParseGroupNames(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvAppEnv); ok && v != "" {
		c.Env = v
	}
	if v, ok := lookup(EnvDryRun); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDryRun, err)
		}
		c.DryRun = b
	}
	if v, ok := lookup(EnvMetricNamespace); ok {
		c.MetricNamespace = v
	}
	return nil
}
