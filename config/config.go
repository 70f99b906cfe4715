package config

import (
	"strings"

	validator "gopkg.in/go-playground/validator.v9"
)

const (
	DefaultLogLevel = "info"
	DefaultEnv      = "dev"
)

type Config struct {
	GroupNames      []string `yaml:"GroupNames" validate:"dive,required"`
	LogLevel        string   `yaml:"LogLevel" validate:"required,oneof=trace debug info warn warning error critical"`
	Env             string   `yaml:"Env" validate:"required"`
	DryRun          bool     `yaml:"DryRun"`
	MetricNamespace string   `yaml:"MetricNamespace"`
}

func NewConfig() *Config {
	return &Config{
		GroupNames: []string{},
		LogLevel:   DefaultLogLevel,
		Env:        DefaultEnv,
	}
}

func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)

	validate := validator.New()
	return validate.Struct(c)
}

// ParseGroupNames splits a comma-separated list of group names. Order and
// duplicates are kept; blank entries are dropped.
func ParseGroupNames(s string) []string {
	names := []string{}
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	return names
}
