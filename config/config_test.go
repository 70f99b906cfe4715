package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

// unsetenv removes k for the duration of the test.
func unsetenv(t *testing.T, k string) {
	v, ok := os.LookupEnv(k)
	os.Unsetenv(k)
	if ok {
		t.Cleanup(func() { os.Setenv(k, v) })
	}
}

func TestParseGroupNames(t *testing.T) {
	assert.Equal(t, []string{"group-one", "group-two"}, ParseGroupNames("group-one,group-two"))
	assert.Equal(t, []string{"a", "b", "a"}, ParseGroupNames("a,b,a"))
	assert.Equal(t, []string{"a", "b"}, ParseGroupNames(" a , ,b,"))
	assert.Equal(t, []string{}, ParseGroupNames(""))
}

func TestLoadFromYAML(t *testing.T) {
	yaml := `
GroupNames:
  - group-one
  - group-two
LogLevel: debug
Env: staging
DryRun: true
MetricNamespace: ODIncreaser
`
	c, err := LoadFromYAML([]byte(yaml))
	if assert.NoError(t, err) {
		assert.Equal(t, &Config{
			GroupNames:      []string{"group-one", "group-two"},
			LogLevel:        "debug",
			Env:             "staging",
			DryRun:          true,
			MetricNamespace: "ODIncreaser",
		}, c)
	}
}

func TestLoadFromYAMLDefaults(t *testing.T) {
	c, err := LoadFromYAML([]byte(`GroupNames: [g1]`))
	if assert.NoError(t, err) {
		assert.Equal(t, DefaultLogLevel, c.LogLevel)
		assert.Equal(t, DefaultEnv, c.Env)
	}
}

func TestLoadFromYAMLUnknownKey(t *testing.T) {
	_, err := LoadFromYAML([]byte(`GroupName: g1`))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	c := NewConfig()
	c.GroupNames = []string{"from-file"}

	err := c.LoadFromEnv(envFrom(map[string]string{
		EnvGroupNames:      "group-one,group-two",
		EnvLogLevel:        "DEBUG",
		EnvAppEnv:          "production",
		EnvDryRun:          "true",
		EnvMetricNamespace: "ODIncreaser",
	}))
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"group-one", "group-two"}, c.GroupNames)
		assert.Equal(t, "DEBUG", c.LogLevel)
		assert.Equal(t, "production", c.Env)
		assert.True(t, c.DryRun)
		assert.Equal(t, "ODIncreaser", c.MetricNamespace)
	}

	assert.NoError(t, c.Validate())
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadFromEnvKeepsUnset(t *testing.T) {
	c := NewConfig()
	c.GroupNames = []string{"from-file"}

	assert.NoError(t, c.LoadFromEnv(envFrom(map[string]string{})))
	assert.Equal(t, []string{"from-file"}, c.GroupNames)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
}

func TestLoadFromEnvInvalidDryRun(t *testing.T) {
	c := NewConfig()
	assert.Error(t, c.LoadFromEnv(envFrom(map[string]string{EnvDryRun: "maybe"})))
}

func TestValidate(t *testing.T) {
	c := NewConfig()
	assert.NoError(t, c.Validate())

	c.LogLevel = "verbose"
	assert.Error(t, c.Validate())

	c = NewConfig()
	c.GroupNames = []string{"g1", ""}
	assert.Error(t, c.Validate())
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")
	err = ioutil.WriteFile(path, []byte("GroupNames: [g1, g2]\nEnv: staging\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{EnvGroupNames, EnvLogLevel, EnvDryRun, EnvMetricNamespace} {
		unsetenv(t, k)
	}
	t.Setenv(EnvAppEnv, "production")

	c, err := Load(path)
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"g1", "g2"}, c.GroupNames)
		assert.Equal(t, "production", c.Env)
		assert.Equal(t, DefaultLogLevel, c.LogLevel)
		assert.False(t, c.DryRun)
	}
}
