package config

import (
	"context"
	"errors"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		description string
		name        string
		content     string
		expect      func(t *testing.T, c *Config)
	}{
		{
			description: "yaml",
			name:        "jshint-messages.yaml",
			content:     "output_dir: docs\nexclude:\n  - messages.js\n  - vars.js\njobs: 3\n",
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, "docs", c.OutputDir)
				assert.Equal(t, []string{"messages.js", "vars.js"}, c.Exclude)
				assert.Equal(t, 3, c.Jobs)
				assert.Equal(t, "src", c.SourceDir, "unset fields keep defaults")
			},
		},
		{
			description: "toml",
			name:        "jshint-messages.toml",
			content:     "ref = \"v2.13.6\"\nsource_url = \"https://example.com/src\"\n",
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, "v2.13.6", c.Ref)
				assert.Equal(t, "https://example.com/src", c.SourceURL)
				assert.Equal(t, "out", c.OutputDir)
			},
		},
		{
			description: "empty yaml",
			name:        "empty.yml",
			content:     "",
			expect: func(t *testing.T, c *Config) {
				assert.Equal(t, Default(), c)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			URL := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(URL, []byte(tc.content), 0o644))
			actual, err := Load(context.Background(), afs.New(), URL)
			require.NoError(t, err)
			tc.expect(t, actual)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"unknown.yaml": "no_such_field: 1\n",
		"bad.toml":     "jobs = \"many\"\n",
		"config.json":  "{}",
	} {
		t.Run(name, func(t *testing.T) {
			URL := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(URL, []byte(content), 0o644))
			_, err := Load(context.Background(), afs.New(), URL)
			var readErr *errs.ReadError
			assert.True(t, errors.As(err, &readErr), "%v", err)
		})
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	actual, err := Resolve(context.Background(), afs.New(), "", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), actual)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "jshint-messages.yml"), []byte("template_dir: overrides\n"), 0o644))
	actual, err = Resolve(context.Background(), afs.New(), "", dir)
	require.NoError(t, err)
	assert.Equal(t, "overrides", actual.TemplateDir)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"JSHINT_MESSAGES_OUTPUT_DIR": "site",
		"JSHINT_MESSAGES_JOBS":       "2",
		"JSHINT_MESSAGES_QUIET":      "true",
		"JSHINT_MESSAGES_EXCLUDE":    "messages.js, reg.js,",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
	c := Default()
	require.NoError(t, c.applyEnv(lookup))
	assert.Equal(t, "site", c.OutputDir)
	assert.Equal(t, 2, c.Jobs)
	assert.True(t, c.Quiet)
	assert.Equal(t, []string{"messages.js", "reg.js"}, c.Exclude)

	env["JSHINT_MESSAGES_JOBS"] = "lots"
	err := Default().applyEnv(lookup)
	var usageErr *errs.UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestApplyEnv_DotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JSHINT_MESSAGES_REF=dotenv-ref\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("JSHINT_MESSAGES_REF") })

	c := Default()
	require.NoError(t, c.ApplyEnv(envFile))
	assert.Equal(t, "dotenv-ref", c.Ref)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(c *Config)
		valid       bool
	}{
		{description: "valid", mutate: func(c *Config) {}, valid: true},
		{description: "missing root", mutate: func(c *Config) { c.Root = "" }},
		{description: "output is root", mutate: func(c *Config) { c.OutputDir = "/tmp/jshint/" }},
		{description: "zero jobs", mutate: func(c *Config) { c.Jobs = 0 }},
		{description: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{description: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{description: "empty marker", mutate: func(c *Config) { c.OptionMarker = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			c := Default()
			c.Root = "/tmp/jshint"
			tc.mutate(c)
			err := c.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, errs.ExitUsage, errs.ExitCode(err))
		})
	}
}

func TestConfig_Locations(t *testing.T) {
	c := Default()
	c.Root = "/tmp/jshint"
	assert.Equal(t, "/tmp/jshint/src", c.SourceURLDir())
	assert.Equal(t, "/tmp/jshint/src/messages.js", c.CatalogURL())
	c.Catalog = "/tmp/catalog.yaml"
	assert.Equal(t, "/tmp/catalog.yaml", c.CatalogURL())

	c.LogLevel = "debug"
	level, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
