// Package config holds the settings of a documentation run.
//
// Values are layered: defaults, then an optional YAML or TOML file, then .env and
// JSHINT_MESSAGES_* environment variables, then command line flags.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "JSHINT_MESSAGES_"

// DefaultFiles are looked up in the working directory when no config file is given
var DefaultFiles = []string{"jshint-messages.yaml", "jshint-messages.yml", "jshint-messages.toml"}

type Config struct {
	Root         string   `yaml:"root" toml:"root"`
	SourceDir    string   `yaml:"source_dir" toml:"source_dir"`
	Exclude      []string `yaml:"exclude" toml:"exclude"`
	Catalog      string   `yaml:"catalog" toml:"catalog"` // defaults to <root>/<source_dir>/messages.js
	BaseTemplate string   `yaml:"base_template" toml:"base_template"`
	TemplateDir  string   `yaml:"template_dir" toml:"template_dir"`
	OutputDir    string   `yaml:"output_dir" toml:"output_dir"`
	OptionMarker string   `yaml:"option_marker" toml:"option_marker"`
	SourceURL    string   `yaml:"source_url" toml:"source_url"` // overrides the URL derived from the git origin
	Ref          string   `yaml:"ref" toml:"ref"`
	Jobs         int      `yaml:"jobs" toml:"jobs"`
	LogLevel     string   `yaml:"log_level" toml:"log_level"`
	LogFormat    string   `yaml:"log_format" toml:"log_format"`
	Quiet        bool     `yaml:"quiet" toml:"quiet"`
	NoColor      bool     `yaml:"no_color" toml:"no_color"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		SourceDir:    "src",
		Exclude:      []string{"messages.js"},
		BaseTemplate: "base.md.mst",
		TemplateDir:  "in",
		OutputDir:    "out",
		OptionMarker: "state.option",
		Ref:          "master",
		Jobs:         runtime.NumCPU(),
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load overlays the YAML or TOML file at URL onto the defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	ret := Default()
	if err := ret.Merge(ctx, fs, URL); err != nil {
		return nil, err
	}
	return ret, nil
}

// Resolve loads explicit when set, otherwise the first existing DefaultFiles entry under dir
func Resolve(ctx context.Context, fs afs.Service, explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(ctx, fs, explicit)
	}
	for _, name := range DefaultFiles {
		URL := url.Join(dir, name)
		if ok, _ := fs.Exists(ctx, URL); ok {
			return Load(ctx, fs, URL)
		}
	}
	return Default(), nil
}

// Merge decodes the file at URL over c; the extension selects the format
func (c *Config) Merge(ctx context.Context, fs afs.Service, URL string) error {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return errs.Read(URL, err)
	}
	switch ext := strings.ToLower(path.Ext(URL)); ext {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err = decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return errs.Read(URL, fmt.Errorf("invalid yaml config: %w", err))
		}
	case ".toml":
		if _, err = toml.Decode(string(data), c); err != nil {
			return errs.Read(URL, fmt.Errorf("invalid toml config: %w", err))
		}
	default:
		return errs.Read(URL, fmt.Errorf("unsupported config format: %q", ext))
	}
	return nil
}

// ApplyEnv loads the .env files (missing ones are ignored) and applies JSHINT_MESSAGES_* variables
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return errs.Read(envFile, err)
		}
	}
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	text := map[string]*string{
		"ROOT":          &c.Root,
		"SOURCE_DIR":    &c.SourceDir,
		"CATALOG":       &c.Catalog,
		"BASE_TEMPLATE": &c.BaseTemplate,
		"TEMPLATE_DIR":  &c.TemplateDir,
		"OUTPUT_DIR":    &c.OutputDir,
		"OPTION_MARKER": &c.OptionMarker,
		"SOURCE_URL":    &c.SourceURL,
		"REF":           &c.Ref,
		"LOG_LEVEL":     &c.LogLevel,
		"LOG_FORMAT":    &c.LogFormat,
	}
	for key, target := range text {
		if value, ok := lookup(EnvPrefix + key); ok {
			*target = strings.TrimSpace(value)
		}
	}
	flags := map[string]*bool{
		"QUIET":    &c.Quiet,
		"NO_COLOR": &c.NoColor,
	}
	for key, target := range flags {
		value, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errs.Usage("invalid %s%s: %v", EnvPrefix, key, err)
		}
		*target = parsed
	}
	if value, ok := lookup(EnvPrefix + "JOBS"); ok {
		jobs, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errs.Usage("invalid %sJOBS: %v", EnvPrefix, err)
		}
		c.Jobs = jobs
	}
	if value, ok := lookup(EnvPrefix + "EXCLUDE"); ok {
		c.Exclude = nil
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.Exclude = append(c.Exclude, name)
			}
		}
	}
	return nil
}

// Validate reports the first invalid setting as a usage error
func (c *Config) Validate() error {
	switch {
	case c.Root == "":
		return errs.Usage("Usage: jshint-messages [jshint dir]")
	case c.SourceDir == "":
		return errs.Usage("source_dir must not be empty")
	case c.OutputDir == "":
		return errs.Usage("output_dir must not be empty")
	case path.Clean(c.OutputDir) == path.Clean(c.Root):
		return errs.Usage("output_dir must differ from the project root: %v", c.OutputDir)
	case c.BaseTemplate == "":
		return errs.Usage("base_template must not be empty")
	case c.OptionMarker == "":
		return errs.Usage("option_marker must not be empty")
	case c.Jobs < 1:
		return errs.Usage("jobs must be positive: %d", c.Jobs)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errs.Usage("unsupported log_format: %q", c.LogFormat)
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errs.Usage("unsupported log_level: %q", c.LogLevel)
	}
	return level, nil
}

// SourceURLDir returns the directory holding the linter sources
func (c *Config) SourceURLDir() string {
	return url.Join(c.Root, c.SourceDir)
}

// CatalogURL returns the message catalog location
func (c *Config) CatalogURL() string {
	if c.Catalog != "" {
		return c.Catalog
	}
	return url.Join(c.Root, c.SourceDir, "messages.js")
}
