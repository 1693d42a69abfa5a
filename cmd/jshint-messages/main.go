package main

import (
	"context"
	"fmt"
	"github.com/jonvuri/jshint-messages/config"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/jonvuri/jshint-messages/generator"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"io"
	"log/slog"
	"os"
	"os/signal"
)

const usage = "Usage: jshint-messages [jshint dir]"

// flags holds raw command line values; only flags the user set override the config
type flags struct {
	config    string
	out       string
	base      string
	templates string
	sourceDir string
	catalog   string
	sourceURL string
	ref       string
	jobs      int
	logLevel  string
	logFormat string
	quiet     bool
	noColor   bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command and maps its error to an exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
	}
	return errs.ExitCode(err)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	values := &flags{}
	cmd := &cobra.Command{
		Use:           "jshint-messages [flags] <jshint dir>",
		Short:         "Generate Markdown documentation for every JSHint diagnostic code",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || args[0] == "" {
				return errs.Usage(usage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, values, args[0])
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, stderr)
			if err != nil {
				return err
			}
			var reporter generator.Reporter = generator.NopReporter{}
			if !cfg.Quiet {
				reporter = generator.NewConsoleReporter(stdout, !cfg.NoColor)
			}
			gen, err := generator.New(cfg,
				generator.WithReporter(reporter),
				generator.WithLogger(logger))
			if err != nil {
				return err
			}
			return gen.Run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.Usage("%v\n%s", err, usage)
	})

	defaults := config.Default()
	fs := cmd.Flags()
	fs.StringVar(&values.config, "config", "", "config file (yaml, yml or toml); defaults to jshint-messages.{yaml,yml,toml} in the working directory")
	fs.StringVar(&values.out, "out", defaults.OutputDir, "output directory, deleted and recreated on every run")
	fs.StringVar(&values.base, "base", defaults.BaseTemplate, "base mustache template")
	fs.StringVar(&values.templates, "templates", defaults.TemplateDir, "directory of per-code override templates")
	fs.StringVar(&values.sourceDir, "source-dir", defaults.SourceDir, "linter source directory relative to the project root")
	fs.StringVar(&values.catalog, "catalog", "", "message catalog (.js or .yaml); defaults to <source-dir>/messages.js")
	fs.StringVar(&values.sourceURL, "source-url", "", "base URL for source line links; derived from the git origin when empty")
	fs.StringVar(&values.ref, "ref", defaults.Ref, "git ref used in derived source links")
	fs.IntVar(&values.jobs, "jobs", defaults.Jobs, "maximum documents rendered concurrently")
	fs.StringVar(&values.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&values.logFormat, "log-format", defaults.LogFormat, "log format (text, json)")
	fs.BoolVar(&values.quiet, "quiet", false, "do not print progress")
	fs.BoolVar(&values.noColor, "no-color", false, "disable colored progress")
	return cmd
}

// loadConfig layers defaults, the config file, the environment and set flags, then validates
func loadConfig(cmd *cobra.Command, values *flags, root string) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.Context(), afs.New(), values.config, cwd)
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.Root = root
	changed := cmd.Flags().Changed
	if changed("out") {
		cfg.OutputDir = values.out
	}
	if changed("base") {
		cfg.BaseTemplate = values.base
	}
	if changed("templates") {
		cfg.TemplateDir = values.templates
	}
	if changed("source-dir") {
		cfg.SourceDir = values.sourceDir
	}
	if changed("catalog") {
		cfg.Catalog = values.catalog
	}
	if changed("source-url") {
		cfg.SourceURL = values.sourceURL
	}
	if changed("ref") {
		cfg.Ref = values.ref
	}
	if changed("jobs") {
		cfg.Jobs = values.jobs
	}
	if changed("log-level") {
		cfg.LogLevel = values.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = values.logFormat
	}
	if changed("quiet") {
		cfg.Quiet = values.quiet
	}
	if changed("no-color") {
		cfg.NoColor = values.noColor
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, writer io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(writer, options)), nil
	}
	return slog.New(slog.NewTextHandler(writer, options)), nil
}
