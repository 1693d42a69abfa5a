package generator

import (
	"github.com/jonvuri/jshint-messages/option"
	"github.com/jonvuri/jshint-messages/output"
	"github.com/jonvuri/jshint-messages/render"
	"github.com/jonvuri/jshint-messages/tracer"
	"github.com/viant/afs"
	"log/slog"
)

type Option func(*Generator)

// WithFS sets the file system used for every read and write
func WithFS(fs afs.Service) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(g *Generator) {
		g.tracer = t
	}
}

// WithExtractor replaces the state.option extractor
func WithExtractor(extractor option.Extractor) Option {
	return func(g *Generator) {
		g.extractor = extractor
	}
}

func WithReporter(reporter Reporter) Option {
	return func(g *Generator) {
		g.reporter = reporter
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithOutputObserver observes the output directory preparation and writes
func WithOutputObserver(observer output.Observer) Option {
	return func(g *Generator) {
		g.observer = observer
	}
}

// WithRenderer uses renderer instead of parsing the configured base template
func WithRenderer(renderer *render.Renderer) Option {
	return func(g *Generator) {
		g.renderer = renderer
	}
}
