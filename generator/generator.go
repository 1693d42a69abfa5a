// Package generator drives a documentation run: it loads the linter sources and catalog,
// then renders and writes one Markdown document per diagnostic code.
package generator

import (
	"context"
	"github.com/jonvuri/jshint-messages/catalog"
	"github.com/jonvuri/jshint-messages/config"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/jonvuri/jshint-messages/option"
	"github.com/jonvuri/jshint-messages/output"
	"github.com/jonvuri/jshint-messages/project"
	"github.com/jonvuri/jshint-messages/render"
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/trace"
	"github.com/jonvuri/jshint-messages/tracer"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
	"io"
	"log/slog"
	"sync/atomic"
)

// TemplateExt is the extension of per-code override templates
const TemplateExt = ".md.mst"

// Generator renders the documentation tree described by a config
type Generator struct {
	config    *config.Config
	fs        afs.Service
	tracer    tracer.Tracer
	extractor option.Extractor
	reporter  Reporter
	logger    *slog.Logger
	renderer  *render.Renderer
	observer  output.Observer
}

// inputs is everything loaded before documents are produced
type inputs struct {
	sources  *source.Set
	catalog  *catalog.Catalog
	renderer *render.Renderer
	project  *project.Project
	store    *output.Store
	linker   render.Linker
}

// New creates a generator; cfg must pass config.Validate
func New(cfg *config.Config, options ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ret := &Generator{
		config:   cfg,
		fs:       afs.New(),
		reporter: NopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.tracer == nil {
		sitter, err := tracer.NewSitter()
		if err != nil {
			return nil, err
		}
		ret.tracer = sitter
	}
	if ret.extractor == nil {
		ret.extractor = option.NewStateExtractor(cfg.OptionMarker)
	}
	return ret, nil
}

// Run generates every document; the first failure cancels the run and is returned
func (g *Generator) Run(ctx context.Context) error {
	in, err := g.load(ctx)
	if err != nil {
		return err
	}
	g.logger.Info("inputs loaded",
		"sources", in.sources.Len(),
		"codes", in.catalog.Len(),
		"project", in.project.Name,
		"version", in.project.Version,
		"output", in.store.Root())

	var written atomic.Int64
	collector := trace.NewCollector(g.tracer)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.config.Jobs)
	for _, category := range catalog.Categories() {
		for _, diagnostic := range in.catalog.Diagnostics(category) {
			diagnostic := diagnostic
			group.Go(func() error {
				if err := g.document(groupCtx, in, collector, diagnostic); err != nil {
					return err
				}
				written.Add(1)
				return nil
			})
		}
	}
	err = group.Wait()
	if closeErr := g.reporter.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	g.logger.Info("documents written", "count", written.Load())
	return nil
}

func (g *Generator) load(ctx context.Context) (*inputs, error) {
	cfg := g.config
	ret := &inputs{renderer: g.renderer}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		ret.sources, err = source.Load(groupCtx, g.fs, cfg.SourceURLDir(), source.JavaScriptFiles(cfg.Exclude...))
		return err
	})
	group.Go(func() error {
		var err error
		ret.catalog, err = catalog.Load(groupCtx, g.fs, cfg.CatalogURL())
		return err
	})
	if ret.renderer == nil {
		group.Go(func() error {
			data, err := g.fs.DownloadWithURL(groupCtx, cfg.BaseTemplate)
			if err != nil {
				return errs.Read(cfg.BaseTemplate, err)
			}
			renderer, err := render.NewRenderer(string(data))
			if err != nil {
				return errs.Read(cfg.BaseTemplate, err)
			}
			ret.renderer = renderer
			return nil
		})
	}
	group.Go(func() error {
		var err error
		ret.project, err = project.Detect(groupCtx, g.fs, cfg.Root, cfg.SourceDir, cfg.Ref)
		if err != nil {
			return err
		}
		if version := ret.project.Version; version != "" && !ret.project.VersionValid {
			g.logger.Warn("package version is not semver", "version", version)
		}
		return nil
	})
	group.Go(func() error {
		ret.store = output.New(g.fs, cfg.OutputDir, output.WithObserver(g.observer))
		return ret.store.Prepare(groupCtx, catalog.Categories())
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	sourceURL := cfg.SourceURL
	if sourceURL == "" {
		sourceURL = ret.project.SourceURL
	}
	ret.linker = render.BaseLinker(sourceURL)
	return ret, nil
}

func (g *Generator) document(ctx context.Context, in *inputs, collector *trace.Collector, diagnostic *catalog.Diagnostic) error {
	override, err := g.override(ctx, diagnostic)
	if err != nil {
		return err
	}
	traces, err := collector.CollectAll(ctx, diagnostic.Code, in.sources)
	if err != nil {
		return err
	}
	options := g.extractor.Extract(traces)
	renderContext := render.Build(diagnostic, traces, options, in.linker)
	renderContext.Project = render.Project{Name: in.project.Name, Version: in.project.Version}
	body, err := in.renderer.Render(renderContext, override)
	if err != nil {
		return err
	}
	if err = in.store.Write(ctx, diagnostic.Category, diagnostic.Code, body); err != nil {
		return err
	}
	g.reporter.Report(diagnostic.Category, diagnostic.Code)
	g.logger.Debug("document written",
		"code", diagnostic.Code,
		"files", len(renderContext.Files),
		"options", options,
		"override", override != "")
	return nil
}

// override returns the per-code template, empty when there is none
func (g *Generator) override(ctx context.Context, diagnostic *catalog.Diagnostic) (string, error) {
	URL := url.Join(g.config.TemplateDir, diagnostic.Category.Dir(), diagnostic.Code+TemplateExt)
	exists, err := g.fs.Exists(ctx, URL)
	if err != nil {
		return "", errs.Read(URL, err)
	}
	if !exists {
		return "", nil
	}
	data, err := g.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", errs.Read(URL, err)
	}
	return string(data), nil
}
