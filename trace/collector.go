package trace

import (
	"context"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/tracer"
)

// Collector invokes the tracer once per (code, file) pair
type Collector struct {
	tracer tracer.Tracer
}

// NewCollector creates a collector
func NewCollector(t tracer.Tracer) *Collector {
	return &Collector{tracer: t}
}

// Pattern returns the literal searched for a diagnostic code
func Pattern(code string) string {
	return `"` + code + `"`
}

// Collect traces code in file; tracer failures are returned as errs.TraceError
func (c *Collector) Collect(ctx context.Context, code string, file *source.File) (*Trace, error) {
	paths, err := c.tracer.Trace(ctx, Pattern(code), file.Content())
	if err != nil {
		return nil, &errs.TraceError{File: file.Name, Code: code, Err: err}
	}
	return New(paths), nil
}

// CollectAll traces code across set in set order, omitting files with an empty trace
func (c *Collector) CollectAll(ctx context.Context, code string, set *source.Set) ([]*FileTrace, error) {
	var ret []*FileTrace
	for _, file := range set.Files {
		t, err := c.Collect(ctx, code, file)
		if err != nil {
			return nil, err
		}
		if t.Empty() {
			continue
		}
		ret = append(ret, &FileTrace{File: file, Trace: t})
	}
	return ret, nil
}
