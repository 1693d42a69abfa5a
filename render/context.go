package render

import (
	"github.com/jonvuri/jshint-messages/catalog"
	"github.com/jonvuri/jshint-messages/trace"
	"strconv"
	"strings"
)

// RetiredDescription replaces the description of codes without one
const RetiredDescription = "This code has been retired and is no longer emitted."

// Linker builds a source URL; line 0 addresses the whole file
type Linker func(file string, line int) string

// BaseLinker links to base + file + "#L<line>", nil when base is empty
func BaseLinker(base string) Linker {
	if base == "" {
		return nil
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return func(file string, line int) string {
		if line <= 0 {
			return base + file
		}
		return base + file + "#L" + strconv.Itoa(line)
	}
}

// Project identifies the documented project in rendered output
type Project struct {
	Name    string
	Version string
}

// FileContext is the formatted trace of one source file
type FileContext struct {
	Name  string
	URL   string
	Lines []LineRecord
}

// Context is everything a document template can bind to
type Context struct {
	Diagnostic  *catalog.Diagnostic
	Description string
	Files       []*FileContext
	Options     []string
	Project     Project
}

// Build assembles a render context; files with an empty trace are skipped.
// Build has no side effects and linker may be nil.
func Build(diagnostic *catalog.Diagnostic, traces []*trace.FileTrace, options []string, linker Linker) *Context {
	ret := &Context{
		Diagnostic:  diagnostic,
		Description: diagnostic.Description,
		Options:     options,
	}
	if diagnostic.Retired {
		ret.Description = RetiredDescription
	}
	for _, fileTrace := range traces {
		if fileTrace == nil || fileTrace.Trace.Empty() {
			continue
		}
		fileContext := &FileContext{
			Name:  fileTrace.File.Name,
			Lines: Format(fileTrace.Trace, fileTrace.File),
		}
		if linker != nil {
			fileContext.URL = linker(fileContext.Name, 0)
			for i := range fileContext.Lines {
				fileContext.Lines[i].URL = linker(fileContext.Name, fileContext.Lines[i].LineNumber)
			}
		}
		ret.Files = append(ret.Files, fileContext)
	}
	return ret
}

// View returns the template bindings.
// Keys use the camelCase names the shipped templates bind to (message.desc, traces[].traceLines, ...).
func (c *Context) View() map[string]interface{} {
	traces := make([]map[string]interface{}, 0, len(c.Files))
	for _, file := range c.Files {
		lines := make([]map[string]interface{}, 0, len(file.Lines))
		for _, line := range file.Lines {
			lines = append(lines, map[string]interface{}{
				"lineNumber":       line.LineNumber,
				"paddedLineNumber": line.PaddedLabel,
				"lineText":         line.Text,
				"continuous":       line.Continuous,
				"messageLine":      line.Terminal,
				"url":              line.URL,
			})
		}
		traces = append(traces, map[string]interface{}{
			"filename":   file.Name,
			"url":        file.URL,
			"traceLines": lines,
		})
	}
	options := c.Options
	if options == nil {
		options = []string{}
	}
	return map[string]interface{}{
		"message": map[string]interface{}{
			"code":     c.Diagnostic.Code,
			"desc":     c.Description,
			"retired":  c.Diagnostic.Retired,
			"category": c.Diagnostic.Category.String(),
		},
		"traces":     traces,
		"hasTraces":  len(traces) > 0,
		"options":    options,
		"hasOptions": len(options) > 0,
		"project": map[string]interface{}{
			"name":    c.Project.Name,
			"version": c.Project.Version,
		},
	}
}
