package option

import (
	"github.com/jonvuri/jshint-messages/trace"
	"regexp"
	"strings"
)

// DefaultMarker marks configuration option access in JSHint sources
const DefaultMarker = "state.option"

var identifier = `([a-zA-Z_$][0-9a-zA-Z_$]*)`

// Extractor returns the ordered, duplicate-free option names referenced by traces
type Extractor interface {
	Extract(traces []*trace.FileTrace) []string
}

// StateExtractor scrapes option accessors such as state.option.inES5 from traced source lines
type StateExtractor struct {
	marker  string
	pattern *regexp.Regexp
}

// NewStateExtractor creates an extractor for marker, DefaultMarker when empty
func NewStateExtractor(marker string) *StateExtractor {
	if marker == "" {
		marker = DefaultMarker
	}
	return &StateExtractor{
		marker:  marker,
		pattern: regexp.MustCompile(regexp.QuoteMeta(marker) + `\.` + identifier),
	}
}

// Extract scans files in order, then lines ascending; first occurrence wins
func (e *StateExtractor) Extract(traces []*trace.FileTrace) []string {
	var ret []string
	seen := map[string]bool{}
	for _, fileTrace := range traces {
		for _, lineNumber := range fileTrace.Trace.Lines {
			for _, name := range e.ExtractLine(fileTrace.File.Line(lineNumber)) {
				if seen[name] {
					continue
				}
				seen[name] = true
				ret = append(ret, name)
			}
		}
	}
	return ret
}

// ExtractLine returns normalized option names referenced on a single line, in order of appearance
func (e *StateExtractor) ExtractLine(line string) []string {
	if !strings.Contains(line, e.marker) {
		return nil
	}
	var ret []string
	for _, match := range e.pattern.FindAllStringSubmatch(line, -1) {
		ret = append(ret, Normalize(match[1]))
	}
	return ret
}
