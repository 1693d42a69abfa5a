// Package trace reduces raw tracer paths into canonical per-file traces.
package trace

import (
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/tracer"
	"slices"
	"sort"
)

// Trace is the canonical trace of one (diagnostic, file) pair.
// Lines is strictly ascending; Terminals is an ascending subset of Lines.
type Trace struct {
	Lines     []int
	Terminals []int
}

// FileTrace pairs a source file with its trace
type FileTrace struct {
	File  *source.File
	Trace *Trace
}

// New merges raw paths: every line once, ascending; path ends recorded as terminals
func New(paths []tracer.Path) *Trace {
	var lines, terminals []int
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		lines = append(lines, path...)
		terminals = append(terminals, path.Terminal())
	}
	return &Trace{Lines: uniqueSorted(lines), Terminals: uniqueSorted(terminals)}
}

func uniqueSorted(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	sort.Ints(values)
	return slices.Compact(values)
}

// Empty returns true when no path reached the file
func (t *Trace) Empty() bool {
	return t == nil || len(t.Lines) == 0
}

// IsTerminal returns true if line ends a path
func (t *Trace) IsTerminal(line int) bool {
	if t == nil {
		return false
	}
	_, found := slices.BinarySearch(t.Terminals, line)
	return found
}

// MaxLine returns the largest traced line, 0 if empty
func (t *Trace) MaxLine() int {
	if t.Empty() {
		return 0
	}
	return t.Lines[len(t.Lines)-1]
}
