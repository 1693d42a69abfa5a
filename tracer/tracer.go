// Package tracer computes control-flow paths from program entry to the lines
// that contain a given literal.
package tracer

import (
	"context"
	"fmt"
)

// Path is one control-flow path as 1-based line numbers; the last element is the terminal (matching) line
type Path []int

// Terminal returns the last line of the path, or 0 for an empty path
func (p Path) Terminal() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Tracer returns every path that reaches a line matching pattern in src.
// Returned paths must not be modified by the caller.
type Tracer interface {
	Trace(ctx context.Context, pattern string, src []byte) ([]Path, error)
}

// SyntaxError reports source that could not be parsed
type SyntaxError struct {
	Line int
	Near string
}

func (e *SyntaxError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("syntax error at line %d", e.Line)
	}
	return fmt.Sprintf("syntax error at line %d near %q", e.Line, e.Near)
}
