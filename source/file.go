package source

import (
	"strings"
	"unicode"
)

// File represents a source file held as 1-indexed lines
type File struct {
	Name  string // File name relative to the source directory
	URL   string // Location the file was loaded from
	Text  string // Raw file content
	lines []string
}

// NewFile creates a File, lines are split on '\n'
func NewFile(name, text string) *File {
	return &File{
		Name:  name,
		Text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// LineCount returns number of lines
func (f *File) LineCount() int {
	return len(f.lines)
}

// Line returns line n (1-based) with trailing whitespace stripped, or "" when out of range
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	return strings.TrimRightFunc(f.lines[n-1], unicode.IsSpace)
}

// Content returns the file text as bytes
func (f *File) Content() []byte {
	return []byte(f.Text)
}
