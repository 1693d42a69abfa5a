// Package render turns canonical traces into template contexts and Markdown documents.
package render

import (
	"fmt"
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/trace"
	"strconv"
)

// MinLabelWidth is the minimum width of a padded line number
const MinLabelWidth = 4

// LineRecord is one displayed trace line
type LineRecord struct {
	LineNumber  int
	PaddedLabel string
	Text        string
	Continuous  bool // false when a gap precedes this line
	Terminal    bool // line emits the diagnostic
	URL         string
}

// LabelWidth returns the padded label width for a trace ending at maxLine
func LabelWidth(maxLine int) int {
	if width := len(strconv.Itoa(maxLine)); width > MinLabelWidth {
		return width
	}
	return MinLabelWidth
}

// Format partitions a trace into display records; the first line is always continuous
func Format(t *trace.Trace, file *source.File) []LineRecord {
	if t.Empty() {
		return nil
	}
	width := LabelWidth(t.MaxLine())
	ret := make([]LineRecord, 0, len(t.Lines))
	for i, lineNumber := range t.Lines {
		ret = append(ret, LineRecord{
			LineNumber:  lineNumber,
			PaddedLabel: fmt.Sprintf("%-*d", width, lineNumber),
			Text:        file.Line(lineNumber),
			Continuous:  i == 0 || lineNumber == t.Lines[i-1]+1,
			Terminal:    t.IsTerminal(lineNumber),
		})
	}
	return ret
}
