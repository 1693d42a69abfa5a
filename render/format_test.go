package render

import (
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/trace"
	"github.com/jonvuri/jshint-messages/tracer"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func numberedFile(name string, count int) *source.File {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = "line " + strings.Repeat("x", i%3) + "  "
	}
	return source.NewFile(name, strings.Join(lines, "\n"))
}

func TestFormat(t *testing.T) {
	file := numberedFile("jshint.js", 12)
	actual := Format(trace.New([]tracer.Path{{3, 5, 9}, {3, 6}}), file)

	var continuity []bool
	var numbers []int
	var terminals []bool
	for _, record := range actual {
		continuity = append(continuity, record.Continuous)
		numbers = append(numbers, record.LineNumber)
		terminals = append(terminals, record.Terminal)
	}
	assert.Equal(t, []int{3, 5, 6, 9}, numbers)
	assert.Equal(t, []bool{true, false, true, false}, continuity)
	assert.Equal(t, []bool{false, false, true, true}, terminals)
	assert.Equal(t, "3   ", actual[0].PaddedLabel)
	assert.Equal(t, "line xx", actual[3].Text, "trailing whitespace must be stripped")
}

func TestFormat_Continuity(t *testing.T) {
	tests := []struct {
		description string
		lines       tracer.Path
		expected    []bool
	}{
		{description: "single line", lines: tracer.Path{7}, expected: []bool{true}},
		{description: "one run", lines: tracer.Path{4, 5, 6}, expected: []bool{true, true, true}},
		{description: "gaps", lines: tracer.Path{1, 3, 4, 10}, expected: []bool{true, false, true, false}},
	}
	file := numberedFile("a.js", 12)
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			var actual []bool
			for _, record := range Format(trace.New([]tracer.Path{tc.lines}), file) {
				actual = append(actual, record.Continuous)
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFormat_Empty(t *testing.T) {
	assert.Nil(t, Format(trace.New(nil), numberedFile("a.js", 1)))
}

func TestLabelWidth(t *testing.T) {
	assert.Equal(t, 4, LabelWidth(1))
	assert.Equal(t, 4, LabelWidth(9999))
	assert.Equal(t, 5, LabelWidth(10000))

	file := numberedFile("big.js", 3)
	actual := Format(trace.New([]tracer.Path{{2, 123456}}), file)
	assert.Equal(t, "2     ", actual[0].PaddedLabel)
	assert.Equal(t, "123456", actual[1].PaddedLabel)
	assert.Equal(t, "", actual[1].Text, "line past end of file renders empty")
}
