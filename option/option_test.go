package option

import (
	"github.com/jonvuri/jshint-messages/source"
	"github.com/jonvuri/jshint-messages/trace"
	"github.com/jonvuri/jshint-messages/tracer"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "inES5", expected: "es3"},
		{input: "es5", expected: "es3"},
		{input: "inMoz", expected: "moz"},
		{input: "inESNext", expected: "esnext"},
		{input: "indent", expected: "indent"},
		{input: "undef", expected: "undef"},
		{input: "es3", expected: "es3"},
		{input: "ES5", expected: "ES5"},
		{input: "ininline", expected: "line"},
		{input: "inindent", expected: "indent"},
		{input: "in", expected: ""},
		{input: "", expected: ""},
		{input: "latedef", expected: "latedef"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			actual := Normalize(tc.input)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, actual, Normalize(actual), "normalization must be idempotent")
		})
	}
}

func TestNormalize_AliasTableClosed(t *testing.T) {
	for from, to := range legacyAliases {
		_, isKey := legacyAliases[to]
		assert.False(t, isKey, "alias target %v of %v must not be remapped again", to, from)
		assert.Equal(t, to, Normalize(to))
	}
}

func TestStateExtractor_ExtractLine(t *testing.T) {
	extractor := NewStateExtractor("")
	tests := []struct {
		description string
		line        string
		expected    []string
	}{
		{description: "legacy edition", line: "if (state.option.inES5) {", expected: []string{"es3"}},
		{description: "indent exempt", line: "var w = state.option.indent;", expected: []string{"indent"}},
		{description: "multiple", line: "if (state.option.undef && !state.option.inMoz && state.option.$x1) {", expected: []string{"undef", "moz", "$x1"}},
		{description: "no marker", line: "option.undef = true;", expected: nil},
		{description: "marker without identifier", line: "state.option[name] = true;", expected: nil},
		{description: "digit start rejected", line: "state.option.9lives", expected: nil},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractor.ExtractLine(tc.line))
		})
	}
}

func TestStateExtractor_Extract(t *testing.T) {
	first := source.NewFile("jshint.js", `if (state.option.undef) {
  noop();
  if (state.option.inES5 && state.option.undef) {
    warning("W117");
  }
}
var x = state.option.unused;`)
	second := source.NewFile("lex.js", `if (state.option.es5) {
  if (state.option.maxlen) {
    warning("W117");
  }
}`)
	traces := []*trace.FileTrace{
		{File: first, Trace: trace.New([]tracer.Path{{1, 3, 4}})},
		{File: second, Trace: trace.New([]tracer.Path{{1, 2, 3}})},
	}

	actual := NewStateExtractor(DefaultMarker).Extract(traces)
	// line 7 of jshint.js is not traced, es5 from lex.js dedupes against inES5
	assert.Equal(t, []string{"undef", "es3", "maxlen"}, actual)
}

func TestStateExtractor_Extract_Empty(t *testing.T) {
	assert.Nil(t, NewStateExtractor("").Extract(nil))
}

func TestStateExtractor_CustomMarker(t *testing.T) {
	extractor := NewStateExtractor("opts.get")
	assert.Equal(t, []string{"strict"}, extractor.ExtractLine("if (opts.get.strict) {"))
	assert.Nil(t, extractor.ExtractLine("if (state.option.strict) {"))
}

var _ Extractor = (*StateExtractor)(nil)
