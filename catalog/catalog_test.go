package catalog

import (
	"context"
	"github.com/jonvuri/jshint-messages/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"os"
	"path/filepath"
	"testing"
)

const messagesJS = `"use strict";

var _ = require("lodash");

var errors = {
  // JSHint options
  E001: "Bad {a}option: '{a}'.",
  E002: 'Bad option value.',
  "E003": "Expected a JSON value.\nSee docs."
};

var warnings = {
  W001: "'hasOwnProperty' is a really bad name.",
  W002: null,
  W003: undefined
};

var info = {
  I001: "Comma warnings can be turned off with 'laxcomma'."
};

exports.errors = {};
exports.warnings = {};
exports.info = {};

_.each(errors, function(desc, code) {
  exports.errors[code] = { code: code, desc: desc };
});
`

func TestParseJS(t *testing.T) {
	actual, err := ParseJS(context.Background(), []byte(messagesJS))
	require.NoError(t, err)
	assert.Equal(t, 7, actual.Len())

	assert.Equal(t, []*Diagnostic{
		{Code: "E001", Description: "Bad {a}option: '{a}'.", Category: Error},
		{Code: "E002", Description: "Bad option value.", Category: Error},
		{Code: "E003", Description: "Expected a JSON value.\nSee docs.", Category: Error},
	}, actual.Diagnostics(Error))
	assert.Equal(t, []*Diagnostic{
		{Code: "W001", Description: "'hasOwnProperty' is a really bad name.", Category: Warning},
		{Code: "W002", Retired: true, Category: Warning},
		{Code: "W003", Retired: true, Category: Warning},
	}, actual.Diagnostics(Warning))
	assert.Equal(t, "I001", actual.Diagnostics(Info)[0].Code)
	assert.Equal(t, Info, actual.Lookup("I001").Category)
}

func TestParseJS_Errors(t *testing.T) {
	tests := []struct {
		description string
		src         string
	}{
		{description: "no declarations", src: "var x = {};\n"},
		{description: "duplicate code", src: "var errors = { E001: 'a' };\nvar warnings = { E001: 'b' };\n"},
		{description: "syntax error", src: "var errors = { E001: 'a' \n"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := ParseJS(context.Background(), []byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	actual, err := ParseYAML([]byte(`errors:
  - code: E001
    desc: "Bad option: '{a}'."
warnings:
  - code: W001
    desc: null
  - code: W002
info:
  - code: I001
    desc: Comma warnings
`))
	require.NoError(t, err)
	assert.Equal(t, 4, actual.Len())
	assert.Equal(t, "Bad option: '{a}'.", actual.Lookup("E001").Description)
	assert.True(t, actual.Lookup("W001").Retired)
	assert.True(t, actual.Lookup("W002").Retired)
	assert.False(t, actual.Lookup("I001").Retired)
	assert.Equal(t, Warning, actual.Lookup("W002").Category)

	_, err = ParseYAML([]byte("errors:\n  - code: E001\n  - code: E001\n"))
	assert.Error(t, err)
	_, err = ParseYAML([]byte("errors: [\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	jsPath := filepath.Join(dir, "messages.js")
	require.NoError(t, os.WriteFile(jsPath, []byte(messagesJS), 0o644))
	yamlPath := filepath.Join(dir, "messages.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("errors:\n  - code: E100\n    desc: x\n"), 0o644))

	fs := afs.New()
	ctx := context.Background()

	fromJS, err := Load(ctx, fs, jsPath)
	require.NoError(t, err)
	assert.Equal(t, 7, fromJS.Len())

	fromYAML, err := Load(ctx, fs, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "x", fromYAML.Lookup("E100").Description)

	_, err = Load(ctx, fs, filepath.Join(dir, "missing.js"))
	var readErr *errs.ReadError
	assert.ErrorAs(t, err, &readErr)

	_, err = Load(ctx, fs, filepath.Join(dir, "messages.json"))
	assert.Error(t, err)
}

func TestCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		dir      string
	}{
		{input: "error", expected: Error, dir: "errors"},
		{input: "warnings", expected: Warning, dir: "warnings"},
		{input: " Info ", expected: Info, dir: "info"},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			actual, err := ParseCategory(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.dir, actual.Dir())
		})
	}
	_, err := ParseCategory("hint")
	assert.Error(t, err)
	assert.Equal(t, []Category{Error, Warning, Info}, Categories())
}
