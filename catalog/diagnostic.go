// Package catalog models the diagnostics a linter can emit and loads them
// from the target project's message catalog.
package catalog

import (
	"fmt"
	"strings"
)

// Category is the closed set of diagnostic categories
type Category int

const (
	Error Category = iota
	Warning
	Info
)

var categories = []Category{Error, Warning, Info}

// Categories returns all categories in processing order
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// String returns the singular category name
func (c Category) String() string {
	switch c {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Dir returns the catalog key and output directory name for the category
func (c Category) Dir() string {
	switch c {
	case Error:
		return "errors"
	case Warning:
		return "warnings"
	case Info:
		return "info"
	}
	return c.String()
}

// ParseCategory accepts either the singular name or the directory name
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range categories {
		if name == candidate.String() || name == candidate.Dir() {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("unknown diagnostic category: %q", name)
}

// Diagnostic represents one uniquely coded linter message
type Diagnostic struct {
	Code        string
	Description string
	Retired     bool // no description: the code is no longer emitted
	Category    Category
}

// Catalog holds diagnostics per category in catalog order
type Catalog struct {
	diagnostics map[Category][]*Diagnostic
	codeMap     map[string]*Diagnostic
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		diagnostics: map[Category][]*Diagnostic{},
		codeMap:     map[string]*Diagnostic{},
	}
}

// Add appends a diagnostic, codes must be unique across the catalog
func (c *Catalog) Add(diagnostic *Diagnostic) error {
	if diagnostic.Code == "" {
		return fmt.Errorf("empty diagnostic code in %v", diagnostic.Category.Dir())
	}
	if prev, ok := c.codeMap[diagnostic.Code]; ok {
		return fmt.Errorf("duplicate diagnostic code %v in %v (already in %v)", diagnostic.Code, diagnostic.Category.Dir(), prev.Category.Dir())
	}
	c.codeMap[diagnostic.Code] = diagnostic
	c.diagnostics[diagnostic.Category] = append(c.diagnostics[diagnostic.Category], diagnostic)
	return nil
}

// Diagnostics returns diagnostics of a category in catalog order
func (c *Catalog) Diagnostics(category Category) []*Diagnostic {
	return c.diagnostics[category]
}

// Lookup returns diagnostic by code
func (c *Catalog) Lookup(code string) *Diagnostic {
	return c.codeMap[code]
}

// Len returns total number of diagnostics
func (c *Catalog) Len() int {
	return len(c.codeMap)
}
