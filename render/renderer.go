package render

import (
	"fmt"
	"github.com/cbroglie/mustache"
)

// ContentPartial is the partial name an override template is bound to
const ContentPartial = "content"

// Renderer merges contexts into the shared base template.
// The base decides where {{> content}} goes and uses {{^hasContent}} for its default section.
type Renderer struct {
	base string
}

// NewRenderer validates base and creates a renderer
func NewRenderer(base string) (*Renderer, error) {
	if _, err := mustache.ParseStringPartials(base, &mustache.StaticProvider{}); err != nil {
		return nil, fmt.Errorf("invalid base template: %w", err)
	}
	return &Renderer{base: base}, nil
}

// Render renders c; a non-empty override replaces the base default content section
func (r *Renderer) Render(c *Context, override string) (string, error) {
	view := c.View()
	view["hasContent"] = override != ""
	partials := &mustache.StaticProvider{Partials: map[string]string{}}
	if override != "" {
		partials.Partials[ContentPartial] = override
	}
	ret, err := mustache.RenderPartials(r.base, partials, view)
	if err != nil {
		return "", fmt.Errorf("failed to render %v: %w", c.Diagnostic.Code, err)
	}
	return ret, nil
}
