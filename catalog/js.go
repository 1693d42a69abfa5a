package catalog

import (
	"context"
	"fmt"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"strconv"
	"strings"
)

// ParseJS extracts diagnostics from a JSHint style messages.js:
//
//	var errors = { E001: "Bad option: '{a}'.", ... };
//	var warnings = { W001: null, ... };
//	var info = { I001: "...", ... };
//
// A string value is the description; any other value marks the code retired.
func ParseJS(ctx context.Context, src []byte) (*Catalog, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, fmt.Errorf("failed to parse catalog: syntax error")
	}

	objects := map[Category]*sitter.Node{}
	for i := 0; i < int(rootNode.NamedChildCount()); i++ {
		declaration := rootNode.NamedChild(i)
		if declaration.Type() != "variable_declaration" && declaration.Type() != "lexical_declaration" {
			continue
		}
		for j := 0; j < int(declaration.NamedChildCount()); j++ {
			declarator := declaration.NamedChild(j)
			if declarator.Type() != "variable_declarator" {
				continue
			}
			nameNode := declarator.ChildByFieldName("name")
			valueNode := declarator.ChildByFieldName("value")
			if nameNode == nil || valueNode == nil || valueNode.Type() != "object" {
				continue
			}
			category, err := ParseCategory(nameNode.Content(src))
			if err != nil || nameNode.Content(src) != category.Dir() {
				continue
			}
			objects[category] = valueNode
		}
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("no errors, warnings or info declarations found")
	}

	ret := New()
	for _, category := range Categories() {
		object, ok := objects[category]
		if !ok {
			continue
		}
		for i := 0; i < int(object.NamedChildCount()); i++ {
			pair := object.NamedChild(i)
			if pair.Type() != "pair" {
				continue
			}
			diagnostic, err := pairDiagnostic(pair, src, category)
			if err != nil {
				return nil, err
			}
			if err := ret.Add(diagnostic); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func pairDiagnostic(pair *sitter.Node, src []byte, category Category) (*Diagnostic, error) {
	keyNode := pair.ChildByFieldName("key")
	valueNode := pair.ChildByFieldName("value")
	if keyNode == nil || valueNode == nil {
		return nil, fmt.Errorf("malformed %v entry at line %d", category.Dir(), pair.StartPoint().Row+1)
	}
	ret := &Diagnostic{Category: category}
	switch keyNode.Type() {
	case "string":
		ret.Code = stringValue(keyNode, src)
	default:
		ret.Code = keyNode.Content(src)
	}
	if valueNode.Type() == "string" {
		ret.Description = stringValue(valueNode, src)
	} else {
		ret.Retired = true
	}
	return ret, nil
}

// stringValue decodes a string literal node from its fragments and escapes
func stringValue(node *sitter.Node, src []byte) string {
	builder := strings.Builder{}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "string_fragment":
			builder.WriteString(child.Content(src))
		case "escape_sequence":
			builder.WriteString(unescape(child.Content(src)))
		}
	}
	return builder.String()
}

func unescape(sequence string) string {
	if len(sequence) < 2 {
		return sequence
	}
	switch sequence[1] {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '0':
		return "\x00"
	case '\n', '\r':
		return ""
	case 'u', 'x':
		digits := strings.Trim(sequence[2:], "{}")
		if code, err := strconv.ParseUint(digits, 16, 32); err == nil {
			return string(rune(code))
		}
	}
	return sequence[1:]
}
