package tracer

import (
	"context"
	"fmt"
	"fortio.org/safecast"
	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"slices"
	"strings"
)

// DefaultCacheSize is number of parsed sources kept by Sitter
const DefaultCacheSize = 256

// controlNodes lists node types contributing a line to a path
var controlNodes = map[string]bool{
	"function_declaration":           true,
	"generator_function_declaration": true,
	"function":                       true,
	"function_expression":            true,
	"generator_function":             true,
	"arrow_function":                 true,
	"method_definition":              true,
	"if_statement":                   true,
	"else_clause":                    true,
	"switch_statement":               true,
	"switch_case":                    true,
	"switch_default":                 true,
	"for_statement":                  true,
	"for_in_statement":               true,
	"while_statement":                true,
	"do_statement":                   true,
	"try_statement":                  true,
	"catch_clause":                   true,
	"finally_clause":                 true,
}

// Sitter traces JavaScript sources using tree-sitter.
// Each distinct source is parsed once into an immutable literal index, so
// tracing many patterns over the same file costs a single parse.
type Sitter struct {
	cacheSize int
	cache     *lru.Cache[uint64, *index]
}

// Option configures Sitter
type Option func(*Sitter)

// WithCacheSize sets number of parsed sources kept in memory
func WithCacheSize(size int) Option {
	return func(s *Sitter) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// NewSitter creates a tree-sitter based tracer
func NewSitter(options ...Option) (*Sitter, error) {
	ret := &Sitter{cacheSize: DefaultCacheSize}
	for _, option := range options {
		option(ret)
	}
	cache, err := lru.New[uint64, *index](ret.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create index cache: %w", err)
	}
	ret.cache = cache
	return ret, nil
}

// Trace returns paths to every string literal equal to pattern.
// A quoted pattern also matches the same literal written with the other quote style.
func (s *Sitter) Trace(ctx context.Context, pattern string, src []byte) ([]Path, error) {
	idx, err := s.index(ctx, src)
	if err != nil {
		return nil, err
	}
	var ret []Path
	for _, literal := range literalVariants(pattern) {
		for _, path := range idx.paths[literal] {
			ret = append(ret, slices.Clone(path))
		}
	}
	return ret, nil
}

// index is the parsed form of one source: literal raw text -> paths
type index struct {
	paths map[string][]Path
	err   error
}

func (s *Sitter) index(ctx context.Context, src []byte) (*index, error) {
	key := Fingerprint(src)
	if idx, ok := s.cache.Get(key); ok {
		return idx, idx.err
	}
	idx := buildIndex(ctx, src)
	if ctx.Err() == nil {
		s.cache.Add(key, idx)
	}
	return idx, idx.err
}

func buildIndex(ctx context.Context, src []byte) *index {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return &index{err: fmt.Errorf("failed to parse source: %w", err)}
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return &index{err: syntaxError(rootNode, src)}
	}
	ret := &index{paths: map[string][]Path{}}
	if err := ret.walk(rootNode, src, nil); err != nil {
		ret.paths, ret.err = nil, err
	}
	return ret
}

// walk records a path for every string literal; lines holds the enclosing control node lines
func (x *index) walk(node *sitter.Node, src []byte, lines Path) error {
	line, err := lineOf(node)
	if err != nil {
		return err
	}
	switch {
	case node.Type() == "string":
		literal := node.Content(src)
		x.paths[literal] = append(x.paths[literal], appendLine(slices.Clone(lines), line))
		return nil
	case controlNodes[node.Type()]:
		lines = appendLine(lines, line)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if err := x.walk(node.NamedChild(i), src, lines); err != nil {
			return err
		}
	}
	return nil
}

func appendLine(lines Path, line int) Path {
	if len(lines) > 0 && lines[len(lines)-1] == line {
		return lines
	}
	return append(lines, line)
}

func lineOf(node *sitter.Node) (int, error) {
	row, err := safecast.Conv[int](node.StartPoint().Row)
	if err != nil {
		return 0, fmt.Errorf("invalid row: %w", err)
	}
	return row + 1, nil
}

// syntaxError locates the first ERROR or MISSING node
func syntaxError(rootNode *sitter.Node, src []byte) error {
	node := firstError(rootNode)
	if node == nil {
		node = rootNode
	}
	line, err := lineOf(node)
	if err != nil {
		return err
	}
	near := node.Content(src)
	if i := strings.IndexByte(near, '\n'); i != -1 {
		near = near[:i]
	}
	if len(near) > 40 {
		near = near[:40]
	}
	return &SyntaxError{Line: line, Near: near}
}

func firstError(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

func literalVariants(pattern string) []string {
	if len(pattern) < 2 {
		return []string{pattern}
	}
	first, last := pattern[0], pattern[len(pattern)-1]
	inner := pattern[1 : len(pattern)-1]
	switch {
	case first == '"' && last == '"':
		return []string{pattern, "'" + inner + "'"}
	case first == '\'' && last == '\'':
		return []string{pattern, `"` + inner + `"`}
	}
	return []string{pattern}
}
