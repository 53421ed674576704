package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned when no parser is registered for a file's
// extension.
var ErrUnsupported = errors.New("no parser registered for format")

// Parser decodes one configuration file format into the generic tree
// representation.
type Parser interface {
	// Parse decodes data. Mappings must come back as map[string]any and
	// sequences as []any so the resolution engine can merge them.
	Parse(data []byte) (any, error)
	// Extensions lists the file suffixes this parser claims, including the
	// leading dot, lower-case.
	Extensions() []string
}

// ParseError wraps a parser failure with the offending file path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Registry maps file extensions to parsers.
type Registry struct {
	bySuffix map[string]Parser
}

// NewRegistry returns a registry holding the given parsers. Later parsers
// win when extensions collide.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{bySuffix: make(map[string]Parser)}
	for _, p := range parsers {
		r.Register(p)
	}
	return r
}

// Default returns a registry with every built-in parser registered.
func Default() *Registry {
	return NewRegistry(JSON{}, JSONC{}, YAML{}, TOML{})
}

// Register adds a parser for each extension it claims.
func (r *Registry) Register(p Parser) {
	for _, ext := range p.Extensions() {
		r.bySuffix[ext] = p
	}
}

// ForPath selects the parser for a file by its extension. Matching is
// case-insensitive on the extension.
func (r *Registry) ForPath(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := r.bySuffix[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return p, nil
}
