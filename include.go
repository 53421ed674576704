package strata

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/strataconf/strata/format"
)

// IncludeKey is the directive key recognized in parsed documents. A mapping
// whose only key is IncludeKey, with a string value listing paths or globs,
// is replaced by the deep-merged contents of the files it names:
//
//	child:
//	  $include: "base.yaml,conf.d/*.yaml,!conf.d/99-local.yaml"
//
// The detection is structural, over the parsed tree, so the directive works
// identically in every supported format.
const IncludeKey = "$include"

// maxIncludeDepth bounds file-inclusion nesting. A self-including file trips
// the guard instead of recursing forever.
const maxIncludeDepth = 32

type includeResolver struct {
	fs      Filesystem
	formats *format.Registry
}

// loadFile parses one file by extension and resolves any include directives
// inside it, relative to the file's own directory. depth counts file
// nesting, not tree depth.
func (r *includeResolver) loadFile(path string, depth int) (any, error) {
	if depth >= maxIncludeDepth {
		return nil, fmt.Errorf("%w: depth %d reached loading %q", ErrIncludeCycle, depth, path)
	}
	parser, err := r.formats.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, &format.ParseError{Path: path, Err: err}
	}
	if doc == nil {
		// An empty document contributes nothing.
		doc = RawMapping{}
	}
	return r.resolve(normalizeKeys(doc), filepath.Dir(path), depth+1)
}

// resolve rewrites node depth-first, replacing include directives with the
// merged contents of the files they name and leaving everything else intact.
func (r *includeResolver) resolve(node any, baseDir string, depth int) (any, error) {
	switch v := node.(type) {
	case RawMapping:
		if expr, ok := includeExpr(v); ok {
			return r.expand(expr, baseDir, depth)
		}
		out := make(RawMapping, len(v))
		for k, child := range v {
			resolved, err := r.resolve(child, baseDir, depth)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			resolved, err := r.resolve(child, baseDir, depth)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return node, nil
	}
}

// expand loads every file the directive names, in order, and deep-merges the
// results left to right. Zero matched files yield an empty mapping.
func (r *includeResolver) expand(expr, baseDir string, depth int) (any, error) {
	paths, err := r.expandTokens(expr, baseDir)
	if err != nil {
		return nil, err
	}
	var acc any = RawMapping{}
	for _, p := range paths {
		doc, err := r.loadFile(p, depth)
		if err != nil {
			return nil, err
		}
		acc = mergeValue(acc, doc)
	}
	return acc, nil
}

// expandTokens turns a comma-separated include expression into the ordered
// list of concrete paths. Literal paths must exist; glob matches are sorted
// lexicographically within their token; a token prefixed with "!" excludes
// its matches from the final list.
func (r *includeResolver) expandTokens(expr, baseDir string) ([]string, error) {
	var paths []string
	excluded := make(map[string]bool)
	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		negated := strings.HasPrefix(token, "!")
		if negated {
			token = strings.TrimSpace(strings.TrimPrefix(token, "!"))
		}
		p := token
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		if hasGlobMeta(token) {
			matches, err := r.fs.Glob(p)
			if err != nil {
				return nil, fmt.Errorf("expand include glob %q: %w", token, err)
			}
			sort.Strings(matches)
			if negated {
				for _, m := range matches {
					excluded[m] = true
				}
				continue
			}
			paths = append(paths, matches...)
			continue
		}
		if negated {
			excluded[p] = true
			continue
		}
		ok, err := r.fs.Exists(p)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrIncludeNotFound, p)
		}
		paths = append(paths, p)
	}
	if len(excluded) == 0 {
		return paths, nil
	}
	return slices.DeleteFunc(paths, func(p string) bool { return excluded[p] }), nil
}

func includeExpr(m RawMapping) (string, bool) {
	if len(m) != 1 {
		return "", false
	}
	s, ok := m[IncludeKey].(string)
	return s, ok
}

func hasGlobMeta(token string) bool {
	return strings.ContainsAny(token, "*?[{")
}
