package strata

import (
	"os"
	"strings"
)

// RawMapping is the schema-agnostic tree every layer produces and the merge
// operates on. Values are restricted to nil, bool, int/int64, float64,
// string, []any and nested RawMapping. Keys are lower-cased.
type RawMapping = map[string]any

// DefaultSeparator splits environment variable names into path segments.
const DefaultSeparator = "__"

// Options configures a single resolution pass. The zero value resolves to an
// empty mapping: no file, no environment overrides.
type Options struct {
	// Path is an explicitly requested configuration file. When set it takes
	// priority over PathEnvVar and DefaultPath and must exist.
	Path string
	// PathEnvVar names an environment variable that, when set, overrides
	// DefaultPath entirely. A file named this way must exist.
	PathEnvVar string
	// DefaultPath is consulted last. A missing default file is not an error;
	// the file layer is simply empty.
	DefaultPath string
	// EnvPrefix selects override variables ({PREFIX}{SEP}{SEGMENT}...).
	// Empty disables the environment layer.
	EnvPrefix string
	// EnvSeparator defaults to DefaultSeparator when empty.
	EnvSeparator string
}

// Environ captures the current process environment as a snapshot mapping.
// Pass the result (or a hand-built mapping) to New via WithEnviron for
// hermetic resolution.
func Environ() map[string]string {
	environ := os.Environ()
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		out[k] = v
	}
	return out
}

// normalizeKeys rebuilds the tree with every mapping key lower-cased, so
// file, environment and argument layers address the same nodes regardless of
// the casing a document happened to use.
func normalizeKeys(node any) any {
	switch v := node.(type) {
	case RawMapping:
		out := make(RawMapping, len(v))
		for k, child := range v {
			out[strings.ToLower(k)] = normalizeKeys(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = normalizeKeys(child)
		}
		return out
	default:
		return node
	}
}
