// Package format provides the file format parsers used during configuration
// resolution. Each Parser turns raw file bytes into the generic tree the
// engine merges (nil, bool, numbers, strings, []any, map[string]any), and a
// Registry maps file extensions to parsers.
//
// JSON is always available. The remaining formats are optional capabilities:
// resolving a file whose extension has no registered parser fails with
// ErrUnsupported rather than crashing, so a build or caller may carry a
// restricted Registry.
//
// Supported extensions with the default registry:
//
//   - .json          encoding/json
//   - .jsonc         JSON with comments and trailing commas (tidwall/jsonc)
//   - .yaml, .yml    gopkg.in/yaml.v3
//   - .toml          pelletier/go-toml/v2
package format
