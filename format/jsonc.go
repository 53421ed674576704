package format

import "github.com/tidwall/jsonc"

// JSONC parses .jsonc files: JSON extended with comments and trailing
// commas. The input is translated to plain JSON and handed to the JSON
// parser, so value semantics are identical.
type JSONC struct{}

// Parse implements Parser.
func (JSONC) Parse(data []byte) (any, error) {
	return JSON{}.Parse(jsonc.ToJSON(data))
}

// Extensions implements Parser.
func (JSONC) Extensions() []string { return []string{".jsonc"} }
