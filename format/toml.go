package format

import "github.com/pelletier/go-toml/v2"

// TOML parses .toml files with pelletier/go-toml/v2. A TOML document root is
// always a table, so the root shape check never fails for this format.
type TOML struct{}

// Parse implements Parser.
func (TOML) Parse(data []byte) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Extensions implements Parser.
func (TOML) Extensions() []string { return []string{".toml"} }
