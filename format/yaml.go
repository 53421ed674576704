package format

import "gopkg.in/yaml.v3"

// YAML parses .yaml and .yml files with gopkg.in/yaml.v3.
type YAML struct{}

// Parse implements Parser. An empty document decodes to nil; the engine
// treats a nil file root as an empty mapping.
func (YAML) Parse(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Extensions implements Parser.
func (YAML) Extensions() []string { return []string{".yaml", ".yml"} }
