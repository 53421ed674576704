package format

import (
	"bytes"
	"encoding/json"
)

// JSON parses .json files with encoding/json. It is the one parser the
// engine can always rely on.
type JSON struct{}

// Parse decodes data, preserving integers as int64 and other numbers as
// float64.
func (JSON) Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return convertNumbers(doc), nil
}

// Extensions implements Parser.
func (JSON) Extensions() []string { return []string{".json"} }

// convertNumbers rewrites json.Number values into int64 where the literal is
// integral, float64 otherwise, matching the inference the environment layer
// applies to variable values.
func convertNumbers(node any) any {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			v[k] = convertNumbers(child)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = convertNumbers(child)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return node
	}
}
