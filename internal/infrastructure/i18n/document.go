package i18n

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var errNotMapping = errors.New("document is not a mapping")

type decodeFunc func(data []byte) (map[string]any, error)

// decoders maps a lower-cased file extension to its document parser.
// Files with any other extension are not bundle documents.
var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".toml": decodeTOML,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

func decodeJSON(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	// "null" decodes without error.
	if doc == nil {
		return nil, errNotMapping
	}
	return doc, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return normalizeMap(doc), nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return normalizeMap(doc), nil
}

// normalizeMap rewrites nested map[any]any values (YAML mappings with
// non-string keys) and map[string]any subtypes into map[string]any so the
// merge and lookup code only ever sees one mapping type.
func normalizeMap(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMap(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeValue(item)
		}
		return val
	default:
		return v
	}
}
