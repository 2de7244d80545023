package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a single YAML document and normalizes it. An empty
// document decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("codec: decoding YAML: %w", err)
	}
	return Normalize(v), nil
}

// EncodeYAML encodes an object tree as YAML. Mapping keys are sorted.
func EncodeYAML(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: encoding YAML: %w", err)
	}
	return out, nil
}
