package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a wire encoding of the object form.
type Format string

const (
	JSON  Format = "json"
	JSONC Format = "jsonc"
	YAML  Format = "yaml"
	CBOR  Format = "cbor"
)

// Formats lists every supported format.
var Formats = []Format{JSON, JSONC, YAML, CBOR}

// FormatError reports an unknown format name or file extension.
type FormatError struct {
	Name string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("codec: unknown format %q", e.Name)
}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "jsonc":
		return JSONC, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	}
	return "", &FormatError{Name: name}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &FormatError{Name: path}
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", &FormatError{Name: path}
	}
	return f, nil
}

// Decode decodes data in format f into a normalized object tree.
func Decode(f Format, data []byte) (any, error) {
	switch f {
	case JSON:
		return DecodeJSON(data)
	case JSONC:
		return DecodeJSONC(data)
	case YAML:
		return DecodeYAML(data)
	case CBOR:
		return DecodeCBOR(data)
	}
	return nil, &FormatError{Name: string(f)}
}

// EncodeOptions controls Encode.
type EncodeOptions struct {
	// Indent pretty-prints JSON output. It is ignored by the other formats.
	Indent bool
	// Canonical emits RFC 8785 JSON. It applies to JSON and JSONC output and
	// takes precedence over Indent.
	Canonical bool
}

// Encode encodes v in format f. JSONC output is plain JSON.
func Encode(f Format, v any, opts EncodeOptions) ([]byte, error) {
	switch f {
	case JSON, JSONC:
		if opts.Canonical {
			return Canonical(v)
		}
		return EncodeJSON(v, opts.Indent)
	case YAML:
		return EncodeYAML(toTree(v))
	case CBOR:
		return EncodeCBOR(toTree(v))
	}
	return nil, &FormatError{Name: string(f)}
}

// toTree converts a model into its object form so that the YAML and CBOR
// encoders, which do not consult json.Marshaler, see canonical names.
func toTree(v any) any {
	if o, ok := v.(objecter); ok {
		return o.ToObject()
	}
	return v
}
