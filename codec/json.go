package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// DecodeJSON decodes a single JSON value and normalizes it. Trailing data
// after the value is an error.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("codec: decoding JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, errors.New("codec: decoding JSON: trailing data")
		}
		return nil, fmt.Errorf("codec: decoding JSON: %w", err)
	}
	return Normalize(v), nil
}

// DecodeJSONC strips comments and trailing commas from data, then decodes it
// as JSON.
func DecodeJSONC(data []byte) (any, error) {
	return DecodeJSON(jsonc.ToJSON(data))
}

// EncodeJSON encodes v as JSON. Model types keep their declared attribute
// order because they implement json.Marshaler.
func EncodeJSON(v any, indent bool) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: encoding JSON: %w", err)
	}
	return out, nil
}
