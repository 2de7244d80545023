package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/authlete/authlete-go-model/codec"
)

// MarshalJSON encodes r as a JSON object whose members follow the declared
// attribute order, using canonical names only. It has a value receiver so
// that model values marshal the same as pointers.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.schema == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range r.schema.attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON applies a JSON object to r with the same lenient rules as
// Update. JSON null leaves r unchanged. r must already be bound to a schema;
// model types do that in their own UnmarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	if r.schema == nil {
		return errors.New("model: UnmarshalJSON on a record without a schema")
	}
	v, err := codec.DecodeJSON(data)
	if err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	obj, ok := AsObject(v)
	if !ok {
		return fmt.Errorf("model: cannot unmarshal JSON %s into %s", describeJSON(v), r.schema.name)
	}
	r.Update(obj)
	return nil
}

func describeJSON(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return "number"
	}
}
