package model

import (
	"encoding/json"
	"math"
)

// asInt64 reads the numeric shapes produced by the JSON, YAML and CBOR
// decoders. Strings are never converted.
func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int16:
		return int64(x), true
	case int8:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float32:
		return asInt64(float64(x))
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	}
	return 0, false
}

func asStrings(v any) ([]string, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case []string:
		return x, true
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// conforms reports whether v is a valid value for kind. nil is valid for
// every kind except integer and boolean.
func conforms(kind Kind, v any) bool {
	switch kind.Class {
	case ClassInteger:
		_, ok := asInt64(v)
		return ok
	case ClassBoolean:
		_, ok := v.(bool)
		return ok
	case ClassString:
		if v == nil {
			return true
		}
		_, ok := v.(string)
		return ok
	case ClassStringArray:
		_, ok := asStrings(v)
		return ok
	case ClassObject:
		if v == nil {
			return true
		}
		_, ok := v.(Model)
		return ok
	case ClassObjectArray:
		if v == nil {
			return true
		}
		_, ok := v.([]Model)
		return ok
	}
	return false
}
