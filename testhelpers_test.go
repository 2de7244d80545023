package authlete

import (
	"encoding/json"
	"testing"

	"github.com/authlete/authlete-go-model/codec"
)

func mustUnmarshalJSON[T any](t *testing.T, b []byte, v *T) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func mustMarshalJSON(t *testing.T, v any) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return out
}

// mustDecodeToMap decodes with the codec so numbers compare as int64.
func mustDecodeToMap(t *testing.T, b []byte) map[string]any {
	t.Helper()
	v, err := codec.DecodeJSON(b)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	return m
}

func mustRoundTripToMap[T any](t *testing.T, in []byte, v *T) map[string]any {
	t.Helper()
	mustUnmarshalJSON(t, in, v)
	return mustDecodeToMap(t, mustMarshalJSON(t, v))
}
