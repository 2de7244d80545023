package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeJSONNormalizesNumbers(t *testing.T) {
	got, err := DecodeJSON([]byte(`{"start":5,"ratio":0.5,"big":1e3,"list":[1,"2",null],"nested":{"n":-7}}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	want := map[string]any{
		"start":  int64(5),
		"ratio":  0.5,
		"big":    float64(1000),
		"list":   []any{int64(1), "2", nil},
		"nested": map[string]any{"n": int64(-7)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"a":1} {"b":2}`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
	if _, err := DecodeJSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestDecodeJSONC(t *testing.T) {
	in := []byte(`{
  // the wire name
  "serviceName": "demo", /* inline */
  "supportedScopes": [
    {"name": "openid",},
  ],
}`)
	got, err := DecodeJSONC(in)
	if err != nil {
		t.Fatalf("DecodeJSONC: %v", err)
	}
	want := map[string]any{
		"serviceName":     "demo",
		"supportedScopes": []any{map[string]any{"name": "openid"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeJSONC mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := []byte(`
service_name: demo
access_token_duration: 3600
pkce_required: true
1: numeric-key
scopes:
  - name: openid
  - null
`)
	got, err := DecodeYAML(in)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	want := map[string]any{
		"service_name":          "demo",
		"access_token_duration": int64(3600),
		"pkce_required":         true,
		"1":                     "numeric-key",
		"scopes":                []any{map[string]any{"name": "openid"}, nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeYAML mismatch (-want +got):\n%s", diff)
	}

	out, err := EncodeYAML(got)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	again, err := DecodeYAML(out)
	if err != nil {
		t.Fatalf("DecodeYAML(EncodeYAML): %v", err)
	}
	if diff := cmp.Diff(want, again); diff != "" {
		t.Fatalf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	in := map[string]any{
		"start":   int64(5),
		"end":     int64(-1),
		"ratio":   1.5,
		"subject": "alice",
		"flags":   []any{true, false, nil},
		"nested":  map[string]any{"key": "a", "value": "1"},
	}
	b, err := EncodeCBOR(in)
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	got, err := DecodeCBOR(b)
	if err != nil {
		t.Fatalf("DecodeCBOR: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("CBOR round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCBORIsDeterministic(t *testing.T) {
	a := map[string]any{"b": int64(1), "a": int64(2), "aa": "x"}
	b := map[string]any{"aa": "x", "a": int64(2), "b": int64(1)}
	ea, err := EncodeCBOR(a)
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	for i := 0; i < 10; i++ {
		eb, err := EncodeCBOR(b)
		if err != nil {
			t.Fatalf("EncodeCBOR: %v", err)
		}
		if !bytes.Equal(ea, eb) {
			t.Fatalf("CBOR encoding differs between equal maps:\n%x\n%x", ea, eb)
		}
	}
}

func TestNormalize(t *testing.T) {
	in := map[any]any{
		"a": int(1),
		2:   uint8(3),
		"c": []any{float32(0.5), map[any]any{"d": uint64(7)}},
	}
	want := map[string]any{
		"a": int64(1),
		"2": int64(3),
		"c": []any{float64(0.5), map[string]any{"d": int64(7)}},
	}
	if diff := cmp.Diff(want, Normalize(in)); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"JSONC", JSONC},
		{"yml", YAML},
		{" yaml ", YAML},
		{"cbor", CBOR},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	_, err := ParseFormat("toml")
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Name != "toml" {
		t.Fatalf("ParseFormat(toml) error = %v, want *FormatError", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"service.json", JSON, false},
		{"dir/client.jsonc", JSONC, false},
		{"service.YML", YAML, false},
		{"payload.cbor", CBOR, false},
		{"README", "", true},
		{"notes.txt", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEncodeDecodeEveryFormat(t *testing.T) {
	tree := map[string]any{
		"subject":   "alice",
		"start":     int64(0),
		"end":       int64(10),
		"developer": nil,
		"scopes":    []any{"openid", "profile"},
	}
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			b, err := Encode(f, tree, EncodeOptions{Indent: true})
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(f, b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(tree, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := Encode("xml", nil, EncodeOptions{}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, err := Decode("xml", nil); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
