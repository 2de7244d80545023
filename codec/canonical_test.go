package codec

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestCanonicalDeterministicAcrossKeyOrder(t *testing.T) {
	a, err := DecodeJSON([]byte(`{"b":1,"a":{"y":2,"x":1},"arr":[{"b":2,"a":1}]}`))
	if err != nil {
		t.Fatalf("decode a: %v", err)
	}
	b, err := DecodeJSON([]byte(`{"arr":[{"a":1,"b":2}],"a":{"x":1,"y":2},"b":1}`))
	if err != nil {
		t.Fatalf("decode b: %v", err)
	}
	ca, err := Canonical(a)
	if err != nil {
		t.Fatalf("canonical a: %v", err)
	}
	cb, err := Canonical(b)
	if err != nil {
		t.Fatalf("canonical b: %v", err)
	}
	if !bytes.Equal(ca, cb) {
		t.Fatalf("expected identical canonical JSON\nA: %s\nB: %s", ca, cb)
	}
	if want := `{"a":{"x":1,"y":2},"arr":[{"a":1,"b":2}],"b":1}`; string(ca) != want {
		t.Fatalf("Canonical = %s, want %s", ca, want)
	}
}

func TestCanonicalEscapes(t *testing.T) {
	out, err := Canonical(map[string]any{
		"bs":  "\b",
		"tab": "\t",
		"nl":  "\n",
		"ff":  "\f",
		"cr":  "\r",
		"nul": "\x00",
		"esc": "\x1b",
		"q":   `"\`,
		"lt":  "<&>",
	})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	want := `{"bs":"\b","cr":"\r","esc":"\u001b","ff":"\f","lt":"<&>","nl":"\n","nul":"\u0000","q":"\"\\","tab":"\t"}`
	if string(out) != want {
		t.Fatalf("Canonical =\n%s\nwant\n%s", out, want)
	}
}

func TestCanonicalNumbers(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{int64(0), "0"},
		{int64(-42), "-42"},
		{int64(9007199254740993), "9007199254740992"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1e21, "1e+21"},
		{1.5, "1.5"},
		{json.Number("100"), "100"},
		{3, "3"},
	}
	for _, tt := range tests {
		out, err := Canonical(tt.in)
		if err != nil {
			t.Fatalf("Canonical(%v): %v", tt.in, err)
		}
		if string(out) != tt.want {
			t.Fatalf("Canonical(%v) = %s, want %s", tt.in, out, tt.want)
		}
	}
}

func TestCanonicalSortsByUTF16(t *testing.T) {
	// U+1F600 encodes as a surrogate pair starting 0xD83D, which sorts
	// before U+FB01 in UTF-16 even though it is the larger code point.
	out, err := Canonical(map[string]any{"\uFB01": int64(1), "\U0001F600": int64(2)})
	if err != nil {
		t.Fatalf("Canonical: %v", err)
	}
	want := "{\"\U0001F600\":2,\"\uFB01\":1}"
	if string(out) != want {
		t.Fatalf("Canonical = %s, want %s", out, want)
	}
}

func TestCanonicalRejectsNaN(t *testing.T) {
	zero := 0.0
	if _, err := Canonical(map[string]any{"n": zero / zero}); err == nil {
		t.Fatalf("expected error for NaN")
	}
}

func TestCanonicalRawAndStructs(t *testing.T) {
	out, err := Canonical(json.RawMessage(`{"z": [1, 2.50], "a": "x"}`))
	if err != nil {
		t.Fatalf("Canonical(raw): %v", err)
	}
	if want := `{"a":"x","z":[1,2.5]}`; string(out) != want {
		t.Fatalf("Canonical(raw) = %s, want %s", out, want)
	}

	type pair struct {
		Value string `json:"value"`
		Key   string `json:"key"`
	}
	out, err = Canonical([]pair{{Key: "k", Value: "v"}})
	if err != nil {
		t.Fatalf("Canonical(struct): %v", err)
	}
	if want := `[{"key":"k","value":"v"}]`; string(out) != want {
		t.Fatalf("Canonical(struct) = %s, want %s", out, want)
	}
}

func TestCanonicalByteStringsMatchPlainJSON(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  string
	}{
		{"text", []byte("demo"), `{"serviceName":"ZGVtbw=="}`},
		{"json text", []byte(`{"b":1,"a":2}`), `{"serviceName":"eyJiIjoxLCJhIjoyfQ=="}`},
		{"empty", []byte{}, `{"serviceName":""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCBOR(map[string]any{"serviceName": tt.bytes})
			if err != nil {
				t.Fatalf("EncodeCBOR: %v", err)
			}
			tree, err := DecodeCBOR(data)
			if err != nil {
				t.Fatalf("DecodeCBOR: %v", err)
			}

			canonical, err := Encode(JSON, tree, EncodeOptions{Canonical: true})
			if err != nil {
				t.Fatalf("Encode(canonical): %v", err)
			}
			if string(canonical) != tt.want {
				t.Fatalf("canonical = %s, want %s", canonical, tt.want)
			}
			plain, err := Encode(JSON, tree, EncodeOptions{})
			if err != nil {
				t.Fatalf("Encode(plain): %v", err)
			}
			if !bytes.Equal(canonical, plain) {
				t.Fatalf("canonical and plain JSON differ:\n%s\n%s", canonical, plain)
			}
		})
	}
}
