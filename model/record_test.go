package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRecord_NilSeedAppliesDefaults(t *testing.T) {
	r := NewRecord(listSchema, nil)
	for _, a := range listSchema.Attributes() {
		got := r.Raw(a.Name)
		if diff := cmp.Diff(listSchema.DefaultFor(a.Name), got); diff != "" {
			t.Fatalf("%s default mismatch (-want +got):\n%s", a.Name, diff)
		}
	}
	if r.Int("start") != 0 || r.Bool("pkceRequired") || r.Text("subject") != "" {
		t.Fatalf("unexpected typed defaults: %#v", r.ToObject())
	}
}

func TestToObject_EmitsEveryAttribute(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{"subject": "alice"})
	obj := r.ToObject()
	if len(obj) != listSchema.Len() {
		t.Fatalf("expected %d keys, got %d: %#v", listSchema.Len(), len(obj), obj)
	}
	for _, a := range listSchema.Attributes() {
		if _, ok := obj[a.Name]; !ok {
			t.Fatalf("missing key %q in %#v", a.Name, obj)
		}
	}
	if obj["extension"] != nil || obj["metadata"] != nil {
		t.Fatalf("expected absent nested attributes to be nil, got %#v", obj)
	}
}

func TestToObject_StringArraysAreCopied(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"decoded", []any{"openid", "email"}},
		{"typed", []string{"openid", "email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord(listSchema, map[string]any{"scopes": tt.value})
			obj := r.ToObject()
			switch x := obj["scopes"].(type) {
			case []any:
				x[0] = "changed"
			case []string:
				x[0] = "changed"
			default:
				t.Fatalf("unexpected scopes shape %T", obj["scopes"])
			}
			if diff := cmp.Diff([]string{"openid", "email"}, r.TextList("scopes")); diff != "" {
				t.Fatalf("record changed through ToObject (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdate_AliasEquivalence(t *testing.T) {
	tests := []struct {
		key  string
		attr string
		val  any
	}{
		{"pkceRequired", "pkceRequired", true},
		{"pkce_required", "pkceRequired", true},
		{"userInfoEndpoint", "userInfoEndpoint", "https://as.example.com/userinfo"},
		{"user_info_endpoint", "userInfoEndpoint", "https://as.example.com/userinfo"},
		{"userinfo_endpoint", "userInfoEndpoint", "https://as.example.com/userinfo"},
	}
	for _, tt := range tests {
		r := NewRecord(listSchema, map[string]any{tt.key: tt.val})
		if got := r.Raw(tt.attr); got != tt.val {
			t.Fatalf("%s: %s = %#v, want %#v", tt.key, tt.attr, got, tt.val)
		}
	}
}

func TestUpdate_IgnoresUnknownKeys(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{"unknownKey": int64(1), "start": int64(2)})
	if r.Int("start") != 2 {
		t.Fatalf("start = %d, want 2", r.Int("start"))
	}
	if _, ok := r.ToObject()["unknownKey"]; ok {
		t.Fatalf("unknown key leaked into output")
	}
}

func TestUpdate_DuplicateKeysCanonicalWins(t *testing.T) {
	for i := 0; i < 20; i++ {
		r := NewRecord(listSchema, map[string]any{
			"pkce_required":      false,
			"pkceRequired":       true,
			"user_info_endpoint": "a",
			"userinfo_endpoint":  "b",
		})
		if !r.Bool("pkceRequired") {
			t.Fatalf("expected canonical spelling to win")
		}
		if got := r.Text("userInfoEndpoint"); got != "b" {
			t.Fatalf("userInfoEndpoint = %q, want the lexically greatest alias", got)
		}
	}
}

func TestUpdate_StoresMismatchedValuesAsGiven(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"start":    "5",
		"scopes":   "openid",
		"metadata": "oops",
	})
	if r.Int("start") != 0 || r.Raw("start") != "5" {
		t.Fatalf("start: Int=%d Raw=%#v", r.Int("start"), r.Raw("start"))
	}
	if r.TextList("scopes") != nil || r.Raw("scopes") != "openid" {
		t.Fatalf("scopes: TextList=%#v Raw=%#v", r.TextList("scopes"), r.Raw("scopes"))
	}
	if r.Models("metadata") != nil || r.Raw("metadata") != "oops" {
		t.Fatalf("metadata: Models=%#v Raw=%#v", r.Models("metadata"), r.Raw("metadata"))
	}
}

func TestUpdate_NestedObject(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"extension": map[string]any{"access_token_duration": int64(600)},
	})
	ext, ok := r.Model("extension").(*extension)
	if !ok {
		t.Fatalf("extension = %#v, want *extension", r.Raw("extension"))
	}
	if ext.Int("accessTokenDuration") != 600 {
		t.Fatalf("accessTokenDuration = %d, want 600", ext.Int("accessTokenDuration"))
	}

	r.Update(map[string]any{"extension": int64(5)})
	if r.Raw("extension") != nil {
		t.Fatalf("expected non-object extension to parse as nil, got %#v", r.Raw("extension"))
	}
}

func TestUpdate_NestedArrayShapes(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"metadata": []map[string]any{{"key": "a"}, nil},
	})
	ms := r.Models("metadata")
	if len(ms) != 2 || ms[0] == nil || ms[1] != nil {
		t.Fatalf("metadata = %#v", ms)
	}

	r.Update(map[string]any{"metadata": []any{}})
	if ms := r.Models("metadata"); ms == nil || len(ms) != 0 {
		t.Fatalf("expected present but empty metadata, got %#v", ms)
	}

	r.Update(map[string]any{"metadata": nil})
	if r.Raw("metadata") != nil {
		t.Fatalf("expected nil metadata, got %#v", r.Raw("metadata"))
	}
}

func TestRecord_Idempotence(t *testing.T) {
	seed := map[string]any{
		"start":            int64(3),
		"subject":          "alice",
		"pkceRequired":     true,
		"scopes":           []any{"openid", "email"},
		"userInfoEndpoint": "https://as.example.com/userinfo",
		"extension":        map[string]any{"requestableScopesEnabled": true, "accessTokenDuration": int64(60)},
		"metadata":         []any{map[string]any{"key": "k", "value": "v"}, nil},
	}
	first := NewRecord(listSchema, seed).ToObject()
	second := NewRecord(listSchema, first).ToObject()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestRecord_StartSubjectScenario(t *testing.T) {
	s := NewSchema("Request", Int("start"), String("subject"))
	r := NewRecord(s, map[string]any{"start": int64(5), "extra": "x"})

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"start":5,"subject":null}`; string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}

func TestRecord_MetadataScenario(t *testing.T) {
	s := NewSchema("Holder", Objects("metadata", pairSchema, ParseFactory(parsePair)))
	r := new(Record).Init(s)
	in := []byte(`{"metadata":[{"key":"a","value":"1"},null]}`)
	if err := json.Unmarshal(in, r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("got %s, want %s", out, in)
	}

	want := map[string]any{
		"metadata": []any{map[string]any{"key": "a", "value": "1"}, nil},
	}
	if diff := cmp.Diff(want, r.ToObject()); diff != "" {
		t.Fatalf("ToObject mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_MarshalJSONFollowsSchemaOrder(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"metadata": []any{map[string]any{"value": "v", "key": "k"}},
		"subject":  "s",
	})
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"start":0,"subject":"s","pkceRequired":false,"scopes":null,"userInfoEndpoint":null,"extension":null,"metadata":[{"key":"k","value":"v"}]}`
	if string(out) != want {
		t.Fatalf("got  %s\nwant %s", out, want)
	}
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	r := new(Record).Init(listSchema)
	if err := json.Unmarshal([]byte(`{"start":7,"user_info_endpoint":"u","ratio":1.5}`), r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Int("start") != 7 || r.Text("userInfoEndpoint") != "u" {
		t.Fatalf("unexpected record: %#v", r.ToObject())
	}
	if err := json.Unmarshal([]byte(`null`), r); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if r.Int("start") != 7 {
		t.Fatalf("null must leave the record unchanged")
	}
	if err := json.Unmarshal([]byte(`[1,2]`), r); err == nil {
		t.Fatalf("expected error for array input")
	}
	if err := json.Unmarshal([]byte(`{}`), new(Record)); err == nil {
		t.Fatalf("expected error for record without schema")
	}
}

func TestRecord_SetAndInit(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{"start": int64(9)})
	r.Set("subject", "bob")
	if r.Text("subject") != "bob" {
		t.Fatalf("subject = %q", r.Text("subject"))
	}
	r.Init(listSchema)
	if r.Int("start") != 0 || r.Raw("subject") != nil {
		t.Fatalf("Init must reset to defaults, got %#v", r.ToObject())
	}
	mustPanicSchemaError(t, func() { r.Set("nope", 1) })
}

func TestRecordOf(t *testing.T) {
	p := parsePair(map[string]any{"key": "k"})
	if RecordOf(p) != &p.Record {
		t.Fatalf("RecordOf must return the embedded record")
	}
	if RecordOf(nil) != nil {
		t.Fatalf("RecordOf(nil) must be nil")
	}
}
