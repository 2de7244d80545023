package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/authlete/authlete-go-model/codec"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"authlete-model"}, args...))
	return stdout.String(), err
}

func TestConvert_CanonicalJSON(t *testing.T) {
	out, err := run(t, `{"name":"openid","default_entry":true,"unknown":1}`,
		"convert", "--type", "scope", "--canonical")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := `{"attributes":null,"defaultEntry":true,"description":null,"descriptions":null,"name":"openid"}` + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n got %s\nwant %s", out, want)
	}
}

func TestConvert_FileToYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.yaml")
	if err := os.WriteFile(path, []byte("key: a\nvalue: b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "", "convert", "--type", "Pair", "--to", "yml", path)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	tree, err := codec.DecodeYAML([]byte(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]any{"key": "a", "value": "b"}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown type", `{}`, []string{"convert", "--type", "Nope"}, `unknown model type "Nope"`},
		{"not an object", `[1,2]`, []string{"convert", "--type", "Pair"}, "input is not an object"},
		{"bad format", `{}`, []string{"convert", "--type", "Pair", "--to", "xml"}, `unknown format "xml"`},
		{"bad json", `{`, []string{"convert", "--type", "Pair"}, "codec:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, `{"clientId":1,"clientName":"demo"}`, "check", "--type", "Client")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "ok\n" {
		t.Fatalf("unexpected output %q", out)
	}

	_, err = run(t, `{"client_id":"x"}`, "check", "--type", "Client")
	if err == nil || !strings.Contains(err.Error(), "clientId: want integer, have string") {
		t.Fatalf("expected a mismatch error, got %v", err)
	}
}

func TestCheck_Recursive(t *testing.T) {
	input := `{"supported_scopes":[{"name":"openid","default_entry":"yes"}]}`
	if _, err := run(t, input, "check", "--type", "Service"); err != nil {
		t.Fatalf("shallow check: %v", err)
	}
	_, err := run(t, input, "check", "--type", "Service", "--recursive")
	if err == nil || !strings.Contains(err.Error(), "supportedScopes[0].defaultEntry") {
		t.Fatalf("expected a nested mismatch, got %v", err)
	}
}

func TestDescribe_JSON(t *testing.T) {
	out, err := run(t, "", "describe", "--type", "Pair", "--format", "json")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	tree, err := codec.DecodeJSON([]byte(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	doc := tree.(map[string]any)
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version %v", doc["openapi"])
	}
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	if len(schemas) != 1 || schemas["Pair"] == nil {
		t.Fatalf("unexpected schemas %v", schemas)
	}
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 types, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Client\t") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	found := false
	for _, l := range lines {
		if l == "Pair\t2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Pair not listed:\n%s", out)
	}
}

func TestLogLevel_Invalid(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "types")
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Fatalf("expected log level error, got %v", err)
	}
}
