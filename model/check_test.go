package model

import (
	"errors"
	"strings"
	"testing"
)

func TestCheck_CleanRecord(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"start":    int64(1),
		"scopes":   []any{"openid"},
		"metadata": []any{map[string]any{"key": "k"}},
	})
	if err := r.Check(WithRecursive()); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestCheck_ReportsMismatches(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{
		"start":        "5",
		"pkceRequired": nil,
		"scopes":       []any{"openid", int64(1)},
		"metadata": []any{
			map[string]any{"key": "k", "value": "v"},
			map[string]any{"key": int64(1)},
		},
	})

	err := r.Check()
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MismatchError, got %v", err)
	}
	paths := mismatchPaths(me)
	if want := "start,pkceRequired,scopes"; paths != want {
		t.Fatalf("paths = %s, want %s", paths, want)
	}

	err = r.Check(WithRecursive(), WithIgnore("pkceRequired"))
	if !errors.As(err, &me) {
		t.Fatalf("expected *MismatchError, got %v", err)
	}
	if want := "start,scopes,metadata[1].key"; mismatchPaths(me) != want {
		t.Fatalf("paths = %s, want %s", mismatchPaths(me), want)
	}
	if !strings.HasPrefix(err.Error(), "model: List: start: want integer, have string") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCheck_NestedArrayNotSequence(t *testing.T) {
	r := NewRecord(listSchema, map[string]any{"metadata": map[string]any{"key": "k"}})
	var me *MismatchError
	if !errors.As(r.Check(), &me) || mismatchPaths(me) != "metadata" {
		t.Fatalf("expected metadata mismatch, got %v", r.Check())
	}
}

func mismatchPaths(e *MismatchError) string {
	paths := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		paths[i] = m.Path
	}
	return strings.Join(paths, ",")
}
