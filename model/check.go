package model

import (
	"fmt"
	"strings"
)

type checkOptions struct {
	recursive bool
	ignore    map[string]struct{}
}

// CheckOption configures Record.Check.
type CheckOption func(*checkOptions)

// WithRecursive also checks the attributes of nested models.
func WithRecursive() CheckOption {
	return func(o *checkOptions) { o.recursive = true }
}

// WithIgnore skips the named attributes. Names are canonical and apply at
// every nesting level.
func WithIgnore(names ...string) CheckOption {
	return func(o *checkOptions) {
		if o.ignore == nil {
			o.ignore = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			o.ignore[n] = struct{}{}
		}
	}
}

// Mismatch is one attribute whose stored value does not match its kind.
type Mismatch struct {
	// Path locates the attribute, e.g. "supportedScopes[0].attributes[1].key".
	Path  string
	Kind  Kind
	Value any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %s, have %T", m.Path, m.Kind, m.Value)
}

// MismatchError lists every mismatch found by Check.
type MismatchError struct {
	Schema     string
	Mismatches []Mismatch
}

func (e *MismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return "model: " + e.Schema + ": " + strings.Join(parts, "; ")
}

// Check reports the attributes whose stored value does not match the
// declared kind. It never modifies r: construction stays lenient and Check
// is how callers opt into strictness. The result is nil or a
// *MismatchError.
func (r *Record) Check(opts ...CheckOption) error {
	var o checkOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if r.schema == nil {
		return nil
	}
	var found []Mismatch
	r.check("", &o, &found)
	if len(found) == 0 {
		return nil
	}
	return &MismatchError{Schema: r.schema.name, Mismatches: found}
}

func (r *Record) check(prefix string, o *checkOptions, found *[]Mismatch) {
	for i, a := range r.schema.attrs {
		if _, skip := o.ignore[a.Name]; skip {
			continue
		}
		path := a.Name
		if prefix != "" {
			path = prefix + "." + a.Name
		}
		v := r.values[i]
		if !conforms(a.Kind, v) {
			*found = append(*found, Mismatch{Path: path, Kind: a.Kind, Value: v})
			continue
		}
		if !o.recursive {
			continue
		}
		switch x := v.(type) {
		case Model:
			checkNested(x, path, o, found)
		case []Model:
			for j, m := range x {
				checkNested(m, fmt.Sprintf("%s[%d]", path, j), o, found)
			}
		}
	}
}

func checkNested(m Model, path string, o *checkOptions, found *[]Mismatch) {
	if m == nil {
		return
	}
	if rec := RecordOf(m); rec != nil && rec.schema != nil {
		rec.check(path, o, found)
	}
}
