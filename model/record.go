package model

import (
	"slices"
	"sort"
)

// Model is implemented by every model type. Model types embed Record, which
// provides these methods.
type Model interface {
	Schema() *Schema
	ToObject() map[string]any
}

// recordHolder is satisfied by any type embedding Record.
type recordHolder interface {
	record() *Record
}

// RecordOf returns the attribute store behind m, or nil if m does not embed
// a Record.
func RecordOf(m Model) *Record {
	if h, ok := m.(recordHolder); ok {
		return h.record()
	}
	return nil
}

// Record is the attribute store of one model instance: a value per declared
// attribute, held in schema order. A Record is a plain mutable value; it is
// not safe for concurrent mutation.
//
// Values are stored as given. A value whose Go type does not match its
// declared kind is kept verbatim; the typed getters then return the zero
// value, Raw returns the stored value and Check reports it.
type Record struct {
	schema *Schema
	values []any
}

// NewRecord allocates a record for s, applies the defaults and then seed.
func NewRecord(s *Schema, seed map[string]any) *Record {
	return new(Record).Init(s).Update(seed)
}

func (r *Record) record() *Record {
	return r
}

// Init binds r to s and resets every attribute to its default.
func (r *Record) Init(s *Schema) *Record {
	r.schema = s
	r.values = make([]any, len(s.attrs))
	for i, a := range s.attrs {
		r.values[i] = a.Default
	}
	return r
}

// Schema returns the schema r was initialised with.
func (r *Record) Schema() *Schema {
	return r.schema
}

type seedEntry struct {
	key       string
	pos       int
	canonical bool
	value     any
}

// Update applies every recognized key of seed. Unrecognized keys are
// skipped. When several keys of seed resolve to the same attribute, alias
// spellings are applied first in lexical order and the canonical spelling
// last, so the canonical spelling wins.
func (r *Record) Update(seed map[string]any) *Record {
	if seed == nil || r.schema == nil {
		return r
	}
	norm := r.schema.norm
	entries := make([]seedEntry, 0, len(seed))
	for key, value := range seed {
		name, ok := norm.Resolve(key)
		if !ok {
			continue
		}
		entries = append(entries, seedEntry{
			key:       key,
			pos:       r.schema.index[name],
			canonical: key == name,
			value:     value,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].canonical != entries[j].canonical {
			return !entries[i].canonical
		}
		return entries[i].key < entries[j].key
	})
	for _, e := range entries {
		r.assign(e.pos, e.value)
	}
	return r
}

func (r *Record) assign(pos int, value any) {
	kind := r.schema.attrs[pos].Kind
	switch kind.Class {
	case ClassObject:
		r.values[pos] = kind.Parse(value)
	case ClassObjectArray:
		if value == nil {
			r.values[pos] = nil
			return
		}
		seq, ok := asSequence(value)
		if !ok {
			r.values[pos] = value
			return
		}
		r.values[pos] = MapParse[Model](seq, kind.Parse)
	default:
		r.values[pos] = value
	}
}

// Set stores v under the canonical name without conversion. Nested
// attributes expect a Model, a []Model or nil. Set panics with a
// *SchemaError if name is not declared.
func (r *Record) Set(name string, v any) {
	r.values[r.schema.position(name)] = v
}

// SetTextList stores a string array. A nil slice is stored as nil so that
// the attribute reads as absent.
func (r *Record) SetTextList(name string, v []string) {
	if v == nil {
		r.Set(name, nil)
		return
	}
	r.Set(name, v)
}

// SetModels stores a nested model array, typically built with Upcast. A nil
// slice is stored as nil.
func (r *Record) SetModels(name string, v []Model) {
	if v == nil {
		r.Set(name, nil)
		return
	}
	r.Set(name, v)
}

// Raw returns the stored value of name as is.
func (r *Record) Raw(name string) any {
	return r.values[r.schema.position(name)]
}

// Int returns the integer value of name, or 0 if the stored value is not an
// integral number.
func (r *Record) Int(name string) int64 {
	n, _ := asInt64(r.Raw(name))
	return n
}

// Bool returns the boolean value of name, or false if the stored value is
// not a boolean.
func (r *Record) Bool(name string) bool {
	b, _ := r.Raw(name).(bool)
	return b
}

// Text returns the string value of name, or "" if the stored value is not a
// string.
func (r *Record) Text(name string) string {
	s, _ := r.Raw(name).(string)
	return s
}

// TextList returns the string-array value of name. It returns nil when the
// attribute is absent or holds something other than a list of strings.
func (r *Record) TextList(name string) []string {
	out, _ := asStrings(r.Raw(name))
	return out
}

// Model returns the nested model stored under name, or nil.
func (r *Record) Model(name string) Model {
	m, _ := r.Raw(name).(Model)
	return m
}

// Models returns the nested model array stored under name, or nil.
func (r *Record) Models(name string) []Model {
	ms, _ := r.Raw(name).([]Model)
	return ms
}

// ToObject converts r into a generic object keyed by canonical names. Every
// declared attribute is present: simple values are copied verbatim, nested
// models are converted recursively and absent nested values are nil. String
// arrays are copied, so the result shares no slices with r.
func (r *Record) ToObject() map[string]any {
	if r.schema == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(r.schema.attrs))
	for i, a := range r.schema.attrs {
		v := r.values[i]
		switch {
		case a.Kind.Class == ClassStringArray:
			out[a.Name] = cloneList(v)
		case a.Kind.Simple():
			out[a.Name] = v
		default:
			out[a.Name] = exportNested(v)
		}
	}
	return out
}

// cloneList copies the slice shapes a string array may hold. Other values,
// including mismatched ones, are returned as is.
func cloneList(v any) any {
	switch x := v.(type) {
	case []string:
		return slices.Clone(x)
	case []any:
		return slices.Clone(x)
	}
	return v
}

func exportNested(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Model:
		return x.ToObject()
	case []Model:
		if x == nil {
			return nil
		}
		out := make([]any, len(x))
		for i, m := range x {
			if m != nil {
				out[i] = m.ToObject()
			}
		}
		return out
	default:
		return v
	}
}

// AsObject reports whether v is object-shaped and returns it as a map.
func AsObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}
