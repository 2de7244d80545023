package model

import (
	"fmt"
	"slices"
)

// Attribute declares one attribute of a model type.
type Attribute struct {
	// Name is the canonical wire name. It is the only spelling ever emitted.
	Name string
	Kind Kind
	// Default is the value held before any seed is applied.
	Default any
	// Aliases are the alternate input spellings, in resolution-table order:
	// the snake_case rewrite of Name first, then any irregular aliases.
	Aliases []string

	irregular  []string
	hasDefault bool
}

// AttributeOption customises an attribute declaration.
type AttributeOption func(*Attribute)

// Alias declares irregular input spellings for an attribute, i.e. spellings
// that are not the mechanical snake_case rewrite of its canonical name.
func Alias(names ...string) AttributeOption {
	return func(a *Attribute) { a.irregular = append(a.irregular, names...) }
}

// Default overrides the zero value of the attribute's kind.
func Default(v any) AttributeOption {
	return func(a *Attribute) {
		a.Default = v
		a.hasDefault = true
	}
}

func Int(name string, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassInteger}, opts)
}

func Bool(name string, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassBoolean}, opts)
}

func String(name string, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassString}, opts)
}

func Strings(name string, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassStringArray}, opts)
}

// Object declares an attribute holding a single nested model of type elem.
func Object(name string, elem *Schema, parse ParseFunc, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassObject, Elem: elem, Parse: parse}, opts)
}

// Objects declares an attribute holding an array of nested models of type elem.
func Objects(name string, elem *Schema, parse ParseFunc, opts ...AttributeOption) Attribute {
	return declare(name, Kind{Class: ClassObjectArray, Elem: elem, Parse: parse}, opts)
}

func declare(name string, kind Kind, opts []AttributeOption) Attribute {
	a := Attribute{Name: name, Kind: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(&a)
		}
	}
	if !a.hasDefault {
		a.Default = kind.zero()
	}
	return a
}

// Schema is the static attribute table of one model type. Schemas are built
// once, at package initialisation, and are read-only afterwards; they are
// safe for concurrent use.
type Schema struct {
	name  string
	attrs []Attribute
	index map[string]int
	norm  *Normalizer
}

// NewSchema builds the attribute table for the model type typeName.
// Attributes keep their declaration order, which is also the serialization
// order. NewSchema panics with a *SchemaError if a name is declared twice or
// if an alias is ambiguous.
func NewSchema(typeName string, attrs ...Attribute) *Schema {
	s := &Schema{
		name:  typeName,
		attrs: make([]Attribute, len(attrs)),
		index: make(map[string]int, len(attrs)),
	}
	for i, a := range attrs {
		if a.Name == "" {
			panic(&SchemaError{Schema: typeName, Reason: fmt.Sprintf("attribute %d has no name", i)})
		}
		if a.Kind.Class == ClassObject || a.Kind.Class == ClassObjectArray {
			if a.Kind.Parse == nil {
				panic(&SchemaError{Schema: typeName, Attribute: a.Name, Reason: "nested attribute has no parse function"})
			}
		}
		if _, dup := s.index[a.Name]; dup {
			panic(&SchemaError{Schema: typeName, Attribute: a.Name, Reason: "declared twice"})
		}
		a.Aliases = aliasesFor(a)
		s.index[a.Name] = i
		s.attrs[i] = a
	}
	s.norm = newNormalizer(s)
	return s
}

func aliasesFor(a Attribute) []string {
	var out []string
	add := func(alias string) {
		if alias == "" || alias == a.Name || slices.Contains(out, alias) {
			return
		}
		out = append(out, alias)
	}
	add(SnakeCase(a.Name))
	for _, alias := range a.irregular {
		add(alias)
	}
	return out
}

func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of declared attributes.
func (s *Schema) Len() int {
	return len(s.attrs)
}

// Attributes returns a copy of the attribute table in declaration order.
func (s *Schema) Attributes() []Attribute {
	out := make([]Attribute, len(s.attrs))
	for i, a := range s.attrs {
		a.Aliases = slices.Clone(a.Aliases)
		out[i] = a
	}
	return out
}

// Attribute looks up a declared attribute by canonical name.
func (s *Schema) Attribute(name string) (Attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return Attribute{}, false
	}
	return s.attrs[i], true
}

// Has reports whether name is a declared canonical name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// KindOf returns the declared kind of name. Asking for an undeclared name is
// a programming error and panics with a *SchemaError.
func (s *Schema) KindOf(name string) Kind {
	return s.attrs[s.position(name)].Kind
}

// IsSimple reports whether name is an integer, boolean, string or
// string-array attribute. It panics like KindOf for undeclared names.
func (s *Schema) IsSimple(name string) bool {
	return s.KindOf(name).Simple()
}

// DefaultFor returns the default value of name. It panics like KindOf for
// undeclared names.
func (s *Schema) DefaultFor(name string) any {
	return s.attrs[s.position(name)].Default
}

// Normalizer returns the key normalizer for this schema.
func (s *Schema) Normalizer() *Normalizer {
	return s.norm
}

// Resolve is shorthand for s.Normalizer().Resolve(key).
func (s *Schema) Resolve(key string) (string, bool) {
	return s.norm.Resolve(key)
}

func (s *Schema) position(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(&SchemaError{Schema: s.name, Attribute: name, Reason: "not declared"})
	}
	return i
}

// SchemaError reports a violated schema invariant. It is raised with panic:
// it signals a bug in a schema declaration or in the engine, never bad input.
type SchemaError struct {
	Schema    string
	Attribute string
	Reason    string
}

func (e *SchemaError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("model: schema %s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("model: schema %s: attribute %q: %s", e.Schema, e.Attribute, e.Reason)
}
