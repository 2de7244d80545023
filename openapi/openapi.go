// Package openapi describes model schemas as OpenAPI 3 component schemas.
//
// Each model type becomes an object schema titled with its API type name.
// Nested attributes reference the element type through
// "#/components/schemas/<Type>", and input aliases are listed under the
// x-aliases extension of each property.
package openapi

import (
	"sort"

	"github.com/authlete/authlete-go-model/catalog"
	"github.com/authlete/authlete-go-model/model"
	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version of documents built by Document.
const Version = "3.0.3"

// AliasesExtension names the property extension listing input aliases.
const AliasesExtension = "x-aliases"

// Ref returns the component reference for the model type name.
func Ref(name string) string {
	return "#/components/schemas/" + name
}

// SchemaFor builds the object schema of s. Properties are named by their
// canonical names and carry the attribute defaults.
func SchemaFor(s *model.Schema) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Title = s.Name()
	for _, a := range s.Attributes() {
		p := propertyFor(a)
		if len(a.Aliases) > 0 {
			p.Extensions = map[string]any{AliasesExtension: a.Aliases}
		}
		out.WithProperty(a.Name, p)
	}
	return out
}

func propertyFor(a model.Attribute) *openapi3.Schema {
	switch a.Kind.Class {
	case model.ClassInteger:
		return openapi3.NewInt64Schema().WithDefault(a.Default)
	case model.ClassBoolean:
		return openapi3.NewBoolSchema().WithDefault(a.Default)
	case model.ClassString:
		return withDefault(openapi3.NewStringSchema().WithNullable(), a.Default)
	case model.ClassStringArray:
		return withDefault(openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()).WithNullable(), a.Default)
	case model.ClassObject:
		return &openapi3.Schema{
			AllOf:    openapi3.SchemaRefs{openapi3.NewSchemaRef(Ref(a.Kind.Elem.Name()), nil)},
			Nullable: true,
		}
	case model.ClassObjectArray:
		arr := openapi3.NewArraySchema().WithNullable()
		arr.Items = openapi3.NewSchemaRef(Ref(a.Kind.Elem.Name()), nil)
		return arr
	}
	return openapi3.NewSchema()
}

// withDefault sets def unless it is nil, the implicit default of nullable
// properties.
func withDefault(s *openapi3.Schema, def any) *openapi3.Schema {
	if def == nil {
		return s
	}
	return s.WithDefault(def)
}

// Components returns the component schemas of the given types and of every
// type they reference. With no arguments every catalog type is included.
func Components(types ...catalog.Type) openapi3.Components {
	if len(types) == 0 {
		types = catalog.Types()
	}
	comps := openapi3.NewComponents()
	comps.Schemas = make(openapi3.Schemas)
	var visit func(*model.Schema)
	visit = func(s *model.Schema) {
		if _, done := comps.Schemas[s.Name()]; done {
			return
		}
		comps.Schemas[s.Name()] = openapi3.NewSchemaRef("", SchemaFor(s))
		for _, a := range s.Attributes() {
			if a.Kind.Elem != nil {
				visit(a.Kind.Elem)
			}
		}
	}
	for _, t := range types {
		visit(t.Schema)
	}
	return comps
}

// Document wraps Components in a minimal OpenAPI document without paths.
func Document(title, version string, types ...catalog.Type) *openapi3.T {
	comps := Components(types...)
	return &openapi3.T{
		OpenAPI:    Version,
		Info:       &openapi3.Info{Title: title, Version: version},
		Paths:      openapi3.NewPaths(),
		Components: &comps,
	}
}

// SchemaNames returns the component names of comps in sorted order.
func SchemaNames(comps openapi3.Components) []string {
	names := make([]string, 0, len(comps.Schemas))
	for name := range comps.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
