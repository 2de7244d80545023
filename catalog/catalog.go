// Package catalog lists every model type of the module by name, so that
// tools can parse and describe payloads whose type is chosen at run time.
package catalog

import (
	"sort"
	"strings"

	authlete "github.com/authlete/authlete-go-model"
	"github.com/authlete/authlete-go-model/model"
	"github.com/authlete/authlete-go-model/request"
	"github.com/authlete/authlete-go-model/response"
)

// Type describes one model type.
type Type struct {
	// Name is the API type name, e.g. "Service" or "SnsCredentials".
	Name   string
	Schema *model.Schema
	// Parse builds an instance from an object tree. It returns nil for nil
	// and non-object input.
	Parse model.ParseFunc
}

// New returns an instance built from seed.
func (t Type) New(seed map[string]any) model.Model {
	if seed == nil {
		seed = map[string]any{}
	}
	return t.Parse(seed)
}

var (
	types  []Type
	byName map[string]Type
)

func register(parse model.ParseFunc) {
	m := parse(map[string]any{})
	if m == nil {
		panic("catalog: parse function rejected an empty object")
	}
	s := m.Schema()
	t := Type{Name: s.Name(), Schema: s, Parse: parse}
	key := lookupKey(t.Name)
	if _, dup := byName[key]; dup {
		panic("catalog: duplicate type name " + t.Name)
	}
	byName[key] = t
	types = append(types, t)
}

func init() {
	byName = make(map[string]Type)
	register(model.ParseFactory(authlete.ParsePair))
	register(model.ParseFactory(authlete.ParseTaggedValue))
	register(model.ParseFactory(authlete.ParseNamedURI))
	register(model.ParseFactory(authlete.ParseSNSCredentials))
	register(model.ParseFactory(authlete.ParseScope))
	register(model.ParseFactory(authlete.ParseClientExtension))
	register(model.ParseFactory(authlete.ParseClient))
	register(model.ParseFactory(authlete.ParseService))
	register(model.ParseFactory(request.ParseClientAuthorizationGetListRequest))
	register(model.ParseFactory(request.ParseDeveloperAuthenticationCallbackRequest))
	register(model.ParseFactory(response.ParseDeveloperAuthenticationCallbackResponse))
	register(model.ParseFactory(response.ParseServiceListResponse))
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
}

// lookupKey folds both naming conventions and case: "ServiceListResponse",
// "serviceListResponse" and "service_list_response" share a key.
func lookupKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}

// Lookup finds a type by name in either naming convention, ignoring case.
func Lookup(name string) (Type, bool) {
	t, ok := byName[lookupKey(name)]
	return t, ok
}

// Types returns every registered type sorted by name.
func Types() []Type {
	return append([]Type(nil), types...)
}

// Names returns the sorted type names.
func Names() []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name
	}
	return out
}
