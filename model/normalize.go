package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalizer resolves input keys, in either naming convention, to canonical
// attribute names. Its tables are computed once by NewSchema.
type Normalizer struct {
	canonical map[string]struct{}
	aliases   map[string]string
}

func newNormalizer(s *Schema) *Normalizer {
	n := &Normalizer{
		canonical: make(map[string]struct{}, len(s.attrs)),
		aliases:   make(map[string]string, len(s.attrs)),
	}
	for _, a := range s.attrs {
		n.canonical[a.Name] = struct{}{}
	}
	for _, a := range s.attrs {
		for _, alias := range a.Aliases {
			if _, clash := n.canonical[alias]; clash {
				panic(&SchemaError{Schema: s.name, Attribute: a.Name, Reason: "alias " + alias + " is a canonical name"})
			}
			if owner, clash := n.aliases[alias]; clash {
				panic(&SchemaError{Schema: s.name, Attribute: a.Name, Reason: "alias " + alias + " is also an alias of " + owner})
			}
			n.aliases[alias] = a.Name
		}
	}
	return n
}

// Resolve maps key to its canonical attribute name. An exact canonical match
// wins over the alias table. ok is false for unrecognized keys, which
// callers skip.
func (n *Normalizer) Resolve(key string) (name string, ok bool) {
	if _, ok := n.canonical[key]; ok {
		return key, true
	}
	name, ok = n.aliases[key]
	return name, ok
}

// IsCanonical reports whether key is spelled exactly as a canonical name.
func (n *Normalizer) IsCanonical(key string) bool {
	_, ok := n.canonical[key]
	return ok
}

// SnakeCase rewrites a camelCase name into snake_case. A word boundary is
// placed before an upper-case letter that follows a lower-case letter or a
// digit, and before the last letter of an acronym run that starts a new
// word: "pkceS256Required" becomes "pkce_s256_required" and "HTTPServer"
// becomes "http_server".
func SnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CamelCase is the inverse of SnakeCase for names without acronym runs.
func CamelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(p)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}
