// Package model is the marshalling engine shared by every Authlete model
// type.
//
// A model type declares its attributes once, in a package-level Schema, and
// embeds a Record that stores one value per attribute:
//
//	var pairSchema = model.NewSchema("Pair",
//	    model.String("key"),
//	    model.String("value"),
//	)
//
//	type Pair struct{ model.Record }
//
//	func NewPair(seed map[string]any) *Pair {
//	    p := new(Pair)
//	    p.Init(pairSchema).Update(seed)
//	    return p
//	}
//
// # Keys
//
// Canonical attribute names are camelCase, as on the wire. Input keys may
// also use the snake_case spelling (access_token_duration) or an irregular
// alias declared with Alias. Output always uses canonical names.
//
// # Lenient Input
//
// Construction never fails. Unrecognized keys are dropped and values whose
// type does not match the declared kind are stored as given. Nested
// attributes are parsed through the element type's parse function, which
// maps nil and non-object values to nil. Record.Check reports mismatches for
// callers that want to be strict.
//
// When an input object spells one attribute several ways, alias spellings
// are applied first in lexical order and the canonical spelling last.
//
// # Concurrency
//
// Schemas are immutable after construction and safe for concurrent use.
// Records are plain values; concurrent mutation requires external
// synchronization.
package model
