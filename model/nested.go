package model

// MapParse applies parseOne to every element of seq. A nil seq yields nil,
// which keeps "absent" distinct from "present but empty". Otherwise the
// result has the same length and order as seq; parseOne is expected to map
// nil and malformed elements to nil so that one bad element does not affect
// its siblings.
func MapParse[T any](seq []any, parseOne func(any) T) []T {
	if seq == nil {
		return nil
	}
	out := make([]T, len(seq))
	for i, v := range seq {
		out[i] = parseOne(v)
	}
	return out
}

// ParseFactory adapts a typed parse function, such as authlete.ParsePair,
// into a ParseFunc. A nil result is returned as an untyped nil Model.
func ParseFactory[T any, PT interface {
	*T
	Model
}](parse func(any) PT) ParseFunc {
	return func(v any) Model {
		p := parse(v)
		if p == nil {
			return nil
		}
		return p
	}
}

// Box converts a typed model pointer into a Model, mapping nil to an
// untyped nil.
func Box[T any, PT interface {
	*T
	Model
}](v PT) Model {
	if v == nil {
		return nil
	}
	return v
}

// Upcast converts a typed model slice for storage with Record.Set. Nil
// elements become untyped nil and a nil slice stays nil.
func Upcast[T any, PT interface {
	*T
	Model
}](in []PT) []Model {
	if in == nil {
		return nil
	}
	out := make([]Model, len(in))
	for i, v := range in {
		out[i] = Box(v)
	}
	return out
}

// Cast converts a stored model slice back to its typed form. Elements of
// another type become nil.
func Cast[T any, PT interface {
	*T
	Model
}](in []Model) []PT {
	if in == nil {
		return nil
	}
	out := make([]PT, len(in))
	for i, v := range in {
		out[i], _ = v.(PT)
	}
	return out
}

// asSequence accepts the sequence shapes produced by the codecs and by Go
// callers building seeds by hand.
func asSequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []map[string]any:
		if x == nil {
			return nil, true
		}
		out := make([]any, len(x))
		for i, m := range x {
			if m != nil {
				out[i] = m
			}
		}
		return out, true
	}
	return nil, false
}
