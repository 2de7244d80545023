package model

import "fmt"

// Class enumerates the value categories an attribute can declare.
type Class uint8

const (
	ClassInteger Class = iota + 1
	ClassBoolean
	ClassString
	ClassStringArray
	ClassObject
	ClassObjectArray
)

func (c Class) String() string {
	switch c {
	case ClassInteger:
		return "integer"
	case ClassBoolean:
		return "boolean"
	case ClassString:
		return "string"
	case ClassStringArray:
		return "string array"
	case ClassObject:
		return "object"
	case ClassObjectArray:
		return "object array"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// ParseFunc builds a nested model from an arbitrary value. It must return
// nil (not a typed nil pointer) for nil or non-object input and never panic.
type ParseFunc func(any) Model

// Kind is the declared kind of an attribute. Elem and Parse are set only for
// the nested classes and name the model type the attribute holds.
type Kind struct {
	Class Class
	Elem  *Schema
	Parse ParseFunc
}

// Simple reports whether values of this kind are copied verbatim on
// serialization.
func (k Kind) Simple() bool {
	switch k.Class {
	case ClassInteger, ClassBoolean, ClassString, ClassStringArray:
		return true
	}
	return false
}

func (k Kind) String() string {
	switch k.Class {
	case ClassObject:
		return "object(" + k.elemName() + ")"
	case ClassObjectArray:
		return "array(" + k.elemName() + ")"
	}
	return k.Class.String()
}

func (k Kind) elemName() string {
	if k.Elem == nil {
		return "?"
	}
	return k.Elem.Name()
}

// zero returns the value an attribute of this kind holds before any seed is
// applied. Nested containers default to absent, not empty.
func (k Kind) zero() any {
	switch k.Class {
	case ClassInteger:
		return int64(0)
	case ClassBoolean:
		return false
	}
	return nil
}
