package model

import (
	"errors"
	"testing"
)

var pairSchema = NewSchema("Pair",
	String("key"),
	String("value"),
)

type pair struct{ Record }

func parsePair(v any) *pair {
	obj, ok := AsObject(v)
	if !ok {
		return nil
	}
	p := new(pair)
	p.Init(pairSchema).Update(obj)
	return p
}

var extensionSchema = NewSchema("Extension",
	Bool("requestableScopesEnabled"),
	Int("accessTokenDuration"),
)

type extension struct{ Record }

func parseExtension(v any) *extension {
	obj, ok := AsObject(v)
	if !ok {
		return nil
	}
	e := new(extension)
	e.Init(extensionSchema).Update(obj)
	return e
}

var listSchema = NewSchema("List",
	Int("start"),
	String("subject"),
	Bool("pkceRequired"),
	Strings("scopes"),
	String("userInfoEndpoint", Alias("userinfo_endpoint")),
	Object("extension", extensionSchema, ParseFactory(parseExtension)),
	Objects("metadata", pairSchema, ParseFactory(parsePair)),
)

func mustPanicSchemaError(t *testing.T, fn func()) *SchemaError {
	t.Helper()
	var got *SchemaError
	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("expected *SchemaError panic, got %#v", r)
			}
		}()
		fn()
	}()
	return got
}
