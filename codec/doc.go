// Package codec converts between wire bytes and generic object trees: the
// map[string]any / []any / scalar values that model.Record consumes and
// produces.
//
// Every decoder returns a normalized tree: objects are map[string]any,
// arrays are []any, integral numbers are int64 and other numbers float64.
// The same payload therefore decodes to the same tree whichever of the
// supported formats carried it:
//
//   - JSON, the wire format of the Authlete API
//   - JSONC, JSON with comments and trailing commas, for hand-written files
//   - YAML
//   - CBOR, using Core Deterministic Encoding (RFC 8949 §4.2)
//
// Canonical produces RFC 8785 (JCS) bytes for hashing and golden tests.
package codec
