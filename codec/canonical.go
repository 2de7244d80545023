package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as an IEEE-754 double.
const maxExactInt = 1 << 53

// objecter is implemented by model types.
type objecter interface {
	ToObject() map[string]any
}

// Canonical returns the RFC 8785 (JCS) encoding of v: object members sorted
// by UTF-16 code units, compact output, ECMAScript number formatting.
//
// v is usually an object tree. Models are converted with ToObject, a
// json.RawMessage is decoded first, byte strings become base64 strings as
// in encoding/json, and any other value goes through encoding/json.
func Canonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, fmt.Errorf("codec: canonical JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		writeCanonicalString(buf, x)
	case int64:
		if x > -maxExactInt && x < maxExactInt {
			buf.WriteString(strconv.FormatInt(x, 10))
			return nil
		}
		return writeCanonicalFloat(buf, float64(x))
	case float64:
		return writeCanonicalFloat(buf, x)
	case json.Number:
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return err
		}
		return writeCanonicalFloat(buf, f)
	case []string:
		buf.WriteByte('[')
		for i, s := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonicalString(buf, s)
		}
		buf.WriteByte(']')
	case []any:
		buf.WriteByte('[')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		return writeCanonicalObject(buf, x)
	case objecter:
		return writeCanonicalObject(buf, x.ToObject())
	case json.RawMessage:
		return writeCanonicalRaw(buf, x)
	case []byte:
		writeCanonicalString(buf, base64.StdEncoding.EncodeToString(x))
	case int, int8, int16, int32, uint, uint8, uint16, uint32, uint64, float32, map[any]any:
		return writeCanonical(buf, Normalize(x))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return writeCanonicalRaw(buf, b)
	}
	return nil
}

func writeCanonicalRaw(buf *bytes.Buffer, b []byte) error {
	tree, err := DecodeJSON(b)
	if err != nil {
		return err
	}
	return writeCanonical(buf, tree)
}

func writeCanonicalObject(buf *bytes.Buffer, m map[string]any) error {
	type member struct {
		name  string
		units []uint16
	}
	members := make([]member, 0, len(m))
	for k := range m {
		members = append(members, member{name: k, units: utf16.Encode([]rune(k))})
	}
	sort.Slice(members, func(i, j int) bool {
		return lessUTF16(members[i].units, members[j].units)
	})
	buf.WriteByte('{')
	for i, e := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeCanonicalString(buf, e.name)
		buf.WriteByte(':')
		if err := writeCanonical(buf, m[e.name]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func lessUTF16(a, b []uint16) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func writeCanonicalString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '"':
			buf.WriteString(`\"`)
		case '\b':
			buf.WriteString(`\b`)
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\f':
			buf.WriteString(`\f`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if r <= 0x1F {
				buf.WriteString(`\u00`)
				buf.WriteString(hex.EncodeToString([]byte{byte(r)}))
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

func writeCanonicalFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New("NaN and Infinity are not JSON numbers")
	}
	if f == 0 {
		buf.WriteByte('0')
		return nil
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		buf.WriteString(trimExponent(strconv.FormatFloat(f, 'e', -1, 64)))
		return nil
	}
	buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// trimExponent rewrites Go's zero-padded exponent ("1e-07") into the
// ECMAScript form ("1e-7").
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i+2] + exp
}
