package resp

import "strconv"

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// Null is the absent value, written as "$-1\r\n".
	Null Kind = iota
	// Simple is a status string ("+OK").
	Simple
	// Error is an error string ("-ERR ...").
	Error
	// Integer is a signed 64-bit integer (":1").
	Integer
	// Bulk is a length-prefixed byte string.
	Bulk
	// Array is an ordered sequence of values.
	Array
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Simple:
		return "simple"
	case Error:
		return "error"
	case Integer:
		return "integer"
	case Bulk:
		return "bulk"
	case Array:
		return "array"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one protocol element. Only the fields matching Kind are meaningful:
// Str for Simple, Error and Bulk; Int for Integer; Elems for Array.
type Value struct {
	Kind  Kind
	Str   []byte
	Int   int64
	Elems []Value
}

// NullValue returns the Null value.
func NullValue() Value {
	return Value{Kind: Null}
}

// SimpleValue returns a Simple value holding s.
func SimpleValue(s string) Value {
	return Value{Kind: Simple, Str: []byte(s)}
}

// ErrorValue returns an Error value holding msg.
func ErrorValue(msg string) Value {
	return Value{Kind: Error, Str: []byte(msg)}
}

// IntegerValue returns an Integer value.
func IntegerValue(n int64) Value {
	return Value{Kind: Integer, Int: n}
}

// BulkValue returns a Bulk value holding b. A nil b is still a Bulk, not Null.
func BulkValue(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{Kind: Bulk, Str: b}
}

// ArrayValue returns an Array value holding elems.
func ArrayValue(elems ...Value) Value {
	return Value{Kind: Array, Elems: elems}
}

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool {
	return v.Kind == Null
}

// Text returns the payload of a Simple, Error or Bulk value as a string,
// the decimal form of an Integer, and "" for Null and Array.
func (v Value) Text() string {
	switch v.Kind {
	case Simple, Error, Bulk:
		return string(v.Str)
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case Null, Array:
		return ""
	default:
		return ""
	}
}
