package rpcconv

import (
	"bytes"
	"encoding/json"
)

// TypeHint classifies the likely top-level JSON type of a [json.RawMessage]
// from its first non-whitespace character.
//
// Note: This is only a hint and does not guarantee the [json.RawMessage] contains
// valid JSON of that type.
type TypeHint int

const (
	TypeUnknown TypeHint = iota // First character does not start any JSON value.
	TypeArray                   // Starts with '['.
	TypeObject                  // Starts with '{'.
	TypeBool                    // Starts with 't' or 'f'.
	TypeNumber                  // Starts with '-' or a digit.
	TypeString                  // Starts with '"'.
	TypeNull                    // Starts with 'n'.

	// TypeEmpty is returned when the message is empty after trimming whitespace.
	TypeEmpty
	// TypeNotJSON is returned by [Data] and [Params] when they hold a Go value
	// rather than a [json.RawMessage].
	TypeNotJSON
)

var typeHintNames = [...]string{
	TypeUnknown: "unknown",
	TypeArray:   "array",
	TypeObject:  "object",
	TypeBool:    "bool",
	TypeNumber:  "number",
	TypeString:  "string",
	TypeNull:    "null",
	TypeEmpty:   "empty",
	TypeNotJSON: "not json",
}

// String returns a lower case name for the hint.
func (t TypeHint) String() string {
	if t < 0 || int(t) >= len(typeHintNames) {
		return "unknown"
	}

	return typeHintNames[t]
}

// HintType examines the first non-whitespace byte of m.
// It returns [TypeEmpty] if m is empty after trimming whitespace and
// [TypeUnknown] if the first character doesn't start a JSON value.
func HintType(m json.RawMessage) TypeHint {
	m = bytes.TrimSpace(m)

	if len(m) == 0 {
		return TypeEmpty
	}

	switch m[0] {
	case '[':
		return TypeArray
	case '{':
		return TypeObject
	case 't', 'f':
		return TypeBool
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return TypeNumber
	case '"':
		return TypeString
	case 'n':
		return TypeNull
	}

	return TypeUnknown
}
