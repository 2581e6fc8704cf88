package rpcconv

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidParameters indicates that params is not a JSON object or array.
var ErrInvalidParameters = errors.New("params is not an array or an object")

// ErrNotRawMessage indicates that an operation expected the internal value to be a [json.RawMessage], but it was not.
var ErrNotRawMessage = errors.New("rpcconv: value is not a raw message")

var errInvalidParamDecode = fmt.Errorf("%w (%w)", ErrDecoding, ErrInvalidParameters)

// Params represent the params member of a [Request].
//
// Params must be a JSON object or array. Decoding enforces this; building a
// request from loosely typed input may forward a malformed value verbatim
// after reporting a warning.
type Params struct {
	value any
}

// NewParamsArray returns a new [Params] holding the slice v.
//
//	params := rpcconv.NewParamsArray([]any{1, "hello", true})
func NewParamsArray[V any, P ~[]V](v P) Params {
	return Params{value: v}
}

// NewParamsObject returns a new [Params] holding the map v.
//
//	params := rpcconv.NewParamsObject(map[string]any{"name": "Alice"})
func NewParamsObject[K comparable, V any, P ~map[K]V](v P) Params {
	return Params{value: v}
}

// NewParamsRaw returns a new [Params] wrapping already encoded JSON.
// No check is made that v is an object or array.
func NewParamsRaw(v json.RawMessage) Params {
	return Params{value: v}
}

// NewParams marshals v and checks that it encodes to a JSON object or array.
//
// A nil v returns the zero [Params], which is omitted from a request. A [Params]
// or [json.RawMessage] is used as is. When v marshals to another JSON type the
// encoded value is still returned together with [ErrInvalidParameters], so a
// caller may forward it anyway.
func NewParams(v any) (Params, error) {
	var raw json.RawMessage

	switch vt := v.(type) {
	case nil:
		return Params{}, nil
	case Params:
		if vt.IsZero() {
			return vt, nil
		}

		raw = vt.RawMessage()
		if raw == nil {
			return vt, nil
		}
	case json.RawMessage:
		raw = vt
	default:
		buf, err := Marshal(v)
		if err != nil {
			return Params{}, fmt.Errorf("%w (%w)", ErrEncoding, err)
		}

		raw = buf
	}

	p := NewParamsRaw(raw)

	if hint := HintType(raw); hint != TypeObject && hint != TypeArray {
		return p, fmt.Errorf("%w: got %T", ErrInvalidParameters, v)
	}

	return p, nil
}

// RawMessage returns the internally stored [json.RawMessage], or nil.
func (p *Params) RawMessage() json.RawMessage {
	if raw, ok := p.value.(json.RawMessage); ok {
		return raw
	}

	return nil
}

// Value returns the raw internal value. May be a raw go type, [json.RawMessage], or nil.
func (p *Params) Value() any {
	return p.value
}

// TypeHint provides a hint for the type of json data contained within the [Params]. See [TypeHint].
//
// Returns [TypeNotJSON] if the underlying type is not a [json.RawMessage].
func (p *Params) TypeHint() TypeHint {
	if m, ok := p.value.(json.RawMessage); ok {
		return HintType(m)
	}

	return TypeNotJSON
}

// Unmarshal decodes the internally stored [json.RawMessage] into v.
//
// If a [json.RawMessage] is not stored internally, it will return [ErrNotRawMessage].
func (p *Params) Unmarshal(v any) error {
	if raw, ok := p.value.(json.RawMessage); ok {
		return Unmarshal(raw, v)
	}

	return ErrNotRawMessage
}

// IsZero is true if the internal value is nil or a [json.RawMessage] of length 0.
func (p *Params) IsZero() bool {
	if p.value == nil {
		return true
	}

	if raw, ok := p.value.(json.RawMessage); ok {
		return len(raw) == 0
	}

	return false
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Only a JSON object or array is accepted.
func (p *Params) UnmarshalJSON(data []byte) error {
	switch HintType(data) {
	case TypeObject, TypeArray:
		var raw json.RawMessage
		if err := Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w (%w)", ErrDecoding, err)
		}

		p.value = raw

		return nil
	default:
		return errInvalidParamDecode
	}
}

// MarshalJSON implements the [json.Marshaler] interface.
func (p *Params) MarshalJSON() ([]byte, error) {
	return Marshal(p.value)
}
