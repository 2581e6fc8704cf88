package rpcconv

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrEmptyData = errors.New("rpcconv: data is empty")

// Data generically wraps arbitrary data but always unmarshals into [json.RawMessage] internally.
//
// If a [json.RawMessage] is stored internally, it is directly used for marshaling.
// A Data that was set, even to nil, marshals; the zero value is omitted by
// `omitzero` fields.
type Data struct {
	value   any
	present bool
}

// RawMessage returns [json.RawMessage] stored internally if present.
func (d *Data) RawMessage() json.RawMessage {
	if raw, ok := d.value.(json.RawMessage); ok {
		return raw
	}

	return nil
}

// Value returns the underlying value as stored when created with a New* function.
func (d *Data) Value() any {
	return d.value
}

// TypeHint provides a hint for the type of JSON held by the [Data]. See [TypeHint].
//
// Returns [TypeNotJSON] if the underlying type is not a [json.RawMessage].
func (d *Data) TypeHint() TypeHint {
	if raw, ok := d.value.(json.RawMessage); ok {
		return HintType(raw)
	}

	return TypeNotJSON
}

// Unmarshal decodes the internal [json.RawMessage] into v.
//
// If nothing is stored, [ErrEmptyData] is returned. If a Go value rather than
// a [json.RawMessage] is stored, [ErrNotRawMessage] is returned.
func (d *Data) Unmarshal(v any) error {
	switch vt := d.value.(type) {
	case json.RawMessage:
		return Unmarshal(vt, v)
	case nil:
		return ErrEmptyData
	}

	return ErrNotRawMessage
}

// IsZero returns true if the Data was never set or holds a zero length [json.RawMessage].
func (d *Data) IsZero() bool {
	if !d.present {
		return true
	}

	if raw, ok := d.value.(json.RawMessage); ok {
		return len(raw) == 0
	}

	return false
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (d *Data) UnmarshalJSON(data []byte) error {
	var raw json.RawMessage
	if err := raw.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	d.value = raw
	d.present = true

	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
func (d *Data) MarshalJSON() ([]byte, error) {
	if d.value == nil {
		return nullValue, nil
	}

	return Marshal(d.value)
}
