package rpcconv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrIDNotANumber is returned by [ID.Int64] when the underlying ID value is not
// an int64 or a json.Number representing an integer.
var ErrIDNotANumber = errors.New("rpcconv: id is not a number")

// ID represents a JSON-RPC 2.0 request id.
//
// An id is a string, a number or null. Unmarshalling stores JSON strings as Go
// strings, JSON numbers as [json.Number] and null as nil. Use [NewID] and
// [NewNullID] to build one; the zero value means "no id" and is what
// [Client.Build] replaces with the next automatic id.
//
// An id decoded by [Client.BuildJSON] from a value of any other JSON type is
// kept verbatim so it can still be forwarded to the peer. [ID.IsValid]
// reports false for it.
type ID struct {
	value   any  // string, int64, json.Number, json.RawMessage (malformed) or nil
	present bool // distinguishes null from the zero value
}

// NewID creates a new ID with the given value.
//
//	idInt := rpcconv.NewID(int64(123))
//	idStr := rpcconv.NewID("request-5")
//	idNum := rpcconv.NewID(json.Number("456.7"))
func NewID[V int64 | string | json.Number](v V) ID {
	return ID{present: true, value: v}
}

// NewNullID creates an ID representing the JSON `null` value.
// This is distinct from a zero-value [ID] (where [ID.IsZero] is true).
func NewNullID() ID {
	return ID{present: true}
}

// rawID keeps a malformed id exactly as it was written.
func rawID(raw json.RawMessage) ID {
	return ID{present: true, value: raw}
}

// Equal compares two IDs for equivalence.
//
//   - Zero-value IDs are never equal to any other ID, including another zero-value ID.
//   - Two null IDs are equal.
//   - String IDs compare as strings and never equal a number.
//   - Two [json.Number] IDs compare by their text ("1" != "1.0"); an int64 and a
//     [json.Number] compare numerically when the number is an integer.
//   - Malformed IDs are never equal to anything.
func (id *ID) Equal(t ID) bool {
	if id.IsZero() || t.IsZero() {
		return false
	}

	if id.IsNull() {
		return t.IsNull()
	}

	switch v := id.value.(type) {
	case json.Number:
		if jn, ok := t.Number(); ok {
			return v == jn
		}

		if in, err := t.Int64(); err == nil {
			if vi, err := v.Int64(); err == nil {
				return vi == in
			}
		}
	case int64:
		if in, err := t.Int64(); err == nil {
			return v == in
		}
	case string:
		if s, ok := t.String(); ok {
			return v == s
		}
	}

	return false
}

// IsZero returns true if the ID is the zero value, meaning no id was given.
func (id *ID) IsZero() bool {
	return !id.present
}

// IsNull returns true if the ID represents the JSON `null` value.
func (id *ID) IsNull() bool {
	return id.present && id.value == nil
}

// IsValid returns true for string, number and null IDs.
// It is false for the zero value and for a malformed id kept verbatim.
func (id *ID) IsValid() bool {
	if !id.present {
		return false
	}

	_, malformed := id.value.(json.RawMessage)

	return !malformed
}

// Value returns the underlying Go value of the ID: string, int64,
// [json.Number], [json.RawMessage] for a malformed id, or nil.
func (id *ID) Value() any {
	if !id.present {
		return nil
	}

	return id.value
}

// String returns the ID as a string if it holds one.
func (id *ID) String() (string, bool) {
	if !id.present {
		return "", false
	}

	s, ok := id.value.(string)

	return s, ok
}

// Number returns the ID as a [json.Number] if it was decoded from a JSON number.
// It does *not* convert int64 values.
func (id *ID) Number() (json.Number, bool) {
	if !id.present || id.value == nil {
		return "", false
	}

	num, ok := id.value.(json.Number)

	return num, ok
}

// Int64 returns the ID as an int64. It succeeds for int64 values and for
// [json.Number] values holding an integer in range, otherwise it returns
// [ErrIDNotANumber] or the strconv error from [json.Number.Int64].
func (id *ID) Int64() (int64, error) {
	if !id.present {
		return 0, ErrIDNotANumber
	}

	switch v := id.value.(type) {
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	default:
		return 0, ErrIDNotANumber
	}
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts JSON strings, numbers and null. Other JSON types return an error wrapping [ErrDecoding].
func (id *ID) UnmarshalJSON(data []byte) error {
	switch HintType(data) {
	case TypeNull:
		id.value = nil
	case TypeString:
		var str string
		if err := Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%w (%w)", ErrDecoding, err)
		}

		id.value = str
	case TypeNumber:
		var num json.Number
		if err := Unmarshal(data, &num); err != nil {
			return fmt.Errorf("%w (%w)", ErrDecoding, err)
		}

		id.value = num
	default:
		return fmt.Errorf("%w: invalid type for ID", ErrDecoding)
	}

	id.present = true

	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// Both the zero value and a null ID marshal as `null`.
func (id *ID) MarshalJSON() ([]byte, error) {
	if !id.present || id.value == nil {
		return nullValue, nil
	}

	if raw, ok := id.value.(json.RawMessage); ok {
		return bytes.TrimSpace(raw), nil
	}

	buf, err := Marshal(id.value)
	if err != nil {
		return nil, fmt.Errorf("%w (%w)", ErrEncoding, err)
	}

	return buf, nil
}

// IDGenerator returns the id for the next request that did not carry one.
// It must be safe for concurrent use.
type IDGenerator func() ID

// counter hands out 1, 2, 3... and is the default [IDGenerator] of a [Client].
type counter struct {
	last atomic.Int64
}

func (c *counter) next() ID {
	return NewID(c.last.Add(1))
}

// UUIDGenerator returns an [IDGenerator] producing random (version 4) UUID strings.
func UUIDGenerator() IDGenerator {
	return func() ID {
		return NewID(uuid.NewString())
	}
}
