package rpcconv

import (
	"errors"
	"fmt"
)

// ProtocolVersion is the value of the jsonrpc member of every message.
const ProtocolVersion = "2.0"

var ErrWrongProtocolVersion = errors.New("rpcconv: jsonrpc member is not \"2.0\"")
var errWrongProtoVerDecode = fmt.Errorf("%w (%w)", ErrDecoding, ErrWrongProtocolVersion)

// Version represents the jsonrpc member of requests and responses.
//
// It always marshals as "2.0". When unmarshalling, any other value is rejected
// with [ErrWrongProtocolVersion].
type Version struct {
	present bool
}

// IsValid returns true if the jsonrpc member was present when decoding.
func (v *Version) IsValid() bool {
	return v.present
}

func (v *Version) UnmarshalJSON(data []byte) error {
	var str string

	if err := Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	if str != ProtocolVersion {
		return errWrongProtoVerDecode
	}

	v.present = true

	return nil
}

func (Version) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ProtocolVersion + `"`), nil
}
