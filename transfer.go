package rpcconv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rrb3942/rpcconv/codec"
)

// ErrUnknownEncoding is returned when a transfer encoding name matches no codec.
var ErrUnknownEncoding = errors.New("rpcconv: unknown transfer encoding")

// Transfer describes how a message body is encoded for the wire.
//
// The zero value is the identity encoding: the JSON text is sent as written.
type Transfer struct {
	// Name is a [codec] registry name, "" for identity.
	Name string
	// UTF8 treats the body as UTF-8 text: it is mapped to its bytes before
	// encoding and decoded as UTF-8 afterwards. Without it every character of
	// the body must fit in one byte.
	UTF8 bool
	// Key is the XOR key of the obfuscate encoding. Zero selects
	// [codec.DefaultObfuscateKey].
	Key byte
}

// ParseTransfer maps an X-Encoding style name to a [Transfer].
//
// Matching is case-insensitive. A name containing "utf8" enables UTF-8 mode,
// "base64url" is checked before "base64", and "obfuscate" selects XOR
// obfuscation. Any other name is looked up in the [codec] registry once
// "utf8" and separators are removed, so "hex-utf8" selects hex in UTF-8 mode.
// The empty name is the identity encoding.
func ParseTransfer(encoding string) (Transfer, error) {
	name := strings.ToLower(strings.TrimSpace(encoding))
	t := Transfer{UTF8: strings.Contains(name, "utf8")}

	switch {
	case strings.Contains(name, "base64url"):
		t.Name = "base64url"
	case strings.Contains(name, "base64"):
		t.Name = "base64"
	case strings.Contains(name, "obfuscate"):
		t.Name = "obfuscate"
	default:
		rest := strings.Trim(strings.ReplaceAll(name, "utf8", ""), " -_;,+")
		if rest == "" {
			break
		}

		if _, ok := codec.Lookup(rest); !ok {
			return Transfer{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}

		t.Name = rest
	}

	return t, nil
}

// IsIdentity returns true if bodies pass through unchanged.
func (t Transfer) IsIdentity() bool {
	return t.Name == ""
}

func (t Transfer) key() byte {
	if t.Key == 0 {
		return codec.DefaultObfuscateKey
	}

	return t.Key
}

// EncodeBody encodes a message body for the wire.
//
// The identity encoding returns body unchanged. Otherwise the body goes
// through the UTF-8 bridge when t.UTF8 is set (or must contain only code
// points up to U+00FF when it is not) and then through the named codec.
func EncodeBody(body string, t Transfer) (string, error) {
	if t.IsIdentity() || body == "" {
		return body, nil
	}

	var (
		out string
		err error
	)

	if t.Name == "obfuscate" {
		out, err = codec.ObfuscateEncode(body, t.key(), t.UTF8)
	} else {
		c, ok := codec.Lookup(t.Name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, t.Name)
		}

		out, err = c.Encode(body, t.UTF8)
	}

	if err != nil {
		return "", fmt.Errorf("%w (%w)", ErrEncoding, err)
	}

	return out, nil
}

// DecodeBody reverses [EncodeBody] and trims surrounding whitespace from the result.
func DecodeBody(body string, t Transfer) (string, error) {
	body = trimBody(body)

	if t.IsIdentity() || body == "" {
		return body, nil
	}

	var (
		out string
		err error
	)

	if t.Name == "obfuscate" {
		out, err = codec.ObfuscateDecode(body, t.key(), t.UTF8)
	} else {
		c, ok := codec.Lookup(t.Name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, t.Name)
		}

		out, err = c.Decode(body, t.UTF8)
	}

	if err != nil {
		return "", fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	return trimBody(out), nil
}
