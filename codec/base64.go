package codec

import (
	"encoding/base64"
	"strings"
)

var (
	toBase64URL = strings.NewReplacer("+", "-", "/", "_", "=", "")
	toBase64    = strings.NewReplacer("-", "+", "_", "/")
)

// Base64Encode returns the padded RFC 4648 base64 encoding of data.
func Base64Encode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("base64 encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	return BytesToBase64(b), nil
}

// Base64Decode decodes base64 text.
//
// The alphabet is exactly [A-Za-z0-9+/=]. Decoding is forgiving in the same
// way as a browser atob: up to two trailing '=' may be omitted and
// non-zero trailing bits are ignored. A length of 1 mod 4, or '=' anywhere
// but the end, returns [ErrInvalidData].
func Base64Decode(data string, utf8Decode bool) (string, error) {
	b, err := Base64ToBytes(data)
	if err != nil {
		return "", err
	}

	return outputString("base64 decode", b, utf8Decode)
}

// Base64URLEncode returns the unpadded base64url encoding of data.
func Base64URLEncode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("base64url encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	return BytesToBase64URL(b), nil
}

// Base64URLDecode decodes base64url text by translating it back to the
// standard alphabet, re-padding it and handing it to [Base64Decode].
func Base64URLDecode(data string, utf8Decode bool) (string, error) {
	return Base64Decode(Base64URLToBase64(data), utf8Decode)
}

// Base64ToBase64URL rewrites standard base64 text in the url alphabet and drops padding.
func Base64ToBase64URL(data string) string {
	if data == "" {
		return ""
	}

	return toBase64URL.Replace(data)
}

// Base64URLToBase64 rewrites base64url text in the standard alphabet and pads it to a multiple of 4.
func Base64URLToBase64(data string) string {
	if data == "" {
		return ""
	}

	data = toBase64.Replace(data)

	if n := len(data) % 4; n != 0 {
		data += strings.Repeat("=", 4-n)
	}

	return data
}

// BytesToBase64 returns the padded base64 encoding of b.
func BytesToBase64(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return base64.StdEncoding.EncodeToString(b)
}

// BytesToBase64URL returns the unpadded base64url encoding of b.
func BytesToBase64URL(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// Base64ToBytes decodes base64 text to bytes. See [Base64Decode] for the accepted forms.
func Base64ToBytes(data string) ([]byte, error) {
	const op = "base64 decode"

	if data == "" {
		return []byte{}, nil
	}

	if strings.IndexFunc(data, notBase64Rune) >= 0 {
		return nil, fail(op, ErrInvalidCharacters)
	}

	if len(data)%4 == 0 {
		data = strings.TrimSuffix(data, "=")
		data = strings.TrimSuffix(data, "=")
	}

	if len(data)%4 == 1 || strings.IndexByte(data, '=') >= 0 {
		return nil, fail(op, ErrInvalidData)
	}

	b, err := base64.RawStdEncoding.DecodeString(data)
	if err != nil {
		return nil, failf(op, ErrInvalidData, "%v", err)
	}

	return b, nil
}

// Base64URLToBytes decodes base64url text to bytes.
func Base64URLToBytes(data string) ([]byte, error) {
	return Base64ToBytes(Base64URLToBase64(data))
}

func notBase64Rune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r == '+', r == '/', r == '=':
		return false
	}

	return true
}
