package codec

import (
	"strings"

	"github.com/multiformats/go-base32"
)

// Base32Alphabet is the RFC 4648 base32 alphabet.
const Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var rawBase32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Base32Encode returns the RFC 4648 base32 encoding of data, padded with '='
// to a multiple of 8 characters.
//
//	Base32Encode("f", false) == "MY======"
func Base32Encode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("base32 encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	if len(b) == 0 {
		return "", nil
	}

	return base32.StdEncoding.EncodeToString(b), nil
}

// Base32Decode decodes base32 text.
//
// Characters outside [A-Z2-7=] return [ErrInvalidCharacters]. Every '='
// is discarded wherever it appears, so misplaced or missing padding is
// accepted. Trailing bits that do not complete a byte are dropped.
func Base32Decode(data string, utf8Decode bool) (string, error) {
	const op = "base32 decode"

	if strings.IndexFunc(data, notBase32Rune) >= 0 {
		return "", fail(op, ErrInvalidCharacters)
	}

	data = strings.ReplaceAll(data, "=", "")
	if data == "" {
		return "", nil
	}

	// A final group of 1, 3 or 6 characters carries no complete byte
	// beyond those of the group one character shorter.
	switch len(data) % 8 {
	case 1, 3, 6:
		data = data[:len(data)-1]
	}

	b, err := rawBase32.DecodeString(data)
	if err != nil {
		return "", failf(op, ErrInvalidData, "%v", err)
	}

	return outputString(op, b, utf8Decode)
}

func notBase32Rune(r rune) bool {
	return !(r >= 'A' && r <= 'Z' || r >= '2' && r <= '7' || r == '=')
}
