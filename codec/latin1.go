package codec

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Latin1ToBytes returns the bytes represented by the Latin1 string s.
//
// Each rune of s becomes one byte. A rune above U+00FF, or invalid UTF-8
// in s, returns [ErrCodePointRange].
func Latin1ToBytes(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, ErrCodePointRange
	}

	return b, nil
}

// BytesToLatin1 returns the Latin1 string for b, one rune per byte.
func BytesToLatin1(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	// ISO 8859-1 decoding never fails: every byte has a code point.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)

	return string(s)
}

// CodePoints returns the code points of s.
func CodePoints(s string) []rune {
	return []rune(s)
}

// FromCodePoints builds a string from code points.
//
// Values outside the Unicode range or in the surrogate block return [ErrInvalidData].
func FromCodePoints(cps []rune) (string, error) {
	for i, r := range cps {
		if !utf8.ValidRune(r) {
			return "", failf("from code points", ErrInvalidData, "index %d: %#x", i, r)
		}
	}

	return string(cps), nil
}

// inputBytes converts encoder input to raw bytes, honouring the utf8Encode flag.
func inputBytes(op, data string, utf8Encode bool) ([]byte, error) {
	if utf8Encode {
		return []byte(validUTF8(data)), nil
	}

	b, err := Latin1ToBytes(data)
	if err != nil {
		return nil, fail(op, err)
	}

	return b, nil
}

// outputString converts decoded bytes to the result string, honouring the utf8Decode flag.
func outputString(op string, b []byte, utf8Decode bool) (string, error) {
	if utf8Decode {
		if !utf8.Valid(b) {
			return "", fail(op, ErrInvalidUTF8)
		}

		return string(b), nil
	}

	return BytesToLatin1(b), nil
}

// finishText applies the utf8Decode flag to a decoded Latin1 string.
func finishText(op, s string, utf8Decode bool) (string, error) {
	if !utf8Decode {
		return s, nil
	}

	out, err := UTF8Decode(s)
	if err != nil {
		return "", fail(op, err)
	}

	return out, nil
}
