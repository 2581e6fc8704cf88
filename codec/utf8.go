package codec

import (
	"strings"
	"unicode/utf8"
)

// UTF8Encode returns the UTF-8 bytes of text as a Latin1 string.
//
// Invalid UTF-8 in text is first replaced by U+FFFD, so the result always
// decodes cleanly with [UTF8Decode].
//
//	UTF8Encode("é") == "Ã©"
func UTF8Encode(text string) string {
	if text == "" {
		return ""
	}

	return BytesToLatin1([]byte(validUTF8(text)))
}

// UTF8Decode interprets each rune of the Latin1 string s as one UTF-8 byte
// and returns the decoded text.
//
// Decoding is strict: malformed sequences return [ErrInvalidUTF8] rather
// than being replaced. Runes above U+00FF return [ErrCodePointRange].
func UTF8Decode(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	b, err := Latin1ToBytes(s)
	if err != nil {
		return "", fail("utf8 decode", err)
	}

	if !utf8.Valid(b) {
		return "", fail("utf8 decode", ErrInvalidUTF8)
	}

	return string(b), nil
}

func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, "�")
}
