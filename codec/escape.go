package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// marker stands in for a doubled escape character while the other escapes
// of a string are expanded. It is not a valid rune, so it never collides
// with decoded content.
const marker rune = -1

// EscapeOptions configures [ASCIIEncode] and [UnicodeEncode].
// The zero value escapes Unicode input without touching quotes.
type EscapeOptions struct {
	// UTF8 passes the input through [UTF8Encode] first, so multi-byte
	// characters become escapes of their UTF-8 bytes.
	UTF8 bool
	// EscapeQuotes additionally escapes '"', '\'' and '`'.
	EscapeQuotes bool
}

// ASCIIEncode returns printable ASCII for data.
//
// A backslash becomes `\\`. Control characters and U+007F..U+00FF become
// `\xHH` with uppercase digits, and anything above U+00FF becomes
// `\u{hhhh}` with at least four lowercase digits. Quotes are written as
// `\xHH` when opts.EscapeQuotes is set.
func ASCIIEncode(data string, opts EscapeOptions) string {
	if opts.UTF8 {
		data = UTF8Encode(data)
	}

	var sb strings.Builder

	sb.Grow(len(data))

	for _, r := range data {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case opts.EscapeQuotes && isQuote(r), r < 0x20, r >= 0x7f && r <= 0xff:
			fmt.Fprintf(&sb, `\x%02X`, r)
		case r > 0xff:
			fmt.Fprintf(&sb, `\u{%04x}`, r)
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// ASCIIDecode reverses [ASCIIEncode]. `\xHH` and `\u{H..H}` (4 to 6 digits)
// are expanded in either case; other backslashes are kept as written.
func ASCIIDecode(data string, utf8Decode bool) (string, error) {
	return unescape("ascii decode", data, utf8Decode, true)
}

// UnicodeEncode returns printable ASCII for data, writing every control
// character, U+007F..U+00FF and everything above as `\u{hhhh}`.
// A backslash becomes `\\`, and quotes are escaped the same way when
// opts.EscapeQuotes is set.
func UnicodeEncode(data string, opts EscapeOptions) string {
	if opts.UTF8 {
		data = UTF8Encode(data)
	}

	if data == "" {
		return ""
	}

	var sb strings.Builder

	sb.Grow(len(data))

	for _, r := range data {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case opts.EscapeQuotes && isQuote(r), r < 0x20, r >= 0x7f:
			fmt.Fprintf(&sb, `\u{%04x}`, r)
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// UnicodeDecode reverses [UnicodeEncode]. Only `\u{H..H}` escapes are
// expanded; `\x` sequences are left alone.
func UnicodeDecode(data string, utf8Decode bool) (string, error) {
	return unescape("unicode decode", data, utf8Decode, false)
}

func unescape(op, data string, utf8Decode, hexBytes bool) (string, error) {
	if data == "" {
		return "", nil
	}

	rs := collapse([]rune(data), '\\')
	out := make([]rune, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' || i+1 >= len(rs) {
			out = append(out, rs[i])
			continue
		}

		var (
			v rune
			n int
		)

		switch rs[i+1] {
		case 'x', 'X':
			if hexBytes {
				v, n = scanByteEscape(rs[i+2:])
			}
		case 'u', 'U':
			v, n = scanCodePointEscape(rs[i+2:])
		}

		if n == 0 {
			out = append(out, rs[i])
			continue
		}

		if !utf8.ValidRune(v) {
			return "", failf(op, ErrInvalidData, "escape %q is not a valid code point", string(rs[i:i+2+n]))
		}

		out = append(out, v)
		i += 1 + n
	}

	return finishText(op, restore(out, '\\'), utf8Decode)
}

// scanByteEscape reads the HH of a `\xHH` escape.
// It returns the value and the number of runes consumed, or 0 if rs does not start with one.
func scanByteEscape(rs []rune) (rune, int) {
	if len(rs) < 2 {
		return 0, 0
	}

	hi, ok1 := hexValue(rs[0])
	lo, ok2 := hexValue(rs[1])

	if !ok1 || !ok2 {
		return 0, 0
	}

	return hi<<4 | lo, 2
}

// scanCodePointEscape reads the {H..H} of a `\u{H..H}` escape with 4 to 6 digits.
func scanCodePointEscape(rs []rune) (rune, int) {
	if len(rs) == 0 || rs[0] != '{' {
		return 0, 0
	}

	var v rune

	digits := 0

	for _, r := range rs[1:] {
		d, ok := hexValue(r)
		if !ok {
			break
		}

		v = v<<4 | d
		digits++

		if digits > 6 {
			return 0, 0
		}
	}

	if digits < 4 || 1+digits >= len(rs) || rs[1+digits] != '}' {
		return 0, 0
	}

	return v, digits + 2
}

func hexValue(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	}

	return 0, false
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// collapse replaces each doubled esc, scanning left to right, with [marker].
func collapse(rs []rune, esc rune) []rune {
	out := make([]rune, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		if rs[i] == esc && i+1 < len(rs) && rs[i+1] == esc {
			out = append(out, marker)
			i++

			continue
		}

		out = append(out, rs[i])
	}

	return out
}

// restore turns every [marker] back into a single esc.
func restore(rs []rune, esc rune) string {
	var sb strings.Builder

	sb.Grow(len(rs))

	for _, r := range rs {
		if r == marker {
			r = esc
		}

		sb.WriteRune(r)
	}

	return sb.String()
}
