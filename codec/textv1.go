package codec

import "strings"

// Prefix characters and offsets of the V1 text scheme.
const (
	textV1Low  = '%' // 0x25
	textV1High = '&' // 0x26

	textV1ControlShift = 40  // 0x00-0x1F and "%&' -> %(..%O
	textV1MidShift     = 47  // 0x7F-0xAD -> %P..%~
	textV1HighShift    = 134 // 0xAE-0xFF -> &(..&y
)

var textV1Unquote = strings.NewReplacer("&{", "`", "&z", `\`)

// TextEncodeV1 encodes data with the legacy two character scheme.
//
//	0x00-0x1F, '"', '%', '&', '\''   '%' followed by byte+40
//	0x7F-0xAD                        '%' followed by byte-47
//	0xAE-0xFF                        '&' followed by byte-134
//	'\\'                             "&z"
//	'`'                              "&{"
//
// A shifted byte that lands on '\\' or '`' is itself written as "&z" or "&{".
// The output is printable ASCII.
func TextEncodeV1(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("text v1 encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.Grow(len(b) + len(b)/2)

	for _, c := range b {
		switch {
		case c < 0x20, c == '"', c == '%', c == '&', c == '\'':
			sb.WriteByte(textV1Low)
			writeTextV1(&sb, c+textV1ControlShift)
		case c >= 0x7f && c <= 0xad:
			sb.WriteByte(textV1Low)
			writeTextV1(&sb, c-textV1MidShift)
		case c >= 0xae:
			sb.WriteByte(textV1High)
			writeTextV1(&sb, c-textV1HighShift)
		default:
			writeTextV1(&sb, c)
		}
	}

	return sb.String(), nil
}

func writeTextV1(sb *strings.Builder, c byte) {
	switch c {
	case '\\':
		sb.WriteString("&z")
	case '`':
		sb.WriteString("&{")
	default:
		sb.WriteByte(c)
	}
}

// TextDecodeV1 reverses [TextEncodeV1].
//
// The passes run in a fixed order: "&{" and "&z", then '&' codes, then
// the upper and lower '%' codes. Sequences that match no pass are kept as
// written.
func TextDecodeV1(data string, utf8Decode bool) (string, error) {
	if data == "" {
		return "", nil
	}

	rs := []rune(textV1Unquote.Replace(data))
	rs = shiftPass(rs, textV1High, 0x28, 0x7e, textV1HighShift)
	rs = shiftPass(rs, textV1Low, 0x50, 0x7e, textV1MidShift)
	rs = shiftPass(rs, textV1Low, 0x28, 0x4f, -textV1ControlShift)

	return finishText("text v1 decode", string(rs), utf8Decode)
}

// shiftPass replaces every prefix followed by a rune in [lo, hi] with that
// rune plus delta. Matches do not overlap and replaced runes are not rescanned.
func shiftPass(rs []rune, prefix, lo, hi, delta rune) []rune {
	out := make([]rune, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		if rs[i] == prefix && i+1 < len(rs) && rs[i+1] >= lo && rs[i+1] <= hi {
			out = append(out, rs[i+1]+delta)
			i++

			continue
		}

		out = append(out, rs[i])
	}

	return out
}
