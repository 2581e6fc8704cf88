package codec

import "strings"

// specialEscape is a fixed table escape scheme: one escape character
// followed by a single code letter.
type specialEscape struct {
	esc   rune
	codes map[rune]rune // character -> code letter
	chars map[rune]rune // code letter -> character
}

func newSpecialEscape(esc rune, pairs ...rune) *specialEscape {
	s := &specialEscape{esc: esc, codes: map[rune]rune{}, chars: map[rune]rune{}}

	for i := 0; i+1 < len(pairs); i += 2 {
		s.codes[pairs[i]] = pairs[i+1]
		s.chars[pairs[i+1]] = pairs[i]
	}

	return s
}

func (s *specialEscape) escape(data string) string {
	if data == "" {
		return ""
	}

	var sb strings.Builder

	sb.Grow(len(data))

	for _, r := range data {
		switch code, ok := s.codes[r]; {
		case r == s.esc:
			sb.WriteRune(s.esc)
			sb.WriteRune(s.esc)
		case ok:
			sb.WriteRune(s.esc)
			sb.WriteRune(code)
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func (s *specialEscape) unescape(data string) string {
	if data == "" {
		return ""
	}

	rs := collapse([]rune(data), s.esc)
	out := make([]rune, 0, len(rs))

	for i := 0; i < len(rs); i++ {
		if rs[i] == s.esc && i+1 < len(rs) {
			if c, ok := s.chars[rs[i+1]]; ok {
				out = append(out, c)
				i++

				continue
			}
		}

		out = append(out, rs[i])
	}

	return restore(out, s.esc)
}

var (
	backslashScheme = newSpecialEscape('\\',
		'\t', 't',
		'\n', 'n',
		'\r', 'r',
		'"', 'q',
		'\'', 'a',
		'`', 'g',
	)
	tildeScheme = newSpecialEscape('~',
		'\t', 't',
		'\n', 'n',
		'\r', 'r',
		'"', 'q',
		'\'', 'a',
		'\\', 'b',
		'`', 'g',
	)
)

// BackslashEscape escapes tab, newline, carriage return and the three quote
// characters as `\t \n \r \q \a \g`, and a backslash as `\\`.
// Every other character passes through unchanged.
func BackslashEscape(data string) string {
	return backslashScheme.escape(data)
}

// BackslashUnescape reverses [BackslashEscape]. Unknown escapes are kept as written.
func BackslashUnescape(data string) string {
	return backslashScheme.unescape(data)
}

// TildeEscape escapes tab, newline, carriage return, '"', '\'', '\\' and '`'
// as `~t ~n ~r ~q ~a ~b ~g`, and '~' as `~~`.
func TildeEscape(data string) string {
	return tildeScheme.escape(data)
}

// TildeUnescape reverses [TildeEscape]. Unknown escapes are kept as written.
func TildeUnescape(data string) string {
	return tildeScheme.unescape(data)
}
