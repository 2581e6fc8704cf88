package codec

import "strings"

// Base85Alphabet is the 85 character alphabet of the base85 codec. It
// leaves out '"', '$', '\'', '\\' and '`' so the output can sit inside
// quoted strings and shell arguments.
const Base85Alphabet = "!#%&()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_abcdefghijklmnopqrstuvwxyz"

// Base85Encode encodes each 4 byte group of data as 5 alphabet characters,
// most significant digit first. A short final group is zero filled and the
// output truncated by the same number of characters.
func Base85Encode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("base85 encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	if len(b) == 0 {
		return "", nil
	}

	pad := (4 - len(b)%4) % 4
	out := make([]byte, 0, (len(b)+pad)/4*5)

	for i := 0; i < len(b); i += 4 {
		var group [4]byte

		copy(group[:], b[i:])

		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])

		var digits [5]byte

		for j := 4; j >= 0; j-- {
			digits[j] = Base85Alphabet[v%85]
			v /= 85
		}

		out = append(out, digits[:]...)
	}

	return string(out[:len(out)-pad]), nil
}

// Base85Decode reverses [Base85Encode]. A short final group is filled with
// the last alphabet character before decoding and the output truncated.
func Base85Decode(data string, utf8Decode bool) (string, error) {
	const op = "base85 decode"

	if data == "" {
		return "", nil
	}

	pad := (5 - len(data)%5) % 5
	out := make([]byte, 0, (len(data)+pad)/5*4)

	for i := 0; i < len(data); i += 5 {
		var v uint64

		for j := i; j < i+5; j++ {
			d := len(Base85Alphabet) - 1

			if j < len(data) {
				d = strings.IndexByte(Base85Alphabet, data[j])
				if d < 0 {
					return "", fail(op, ErrInvalidCharacters)
				}
			}

			v = v*85 + uint64(d)
		}

		out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}

	return outputString(op, out[:len(out)-pad], utf8Decode)
}
