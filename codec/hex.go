package codec

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// HexEncode returns two uppercase hex digits per byte of data.
//
//	HexEncode("AB", false) == "4142"
func HexEncode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("hex encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// HexDecode decodes pairs of hex digits in either case.
// The length check comes before the alphabet check.
func HexDecode(data string, utf8Decode bool) (string, error) {
	const op = "hex decode"

	if len(data)%2 != 0 {
		return "", failf(op, ErrInvalidLength, "not a multiple of 2")
	}

	if strings.IndexFunc(data, notHexRune) >= 0 {
		return "", fail(op, ErrInvalidCharacters)
	}

	b, err := hex.DecodeString(data)
	if err != nil {
		return "", failf(op, ErrInvalidData, "%v", err)
	}

	return outputString(op, b, utf8Decode)
}

// OctalEncode returns three zero padded octal digits per byte of data.
func OctalEncode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("octal encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.Grow(len(b) * 3)

	for _, c := range b {
		sb.WriteByte('0' + c>>6)
		sb.WriteByte('0' + c>>3&7)
		sb.WriteByte('0' + c&7)
	}

	return sb.String(), nil
}

// OctalDecode decodes triplets of octal digits.
// Triplets above 377 do not fit in a byte and return [ErrInvalidData].
func OctalDecode(data string, utf8Decode bool) (string, error) {
	const op = "octal decode"

	if len(data)%3 != 0 {
		return "", failf(op, ErrInvalidLength, "not a multiple of 3")
	}

	if strings.IndexFunc(data, notOctalRune) >= 0 {
		return "", fail(op, ErrInvalidCharacters)
	}

	b := make([]byte, 0, len(data)/3)

	for i := 0; i < len(data); i += 3 {
		v, err := strconv.ParseUint(data[i:i+3], 8, 8)
		if err != nil {
			return "", failf(op, ErrInvalidData, "%q is greater than 255", data[i:i+3])
		}

		b = append(b, byte(v))
	}

	return outputString(op, b, utf8Decode)
}

func notHexRune(r rune) bool {
	return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
}

func notOctalRune(r rune) bool {
	return r < '0' || r > '7'
}
