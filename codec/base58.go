package codec

import "github.com/mr-tron/base58"

// Base58Encode returns the base58 (bitcoin alphabet) encoding of data.
func Base58Encode(data string, utf8Encode bool) (string, error) {
	b, err := inputBytes("base58 encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	if len(b) == 0 {
		return "", nil
	}

	return base58.Encode(b), nil
}

// Base58Decode decodes base58 text.
func Base58Decode(data string, utf8Decode bool) (string, error) {
	const op = "base58 decode"

	if data == "" {
		return "", nil
	}

	b, err := base58.Decode(data)
	if err != nil {
		return "", failf(op, ErrInvalidCharacters, "%v", err)
	}

	return outputString(op, b, utf8Decode)
}
