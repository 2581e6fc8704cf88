package codec

// DefaultObfuscateKey is the XOR key used when none is configured.
const DefaultObfuscateKey byte = 0b10101010

// Obfuscate returns a copy of b with every byte XORed with key.
// Applying it twice with the same key restores the input.
// A zero key would leave the data readable and returns [ErrInvalidKey].
func Obfuscate(b []byte, key byte) ([]byte, error) {
	if key == 0 {
		return nil, fail("obfuscate", ErrInvalidKey)
	}

	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c ^ key
	}

	return out, nil
}

// ObfuscateEncode XORs data with key and base64 encodes the result.
func ObfuscateEncode(data string, key byte, utf8Encode bool) (string, error) {
	b, err := inputBytes("obfuscate encode", data, utf8Encode)
	if err != nil {
		return "", err
	}

	if b, err = Obfuscate(b, key); err != nil {
		return "", err
	}

	return BytesToBase64(b), nil
}

// ObfuscateDecode base64 decodes data and XORs the bytes with key.
func ObfuscateDecode(data string, key byte, utf8Decode bool) (string, error) {
	b, err := Base64ToBytes(data)
	if err != nil {
		return "", err
	}

	if b, err = Obfuscate(b, key); err != nil {
		return "", err
	}

	return outputString("obfuscate decode", b, utf8Decode)
}
