package codec

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrDuplicateCodec is returned by [Register] when the name is already taken.
var ErrDuplicateCodec = errors.New("codec already registered")

// Codec is a named encode/decode pair over Latin1 or UTF-8 text.
//
// The bool argument is the utf8Encode flag for Encode and the utf8Decode
// flag for Decode.
type Codec interface {
	Name() string
	Encode(data string, utf8Encode bool) (string, error)
	Decode(data string, utf8Decode bool) (string, error)
}

// FuncCodec adapts a pair of functions to [Codec].
type FuncCodec struct {
	ID         string
	EncodeFunc func(data string, utf8Encode bool) (string, error)
	DecodeFunc func(data string, utf8Decode bool) (string, error)
}

func (f FuncCodec) Name() string { return f.ID }

func (f FuncCodec) Encode(data string, utf8Encode bool) (string, error) {
	return f.EncodeFunc(data, utf8Encode)
}

func (f FuncCodec) Decode(data string, utf8Decode bool) (string, error) {
	return f.DecodeFunc(data, utf8Decode)
}

var registry = struct {
	sync.RWMutex
	m map[string]Codec
}{m: map[string]Codec{}}

// Register adds c under its lower-cased name.
func Register(c Codec) error {
	name := strings.ToLower(c.Name())

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.m[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCodec, name)
	}

	registry.m[name] = c

	return nil
}

// Lookup returns the codec registered under name, ignoring case.
func Lookup(name string) (Codec, bool) {
	registry.RLock()
	defer registry.RUnlock()

	c, ok := registry.m[strings.ToLower(name)]

	return c, ok
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.m))
	for name := range registry.m {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func escapeCodec(name string, enc func(string, EscapeOptions) string, dec func(string, bool) (string, error)) FuncCodec {
	return FuncCodec{
		ID: name,
		EncodeFunc: func(data string, utf8Encode bool) (string, error) {
			return enc(data, EscapeOptions{UTF8: utf8Encode}), nil
		},
		DecodeFunc: dec,
	}
}

// textCodec adapts a scheme without a UTF-8 step; the flags go through the bridge.
func textCodec(name string, enc, dec func(string) string) FuncCodec {
	return FuncCodec{
		ID: name,
		EncodeFunc: func(data string, utf8Encode bool) (string, error) {
			if utf8Encode {
				data = UTF8Encode(data)
			}

			return enc(data), nil
		},
		DecodeFunc: func(data string, utf8Decode bool) (string, error) {
			return finishText(name+" decode", dec(data), utf8Decode)
		},
	}
}

func init() {
	for _, c := range []Codec{
		FuncCodec{"base64", Base64Encode, Base64Decode},
		FuncCodec{"base64url", Base64URLEncode, Base64URLDecode},
		FuncCodec{"base32", Base32Encode, Base32Decode},
		FuncCodec{"base58", Base58Encode, Base58Decode},
		FuncCodec{"base85", Base85Encode, Base85Decode},
		FuncCodec{
			ID:         "base91",
			EncodeFunc: func(d string, u bool) (string, error) { return Base91Encode(d, Base91Options{UTF8: u}) },
			DecodeFunc: func(d string, u bool) (string, error) { return Base91Decode(d, Base91Options{UTF8: u}) },
		},
		FuncCodec{"hex", HexEncode, HexDecode},
		FuncCodec{"octal", OctalEncode, OctalDecode},
		FuncCodec{"textv1", TextEncodeV1, TextDecodeV1},
		FuncCodec{
			ID:         "obfuscate",
			EncodeFunc: func(d string, u bool) (string, error) { return ObfuscateEncode(d, DefaultObfuscateKey, u) },
			DecodeFunc: func(d string, u bool) (string, error) { return ObfuscateDecode(d, DefaultObfuscateKey, u) },
		},
		escapeCodec("ascii", ASCIIEncode, ASCIIDecode),
		escapeCodec("unicode", UnicodeEncode, UnicodeDecode),
		textCodec("backslash", BackslashEscape, BackslashUnescape),
		textCodec("tilde", TildeEscape, TildeUnescape),
	} {
		if err := Register(c); err != nil {
			panic(err)
		}
	}
}
