package codec

import (
	"strings"

	"github.com/mtraver/base91"
)

// Base91Options configures [Base91Encode] and [Base91Decode].
type Base91Options struct {
	// UTF8 applies [UTF8Encode] before encoding, or [UTF8Decode] after decoding.
	UTF8 bool
	// Escape rewrites '"', '$' and '`' as "-q", "-d" and "-g", which the
	// base91 alphabet never produces.
	Escape bool
}

var (
	base91Escaper   = strings.NewReplacer(`"`, "-q", "$", "-d", "`", "-g")
	base91Unescaper = strings.NewReplacer("-g", "`", "-d", "$", "-q", `"`)
)

// Base91Encode returns the basE91 encoding of data.
func Base91Encode(data string, opts Base91Options) (string, error) {
	b, err := inputBytes("base91 encode", data, opts.UTF8)
	if err != nil {
		return "", err
	}

	if len(b) == 0 {
		return "", nil
	}

	out := base91.StdEncoding.EncodeToString(b)
	if opts.Escape {
		out = base91Escaper.Replace(out)
	}

	return out, nil
}

// Base91Decode decodes basE91 text, undoing the escapes first when opts.Escape is set.
func Base91Decode(data string, opts Base91Options) (string, error) {
	const op = "base91 decode"

	if data == "" {
		return "", nil
	}

	if opts.Escape {
		data = base91Unescaper.Replace(data)
	}

	b, err := base91.StdEncoding.DecodeString(data)
	if err != nil {
		return "", failf(op, ErrInvalidData, "%v", err)
	}

	return outputString(op, b, opts.UTF8)
}
