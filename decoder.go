package rpcconv

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrDecoding     = errors.New("rpcconv: decoding error")
	ErrJSONTooLarge = errors.New("rpcconv: body larger than configured read limit")
)

// Decoder reads a whole message body and reverses its transfer encoding.
// Use [NewDecoder] to create instances.
type Decoder struct {
	r io.Reader
	t Transfer
	n int64 // read limit in bytes, 0 means no limit
}

// NewDecoder creates a new [*Decoder] reading bodies encoded with t from r.
func NewDecoder(r io.Reader, t Transfer) *Decoder {
	return &Decoder{r: r, t: t}
}

// SetLimit configures the maximum number of bytes read for one body.
// A larger body makes [Decoder.ReadBody] and [Decoder.Decode] return
// [ErrJSONTooLarge]. A limit of 0 or less disables the check.
//
//	dec := rpcconv.NewDecoder(resp.Body, transfer)
//	dec.SetLimit(1024 * 1024) // 1 MiB
func (d *Decoder) SetLimit(n int64) {
	d.n = n
}

// ReadBody reads r to the end and returns the decoded, trimmed body text.
func (d *Decoder) ReadBody() (string, error) {
	r := d.r

	if d.n > 0 {
		r = io.LimitReader(d.r, d.n+1)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	if d.n > 0 && int64(len(raw)) > d.n {
		return "", ErrJSONTooLarge
	}

	return DecodeBody(string(raw), d.t)
}

// Decode reads a body and decodes the first JSON value in it into v.
func (d *Decoder) Decode(v any) error {
	body, err := d.ReadBody()
	if err != nil {
		return err
	}

	if err := NewJSONDecoder(strings.NewReader(body)).Decode(v); err != nil {
		return fmt.Errorf("%w (%w)", ErrDecoding, err)
	}

	return nil
}
