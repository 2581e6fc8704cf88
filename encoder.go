package rpcconv

import (
	"errors"
	"fmt"
	"io"
)

var ErrEncoding = errors.New("rpcconv: encoding error")

// Encoder writes one message body per call through a transfer encoding.
type Encoder struct {
	w io.Writer
	t Transfer
}

// NewEncoder returns a new [*Encoder] writing bodies encoded with t to w.
func NewEncoder(w io.Writer, t Transfer) *Encoder {
	return &Encoder{w: w, t: t}
}

// Encode marshals v and writes it through the transfer encoding.
//
// With the identity encoding v is streamed through [NewJSONEncoder], which
// appends a newline. Encoded bodies are written without a trailing newline.
func (e *Encoder) Encode(v any) error {
	if e.t.IsIdentity() {
		if err := NewJSONEncoder(e.w).Encode(v); err != nil {
			return fmt.Errorf("%w (%w)", ErrEncoding, err)
		}

		return nil
	}

	buf, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("%w (%w)", ErrEncoding, err)
	}

	body, err := EncodeBody(string(buf), e.t)
	if err != nil {
		return err
	}

	_, err = io.WriteString(e.w, body)

	return err
}
