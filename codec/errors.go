package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrCodePointRange is returned when a Latin1 input contains a rune above U+00FF.
	ErrCodePointRange = errors.New("data contains code points greater than 255")
	// ErrInvalidCharacters is returned when an input holds characters outside the codec alphabet.
	ErrInvalidCharacters = errors.New("data contains invalid characters")
	// ErrInvalidLength is returned when an input length does not fit the codec grouping.
	ErrInvalidLength = errors.New("data length is invalid")
	// ErrInvalidData is returned for structurally malformed input (bad padding, out of range values).
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidUTF8 is returned by [UTF8Decode] when the bytes are not well formed UTF-8.
	ErrInvalidUTF8 = errors.New("data is not valid UTF-8")
	// ErrInvalidKey is returned when an obfuscation key of zero is requested.
	ErrInvalidKey = errors.New("key should be an integer between 1 and 255")
)

// fail wraps err with the name of the failing operation.
func fail(op string, err error) error {
	return fmt.Errorf("codec: %s: %w", op, err)
}

// failf wraps err with the failing operation and extra detail.
func failf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("codec: %s: %w (%s)", op, err, fmt.Sprintf(format, args...))
}
