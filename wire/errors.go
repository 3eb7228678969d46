package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decoding and encoding errors surfaced by generated codecs.
var (
	ErrInvalidFieldID       = errors.New("invalid field id: 0, something went wrong in the stream")
	ErrInvalidWireType      = errors.New("invalid wire type")
	ErrVarintOverflow       = errors.New("varint overflow")
	ErrLengthTooLarge       = errors.New("length-delimited value exceeds limit")
	ErrGroupMismatch        = errors.New("unmatched end group")
	ErrRequiredFieldMissing = errors.New("required field is not set")
	ErrNilElement           = errors.New("nil element in repeated field")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["phone", "number"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// WrapField prefixes the field path of err with fieldName. Generated code
// calls it on every error returned while reading or writing a field, so a
// failure deep inside nested messages reports the full path from the root.
func WrapField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
