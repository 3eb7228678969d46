package codegen

import (
	"errors"
	"strings"
)

// Causes of generation errors. An *Error wraps exactly one of them.
var (
	ErrUnresolvedType = errors.New("unresolved type")
	ErrInvalidFieldID = errors.New("invalid field id")
	ErrNameCollision  = errors.New("name collision")
	ErrInvalidDefault = errors.New("invalid default value")
	ErrUnsupported    = errors.New("unsupported")
)

// Error is a schema defect found while generating code, localized to the
// file, message and field it concerns.
type Error struct {
	File    string // proto file path
	Message string // fully qualified message or enum name, if any
	Field   string // field name, if any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	if e.Message != "" {
		b.WriteString(e.Message)
		if e.Field != "" {
			b.WriteString(".")
			b.WriteString(e.Field)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
