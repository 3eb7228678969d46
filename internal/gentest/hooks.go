// Package gentest holds the codec generated from gentest.proto together with
// the hand-written types and hooks it depends on. The generated file is
// checked in so that the codec can be exercised at runtime.
package gentest

//go:generate go run ../../cmd/protoserial generate --proto_path . --out . gentest.proto

import (
	"errors"
	"strings"
)

// ErrEmptyValue is returned when an Audited with no value is serialized.
var ErrEmptyValue = errors.New("audited value is empty")

// ErrRejected is returned when a decoded Audited carries the value "reject".
var ErrRejected = errors.New("audited value rejected")

// BeforeSerialize refuses to write an empty value.
func (m *Audited) BeforeSerialize() error {
	if m.Value == "" {
		return ErrEmptyValue
	}
	return nil
}

// AfterDeserialize normalizes the decoded value.
func (m *Audited) AfterDeserialize() error {
	m.Value = strings.TrimSpace(m.Value)
	if m.Value == "reject" {
		return ErrRejected
	}
	return nil
}

// Legacy is declared by hand; LegacySerializer encodes it.
type Legacy struct {
	Version int64
	Tags    []string
}

// Named is implemented by anything NamedSerializer can read and write.
type Named interface {
	GetName() string
	SetName(string)
}

// Label is a Named backed by a plain string.
type Label struct {
	name string
	sets int
}

func (l *Label) GetName() string { return l.name }

func (l *Label) SetName(name string) {
	l.name = name
	l.sets++
}
