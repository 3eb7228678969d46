package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anirudhraja/protoserial/wire"
)

// File represents a single .proto file as seen by the generator.
type File struct {
	Path          string     `json:"path"`            // "person.proto"
	Package       string     `json:"package"`         // proto package name
	Syntax        string     `json:"syntax"`          // proto2 or proto3
	GoImportPath  string     `json:"go_import_path"`  // "example.com/gen/personal"
	GoPackageName string     `json:"go_package_name"` // "personal"
	Imports       []string   `json:"imports"`         // imported file paths
	Messages      []*Message `json:"messages"`        // top-level messages, declaration order
	Enums         []*Enum    `json:"enums"`           // top-level enums, declaration order
}

// Message represents a protobuf message definition
type Message struct {
	Name     string           `json:"name"`     // "PhoneNumber"
	Parent   *Message         `json:"-"`        // enclosing message, nil at top level
	File     *File            `json:"-"`        // declaring file
	Fields   map[int32]*Field `json:"fields"`   // fields keyed by ID
	Messages []*Message       `json:"messages"` // nested messages, declaration order
	Enums    []*Enum          `json:"enums"`    // nested enums, declaration order
	Comments string           `json:"comments"` // leading comments without directives
	Options  MessageOptions   `json:"options"`
}

// OutputKind selects how the Go type for a message is produced.
type OutputKind string

const (
	// KindClass declares a struct used through pointers.
	KindClass OutputKind = "class"
	// KindStruct declares a struct used by value.
	KindStruct OutputKind = "struct"
	// KindInterface assumes an existing type exposing GetX/SetX accessors.
	KindInterface OutputKind = "interface"
)

// Access is the visibility requested for the generated declarations.
type Access string

const (
	AccessPublic    Access = "public"
	AccessInternal  Access = "internal"
	AccessProtected Access = "protected"
	AccessPrivate   Access = "private"
)

// MessageOptions are the per-message generation options.
type MessageOptions struct {
	Type            OutputKind `json:"type"`
	Access          Access     `json:"access"`
	External        bool       `json:"external"`         // type exists already, emit codec only
	Triggers        bool       `json:"triggers"`         // call BeforeSerialize/AfterDeserialize
	PreserveUnknown bool       `json:"preserve_unknown"` // keep unknown fields and write them back
}

// DefaultMessageOptions returns the options a message has when none are given.
func DefaultMessageOptions() MessageOptions {
	return MessageOptions{
		Type:   KindClass,
		Access: AccessPublic,
	}
}

// NewMessage creates an empty message with default options.
func NewMessage(name string, parent *Message, file *File) *Message {
	return &Message{
		Name:    name,
		Parent:  parent,
		File:    file,
		Fields:  make(map[int32]*Field),
		Options: DefaultMessageOptions(),
	}
}

// Scope returns the names of the enclosing messages, outermost first,
// followed by the message's own name.
func (m *Message) Scope() []string {
	if m.Parent == nil {
		return []string{m.Name}
	}
	return append(m.Parent.Scope(), m.Name)
}

// FullName returns the fully qualified proto name, e.g.
// "personal.Person.PhoneNumber".
func (m *Message) FullName() string {
	return qualify(m.File, m.Scope())
}

// FieldsByID returns the fields sorted by ID.
func (m *Message) FieldsByID() []*Field {
	fields := make([]*Field, 0, len(m.Fields))
	for _, f := range m.Fields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].ID < fields[j].ID })
	return fields
}

// AddField adds f to the message. A second field with the same ID is rejected.
func (m *Message) AddField(f *Field) error {
	if m.Fields == nil {
		m.Fields = make(map[int32]*Field)
	}
	if existing, ok := m.Fields[f.ID]; ok {
		return fmt.Errorf("message %s: field %q reuses id %d of field %q", m.FullName(), f.Name, f.ID, existing.Name)
	}
	f.Owner = m
	m.Fields[f.ID] = f
	return nil
}

// IsDetached reports whether the codec for m lives in a separate
// <Name>Serializer type instead of on the message type itself.
func (m *Message) IsDetached() bool {
	return m.Options.External || m.Options.Type == KindInterface
}

// Field represents a message field
type Field struct {
	Name       string    `json:"name"`        // "phone"
	ID         int32     `json:"id"`          // 4
	Rule       FieldRule `json:"rule"`        // required, optional, repeated
	Type       FieldType `json:"type"`        // field type information
	Default    string    `json:"default"`     // default literal as written in the schema
	HasDefault bool      `json:"has_default"` // Default was given explicitly
	Packed     bool      `json:"packed"`      // repeated scalar encoded as one block
	Owner      *Message  `json:"-"`           // message declaring the field
	Comments   string    `json:"comments"`
}

// FieldRule represents field cardinality
type FieldRule string

const (
	RuleOptional FieldRule = "optional"
	RuleRequired FieldRule = "required"
	RuleRepeated FieldRule = "repeated"
)

// IsRepeated reports whether the field holds a sequence.
func (f *Field) IsRepeated() bool { return f.Rule == RuleRepeated }

// IsOptional reports whether the field is optional.
func (f *Field) IsOptional() bool { return f.Rule == RuleOptional }

// IsRequired reports whether the field is required.
func (f *Field) IsRequired() bool { return f.Rule == RuleRequired }

// WireType returns the wire type every occurrence of the field is framed
// with. Packed repeated scalars share a single length-delimited block.
func (f *Field) WireType() wire.WireType {
	if f.Packed && f.IsRepeated() && f.Type.Kind != KindMessage {
		return wire.WireBytes
	}
	return f.Type.ElementWireType()
}

// FieldType represents field type information
type FieldType struct {
	Kind          TypeKind      `json:"kind"`                     // primitive, message, enum, unresolved
	PrimitiveType PrimitiveType `json:"primitive_type,omitempty"` // for primitive types
	TypeName      string        `json:"type_name,omitempty"`      // reference as written: "PhoneNumber", ".personal.Person"
	Message       *Message      `json:"-"`                        // resolved message type
	Enum          *Enum         `json:"-"`                        // resolved enum type
}

// ElementWireType returns the wire type of a single value of the type.
func (t FieldType) ElementWireType() wire.WireType {
	switch t.Kind {
	case KindMessage:
		return wire.WireBytes
	case KindEnum:
		return wire.WireVarint
	case KindPrimitive:
		return t.PrimitiveType.WireType()
	default:
		return wire.WireVarint
	}
}

// String returns the type as it would be written in a .proto file.
func (t FieldType) String() string {
	switch t.Kind {
	case KindPrimitive:
		return string(t.PrimitiveType)
	case KindMessage:
		if t.Message != nil {
			return t.Message.FullName()
		}
	case KindEnum:
		if t.Enum != nil {
			return t.Enum.FullName()
		}
	}
	return t.TypeName
}

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive  TypeKind = "primitive"
	KindMessage    TypeKind = "message"
	KindEnum       TypeKind = "enum"
	KindUnresolved TypeKind = "unresolved"
)

// PrimitiveType represents protobuf primitive types
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var primitiveWireTypes = map[PrimitiveType]wire.WireType{
	TypeDouble:   wire.WireFixed64,
	TypeFloat:    wire.WireFixed32,
	TypeInt64:    wire.WireVarint,
	TypeUint64:   wire.WireVarint,
	TypeInt32:    wire.WireVarint,
	TypeFixed64:  wire.WireFixed64,
	TypeFixed32:  wire.WireFixed32,
	TypeBool:     wire.WireVarint,
	TypeString:   wire.WireBytes,
	TypeBytes:    wire.WireBytes,
	TypeUint32:   wire.WireVarint,
	TypeSfixed32: wire.WireFixed32,
	TypeSfixed64: wire.WireFixed64,
	TypeSint32:   wire.WireVarint,
	TypeSint64:   wire.WireVarint,
}

// LookupPrimitive returns the primitive type named name, if there is one.
func LookupPrimitive(name string) (PrimitiveType, bool) {
	t := PrimitiveType(name)
	_, ok := primitiveWireTypes[t]
	return t, ok
}

// WireType returns the wire type of a single value.
func (t PrimitiveType) WireType() wire.WireType {
	return primitiveWireTypes[t]
}

// IsPackedType checks and returns if the Primitive type is packed for repeated label
func IsPackedType(t PrimitiveType) bool {
	wt, ok := primitiveWireTypes[t]
	return ok && wt != wire.WireBytes
}

// Enum represents an enum definition
type Enum struct {
	Name     string       `json:"name"`   // "PhoneType"
	Parent   *Message     `json:"-"`      // enclosing message, nil at top level
	File     *File        `json:"-"`      // declaring file
	Values   []*EnumValue `json:"values"` // enum values, declaration order
	Comments string       `json:"comments"`
}

// EnumValue represents an enum value
type EnumValue struct {
	Name   string `json:"name"`   // "MOBILE"
	Number int32  `json:"number"` // 0
}

// Scope returns the enclosing message names followed by the enum's name.
func (e *Enum) Scope() []string {
	if e.Parent == nil {
		return []string{e.Name}
	}
	return append(e.Parent.Scope(), e.Name)
}

// FullName returns the fully qualified proto name of the enum.
func (e *Enum) FullName() string {
	return qualify(e.File, e.Scope())
}

// First returns the first declared value, which is the implicit default of
// optional fields of this enum. It is nil for an enum without values.
func (e *Enum) First() *EnumValue {
	if len(e.Values) == 0 {
		return nil
	}
	return e.Values[0]
}

// Value returns the value named name.
func (e *Enum) Value(name string) (*EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

func qualify(f *File, scope []string) string {
	name := strings.Join(scope, ".")
	if f == nil || f.Package == "" {
		return name
	}
	return f.Package + "." + name
}
