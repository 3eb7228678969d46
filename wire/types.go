package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated groups, only ever skipped or preserved
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// TagTypeBits is the number of low bits of a key holding the wire type.
const TagTypeBits = 3

// MaxFieldNumber is the largest field number a key can carry.
const MaxFieldNumber FieldNumber = 1<<29 - 1

func (t WireType) String() string {
	switch t {
	case WireVarint:
		return "Varint"
	case WireFixed64:
		return "Fixed64"
	case WireBytes:
		return "LengthDelimited"
	case WireStartGroup:
		return "StartGroup"
	case WireEndGroup:
		return "EndGroup"
	case WireFixed32:
		return "Fixed32"
	default:
		return fmt.Sprintf("WireType(%d)", int8(t))
	}
}

// Valid reports whether t is one of the six wire types defined by the format.
func (t WireType) Valid() bool {
	return t >= WireVarint && t <= WireFixed32
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<TagTypeBits | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> TagTypeBits), WireType(tag & 0x7)
}

// Key is a decoded wire key: the field number and the wire type of the value
// that follows it.
type Key struct {
	Field    FieldNumber
	WireType WireType
}

// Tag packs the key back into its integer form.
func (k Key) Tag() Tag {
	return MakeTag(k.Field, k.WireType)
}

func (k Key) String() string {
	return fmt.Sprintf("field %d (%s)", k.Field, k.WireType)
}

// KeyValue is a field that the decoding schema did not recognize, kept as the
// raw key and the raw bytes of its value so it can be written back verbatim.
type KeyValue struct {
	Key   Key
	Value []byte
}
