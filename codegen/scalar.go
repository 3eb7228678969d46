package codegen

import "github.com/anirudhraja/protoserial/schema"

// primitiveInfo describes how one primitive type is held in Go and which wire
// helpers read and write it.
type primitiveInfo struct {
	goType string
	read   string // wire.ReadX(r) (goType, error)
	write  string // (*wire.Writer).WriteX(goType)
	zero   string
	bits   int // precision for numeric defaults
}

var primitives = map[schema.PrimitiveType]primitiveInfo{
	schema.TypeDouble:   {"float64", "ReadDouble", "WriteDouble", "0", 64},
	schema.TypeFloat:    {"float32", "ReadFloat", "WriteFloat", "0", 32},
	schema.TypeInt64:    {"int64", "ReadInt64", "WriteInt64", "0", 64},
	schema.TypeUint64:   {"uint64", "ReadUint64", "WriteUint64", "0", 64},
	schema.TypeInt32:    {"int32", "ReadInt32", "WriteInt32", "0", 32},
	schema.TypeFixed64:  {"uint64", "ReadFixed64", "WriteFixed64", "0", 64},
	schema.TypeFixed32:  {"uint32", "ReadFixed32", "WriteFixed32", "0", 32},
	schema.TypeBool:     {"bool", "ReadBool", "WriteBool", "false", 0},
	schema.TypeString:   {"string", "ReadString", "WriteString", `""`, 0},
	schema.TypeBytes:    {"[]byte", "ReadBytes", "WriteBytes", "nil", 0},
	schema.TypeUint32:   {"uint32", "ReadUint32", "WriteUint32", "0", 32},
	schema.TypeSfixed32: {"int32", "ReadSfixed32", "WriteSfixed32", "0", 32},
	schema.TypeSfixed64: {"int64", "ReadSfixed64", "WriteSfixed64", "0", 64},
	schema.TypeSint32:   {"int32", "ReadSint32", "WriteSint32", "0", 32},
	schema.TypeSint64:   {"int64", "ReadSint64", "WriteSint64", "0", 64},
}

func isUnsigned(t schema.PrimitiveType) bool {
	switch t {
	case schema.TypeUint32, schema.TypeUint64, schema.TypeFixed32, schema.TypeFixed64:
		return true
	}
	return false
}

func isFloat(t schema.PrimitiveType) bool {
	return t == schema.TypeFloat || t == schema.TypeDouble
}
