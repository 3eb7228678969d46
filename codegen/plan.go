package codegen

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/anirudhraja/protoserial/schema"
	"github.com/anirudhraja/protoserial/wire"
)

// compactFieldLimit bounds the field IDs whose keys fit in a single byte and
// are dispatched on that byte directly.
const compactFieldLimit = 1 << (7 - wire.TagTypeBits)

// fieldPlan is everything the reader and writer need to know about one
// field, worked out before any code is printed.
type fieldPlan struct {
	field  *schema.Field
	member string // struct member, or accessor suffix for interface kind

	// Wire types accepted on read, the one written first.
	readWireTypes []wire.WireType

	prim     primitiveInfo
	enumType string          // set for enums
	msg      *schema.Message // set for message fields
	msgNames messageNames
	def      defaultValue
	prologue bool // materialize def before reading
}

// packed reports whether the field is written as one length-delimited block.
func (p *fieldPlan) packed() bool {
	return p.field.IsRepeated() && p.field.WireType() == wire.WireBytes && p.field.Type.ElementWireType() != wire.WireBytes
}

// packable reports whether the elements of a repeated field could be packed.
func (p *fieldPlan) packable() bool {
	return p.field.IsRepeated() && p.field.Type.ElementWireType() != wire.WireBytes
}

// compact reports whether the field's keys are dispatched on their first byte.
func (p *fieldPlan) compact() bool {
	return p.field.ID < compactFieldLimit
}

// planField validates field and resolves everything its code needs.
func planField(w *codeWriter, field *schema.Field) (*fieldPlan, error) {
	if field.ID < 1 || wire.FieldNumber(field.ID) > wire.MaxFieldNumber {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFieldID, field.ID)
	}

	p := &fieldPlan{
		field:  field,
		member: memberName(field),
	}

	switch field.Type.Kind {
	case schema.KindPrimitive:
		info, ok := primitives[field.Type.PrimitiveType]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedType, field.Type.PrimitiveType)
		}
		p.prim = info
	case schema.KindEnum:
		p.enumType = w.Q(newEnumNames(field.Type.Enum).Type)
	case schema.KindMessage:
		target := field.Type.Message
		if target.Options.Type == schema.KindInterface {
			return nil, fmt.Errorf("%w: message %s has type interface and cannot be used as a field type", ErrUnsupported, target.FullName())
		}
		p.msg = target
		p.msgNames = newMessageNames(target)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedType, field.Type.TypeName)
	}

	p.readWireTypes = []wire.WireType{field.WireType()}
	if p.packable() {
		// Parsers accept both encodings of a packable repeated field.
		if p.packed() {
			p.readWireTypes = append(p.readWireTypes, field.Type.ElementWireType())
		} else {
			p.readWireTypes = append(p.readWireTypes, wire.WireBytes)
		}
	}

	if !field.IsRepeated() && field.Type.Kind != schema.KindMessage {
		if field.IsOptional() || field.HasDefault {
			def, err := resolveDefault(w, field)
			if err != nil {
				return nil, err
			}
			p.def = def
			p.prologue = true
		}
	} else if field.HasDefault {
		if _, err := resolveDefault(w, field); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s field cannot have a default", ErrInvalidDefault, field.Rule)
	}
	return p, nil
}

// messageType is the name of the type of a message field. It is qualified
// on use so that only emitted references import a package.
func (p *fieldPlan) messageType(w *codeWriter) string {
	return w.Q(p.msgNames.Type)
}

// elemType is the Go type of one value of the field.
func (p *fieldPlan) elemType(w *codeWriter) string {
	switch {
	case p.msg != nil && p.msg.Options.Type == schema.KindStruct:
		return p.messageType(w)
	case p.msg != nil:
		return "*" + p.messageType(w)
	case p.enumType != "":
		return p.enumType
	default:
		return p.prim.goType
	}
}

// memberType is the Go type of the struct member holding the field.
func (p *fieldPlan) memberType(w *codeWriter) string {
	if p.field.IsRepeated() {
		return "[]" + p.elemType(w)
	}
	return p.elemType(w)
}

// compactKey is the single key byte of the field with wire type wt.
func (p *fieldPlan) compactKey(wt wire.WireType) string {
	return fmt.Sprintf("0x%02x", byte(p.field.ID)<<wire.TagTypeBits|byte(wt))
}

// planMessage plans every field of m in ID order and checks member names.
func planMessage(w *codeWriter, m *schema.Message) ([]*fieldPlan, error) {
	var (
		plans []*fieldPlan
		errs  []error
	)
	members := make(map[string]string)
	for _, field := range m.FieldsByID() {
		p, err := planField(w, field)
		if err != nil {
			errs = append(errs, &Error{File: m.File.Path, Message: m.FullName(), Field: field.Name, Err: err})
			continue
		}
		if prev, ok := members[p.member]; ok {
			errs = append(errs, &Error{
				File: m.File.Path, Message: m.FullName(), Field: field.Name,
				Err: fmt.Errorf("%w: member %s is also used by field %s", ErrNameCollision, p.member, prev),
			})
			continue
		}
		if !m.IsDetached() && reservedMembers[p.member] {
			errs = append(errs, &Error{
				File: m.File.Path, Message: m.FullName(), Field: field.Name,
				Err: fmt.Errorf("%w: member %s is a generated method", ErrNameCollision, p.member),
			})
			continue
		}
		members[p.member] = field.Name
		plans = append(plans, p)
	}
	if len(errs) > 0 {
		return nil, multierr.Combine(errs...)
	}
	return plans, nil
}
