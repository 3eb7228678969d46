package codegen

import (
	"fmt"
	"strconv"

	"github.com/anirudhraja/protoserial/schema"
	"github.com/anirudhraja/protoserial/wire"
)

// messageGen prints the type and codec of a single message.
type messageGen struct {
	w     *codeWriter
	msg   *schema.Message
	names messageNames
	plans []*fieldPlan
}

func (g *messageGen) isInterface() bool { return g.msg.Options.Type == schema.KindInterface }
func (g *messageGen) isStruct() bool    { return g.msg.Options.Type == schema.KindStruct }

// get returns an expression reading the member named member of m.
func (g *messageGen) get(member string) string {
	if g.isInterface() {
		return "m.Get" + member + "()"
	}
	return "m." + member
}

// set returns a statement storing value in the member named member of m.
func (g *messageGen) set(member, value string) string {
	if g.isInterface() {
		return "m.Set" + member + "(" + value + ")"
	}
	return "m." + member + " = " + value
}

// param is the type m has in codec methods of the detached form.
func (g *messageGen) param() string {
	if g.isInterface() {
		return g.w.Q(g.names.Type)
	}
	return "*" + g.w.Q(g.names.Type)
}

func (g *messageGen) wireIdent(name string) string {
	return g.w.Q(wirePackage.Ident(name))
}

func (g *messageGen) wrapField(p *fieldPlan, err string) string {
	return g.wireIdent("WrapField") + "(" + err + ", " + strconv.Quote(p.field.Name) + ")"
}

func (g *messageGen) writeKey(p *fieldPlan, wt wire.WireType) string {
	return fmt.Sprintf("ww.WriteKey(%d, %s)", p.field.ID, g.wireIdent(wireTypeName(wt)))
}

func wireTypeName(wt wire.WireType) string {
	switch wt {
	case wire.WireVarint:
		return "WireVarint"
	case wire.WireFixed64:
		return "WireFixed64"
	case wire.WireBytes:
		return "WireBytes"
	case wire.WireFixed32:
		return "WireFixed32"
	}
	panic(fmt.Sprintf("codegen: no field is framed with %s", wt))
}

// generate prints everything for the message.
func (g *messageGen) generate() {
	if !g.msg.IsDetached() {
		g.genDecl()
	}
	if g.msg.Options.Triggers {
		g.genHookAssertions()
	}
	if g.msg.IsDetached() {
		g.genDetachedEntryPoints()
	} else {
		g.genEntryPoints()
	}
	g.genDeserialize()
	g.genSerialize()
}

func (g *messageGen) genDecl() {
	w := g.w
	name := g.names.Type.GoName
	w.P()
	if g.msg.Comments != "" {
		w.Doc(g.msg.Comments)
	} else {
		w.Doc(fmt.Sprintf("%s is generated from the message %s.", name, g.msg.FullName()))
	}
	w.Open("type ", name, " struct")
	for _, p := range g.plans {
		if p.field.Comments != "" {
			w.Doc(p.field.Comments)
		}
		w.P(p.member, " ", p.memberType(w))
	}
	if g.msg.Options.PreserveUnknown {
		w.P()
		w.Comment("PreservedFields holds the fields the schema does not know, in input order.")
		w.Comment("Serialize writes them back unchanged after the known fields.")
		w.P("PreservedFields []", g.wireIdent("KeyValue"))
	}
	w.Close()
}

func (g *messageGen) genHookAssertions() {
	w := g.w
	typ := "(*" + w.Q(g.names.Type) + ")(nil)"
	if g.isInterface() {
		typ = w.Q(g.names.Type) + "(nil)"
	}
	w.P()
	w.P("var (")
	w.P("_ ", g.wireIdent("BeforeSerializer"), " = ", typ)
	w.P("_ ", g.wireIdent("AfterDeserializer"), " = ", typ)
	w.P(")")
}

func (g *messageGen) genEntryPoints() {
	w := g.w
	name := g.names.Type.GoName
	stream := g.wireIdent("Stream")
	newReader := w.Q(bytesPackage.Ident("NewReader"))

	w.P()
	w.Comment("%s reads a %s from r until r is exhausted.", g.names.Deserialize.GoName, name)
	if g.isStruct() {
		w.Func(g.names.Deserialize.GoName, "(r ", stream, ") (", name, ", error)")
		w.P("var m ", name)
		w.If("err := m.Deserialize(r); err != nil")
		w.P("return ", name, "{}, err")
		w.Close()
		w.P("return m, nil")
		w.Close()
	} else {
		w.Func(g.names.Deserialize.GoName, "(r ", stream, ") (*", name, ", error)")
		w.P("m := &", name, "{}")
		w.If("err := m.Deserialize(r); err != nil")
		w.P("return nil, err")
		w.Close()
		w.P("return m, nil")
		w.Close()
	}

	w.P()
	w.Comment("%s decodes a %s from buf.", g.names.Unmarshal.GoName, name)
	if g.isStruct() {
		w.Func(g.names.Unmarshal.GoName, "(buf []byte) (", name, ", error)")
	} else {
		w.Func(g.names.Unmarshal.GoName, "(buf []byte) (*", name, ", error)")
	}
	w.P("return ", g.names.Deserialize.GoName, "(", newReader, "(buf))")
	w.Close()

	w.P()
	w.Comment("Unmarshal decodes buf into m. See Deserialize.")
	w.Func("(m *", name, ") Unmarshal(buf []byte) error")
	w.P("return m.Deserialize(", newReader, "(buf))")
	w.Close()

	w.P()
	w.Comment("Marshal returns the encoding of m.")
	w.Func("(m *", name, ") Marshal() ([]byte, error)")
	w.P("var buf ", w.Q(bytesPackage.Ident("Buffer")))
	w.If("err := m.Serialize(&buf); err != nil")
	w.P("return nil, err")
	w.Close()
	w.P("return buf.Bytes(), nil")
	w.Close()
}

func (g *messageGen) genDetachedEntryPoints() {
	w := g.w
	ser := g.names.Serializer.GoName
	typ := w.Q(g.names.Type)
	stream := g.wireIdent("Stream")
	newReader := w.Q(bytesPackage.Ident("NewReader"))

	w.P()
	w.Doc(fmt.Sprintf("%s reads and writes %s values as the message %s.", ser, typ, g.msg.FullName()))
	w.P("type ", ser, " struct{}")

	// An interface cannot be instantiated, so only the Into forms exist for it.
	if !g.isInterface() {
		w.P()
		w.Comment("Deserialize reads a %s from r until r is exhausted.", typ)
		if g.isStruct() {
			w.Func("(s ", ser, ") Deserialize(r ", stream, ") (", typ, ", error)")
			w.P("var m ", typ)
			w.If("err := s.DeserializeInto(r, &m); err != nil")
			w.P("return ", typ, "{}, err")
		} else {
			w.Func("(s ", ser, ") Deserialize(r ", stream, ") (*", typ, ", error)")
			w.P("m := &", typ, "{}")
			w.If("err := s.DeserializeInto(r, m); err != nil")
			w.P("return nil, err")
		}
		w.Close()
		w.P("return m, nil")
		w.Close()

		w.P()
		w.Comment("Unmarshal decodes a %s from buf.", typ)
		if g.isStruct() {
			w.Func("(s ", ser, ") Unmarshal(buf []byte) (", typ, ", error)")
		} else {
			w.Func("(s ", ser, ") Unmarshal(buf []byte) (*", typ, ", error)")
		}
		w.P("return s.Deserialize(", newReader, "(buf))")
		w.Close()
	}

	w.P()
	w.Comment("UnmarshalInto decodes buf into m. See DeserializeInto.")
	w.Func("(s ", ser, ") UnmarshalInto(buf []byte, m ", g.param(), ") error")
	w.P("return s.DeserializeInto(", newReader, "(buf), m)")
	w.Close()

	w.P()
	w.Comment("Marshal returns the encoding of m.")
	w.Func("(s ", ser, ") Marshal(m ", g.param(), ") ([]byte, error)")
	w.P("var buf ", w.Q(bytesPackage.Ident("Buffer")))
	w.If("err := s.Serialize(&buf, m); err != nil")
	w.P("return nil, err")
	w.Close()
	w.P("return buf.Bytes(), nil")
	w.Close()
}

// unmarshalInto returns a call decoding buf into the message variable v.
func (g *messageGen) unmarshalInto(p *fieldPlan, v string) string {
	if !p.msg.IsDetached() {
		return v + ".Unmarshal(buf)"
	}
	if p.msg.Options.Type == schema.KindStruct {
		v = "&" + v
	}
	// Parenthesized since the call sits in an if statement header.
	return "(" + g.w.Q(p.msgNames.Serializer) + "{}).UnmarshalInto(buf, " + v + ")"
}

// marshal returns a call encoding the message variable v.
func (g *messageGen) marshal(p *fieldPlan, v string) string {
	if !p.msg.IsDetached() {
		return v + ".Marshal()"
	}
	if p.msg.Options.Type == schema.KindStruct {
		v = "&" + v
	}
	return g.w.Q(p.msgNames.Serializer) + "{}.Marshal(" + v + ")"
}
