package codegen

import (
	"github.com/anirudhraja/protoserial/schema"
	"github.com/anirudhraja/protoserial/wire"
)

func (g *messageGen) genDeserialize() {
	w := g.w
	stream := g.wireIdent("Stream")

	w.P()
	if g.msg.IsDetached() {
		w.Comment("DeserializeInto reads fields from r into m until r is exhausted.")
		w.Func("(s ", g.names.Serializer.GoName, ") DeserializeInto(r ", stream, ", m ", g.param(), ") error")
	} else {
		w.Comment("Deserialize reads fields from r into m until r is exhausted. Optional fields")
		w.Comment("absent from r are reset to their defaults; repeated fields are appended to.")
		w.Func("(m *", g.names.Type.GoName, ") Deserialize(r ", stream, ") error")
	}

	g.genPrologue()

	w.For()
	w.P("keyByte, err := r.ReadByte()")
	w.If("err == ", w.Q(ioPackage.Ident("EOF")))
	w.P("break")
	w.Close()
	w.ReturnIfErr("err")

	var compact, general []*fieldPlan
	for _, p := range g.plans {
		if p.compact() {
			compact = append(compact, p)
		} else {
			general = append(general, p)
		}
	}

	if len(compact) > 0 {
		w.P()
		w.Comment("Optimized reading of known fields with field ID < %d", compactFieldLimit)
		w.Switch("keyByte")
		for _, p := range compact {
			for _, wt := range p.readWireTypes {
				w.Case(p.compactKey(wt), ": // Field ", p.field.ID, " ", wt)
				g.genReadValue(p, wt)
				w.P("continue")
			}
		}
		w.Close()
	}

	w.P()
	w.P("key, err := ", g.wireIdent("ReadKey"), "(keyByte, r)")
	w.ReturnIfErr("err")
	w.If("key.Field == 0")
	w.P("return ", g.wireIdent("ErrInvalidFieldID"))
	w.Close()

	if len(general) > 0 {
		w.P()
		w.Comment("Reading field ID >= %d and unknown field ID/wire type combinations", compactFieldLimit)
		w.Switch("key")
		for _, p := range general {
			for _, wt := range p.readWireTypes {
				w.Case(g.wireIdent("Key"), "{Field: ", p.field.ID, ", WireType: ", g.wireIdent(wireTypeName(wt)), "}:")
				g.genReadValue(p, wt)
				w.P("continue")
			}
		}
		w.Close()
	}

	w.P()
	if g.msg.Options.PreserveUnknown {
		w.P("v, err := ", g.wireIdent("ReadValueBytes"), "(r, key)")
		w.ReturnIfErr("err")
		w.P(g.set("PreservedFields", "append("+g.get("PreservedFields")+", "+g.wireIdent("KeyValue")+"{Key: key, Value: v})"))
	} else {
		w.If("err := ", g.wireIdent("SkipKey"), "(r, key); err != nil")
		w.P("return err")
		w.Close()
	}
	w.Close()

	if g.msg.Options.Triggers {
		w.P("return m.AfterDeserialize()")
	} else {
		w.P("return nil")
	}
	w.Close()
}

// genPrologue materializes the state a message has before any input is
// read: empty sequences for repeated fields and defaults for optional ones.
func (g *messageGen) genPrologue() {
	w := g.w
	for _, p := range g.plans {
		switch {
		case p.field.IsRepeated():
			w.If(g.get(p.member), " == nil")
			w.P(g.set(p.member, p.memberType(w)+"{}"))
			w.Close()
		case p.prologue:
			w.P(g.set(p.member, p.def.expr))
		}
	}
}

// genReadValue prints the statements of a case reading one occurrence of p
// framed with wt.
func (g *messageGen) genReadValue(p *fieldPlan, wt wire.WireType) {
	w := g.w
	switch {
	case p.msg != nil:
		w.P("buf, err := ", g.wireIdent("ReadBytes"), "(r)")
		w.ReturnIfErr(g.wrapField(p, "err"))
		g.genReadMessage(p)

	case wt == wire.WireBytes && p.packable():
		w.P("buf, err := ", g.wireIdent("ReadBytes"), "(r)")
		w.ReturnIfErr(g.wrapField(p, "err"))
		w.P("pr := ", w.Q(bytesPackage.Ident("NewReader")), "(buf)")
		w.For("pr.Len() > 0")
		g.genReadElement(p, "pr")
		w.Close()

	default:
		g.genReadElement(p, "r")
	}
}

func (g *messageGen) genReadElement(p *fieldPlan, src string) {
	w := g.w
	read, value := g.wireIdent(p.prim.read), "v"
	if p.field.Type.Kind == schema.KindEnum {
		read, value = g.wireIdent("ReadEnum"), p.enumType+"(v)"
	}
	w.P("v, err := ", read, "(", src, ")")
	w.ReturnIfErr(g.wrapField(p, "err"))
	if p.field.IsRepeated() {
		w.P(g.set(p.member, "append("+g.get(p.member)+", "+value+")"))
	} else {
		w.P(g.set(p.member, value))
	}
}

// genReadMessage decodes buf into the field. A singular field already set is
// merged into, as protobuf parsers do for repeated occurrences.
func (g *messageGen) genReadMessage(p *fieldPlan) {
	w := g.w
	byValue := p.msg.Options.Type == schema.KindStruct

	if p.field.IsRepeated() {
		if byValue {
			w.P("var v ", p.messageType(w))
		} else {
			w.P("v := &", p.messageType(w), "{}")
		}
	} else {
		w.P("v := ", g.get(p.member))
		if !byValue {
			w.If("v == nil")
			w.P("v = &", p.messageType(w), "{}")
			w.Close()
		}
	}
	w.If("err := ", g.unmarshalInto(p, "v"), "; err != nil")
	w.P("return ", g.wrapField(p, "err"))
	w.Close()

	if p.field.IsRepeated() {
		w.P(g.set(p.member, "append("+g.get(p.member)+", v)"))
	} else {
		w.P(g.set(p.member, "v"))
	}
}
