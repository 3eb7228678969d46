package codegen

import (
	"github.com/anirudhraja/protoserial/schema"
	"github.com/anirudhraja/protoserial/wire"
)

func (g *messageGen) genSerialize() {
	w := g.w
	writer := w.Q(ioPackage.Ident("Writer"))

	w.P()
	w.Comment("Serialize writes m to w, known fields in ID order.")
	if g.msg.IsDetached() {
		w.Func("(s ", g.names.Serializer.GoName, ") Serialize(w ", writer, ", m ", g.param(), ") error")
	} else {
		w.Func("(m *", g.names.Type.GoName, ") Serialize(w ", writer, ") error")
	}

	if g.msg.Options.Triggers {
		w.If("err := m.BeforeSerialize(); err != nil")
		w.P("return err")
		w.Close()
	}

	w.P("ww := ", g.wireIdent("NewWriter"), "(w)")
	for _, p := range g.plans {
		g.genWriteField(p)
	}
	if g.msg.Options.PreserveUnknown {
		w.For("_, kv := range ", g.get("PreservedFields"))
		w.P("ww.WriteRawKey(kv.Key)")
		w.P("ww.WriteRaw(kv.Value)")
		w.Close()
	}
	w.P("return ww.Flush()")
	w.Close()
}

func (g *messageGen) writeCall(p *fieldPlan, dst, v string) string {
	if p.field.Type.Kind == schema.KindEnum {
		return dst + ".WriteEnum(int32(" + v + "))"
	}
	return dst + "." + p.prim.write + "(" + v + ")"
}

func (g *messageGen) genWriteField(p *fieldPlan) {
	w := g.w
	get := g.get(p.member)

	switch {
	case p.msg != nil:
		g.genWriteMessage(p)

	case p.packed():
		w.If("len(", get, ") > 0")
		w.P("pw := ", g.wireIdent("NewWriter"), "(nil)")
		w.For("_, v := range ", get)
		w.P(g.writeCall(p, "pw", "v"))
		w.Close()
		w.P(g.writeKey(p, wire.WireBytes))
		w.P("ww.WriteBytes(pw.Bytes())")
		w.Close()

	case p.field.IsRepeated():
		w.For("_, v := range ", get)
		w.P(g.writeKey(p, p.field.WireType()))
		w.P(g.writeCall(p, "ww", "v"))
		w.Close()

	case p.field.IsOptional():
		// Optional fields holding their default are left out.
		w.If(p.def.differs(w, get, p.field.Type))
		w.P(g.writeKey(p, p.field.WireType()))
		w.P(g.writeCall(p, "ww", get))
		w.Close()

	default:
		w.P(g.writeKey(p, p.field.WireType()))
		w.P(g.writeCall(p, "ww", get))
	}
}

func (g *messageGen) genWriteMessage(p *fieldPlan) {
	w := g.w
	get := g.get(p.member)
	byValue := p.msg.Options.Type == schema.KindStruct

	write := func() {
		w.P("b, err := ", g.marshal(p, "v"))
		w.ReturnIfErr(g.wrapField(p, "err"))
		w.P(g.writeKey(p, wire.WireBytes))
		w.P("ww.WriteBytes(b)")
	}

	switch {
	case p.field.IsRepeated():
		w.For("_, v := range ", get)
		if !byValue {
			w.If("v == nil")
			w.P("return ", g.wrapField(p, g.wireIdent("ErrNilElement")))
			w.Close()
		}
		write()
		w.Close()

	case byValue:
		w.Block()
		w.P("v := ", get)
		write()
		w.Close()

	case p.field.IsRequired():
		w.Block()
		w.P("v := ", get)
		w.If("v == nil")
		w.P("return ", g.wrapField(p, g.wireIdent("ErrRequiredFieldMissing")))
		w.Close()
		write()
		w.Close()

	default:
		w.If("v := ", get, "; v != nil")
		write()
		w.Close()
	}
}
