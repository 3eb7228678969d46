package codegen

import (
	"fmt"

	"github.com/anirudhraja/protoserial/schema"
)

func genEnum(w *codeWriter, e *schema.Enum) {
	names := newEnumNames(e)
	name := names.Type.GoName

	w.P()
	if e.Comments != "" {
		w.Doc(e.Comments)
	} else {
		w.Doc(fmt.Sprintf("%s is generated from the enum %s.", name, e.FullName()))
	}
	w.P("type ", name, " int32")

	w.P()
	w.P("const (")
	for _, v := range e.Values {
		w.P(names.Value(v.Name).GoName, " ", name, " = ", v.Number)
	}
	w.P(")")

	w.P()
	w.Comment("%s maps values to names. Aliases map to the first name declared.", names.Names.GoName)
	w.P("var ", names.Names.GoName, " = map[int32]string{")
	seen := make(map[int32]bool, len(e.Values))
	for _, v := range e.Values {
		if seen[v.Number] {
			continue
		}
		seen[v.Number] = true
		w.P(v.Number, ": ", fmt.Sprintf("%q", v.Name), ",")
	}
	w.P("}")

	w.P()
	w.Func("(x ", name, ") String() string")
	w.If("name, ok := ", names.Names.GoName, "[int32(x)]; ok")
	w.P("return name")
	w.Close()
	w.P("return ", w.Q(strconvPackage.Ident("Itoa")), "(int(x))")
	w.Close()
}
