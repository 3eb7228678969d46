package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"

	"github.com/anirudhraja/protoserial/schema"
)

func TestGoCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"name", "Name"},
		{"phone_number", "PhoneNumber"},
		{"fooBar", "FooBar"},
		{"field_1", "Field_1"},
		{"field1", "Field1"},
		{"Foo_Bar", "Foo_Bar"},
		{"foo_", "Foo_"},
		{"_private", "Private"},
		{"HTTPServer", "HTTPServer"},
		{"1st", "X1st"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, goCamelCase(tt.in))
		})
	}
}

func TestUnexport(t *testing.T) {
	assert.Equal(t, "person", unexport("Person"))
	assert.Equal(t, "_type", unexport("Type"))
}

func TestMessageNames(t *testing.T) {
	file := &schema.File{Package: "p", GoImportPath: "example.com/p"}
	outer := schema.NewMessage("outer_msg", nil, file)
	inner := schema.NewMessage("Inner", outer, file)
	inner.Options.Access = schema.AccessPrivate

	n := newMessageNames(outer)
	assert.Equal(t, "OuterMsg", n.Type.GoName)
	assert.Equal(t, "DeserializeOuterMsg", n.Deserialize.GoName)
	assert.Equal(t, protogen.GoImportPath("example.com/p"), n.Type.GoImportPath)

	n = newMessageNames(inner)
	assert.Equal(t, "outerMsg_Inner", n.Type.GoName)
	assert.Equal(t, "outerMsg_InnerSerializer", n.Serializer.GoName)
	assert.Equal(t, "deserializeOuterMsg_Inner", n.Deserialize.GoName)
	assert.Equal(t, "unmarshalOuterMsg_Inner", n.Unmarshal.GoName)

	enum := &schema.Enum{Name: "Kind", Parent: inner, File: file, Values: []*schema.EnumValue{{Name: "A"}}}
	en := newEnumNames(enum)
	assert.Equal(t, "outerMsg_Inner_Kind", en.Type.GoName)
	assert.Equal(t, "outerMsg_Inner_Kind_A", en.Value("A").GoName)
	assert.Equal(t, "outerMsg_Inner_Kind_name", en.Names.GoName)
}

func TestPrimitiveDefault(t *testing.T) {
	tests := []struct {
		typ     schema.PrimitiveType
		literal string
		want    string
		wantErr bool
	}{
		{schema.TypeInt32, "0x10", "16", false},
		{schema.TypeInt32, "-5", "-5", false},
		{schema.TypeInt32, "2147483648", "", true},
		{schema.TypeSint64, "-9223372036854775808", "-9223372036854775808", false},
		{schema.TypeUint32, "-1", "", true},
		{schema.TypeFixed64, "18446744073709551615", "18446744073709551615", false},
		{schema.TypeFloat, "inf", "float32(math.Inf(1))", false},
		{schema.TypeDouble, "-inf", "math.Inf(-1)", false},
		{schema.TypeDouble, "nan", "math.NaN()", false},
		{schema.TypeDouble, "1.5", "1.5", false},
		{schema.TypeDouble, "1e10", "1e+10", false},
		{schema.TypeFloat, "0.1", "0.1", false},
		{schema.TypeDouble, "abc", "", true},
		{schema.TypeBool, "true", "true", false},
		{schema.TypeBool, "1", "", true},
		{schema.TypeString, `say "hi"`, `"say \"hi\""`, false},
		{schema.TypeBytes, "", "nil", false},
		{schema.TypeBytes, "\x01z", `[]byte("\x01z")`, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.literal, func(t *testing.T) {
			w := newCodeWriter(NewGoFile("x.go", "example.com/x"))
			got, err := primitiveDefault(w, tt.typ, tt.literal)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefault)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.expr)
		})
	}
}

func TestDefaultDiffers(t *testing.T) {
	w := newCodeWriter(NewGoFile("x.go", "example.com/x"))
	bytesType := schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeBytes}
	doubleType := schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeDouble}

	assert.Equal(t, "len(m.B) > 0", defaultValue{expr: "nil", empty: true}.differs(w, "m.B", bytesType))
	assert.Equal(t, `!bytes.Equal(m.B, []byte("x"))`, defaultValue{expr: `[]byte("x")`}.differs(w, "m.B", bytesType))
	assert.Equal(t, "!math.IsNaN(float64(m.D))", defaultValue{expr: "math.NaN()", nan: true}.differs(w, "m.D", doubleType))
	assert.Equal(t, "m.D != 2", defaultValue{expr: "2"}.differs(w, "m.D", doubleType))
}

func TestGoFileImports(t *testing.T) {
	gf := NewGoFile("x.go", "example.com/x")

	assert.Equal(t, "Local", gf.QualifiedGoIdent(protogen.GoImportPath("example.com/x").Ident("Local")))
	assert.Equal(t, "foo.A", gf.QualifiedGoIdent(protogen.GoImportPath("a/foo").Ident("A")))
	assert.Equal(t, "foo1.B", gf.QualifiedGoIdent(protogen.GoImportPath("b/foo").Ident("B")))
	assert.Equal(t, "foo.C", gf.QualifiedGoIdent(protogen.GoImportPath("a/foo").Ident("C")))
	assert.Equal(t, "go_thing.D", gf.QualifiedGoIdent(protogen.GoImportPath("example.com/go-thing").Ident("D")))

	gf.P("// Code generated by test. DO NOT EDIT.")
	gf.P()
	gf.P("package x")
	gf.P()
	gf.P("var _ = ", protogen.GoImportPath("bytes").Ident("NewReader"))

	content, err := gf.Content()
	require.NoError(t, err)
	src := string(content)
	assert.Contains(t, src, `"a/foo"`)
	assert.Contains(t, src, `foo1 "b/foo"`)
	assert.Contains(t, src, `go_thing "example.com/go-thing"`)
	assert.Contains(t, src, `"bytes"`)
	assert.Contains(t, src, "var _ = bytes.NewReader")
}

func TestGoFileWithoutPackageClause(t *testing.T) {
	gf := NewGoFile("x.go", "example.com/x")
	gf.P("var x = 1")
	_, err := gf.Content()
	assert.Error(t, err)
}

func TestCodeWriterBalance(t *testing.T) {
	w := newCodeWriter(NewGoFile("x.go", "example.com/x"))
	w.Func("f()")
	w.If("true")
	w.Close()
	assert.Error(t, w.Done())
	w.Close()
	assert.NoError(t, w.Done())

	w.Close()
	assert.Error(t, w.Done())
}

func TestRecorderDefersQualification(t *testing.T) {
	gf := NewGoFile("x.go", "example.com/x")
	rec := newRecorder(gf)

	ident := rec.QualifiedGoIdent(protogen.GoImportPath("example.com/dep").Ident("T"))
	rec.P("var _ ", ident+"Alias")
	// Nothing reaches the parent before replay.
	assert.Empty(t, gf.packageNames)

	gf.P("package x")
	rec.replay()
	content, err := gf.Content()
	require.NoError(t, err)
	assert.Contains(t, string(content), "var _ dep.TAlias")
	assert.Contains(t, string(content), `"example.com/dep"`)
}

func TestWrapComments(t *testing.T) {
	rec := newRecorder(NewGoFile("x.go", "example.com/x"))
	long := ""
	for i := 0; i < 30; i++ {
		long += "word "
	}
	wrapComments(rec, long)
	require.Len(t, rec.lines, 2)
	for _, line := range rec.lines {
		assert.Equal(t, "// ", line[0])
		assert.LessOrEqual(t, len(line[1].(string)), commentWidth)
	}
}
