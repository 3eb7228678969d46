package codegen

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"google.golang.org/protobuf/compiler/protogen"

	"github.com/anirudhraja/protoserial/schema"
)

// Packages referenced by generated code.
const (
	wirePackage    = protogen.GoImportPath("github.com/anirudhraja/protoserial/wire")
	bytesPackage   = protogen.GoImportPath("bytes")
	ioPackage      = protogen.GoImportPath("io")
	mathPackage    = protogen.GoImportPath("math")
	strconvPackage = protogen.GoImportPath("strconv")
)

// Methods the generated codec declares on a message type. Field members may
// not take these names.
var reservedMembers = map[string]bool{
	"Deserialize":      true,
	"Unmarshal":        true,
	"Serialize":        true,
	"Marshal":          true,
	"BeforeSerialize":  true,
	"AfterDeserialize": true,
	"PreservedFields":  true,
}

// goCamelCase converts a proto identifier to an exported Go identifier:
// an underscore followed by a lowercase letter is dropped and the letter
// upper-cased. Any other underscore is kept, so "field_1" and "field1" or
// "Foo_Bar" and "FooBar" stay distinct.
func goCamelCase(s string) string {
	out := make([]byte, 0, len(s))
	upperNext := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
			if len(out) > 0 && (i+1 == len(s) || !isLower(s[i+1])) {
				out = append(out, '_')
			}
			upperNext = true
			continue
		case c == '.':
			out = append(out, '_')
			upperNext = true
			continue
		case !isIdentByte(c):
			c = '_'
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c = c - 'a' + 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	if len(out) == 0 || isDigit(out[0]) {
		out = append([]byte{'X'}, out...)
	}
	return string(out)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func unexport(s string) string {
	lowercased := strings.ToLower(s[:1]) + s[1:]
	switch lowercased {
	// https://go.dev/ref/spec#Keywords
	case "break", "default", "func", "interface", "select",
		"case", "defer", "go", "map", "struct",
		"chan", "else", "goto", "package", "switch",
		"const", "fallthrough", "if", "range", "type",
		"continue", "for", "import", "return", "var":
		return "_" + lowercased
	default:
		return lowercased
	}
}

// scopeName joins the camel-cased scope of a declaration with underscores,
// the way nested types are named in Go protobuf code.
func scopeName(scope []string) string {
	parts := make([]string, len(scope))
	for i, s := range scope {
		parts[i] = goCamelCase(s)
	}
	return strings.Join(parts, "_")
}

// messageNames holds the Go identifiers belonging to one message.
type messageNames struct {
	Type        protogen.GoIdent // the message type, declared or existing
	Serializer  protogen.GoIdent // detached codec type
	Deserialize protogen.GoIdent // constructing entry point, in-place form
	Unmarshal   protogen.GoIdent // constructing entry point, in-place form
}

func newMessageNames(m *schema.Message) messageNames {
	importPath := protogen.GoImportPath(m.File.GoImportPath)
	base := scopeName(m.Scope())
	exported := m.Options.Access == schema.AccessPublic || m.Options.Access == ""

	typeName := base
	deserialize := "Deserialize" + base
	unmarshal := "Unmarshal" + base
	if !exported {
		typeName = unexport(base)
		deserialize = "deserialize" + base
		unmarshal = "unmarshal" + base
	}
	return messageNames{
		Type:        importPath.Ident(typeName),
		Serializer:  importPath.Ident(typeName + "Serializer"),
		Deserialize: importPath.Ident(deserialize),
		Unmarshal:   importPath.Ident(unmarshal),
	}
}

// topLevel returns the package-level identifiers the generated code for m
// declares.
func (n messageNames) topLevel(m *schema.Message) []string {
	switch {
	case m.IsDetached():
		return []string{n.Serializer.GoName}
	default:
		return []string{n.Type.GoName, n.Deserialize.GoName, n.Unmarshal.GoName}
	}
}

// enumNames holds the Go identifiers belonging to one enum. Enums take the
// visibility of their enclosing message.
type enumNames struct {
	Type   protogen.GoIdent
	Names  protogen.GoIdent // value to name map
	values map[string]protogen.GoIdent
}

func newEnumNames(e *schema.Enum) enumNames {
	importPath := protogen.GoImportPath(e.File.GoImportPath)
	base := scopeName(e.Scope())
	if e.Parent != nil && e.Parent.Options.Access != schema.AccessPublic && e.Parent.Options.Access != "" {
		base = unexport(base)
	}
	n := enumNames{
		Type:   importPath.Ident(base),
		Names:  importPath.Ident(base + "_name"),
		values: make(map[string]protogen.GoIdent, len(e.Values)),
	}
	for _, v := range e.Values {
		n.values[v.Name] = importPath.Ident(base + "_" + v.Name)
	}
	return n
}

// Value returns the constant for the named value.
func (n enumNames) Value(name string) protogen.GoIdent {
	return n.values[name]
}

func (n enumNames) topLevel(e *schema.Enum) []string {
	idents := []string{n.Type.GoName, n.Names.GoName}
	for _, v := range e.Values {
		idents = append(idents, n.values[v.Name].GoName)
	}
	return idents
}

// memberName returns the Go name of the struct member, or accessor suffix,
// holding field.
func memberName(field *schema.Field) string {
	return goCamelCase(field.Name)
}

// checkFileNames reports every package-level identifier that two
// declarations of file would both claim.
func checkFileNames(file *schema.File) error {
	owners := make(map[string]string)
	var errs []error
	claim := func(scope, ident string) {
		if prev, ok := owners[ident]; ok {
			errs = append(errs, &Error{
				File:    file.Path,
				Message: scope,
				Err:     fmt.Errorf("%w: %s is also declared for %s", ErrNameCollision, ident, prev),
			})
			return
		}
		owners[ident] = scope
	}

	var walkEnum func(e *schema.Enum)
	walkEnum = func(e *schema.Enum) {
		for _, ident := range newEnumNames(e).topLevel(e) {
			claim(e.FullName(), ident)
		}
	}
	var walkMessage func(m *schema.Message)
	walkMessage = func(m *schema.Message) {
		for _, ident := range newMessageNames(m).topLevel(m) {
			claim(m.FullName(), ident)
		}
		for _, e := range m.Enums {
			walkEnum(e)
		}
		for _, nested := range m.Messages {
			walkMessage(nested)
		}
	}
	for _, e := range file.Enums {
		walkEnum(e)
	}
	for _, m := range file.Messages {
		walkMessage(m)
	}
	return multierr.Combine(errs...)
}
