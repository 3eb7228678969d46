package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/protoserial/schema"
)

const personProto = `syntax = "proto2";
package personal;

option go_package = "example.com/gen/personal;personal";

import "common/types.proto";

// A person in the address book.
//: triggers
//: preserveunknown
message Person {
  required string name = 1;
  required int32 id = 2;
  optional string email = 3 [default = "nobody@example.com"];

  enum PhoneType {
    MOBILE = 0;
    HOME = 1;
    WORK = 2;
  }

  //: type = struct
  message PhoneNumber {
    required string number = 1;
    optional PhoneType type = 2 [default = HOME];
  }

  repeated PhoneNumber phone = 4;
  optional common.Stamp created = 16;
  repeated int32 scores = 17 [packed = true];

  oneof contact {
    string fax = 20;
    string pager = 21;
  }
}
`

const typesProto = `syntax = "proto3";
package common;

message Stamp {
  int64 seconds = 1;
  repeated Level levels = 2;
  repeated string tags = 3;
}

enum Level {
  LOW = 0;
  HIGH = 1;
}
`

func writeProtos(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(nil)

	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	assert.Equal(t, []string{"."}, registry.ProtoDirectories)
	assert.Empty(t, registry.ListMessages())
	assert.Empty(t, registry.ListEnums())
	assert.Empty(t, registry.Files())
}

func TestLoadSchemaFromFile_NonExistentPath(t *testing.T) {
	registry := NewRegistry([]string{t.TempDir()})

	err := registry.LoadSchemaFromFile("missing.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path does not exist")
}

func TestLoadSchemaFromFile_NonProtoFile(t *testing.T) {
	dir := writeProtos(t, map[string]string{"notes.txt": "not a proto file"})
	registry := NewRegistry([]string{dir})

	err := registry.LoadSchemaFromFile("notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a .proto file")
}

// loaders runs a test against every front-end that can read a directory of
// proto sources.
var loaders = map[string]func(r *Registry, file string) error{
	"protoparser": func(r *Registry, file string) error {
		return r.LoadSchemaFromFile(file)
	},
	"protocompile": func(r *Registry, file string) error {
		return r.CompileSchema(context.Background(), file)
	},
}

func TestLoadSchema(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"person.proto":       personProto,
		"common/types.proto": typesProto,
	})

	for name, load := range loaders {
		t.Run(name, func(t *testing.T) {
			registry := NewRegistry([]string{dir})
			require.NoError(t, load(registry, "person.proto"))

			// Files come dependencies first; only the named file is a target.
			files := registry.Files()
			require.Len(t, files, 2)
			assert.Equal(t, "common/types.proto", files[0].Path)
			assert.Equal(t, "person.proto", files[1].Path)
			targets := registry.Targets()
			require.Len(t, targets, 1)
			assert.Equal(t, "person.proto", targets[0].Path)

			person := files[1]
			assert.Equal(t, "personal", person.Package)
			assert.Equal(t, "proto2", person.Syntax)
			assert.Equal(t, "example.com/gen/personal", person.GoImportPath)
			assert.Equal(t, "personal", person.GoPackageName)

			common := files[0]
			assert.Equal(t, "common", common.GoImportPath)
			assert.Equal(t, "common", common.GoPackageName)

			assert.Equal(t, []string{
				"common.Stamp",
				"personal.Person",
				"personal.Person.PhoneNumber",
			}, registry.ListMessages())
			assert.Equal(t, []string{"common.Level", "personal.Person.PhoneType"}, registry.ListEnums())

			msg, err := registry.GetMessage("personal.Person")
			require.NoError(t, err)
			assert.True(t, msg.Options.Triggers)
			assert.True(t, msg.Options.PreserveUnknown)
			assert.Equal(t, schema.KindClass, msg.Options.Type)
			assert.Equal(t, "A person in the address book.", msg.Comments)

			var ids []int32
			for _, f := range msg.FieldsByID() {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, []int32{1, 2, 3, 4, 16, 17, 20, 21}, ids)

			email := msg.Fields[3]
			assert.Equal(t, schema.RuleOptional, email.Rule)
			assert.True(t, email.HasDefault)
			assert.Equal(t, "nobody@example.com", email.Default)

			phone := msg.Fields[4]
			assert.Equal(t, schema.RuleRepeated, phone.Rule)
			assert.Equal(t, schema.KindMessage, phone.Type.Kind)
			assert.Equal(t, "personal.Person.PhoneNumber", phone.Type.Message.FullName())
			assert.Equal(t, schema.KindStruct, phone.Type.Message.Options.Type)

			created := msg.Fields[16]
			assert.Equal(t, schema.KindMessage, created.Type.Kind)
			assert.Equal(t, "common.Stamp", created.Type.Message.FullName())

			assert.True(t, msg.Fields[17].Packed)
			assert.Equal(t, schema.RuleOptional, msg.Fields[20].Rule)

			phoneType := phone.Type.Message.Fields[2]
			assert.Equal(t, schema.KindEnum, phoneType.Type.Kind)
			assert.Equal(t, "HOME", phoneType.Default)
			assert.Equal(t, "MOBILE", phoneType.Type.Enum.First().Name)

			// proto3 packs repeated scalars and enums, never strings.
			stamp, err := registry.GetMessage("Stamp")
			require.NoError(t, err)
			assert.Equal(t, schema.RuleOptional, stamp.Fields[1].Rule)
			assert.True(t, stamp.Fields[2].Packed)
			assert.False(t, stamp.Fields[3].Packed)
		})
	}
}

func TestLoadSchemaFromFile_Unsupported(t *testing.T) {
	tests := []struct {
		name  string
		proto string
	}{
		{
			name: "map field",
			proto: `syntax = "proto3";
message M { map<string, int32> counts = 1; }`,
		},
		{
			name: "extend",
			proto: `syntax = "proto2";
message M { extensions 100 to 200; }
extend M { optional int32 extra = 100; }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProtos(t, map[string]string{"m.proto": tt.proto})
			registry := NewRegistry([]string{dir})
			err := registry.LoadSchemaFromFile("m.proto")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupported), "got %v", err)
		})
	}
}

func TestLoadSchemaFromFile_DuplicateFieldID(t *testing.T) {
	dir := writeProtos(t, map[string]string{"dup.proto": `syntax = "proto2";
message Dup {
  optional int32 a = 1;
  optional int32 b = 1;
}`})

	registry := NewRegistry([]string{dir})
	err := registry.LoadSchemaFromFile("dup.proto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reuses id 1")
}

func TestLoadSchemaFromFile_UnresolvedTypeIsKept(t *testing.T) {
	dir := writeProtos(t, map[string]string{"u.proto": `syntax = "proto2";
package u;
message U { optional Missing m = 1; }`})

	registry := NewRegistry([]string{dir})
	require.NoError(t, registry.LoadSchemaFromFile("u.proto"))

	msg, err := registry.GetMessage("u.U")
	require.NoError(t, err)
	assert.Equal(t, schema.KindUnresolved, msg.Fields[1].Type.Kind)
	assert.Equal(t, "Missing", msg.Fields[1].Type.TypeName)
}

func TestGoPackageDefaults(t *testing.T) {
	registry := NewRegistry(nil, WithGoPackagePrefix("example.com/out/"))

	f := &schema.File{Path: "a/b/thing.proto", Package: "acme.v1"}
	registry.goPackage(f, "")
	assert.Equal(t, "example.com/out/a/b", f.GoImportPath)
	assert.Equal(t, "v1", f.GoPackageName)

	f = &schema.File{Path: "thing-two.proto"}
	registry.goPackage(f, "")
	assert.Equal(t, "example.com/out", f.GoImportPath)
	assert.Equal(t, "thing_two", f.GoPackageName)

	f = &schema.File{Path: "x.proto"}
	registry.goPackage(f, "example.com/x/v2")
	assert.Equal(t, "example.com/x/v2", f.GoImportPath)
	assert.Equal(t, "v2", f.GoPackageName)
}

func TestGetMessage_NotFound(t *testing.T) {
	registry := NewRegistry(nil)

	_, err := registry.GetMessage("NonExistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message not found")

	_, err = registry.GetEnum("NonExistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enum not found")
}

func TestGetReferencedType(t *testing.T) {
	entities := map[string]struct{}{
		"pkg.Outer":             {},
		"pkg.Outer.Inner":       {},
		"pkg.Inner":             {},
		"pkg.Outer.Inner.Leaf":  {},
		"other.Shared":          {},
		"pkg.Outer.Inner.Other": {},
	}

	tests := []struct {
		typeName string
		prefix   string
		expected string
		wantErr  bool
	}{
		{"Inner", "pkg.Outer", "pkg.Outer.Inner", false},
		{"Inner", "pkg.Other", "pkg.Inner", false},
		{"Leaf", "pkg.Outer.Inner", "pkg.Outer.Inner.Leaf", false},
		{"Inner.Leaf", "pkg.Outer", "pkg.Outer.Inner.Leaf", false},
		{".pkg.Inner", "pkg.Outer", "pkg.Inner", false},
		{"other.Shared", "pkg.Outer", "other.Shared", false},
		{".Inner", "pkg.Outer", "", true},
		{"Nope", "pkg.Outer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"@"+tt.prefix, func(t *testing.T) {
			got, err := getReferencedType(tt.typeName, tt.prefix, entities)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDirectives(t *testing.T) {
	opts, doc, err := parseDirectives([]string{
		"// Doc line one.",
		"//: type = interface",
		"//: access = internal",
		"//: external",
		"//: triggers = false",
		"//: preserveunknown=true",
		"// Doc line two.",
	})
	require.NoError(t, err)
	assert.Equal(t, schema.MessageOptions{
		Type:            schema.KindInterface,
		Access:          schema.AccessInternal,
		External:        true,
		Triggers:        false,
		PreserveUnknown: true,
	}, opts)
	assert.Equal(t, "Doc line one.\nDoc line two.", doc)

	// Descriptor comments arrive without the comment markers.
	opts, _, err = parseDirectives(commentLines(" : type = struct\n"))
	require.NoError(t, err)
	assert.Equal(t, schema.KindStruct, opts.Type)

	for _, bad := range []string{"//: type = record", "//: access = friend", "//: color = red", "//: external = maybe"} {
		_, _, err := parseDirectives([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"abc"`:       "abc",
		`'abc'`:       "abc",
		`"a\"b"`:      `a"b`,
		`'it\'s'`:     "it's",
		`"tab\there"`: "tab\there",
		`42`:          "42",
		`HOME`:        "HOME",
		`-inf`:        "-inf",
	}
	for in, want := range tests {
		if got := unquote(in); got != want {
			t.Errorf("unquote(%s) = %q, expected %q", in, got, want)
		}
	}
	assert.False(t, strings.Contains(unquote(`"x"`), `"`))
}
