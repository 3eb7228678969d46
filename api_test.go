package protoserial

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/protoserial/codegen"
)

const greeterProto = `syntax = "proto2";
package greeter;

enum Mood {
  HAPPY = 0;
  GRUMPY = 1;
}

message Hello {
  required string name = 1;
  optional Mood mood = 2 [default = GRUMPY];
  repeated Hello replies = 3;
}
`

const collidingProto = `syntax = "proto2";
package clash;

message Foo {
  message Bar {}
}

message Foo_Bar {}
`

func writeProtos(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestProtoserial_Generate(t *testing.T) {
	dir := writeProtos(t, map[string]string{"greeter.proto": greeterProto})
	ps := New([]string{dir}, WithGoPackagePrefix("example.com/gen"))
	require.NoError(t, ps.LoadSchemaFromFile("greeter.proto"))

	assert.Equal(t, []string{"greeter.Hello"}, ps.ListMessages())
	assert.Equal(t, []string{"greeter.Mood"}, ps.ListEnums())

	files, err := ps.Generate()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "greeter.serial.go", files[0].Name)
	assert.Equal(t, "example.com/gen", files[0].GoImportPath)

	src := string(files[0].Content)
	_, err = parser.ParseFile(token.NewFileSet(), files[0].Name, src, 0)
	require.NoError(t, err, src)
	assert.Contains(t, src, "// Code generated by protoserial. DO NOT EDIT.")
	assert.Contains(t, src, "package greeter")
	assert.Contains(t, src, "func (m *Hello) Deserialize(r wire.Stream) error {")
	assert.Contains(t, src, "m.Mood = Mood_GRUMPY")
}

func TestProtoserial_CompileSchema(t *testing.T) {
	dir := writeProtos(t, map[string]string{"greeter.proto": greeterProto})
	ps := New([]string{dir}, WithGeneratorName("protoc-gen-test"), WithParallelism(4))
	require.NoError(t, ps.CompileSchema(context.Background(), "greeter.proto"))

	file, err := ps.GenerateFile("greeter.proto")
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "// Code generated by protoc-gen-test. DO NOT EDIT.")
}

func TestProtoserial_GenerateKeepsGoodFiles(t *testing.T) {
	dir := writeProtos(t, map[string]string{
		"greeter.proto": greeterProto,
		"clash.proto":   collidingProto,
	})
	ps := New([]string{dir})
	require.NoError(t, ps.LoadSchemaFromFile("greeter.proto"))
	require.NoError(t, ps.LoadSchemaFromFile("clash.proto"))

	files, err := ps.Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, codegen.ErrNameCollision)
	require.Len(t, files, 1)
	assert.Equal(t, "greeter.serial.go", files[0].Name)
}

func TestProtoserial_GenerateFileNotLoaded(t *testing.T) {
	ps := New(nil)
	_, err := ps.GenerateFile("missing.proto")
	assert.EqualError(t, err, "proto file not loaded: missing.proto")
}
