// Package protoserial generates Go codecs for protobuf messages. Schemas are
// loaded from .proto files into a registry and every loaded file is turned
// into one Go source file holding the types and binary codecs of its
// messages.
package protoserial

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"go.uber.org/multierr"
	"google.golang.org/protobuf/compiler/protogen"

	"github.com/anirudhraja/protoserial/codegen"
	"github.com/anirudhraja/protoserial/registry"
	"github.com/anirudhraja/protoserial/schema"
)

// GeneratedFileSuffix replaces the .proto suffix in the names of generated
// files.
const GeneratedFileSuffix = ".serial.go"

// ===== SCHEMA-DRIVEN CODE GENERATION =====

// Protoserial loads schemas and generates codecs for them.
type Protoserial struct {
	registry  *registry.Registry
	generator *codegen.Generator
}

// GeneratedFile is the Go source produced for one .proto file.
type GeneratedFile struct {
	// Name is the path of the .proto file with GeneratedFileSuffix in place
	// of its extension.
	Name string
	// GoImportPath is the package the file belongs to.
	GoImportPath string
	Content      []byte
}

type options struct {
	logger          log.Logger
	goPackagePrefix string
	parallelism     int
	generatorName   string
}

// Option configures a Protoserial.
type Option func(*options)

// WithLogger sets the logger used by the registry and the generator.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithGoPackagePrefix sets the import path prefix of files that have no
// go_package option.
func WithGoPackagePrefix(prefix string) Option {
	return func(o *options) { o.goPackagePrefix = prefix }
}

// WithParallelism renders up to n declarations of a file concurrently.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// WithGeneratorName sets the tool name written into generated headers.
func WithGeneratorName(name string) Option {
	return func(o *options) { o.generatorName = name }
}

// New creates a Protoserial that resolves imports against importPaths.
func New(importPaths []string, opts ...Option) *Protoserial {
	o := options{
		logger:        log.NewNopLogger(),
		parallelism:   1,
		generatorName: codegen.DefaultGeneratorName,
	}
	for _, opt := range opts {
		opt(&o)
	}

	regOpts := []registry.Option{registry.WithLogger(o.logger)}
	if o.goPackagePrefix != "" {
		regOpts = append(regOpts, registry.WithGoPackagePrefix(o.goPackagePrefix))
	}
	return &Protoserial{
		registry: registry.NewRegistry(importPaths, regOpts...),
		generator: codegen.NewGenerator(
			codegen.WithLogger(o.logger),
			codegen.WithParallelism(o.parallelism),
			codegen.WithGeneratorName(o.generatorName),
		),
	}
}

// LoadSchemaFromFile parses protoFile and its imports with the go-protoparser
// front-end.
func (p *Protoserial) LoadSchemaFromFile(protoFile string) error {
	return p.registry.LoadSchemaFromFile(protoFile)
}

// CompileSchema compiles protoFiles and their imports with protocompile.
func (p *Protoserial) CompileSchema(ctx context.Context, protoFiles ...string) error {
	return p.registry.CompileSchema(ctx, protoFiles...)
}

// Generate produces a file for every schema file loaded explicitly. Files
// that cannot be generated are left out of the result and their errors are
// combined into the returned error.
func (p *Protoserial) Generate() ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  error
	)
	for _, f := range p.registry.Targets() {
		gen, err := p.generate(f)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		files = append(files, gen)
	}
	return files, errs
}

// GenerateFile produces the file for the loaded schema file protoPath.
func (p *Protoserial) GenerateFile(protoPath string) (GeneratedFile, error) {
	f, ok := p.registry.File(protoPath)
	if !ok {
		return GeneratedFile{}, fmt.Errorf("proto file not loaded: %s", protoPath)
	}
	return p.generate(f)
}

func (p *Protoserial) generate(f *schema.File) (GeneratedFile, error) {
	name := strings.TrimSuffix(f.Path, ".proto") + GeneratedFileSuffix
	gf := codegen.NewGoFile(name, protogen.GoImportPath(f.GoImportPath))
	if err := p.generator.GenerateFile(gf, f); err != nil {
		return GeneratedFile{}, err
	}
	content, err := gf.Content()
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("format %s: %w", name, err)
	}
	return GeneratedFile{Name: name, GoImportPath: f.GoImportPath, Content: content}, nil
}

// ===== REGISTRY ACCESS =====

func (p *Protoserial) GetRegistry() *registry.Registry { return p.registry }
func (p *Protoserial) ListMessages() []string          { return p.registry.ListMessages() }
func (p *Protoserial) ListEnums() []string             { return p.registry.ListEnums() }
