// protoc-gen-go-serial is a plugin for the protobuf compiler that writes a
// .serial.go file holding the types and codecs of every message of the files
// it is asked to generate.
//
//	protoc --go-serial_out=. --go-serial_opt=paths=source_relative example.proto
//
// The generator_name parameter replaces the tool name in the header of the
// generated files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/anirudhraja/protoserial/codegen"
	"github.com/anirudhraja/protoserial/registry"
)

const (
	generatedFilenameExtension = ".serial.go"
	generatorNameFlagName      = "generator_name"

	usage = "Run by protoc as --go-serial_out=DIR.\n\nFlags:\n  -h, --help\tPrint this help and exit.\n      --version\tPrint the version and exit."
)

// version is set at link time.
var version = "dev"

func main() {
	if len(os.Args) == 2 && os.Args[1] == "--version" {
		fmt.Fprintln(os.Stdout, version)
		os.Exit(0)
	}
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(0)
	}
	if len(os.Args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	var flagSet flag.FlagSet
	generatorName := flagSet.String(
		generatorNameFlagName,
		"protoc-gen-go-serial",
		"Name written into the header of generated files.",
	)
	logger := level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), level.AllowWarn())

	protogen.Options{
		ParamFunc: flagSet.Set,
	}.Run(func(plugin *protogen.Plugin) error {
		return generate(plugin, *generatorName, logger)
	})
}

func generate(plugin *protogen.Plugin, generatorName string, logger log.Logger) error {
	plugin.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

	var targets []protoreflect.FileDescriptor
	for _, file := range plugin.Files {
		if file.Generate {
			targets = append(targets, file.Desc)
		}
	}
	reg := registry.NewRegistry(nil, registry.WithLogger(logger))
	if err := reg.LoadFileDescriptors(targets...); err != nil {
		return err
	}

	// protoc decides the Go packages, so its answer replaces whatever the
	// registry derived from go_package.
	for _, file := range plugin.Files {
		if f, ok := reg.File(file.Desc.Path()); ok {
			f.GoImportPath = string(file.GoImportPath)
			f.GoPackageName = string(file.GoPackageName)
		}
	}

	gen := codegen.NewGenerator(
		codegen.WithLogger(logger),
		codegen.WithGeneratorName(generatorName),
	)
	for _, file := range plugin.Files {
		if !file.Generate {
			continue
		}
		f, ok := reg.File(file.Desc.Path())
		if !ok {
			return fmt.Errorf("%s: not loaded", file.Desc.Path())
		}
		g := plugin.NewGeneratedFile(file.GeneratedFilenamePrefix+generatedFilenameExtension, file.GoImportPath)
		if err := gen.GenerateFile(g, f); err != nil {
			g.Skip()
			return err
		}
	}
	return nil
}
