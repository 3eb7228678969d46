package registry

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/go-kit/log/level"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/anirudhraja/protoserial/schema"
)

// CompileSchema compiles the given files, searched for in ProtoDirectories,
// with protocompile and loads the result. Unlike LoadSchemaFromFile it
// performs full protobuf linking, so schema errors are reported the way
// protoc reports them.
func (r *Registry) CompileSchema(ctx context.Context, protoFiles ...string) error {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: r.ProtoDirectories,
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}

	files, err := compiler.Compile(ctx, protoFiles...)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	targets := make([]protoreflect.FileDescriptor, 0, len(files))
	for _, f := range files {
		targets = append(targets, f)
	}
	return r.LoadFileDescriptors(targets...)
}

// LoadFileDescriptors loads already linked file descriptors, such as those
// handed to a protoc plugin. The given files become generation targets;
// their transitive imports are loaded for type resolution only.
func (r *Registry) LoadFileDescriptors(fds ...protoreflect.FileDescriptor) error {
	visited := make(map[string]struct{})
	isTarget := make(map[string]struct{}, len(fds))
	for _, fd := range fds {
		isTarget[fd.Path()] = struct{}{}
	}

	var visit func(fd protoreflect.FileDescriptor) error
	visit = func(fd protoreflect.FileDescriptor) error {
		if _, ok := visited[fd.Path()]; ok {
			return nil
		}
		visited[fd.Path()] = struct{}{}

		imports := fd.Imports()
		for i := 0; i < imports.Len(); i++ {
			dep := imports.Get(i).FileDescriptor
			// Well-known types ship with the protobuf runtime and have no
			// codecs of their own here.
			if strings.HasPrefix(dep.Path(), "google/protobuf/") {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		_, target := isTarget[fd.Path()]
		f, err := convertDescriptor(fd)
		if err != nil {
			return err
		}
		if _, ok := r.byPath[f.Path]; !ok {
			goPackage := ""
			if opts, ok := fd.Options().(*descriptorpb.FileOptions); ok {
				goPackage = opts.GetGoPackage()
			}
			r.goPackage(f, goPackage)
		}
		if err := r.addFile(f, target); err != nil {
			return fmt.Errorf("failed to load %s: %w", f.Path, err)
		}
		return nil
	}

	for _, fd := range fds {
		if err := visit(fd); err != nil {
			return err
		}
	}

	r.resolveTypes()
	level.Info(r.logger).Log("msg", "loaded file descriptors", "targets", len(fds), "files", len(visited))
	return nil
}

func convertDescriptor(fd protoreflect.FileDescriptor) (*schema.File, error) {
	f := &schema.File{
		Path:    fd.Path(),
		Package: string(fd.Package()),
		Syntax:  fd.Syntax().String(),
	}
	imports := fd.Imports()
	for i := 0; i < imports.Len(); i++ {
		f.Imports = append(f.Imports, imports.Get(i).Path())
	}
	if fd.Extensions().Len() > 0 {
		return nil, fmt.Errorf("%s: extension %s: %w", f.Path, fd.Extensions().Get(0).FullName(), ErrUnsupported)
	}

	locs := fd.SourceLocations()
	messages := fd.Messages()
	for i := 0; i < messages.Len(); i++ {
		msg, err := convertMessageDescriptor(messages.Get(i), nil, f, locs)
		if err != nil {
			return nil, err
		}
		f.Messages = append(f.Messages, msg)
	}
	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		f.Enums = append(f.Enums, convertEnumDescriptor(enums.Get(i), nil, f, locs))
	}
	return f, nil
}

func convertMessageDescriptor(md protoreflect.MessageDescriptor, parent *schema.Message, file *schema.File, locs protoreflect.SourceLocations) (*schema.Message, error) {
	msg := schema.NewMessage(string(md.Name()), parent, file)

	opts, doc, err := parseDirectives(commentLines(locs.ByDescriptor(md).LeadingComments))
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", md.FullName(), err)
	}
	msg.Options = opts
	msg.Comments = doc

	if md.Extensions().Len() > 0 {
		return nil, fmt.Errorf("message %s: extension %s: %w", md.FullName(), md.Extensions().Get(0).Name(), ErrUnsupported)
	}

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.IsMap() {
			return nil, fmt.Errorf("message %s: map field %s: %w", md.FullName(), fd.Name(), ErrUnsupported)
		}
		if fd.Kind() == protoreflect.GroupKind {
			return nil, fmt.Errorf("message %s: group %s: %w", md.FullName(), fd.Name(), ErrUnsupported)
		}

		field := &schema.Field{
			Name:     string(fd.Name()),
			ID:       int32(fd.Number()),
			Rule:     schema.RuleOptional,
			Packed:   fd.IsPacked(),
			Comments: strings.TrimSpace(locs.ByDescriptor(fd).LeadingComments),
		}
		switch fd.Cardinality() {
		case protoreflect.Repeated:
			field.Rule = schema.RuleRepeated
		case protoreflect.Required:
			field.Rule = schema.RuleRequired
		}

		switch fd.Kind() {
		case protoreflect.MessageKind:
			field.Type = schema.FieldType{Kind: schema.KindUnresolved, TypeName: "." + string(fd.Message().FullName())}
		case protoreflect.EnumKind:
			field.Type = schema.FieldType{Kind: schema.KindUnresolved, TypeName: "." + string(fd.Enum().FullName())}
		default:
			p, ok := schema.LookupPrimitive(fd.Kind().String())
			if !ok {
				return nil, fmt.Errorf("message %s: field %s: unknown kind %s", md.FullName(), fd.Name(), fd.Kind())
			}
			field.Type = schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: p}
		}

		if fd.HasDefault() {
			field.HasDefault = true
			field.Default = descriptorDefault(fd)
		}

		if err := msg.AddField(field); err != nil {
			return nil, err
		}
	}

	nested := md.Messages()
	for i := 0; i < nested.Len(); i++ {
		if nested.Get(i).IsMapEntry() {
			continue
		}
		child, err := convertMessageDescriptor(nested.Get(i), msg, file, locs)
		if err != nil {
			return nil, err
		}
		msg.Messages = append(msg.Messages, child)
	}
	enums := md.Enums()
	for i := 0; i < enums.Len(); i++ {
		msg.Enums = append(msg.Enums, convertEnumDescriptor(enums.Get(i), msg, file, locs))
	}
	return msg, nil
}

func convertEnumDescriptor(ed protoreflect.EnumDescriptor, parent *schema.Message, file *schema.File, locs protoreflect.SourceLocations) *schema.Enum {
	enum := &schema.Enum{
		Name:     string(ed.Name()),
		Parent:   parent,
		File:     file,
		Comments: strings.TrimSpace(locs.ByDescriptor(ed).LeadingComments),
	}
	values := ed.Values()
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		enum.Values = append(enum.Values, &schema.EnumValue{Name: string(v.Name()), Number: int32(v.Number())})
	}
	return enum
}

// descriptorDefault renders a default value the way the schema model keeps
// it: the unquoted text of the literal, or the value name for enums.
func descriptorDefault(fd protoreflect.FieldDescriptor) string {
	switch fd.Kind() {
	case protoreflect.EnumKind:
		return string(fd.DefaultEnumValue().Name())
	case protoreflect.BytesKind:
		return string(fd.Default().Bytes())
	case protoreflect.StringKind:
		return fd.Default().String()
	case protoreflect.BoolKind:
		return strconv.FormatBool(fd.Default().Bool())
	default:
		return protodesc.ToFieldDescriptorProto(fd).GetDefaultValue()
	}
}
