package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/protoserial/schema"
)

// LoadSchemaFromFile parses protoFile, found through ProtoDirectories, and
// every file it imports, then resolves type references across all files
// loaded so far.
func (r *Registry) LoadSchemaFromFile(protoFile string) error {
	paths, err := r.getAllProtoInfo(protoFile)
	if err != nil {
		return err
	}

	implicitPacked := make(map[*schema.Field]struct{})
	for i, fullPath := range paths {
		entity := r.protoEntities[fullPath]
		f, err := convertProto(entity.relPath, r.parsedProtoBody[fullPath], implicitPacked)
		if err != nil {
			return err
		}
		if _, ok := r.byPath[f.Path]; !ok {
			r.goPackage(f, goPackageOf(r.parsedProtoBody[fullPath]))
		}
		if err := r.addFile(f, i == len(paths)-1); err != nil {
			return fmt.Errorf("failed to load %s: %w", f.Path, err)
		}
	}

	r.resolveTypes()

	// proto3 packs repeated scalars and enums unless told otherwise; whether a
	// named type is an enum is only known once references are resolved.
	for field := range implicitPacked {
		switch field.Type.Kind {
		case schema.KindEnum:
			field.Packed = true
		case schema.KindPrimitive:
			field.Packed = schema.IsPackedType(field.Type.PrimitiveType)
		}
	}

	level.Info(r.logger).Log("msg", "loaded schema", "file", protoFile, "files", len(paths))
	return nil
}

func goPackageOf(p *protoparserparser.Proto) string {
	for _, body := range p.ProtoBody {
		if o, ok := body.(*protoparserparser.Option); ok && o.OptionName == "go_package" {
			return unquote(o.Constant)
		}
	}
	return ""
}

// convertProto turns a go-protoparser AST into the schema model. Repeated
// fields of a proto3 file without an explicit packed option are collected in
// implicitPacked.
func convertProto(relPath string, p *protoparserparser.Proto, implicitPacked map[*schema.Field]struct{}) (*schema.File, error) {
	f := &schema.File{
		Path:   relPath,
		Syntax: "proto2",
	}
	if p.Syntax != nil {
		f.Syntax = strings.Trim(p.Syntax.ProtobufVersion, `"'`)
	}

	c := &protoConverter{file: f, implicitPacked: implicitPacked}
	for _, body := range p.ProtoBody {
		switch b := body.(type) {
		case *protoparserparser.Package:
			f.Package = b.Name
		case *protoparserparser.Import:
			f.Imports = append(f.Imports, strings.Trim(b.Location, `"'`))
		case *protoparserparser.Message:
			msg, err := c.message(b, nil)
			if err != nil {
				return nil, err
			}
			f.Messages = append(f.Messages, msg)
		case *protoparserparser.Enum:
			enum, err := c.enum(b, nil)
			if err != nil {
				return nil, err
			}
			f.Enums = append(f.Enums, enum)
		case *protoparserparser.Extend:
			return nil, fmt.Errorf("%s: extend %s: %w", relPath, b.MessageType, ErrUnsupported)
		}
	}

	return f, nil
}

type protoConverter struct {
	file           *schema.File
	implicitPacked map[*schema.Field]struct{}
}

func (c *protoConverter) message(m *protoparserparser.Message, parent *schema.Message) (*schema.Message, error) {
	msg := schema.NewMessage(m.MessageName, parent, c.file)

	opts, doc, err := parseDirectives(rawComments(m.Comments))
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", msg.FullName(), err)
	}
	msg.Options = opts
	msg.Comments = doc

	for _, body := range m.MessageBody {
		switch b := body.(type) {
		case *protoparserparser.Field:
			rule := schema.RuleOptional
			switch {
			case b.IsRepeated:
				rule = schema.RuleRepeated
			case b.IsRequired:
				rule = schema.RuleRequired
			}
			if err := c.addField(msg, b.FieldName, b.FieldNumber, b.Type, rule, b.FieldOptions, b.Comments); err != nil {
				return nil, err
			}
		case *protoparserparser.Oneof:
			// Members of a oneof are plain optional fields here; at most
			// one of them is set on the wire.
			for _, of := range b.OneofFields {
				if err := c.addField(msg, of.FieldName, of.FieldNumber, of.Type, schema.RuleOptional, of.FieldOptions, of.Comments); err != nil {
					return nil, err
				}
			}
		case *protoparserparser.Message:
			nested, err := c.message(b, msg)
			if err != nil {
				return nil, err
			}
			msg.Messages = append(msg.Messages, nested)
		case *protoparserparser.Enum:
			enum, err := c.enum(b, msg)
			if err != nil {
				return nil, err
			}
			msg.Enums = append(msg.Enums, enum)
		case *protoparserparser.MapField:
			return nil, fmt.Errorf("message %s: map field %s: %w", msg.FullName(), b.MapName, ErrUnsupported)
		case *protoparserparser.GroupField:
			return nil, fmt.Errorf("message %s: group %s: %w", msg.FullName(), b.GroupName, ErrUnsupported)
		case *protoparserparser.Extend:
			return nil, fmt.Errorf("message %s: extend %s: %w", msg.FullName(), b.MessageType, ErrUnsupported)
		}
	}

	return msg, nil
}

func (c *protoConverter) addField(
	msg *schema.Message,
	name, number, typeName string,
	rule schema.FieldRule,
	options []*protoparserparser.FieldOption,
	comments []*protoparserparser.Comment,
) error {
	id, err := strconv.ParseInt(number, 0, 32)
	if err != nil {
		return fmt.Errorf("message %s: field %s: invalid field number %q: %w", msg.FullName(), name, number, err)
	}

	field := &schema.Field{
		Name:     name,
		ID:       int32(id),
		Rule:     rule,
		Comments: strings.Join(trimCommentMarkers(rawComments(comments)), "\n"),
	}
	if p, ok := schema.LookupPrimitive(typeName); ok {
		field.Type = schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: p}
	} else {
		field.Type = schema.FieldType{Kind: schema.KindUnresolved, TypeName: typeName}
	}

	packedSet := false
	for _, opt := range options {
		switch opt.OptionName {
		case "default":
			field.Default = unquote(opt.Constant)
			field.HasDefault = true
		case "packed":
			packed, err := strconv.ParseBool(opt.Constant)
			if err != nil {
				return fmt.Errorf("message %s: field %s: invalid packed option %q", msg.FullName(), name, opt.Constant)
			}
			field.Packed = packed && rule == schema.RuleRepeated
			packedSet = true
		}
	}
	if c.file.Syntax == "proto3" && rule == schema.RuleRepeated && !packedSet {
		c.implicitPacked[field] = struct{}{}
	}

	return msg.AddField(field)
}

func (c *protoConverter) enum(e *protoparserparser.Enum, parent *schema.Message) (*schema.Enum, error) {
	enum := &schema.Enum{
		Name:     e.EnumName,
		Parent:   parent,
		File:     c.file,
		Comments: strings.Join(trimCommentMarkers(rawComments(e.Comments)), "\n"),
	}
	for _, body := range e.EnumBody {
		v, ok := body.(*protoparserparser.EnumField)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v.Number, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("enum %s: value %s: invalid number %q: %w", enum.FullName(), v.Ident, v.Number, err)
		}
		enum.Values = append(enum.Values, &schema.EnumValue{Name: v.Ident, Number: int32(n)})
	}
	return enum, nil
}

func rawComments(comments []*protoparserparser.Comment) []string {
	var lines []string
	for _, c := range comments {
		lines = append(lines, commentLines(c.Raw)...)
	}
	return lines
}

func trimCommentMarkers(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimPrefix(l, "//")
		l = strings.TrimPrefix(l, "/*")
		l = strings.TrimSuffix(l, "*/")
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// unquote strips the quotes of a string constant and resolves its escapes.
// Other constants are returned as written.
func unquote(constant string) string {
	if len(constant) < 2 {
		return constant
	}
	q := constant[0]
	if (q != '"' && q != '\'') || constant[len(constant)-1] != q {
		return constant
	}
	inner := constant[1 : len(constant)-1]
	if q == '\'' {
		inner = strings.ReplaceAll(inner, `\'`, `'`)
		inner = strings.ReplaceAll(inner, `"`, `\"`)
	}
	if s, err := strconv.Unquote(`"` + inner + `"`); err == nil {
		return s
	}
	return inner
}
