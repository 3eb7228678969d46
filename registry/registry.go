package registry

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/protoserial/schema"
)

// ErrUnsupported is returned for schema constructs the generator cannot
// produce codecs for: map fields, groups and extensions.
var ErrUnsupported = errors.New("unsupported construct")

// Registry allows us to store the schema of the protobuf messages. It is
// filled by one of the loaders and handed to the generator read-only.
type Registry struct {
	// ProtoDirectories are searched, in order, for imported files.
	ProtoDirectories []string

	goPackagePrefix string
	logger          log.Logger

	files    []*schema.File             // load order, dependencies first
	byPath   map[string]*schema.File    // proto import path -> file
	targets  map[string]struct{}        // files loaded explicitly
	messages map[string]*schema.Message // fully qualified name -> message
	enums    map[string]*schema.Enum    // fully qualified name -> enum

	parsedProtoBody map[string]*protoparserparser.Proto
	protoEntities   map[string]*protoFileEntity
}

// protoFileEntity records what the protoparser loader learnt about a file
// while walking imports.
type protoFileEntity struct {
	relPath string   // path relative to the proto directory it was found in
	imports []string // resolved filesystem paths of imported files
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithGoPackagePrefix sets the import path prefix used for files that carry
// no go_package option. The file's directory is appended to it.
func WithGoPackagePrefix(prefix string) Option {
	return func(r *Registry) { r.goPackagePrefix = strings.TrimSuffix(prefix, "/") }
}

// NewRegistry creates an empty registry searching protoDirectories for imports.
func NewRegistry(protoDirectories []string, opts ...Option) *Registry {
	r := &Registry{
		ProtoDirectories: protoDirectories,
		logger:           log.NewNopLogger(),
		byPath:           make(map[string]*schema.File),
		targets:          make(map[string]struct{}),
		messages:         make(map[string]*schema.Message),
		enums:            make(map[string]*schema.Enum),
		parsedProtoBody:  make(map[string]*protoparserparser.Proto),
		protoEntities:    make(map[string]*protoFileEntity),
	}
	if len(r.ProtoDirectories) == 0 {
		r.ProtoDirectories = []string{"."}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// addFile registers a converted file and all of its declarations. A file
// already present under the same path is left untouched.
func (r *Registry) addFile(f *schema.File, target bool) error {
	if target {
		r.targets[f.Path] = struct{}{}
	}
	if _, ok := r.byPath[f.Path]; ok {
		return nil
	}

	for _, msg := range f.Messages {
		if err := r.registerMessage(msg); err != nil {
			return err
		}
	}
	for _, enum := range f.Enums {
		if err := r.registerEnum(enum); err != nil {
			return err
		}
	}

	r.byPath[f.Path] = f
	r.files = append(r.files, f)
	level.Debug(r.logger).Log("msg", "registered proto file", "path", f.Path, "package", f.Package, "messages", len(f.Messages), "enums", len(f.Enums))
	return nil
}

func (r *Registry) registerMessage(msg *schema.Message) error {
	fullName := msg.FullName()
	if _, ok := r.messages[fullName]; ok {
		return fmt.Errorf("duplicate message %s", fullName)
	}
	if _, ok := r.enums[fullName]; ok {
		return fmt.Errorf("message %s collides with an enum of the same name", fullName)
	}
	r.messages[fullName] = msg

	// Register nested types
	for _, nested := range msg.Messages {
		if err := r.registerMessage(nested); err != nil {
			return err
		}
	}
	for _, enum := range msg.Enums {
		if err := r.registerEnum(enum); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) registerEnum(enum *schema.Enum) error {
	fullName := enum.FullName()
	if _, ok := r.enums[fullName]; ok {
		return fmt.Errorf("duplicate enum %s", fullName)
	}
	if _, ok := r.messages[fullName]; ok {
		return fmt.Errorf("enum %s collides with a message of the same name", fullName)
	}
	r.enums[fullName] = enum
	return nil
}

// resolveTypes binds every field whose type is still a bare reference to the
// message or enum it names. References that match nothing stay unresolved;
// the generator reports them against the field that uses them.
func (r *Registry) resolveTypes() {
	allResolvedEntities := make(map[string]struct{}, len(r.messages)+len(r.enums))
	for name := range r.messages {
		allResolvedEntities[name] = struct{}{}
	}
	for name := range r.enums {
		allResolvedEntities[name] = struct{}{}
	}

	for _, msg := range r.messages {
		for _, field := range msg.Fields {
			if field.Type.Kind != schema.KindUnresolved {
				continue
			}
			name, err := getReferencedType(field.Type.TypeName, msg.FullName(), allResolvedEntities)
			if err != nil {
				level.Debug(r.logger).Log("msg", "unresolved field type", "message", msg.FullName(), "field", field.Name, "err", err)
				continue
			}
			if m, ok := r.messages[name]; ok {
				field.Type.Kind = schema.KindMessage
				field.Type.Message = m
			} else {
				field.Type.Kind = schema.KindEnum
				field.Type.Enum = r.enums[name]
			}
		}
	}
}

// goPackage fills the Go import path and package name of f from the
// go_package option value, or derives them when it is empty.
func (r *Registry) goPackage(f *schema.File, goPackageOption string) {
	if goPackageOption != "" {
		importPath, name, found := strings.Cut(goPackageOption, ";")
		if !found {
			name = path.Base(importPath)
		}
		f.GoImportPath = importPath
		f.GoPackageName = sanitizePackageName(name)
		return
	}

	dir := path.Dir(f.Path)
	switch {
	case r.goPackagePrefix != "" && dir != ".":
		f.GoImportPath = r.goPackagePrefix + "/" + dir
	case r.goPackagePrefix != "":
		f.GoImportPath = r.goPackagePrefix
	default:
		f.GoImportPath = dir
	}

	name := f.Package
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = strings.TrimSuffix(path.Base(f.Path), ".proto")
	}
	f.GoPackageName = sanitizePackageName(name)
}

func sanitizePackageName(name string) string {
	var b strings.Builder
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			b.WriteRune(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return strings.ToLower(b.String())
}

// GetMessage retrieves a message definition by name
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	if msg, exists := r.messages[strings.TrimPrefix(name, ".")]; exists {
		return msg, nil
	}

	// Try without package prefix
	for _, fullName := range r.ListMessages() {
		if strings.HasSuffix(fullName, "."+name) {
			return r.messages[fullName], nil
		}
	}

	return nil, fmt.Errorf("message not found: %s", name)
}

// GetEnum retrieves an enum definition by name
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	if enum, exists := r.enums[strings.TrimPrefix(name, ".")]; exists {
		return enum, nil
	}

	// Try without package prefix
	for _, fullName := range r.ListEnums() {
		if strings.HasSuffix(fullName, "."+name) {
			return r.enums[fullName], nil
		}
	}

	return nil, fmt.Errorf("enum not found: %s", name)
}

// ListMessages returns all registered message names, sorted.
func (r *Registry) ListMessages() []string {
	names := make([]string, 0, len(r.messages))
	for name := range r.messages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListEnums returns all registered enum names, sorted.
func (r *Registry) ListEnums() []string {
	names := make([]string, 0, len(r.enums))
	for name := range r.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Files returns every loaded file, dependencies before their importers.
func (r *Registry) Files() []*schema.File {
	return r.files
}

// Targets returns the files that were loaded explicitly, as opposed to being
// pulled in as imports, in load order.
func (r *Registry) Targets() []*schema.File {
	var out []*schema.File
	for _, f := range r.files {
		if _, ok := r.targets[f.Path]; ok {
			out = append(out, f)
		}
	}
	return out
}

// File returns the file loaded under the given proto import path.
func (r *Registry) File(protoPath string) (*schema.File, bool) {
	f, ok := r.byPath[protoPath]
	return f, ok
}
