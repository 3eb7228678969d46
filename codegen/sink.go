package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
	"google.golang.org/protobuf/compiler/protogen"
)

// Sink receives generated source. It is satisfied by *protogen.GeneratedFile
// and by *GoFile.
type Sink interface {
	// P prints a line. protogen.GoIdent arguments are qualified.
	P(v ...any)
	// QualifiedGoIdent returns the name to use for ident in the generated
	// file, importing its package as needed.
	QualifiedGoIdent(ident protogen.GoIdent) string
}

var _ Sink = (*protogen.GeneratedFile)(nil)

// GoFile is a Sink that produces a standalone Go source file, for use
// outside of a protoc plugin.
type GoFile struct {
	filename     string
	goImportPath protogen.GoImportPath
	buf          bytes.Buffer

	packageNames     map[protogen.GoImportPath]protogen.GoPackageName
	usedPackageNames map[protogen.GoPackageName]bool
}

// NewGoFile creates an empty file that will live in the package at
// goImportPath.
func NewGoFile(filename string, goImportPath protogen.GoImportPath) *GoFile {
	return &GoFile{
		filename:         filename,
		goImportPath:     goImportPath,
		packageNames:     make(map[protogen.GoImportPath]protogen.GoPackageName),
		usedPackageNames: make(map[protogen.GoPackageName]bool),
	}
}

// Filename returns the name the file was created with.
func (g *GoFile) Filename() string { return g.filename }

// P prints a line to the generated output.
func (g *GoFile) P(v ...any) {
	for _, x := range v {
		switch x := x.(type) {
		case protogen.GoIdent:
			fmt.Fprint(&g.buf, g.QualifiedGoIdent(x))
		default:
			fmt.Fprint(&g.buf, x)
		}
	}
	fmt.Fprintln(&g.buf)
}

// QualifiedGoIdent returns the original name if the identifier lives in the
// file's own package, and a package-qualified name otherwise.
func (g *GoFile) QualifiedGoIdent(ident protogen.GoIdent) string {
	if ident.GoImportPath == g.goImportPath {
		return ident.GoName
	}
	if name, ok := g.packageNames[ident.GoImportPath]; ok {
		return string(name) + "." + ident.GoName
	}
	base := cleanPackageName(path.Base(string(ident.GoImportPath)))
	name := base
	for i := 1; g.usedPackageNames[name]; i++ {
		name = base + protogen.GoPackageName(strconv.Itoa(i))
	}
	g.packageNames[ident.GoImportPath] = name
	g.usedPackageNames[name] = true
	return string(name) + "." + ident.GoName
}

// Content returns the formatted source with its import block.
func (g *GoFile) Content() ([]byte, error) {
	src := g.buf.Bytes()

	var importBlock bytes.Buffer
	if len(g.packageNames) > 0 {
		paths := make([]string, 0, len(g.packageNames))
		for p := range g.packageNames {
			paths = append(paths, string(p))
		}
		sort.Strings(paths)

		importBlock.WriteString("\nimport (\n")
		for _, p := range paths {
			name := g.packageNames[protogen.GoImportPath(p)]
			if name == cleanPackageName(path.Base(p)) && string(name) == path.Base(p) {
				fmt.Fprintf(&importBlock, "\t%q\n", p)
			} else {
				fmt.Fprintf(&importBlock, "\t%s %q\n", name, p)
			}
		}
		importBlock.WriteString(")\n")
	}

	// The import block goes right after the package clause.
	var out bytes.Buffer
	inserted := false
	for _, line := range bytes.SplitAfter(src, []byte("\n")) {
		out.Write(line)
		if !inserted && bytes.HasPrefix(line, []byte("package ")) {
			out.Write(importBlock.Bytes())
			inserted = true
		}
	}
	if !inserted {
		return nil, fmt.Errorf("%s: no package clause", g.filename)
	}

	formatted, err := imports.Process(g.filename, out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return out.Bytes(), fmt.Errorf("%s: failed to format generated code: %w", g.filename, err)
	}
	return formatted, nil
}

// cleanPackageName turns an import path element into a usable package name.
func cleanPackageName(name string) protogen.GoPackageName {
	name = strings.Map(func(r rune) rune {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, name)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if token.Lookup(name).IsKeyword() {
		name = "_" + name
	}
	return protogen.GoPackageName(name)
}

// recorder is a Sink that keeps printed lines for later replay to its
// parent. Identifiers are not qualified until replay: QualifiedGoIdent hands
// out a placeholder that replay swaps for the parent's answer, so package
// names are assigned in output order however rendering was scheduled.
type recorder struct {
	parent Sink
	idents []protogen.GoIdent
	lines  [][]any
}

func newRecorder(parent Sink) *recorder {
	return &recorder{parent: parent}
}

func (r *recorder) P(v ...any) {
	line := make([]any, len(v))
	copy(line, v)
	r.lines = append(r.lines, line)
}

func (r *recorder) QualifiedGoIdent(ident protogen.GoIdent) string {
	r.idents = append(r.idents, ident)
	return "\x00" + strconv.Itoa(len(r.idents)-1) + "\x00"
}

// replay prints the recorded lines to the parent sink in order.
func (r *recorder) replay() {
	for _, line := range r.lines {
		args := make([]any, len(line))
		for i, v := range line {
			if s, ok := v.(string); ok {
				v = r.resolve(s)
			}
			args[i] = v
		}
		r.parent.P(args...)
	}
}

func (r *recorder) resolve(s string) string {
	if !strings.Contains(s, "\x00") {
		return s
	}
	parts := strings.Split(s, "\x00")
	for i := 1; i < len(parts); i += 2 {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n >= len(r.idents) {
			continue
		}
		parts[i] = r.parent.QualifiedGoIdent(r.idents[n])
	}
	return strings.Join(parts, "")
}
