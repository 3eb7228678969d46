package codegen

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
)

const commentWidth = 97 // leave room for "// "

// codeWriter prints statements to a Sink and keeps track of open scopes.
// Indentation is left to the formatter.
type codeWriter struct {
	sink  Sink
	depth int
	err   error
}

func newCodeWriter(sink Sink) *codeWriter {
	return &codeWriter{sink: sink}
}

// P prints a line.
func (w *codeWriter) P(v ...any) {
	w.sink.P(v...)
}

// Q returns the qualified name of ident.
func (w *codeWriter) Q(ident protogen.GoIdent) string {
	return w.sink.QualifiedGoIdent(ident)
}

// Comment prints a single line comment.
func (w *codeWriter) Comment(format string, args ...any) {
	w.P("// ", fmt.Sprintf(format, args...))
}

// Doc prints text as a wrapped comment block. Blank lines in text are kept.
func (w *codeWriter) Doc(text string) {
	for i, para := range strings.Split(strings.TrimSpace(text), "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			if i > 0 {
				w.P("//")
			}
			continue
		}
		wrapComments(w.sink, para)
	}
}

// Open prints a line ending in an opening brace and enters its scope.
func (w *codeWriter) Open(v ...any) {
	w.P(append(v, " {")...)
	w.depth++
}

// Block opens a bare block.
func (w *codeWriter) Block() {
	w.P("{")
	w.depth++
}

// Close leaves the innermost scope.
func (w *codeWriter) Close() {
	if w.depth == 0 {
		w.fail("unbalanced closing brace")
		return
	}
	w.depth--
	w.P("}")
}

// Else closes the current if block and opens its else branch.
func (w *codeWriter) Else() {
	w.P("} else {")
}

func (w *codeWriter) If(cond ...any) {
	w.Open(append([]any{"if "}, cond...)...)
}

func (w *codeWriter) For(clause ...any) {
	if len(clause) == 0 {
		w.Open("for")
		return
	}
	w.Open(append([]any{"for "}, clause...)...)
}

func (w *codeWriter) Switch(tag ...any) {
	w.Open(append([]any{"switch "}, tag...)...)
}

// Case prints a case clause. Its statements follow until the next Case or
// the Close of the switch.
func (w *codeWriter) Case(v ...any) {
	w.P(append([]any{"case "}, v...)...)
}

func (w *codeWriter) Func(signature ...any) {
	w.Open(append([]any{"func "}, signature...)...)
}

// ReturnIfErr prints the usual error check, returning what ret yields.
func (w *codeWriter) ReturnIfErr(ret ...any) {
	w.If("err != nil")
	w.P(append([]any{"return "}, ret...)...)
	w.Close()
}

func (w *codeWriter) fail(msg string) {
	if w.err == nil {
		w.err = fmt.Errorf("codegen: %s", msg)
	}
}

// Done reports an unbalanced scope or an earlier failure.
func (w *codeWriter) Done() error {
	if w.err != nil {
		return w.err
	}
	if w.depth != 0 {
		return fmt.Errorf("codegen: %d unclosed scopes", w.depth)
	}
	return nil
}

// wrapComments prints s as comment lines no wider than commentWidth.
func wrapComments(sink Sink, s string) {
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+len(word)+1 > commentWidth {
			sink.P("// ", line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		sink.P("// ", line.String())
	}
}
