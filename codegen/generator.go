// Package codegen turns the schema model into Go source implementing a
// binary protobuf codec for every message.
package codegen

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/protoserial/schema"
)

// DefaultGeneratorName is the name written into the header of generated
// files.
const DefaultGeneratorName = "protoserial"

// Generator emits Go codecs for schema files.
type Generator struct {
	logger      log.Logger
	parallelism int
	name        string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithParallelism renders up to n top-level declarations of a file
// concurrently. Output is identical to sequential generation.
func WithParallelism(n int) Option {
	return func(g *Generator) { g.parallelism = n }
}

// WithGeneratorName sets the tool name written into the file header.
func WithGeneratorName(name string) Option {
	return func(g *Generator) { g.name = name }
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:      log.NewNopLogger(),
		parallelism: 1,
		name:        DefaultGeneratorName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateFile prints the codec of every enum and message in file to sink,
// top-level enums first and then messages in declaration order, each message
// followed by its nested declarations.
//
// Every defect of the file is reported, combined into one error. Nothing is
// printed to sink unless the whole file generates cleanly.
func (g *Generator) GenerateFile(sink Sink, file *schema.File) error {
	if err := checkFileNames(file); err != nil {
		return err
	}

	var units []func(w *codeWriter) error
	for _, e := range file.Enums {
		e := e
		units = append(units, func(w *codeWriter) error {
			genEnum(w, e)
			return nil
		})
	}
	for _, m := range file.Messages {
		m := m
		units = append(units, func(w *codeWriter) error {
			return g.genMessageTree(w, m)
		})
	}

	recorders := make([]*recorder, len(units))
	errs := make([]error, len(units))
	render := func(i int) {
		rec := newRecorder(sink)
		w := newCodeWriter(rec)
		err := units[i](w)
		if err == nil {
			err = w.Done()
		}
		recorders[i], errs[i] = rec, err
	}

	if g.parallelism > 1 {
		var eg errgroup.Group
		eg.SetLimit(g.parallelism)
		for i := range units {
			i := i
			eg.Go(func() error {
				render(i)
				return errs[i]
			})
		}
		// Every error is kept in errs; Wait only reports the first.
		_ = eg.Wait()
	} else {
		for i := range units {
			render(i)
		}
	}

	if err := multierr.Combine(errs...); err != nil {
		level.Warn(g.logger).Log("msg", "file not generated", "file", file.Path, "errors", len(multierr.Errors(err)))
		return err
	}

	sink.P("// Code generated by ", g.name, ". DO NOT EDIT.")
	sink.P("// Source: ", file.Path)
	sink.P()
	sink.P("package ", file.GoPackageName)
	for _, rec := range recorders {
		rec.replay()
	}

	level.Debug(g.logger).Log("msg", "generated file", "file", file.Path, "enums", len(file.Enums), "messages", len(file.Messages))
	return nil
}

// genMessageTree prints m and, after it, its nested enums and messages.
func (g *Generator) genMessageTree(w *codeWriter, m *schema.Message) error {
	var errs []error
	plans, err := planMessage(w, m)
	if err != nil {
		errs = append(errs, err)
	} else {
		mg := &messageGen{w: w, msg: m, names: newMessageNames(m), plans: plans}
		mg.generate()
		level.Debug(g.logger).Log("msg", "generated message", "message", m.FullName(), "fields", len(plans))
	}

	for _, e := range m.Enums {
		genEnum(w, e)
	}
	for _, nested := range m.Messages {
		if err := g.genMessageTree(w, nested); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}
