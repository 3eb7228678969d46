package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	frontendProtoparser  = "protoparser"
	frontendProtocompile = "protocompile"
)

// config holds the settings of the generate command. A YAML file may provide
// any of them; flags given on the command line take precedence.
type config struct {
	ProtoPaths []string `yaml:"proto_path"`
	Out        string   `yaml:"out"`
	GoPackage  string   `yaml:"go_package"`
	Frontend   string   `yaml:"frontend"`
	Parallel   int      `yaml:"parallel"`
	LogLevel   string   `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		ProtoPaths: []string{"."},
		Out:        ".",
		Frontend:   frontendProtoparser,
		Parallel:   1,
		LogLevel:   "info",
	}
}

func (c *config) registerFlags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&c.ProtoPaths, "proto_path", "I", c.ProtoPaths, "directories searched for imports")
	flags.StringVar(&c.Out, "out", c.Out, "directory the generated files are written to")
	flags.StringVar(&c.GoPackage, "go_package", c.GoPackage, "import path prefix for files without a go_package option")
	flags.StringVar(&c.Frontend, "frontend", c.Frontend, "schema parser: protoparser or protocompile")
	flags.IntVar(&c.Parallel, "parallel", c.Parallel, "declarations of a file rendered concurrently")
	flags.StringVar(&c.LogLevel, "log.level", c.LogLevel, "only log messages with the given severity or above: debug, info, warn, error")
}

// loadConfigFile reads path into a config and copies every setting that was
// not given as a flag into c.
func (c *config) loadConfigFile(path string, flags *pflag.FlagSet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var file config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.ProtoPaths != nil && !flags.Changed("proto_path") {
		c.ProtoPaths = file.ProtoPaths
	}
	if file.Out != "" && !flags.Changed("out") {
		c.Out = file.Out
	}
	if file.GoPackage != "" && !flags.Changed("go_package") {
		c.GoPackage = file.GoPackage
	}
	if file.Frontend != "" && !flags.Changed("frontend") {
		c.Frontend = file.Frontend
	}
	if file.Parallel != 0 && !flags.Changed("parallel") {
		c.Parallel = file.Parallel
	}
	if file.LogLevel != "" && !flags.Changed("log.level") {
		c.LogLevel = file.LogLevel
	}
	return nil
}

func (c *config) validate() error {
	switch c.Frontend {
	case frontendProtoparser, frontendProtocompile:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	_, err := levelOption(c.LogLevel)
	return err
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", name)
}

// newLogger returns a logfmt logger on w filtered by the configured level.
func (c *config) newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	opt, err := levelOption(c.LogLevel)
	if err != nil {
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}
