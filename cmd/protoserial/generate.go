package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/anirudhraja/protoserial"
)

func newGenerateCommand(stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()
	var configFile string

	cmd := &cobra.Command{
		Use:   "generate [flags] FILE.proto...",
		Short: "Write a .serial.go file for every given .proto file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.loadConfigFile(configFile, cmd.Flags()); err != nil {
					return err
				}
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, cfg.newLogger(stderr), args)
		},
	}
	cfg.registerFlags(cmd.Flags())
	cmd.Flags().StringVar(&configFile, "config", "", "YAML file providing defaults for the flags")
	return cmd
}

func runGenerate(ctx context.Context, cfg config, logger log.Logger, protoFiles []string) error {
	opts := []protoserial.Option{
		protoserial.WithLogger(logger),
		protoserial.WithParallelism(cfg.Parallel),
	}
	if cfg.GoPackage != "" {
		opts = append(opts, protoserial.WithGoPackagePrefix(cfg.GoPackage))
	}
	ps := protoserial.New(cfg.ProtoPaths, opts...)

	switch cfg.Frontend {
	case frontendProtocompile:
		if err := ps.CompileSchema(ctx, protoFiles...); err != nil {
			return err
		}
	default:
		for _, f := range protoFiles {
			if err := ps.LoadSchemaFromFile(f); err != nil {
				return fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	files, genErr := ps.Generate()
	for _, f := range files {
		path := filepath.Join(cfg.Out, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "wrote file", "path", path, "bytes", len(f.Content))
	}
	return genErr
}
