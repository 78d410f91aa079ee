// Copyright 2020 Aleksandr Demakin. All rights reserved.

// expgen writes a Go file with constants equal to cexp.Exp of the given arguments.
// It is meant to be run by go generate, so that exp-derived values are fixed at build time:
//
//	//go:generate go run github.com/avdva/cexp/cmd/expgen -p decay -o decay_gen.go -c HalfLife=-0.6931471805599453
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options are the command line flags of a single expgen run.
type options struct {
	cfg      config
	defs     []string
	verify   bool
	logLevel string
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "expgen",
		Short: "expgen generates Go constants holding exp(x) for the given arguments.",
		Example: `expgen \
	--package decay \
	--output decay_gen.go \
	--type float32 \
	--const HalfLife=-0.6931471805599453 \
	--const Growth=2.5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.cfg.pkg, "package", "p", "", "package name of the generated file")
	cmd.Flags().StringVarP(&opts.cfg.output, "output", "o", "", "path of the generated file")
	cmd.Flags().StringVarP(&opts.cfg.typeName, "type", "t", "float64", "type of the constants, float32 or float64")
	cmd.Flags().StringArrayVarP(&opts.defs, "const", "c", nil, "constant as Name=x, can be repeated")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "ensure that the generated file is up to date instead of writing it")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func run(w io.Writer, opts *options) error {
	log, err := newLogger(w, opts.logLevel)
	if err != nil {
		return err
	}
	cfg := opts.cfg
	if cfg.constants, err = parseConstants(opts.defs); err != nil {
		return err
	}
	file, err := generate(cfg, log)
	if err != nil {
		return err
	}
	if opts.verify {
		if err := verifyFileOnDisk(cfg.output, file); err != nil {
			return err
		}
		log.Info().Str("file", cfg.output).Int("constants", len(cfg.constants)).Msg("file OK")
		return nil
	}
	if err := file.Save(cfg.output); err != nil {
		return err
	}
	log.Info().Str("file", cfg.output).Int("constants", len(cfg.constants)).Msg("saved")
	return nil
}

func main() {
	if err := newCommand().Execute(); err != nil {
		log, _ := newLogger(os.Stderr, zerolog.LevelErrorValue)
		log.Error().Err(err).Msg("expgen failed")
		os.Exit(1)
	}
}
