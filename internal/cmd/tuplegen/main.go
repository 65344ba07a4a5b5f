// Command tuplegen writes the fixed-arity Zip/Product family of package seqs.
//
//	go run ./internal/cmd/tuplegen --package seqs --max-arity 4 --output seqs/tuple_gen.go
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"seqtools/internal/tuplegen"
)

func main() {
	var (
		cfg      tuplegen.Config
		logLevel string
	)
	fs := pflag.NewFlagSet("tuplegen", pflag.ExitOnError)
	fs.StringVarP(&cfg.Package, "package", "p", tuplegen.DefaultPackage, "package clause of the generated file")
	fs.IntVarP(&cfg.MaxArity, "max-arity", "n", tuplegen.DefaultMaxArity, "largest arity to generate")
	fs.StringVarP(&cfg.Output, "output", "o", tuplegen.DefaultOutput, "file to write")
	fs.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	_ = fs.Parse(os.Args[1:])

	log := newLogger(logLevel)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("tuplegen failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "tuplegen").
		Logger()
}

func run(cfg tuplegen.Config, log zerolog.Logger) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	src, err := tuplegen.Render(cfg, log)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return fmt.Errorf("tuplegen: write %s: %w", cfg.Output, err)
	}

	log.Info().
		Str("package", cfg.Package).
		Int("max_arity", cfg.MaxArity).
		Str("output", cfg.Output).
		Int("bytes", len(src)).
		Msg("generated tuple family")
	return nil
}
