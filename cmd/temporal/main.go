// Package main provides the temporal command, which converts host instants
// to temporal values and temporal literals to host dates.
//
// Usage:
//
//	temporal [flags] INPUT
//
// By default INPUT is an RFC 3339 timestamp or integer epoch milliseconds,
// read as the kind named by --kind in the zone named by --tz. With
// --to-standard, INPUT is the canonical string form of the kind instead.
// Every flag may also be set with a TEMPORAL_* environment variable, such as
// TEMPORAL_TZ for --tz, or in the file named by TEMPORAL_CONFIG.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/theory/dbtime/internal/config"
	"github.com/theory/dbtime/internal/playground"
	"github.com/theory/dbtime/temporal"
	"github.com/theory/dbtime/temporal/stddate"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	cfg, err := config.Load("temporal", args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		log.Error().Err(err).Msg("load config")
		return exitUsage
	}

	lvl, err := cfg.Level()
	if err != nil {
		log.Error().Err(err).Msg("load config")
		return exitUsage
	}
	log = log.Level(lvl)

	if len(cfg.Args) != 1 {
		log.Error().Int("args", len(cfg.Args)).Msg("expected exactly one INPUT argument")
		return exitUsage
	}

	kind, err := temporal.ParseKind(cfg.Kind)
	if err != nil {
		log.Error().Err(err).Msg("kind")
		return exitUsage
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Error().Err(err).Msg("time zone")
		return exitUsage
	}
	ctx = stddate.ContextWithTZ(log.WithContext(ctx), loc)

	res, err := playground.Convert(ctx, cfg.Args[0], kind, cfg.ToStandard)
	if err != nil {
		log.Error().Err(err).Msg("convert")
		return exitError
	}

	out, err := playground.Render(res, cfg.Indent)
	if err != nil {
		log.Error().Err(err).Msg("render")
		return exitError
	}
	//nolint:errcheck
	fmt.Fprint(stdout, out)
	return exitOK
}
