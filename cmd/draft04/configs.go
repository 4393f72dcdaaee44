// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/altshiftab/draft04/pkg/validator"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Main *cli.Command
}

type CheckConfig struct {
	*cli.Command
	*MainConfig

	Y        bool   `cli:"name=y aliases=yaml desc='read the schema and documents as yaml'"`
	All      bool   `cli:"name=all desc='report every failure, not just the first'"`
	Format   bool   `cli:"name=format desc='assert the format keyword'"`
	Adjacent bool   `cli:"name=adjacent desc='uniqueItems only compares neighbouring items'"`
	At       string `cli:"name=at desc='validate against the sub-schema at this json pointer'"`
	V        bool   `cli:"name=v desc='log schema compilation to stderr'"`
}

type LintConfig struct {
	*cli.Command
	*MainConfig

	Y bool `cli:"name=y aliases=yaml desc='read the schemas as yaml'"`
}

type FormatsConfig struct {
	*cli.Command
	*MainConfig
}

// validatorOpts returns the validator options selected by the flags.
func (cfg *CheckConfig) validatorOpts(logger *slog.Logger) []validator.Option {
	opts := []validator.Option{
		validator.WithFormat(cfg.Format),
		validator.WithLogger(logger),
	}
	if cfg.Adjacent {
		opts = append(opts, validator.WithUniqueness(validator.UniqueAdjacent))
	}
	return opts
}

func (cfg *CheckConfig) logger(w io.Writer) *slog.Logger {
	return newLogger(w, cfg.V)
}

// newLogger returns a text logger on w. Warnings are always
// shown; verbose adds debug output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// stderr is where diagnostics go. Tests replace it.
var stderr io.Writer = os.Stderr
