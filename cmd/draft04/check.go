// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonpointer"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
	"github.com/altshiftab/draft04/pkg/validator"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a schema file", cli.ErrUsage)
	}

	schemaData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading schema: %w", err)
	}
	v, err := loadValidator(cfg, schemaData, cfg.logger(stderr))
	if err != nil {
		return fmt.Errorf("error loading schema %s: %w", args[0], err)
	}

	p := newPrinter(cc.Out)
	failed := false
	if len(args) == 1 {
		data, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		ok, err := checkDocument(cfg, v, p, "-", data)
		if err != nil {
			return err
		}
		failed = !ok
	}
	for _, name := range args[1:] {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		ok, err := checkDocument(cfg, v, p, name, data)
		if err != nil {
			return err
		}
		failed = failed || !ok
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// loadValidator decodes the schema, selects the -at sub-schema
// and compiles it.
func loadValidator(cfg *CheckConfig, data []byte, logger *slog.Logger) (*validator.Validator, error) {
	parse := schema.Parse
	if cfg.Y {
		parse = schema.ParseYAML
	}
	s, err := parse(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("schema parse: %w", err))
	}
	if cfg.At != "" {
		s, err = jsonpointer.DerefSchema(s, cfg.At)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("schema deref: %w", err))
		}
	}
	v, err := validator.New(s, cfg.validatorOpts(logger)...)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("validator new: %w", err))
	}
	return v, nil
}

// checkDocument validates one document and prints the outcome.
// It reports whether the document is valid. The error result is
// for documents that cannot be decoded.
func checkDocument(cfg *CheckConfig, v *validator.Validator, p *printer, name string, data []byte) (bool, error) {
	parse := jsonvalue.Parse
	if cfg.Y {
		parse = jsonvalue.ParseYAML
	}
	val, err := parse(data)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", name, err)
	}

	if cfg.All {
		err = v.ValidateAll(val)
	} else {
		err = v.Validate(val)
	}
	if err == nil {
		p.ok(name)
		return true, nil
	}
	p.fail(name, validerr.Errs(err))
	return false, nil
}

// printer writes check results, in color on a terminal.
type printer struct {
	w              io.Writer
	good, bad, loc *color.Color
}

func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:    w,
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed, color.Bold),
		loc:  color.New(color.FgCyan),
	}
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	for _, c := range []*color.Color{p.good, p.bad, p.loc} {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) ok(name string) {
	fmt.Fprintf(p.w, "%s %s\n", p.good.Sprint("ok  "), name)
}

func (p *printer) fail(name string, errs []*validerr.ValidationError) {
	fmt.Fprintf(p.w, "%s %s\n", p.bad.Sprint("FAIL"), name)
	for _, ve := range errs {
		fmt.Fprintf(p.w, "\t%s %s: %s\n", p.loc.Sprint(ve.InstanceLocation), ve.KeywordLocation, ve.Message)
	}
}
