// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/altshiftab/draft04/internal/metaschema"
	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
	"github.com/altshiftab/draft04/pkg/validator"
	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires at least one schema file", cli.ErrUsage)
	}
	p := newPrinter(cc.Out)
	failed := false
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		ok, err := lintSchema(cfg.Y, p, name, data, stderr)
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

// lintSchema checks one schema document against the meta-schema,
// then compiles it. Compilation problems are printed as failures
// at the schema root. It reports whether the schema is clean.
func lintSchema(yaml bool, p *printer, name string, data []byte, logw io.Writer) (bool, error) {
	parse := jsonvalue.Parse
	if yaml {
		parse = jsonvalue.ParseYAML
	}
	doc, err := parse(data)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", name, err)
	}

	merr := metaschema.Check(doc)
	if merr != nil && !validerr.IsValidationError(merr) {
		return false, merr
	}
	errs := validerr.Errs(merr)
	if len(errs) == 0 {
		s, err := schema.FromValue(doc)
		if err == nil {
			_, err = validator.New(s, validator.WithDefaultCheck(true), validator.WithLogger(newLogger(logw, false)))
		}
		if err != nil {
			errs = append(errs, &validerr.ValidationError{
				Message:          err.Error(),
				KeywordLocation:  "#",
				InstanceLocation: "#",
			})
		}
	}
	if len(errs) > 0 {
		p.fail(name, errs)
		return false, nil
	}
	p.ok(name)
	return true, nil
}
