// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validator compiles draft-04 schemas into validators.
//
// A [Validator] is built once for a schema with [New] and may then be
// used, concurrently, to check any number of JSON values.
// Building a validator compiles each keyword of the schema into a
// check; sub-schemas for array items and object properties get their
// own validators, so a validator is a tree mirroring the schema tree.
//
// Draft-04 "additionalProperties", "dependencies" and schema-valued
// "additionalItems" are decoded but not enforced; see [Validator.Unenforced].
package validator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/altshiftab/draft04/internal/matcher"
	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

// ValidationError is a single validation failure.
type ValidationError = validerr.ValidationError

// ValidationErrors is a collection of validation failures.
type ValidationErrors = validerr.ValidationErrors

// Uniqueness selects the meaning of "uniqueItems".
type Uniqueness = matcher.Uniqueness

const (
	// UniquePairwise rejects any two equal elements. This is the default.
	UniquePairwise = matcher.UniquePairwise
	// UniqueAdjacent only compares each element with its predecessor.
	UniqueAdjacent = matcher.UniqueAdjacent
)

// Option configures [New].
type Option func(*config)

type config struct {
	format        bool
	unique        Uniqueness
	checkDefaults bool
	logger        *slog.Logger
}

// WithFormat enables assertion of the "format" keyword.
// Only formats with a registered checker are asserted;
// importing the format package registers the draft-04 formats.
func WithFormat(enable bool) Option {
	return func(c *config) { c.format = enable }
}

// WithUniqueness selects how "uniqueItems" compares elements.
func WithUniqueness(u Uniqueness) Option {
	return func(c *config) { c.unique = u }
}

// WithDefaultCheck makes [New] fail if a "default" value
// does not validate against its own schema.
func WithDefaultCheck(enable bool) Option {
	return func(c *config) { c.checkDefaults = enable }
}

// WithLogger sets the logger used while compiling.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Validator checks JSON values against a schema.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	s          *schema.Schema
	matchers   []*matcher.Matcher
	unenforced []string
}

// New compiles a validator for s.
// It returns an error if the schema cannot be compiled,
// for example because a pattern is not a valid regular expression.
// The schema must not be modified afterward.
func New(s *schema.Schema, opts ...Option) (*Validator, error) {
	if s == nil {
		return nil, fmt.Errorf("validator: nil schema")
	}
	cfg := config{unique: UniquePairwise}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	c := &compiler{cfg: cfg, log: cfg.logger}
	v, err := c.compile(s, "#")
	if err != nil {
		return nil, err
	}
	if cfg.checkDefaults {
		if err := c.checkDefaults(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Schema returns the schema the validator was built for.
func (v *Validator) Schema() *schema.Schema { return v.s }

// Title returns the schema title, or its id, or "schema".
func (v *Validator) Title() string {
	if t := v.s.Title(); t != "" {
		return t
	}
	if id := v.s.ID(); id != "" {
		return id
	}
	return "schema"
}

// Len returns the number of compiled checks of the top-level schema.
// An unconstrained schema has none.
func (v *Validator) Len() int { return len(v.matchers) }

// Describe lists the compiled checks of the top-level schema,
// one per line, in evaluation order.
func (v *Validator) Describe() string { return matcher.Describe(v.matchers) }

// Unenforced returns the keywords of the top-level schema that
// restrict values but are not checked by this validator.
func (v *Validator) Unenforced() []string { return v.unenforced }

// Evaluate runs every check in order.
// With [matcher.FirstFailure] it stops at the first failure.
// This implements [matcher.Checker].
func (v *Validator) Evaluate(val jsonvalue.Value, mode matcher.Mode) error {
	var err error
	for _, m := range v.matchers {
		validerr.AddError(&err, m.Match(val, mode), "", "")
		if err != nil && mode == matcher.FirstFailure {
			break
		}
	}
	return err
}

// IsValid reports whether val satisfies the schema.
func (v *Validator) IsValid(val jsonvalue.Value) bool {
	return v.Evaluate(val, matcher.FirstFailure) == nil
}

// Validate returns nil if val satisfies the schema,
// and otherwise the first failure as a [*ValidationError].
func (v *Validator) Validate(val jsonvalue.Value) error {
	errs := validerr.Errs(v.Evaluate(val, matcher.FirstFailure))
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

// ValidateAll returns nil if val satisfies the schema,
// and otherwise every failure as a [*ValidationErrors].
func (v *Validator) ValidateAll(val jsonvalue.Value) error {
	errs := validerr.Errs(v.Evaluate(val, matcher.AllFailures))
	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{Errs: errs}
}

// Report is like [Validator.IsValid], but when val is not valid
// it also writes a line explaining the first failure to w.
func (v *Validator) Report(val jsonvalue.Value, w io.Writer) bool {
	err := v.Validate(val)
	if err == nil {
		return true
	}
	ve := err.(*ValidationError)
	fmt.Fprintf(w, "%s: %s (instance %s)\n", v.Title(), ve.Error(), ve.InstanceLocation)
	return false
}
