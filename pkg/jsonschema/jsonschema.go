// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema is the entry point for validating
// JSON documents against draft-04 JSON schemas.
//
// Importing this package registers the draft-04 format checkers.
package jsonschema

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/altshiftab/draft04/internal/metaschema"
	_ "github.com/altshiftab/draft04/pkg/format"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
	"github.com/altshiftab/draft04/pkg/validator"
)

type (
	Schema    = schema.Schema
	Validator = validator.Validator
	Option    = validator.Option
)

// New decodes a JSON schema and compiles its validator.
func New(data []byte, opts ...Option) (*Validator, error) {
	s, err := schema.Parse(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("schema parse: %w", err))
	}
	return compile(s, opts)
}

// NewYAML decodes a schema written in YAML and compiles its validator.
func NewYAML(data []byte, opts ...Option) (*Validator, error) {
	s, err := schema.ParseYAML(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("schema yaml parse: %w", err))
	}
	return compile(s, opts)
}

func compile(s *Schema, opts []Option) (*Validator, error) {
	v, err := validator.New(s, opts...)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("validator new: %w", err))
	}
	return v, nil
}

// Validate decodes a JSON document and validates it with v,
// reporting every failure.
// A document that cannot be decoded is an error
// that is not a validation failure.
func Validate(v *Validator, doc []byte) error {
	val, err := jsonvalue.Parse(doc)
	if err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("document parse: %w", err))
	}
	return v.ValidateAll(val)
}

// ValidateYAML is like [Validate] for a YAML document.
func ValidateYAML(v *Validator, doc []byte) error {
	val, err := jsonvalue.ParseYAML(doc)
	if err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("document yaml parse: %w", err))
	}
	return v.ValidateAll(val)
}

// Lint checks a JSON schema document against the draft-04 meta-schema.
// It returns a [*validator.ValidationErrors] describing every problem
// found, or nil. References and composition keywords in the
// meta-schema are not evaluated, so a clean result does not
// guarantee that [New] succeeds.
func Lint(data []byte) error {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("schema parse: %w", err))
	}
	return metaschema.Check(doc)
}
