// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metaschema holds the draft-04 meta-schema,
// the schema that describes draft-04 schemas.
//
// Checking a schema document against the meta-schema catches
// mistakes such as a non-string "title" or a negative "multipleOf".
// References and composition keywords ("$ref", "anyOf", "allOf",
// "enum") are not evaluated, so the check is structural only.
package metaschema

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
	"github.com/altshiftab/draft04/pkg/validator"
)

//go:embed draft-04.json
var draft04 []byte

// load decodes the meta-schema once.
var load = sync.OnceValues(func() (*schema.Schema, error) {
	s, err := schema.Parse(draft04)
	if err != nil {
		return nil, fmt.Errorf("can't parse meta-schema %q: %v", schema.SchemaID, err)
	}
	return s, nil
})

// Schema returns the draft-04 meta-schema.
// The result is shared and must not be modified.
func Schema() (*schema.Schema, error) {
	return load()
}

// Validator returns a validator for the meta-schema.
func Validator() (*validator.Validator, error) {
	s, err := load()
	if err != nil {
		return nil, err
	}
	return validator.Default(s)
}

// Check reports every way in which the schema document v
// fails the meta-schema.
func Check(v jsonvalue.Value) error {
	mv, err := Validator()
	if err != nil {
		return err
	}
	return mv.ValidateAll(v)
}
