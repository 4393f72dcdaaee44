// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtype defines a few helpers for schema.ArgType.
// These are used in builder diagnostics.
package argtype

import (
	"fmt"

	"github.com/altshiftab/draft04/pkg/schema"
)

// nameToString maps [schema.ArgType] to the suffix of the
// builder method that adds a keyword of that type.
var nameToString = map[schema.ArgType]string{
	schema.ArgTypeBool:             "Bool",
	schema.ArgTypeString:           "String",
	schema.ArgTypeStrings:          "Strings",
	schema.ArgTypeStringOrStrings:  "StringOrStrings",
	schema.ArgTypeInt:              "Int",
	schema.ArgTypeFloat:            "Float",
	schema.ArgTypeSchema:           "Schema",
	schema.ArgTypeMapSchema:        "MapSchema",
	schema.ArgTypeSchemaOrSchemas:  "SchemaOrSchemas",
	schema.ArgTypeBoolOrSchema:     "BoolOrSchema",
	schema.ArgTypeMapArrayOrSchema: "MapArrayOrSchema",
	schema.ArgTypeAny:              "Any",
}

// Name returns the name of a [schema.ArgType].
func Name(sat schema.ArgType) string {
	if n, ok := nameToString[sat]; ok {
		return n
	}
	panic(fmt.Sprintf("unexpected ArgType value %d", sat))
}

// nameToGoType maps [schema.ArgType] to the Go type a builder
// method takes for it.
var nameToGoType = map[schema.ArgType]string{
	schema.ArgTypeBool:             "bool",
	schema.ArgTypeString:           "string",
	schema.ArgTypeStrings:          "[]string",
	schema.ArgTypeStringOrStrings:  "schema.PartStringOrStrings",
	schema.ArgTypeInt:              "int64",
	schema.ArgTypeFloat:            "float64",
	schema.ArgTypeSchema:           "*schema.Schema",
	schema.ArgTypeMapSchema:        "schema.PartMapSchema",
	schema.ArgTypeSchemaOrSchemas:  "schema.PartSchemaOrSchemas",
	schema.ArgTypeBoolOrSchema:     "schema.PartBoolOrSchema",
	schema.ArgTypeMapArrayOrSchema: "schema.PartMapArrayOrSchema",
	schema.ArgTypeAny:              "jsonvalue.Value",
}

// GoType returns the Go type of a [schema.ArgType], as a string.
func GoType(sat schema.ArgType) string {
	if t, ok := nameToGoType[sat]; ok {
		return t
	}
	panic(fmt.Sprintf("unexpected ArgType %d", sat))
}
