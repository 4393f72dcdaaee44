// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema defines the draft-04 JSON schema representation.
//
// A [Schema] is a list of [Part] values, one per keyword, in the order
// the keywords were written. Schemas are decoded with [Parse],
// [ParseYAML] or [FromValue], or built with the builder package.
// The typed accessors such as [Schema.Maximum] report the configured
// constraint, or that the keyword is absent and so unconstrained.
//
// A Schema must not be modified once a validator has been built for it.
package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/altshiftab/draft04/pkg/jsonvalue"
)

// Schema is a draft-04 JSON schema.
//
// If you have an existing Schema, you can edit the Parts list
// before any validator is built for it.
// When adding a new Part it will help to use [Keywords].
type Schema struct {
	// The different elements of this Schema.
	Parts []Part
}

// Clone returns a shallow copy of a Schema.
// Sub-schemas are shared.
func (s *Schema) Clone() *Schema {
	return &Schema{Parts: slices.Clone(s.Parts)}
}

// String returns a somewhat readable representation of a Schema.
// The format differs from JSON output.
// Sub-schemas already being printed are shown as "<cycle>".
func (s *Schema) String() string {
	var sb strings.Builder
	s.format(&sb, make(map[*Schema]bool))
	return sb.String()
}

func (s *Schema) format(sb *strings.Builder, active map[*Schema]bool) {
	if s == nil {
		sb.WriteString("<nil>")
		return
	}
	if active[s] {
		sb.WriteString("<cycle>")
		return
	}
	active[s] = true
	defer delete(active, s)

	sb.WriteString("Schema{")
	for i, part := range s.Parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "{%s ", part.Keyword.Name)
		switch v := part.Value.(type) {
		case PartSchema:
			v.S.format(sb, active)
		case PartSchemaOrSchemas:
			if v.Schema != nil {
				v.Schema.format(sb, active)
			} else {
				sb.WriteByte('[')
				for j, sub := range v.Schemas {
					if j > 0 {
						sb.WriteByte(' ')
					}
					sub.format(sb, active)
				}
				sb.WriteByte(']')
			}
		case PartBoolOrSchema:
			if v.Schema != nil {
				v.Schema.format(sb, active)
			} else {
				fmt.Fprintf(sb, "%t", v.Bool)
			}
		case PartMapSchema:
			sb.WriteString("map[")
			for j, ns := range v {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(ns.Name)
				sb.WriteByte(':')
				ns.Schema.format(sb, active)
			}
			sb.WriteByte(']')
		case PartMapArrayOrSchema:
			sb.WriteString("map[")
			for j, dep := range v {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(dep.Name)
				sb.WriteByte(':')
				if dep.Schema != nil {
					dep.Schema.format(sb, active)
				} else {
					fmt.Fprintf(sb, "%q", dep.Array)
				}
			}
			sb.WriteByte(']')
		case PartAny:
			sb.WriteString(v.V.String())
		default:
			fmt.Fprintf(sb, "%v", v)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
}

// Part is one part of a JSON schema.
// This is a keyword, such as "maximum" or "properties",
// along with the value associated with that keyword in the schema.
type Part struct {
	Keyword *Keyword
	Value   PartValue
}

// MakePart builds a Part.
func MakePart(keyword *Keyword, value PartValue) Part {
	return Part{
		Keyword: keyword,
		Value:   value,
	}
}

// Keyword is a schema keyword.
type Keyword struct {
	// Name is the keyword, such as maximum, items, and so forth.
	Name string

	// ArgType is the type of argument expected.
	ArgType ArgType
}

// PartValue is the value of a JSON schema element.
// This is accessed via a type switch.
// The possible types are
//   - [PartBool]
//   - [PartString]
//   - [PartStrings]
//   - [PartStringOrStrings]
//   - [PartInt]
//   - [PartFloat]
//   - [PartSchema]
//   - [PartMapSchema]
//   - [PartSchemaOrSchemas]
//   - [PartBoolOrSchema]
//   - [PartMapArrayOrSchema]
//   - [PartAny]
type PartValue interface {
	partValue() // restrict to types defined in this package
}

// PartBool is a schema part value that is a bool.
// For example, the keyword "uniqueItems".
type PartBool bool

// PartString is a schema part value that is a string.
// For example, the schema keyword "pattern" has a string
// value that must be a regexp that must match the instance value.
type PartString string

// PartStrings is a schema part value that is a list of strings.
// For example, the schema keyword "required" takes a list of strings
// where each string is a property that the instance is required to have.
type PartStrings []string

// PartStringOrStrings is a schema part that is either a single string
// or a list of strings. This is just for the "type" keyword,
// which takes either a single type string or an array of type strings.
// If the Strings is not nil, the String field must be the empty string.
type PartStringOrStrings struct {
	String  string
	Strings []string
}

// PartInt is a schema part value that is an integer.
// For example, the schema keyword "minLength" specifies
// the minimum length of a string.
type PartInt int64

// PartFloat is a schema part value that is a floating-point number.
// For example, the schema keyword "maximum" specifies the maximum
// value of a number.
type PartFloat float64

// PartSchema is a schema part value that is a reference to a schema.
type PartSchema struct {
	S *Schema
}

// NamedSchema is one entry of a [PartMapSchema].
type NamedSchema struct {
	Name   string
	Schema *Schema
}

// PartMapSchema is a schema part value that maps strings to schemas.
// For example, the schema keyword "properties" maps
// field names to schemas.
// Entries keep the order in which they were written,
// and names are unique.
type PartMapSchema []NamedSchema

// Lookup returns the schema for name, or nil.
func (m PartMapSchema) Lookup(name string) *Schema {
	for _, ns := range m {
		if ns.Name == name {
			return ns.Schema
		}
	}
	return nil
}

// Names returns the names in order.
func (m PartMapSchema) Names() []string {
	names := make([]string, len(m))
	for i, ns := range m {
		names[i] = ns.Name
	}
	return names
}

// PartSchemaOrSchemas is either a single schema
// or a list of schemas. This is the "items" keyword.
// At most one of the fields is set; an empty list is
// a non-nil zero-length Schemas.
type PartSchemaOrSchemas struct {
	Schema  *Schema
	Schemas []*Schema
}

// PartBoolOrSchema is either a bool or a schema.
// This is used by "additionalItems" and "additionalProperties".
// If Schema is not nil the Bool field is ignored.
type PartBoolOrSchema struct {
	Bool   bool
	Schema *Schema
}

// Dependency is one entry of a [PartMapArrayOrSchema].
// Exactly one of Array and Schema is set.
type Dependency struct {
	Name   string
	Array  []string // a zero-length slice is []string{}, not nil
	Schema *Schema
}

// PartMapArrayOrSchema maps property names to either
// a list of property names or a schema.
// This is used for the "dependencies" keyword.
type PartMapArrayOrSchema []Dependency

// PartAny is a schema part value that is an arbitrary JSON value.
// For example, the schema keyword "default",
// or a keyword this package does not know about.
type PartAny struct {
	V jsonvalue.Value
}

// Define a partValue method for each permitted Part type.
// This implements the [PartValue] interface.

func (PartBool) partValue()             {}
func (PartString) partValue()           {}
func (PartStrings) partValue()          {}
func (PartStringOrStrings) partValue()  {}
func (PartInt) partValue()              {}
func (PartFloat) partValue()            {}
func (PartSchema) partValue()           {}
func (PartMapSchema) partValue()        {}
func (PartSchemaOrSchemas) partValue()  {}
func (PartBoolOrSchema) partValue()     {}
func (PartMapArrayOrSchema) partValue() {}
func (PartAny) partValue()              {}

// ArgType is an enumeration of the possible schema part types.
type ArgType int

const (
	ArgTypeBool ArgType = iota + 1
	ArgTypeString
	ArgTypeStrings
	ArgTypeStringOrStrings
	ArgTypeInt
	ArgTypeFloat
	ArgTypeSchema
	ArgTypeMapSchema
	ArgTypeSchemaOrSchemas
	ArgTypeBoolOrSchema
	ArgTypeMapArrayOrSchema
	ArgTypeAny
)

// LookupKeyword returns the value associated with a keyword in the schema.
// The bool result reports whether the keyword is present at all.
func (s *Schema) LookupKeyword(keyword string) (PartValue, bool) {
	if s == nil {
		return nil, false
	}
	for _, part := range s.Parts {
		if part.Keyword.Name == keyword {
			return part.Value, true
		}
	}
	return nil, false
}
