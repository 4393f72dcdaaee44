// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package builder defines a [Builder] type that may be used
// to build a draft-04 [schema.Schema] step by step.
package builder

import (
	"fmt"

	"github.com/altshiftab/draft04/internal/argtype"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

// Builder is a JSON schema builder.
// Builder provides a list of methods that may be used to add
// new elements to the schema.
// This should be used by programs that need to create a JSON schema
// from scratch, rather than decoding it from a JSON representation.
//
// Adding a keyword that is already present replaces its argument,
// except that [Builder.AddProperty] and [Builder.AddPatternProperty]
// add one entry to the existing mapping.
//
// Methods panic if they are given a keyword of the wrong
// argument type or a nil schema.
type Builder struct {
	s schema.Schema
}

// New returns a [Builder] for a new top-level schema.
// The schema starts with the draft-04 "$schema" keyword.
func New() *Builder {
	b := &Builder{}
	return b.AddString(&schema.SchemaKeyword, schema.SchemaID)
}

// NewSubBuilder returns a [Builder] for a schema that will be
// part of some larger schema. It has no "$schema" keyword.
func NewSubBuilder() *Builder {
	return &Builder{}
}

// NewSubBuilder is like the [NewSubBuilder] function.
func (b *Builder) NewSubBuilder() *Builder {
	return NewSubBuilder()
}

// Build returns the built schema.
// The Builder may continue to be used; later additions
// do not affect schemas already built.
func (b *Builder) Build() *schema.Schema {
	return b.s.Clone()
}

// set replaces the part for the keyword, or appends it.
func (b *Builder) set(keyword *schema.Keyword, v schema.PartValue) *Builder {
	for i, part := range b.s.Parts {
		if part.Keyword.Name == keyword.Name {
			b.s.Parts[i] = schema.MakePart(keyword, v)
			return b
		}
	}
	b.s.Parts = append(b.s.Parts, schema.MakePart(keyword, v))
	return b
}

// check panics if a keyword is used with the wrong type.
func (b *Builder) check(keyword *schema.Keyword, want schema.ArgType) {
	switch keyword.ArgType {
	case want, schema.ArgTypeAny:
	default:
		panic(fmt.Sprintf("Add%s called for %s which expects %s (%s)",
			argtype.Name(want), keyword.Name,
			argtype.Name(keyword.ArgType), argtype.GoType(keyword.ArgType)))
	}
}

// checkSchema panics if s is nil.
func checkSchema(keyword *schema.Keyword, s *schema.Schema) {
	if s == nil {
		panic(fmt.Sprintf("%s schema is nil", keyword.Name))
	}
}

// AddBool adds a keyword whose argument is a bool.
func (b *Builder) AddBool(keyword *schema.Keyword, v bool) *Builder {
	b.check(keyword, schema.ArgTypeBool)
	return b.set(keyword, schema.PartBool(v))
}

// AddString adds a keyword whose argument is a string.
func (b *Builder) AddString(keyword *schema.Keyword, s string) *Builder {
	if keyword.ArgType == schema.ArgTypeStringOrStrings {
		return b.set(keyword, schema.PartStringOrStrings{String: s})
	}
	b.check(keyword, schema.ArgTypeString)
	return b.set(keyword, schema.PartString(s))
}

// AddStrings adds a keyword whose argument is an array of strings.
func (b *Builder) AddStrings(keyword *schema.Keyword, s []string) *Builder {
	if s == nil {
		s = []string{}
	}
	if keyword.ArgType == schema.ArgTypeStringOrStrings {
		return b.set(keyword, schema.PartStringOrStrings{Strings: s})
	}
	b.check(keyword, schema.ArgTypeStrings)
	return b.set(keyword, schema.PartStrings(s))
}

// AddInt adds a keyword whose argument is an int.
func (b *Builder) AddInt(keyword *schema.Keyword, i int64) *Builder {
	b.check(keyword, schema.ArgTypeInt)
	return b.set(keyword, schema.PartInt(i))
}

// AddFloat adds a keyword whose argument is a float.
func (b *Builder) AddFloat(keyword *schema.Keyword, f float64) *Builder {
	b.check(keyword, schema.ArgTypeFloat)
	return b.set(keyword, schema.PartFloat(f))
}

// AddSchema adds a keyword whose argument is a schema.
func (b *Builder) AddSchema(keyword *schema.Keyword, s *schema.Schema) *Builder {
	b.check(keyword, schema.ArgTypeSchema)
	checkSchema(keyword, s)
	return b.set(keyword, schema.PartSchema{S: s})
}

// AddMapSchema adds a keyword whose argument is a mapping
// from strings to schemas.
func (b *Builder) AddMapSchema(keyword *schema.Keyword, m schema.PartMapSchema) *Builder {
	b.check(keyword, schema.ArgTypeMapSchema)
	for _, ns := range m {
		checkSchema(keyword, ns.Schema)
	}
	return b.set(keyword, m)
}

// AddSchemaOrSchemas adds a keyword whose argument is
// either a single schema or an array of schemas.
func (b *Builder) AddSchemaOrSchemas(keyword *schema.Keyword, pv schema.PartSchemaOrSchemas) *Builder {
	b.check(keyword, schema.ArgTypeSchemaOrSchemas)
	for _, s := range pv.Schemas {
		checkSchema(keyword, s)
	}
	return b.set(keyword, pv)
}

// AddBoolOrSchema adds a keyword whose argument is
// either a bool or a schema.
func (b *Builder) AddBoolOrSchema(keyword *schema.Keyword, pv schema.PartBoolOrSchema) *Builder {
	b.check(keyword, schema.ArgTypeBoolOrSchema)
	return b.set(keyword, pv)
}

// AddMapArrayOrSchema adds a keyword whose argument is
// a map from strings to either arrays or schemas.
// This is the "dependencies" keyword.
func (b *Builder) AddMapArrayOrSchema(keyword *schema.Keyword, pv schema.PartMapArrayOrSchema) *Builder {
	b.check(keyword, schema.ArgTypeMapArrayOrSchema)
	return b.set(keyword, pv)
}

// AddAny adds a keyword whose argument is any JSON value.
// The keyword may be one that this package does not know about,
// such as one from [schema.LookupKeywordDef].
func (b *Builder) AddAny(keyword *schema.Keyword, v jsonvalue.Value) *Builder {
	return b.set(keyword, schema.PartAny{V: v})
}

// AddSchemaParts adds a list of parts.
func (b *Builder) AddSchemaParts(parts []schema.Part) *Builder {
	for _, part := range parts {
		b.set(part.Keyword, part.Value)
	}
	return b
}

// Keyword-specific methods.

// AddTitle sets "title".
func (b *Builder) AddTitle(title string) *Builder {
	return b.AddString(&schema.TitleKeyword, title)
}

// AddDescription sets "description".
func (b *Builder) AddDescription(desc string) *Builder {
	return b.AddString(&schema.DescriptionKeyword, desc)
}

// AddID sets "id".
func (b *Builder) AddID(id string) *Builder {
	return b.AddString(&schema.IDKeyword, id)
}

// AddDefault sets "default". The value is converted with
// [jsonvalue.FromAny], which panics on failure.
func (b *Builder) AddDefault(v any) *Builder {
	return b.AddAny(&schema.DefaultKeyword, jsonvalue.MustFromAny(v))
}

// AddEnum records "enum" as an annotation.
// It does not constrain validation.
func (b *Builder) AddEnum(v any) *Builder {
	return b.AddAny(schema.LookupKeywordDef("enum"), jsonvalue.MustFromAny(v))
}

// AddFormat sets "format".
func (b *Builder) AddFormat(format string) *Builder {
	return b.AddString(&schema.FormatKeyword, format)
}

// AddType sets "type". One name is stored as a string,
// several as an array.
func (b *Builder) AddType(types ...string) *Builder {
	if len(types) == 1 {
		return b.AddString(&schema.TypeKeyword, types[0])
	}
	return b.AddStrings(&schema.TypeKeyword, types)
}

// AddMultipleOf sets "multipleOf".
func (b *Builder) AddMultipleOf(f float64) *Builder {
	return b.AddFloat(&schema.MultipleOfKeyword, f)
}

// AddMaximum sets "maximum".
func (b *Builder) AddMaximum(f float64) *Builder {
	return b.AddFloat(&schema.MaximumKeyword, f)
}

// AddExclusiveMaximum sets "exclusiveMaximum".
func (b *Builder) AddExclusiveMaximum(v bool) *Builder {
	return b.AddBool(&schema.ExclusiveMaximumKeyword, v)
}

// AddMinimum sets "minimum".
func (b *Builder) AddMinimum(f float64) *Builder {
	return b.AddFloat(&schema.MinimumKeyword, f)
}

// AddExclusiveMinimum sets "exclusiveMinimum".
func (b *Builder) AddExclusiveMinimum(v bool) *Builder {
	return b.AddBool(&schema.ExclusiveMinimumKeyword, v)
}

// AddMaxLength sets "maxLength".
func (b *Builder) AddMaxLength(n int64) *Builder {
	return b.AddInt(&schema.MaxLengthKeyword, n)
}

// AddMinLength sets "minLength".
func (b *Builder) AddMinLength(n int64) *Builder {
	return b.AddInt(&schema.MinLengthKeyword, n)
}

// AddPattern sets "pattern".
func (b *Builder) AddPattern(re string) *Builder {
	return b.AddString(&schema.PatternKeyword, re)
}

// AddItemsSchema sets "items" to a single schema
// that every element must match.
func (b *Builder) AddItemsSchema(s *schema.Schema) *Builder {
	checkSchema(&schema.ItemsKeyword, s)
	return b.AddSchemaOrSchemas(&schema.ItemsKeyword, schema.PartSchemaOrSchemas{Schema: s})
}

// AddTupleItems sets "items" to a list of positional schemas.
func (b *Builder) AddTupleItems(schemas ...*schema.Schema) *Builder {
	if schemas == nil {
		schemas = []*schema.Schema{}
	}
	return b.AddSchemaOrSchemas(&schema.ItemsKeyword, schema.PartSchemaOrSchemas{Schemas: schemas})
}

// AddAdditionalItems sets "additionalItems" to a bool.
func (b *Builder) AddAdditionalItems(allowed bool) *Builder {
	return b.AddBoolOrSchema(&schema.AdditionalItemsKeyword, schema.PartBoolOrSchema{Bool: allowed})
}

// AddAdditionalItemsSchema sets "additionalItems" to a schema.
func (b *Builder) AddAdditionalItemsSchema(s *schema.Schema) *Builder {
	checkSchema(&schema.AdditionalItemsKeyword, s)
	return b.AddBoolOrSchema(&schema.AdditionalItemsKeyword, schema.PartBoolOrSchema{Schema: s})
}

// AddMaxItems sets "maxItems".
func (b *Builder) AddMaxItems(n int64) *Builder {
	return b.AddInt(&schema.MaxItemsKeyword, n)
}

// AddMinItems sets "minItems".
func (b *Builder) AddMinItems(n int64) *Builder {
	return b.AddInt(&schema.MinItemsKeyword, n)
}

// AddUniqueItems sets "uniqueItems".
func (b *Builder) AddUniqueItems(v bool) *Builder {
	return b.AddBool(&schema.UniqueItemsKeyword, v)
}

// AddMaxProperties sets "maxProperties".
func (b *Builder) AddMaxProperties(n int64) *Builder {
	return b.AddInt(&schema.MaxPropertiesKeyword, n)
}

// AddMinProperties sets "minProperties".
func (b *Builder) AddMinProperties(n int64) *Builder {
	return b.AddInt(&schema.MinPropertiesKeyword, n)
}

// AddRequired sets "required".
func (b *Builder) AddRequired(names ...string) *Builder {
	return b.AddStrings(&schema.RequiredKeyword, names)
}

// AddProperties sets "properties".
func (b *Builder) AddProperties(m schema.PartMapSchema) *Builder {
	return b.AddMapSchema(&schema.PropertiesKeyword, m)
}

// AddProperty adds one entry to "properties",
// replacing any schema already given for name.
func (b *Builder) AddProperty(name string, s *schema.Schema) *Builder {
	return b.addMapEntry(&schema.PropertiesKeyword, name, s)
}

// AddPatternProperties sets "patternProperties".
func (b *Builder) AddPatternProperties(m schema.PartMapSchema) *Builder {
	return b.AddMapSchema(&schema.PatternPropertiesKeyword, m)
}

// AddPatternProperty adds one entry to "patternProperties".
func (b *Builder) AddPatternProperty(pattern string, s *schema.Schema) *Builder {
	return b.addMapEntry(&schema.PatternPropertiesKeyword, pattern, s)
}

// addMapEntry adds or replaces one entry of a map keyword.
func (b *Builder) addMapEntry(keyword *schema.Keyword, name string, s *schema.Schema) *Builder {
	checkSchema(keyword, s)
	var m schema.PartMapSchema
	if v, ok := b.s.LookupKeyword(keyword.Name); ok {
		m, _ = v.(schema.PartMapSchema)
	}
	nm := make(schema.PartMapSchema, 0, len(m)+1)
	replaced := false
	for _, ns := range m {
		if ns.Name == name {
			ns.Schema = s
			replaced = true
		}
		nm = append(nm, ns)
	}
	if !replaced {
		nm = append(nm, schema.NamedSchema{Name: name, Schema: s})
	}
	return b.AddMapSchema(keyword, nm)
}

// AddAdditionalProperties sets "additionalProperties" to a bool.
func (b *Builder) AddAdditionalProperties(allowed bool) *Builder {
	return b.AddBoolOrSchema(&schema.AdditionalPropertiesKeyword, schema.PartBoolOrSchema{Bool: allowed})
}

// AddAdditionalPropertiesSchema sets "additionalProperties" to a schema.
func (b *Builder) AddAdditionalPropertiesSchema(s *schema.Schema) *Builder {
	checkSchema(&schema.AdditionalPropertiesKeyword, s)
	return b.AddBoolOrSchema(&schema.AdditionalPropertiesKeyword, schema.PartBoolOrSchema{Schema: s})
}

// AddDependencies sets "dependencies".
func (b *Builder) AddDependencies(deps schema.PartMapArrayOrSchema) *Builder {
	return b.AddMapArrayOrSchema(&schema.DependenciesKeyword, deps)
}
