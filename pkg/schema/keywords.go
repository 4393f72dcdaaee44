// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// SchemaID is the $schema value of draft-04 schemas.
const SchemaID = "http://json-schema.org/draft-04/schema#"

// The draft-04 keywords.
var (
	SchemaKeyword      = Keyword{Name: "$schema", ArgType: ArgTypeString}
	IDKeyword          = Keyword{Name: "id", ArgType: ArgTypeString}
	TitleKeyword       = Keyword{Name: "title", ArgType: ArgTypeString}
	DescriptionKeyword = Keyword{Name: "description", ArgType: ArgTypeString}
	DefaultKeyword     = Keyword{Name: "default", ArgType: ArgTypeAny}
	FormatKeyword      = Keyword{Name: "format", ArgType: ArgTypeString}
	TypeKeyword        = Keyword{Name: "type", ArgType: ArgTypeStringOrStrings}

	MultipleOfKeyword       = Keyword{Name: "multipleOf", ArgType: ArgTypeFloat}
	MaximumKeyword          = Keyword{Name: "maximum", ArgType: ArgTypeFloat}
	ExclusiveMaximumKeyword = Keyword{Name: "exclusiveMaximum", ArgType: ArgTypeBool}
	MinimumKeyword          = Keyword{Name: "minimum", ArgType: ArgTypeFloat}
	ExclusiveMinimumKeyword = Keyword{Name: "exclusiveMinimum", ArgType: ArgTypeBool}

	MaxLengthKeyword = Keyword{Name: "maxLength", ArgType: ArgTypeInt}
	MinLengthKeyword = Keyword{Name: "minLength", ArgType: ArgTypeInt}
	PatternKeyword   = Keyword{Name: "pattern", ArgType: ArgTypeString}

	ItemsKeyword           = Keyword{Name: "items", ArgType: ArgTypeSchemaOrSchemas}
	AdditionalItemsKeyword = Keyword{Name: "additionalItems", ArgType: ArgTypeBoolOrSchema}
	MaxItemsKeyword        = Keyword{Name: "maxItems", ArgType: ArgTypeInt}
	MinItemsKeyword        = Keyword{Name: "minItems", ArgType: ArgTypeInt}
	UniqueItemsKeyword     = Keyword{Name: "uniqueItems", ArgType: ArgTypeBool}

	MaxPropertiesKeyword        = Keyword{Name: "maxProperties", ArgType: ArgTypeInt}
	MinPropertiesKeyword        = Keyword{Name: "minProperties", ArgType: ArgTypeInt}
	RequiredKeyword             = Keyword{Name: "required", ArgType: ArgTypeStrings}
	PropertiesKeyword           = Keyword{Name: "properties", ArgType: ArgTypeMapSchema}
	PatternPropertiesKeyword    = Keyword{Name: "patternProperties", ArgType: ArgTypeMapSchema}
	AdditionalPropertiesKeyword = Keyword{Name: "additionalProperties", ArgType: ArgTypeBoolOrSchema}
	DependenciesKeyword         = Keyword{Name: "dependencies", ArgType: ArgTypeMapArrayOrSchema}
)

// Keywords maps each draft-04 keyword name to its [Keyword].
// Names not listed here are kept as [PartAny] annotations.
var Keywords = map[string]*Keyword{}

func init() {
	for _, k := range []*Keyword{
		&SchemaKeyword,
		&IDKeyword,
		&TitleKeyword,
		&DescriptionKeyword,
		&DefaultKeyword,
		&FormatKeyword,
		&TypeKeyword,
		&MultipleOfKeyword,
		&MaximumKeyword,
		&ExclusiveMaximumKeyword,
		&MinimumKeyword,
		&ExclusiveMinimumKeyword,
		&MaxLengthKeyword,
		&MinLengthKeyword,
		&PatternKeyword,
		&ItemsKeyword,
		&AdditionalItemsKeyword,
		&MaxItemsKeyword,
		&MinItemsKeyword,
		&UniqueItemsKeyword,
		&MaxPropertiesKeyword,
		&MinPropertiesKeyword,
		&RequiredKeyword,
		&PropertiesKeyword,
		&PatternPropertiesKeyword,
		&AdditionalPropertiesKeyword,
		&DependenciesKeyword,
	} {
		Keywords[k.Name] = k
	}
}

// LookupKeywordDef returns the definition of a draft-04 keyword,
// or a new [ArgTypeAny] keyword for an unknown name.
func LookupKeywordDef(name string) *Keyword {
	if k, ok := Keywords[name]; ok {
		return k
	}
	return &Keyword{Name: name, ArgType: ArgTypeAny}
}

// TypeNames lists the primitive type names that "type" accepts.
var TypeNames = []string{
	"array",
	"boolean",
	"integer",
	"null",
	"number",
	"object",
	"string",
}
