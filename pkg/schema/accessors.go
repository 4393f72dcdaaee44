// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/altshiftab/draft04/pkg/jsonvalue"
)

// Typed accessors. Each reports the configured value of one keyword,
// or the answer for an absent keyword, which never constrains.

func (s *Schema) lookupString(keyword string) string {
	if v, ok := s.LookupKeyword(keyword); ok {
		if ps, ok := v.(PartString); ok {
			return string(ps)
		}
	}
	return ""
}

func (s *Schema) lookupBool(keyword string) bool {
	if v, ok := s.LookupKeyword(keyword); ok {
		if pb, ok := v.(PartBool); ok {
			return bool(pb)
		}
	}
	return false
}

func (s *Schema) lookupFloat(keyword string) (float64, bool) {
	if v, ok := s.LookupKeyword(keyword); ok {
		switch v := v.(type) {
		case PartFloat:
			return float64(v), true
		case PartInt:
			return float64(v), true
		}
	}
	return 0, false
}

func (s *Schema) lookupInt(keyword string) (int64, bool) {
	if v, ok := s.LookupKeyword(keyword); ok {
		if pi, ok := v.(PartInt); ok {
			return int64(pi), true
		}
	}
	return 0, false
}

func (s *Schema) lookupMap(keyword string) PartMapSchema {
	if v, ok := s.LookupKeyword(keyword); ok {
		if m, ok := v.(PartMapSchema); ok {
			return m
		}
	}
	return nil
}

// Type returns the allowed primitive type names.
// A nil result means any type is allowed.
func (s *Schema) Type() []string {
	v, ok := s.LookupKeyword(TypeKeyword.Name)
	if !ok {
		return nil
	}
	pv, ok := v.(PartStringOrStrings)
	if !ok {
		return nil
	}
	if pv.Strings != nil {
		return pv.Strings
	}
	if pv.String == "" {
		return nil
	}
	return []string{pv.String}
}

// MultipleOf returns the divisor of "multipleOf", if set.
func (s *Schema) MultipleOf() (float64, bool) {
	return s.lookupFloat(MultipleOfKeyword.Name)
}

// Maximum returns the upper numeric bound, if set.
func (s *Schema) Maximum() (float64, bool) {
	return s.lookupFloat(MaximumKeyword.Name)
}

// ExclusiveMaximum reports whether the maximum excludes the bound itself.
func (s *Schema) ExclusiveMaximum() bool {
	return s.lookupBool(ExclusiveMaximumKeyword.Name)
}

// Minimum returns the lower numeric bound, if set.
func (s *Schema) Minimum() (float64, bool) {
	return s.lookupFloat(MinimumKeyword.Name)
}

// ExclusiveMinimum reports whether the minimum excludes the bound itself.
func (s *Schema) ExclusiveMinimum() bool {
	return s.lookupBool(ExclusiveMinimumKeyword.Name)
}

// MaxLength returns the maximum string length, if set.
func (s *Schema) MaxLength() (int64, bool) {
	return s.lookupInt(MaxLengthKeyword.Name)
}

// MinLength returns the minimum string length.
// Zero means unconstrained.
func (s *Schema) MinLength() int64 {
	n, _ := s.lookupInt(MinLengthKeyword.Name)
	return n
}

// Pattern returns the string pattern, or "" if there is none.
func (s *Schema) Pattern() string {
	return s.lookupString(PatternKeyword.Name)
}

// Format returns the "format" name, or "".
func (s *Schema) Format() string {
	return s.lookupString(FormatKeyword.Name)
}

// Title returns the "title" annotation, or "".
func (s *Schema) Title() string {
	return s.lookupString(TitleKeyword.Name)
}

// Description returns the "description" annotation, or "".
func (s *Schema) Description() string {
	return s.lookupString(DescriptionKeyword.Name)
}

// ID returns the "id" of the schema, or "".
func (s *Schema) ID() string {
	return s.lookupString(IDKeyword.Name)
}

// Default returns the "default" annotation, if set.
func (s *Schema) Default() (jsonvalue.Value, bool) {
	if v, ok := s.LookupKeyword(DefaultKeyword.Name); ok {
		if pa, ok := v.(PartAny); ok {
			return pa.V, true
		}
	}
	return jsonvalue.Value{}, false
}

// Items returns the "items" argument.
// The bool result reports whether "items" is present.
func (s *Schema) Items() (PartSchemaOrSchemas, bool) {
	if v, ok := s.LookupKeyword(ItemsKeyword.Name); ok {
		if pv, ok := v.(PartSchemaOrSchemas); ok {
			return pv, true
		}
	}
	return PartSchemaOrSchemas{}, false
}

// ItemSchemas returns the item schemas as a list.
// A single schema and a one-element list both return one schema.
// The result is nil if "items" is absent.
func (s *Schema) ItemSchemas() []*Schema {
	pv, ok := s.Items()
	if !ok {
		return nil
	}
	if pv.Schema != nil {
		return []*Schema{pv.Schema}
	}
	return pv.Schemas
}

// AdditionalItems reports whether array elements beyond a tuple
// of item schemas are allowed. It is true when absent,
// and a schema argument counts as allowed.
func (s *Schema) AdditionalItems() bool {
	return s.boolOrSchema(AdditionalItemsKeyword.Name)
}

// AdditionalProperties reports whether object members not named by
// "properties" or "patternProperties" are allowed.
// It is true when absent, and a schema argument counts as allowed.
func (s *Schema) AdditionalProperties() bool {
	return s.boolOrSchema(AdditionalPropertiesKeyword.Name)
}

func (s *Schema) boolOrSchema(keyword string) bool {
	if v, ok := s.LookupKeyword(keyword); ok {
		if pv, ok := v.(PartBoolOrSchema); ok {
			return pv.Schema != nil || pv.Bool
		}
	}
	return true
}

// MaxItems returns the maximum array length, if set.
func (s *Schema) MaxItems() (int64, bool) {
	return s.lookupInt(MaxItemsKeyword.Name)
}

// MinItems returns the minimum array length.
// Zero means unconstrained.
func (s *Schema) MinItems() int64 {
	n, _ := s.lookupInt(MinItemsKeyword.Name)
	return n
}

// UniqueItems reports whether array elements must be distinct.
func (s *Schema) UniqueItems() bool {
	return s.lookupBool(UniqueItemsKeyword.Name)
}

// MaxProperties returns the maximum number of object members, if set.
func (s *Schema) MaxProperties() (int64, bool) {
	return s.lookupInt(MaxPropertiesKeyword.Name)
}

// MinProperties returns the minimum number of object members.
// Zero means unconstrained.
func (s *Schema) MinProperties() int64 {
	n, _ := s.lookupInt(MinPropertiesKeyword.Name)
	return n
}

// Required returns the names of required object members.
func (s *Schema) Required() []string {
	if v, ok := s.LookupKeyword(RequiredKeyword.Name); ok {
		if ps, ok := v.(PartStrings); ok {
			return ps
		}
	}
	return nil
}

// Properties returns the declared property schemas in order.
func (s *Schema) Properties() PartMapSchema {
	return s.lookupMap(PropertiesKeyword.Name)
}

// PatternProperties returns the pattern property schemas in order.
func (s *Schema) PatternProperties() PartMapSchema {
	return s.lookupMap(PatternPropertiesKeyword.Name)
}

// Dependencies returns the "dependencies" argument.
func (s *Schema) Dependencies() PartMapArrayOrSchema {
	if v, ok := s.LookupKeyword(DependenciesKeyword.Name); ok {
		if pv, ok := v.(PartMapArrayOrSchema); ok {
			return pv
		}
	}
	return nil
}
