// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"math"

	"github.com/altshiftab/draft04/pkg/jsonvalue"
)

// Parse decodes a schema from JSON.
func Parse(data []byte) (*Schema, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// ParseYAML decodes a schema from YAML.
func ParseYAML(data []byte) (*Schema, error) {
	v, err := jsonvalue.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// UnmarshalJSON decodes the JSON representation of a [Schema].
// This implements the json.Unmarshaler interface.
func (s *Schema) UnmarshalJSON(data []byte) error {
	ns, err := Parse(data)
	if err != nil {
		return err
	}
	s.Parts = ns.Parts
	return nil
}

// FromValue builds a [Schema] from a decoded JSON value.
// The value must be an object. Keywords keep their order.
// A draft-04 keyword whose argument has the wrong JSON type
// is an error; unknown keywords are kept as [PartAny].
func FromValue(v jsonvalue.Value) (*Schema, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("schema: schema is %s, want object", v.TypeName())
	}
	s := &Schema{}
	for name, val := range v.AsObject().All() {
		if err := s.addKeywordFromValue(name, val); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// addKeywordFromValue adds a keyword and its argument.
func (s *Schema) addKeywordFromValue(keyword string, val jsonvalue.Value) error {
	sk := LookupKeywordDef(keyword)

	var spv PartValue
	switch sk.ArgType {
	case ArgTypeBool:
		if !val.IsBool() {
			return wrongType(keyword, val, "boolean")
		}
		spv = PartBool(val.AsBool())

	case ArgTypeString:
		if !val.IsString() {
			return wrongType(keyword, val, "string")
		}
		spv = PartString(val.AsString())

	case ArgTypeStrings:
		strs, err := stringsFromValue(keyword, val)
		if err != nil {
			return err
		}
		spv = PartStrings(strs)

	case ArgTypeStringOrStrings:
		if val.IsString() {
			spv = PartStringOrStrings{String: val.AsString()}
		} else if val.IsArray() {
			strs, err := stringsFromValue(keyword, val)
			if err != nil {
				return err
			}
			spv = PartStringOrStrings{Strings: strs}
		} else {
			return wrongType(keyword, val, "string or array of string")
		}

	case ArgTypeInt:
		if !val.IsNumber() {
			return wrongType(keyword, val, "integer")
		}
		f := val.AsFloat()
		if f != math.Trunc(f) {
			return fmt.Errorf("schema: %q argument is non-integer %v, want integer", keyword, f)
		}
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return fmt.Errorf("schema: %q argument %v out of range", keyword, f)
		}
		spv = PartInt(int64(f))

	case ArgTypeFloat:
		if !val.IsNumber() {
			return wrongType(keyword, val, "number")
		}
		spv = PartFloat(val.AsFloat())

	case ArgTypeSchema:
		sub, err := subschema(keyword, val)
		if err != nil {
			return err
		}
		spv = PartSchema{sub}

	case ArgTypeMapSchema:
		if !val.IsObject() {
			return wrongType(keyword, val, "object")
		}
		m := make(PartMapSchema, 0, val.Len())
		for name, v := range val.AsObject().All() {
			sub, err := subschema(keyword+"/"+name, v)
			if err != nil {
				return err
			}
			m = append(m, NamedSchema{Name: name, Schema: sub})
		}
		spv = m

	case ArgTypeSchemaOrSchemas:
		var pv PartSchemaOrSchemas
		switch {
		case val.IsArray():
			pv.Schemas = make([]*Schema, 0, val.Len())
			for i, v := range val.AsArray() {
				sub, err := subschema(fmt.Sprintf("%s/%d", keyword, i), v)
				if err != nil {
					return err
				}
				pv.Schemas = append(pv.Schemas, sub)
			}
		case val.IsObject():
			sub, err := subschema(keyword, val)
			if err != nil {
				return err
			}
			pv.Schema = sub
		default:
			return wrongType(keyword, val, "schema or array of schemas")
		}
		spv = pv

	case ArgTypeBoolOrSchema:
		switch {
		case val.IsBool():
			spv = PartBoolOrSchema{Bool: val.AsBool()}
		case val.IsObject():
			sub, err := subschema(keyword, val)
			if err != nil {
				return err
			}
			spv = PartBoolOrSchema{Schema: sub}
		default:
			return wrongType(keyword, val, "boolean or schema")
		}

	case ArgTypeMapArrayOrSchema:
		if !val.IsObject() {
			return wrongType(keyword, val, "object")
		}
		deps := make(PartMapArrayOrSchema, 0, val.Len())
		for name, v := range val.AsObject().All() {
			dep := Dependency{Name: name}
			switch {
			case v.IsObject():
				sub, err := subschema(keyword+"/"+name, v)
				if err != nil {
					return err
				}
				dep.Schema = sub
			case v.IsArray():
				strs, err := stringsFromValue(keyword+"/"+name, v)
				if err != nil {
					return err
				}
				dep.Array = strs
			default:
				return wrongType(keyword+"/"+name, v, "schema or array of strings")
			}
			deps = append(deps, dep)
		}
		spv = deps

	case ArgTypeAny:
		spv = PartAny{val}

	default:
		panic("can't happen")
	}

	s.Parts = append(s.Parts, Part{
		Keyword: sk,
		Value:   spv,
	})
	return nil
}

// subschema decodes the sub-schema found at loc.
func subschema(loc string, v jsonvalue.Value) (*Schema, error) {
	sub, err := FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return sub, nil
}

// stringsFromValue decodes an array of strings.
func stringsFromValue(keyword string, val jsonvalue.Value) ([]string, error) {
	if !val.IsArray() {
		return nil, wrongType(keyword, val, "array of string")
	}
	strs := make([]string, 0, val.Len())
	for i, v := range val.AsArray() {
		if !v.IsString() {
			return nil, fmt.Errorf("schema: %q argument item %d is %s, want string", keyword, i, v.TypeName())
		}
		strs = append(strs, v.AsString())
	}
	return strs, nil
}

func wrongType(keyword string, val jsonvalue.Value, want string) error {
	return fmt.Errorf("schema: %q argument is %s, want %s", keyword, val.TypeName(), want)
}
