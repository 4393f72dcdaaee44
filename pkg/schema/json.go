// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// errCycle is returned when encoding a schema that contains itself.
var errCycle = errors.New("schema: cannot encode cyclic schema")

// MarshalJSON marshals a [Schema] into JSON format.
// Keywords and map entries are written in part order.
// This implements the json.Marshaler interface.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.marshalSchema(&buf, make(map[*Schema]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshalSchema marshals a [Schema] into JSON format,
// storing the results in buf.
func (s *Schema) marshalSchema(buf *bytes.Buffer, active map[*Schema]bool) error {
	if s == nil {
		buf.WriteString("{}")
		return nil
	}
	if active[s] {
		return errCycle
	}
	active[s] = true
	defer delete(active, s)

	buf.WriteByte('{')
	for i, part := range s.Parts {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(part.Keyword.Name))
		buf.WriteByte(':')

		switch v := part.Value.(type) {
		case PartBool:
			buf.WriteString(strconv.FormatBool(bool(v)))
		case PartString:
			buf.Write(encodeString(string(v)))
		case PartStrings:
			encodeStrings(buf, v)
		case PartStringOrStrings:
			if v.Strings == nil {
				buf.Write(encodeString(v.String))
			} else {
				encodeStrings(buf, v.Strings)
			}
		case PartInt:
			buf.WriteString(strconv.FormatInt(int64(v), 10))
		case PartFloat:
			buf.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
		case PartSchema:
			if err := v.S.marshalSchema(buf, active); err != nil {
				return err
			}
		case PartMapSchema:
			buf.WriteByte('{')
			for j, ns := range v {
				if j > 0 {
					buf.WriteByte(',')
				}
				buf.Write(encodeString(ns.Name))
				buf.WriteByte(':')
				if err := ns.Schema.marshalSchema(buf, active); err != nil {
					return err
				}
			}
			buf.WriteByte('}')
		case PartSchemaOrSchemas:
			if v.Schema != nil {
				if err := v.Schema.marshalSchema(buf, active); err != nil {
					return err
				}
			} else {
				buf.WriteByte('[')
				for j, sub := range v.Schemas {
					if j > 0 {
						buf.WriteByte(',')
					}
					if err := sub.marshalSchema(buf, active); err != nil {
						return err
					}
				}
				buf.WriteByte(']')
			}
		case PartBoolOrSchema:
			if v.Schema != nil {
				if err := v.Schema.marshalSchema(buf, active); err != nil {
					return err
				}
			} else {
				buf.WriteString(strconv.FormatBool(v.Bool))
			}
		case PartMapArrayOrSchema:
			buf.WriteByte('{')
			for j, dep := range v {
				if j > 0 {
					buf.WriteByte(',')
				}
				buf.Write(encodeString(dep.Name))
				buf.WriteByte(':')
				if dep.Schema != nil {
					if err := dep.Schema.marshalSchema(buf, active); err != nil {
						return err
					}
				} else {
					encodeStrings(buf, dep.Array)
				}
			}
			buf.WriteByte('}')
		case PartAny:
			data, err := v.V.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(data)
		default:
			return fmt.Errorf("schema.MarshalJSON: unexpected type %T", part.Value)
		}
	}
	buf.WriteByte('}')

	return nil
}

// encodeStrings writes a JSON array of strings.
func encodeStrings(buf *bytes.Buffer, strs []string) {
	buf.WriteByte('[')
	for i, s := range strs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(encodeString(s))
	}
	buf.WriteByte(']')
}

// encodeString returns the JSON encoding of s.
func encodeString(s string) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("json.Marshal failed, which should be impossible: %v", err))
	}
	return data
}
