// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes v as compact JSON, keeping object member order.
// This implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String returns v as compact JSON.
// It is used when describing values in validation messages.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.kind, err)
	}
	return string(data)
}

// encode writes v to buf.
func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("jsonvalue: unsupported number %v", v.f)
		}
		buf.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		buf.Write(encodeString(v.s))
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		for name, e := range v.obj.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.Write(encodeString(name))
			buf.WriteByte(':')
			if err := e.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("jsonvalue: unexpected kind %d", v.kind)
	}
	return nil
}

// encodeString returns the JSON encoding of s.
func encodeString(s string) []byte {
	data, err := json.Marshal(s)
	if err != nil {
		panic(fmt.Sprintf("json.Marshal failed, which should be impossible: %v", err))
	}
	return data
}

// FromAny converts a Go value to a JSON value.
// It accepts the types produced by decoding JSON into an empty
// interface (nil, bool, float64, json.Number, string, []any,
// map[string]any), any Go number, and Value itself.
// Map members are ordered by name, as map iteration order is random.
// Other types are round-tripped through JSON encoding.
func FromAny(x any) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: number %s: %w", x, err)
		}
		return Number(f), nil
	case []any:
		elems := make([]Value, 0, len(x))
		for _, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Value{kind: KindArray, arr: elems}, nil
	case map[string]any:
		o := &Object{}
		for _, name := range slices.Sorted(maps.Keys(x)) {
			v, err := FromAny(x[name])
			if err != nil {
				return Value{}, err
			}
			// Map keys are unique, so add cannot fail.
			_ = o.add(name, v)
		}
		return ObjectValue(o), nil
	}

	rv := reflect.ValueOf(x)
	switch {
	case rv.CanInt():
		return Number(float64(rv.Int())), nil
	case rv.CanUint():
		return Number(float64(rv.Uint())), nil
	case rv.CanFloat():
		return Number(rv.Float()), nil
	}

	data, err := json.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("jsonvalue: converting %T: %w", x, err)
	}
	return Parse(data)
}

// MustFromAny is like [FromAny] but panics on error.
// It is intended for tests and package-level literals.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}
