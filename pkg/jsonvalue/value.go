// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonvalue defines the JSON value tree that schemas validate.
//
// A [Value] is a tagged union over the six JSON kinds.
// Objects keep their members in the order they were decoded,
// and member names are unique.
// Values are immutable: containers share their children,
// and nothing in this module modifies a Value after it is built.
package jsonvalue

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Kind is the kind of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON schema name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a JSON value.
// The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number.
func Number(f float64) Value { return Value{kind: KindNumber, f: f} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array holding vs.
// The slice is copied.
func Array(vs ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(vs)}
}

// ObjectValue returns a JSON object value wrapping o.
// A nil o is an empty object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = &Object{}
	}
	return Value{kind: KindObject, obj: o}
}

// ObjectOf builds an object value from members in order.
// It panics if a name appears twice.
func ObjectOf(members ...Member) Value {
	o := &Object{}
	for _, m := range members {
		if err := o.add(m.Name, m.Value); err != nil {
			panic(err)
		}
	}
	return ObjectValue(o)
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsNumber() bool { return v.kind == KindNumber }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// IsInteger reports whether v is a finite number with no fractional part.
func (v Value) IsInteger() bool {
	return v.kind == KindNumber && !math.IsInf(v.f, 0) && math.Trunc(v.f) == v.f
}

// AsBool returns the boolean held by v, or false if v is not a boolean.
func (v Value) AsBool() bool { return v.b }

// AsFloat returns the number held by v, or 0 if v is not a number.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns the string held by v, or "" if v is not a string.
func (v Value) AsString() string { return v.s }

// AsArray returns the elements of v, or nil if v is not an array.
// The caller must not modify the returned slice.
func (v Value) AsArray() []Value { return v.arr }

// AsObject returns the object held by v, or an empty object
// if v is not an object.
func (v Value) AsObject() *Object {
	if v.obj == nil {
		return &Object{}
	}
	return v.obj
}

// Len returns the number of elements of an array,
// the number of members of an object, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Index returns the array element at i.
// The bool result is false if v is not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// TypeName returns the JSON schema primitive type of v.
// Numbers without a fractional part are reported as "integer".
func (v Value) TypeName() string {
	if v.IsInteger() {
		return "integer"
	}
	return v.kind.String()
}

// Is reports whether v is an instance of the JSON schema
// primitive type typ. The type "number" includes integers.
func (v Value) Is(typ string) bool {
	switch typ {
	case "integer":
		return v.IsInteger()
	case "number":
		return v.kind == KindNumber
	default:
		return v.kind.String() == typ
	}
}

// Member is a single object member.
type Member struct {
	Name  string
	Value Value
}

// Object is a JSON object. Member order is preserved.
// The zero Object is empty and ready to use,
// but an Object must not be modified once it is wrapped in a Value.
type Object struct {
	members []Member
	index   map[string]int
}

// add appends a member, rejecting duplicate names.
func (o *Object) add(name string, v Value) error {
	if _, dup := o.index[name]; dup {
		return fmt.Errorf("duplicate object key %q", name)
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{name, v})
	return nil
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the member called name.
// The bool result reports whether it is present.
func (o *Object) Get(name string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[name]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether the object has a member called name.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Keys returns the member names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Name
	}
	return keys
}

// All iterates over the members in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, m := range o.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Equal reports whether a and b are the same JSON value.
// Numbers compare numerically and object member order is ignored.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindArray:
		return slices.EqualFunc(a.arr, b.arr, Equal)
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for name, av := range a.obj.All() {
			bv, ok := b.obj.Get(name)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether v and w are the same JSON value.
// This is for the benefit of the github.com/google/go-cmp package.
func (v Value) Equal(w Value) bool {
	return Equal(v, w)
}
