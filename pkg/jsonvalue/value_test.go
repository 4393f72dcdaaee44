// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKeepsOrder(t *testing.T) {
	v, err := Parse([]byte(`{"b": 1, "a": [true, null, "x"], "c": {"z": 2.5, "y": -1}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !v.IsObject() {
		t.Fatalf("got kind %v, want object", v.Kind())
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, v.AsObject().Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	want := `{"b":1,"a":[true,null,"x"],"c":{"z":2.5,"y":-1}}`
	if got := v.String(); got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		``,
		`{"a": 1, "a": 2}`,
		`[1, 2`,
		`{"a": 1} 2`,
	} {
		if v, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q) = %v, want error", input, v)
		}
	}
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	jv, err := Parse([]byte(`{"name": "x", "tags": ["a", "b"], "count": 3, "ratio": 0.5, "on": true, "nothing": null}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	yv, err := ParseYAML([]byte(strings.Join([]string{
		"name: x",
		"tags: [a, b]",
		"count: 3",
		"ratio: 0.5",
		`"on": true`,
		"nothing: ~",
	}, "\n")))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if diff := cmp.Diff(jv, yv); diff != "" {
		t.Errorf("YAML and JSON differ (-json +yaml):\n%s", diff)
	}
	if diff := cmp.Diff(jv.AsObject().Keys(), yv.AsObject().Keys()); diff != "" {
		t.Errorf("key order differs (-json +yaml):\n%s", diff)
	}
}

func TestParseYAMLAlias(t *testing.T) {
	v, err := ParseYAML([]byte("base: &b {x: 1}\ncopy: *b\n"))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	base, _ := v.AsObject().Get("base")
	cp, _ := v.AsObject().Get("copy")
	if !Equal(base, cp) {
		t.Errorf("alias %v differs from anchor %v", cp, base)
	}
}

func TestParseYAMLRejectsNonStringKeys(t *testing.T) {
	if _, err := ParseYAML([]byte("1: one\n")); err == nil {
		t.Error("ParseYAML accepted an integer mapping key")
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Bool(false), "boolean"},
		{Number(3), "integer"},
		{Number(3.5), "number"},
		{String(""), "string"},
		{Array(), "array"},
		{ObjectOf(), "object"},
	}
	for _, test := range tests {
		if got := test.v.TypeName(); got != test.want {
			t.Errorf("%v.TypeName() = %q, want %q", test.v, got, test.want)
		}
	}
	if !Number(2).Is("number") {
		t.Error(`integer is not a "number"`)
	}
	if Number(2.5).Is("integer") {
		t.Error(`2.5 is an "integer"`)
	}
}

func TestEqual(t *testing.T) {
	a := MustFromAny(map[string]any{"x": []any{1.0, "s"}, "y": nil})
	b, err := Parse([]byte(`{"y": null, "x": [1, "s"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Errorf("Equal(%v, %v) = false, want true", a, b)
	}
	if Equal(Number(1), String("1")) {
		t.Error("number equals string")
	}
	if Equal(Array(Number(1), Number(2)), Array(Number(2), Number(1))) {
		t.Error("array equality ignores order")
	}
}

func TestCoercionsOnWrongKind(t *testing.T) {
	v := String("x")
	if v.AsFloat() != 0 || v.AsArray() != nil || v.AsObject().Len() != 0 || v.AsBool() {
		t.Errorf("coercions of a string returned non-zero values")
	}
	if _, ok := v.AsObject().Get("x"); ok {
		t.Error("Get on a non-object reported a member")
	}
	if _, ok := Array(Number(1)).Index(1); ok {
		t.Error("Index out of range reported ok")
	}
}

func TestFromAnyGoNumbers(t *testing.T) {
	v, err := FromAny([]any{int(1), uint8(2), float32(0.5)})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if got, want := v.String(), "[1,2,0.5]"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFromAnyStruct(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	v, err := FromAny(point{1, 2})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if got, want := v.String(), `{"x":1,"y":2}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
