// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const personSchema = `{
	"title": "person",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1, "maxLength": 20},
		"age": {"type": "integer", "minimum": 0, "exclusiveMinimum": true},
		"tags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
	},
	"patternProperties": {"^x-": {}},
	"additionalProperties": false,
	"x-extension": [1, 2]
}`

func mustParse(t *testing.T, data string) *Schema {
	t.Helper()
	s, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParseAccessors(t *testing.T) {
	s := mustParse(t, personSchema)

	if got := s.Title(); got != "person" {
		t.Errorf("Title() = %q, want %q", got, "person")
	}
	if diff := cmp.Diff([]string{"object"}, s.Type()); diff != "" {
		t.Errorf("Type() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name"}, s.Required()); diff != "" {
		t.Errorf("Required() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "age", "tags"}, s.Properties().Names()); diff != "" {
		t.Errorf("Properties() order mismatch (-want +got):\n%s", diff)
	}
	if s.AdditionalProperties() {
		t.Error("AdditionalProperties() = true, want false")
	}

	name := s.Properties().Lookup("name")
	if name == nil {
		t.Fatal("no schema for property name")
	}
	if n, ok := name.MaxLength(); !ok || n != 20 {
		t.Errorf("MaxLength() = %d, %t, want 20, true", n, ok)
	}
	if got := name.MinLength(); got != 1 {
		t.Errorf("MinLength() = %d, want 1", got)
	}

	age := s.Properties().Lookup("age")
	if m, ok := age.Minimum(); !ok || m != 0 {
		t.Errorf("Minimum() = %v, %t, want 0, true", m, ok)
	}
	if !age.ExclusiveMinimum() {
		t.Error("ExclusiveMinimum() = false, want true")
	}
	if _, ok := age.Maximum(); ok {
		t.Error("Maximum() reported a bound that is not set")
	}

	tags := s.Properties().Lookup("tags")
	if !tags.UniqueItems() {
		t.Error("UniqueItems() = false, want true")
	}
	if items := tags.ItemSchemas(); len(items) != 1 {
		t.Errorf("ItemSchemas() returned %d schemas, want 1", len(items))
	}

	v, ok := s.LookupKeyword("x-extension")
	if !ok {
		t.Fatal("unknown keyword was dropped")
	}
	if pa, ok := v.(PartAny); !ok || pa.V.String() != "[1,2]" {
		t.Errorf("x-extension = %#v, want PartAny [1,2]", v)
	}
}

func TestUnconstrainedDefaults(t *testing.T) {
	s := mustParse(t, `{}`)
	if s.Type() != nil {
		t.Errorf("Type() = %v, want nil", s.Type())
	}
	if _, ok := s.MaxLength(); ok {
		t.Error("MaxLength reported set")
	}
	if s.MinLength() != 0 || s.MinItems() != 0 || s.MinProperties() != 0 {
		t.Error("minimum counts are not zero")
	}
	if s.Pattern() != "" {
		t.Errorf("Pattern() = %q, want empty", s.Pattern())
	}
	if !s.AdditionalItems() {
		t.Error("AdditionalItems() = false, want true")
	}
	if s.ItemSchemas() != nil {
		t.Error("ItemSchemas() is not nil")
	}
}

func TestItemsForms(t *testing.T) {
	tests := []struct {
		schema string
		want   int
		tuple  bool
	}{
		{`{"items": {}}`, 1, false},
		{`{"items": [{}]}`, 1, true},
		{`{"items": [{}, {"type": "string"}]}`, 2, true},
		{`{"items": []}`, 0, true},
	}
	for _, test := range tests {
		s := mustParse(t, test.schema)
		if got := len(s.ItemSchemas()); got != test.want {
			t.Errorf("%s: len(ItemSchemas()) = %d, want %d", test.schema, got, test.want)
		}
		pv, ok := s.Items()
		if !ok {
			t.Errorf("%s: Items() not present", test.schema)
			continue
		}
		if tuple := pv.Schema == nil; tuple != test.tuple {
			t.Errorf("%s: tuple form = %t, want %t", test.schema, tuple, test.tuple)
		}
	}
}

func TestAdditionalItemsSchemaAllows(t *testing.T) {
	s := mustParse(t, `{"items": [{}, {}], "additionalItems": {"type": "string"}}`)
	if !s.AdditionalItems() {
		t.Error("AdditionalItems() = false for schema argument, want true")
	}
	s = mustParse(t, `{"items": [{}, {}], "additionalItems": false}`)
	if s.AdditionalItems() {
		t.Error("AdditionalItems() = true, want false")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		schema string
		want   string
	}{
		{`[]`, "want object"},
		{`{"maxLength": "3"}`, `"maxLength" argument is string`},
		{`{"maxLength": 2.5}`, `"maxLength" argument is non-integer`},
		{`{"maxLength": 9223372036854775808}`, `"maxLength" argument 9.223372036854776e+18 out of range`},
		{`{"minItems": -1e19}`, `"minItems" argument -1e+19 out of range`},
		{`{"type": 3}`, `"type" argument is integer`},
		{`{"required": ["a", 1]}`, `"required" argument item 1`},
		{`{"properties": {"a": 1}}`, "properties/a"},
		{`{"items": [{}, true]}`, "items/1"},
		{`{"uniqueItems": "yes"}`, `"uniqueItems"`},
		{`{"dependencies": {"a": 1}}`, "dependencies/a"},
	}
	for _, test := range tests {
		_, err := Parse([]byte(test.schema))
		if err == nil {
			t.Errorf("Parse(%s) succeeded unexpectedly", test.schema)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Parse(%s) error %q, want it to contain %q", test.schema, err, test.want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	y, err := ParseYAML([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
    pattern: "^[a-z]+$"
`))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	j := mustParse(t, `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "pattern": "^[a-z]+$"}}}`)
	yj, err := y.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	jj, err := j.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(yj) != string(jj) {
		t.Errorf("YAML schema encodes as\n%s\nJSON schema as\n%s", yj, jj)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := `{"type":["string","null"],"maxLength":3,"maximum":2.5,"items":[{"minimum":1},{}],` +
		`"additionalItems":false,"dependencies":{"a":["b"],"c":{"required":["d"]}},"default":{"z":1,"a":null}}`
	s := mustParse(t, in)
	out, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(out) != in {
		t.Errorf("MarshalJSON =\n%s\nwant\n%s", out, in)
	}
}

func TestChildren(t *testing.T) {
	s := mustParse(t, `{
		"items": [{}, {}],
		"additionalItems": {},
		"properties": {"b": {}, "a": {}},
		"patternProperties": {"^x": {}},
		"additionalProperties": true,
		"dependencies": {"p": ["q"], "r": {}}
	}`)
	var names []string
	for name := range s.Children() {
		names = append(names, name)
	}
	want := []string{
		"items/0",
		"items/1",
		"additionalItems",
		"properties/b",
		"properties/a",
		"patternProperties/^x",
		"dependencies/r",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
}

func TestCyclicSchema(t *testing.T) {
	s := &Schema{}
	s.Parts = append(s.Parts, MakePart(&ItemsKeyword, PartSchemaOrSchemas{Schema: s}))

	count := 0
	for range s.All() {
		count++
	}
	if count != 1 {
		t.Errorf("All() visited %d schemas, want 1", count)
	}
	if _, err := s.MarshalJSON(); err == nil {
		t.Error("MarshalJSON of a cyclic schema succeeded")
	}
	if got := s.String(); !strings.Contains(got, "<cycle>") {
		t.Errorf("String() = %q, want a cycle marker", got)
	}
}
