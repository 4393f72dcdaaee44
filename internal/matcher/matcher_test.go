// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/google/go-cmp/cmp"
)

// checker is a Checker that runs a list of matchers.
type checker []*Matcher

func (c checker) Evaluate(v jsonvalue.Value, mode Mode) error {
	var err error
	for _, m := range c {
		validerr.AddError(&err, m.Match(v, mode), "", "")
		if err != nil && mode == FirstFailure {
			break
		}
	}
	return err
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func parse(t *testing.T, s string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s): %v", s, err)
	}
	return v
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		m    *Matcher
		pass []string
		fail []string
	}{
		{
			"maxLength",
			must(MaxLength(3)),
			[]string{`"abc"`, `""`, `"äöü"`, `1234`, `null`},
			[]string{`"abcd"`, `"ääää"`},
		},
		{
			"minLength",
			must(MinLength(2)),
			[]string{`"ab"`, `"日本"`, `1`, `[]`},
			[]string{`"a"`, `""`},
		},
		{
			"pattern",
			must(Pattern("[a-z]+")),
			[]string{`"abc"`, `12`, `{}`},
			[]string{`"abc1"`, `"1abc"`, `""`},
		},
		{
			"maximum",
			Maximum(10, false),
			[]string{`10`, `-3`, `9.99`, `"100"`},
			[]string{`10.01`, `11`},
		},
		{
			"exclusiveMaximum",
			Maximum(10, true),
			[]string{`9.99`, `true`},
			[]string{`10`, `11`},
		},
		{
			"minimum",
			Minimum(0, false),
			[]string{`0`, `5`, `null`},
			[]string{`-0.5`},
		},
		{
			"exclusiveMinimum",
			Minimum(0, true),
			[]string{`0.001`, `[-1]`},
			[]string{`0`, `-1`},
		},
		{
			"multipleOf",
			must(MultipleOf(2.5)),
			[]string{`0`, `5`, `-7.5`, `"3"`},
			[]string{`1`, `6`},
		},
		{
			"type single",
			must(Type("integer")),
			[]string{`1`, `-4`, `2.0`},
			[]string{`1.5`, `"1"`, `null`, `{}`},
		},
		{
			"type any-of",
			must(Type("string", "null")),
			[]string{`"x"`, `null`},
			[]string{`0`, `false`, `[]`},
		},
		{
			"type number includes integer",
			must(Type("number")),
			[]string{`1`, `1.5`},
			[]string{`"1"`},
		},
		{
			"maxItems",
			must(ItemCount("maxItems", 2)),
			[]string{`[]`, `[1, 2]`, `"abc"`},
			[]string{`[1, 2, 3]`},
		},
		{
			"minItems",
			must(MinItems(1)),
			[]string{`[0]`, `{}`},
			[]string{`[]`},
		},
		{
			"maxProperties",
			must(MaxProperties(1)),
			[]string{`{}`, `{"a": 1}`, `[1, 2]`},
			[]string{`{"a": 1, "b": 2}`},
		},
		{
			"minProperties",
			must(MinProperties(1)),
			[]string{`{"a": 1}`, `[]`},
			[]string{`{}`},
		},
		{
			"required",
			Required("a"),
			[]string{`{"a": null}`, `"a"`, `["a"]`},
			[]string{`{}`, `{"b": 1}`},
		},
		{
			"items",
			Items(checker{must(Type("string"))}),
			[]string{`[]`, `["a", "b"]`, `"not an array"`},
			[]string{`["a", 1]`, `[null]`},
		},
		{
			"item at position",
			ItemAt(1, checker{must(Type("string"))}),
			[]string{`[1, "a"]`, `[1]`, `[]`, `{"1": 2}`},
			[]string{`["a", 1]`},
		},
		{
			"property",
			Property("a", checker{Maximum(1, false)}),
			[]string{`{"a": 1}`, `{}`, `{"b": 5}`, `5`},
			[]string{`{"a": 2}`},
		},
		{
			"pattern property",
			must(PatternProperty("x-.*", checker{must(Type("string"))})),
			[]string{`{"x-a": "s", "y": 1}`, `{"ax-b": 1}`, `[]`},
			[]string{`{"x-a": 1}`},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, s := range test.pass {
				for _, mode := range []Mode{FirstFailure, AllFailures} {
					if err := test.m.Match(parse(t, s), mode); err != nil {
						t.Errorf("Match(%s, %d) = %v, want pass", s, mode, err)
					}
				}
			}
			for _, s := range test.fail {
				for _, mode := range []Mode{FirstFailure, AllFailures} {
					err := test.m.Match(parse(t, s), mode)
					if err == nil {
						t.Errorf("Match(%s, %d) passed, want failure", s, mode)
					} else if !validerr.IsValidationError(err) {
						t.Errorf("Match(%s, %d) returned %T, want a validation error", s, mode, err)
					}
				}
			}
		})
	}
}

func TestUniqueItems(t *testing.T) {
	tests := []struct {
		in                 string
		pairwise, adjacent bool // true means pass
	}{
		{`[]`, true, true},
		{`[1, 2, 3]`, true, true},
		{`[1, 2, 2, 3]`, false, false},
		{`[1, 2, 1]`, false, true},
		{`[{"a": 1, "b": 2}, {"b": 2, "a": 1}]`, false, false},
		{`[1, 1.0]`, false, false},
		{`[[1, 2], [2, 1]]`, true, true},
		{`"not an array"`, true, true},
	}
	pairwise := UniqueItems(UniquePairwise)
	adjacent := UniqueItems(UniqueAdjacent)
	for _, test := range tests {
		v := parse(t, test.in)
		if got := pairwise.Match(v, FirstFailure) == nil; got != test.pairwise {
			t.Errorf("pairwise %s: pass = %t, want %t", test.in, got, test.pairwise)
		}
		if got := adjacent.Match(v, FirstFailure) == nil; got != test.adjacent {
			t.Errorf("adjacent %s: pass = %t, want %t", test.in, got, test.adjacent)
		}
	}
}

func TestLocations(t *testing.T) {
	inner := checker{must(Type("string"))}
	tests := []struct {
		m    *Matcher
		in   string
		want []*validerr.ValidationError
	}{
		{
			Maximum(3, false),
			`4`,
			[]*validerr.ValidationError{{
				Message:          "value 4 is greater than maximum 3",
				KeywordLocation:  "#/maximum",
				InstanceLocation: "#",
			}},
		},
		{
			Items(inner),
			`["a", 1, 2]`,
			[]*validerr.ValidationError{
				{Message: `instance has type "integer", want "string"`, KeywordLocation: "#/items/type", InstanceLocation: "#/1"},
				{Message: `instance has type "integer", want "string"`, KeywordLocation: "#/items/type", InstanceLocation: "#/2"},
			},
		},
		{
			ItemAt(0, inner),
			`[true]`,
			[]*validerr.ValidationError{
				{Message: `instance has type "boolean", want "string"`, KeywordLocation: "#/items/0/type", InstanceLocation: "#/0"},
			},
		},
		{
			Property("a/b", inner),
			`{"a/b": null}`,
			[]*validerr.ValidationError{
				{Message: `instance has type "null", want "string"`, KeywordLocation: "#/properties/a~1b/type", InstanceLocation: "#/a~1b"},
			},
		},
		{
			Property("#a", inner),
			`{"#a": 1}`,
			[]*validerr.ValidationError{
				{Message: `instance has type "integer", want "string"`, KeywordLocation: "#/properties/#a/type", InstanceLocation: "#/#a"},
			},
		},
		{
			Property("", inner),
			`{"": 2}`,
			[]*validerr.ValidationError{
				{Message: `instance has type "integer", want "string"`, KeywordLocation: "#/properties//type", InstanceLocation: "#/"},
			},
		},
		{
			Element("default", jsonvalue.Number(1), inner),
			`"ignored"`,
			[]*validerr.ValidationError{
				{Message: `instance has type "integer", want "string"`, KeywordLocation: "#/default/type", InstanceLocation: "#"},
			},
		},
	}
	for _, test := range tests {
		err := test.m.Match(parse(t, test.in), AllFailures)
		if diff := cmp.Diff(test.want, validerr.Errs(err)); diff != "" {
			t.Errorf("%s on %s: failures mismatch (-want +got):\n%s", test.m, test.in, diff)
		}
	}
}

func TestFirstFailureStops(t *testing.T) {
	m := Items(checker{must(Type("string"))})
	v := parse(t, `[1, 2, 3]`)
	if got := len(validerr.Errs(m.Match(v, FirstFailure))); got != 1 {
		t.Errorf("FirstFailure reported %d failures, want 1", got)
	}
	if got := len(validerr.Errs(m.Match(v, AllFailures))); got != 3 {
		t.Errorf("AllFailures reported %d failures, want 3", got)
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{second(MaxLength(-1)), `"maxLength"`},
		{second(MinLength(-1)), `"minLength"`},
		{second(MinItems(-2)), `"minItems"`},
		{second(ItemCount("maxItems", -1)), `"maxItems"`},
		{second(MaxProperties(-1)), `"maxProperties"`},
		{second(MinProperties(-1)), `"minProperties"`},
		{second(Pattern("a(")), `"pattern"`},
		{second(PatternProperty("[", checker{})), `"patternProperties"`},
		{second(Type("text")), `"type"`},
		{second(Type()), `"type"`},
		{second(MultipleOf(0)), `"multipleOf"`},
	}
	for _, test := range tests {
		if test.err == nil {
			t.Errorf("missing error mentioning %s", test.want)
			continue
		}
		if !strings.Contains(test.err.Error(), test.want) {
			t.Errorf("error %q does not mention %s", test.err, test.want)
		}
	}
}

func second[T any](_ T, err error) error { return err }

func TestFormat(t *testing.T) {
	RegisterFormat("test-even-length", func(s string) error {
		if len(s)%2 != 0 {
			return errors.New("odd length")
		}
		return nil
	})
	m, ok := Format("test-even-length")
	if !ok {
		t.Fatal("registered format not found")
	}
	if err := m.Match(jsonvalue.String("ab"), FirstFailure); err != nil {
		t.Errorf("even string failed: %v", err)
	}
	if err := m.Match(jsonvalue.Number(1), FirstFailure); err != nil {
		t.Errorf("number failed: %v", err)
	}
	err := m.Match(jsonvalue.String("abc"), FirstFailure)
	if err == nil || !strings.Contains(err.Error(), "odd length") {
		t.Errorf("odd string: got %v, want odd length failure", err)
	}
	if _, ok := Format("test-no-such-format"); ok {
		t.Error("unknown format found")
	}
}
