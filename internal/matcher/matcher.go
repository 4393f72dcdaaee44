// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcher is the predicate library used by compiled validators.
//
// A [Matcher] checks one keyword of one schema against a JSON value.
// Each matcher has a fixed [Kind] and captures the keyword argument
// when it is built. Except for [KindType] and [KindElement], a matcher
// passes any value outside the type family its keyword applies to:
// "maxLength" says nothing about numbers.
//
// Matchers that check sub-values delegate to a [Checker],
// which is a compiled validator for the sub-schema.
package matcher

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonpointer"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

// Kind is the kind of check a [Matcher] performs.
type Kind int

const (
	KindMaxLength Kind = iota + 1
	KindMinLength
	KindPattern
	KindMaximum
	KindExclusiveMaximum
	KindMinimum
	KindExclusiveMinimum
	KindMultipleOf
	KindType
	KindItems
	KindItemAt
	KindItemCount
	KindMinItems
	KindUniqueItems
	KindMaxProperties
	KindMinProperties
	KindRequired
	KindProperty
	KindPatternProperty
	KindElement
	KindFormat
)

var kindNames = [...]string{
	KindMaxLength:        "string maximum length",
	KindMinLength:        "string minimum length",
	KindPattern:          "pattern match",
	KindMaximum:          "maximum",
	KindExclusiveMaximum: "exclusive maximum",
	KindMinimum:          "minimum",
	KindExclusiveMinimum: "exclusive minimum",
	KindMultipleOf:       "multipleOf",
	KindType:             "is of type",
	KindItems:            "are array items valid",
	KindItemAt:           "is array item valid",
	KindItemCount:        "array items max count",
	KindMinItems:         "array items min count",
	KindUniqueItems:      "unique items",
	KindMaxProperties:    "object properties max count",
	KindMinProperties:    "object properties min count",
	KindRequired:         "object property is present",
	KindProperty:         "is object property valid",
	KindPatternProperty:  "are pattern properties valid",
	KindElement:          "is element valid",
	KindFormat:           "format",
}

// String describes the check.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode controls how many failures a check reports.
// The pass or fail verdict does not depend on the mode.
type Mode int

const (
	// FirstFailure stops at the first failing element or member.
	FirstFailure Mode = iota
	// AllFailures reports every failing element or member.
	AllFailures
)

// Uniqueness selects the meaning of "uniqueItems".
type Uniqueness int

const (
	// UniquePairwise rejects any two equal elements.
	UniquePairwise Uniqueness = iota
	// UniqueAdjacent only compares each element with its predecessor,
	// so [1,2,1] passes. This matches older releases.
	UniqueAdjacent
)

// Checker validates a value against a sub-schema.
// It is implemented by compiled validators.
type Checker interface {
	// Evaluate returns nil if v is valid, or a
	// *validerr.ValidationError or *validerr.ValidationErrors.
	Evaluate(v jsonvalue.Value, mode Mode) error
}

// Matcher is a single compiled check.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	kind Kind
	// keyword is the keyword location relative to the schema,
	// such as "maximum" or "properties/name".
	keyword string

	n       int64           // length or count bound, or tuple position
	f       float64         // numeric bound
	name    string          // property name, pattern source, format name
	types   []string        // allowed type names
	re      *regexp.Regexp  // compiled pattern
	check   Checker         // delegate for sub-values
	value   jsonvalue.Value // explicit value for KindElement
	unique  Uniqueness      // uniqueItems flavor
	formatF FormatFunc      // format checker
}

// Kind returns the kind of the matcher.
func (m *Matcher) Kind() Kind { return m.kind }

// Keyword returns the keyword location of the matcher,
// relative to its schema, such as "maximum" or "items/0".
func (m *Matcher) Keyword() string { return m.keyword }

// String describes the matcher.
func (m *Matcher) String() string {
	return fmt.Sprintf("%s (%s)", m.kind, m.keyword)
}

// Match checks v. It returns nil if v passes,
// and otherwise a *validerr.ValidationError or, for AllFailures
// with several failures, a *validerr.ValidationErrors.
func (m *Matcher) Match(v jsonvalue.Value, mode Mode) error {
	switch m.kind {
	case KindMaxLength:
		if !v.IsString() {
			return nil
		}
		if n := utf8.RuneCountInString(v.AsString()); int64(n) > m.n {
			return m.fail(`value %q too long for "maxLength" argument %d`, v.AsString(), m.n)
		}

	case KindMinLength:
		if !v.IsString() {
			return nil
		}
		if n := utf8.RuneCountInString(v.AsString()); int64(n) < m.n {
			return m.fail(`value %q too short for "minLength" argument %d`, v.AsString(), m.n)
		}

	case KindPattern:
		if !v.IsString() {
			return nil
		}
		if !m.re.MatchString(v.AsString()) {
			return m.fail("pattern %q does not match %q", m.name, v.AsString())
		}

	case KindMaximum:
		if !v.IsNumber() {
			return nil
		}
		if v.AsFloat() > m.f {
			return m.fail("value %v is greater than maximum %v", v.AsFloat(), m.f)
		}

	case KindExclusiveMaximum:
		if !v.IsNumber() {
			return nil
		}
		if v.AsFloat() >= m.f {
			return m.fail("value %v is not less than exclusive maximum %v", v.AsFloat(), m.f)
		}

	case KindMinimum:
		if !v.IsNumber() {
			return nil
		}
		if v.AsFloat() < m.f {
			return m.fail("value %v is less than minimum %v", v.AsFloat(), m.f)
		}

	case KindExclusiveMinimum:
		if !v.IsNumber() {
			return nil
		}
		if v.AsFloat() <= m.f {
			return m.fail("value %v is not greater than exclusive minimum %v", v.AsFloat(), m.f)
		}

	case KindMultipleOf:
		if !v.IsNumber() {
			return nil
		}
		if math.Mod(v.AsFloat(), m.f) != 0 {
			return m.fail("value %v is not a multiple of %v", v.AsFloat(), m.f)
		}

	case KindType:
		for _, typ := range m.types {
			if v.Is(typ) {
				return nil
			}
		}
		if len(m.types) == 1 {
			return m.fail("instance has type %q, want %q", v.TypeName(), m.types[0])
		}
		return m.fail("instance has type %q, want one of %q", v.TypeName(), m.types)

	case KindItems:
		if !v.IsArray() {
			return nil
		}
		var err error
		for i, e := range v.AsArray() {
			validerr.AddError(&err, m.check.Evaluate(e, mode), "/"+m.keyword, "/"+strconv.Itoa(i))
			if err != nil && mode == FirstFailure {
				break
			}
		}
		return err

	case KindItemAt:
		if !v.IsArray() {
			return nil
		}
		e, ok := v.Index(int(m.n))
		if !ok {
			// Missing positions are left to the count checks.
			return nil
		}
		var err error
		validerr.AddError(&err, m.check.Evaluate(e, mode), "/"+m.keyword, "/"+strconv.FormatInt(m.n, 10))
		return err

	case KindItemCount:
		if !v.IsArray() {
			return nil
		}
		if int64(v.Len()) > m.n {
			return m.fail("array has %d items, more than %d", v.Len(), m.n)
		}

	case KindMinItems:
		if !v.IsArray() {
			return nil
		}
		if int64(v.Len()) < m.n {
			return m.fail("array has %d items, fewer than %d", v.Len(), m.n)
		}

	case KindUniqueItems:
		if !v.IsArray() {
			return nil
		}
		return m.matchUnique(v.AsArray(), mode)

	case KindMaxProperties:
		if !v.IsObject() {
			return nil
		}
		if int64(v.Len()) > m.n {
			return m.fail("object has %d properties, more than %d", v.Len(), m.n)
		}

	case KindMinProperties:
		if !v.IsObject() {
			return nil
		}
		if int64(v.Len()) < m.n {
			return m.fail("object has %d properties, fewer than %d", v.Len(), m.n)
		}

	case KindRequired:
		if !v.IsObject() {
			return nil
		}
		if !v.AsObject().Has(m.name) {
			return m.fail("property %q is missing", m.name)
		}

	case KindProperty:
		if !v.IsObject() {
			return nil
		}
		pv, ok := v.AsObject().Get(m.name)
		if !ok {
			// Absence is the business of "required".
			return nil
		}
		var err error
		validerr.AddError(&err, m.check.Evaluate(pv, mode), "/"+m.keyword, "/"+jsonpointer.Escape(m.name))
		return err

	case KindPatternProperty:
		if !v.IsObject() {
			return nil
		}
		var err error
		for name, pv := range v.AsObject().All() {
			if !m.re.MatchString(name) {
				continue
			}
			validerr.AddError(&err, m.check.Evaluate(pv, mode), "/"+m.keyword, "/"+jsonpointer.Escape(name))
			if err != nil && mode == FirstFailure {
				break
			}
		}
		return err

	case KindElement:
		var err error
		validerr.AddError(&err, m.check.Evaluate(m.value, mode), "/"+m.keyword, "")
		return err

	case KindFormat:
		if !v.IsString() {
			return nil
		}
		if ferr := m.formatF(v.AsString()); ferr != nil {
			return m.fail("%v", ferr)
		}

	default:
		panic(fmt.Sprintf("unexpected matcher kind %d", m.kind))
	}
	return nil
}

// matchUnique implements both flavors of "uniqueItems".
func (m *Matcher) matchUnique(elems []jsonvalue.Value, mode Mode) error {
	var err error
	report := func(i, j int) bool {
		validerr.AddValidationErrorStruct(&err, m.fail("array items %d and %d are equal: %s", i, j, elems[j]))
		return mode == FirstFailure
	}
	switch m.unique {
	case UniqueAdjacent:
		for i := 1; i < len(elems); i++ {
			if jsonvalue.Equal(elems[i-1], elems[i]) && report(i-1, i) {
				return err
			}
		}
	default:
		for j := 1; j < len(elems); j++ {
			for i := range j {
				if jsonvalue.Equal(elems[i], elems[j]) {
					if report(i, j) {
						return err
					}
					break
				}
			}
		}
	}
	return err
}

// fail returns a failure of this matcher's keyword
// at the root of the instance.
func (m *Matcher) fail(format string, args ...any) *validerr.ValidationError {
	return validerr.New(m.keyword, format, args...)
}

// Constructors.
// Constructors for keywords with invalid arguments return an error
// naming the keyword; the others cannot fail.

// checkCount rejects negative length and count bounds.
func checkCount(keyword string, n int64) error {
	if n < 0 {
		return fmt.Errorf("%q argument is %d, must be non-negative", keyword, n)
	}
	return nil
}

// MaxLength fails strings with more than n code points.
func MaxLength(n int64) (*Matcher, error) {
	if err := checkCount(schema.MaxLengthKeyword.Name, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindMaxLength, keyword: schema.MaxLengthKeyword.Name, n: n}, nil
}

// MinLength fails strings with fewer than n code points.
func MinLength(n int64) (*Matcher, error) {
	if err := checkCount(schema.MinLengthKeyword.Name, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindMinLength, keyword: schema.MinLengthKeyword.Name, n: n}, nil
}

// compilePattern compiles a regular expression that must
// match a whole string.
func compilePattern(keyword, re string) (*regexp.Regexp, error) {
	cre, err := regexp.Compile("^(?:" + re + ")$")
	if err != nil {
		return nil, fmt.Errorf("%q argument %q is not a valid regular expression: %w", keyword, re, err)
	}
	return cre, nil
}

// Pattern fails strings that the regular expression re
// does not match in full. The syntax is that of package regexp.
func Pattern(re string) (*Matcher, error) {
	cre, err := compilePattern(schema.PatternKeyword.Name, re)
	if err != nil {
		return nil, err
	}
	return &Matcher{kind: KindPattern, keyword: schema.PatternKeyword.Name, name: re, re: cre}, nil
}

// Maximum fails numbers above max, or at or above max if exclusive.
func Maximum(max float64, exclusive bool) *Matcher {
	kind := KindMaximum
	if exclusive {
		kind = KindExclusiveMaximum
	}
	return &Matcher{kind: kind, keyword: schema.MaximumKeyword.Name, f: max}
}

// Minimum fails numbers below min, or at or below min if exclusive.
func Minimum(min float64, exclusive bool) *Matcher {
	kind := KindMinimum
	if exclusive {
		kind = KindExclusiveMinimum
	}
	return &Matcher{kind: kind, keyword: schema.MinimumKeyword.Name, f: min}
}

// MultipleOf fails numbers that leave a remainder when divided by d.
func MultipleOf(d float64) (*Matcher, error) {
	if !(d > 0) || math.IsInf(d, 0) {
		return nil, fmt.Errorf(`"multipleOf" argument is %v, must be greater than zero`, d)
	}
	return &Matcher{kind: KindMultipleOf, keyword: schema.MultipleOfKeyword.Name, f: d}, nil
}

// Type fails values that are not of one of the named types.
// An unknown type name is an error.
func Type(types ...string) (*Matcher, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf(`"type" argument is empty`)
	}
	for _, typ := range types {
		if !slices.Contains(schema.TypeNames, typ) {
			return nil, fmt.Errorf(`"type" argument is unsupported string %q`, typ)
		}
	}
	return &Matcher{kind: KindType, keyword: schema.TypeKeyword.Name, types: slices.Clone(types)}, nil
}

// Items checks every array element with c.
func Items(c Checker) *Matcher {
	return &Matcher{kind: KindItems, keyword: schema.ItemsKeyword.Name, check: c}
}

// ItemAt checks the array element at pos with c, if there is one.
func ItemAt(pos int, c Checker) *Matcher {
	return &Matcher{
		kind:    KindItemAt,
		keyword: jsonpointer.Append(schema.ItemsKeyword.Name, strconv.Itoa(pos)),
		n:       int64(pos),
		check:   c,
	}
}

// ItemCount fails arrays with more than n elements.
// The keyword is "maxItems", or "additionalItems" when it limits
// a tuple to its declared length.
func ItemCount(keyword string, n int64) (*Matcher, error) {
	if err := checkCount(keyword, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindItemCount, keyword: keyword, n: n}, nil
}

// MinItems fails arrays with fewer than n elements.
func MinItems(n int64) (*Matcher, error) {
	if err := checkCount(schema.MinItemsKeyword.Name, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindMinItems, keyword: schema.MinItemsKeyword.Name, n: n}, nil
}

// UniqueItems fails arrays with equal elements.
func UniqueItems(u Uniqueness) *Matcher {
	return &Matcher{kind: KindUniqueItems, keyword: schema.UniqueItemsKeyword.Name, unique: u}
}

// MaxProperties fails objects with more than n members.
func MaxProperties(n int64) (*Matcher, error) {
	if err := checkCount(schema.MaxPropertiesKeyword.Name, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindMaxProperties, keyword: schema.MaxPropertiesKeyword.Name, n: n}, nil
}

// MinProperties fails objects with fewer than n members.
func MinProperties(n int64) (*Matcher, error) {
	if err := checkCount(schema.MinPropertiesKeyword.Name, n); err != nil {
		return nil, err
	}
	return &Matcher{kind: KindMinProperties, keyword: schema.MinPropertiesKeyword.Name, n: n}, nil
}

// Required fails objects without a member called name.
func Required(name string) *Matcher {
	return &Matcher{kind: KindRequired, keyword: schema.RequiredKeyword.Name, name: name}
}

// Property checks the member called name with c, if there is one.
func Property(name string, c Checker) *Matcher {
	return &Matcher{
		kind:    KindProperty,
		keyword: jsonpointer.Append(schema.PropertiesKeyword.Name, name),
		name:    name,
		check:   c,
	}
}

// PatternProperty checks with c every member whose name
// the regular expression re matches in full.
func PatternProperty(re string, c Checker) (*Matcher, error) {
	cre, err := compilePattern(schema.PatternPropertiesKeyword.Name, re)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		kind:    KindPatternProperty,
		keyword: jsonpointer.Append(schema.PatternPropertiesKeyword.Name, re),
		name:    re,
		re:      cre,
		check:   c,
	}, nil
}

// Element ignores the value it is given and checks v with c.
// It ties a validator to a fixed value, such as a default.
func Element(keyword string, v jsonvalue.Value, c Checker) *Matcher {
	return &Matcher{kind: KindElement, keyword: keyword, value: v, check: c}
}

// Format checks strings with the checker registered for name.
// The bool result is false if no checker is registered,
// in which case the format is not asserted.
func Format(name string) (*Matcher, bool) {
	ff, ok := LookupFormat(name)
	if !ok {
		return nil, false
	}
	return &Matcher{kind: KindFormat, keyword: schema.FormatKeyword.Name, name: name, formatF: ff}, true
}

// Describe lists the matchers, one per line.
func Describe(ms []*Matcher) string {
	var sb strings.Builder
	for _, m := range ms {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
