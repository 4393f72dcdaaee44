// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"fmt"
	"log/slog"

	"github.com/altshiftab/draft04/internal/matcher"
	"github.com/altshiftab/draft04/internal/schemacache"
	"github.com/altshiftab/draft04/pkg/jsonpointer"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

// compiler builds the validators for one call to New.
type compiler struct {
	cfg   config
	log   *slog.Logger
	arena schemacache.Cache[*Validator]
	root  *schema.Schema
}

// compile returns the validator for s, building it if needed.
// path is the location of s, used only for logging.
func (c *compiler) compile(s *schema.Schema, path string) (*Validator, error) {
	if v, ok := c.arena.Load(s); ok {
		return v, nil
	}
	if c.root == nil {
		c.root = s
	}

	// Store before compiling sub-schemas so that a schema
	// that reaches itself gets this validator.
	v := c.arena.Store(s, &Validator{s: s})

	b := &build{c: c, s: s, path: path}
	b.numeric()
	b.text()
	b.array()
	b.object()
	b.common()
	if b.err != nil {
		return nil, b.err
	}

	v.matchers = b.ms
	v.unenforced = b.unenforced
	for _, kw := range b.unenforced {
		c.log.Warn("keyword not enforced", "schema", path, "keyword", kw)
	}
	c.log.Debug("compiled schema", "schema", path, "checks", len(b.ms))
	return v, nil
}

// checkDefaults validates each "default" value against its own schema.
func (c *compiler) checkDefaults() error {
	for s := range c.root.All() {
		d, ok := s.Default()
		if !ok {
			continue
		}
		v, ok := c.arena.Load(s)
		if !ok {
			continue
		}
		m := matcher.Element(schema.DefaultKeyword.Name, d, v)
		if err := m.Match(jsonvalue.Null(), matcher.FirstFailure); err != nil {
			return fmt.Errorf("invalid default: %w", err)
		}
	}
	return nil
}

// build collects the checks for one schema node.
// After the first error, further additions are ignored.
type build struct {
	c          *compiler
	s          *schema.Schema
	path       string
	ms         []*matcher.Matcher
	unenforced []string
	err        error
}

func (b *build) add(m *matcher.Matcher, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = fmt.Errorf("%s: %w", b.path, err)
		return
	}
	b.ms = append(b.ms, m)
}

// sub compiles a sub-schema at the given location below b.
func (b *build) sub(s *schema.Schema, toks ...string) *Validator {
	if b.err != nil {
		return nil
	}
	v, err := b.c.compile(s, jsonpointer.Append(b.path, toks...))
	if err != nil {
		b.err = err
		return nil
	}
	return v
}

func (b *build) numeric() {
	s := b.s
	if d, ok := s.MultipleOf(); ok {
		b.add(matcher.MultipleOf(d))
	}
	if max, ok := s.Maximum(); ok {
		b.add(matcher.Maximum(max, s.ExclusiveMaximum()), nil)
	}
	if min, ok := s.Minimum(); ok {
		b.add(matcher.Minimum(min, s.ExclusiveMinimum()), nil)
	}
}

func (b *build) text() {
	s := b.s
	if n, ok := s.MaxLength(); ok {
		b.add(matcher.MaxLength(n))
	}
	if n := s.MinLength(); n != 0 {
		b.add(matcher.MinLength(n))
	}
	if p := s.Pattern(); p != "" {
		b.add(matcher.Pattern(p))
	}
	if f := s.Format(); f != "" && b.c.cfg.format {
		if m, ok := matcher.Format(f); ok {
			b.add(m, nil)
		} else {
			b.c.log.Debug("format not asserted", "schema", b.path, "format", f)
		}
	}
}

func (b *build) array() {
	s := b.s
	// An empty "items" list constrains nothing.
	if items, ok := s.Items(); ok && (items.Schema != nil || len(items.Schemas) > 0) {
		if items.Schema != nil || len(items.Schemas) == 1 {
			one := items.Schema
			if one == nil {
				one = items.Schemas[0]
			}
			if v := b.sub(one, schema.ItemsKeyword.Name); v != nil {
				b.add(matcher.Items(v), nil)
			}
		} else {
			n := int64(len(items.Schemas))
			if !s.AdditionalItems() {
				if min := s.MinItems(); min > n {
					b.add(nil, fmt.Errorf(`"minItems" argument %d exceeds the %d items allowed by "additionalItems"`, min, n))
				}
				b.add(matcher.ItemCount(schema.AdditionalItemsKeyword.Name, n))
			}
			for i, is := range items.Schemas {
				if v := b.sub(is, schema.ItemsKeyword.Name, fmt.Sprint(i)); v != nil {
					b.add(matcher.ItemAt(i, v), nil)
				}
			}
		}
	}
	if n, ok := s.MaxItems(); ok {
		b.add(matcher.ItemCount(schema.MaxItemsKeyword.Name, n))
	}
	if n := s.MinItems(); n != 0 {
		b.add(matcher.MinItems(n))
	}
	if s.UniqueItems() {
		b.add(matcher.UniqueItems(b.c.cfg.unique), nil)
	}
	if pv, ok := s.LookupKeyword(schema.AdditionalItemsKeyword.Name); ok {
		if bs, ok := pv.(schema.PartBoolOrSchema); ok && bs.Schema != nil {
			b.unenforced = append(b.unenforced, schema.AdditionalItemsKeyword.Name)
		}
	}
}

func (b *build) object() {
	s := b.s
	if n, ok := s.MaxProperties(); ok {
		b.add(matcher.MaxProperties(n))
	}
	if n := s.MinProperties(); n != 0 {
		b.add(matcher.MinProperties(n))
	}
	for _, name := range s.Required() {
		b.add(matcher.Required(name), nil)
	}
	for _, ns := range s.Properties() {
		if v := b.sub(ns.Schema, schema.PropertiesKeyword.Name, ns.Name); v != nil {
			b.add(matcher.Property(ns.Name, v), nil)
		}
	}
	for _, ns := range s.PatternProperties() {
		if v := b.sub(ns.Schema, schema.PatternPropertiesKeyword.Name, ns.Name); v != nil {
			b.add(matcher.PatternProperty(ns.Name, v))
		}
	}
	if pv, ok := s.LookupKeyword(schema.AdditionalPropertiesKeyword.Name); ok {
		if bs, ok := pv.(schema.PartBoolOrSchema); ok && (bs.Schema != nil || !bs.Bool) {
			b.unenforced = append(b.unenforced, schema.AdditionalPropertiesKeyword.Name)
		}
	}
	if len(s.Dependencies()) > 0 {
		b.unenforced = append(b.unenforced, schema.DependenciesKeyword.Name)
	}
}

func (b *build) common() {
	if types := b.s.Type(); len(types) > 0 {
		b.add(matcher.Type(types...))
	}
}
