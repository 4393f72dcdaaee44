// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"fmt"
	"iter"
)

// Children returns an iterator over the immediate subschemas.
// The first iterator value is the name of the schema as used in a JSON pointer,
// such as "items/0" or "properties/name"; map keys are not escaped.
// The second is the schema itself.
// Subschemas are visited in part order.
func (s *Schema) Children() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		if s == nil {
			return
		}
		for _, part := range s.Parts {
			name := part.Keyword.Name
			switch v := part.Value.(type) {
			case PartSchema:
				if !yield(name, v.S) {
					return
				}

			case PartMapSchema:
				for _, ns := range v {
					if !yield(name+"/"+ns.Name, ns.Schema) {
						return
					}
				}

			case PartSchemaOrSchemas:
				if v.Schema != nil {
					if !yield(name, v.Schema) {
						return
					}
				} else {
					for i, sub := range v.Schemas {
						if !yield(fmt.Sprintf("%s/%d", name, i), sub) {
							return
						}
					}
				}

			case PartBoolOrSchema:
				if v.Schema != nil {
					if !yield(name, v.Schema) {
						return
					}
				}

			case PartMapArrayOrSchema:
				for _, dep := range v {
					if dep.Schema != nil {
						if !yield(name+"/"+dep.Name, dep.Schema) {
							return
						}
					}
				}
			}
		}
	}
}

// All returns an iterator over s and every schema reachable from it,
// each visited once, parents before children.
// Cyclic trees are handled.
func (s *Schema) All() iter.Seq[*Schema] {
	return func(yield func(*Schema) bool) {
		seen := make(map[*Schema]bool)
		var walk func(*Schema) bool
		walk = func(n *Schema) bool {
			if n == nil || seen[n] {
				return true
			}
			seen[n] = true
			if !yield(n) {
				return false
			}
			for _, c := range n.Children() {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(s)
	}
}
