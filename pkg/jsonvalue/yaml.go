// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes the first document of a YAML stream into a JSON value.
// Mapping order is preserved and aliases are expanded.
// Mapping keys must be strings, and YAML values with no JSON
// equivalent (such as timestamps kept as tagged nodes) are
// decoded as their string form.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("jsonvalue: yaml: %w", err)
	}
	if doc.Kind == 0 {
		return Value{}, errors.New("jsonvalue: empty YAML document")
	}
	return fromYAMLNode(&doc, 0)
}

// fromYAMLNode converts a yaml.v3 node tree.
func fromYAMLNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, errors.New("jsonvalue: YAML document nested too deeply")
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0], depth+1)

	case yaml.AliasNode:
		if n.Alias == nil {
			return Value{}, fmt.Errorf("jsonvalue: line %d: unresolved YAML alias", n.Line)
		}
		return fromYAMLNode(n.Alias, depth+1)

	case yaml.SequenceNode:
		elems := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return Value{kind: KindArray, arr: elems}, nil

	case yaml.MappingNode:
		o := &Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
				return Value{}, fmt.Errorf("jsonvalue: line %d: mapping key %q is not a string", k.Line, k.Value)
			}
			v, err := fromYAMLNode(vn, depth+1)
			if err != nil {
				return Value{}, err
			}
			if err := o.add(k.Value, v); err != nil {
				return Value{}, fmt.Errorf("jsonvalue: line %d: %w", k.Line, err)
			}
		}
		return ObjectValue(o), nil

	case yaml.ScalarNode:
		return fromYAMLScalar(n)

	default:
		return Value{}, fmt.Errorf("jsonvalue: line %d: unexpected YAML node kind %d", n.Line, n.Kind)
	}
}

// fromYAMLScalar converts a scalar node according to its resolved tag.
func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("jsonvalue: line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("jsonvalue: line %d: %w", n.Line, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("jsonvalue: line %d: %q has no JSON representation", n.Line, n.Value)
		}
		return Number(f), nil
	default:
		return String(n.Value), nil
	}
}
