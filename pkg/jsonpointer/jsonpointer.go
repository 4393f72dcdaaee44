// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer implements RFC 6901 JSON pointers over
// schemas and JSON values.
// This is not a fully general package.
package jsonpointer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/altshiftab/draft04/internal/argtype"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

// Escape mangles a single reference token.
func Escape(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

// Unescape unmangles a single reference token.
func Unescape(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}

// Split returns the unescaped reference tokens of pointer.
// A leading "#" fragment marker is accepted.
// The empty pointer and "#" refer to the whole document
// and have no tokens.
func Split(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("JSON pointer %q does not start with /", pointer)
	}
	toks := strings.Split(pointer[1:], "/")
	for i, tok := range toks {
		toks[i] = Unescape(tok)
	}
	return toks, nil
}

// Append appends escaped tokens to pointer.
func Append(pointer string, toks ...string) string {
	var sb strings.Builder
	sb.WriteString(pointer)
	for _, tok := range toks {
		sb.WriteByte('/')
		sb.WriteString(Escape(tok))
	}
	return sb.String()
}

// DerefSchema takes a JSON pointer and a root schema and returns
// the schema to which the pointer refers.
// Pointers may pass through keywords that this module
// does not know about, such as "definitions".
func DerefSchema(root *schema.Schema, pointer string) (*schema.Schema, error) {
	toks, err := Split(pointer)
	if err != nil {
		return nil, err
	}

	s := root
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		pv, ok := s.LookupKeyword(tok)
		if !ok {
			return nil, fmt.Errorf("when dereferencing pointer %q keyword %q not present", pointer, tok)
		}

		// next returns the following token.
		next := func(what string) (string, error) {
			i++
			if i >= len(toks) {
				return "", fmt.Errorf("when dereferencing pointer %q expected %s after %q", pointer, what, tok)
			}
			return toks[i], nil
		}

		switch pv := pv.(type) {
		case schema.PartSchema:
			s = pv.S

		case schema.PartMapSchema:
			key, err := next("map key")
			if err != nil {
				return nil, err
			}
			ms := pv.Lookup(key)
			if ms == nil {
				return nil, fmt.Errorf("when dereferencing pointer %q map key %q not present", pointer, key)
			}
			s = ms

		case schema.PartSchemaOrSchemas:
			if pv.Schema != nil {
				s = pv.Schema
				continue
			}
			idxTok, err := next("array index")
			if err != nil {
				return nil, err
			}
			idx, err := index(pointer, idxTok, len(pv.Schemas))
			if err != nil {
				return nil, err
			}
			s = pv.Schemas[idx]

		case schema.PartBoolOrSchema:
			if pv.Schema == nil {
				return nil, fmt.Errorf("when dereferencing pointer %q %q is a boolean, not a schema", pointer, tok)
			}
			s = pv.Schema

		case schema.PartMapArrayOrSchema:
			key, err := next("map key")
			if err != nil {
				return nil, err
			}
			var found *schema.Dependency
			for j := range pv {
				if pv[j].Name == key {
					found = &pv[j]
					break
				}
			}
			if found == nil {
				return nil, fmt.Errorf("when dereferencing pointer %q map key %q not present", pointer, key)
			}
			if found.Schema == nil {
				return nil, fmt.Errorf("when dereferencing pointer %q map key %q is not a schema", pointer, key)
			}
			s = found.Schema

		case schema.PartAny:
			// The rest of the pointer is resolved in the raw value,
			// which must lead to an object that decodes as a schema.
			rest := Append("", toks[i+1:]...)
			v, err := DerefValue(pv.V, rest)
			if err != nil {
				return nil, fmt.Errorf("when dereferencing pointer %q: %v", pointer, err)
			}
			sub, err := schema.FromValue(v)
			if err != nil {
				return nil, fmt.Errorf("when dereferencing pointer %q failed to decode unrecognized schema: %v", pointer, err)
			}
			return sub, nil

		default:
			return nil, fmt.Errorf("when dereferencing pointer %q unexpected part type %s", pointer, argtype.Name(schema.LookupKeywordDef(tok).ArgType))
		}
	}

	return s, nil
}

// DerefValue takes a JSON pointer and a root value and returns
// the value to which the pointer refers.
func DerefValue(root jsonvalue.Value, pointer string) (jsonvalue.Value, error) {
	toks, err := Split(pointer)
	if err != nil {
		return jsonvalue.Value{}, err
	}

	v := root
	for _, tok := range toks {
		switch {
		case v.IsObject():
			member, ok := v.AsObject().Get(tok)
			if !ok {
				return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q member %q not present", pointer, tok)
			}
			v = member
		case v.IsArray():
			idx, err := index(pointer, tok, v.Len())
			if err != nil {
				return jsonvalue.Value{}, err
			}
			v, _ = v.Index(idx)
		default:
			return jsonvalue.Value{}, fmt.Errorf("when dereferencing pointer %q cannot index %s with %q", pointer, v.Kind(), tok)
		}
	}
	return v, nil
}

// index parses an array index token and checks it against length.
func index(pointer, tok string, length int) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil || (len(tok) > 1 && tok[0] == '0') {
		return 0, fmt.Errorf("when dereferencing pointer %q got token %q, expected array index", pointer, tok)
	}
	if idx < 0 || idx >= length {
		return 0, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", pointer, idx, length)
	}
	return idx, nil
}
