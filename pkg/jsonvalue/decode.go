// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Parse decodes a single JSON document.
// Object member order is preserved.
// Duplicate member names and trailing data are errors.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode decodes a single JSON document from r.
func Decode(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	d := decoder{dec: dec}
	tok, err := d.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("jsonvalue: empty JSON document")
		}
		return Value{}, err
	}
	v, err := d.value(tok)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: after top-level value: %w", err)
		}
		return Value{}, errors.New("jsonvalue: unexpected data after top-level value")
	}
	return v, nil
}

// decoder walks the token stream of a go-json Decoder.
type decoder struct {
	dec   *json.Decoder
	depth int
}

// maxDepth bounds the nesting of decoded containers.
const maxDepth = 10000

// next returns the next token.
func (d *decoder) next() (json.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, err
		}
		return nil, fmt.Errorf("jsonvalue: %w", err)
	}
	return tok, nil
}

// value builds the value starting with tok.
func (d *decoder) value(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return Value{}, fmt.Errorf("jsonvalue: unexpected delimiter %q", rune(t))
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jsonvalue: number %s: %w", t, err)
		}
		return Number(f), nil
	case float64:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("jsonvalue: unexpected token %T", tok)
	}
}

// object decodes object members up to the closing brace.
func (d *decoder) object() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	defer d.pop()

	o := &Object{}
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return ObjectValue(o), nil
		}
		name, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("jsonvalue: object key is %T, want string", tok)
		}
		tok, err = d.next()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		if err := o.add(name, v); err != nil {
			return Value{}, fmt.Errorf("jsonvalue: %w", err)
		}
	}
}

// array decodes array elements up to the closing bracket.
func (d *decoder) array() (Value, error) {
	if err := d.push(); err != nil {
		return Value{}, err
	}
	defer d.pop()

	var elems []Value
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, unexpectedEOF(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return Value{kind: KindArray, arr: elems}, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
}

func (d *decoder) push() error {
	d.depth++
	if d.depth > maxDepth {
		return errors.New("jsonvalue: document nested too deeply")
	}
	return nil
}

func (d *decoder) pop() { d.depth-- }

// unexpectedEOF turns a bare EOF inside a container into
// a descriptive error.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("jsonvalue: %w", io.ErrUnexpectedEOF)
	}
	return err
}
