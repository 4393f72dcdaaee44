// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metaschema

import (
	"strings"
	"testing"

	"github.com/altshiftab/draft04/internal/validerr"
	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
)

func TestMetaSchemaDescribesItself(t *testing.T) {
	s, err := Schema()
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != schema.SchemaID {
		t.Errorf("meta-schema id = %q, want %q", s.ID(), schema.SchemaID)
	}
	v, err := jsonvalue.Parse(draft04)
	if err != nil {
		t.Fatal(err)
	}
	if err := Check(v); err != nil {
		t.Errorf("meta-schema fails itself: %v", err)
	}
	v1, _ := Validator()
	v2, _ := Validator()
	if v1 != v2 {
		t.Error("Validator is rebuilt on each call")
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		doc  string
		want []string // keyword locations, empty when valid
	}{
		{`{}`, nil},
		{`{"title": "t", "type": "string", "maxLength": 3}`, nil},
		{`{"properties": {"a": {"minimum": 1}}, "required": ["a"]}`, nil},
		{`[]`, []string{"#/type"}},
		{`{"title": 5}`, []string{"#/properties/title/type"}},
		{`{"multipleOf": 0}`, []string{"#/properties/multipleOf/minimum"}},
		{`{"exclusiveMaximum": "yes"}`, []string{"#/properties/exclusiveMaximum/type"}},
		{`{"enum": []}`, []string{"#/properties/enum/minItems"}},
		{`{"properties": [], "uniqueItems": 1}`, []string{
			"#/properties/uniqueItems/type",
			"#/properties/properties/type",
		}},
	}
	for _, test := range tests {
		v, err := jsonvalue.Parse([]byte(test.doc))
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, ve := range validerr.Errs(Check(v)) {
			got = append(got, ve.KeywordLocation)
		}
		if strings.Join(got, ",") != strings.Join(test.want, ",") {
			t.Errorf("Check(%s) failed at %q, want %q", test.doc, got, test.want)
		}
	}
}
