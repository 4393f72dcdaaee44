// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/altshiftab/draft04/pkg/jsonvalue"
	"github.com/altshiftab/draft04/pkg/schema"
	"github.com/altshiftab/draft04/pkg/validator"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		format string
		good   []string
		bad    []string
	}{
		{
			"date-time",
			[]string{
				"1985-04-12T23:20:50.52Z",
				"1996-12-19T16:39:57-08:00",
				"1990-12-31T23:59:60Z",
				"1990-12-31T15:59:60-08:00",
				"2024-02-29t00:00:00+01:00",
			},
			[]string{
				"1985-04-12",
				"1985-04-12 23:20:50Z",
				"2023-02-29T00:00:00Z",
				"1985-13-01T00:00:00Z",
				"1985-04-12T24:00:00Z",
				"1985-04-12T23:20:50",
				"1985-04-12T23:20:50.Z",
				"1990-12-31T23:58:60Z",
				"1985-04-12T23:20:50+1:00",
			},
		},
		{
			"email",
			[]string{"joe.bloggs@example.com", "a+b@sub.example.org"},
			[]string{"", "joe", "@example.com", "Joe <joe@example.com>", "joe@exämple.com"},
		},
		{
			"hostname",
			[]string{"example.com", "www.example.com.", "a-b.c", "localhost", "xn--bcher-kva.example"},
			[]string{"", "-bad.com", "bad-.com", "a..b", "under_score.com", "bücher.example", strings.Repeat("a", 64) + ".com"},
		},
		{
			"ipv4",
			[]string{"127.0.0.1", "0.0.0.0", "255.255.255.255"},
			[]string{"256.0.0.1", "1.2.3", "::1", "01.2.3.4"},
		},
		{
			"ipv6",
			[]string{"::1", "2001:db8::ff00:42:8329", "::ffff:1.2.3.4"},
			[]string{"127.0.0.1", "fe80::1%eth0", "1:2:3:4:5:6:7:8:9", "g::1"},
		},
		{
			"uri",
			[]string{"http://example.com/a/b?c=d#e", "urn:isbn:0451450523", "mailto:joe@example.com", "http://[::1]:8080/"},
			[]string{"/relative/path", "example.com", "http://::1/", `http://example.com/#a\b`, "http://example.com/a b"},
		},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			for _, s := range test.good {
				known, err := Check(test.format, s)
				if !known {
					t.Fatalf("format %q not registered", test.format)
				}
				if err != nil {
					t.Errorf("%q: unexpected error %v", s, err)
				}
			}
			for _, s := range test.bad {
				if _, err := Check(test.format, s); err == nil {
					t.Errorf("%q: accepted, want error", s)
				}
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	names := Formats()
	for _, want := range []string{"date-time", "email", "hostname", "ipv4", "ipv6", "uri"} {
		if !slices.Contains(names, want) {
			t.Errorf("format %q is not registered", want)
		}
	}
	if known, err := Check("no-such-format", "x"); known || err != nil {
		t.Errorf("Check of unknown format = %t, %v; want false, nil", known, err)
	}
}

func TestRegisterFormat(t *testing.T) {
	RegisterFormat("test-never", func(string) error { return errors.New("never") })

	s, err := schema.Parse([]byte(`{"properties": {"a": {"format": "test-never"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	v, err := validator.New(s, validator.WithFormat(true))
	if err != nil {
		t.Fatal(err)
	}
	inst := jsonvalue.ObjectOf(jsonvalue.Member{Name: "a", Value: jsonvalue.String("x")})
	err = v.Validate(inst)
	var ve *validator.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Validate = %v, want a validation error", err)
	}
	if ve.KeywordLocation != "#/properties/a/format" || ve.InstanceLocation != "#/a" {
		t.Errorf("failure at %s, %s; want #/properties/a/format, #/a", ve.KeywordLocation, ve.InstanceLocation)
	}
}
