// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

// registration is the IDNA profile for hostnames.
// It enforces label and total lengths and the LDH rule.
var registration = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// hostname requires an RFC 1123 host name.
// Only ASCII names are accepted; an internationalized name
// must be given in its punycode form.
func hostname(s string) error {
	if s == "" {
		return fmt.Errorf("empty hostname")
	}
	for _, c := range []byte(s) {
		if c >= 0x80 || c == '_' {
			return fmt.Errorf("%q is not a hostname: invalid character %q", s, c)
		}
	}
	if _, err := registration().ToASCII(strings.TrimSuffix(s, ".")); err != nil {
		return fmt.Errorf("%q is not a hostname: %v", s, err)
	}
	return nil
}
