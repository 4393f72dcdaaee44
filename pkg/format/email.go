// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/mail"
	"strings"
)

// email requires a bare RFC 5322 address, such as "a@example.com".
// Display names ("A <a@example.com>") are rejected,
// as are domains with non-ASCII characters.
func email(s string) error {
	// net/mail does not know the "IPv6:" literal prefix.
	addr, err := mail.ParseAddress(strings.Replace(s, "[IPv6:", "[", 1))
	if err != nil {
		return fmt.Errorf("%q is not an email address: %v", s, err)
	}
	if addr.Name != "" || strings.ContainsAny(s, "<>") {
		return fmt.Errorf("%q is not a bare email address", s)
	}
	at := strings.LastIndexByte(addr.Address, '@')
	domain := addr.Address[at+1:]
	if !strings.HasPrefix(domain, "[") && !isASCIIDomain(domain) {
		return fmt.Errorf("%q has an invalid domain", s)
	}
	return nil
}

// isASCIIDomain reports whether s uses only letters, digits,
// dots and hyphens.
func isASCIIDomain(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return true
}
