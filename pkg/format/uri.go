// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// uri requires an absolute RFC 3986 URI.
func uri(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a URI: %v", s, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("%q is not an absolute URI", s)
	}
	// An IPv6 host must be bracketed.
	if addr, err := netip.ParseAddr(u.Host); err == nil && addr.Is6() {
		return fmt.Errorf("%q has an unbracketed IPv6 host", s)
	}
	if strings.Contains(u.Fragment, `\`) {
		return fmt.Errorf("%q has a backslash in its fragment", s)
	}
	for _, c := range []byte(u.RawPath) {
		if !isPathByte(c) {
			return fmt.Errorf("%q has invalid path character %q", s, c)
		}
	}
	return nil
}

// isPathByte reports whether c may appear in an escaped URI path.
func isPathByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@/%", c) >= 0
}
