// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for the draft-04 format keyword.
// Importing this package registers them. They are only asserted by
// validators built with validator.WithFormat(true); otherwise, and for
// formats with no registered checker, the format keyword always passes.
package format

import (
	"github.com/altshiftab/draft04/internal/matcher"
)

// init registers the draft-04 formats.
func init() {
	matcher.RegisterFormat("date-time", dateTime)
	matcher.RegisterFormat("email", email)
	matcher.RegisterFormat("hostname", hostname)
	matcher.RegisterFormat("ipv4", ipv4)
	matcher.RegisterFormat("ipv6", ipv6)
	matcher.RegisterFormat("uri", uri)
}

// RegisterFormat registers a checker for a format name,
// replacing any earlier checker for that name.
// The checker is called with string instances only.
// It returns nil if the string matches the format,
// and otherwise an error saying why not.
func RegisterFormat(name string, check func(string) error) {
	matcher.RegisterFormat(name, check)
}

// Check checks s against the named format.
// The known result is false if no checker is registered for name,
// in which case err is nil.
func Check(name, s string) (known bool, err error) {
	ff, ok := matcher.LookupFormat(name)
	if !ok {
		return false, nil
	}
	return true, ff(s)
}

// Formats returns the names of all registered formats, sorted.
func Formats() []string {
	return matcher.Formats()
}
