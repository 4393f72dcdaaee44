// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcher

import (
	"maps"
	"slices"
	"sync"
)

// FormatFunc checks a string against a named format.
// It returns nil if the string is valid, or an error
// describing why it is not.
type FormatFunc func(string) error

// formatFuncs maps format names to checkers.
var formatFuncs map[string]FormatFunc

// formatFuncsLock is a lock for formatFuncs.
var formatFuncsLock sync.Mutex

// RegisterFormat records a checker to use for a format name.
// A later registration for the same name replaces the earlier one.
func RegisterFormat(name string, ff FormatFunc) {
	formatFuncsLock.Lock()
	defer formatFuncsLock.Unlock()
	if formatFuncs == nil {
		formatFuncs = make(map[string]FormatFunc)
	}
	formatFuncs[name] = ff
}

// LookupFormat returns the checker registered for a format name.
func LookupFormat(name string) (FormatFunc, bool) {
	formatFuncsLock.Lock()
	defer formatFuncsLock.Unlock()
	ff, ok := formatFuncs[name]
	return ff, ok
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	formatFuncsLock.Lock()
	defer formatFuncsLock.Unlock()
	return slices.Sorted(maps.Keys(formatFuncs))
}
