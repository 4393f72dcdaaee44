// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the errors returned by a failure to validate.
package validerr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is returned by a validation function
// when an instance fails validation.
type ValidationError struct {
	// Basic output fields per JSON Schema output format (basic).
	// Locations are JSON pointer fragments such as
	// "#/properties/a/maximum" and "#/a".
	Message          string `json:"error"`
	KeywordLocation  string `json:"keywordLocation"`
	InstanceLocation string `json:"instanceLocation"`
}

// New returns a failure of the keyword at the schema root,
// located at the root of the instance.
// The keyword is an escaped relative pointer such as "maximum"
// or "properties/a".
func New(keyword, format string, args ...any) *ValidationError {
	return &ValidationError{
		Message:          fmt.Sprintf(format, args...),
		KeywordLocation:  "#/" + keyword,
		InstanceLocation: "#",
	}
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ve *ValidationError) Error() string {
	kl := ve.KeywordLocation
	if kl == "" {
		kl = "#"
	}
	return fmt.Sprintf("%s: %s", kl, ve.Message)
}

// ValidationErrors is a collection of ValidationError values.
type ValidationErrors struct {
	Errs []*ValidationError
}

// Error returns the error message that a user should see.
// This implements the error interface.
func (ves *ValidationErrors) Error() string {
	if len(ves.Errs) == 1 {
		return ves.Errs[0].Error()
	}
	return errors.Join(ves.Unwrap()...).Error()
}

// Unwrap returns the individual failures.
func (ves *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(ves.Errs))
	for i, ve := range ves.Errs {
		errs[i] = ve
	}
	return errs
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	switch err.(type) {
	case *ValidationError, *ValidationErrors:
		return true
	}
	return false
}

// Errs returns the individual failures held by err,
// or nil if err is not a validation error.
func Errs(err error) []*ValidationError {
	switch err := err.(type) {
	case *ValidationError:
		return []*ValidationError{err}
	case *ValidationErrors:
		return err.Errs
	}
	return nil
}

// Join appends the JSON pointer loc to the pointer fragment base.
// A leading "#" on either is the root marker and is dropped.
// Tokens are already escaped and keep their leading "/",
// so "/" names the empty member and "" adds nothing.
func Join(base, loc string) string {
	base = strings.TrimPrefix(base, "#")
	loc = strings.TrimPrefix(loc, "#")
	return "#" + base + loc
}

// Rebase returns a copy of ve with keywordLoc prefixed to
// its keyword location and instanceLoc prefixed to its
// instance location. The prefixes are escaped JSON pointers
// such as "/properties/a" and "/a", or "" for none.
func (ve *ValidationError) Rebase(keywordLoc, instanceLoc string) *ValidationError {
	return &ValidationError{
		Message:          ve.Message,
		KeywordLocation:  Join(keywordLoc, ve.KeywordLocation),
		InstanceLocation: Join(instanceLoc, ve.InstanceLocation),
	}
}

// AddError adds an error, which may be a validation error,
// to another error. Validation failures are rebased under
// keywordLoc and instanceLoc.
func AddError(perr *error, err error, keywordLoc, instanceLoc string) {
	if err == nil {
		return
	}

	if ve, ok := err.(*ValidationError); ok {
		AddValidationErrorStruct(perr, ve.Rebase(keywordLoc, instanceLoc))
		return
	}
	if ves, ok := err.(*ValidationErrors); ok {
		for _, ve := range ves.Errs {
			AddValidationErrorStruct(perr, ve.Rebase(keywordLoc, instanceLoc))
		}
		return
	}

	// The new error is not a validation error.

	if *perr == nil || IsValidationError(*perr) {
		// Replace a validation error with a non-validation error.
		*perr = err
	} else if unwrap, ok := (*perr).(interface{ Unwrap() []error }); ok && len(unwrap.Unwrap()) > 0 {
		*perr = errors.Join(append(unwrap.Unwrap(), err)...)
	} else {
		*perr = errors.Join(*perr, err)
	}
}

// AddValidationErrorStruct adds a [ValidationError] to an existing error.
// The provided ve should already have basic fields populated.
func AddValidationErrorStruct(perr *error, ve *ValidationError) {
	if *perr == nil {
		*perr = ve
	} else if one, ok := (*perr).(*ValidationError); ok {
		*perr = &ValidationErrors{
			Errs: []*ValidationError{
				one,
				ve,
			},
		}
	} else if ves, ok := (*perr).(*ValidationErrors); ok {
		ves.Errs = append(ves.Errs, ve)
	} else {
		// Don't disturb an existing error that is not a validation error.
	}
}
