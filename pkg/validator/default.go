// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/altshiftab/draft04/internal/schemacache"
	"github.com/altshiftab/draft04/pkg/schema"
)

// defaultCache holds validators built with default options.
var defaultCache schemacache.ConcurrentCache[*Validator]

// Default returns a validator for s built with default options.
// Validators are cached by schema node, so repeated calls
// with the same schema are cheap. The schema must not be
// modified after the first call.
func Default(s *schema.Schema) (*Validator, error) {
	if v, ok := defaultCache.Load(s); ok {
		return v, nil
	}
	v, err := New(s)
	if err != nil {
		return nil, err
	}
	return defaultCache.Store(s, v), nil
}
