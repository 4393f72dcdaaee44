// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtype

import (
	"testing"

	"github.com/altshiftab/draft04/pkg/schema"
)

func TestEveryKeywordHasNames(t *testing.T) {
	for name, k := range schema.Keywords {
		if Name(k.ArgType) == "" || GoType(k.ArgType) == "" {
			t.Errorf("keyword %s: ArgType %d has no name", name, k.ArgType)
		}
	}
}

func TestUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Name(0) did not panic")
		}
	}()
	Name(0)
}
