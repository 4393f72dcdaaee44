// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemacache is a simple in-process cache of values
// derived from schema nodes, such as compiled validators.
// Entries are keyed by the identity of the schema node.
package schemacache

import (
	"sync"

	"github.com/altshiftab/draft04/pkg/schema"
)

// Cache maps schema nodes to values.
// The zero Cache is empty and ready to use.
// A Cache is not safe for concurrent use.
type Cache[V any] struct {
	m map[*schema.Schema]V
}

// Load checks the cache for a schema node.
// The bool result reports whether it is present.
func (c *Cache[V]) Load(s *schema.Schema) (V, bool) {
	v, ok := c.m[s]
	return v, ok
}

// Store stores a value in the cache.
// It returns the value to use, which may differ
// if the node has already been cached.
func (c *Cache[V]) Store(s *schema.Schema, v V) V {
	if old, ok := c.m[s]; ok {
		return old
	}

	if c.m == nil {
		c.m = make(map[*schema.Schema]V)
	}

	c.m[s] = v
	return v
}

// Len returns the number of cached nodes.
func (c *Cache[V]) Len() int {
	return len(c.m)
}

// ConcurrentCache is a cache that permits concurrent access.
type ConcurrentCache[V any] struct {
	cache Cache[V]
	mu    sync.Mutex
}

// Load checks the cache for a schema node.
func (cc *ConcurrentCache[V]) Load(s *schema.Schema) (V, bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Load(s)
}

// Store stores a value in the cache.
// It returns the value to use, which may differ
// if some other goroutine already cached it.
func (cc *ConcurrentCache[V]) Store(s *schema.Schema, v V) V {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Store(s, v)
}

// Len returns the number of cached nodes.
func (cc *ConcurrentCache[V]) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.cache.Len()
}
