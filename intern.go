// This file is part of sxpr - https://github.com/kitanokitsune/sxpr
//
// Licensed under the MIT License. See the LICENSE file for details.

package sxpr

import (
	"runtime"
	"sync"
	"weak"
)

// internTable is a weak-valued cache keyed by a canonical form: at most one
// live *V per key, and an entry that is no longer referenced anywhere else
// is reclaimable. This is the explicit "intern-with-finalization" scheme
// spec.md §9 describes for systems without a native weak-valued map: the
// table itself never holds a strong reference to V (only a weak.Pointer),
// and runtime.AddCleanup removes the now-stale map entry once the value is
// collected.
//
// The table is internally synchronized. The S-expression intern tables are
// documented as not safe for uncoordinated concurrent use (spec.md §5); the
// mutex here only protects the Go map itself from concurrent corruption,
// it does not make construction callers atomic with respect to each other.
type internTable[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]weak.Pointer[V]
}

func newInternTable[K comparable, V any]() *internTable[K, V] {
	return &internTable[K, V]{m: make(map[K]weak.Pointer[V])}
}

// intern returns the live value for key, calling build to construct one if
// none is currently live.
func (t *internTable[K, V]) intern(key K, build func() *V) *V {
	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.m[key]; ok {
		if v := wp.Value(); v != nil {
			return v
		}
	}
	v := build()
	t.m[key] = weak.Make(v)
	runtime.AddCleanup(v, t.evict, key)
	return v
}

func (t *internTable[K, V]) evict(key K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if wp, ok := t.m[key]; ok && wp.Value() == nil {
		delete(t.m, key)
	}
}

// live returns every key currently interned, for introspection/testing
// (mirrors Symbol.listall/Char.listall in original_source/sxprlib.py).
func (t *internTable[K, V]) live() []K {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]K, 0, len(t.m))
	for k, wp := range t.m {
		if wp.Value() != nil {
			keys = append(keys, k)
		}
	}
	return keys
}
