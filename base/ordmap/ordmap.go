// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order in which
// items are added, while providing map-based lookup by key. The element
// attribute maps in [cogentcore.org/vector/svg] are the primary client:
// attribute order must survive serialize / parse round trips exactly.
package ordmap

import (
	"fmt"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map, combining the order of a slice with the
// fast key lookup of a map. The map stores an index into the slice, which
// holds the key and value in the order added. Setting an existing key
// updates the value in place, preserving its original position.
type Map[K comparable, V any] struct {

	// Order is the ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		Map: make(map[K]int),
	}
}

func (om *Map[K, V]) init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Set sets the value for the given key. If the key already exists, its
// value is replaced in place; otherwise the pair is appended at the end.
func (om *Map[K, V]) Set(key K, value V) {
	om.init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = value
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: value})
}

// ValueByKey returns the value for the given key, with a zero value
// returned for a missing key. See [Map.ValueByKeyTry] for a version
// that reports whether the key was present.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value for the given key, and whether it exists.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if idx, has := om.Map[key]; has {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the insertion index of the given key, or -1 if missing.
func (om *Map[K, V]) IndexByKey(key K) int {
	if idx, has := om.Map[key]; has {
		return idx
	}
	return -1
}

// DeleteByKey deletes the item with the given key, returning false if
// it was not found. Deletion preserves the order of remaining items.
func (om *Map[K, V]) DeleteByKey(key K) bool {
	idx, has := om.Map[key]
	if !has {
		return false
	}
	om.Order = slices.Delete(om.Order, idx, idx+1)
	delete(om.Map, key)
	for k, i := range om.Map {
		if i > idx {
			om.Map[k] = i - 1
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, len(om.Order))
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Copy returns a shallow copy with independent order and index storage.
func (om *Map[K, V]) Copy() *Map[K, V] {
	nm := &Map[K, V]{
		Order: slices.Clone(om.Order),
		Map:   make(map[K]int, len(om.Map)),
	}
	for k, v := range om.Map {
		nm.Map[k] = v
	}
	return nm
}

// String returns a string representation, for debugging.
func (om *Map[K, V]) String() string {
	return fmt.Sprintf("%v", om.Order)
}
