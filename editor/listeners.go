// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

// Field identifies one independently observable field of the [Store].
// Subscribers register interest per field, so a text-only update never
// forces canvas re-render and a selection-only change never forces
// hierarchy re-render.
type Field int32

const (
	// DocumentField is the current document tree.
	DocumentField Field = iota

	// RawTextField is the raw-text mirror.
	RawTextField

	// HierarchyField is the display hierarchy tree.
	HierarchyField

	// SelectionField is the selection set (ids and elements).
	SelectionField

	// HoverField is the hovered element token.
	HoverField
)

func (f Field) String() string {
	switch f {
	case DocumentField:
		return "document"
	case RawTextField:
		return "rawText"
	case HierarchyField:
		return "hierarchyTree"
	case SelectionField:
		return "selection"
	case HoverField:
		return "hoveredToken"
	}
	return "invalid"
}

// Listeners registers lists of listener functions per observable field.
// Listeners are closure methods with all context captured, registered by
// specific views.
type Listeners map[Field][]func()

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Field][]func())
}

// Add adds a function for the given field.
func (ls *Listeners) Add(f Field, fun func()) {
	ls.Init()
	(*ls)[f] = append((*ls)[f], fun)
}

// Call calls all functions for the given field, in subscription order,
// so a subscriber reading store state always sees the same ordering
// guarantees regardless of when it registered.
func (ls *Listeners) Call(f Field) {
	for _, fun := range (*ls)[f] {
		fun()
	}
}
