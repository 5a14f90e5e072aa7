// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"cogentcore.org/vector/svg"
)

// Store is the reactive container for the state of one open document:
// the document tree, its raw-text mirror, the display hierarchy, the
// selection set, and the hovered element token, each independently
// observable. The element registry is derived and rebuilt whenever a new
// document is accepted.
//
// All mutation is single-threaded; notifications are synchronous and
// delivered in subscription order after the state is fully replaced, so a
// subscriber reading the selection immediately after a structural replace
// always sees the post-intersection result. A SetDocument triggered from
// inside a subscriber is queued and run after the current notification
// cycle, never re-entered.
type Store struct {
	doc       *svg.Document
	rawText   string
	hierarchy *svg.HierarchyNode
	registry  *svg.Registry

	selected    []svg.Token
	selectedSet map[svg.Token]bool
	hovered     svg.Token

	listeners   Listeners
	generation  uint64
	notifyDepth int
	pending     []func()
}

// NewStore returns a new, empty Store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset returns all state to initial values, dropping the open document.
// Subscriptions are preserved; they belong to the views, not the document.
func (s *Store) reset() {
	s.doc = nil
	s.rawText = ""
	s.hierarchy = nil
	s.registry = svg.NewRegistry(svg.NewDocument())
	s.selected = nil
	s.selectedSet = map[svg.Token]bool{}
	s.hovered = svg.Token{}
	s.generation = 0
}

// Subscribe registers a listener for the given field. Notifications are
// delivered synchronously, in subscription order.
func (s *Store) Subscribe(f Field, fun func()) {
	s.listeners.Add(f, fun)
}

// Accessors:

// Document returns the current document, or nil if none is open.
func (s *Store) Document() *svg.Document { return s.doc }

// RawText returns the raw-text mirror of the current document.
func (s *Store) RawText() string { return s.rawText }

// Hierarchy returns the display hierarchy tree.
func (s *Store) Hierarchy() *svg.HierarchyNode { return s.hierarchy }

// Registry returns the current element registry. It is never nil.
func (s *Store) Registry() *svg.Registry { return s.registry }

// Generation returns the generation of the current document.
func (s *Store) Generation() uint64 { return s.generation }

// SetDocument atomically replaces the document, hierarchy tree, and
// raw-text mirror in one notification cycle, rebuilding the element
// registry and intersecting the existing selection set against tokens
// present in it; stale entries are dropped silently, never errored.
func (s *Store) SetDocument(doc *svg.Document, tree *svg.HierarchyNode, rawText string) {
	if s.notifyDepth > 0 {
		s.pending = append(s.pending, func() { s.SetDocument(doc, tree, rawText) })
		return
	}
	s.generation++
	doc.Generation = s.generation
	s.doc = doc
	s.hierarchy = tree
	s.rawText = rawText
	s.registry = svg.NewRegistry(doc)

	selChanged := s.intersectSelection()
	if s.hovered != (svg.Token{}) && !s.registry.HasToken(s.hovered) {
		s.hovered = svg.Token{}
	}

	s.notify(func() {
		s.listeners.Call(DocumentField)
		s.listeners.Call(RawTextField)
		s.listeners.Call(HierarchyField)
		if selChanged {
			s.listeners.Call(SelectionField)
		}
	})
}

// UpdateRawSVG updates only the raw-text mirror, without re-deriving
// structure. Used for non-structural serialization changes.
func (s *Store) UpdateRawSVG(text string) {
	s.rawText = text
	if s.doc != nil {
		s.doc.Raw = text
	}
	s.notify(func() {
		s.listeners.Call(RawTextField)
	})
}

// ClearDocument resets the store to its initial state, in one
// notification cycle across all fields.
func (s *Store) ClearDocument() {
	s.reset()
	s.notify(func() {
		s.listeners.Call(DocumentField)
		s.listeners.Call(RawTextField)
		s.listeners.Call(HierarchyField)
		s.listeners.Call(SelectionField)
		s.listeners.Call(HoverField)
	})
}

// notify runs the given notification cycle with the re-entrancy guard
// held, then drains any updates queued by subscribers. The guard is a
// depth counter, not a boolean: a subscriber that triggers a nested
// notification cycle (hover, selection, raw text) must not clear the
// guard for the outer cycle still iterating its listeners, so queued
// structural replaces only run once the outermost cycle has finished.
func (s *Store) notify(cycle func()) {
	s.notifyDepth++
	cycle()
	s.notifyDepth--
	if s.notifyDepth > 0 {
		return
	}
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		next()
	}
}

// intersectSelection drops selected tokens absent from the current
// registry, reporting whether the selection changed.
func (s *Store) intersectSelection() bool {
	if len(s.selected) == 0 {
		return false
	}
	kept := s.selected[:0]
	for _, t := range s.selected {
		if s.registry.HasToken(t) {
			kept = append(kept, t)
		} else {
			delete(s.selectedSet, t)
		}
	}
	changed := len(kept) != len(s.selected)
	s.selected = kept
	return changed
}

// Selection state (mutated only by [Selection]):

// setSelection replaces the selection set with the given tokens, dropping
// duplicates and tokens not present in the registry, and notifies if the
// set changed.
func (s *Store) setSelection(tokens []svg.Token) {
	var next []svg.Token
	nextSet := map[svg.Token]bool{}
	for _, t := range tokens {
		if nextSet[t] || !s.registry.HasToken(t) {
			continue
		}
		nextSet[t] = true
		next = append(next, t)
	}
	if tokensEqual(next, s.selected) {
		return
	}
	s.selected = next
	s.selectedSet = nextSet
	s.notify(func() {
		s.listeners.Call(SelectionField)
	})
}

func tokensEqual(a, b []svg.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SelectedTokens returns a copy of the selection set, in selection order.
func (s *Store) SelectedTokens() []svg.Token {
	out := make([]svg.Token, len(s.selected))
	copy(out, s.selected)
	return out
}

// IsSelected returns whether the element holding the given token is selected.
func (s *Store) IsSelected(t svg.Token) bool {
	return s.selectedSet[t]
}

// SelectedNodes returns the live nodes for the selection set.
func (s *Store) SelectedNodes() []svg.Node {
	var out []svg.Node
	for _, t := range s.selected {
		if n := s.registry.ByToken(t); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// SelectedIDs returns the addressing ids of the selection set.
func (s *Store) SelectedIDs() []string {
	var out []string
	for _, n := range s.SelectedNodes() {
		out = append(out, n.AsNodeBase().ID)
	}
	return out
}

// HasSelection returns whether any element is selected.
func (s *Store) HasSelection() bool { return len(s.selected) > 0 }

// SelectionCount returns the number of selected elements.
func (s *Store) SelectionCount() int { return len(s.selected) }

// Hover:

// HoveredToken returns the token of the hovered element, zero if none.
func (s *Store) HoveredToken() svg.Token { return s.hovered }

// SetHovered sets the hovered element token, notifying on change.
func (s *Store) SetHovered(t svg.Token) {
	if t == s.hovered {
		return
	}
	s.hovered = t
	s.notify(func() {
		s.listeners.Call(HoverField)
	})
}
