// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"cogentcore.org/vector/svg"
)

// SyncCallbacks are optional hooks an embedding surface registers to
// mirror selection changes into an external view, such as a text editor
// highlighting the selected elements' source lines.
type SyncCallbacks struct {
	// OnChanged is called with the addressing ids of the new selection
	// whenever it changes.
	OnChanged func(ids []string)

	// ScrollIntoView is called with the id of the primary (first)
	// selected element when a single-element selection is made.
	ScrollIntoView func(id string)
}

// Selection manages the selection set held in a [Store], addressing
// elements by their synthesized ids. Unknown ids are skipped per-id, so a
// selection request naming both live and stale elements selects the live
// ones.
type Selection struct {
	store *Store
	hooks []SyncCallbacks
}

// NewSelection returns a Selection operating on the given store.
func NewSelection(store *Store) *Selection {
	sel := &Selection{store: store}
	store.Subscribe(SelectionField, sel.fireHooks)
	return sel
}

// RegisterSyncCallbacks registers hooks to be called on selection changes.
func (sel *Selection) RegisterSyncCallbacks(cb SyncCallbacks) {
	sel.hooks = append(sel.hooks, cb)
}

func (sel *Selection) fireHooks() {
	ids := sel.store.SelectedIDs()
	for _, cb := range sel.hooks {
		if cb.OnChanged != nil {
			cb.OnChanged(ids)
		}
		if len(ids) == 1 && cb.ScrollIntoView != nil {
			cb.ScrollIntoView(ids[0])
		}
	}
}

// resolve maps ids to tokens via the registry, skipping unknown ids.
func (sel *Selection) resolve(ids []string) []svg.Token {
	reg := sel.store.Registry()
	var out []svg.Token
	for _, id := range ids {
		if n := reg.ByID(id); n != nil {
			out = append(out, n.AsNodeBase().Token)
		}
	}
	return out
}

// Select replaces the selection with the elements holding the given ids.
func (sel *Selection) Select(ids ...string) {
	sel.store.setSelection(sel.resolve(ids))
}

// AddToSelection adds the elements holding the given ids to the selection.
func (sel *Selection) AddToSelection(ids ...string) {
	sel.store.setSelection(append(sel.store.SelectedTokens(), sel.resolve(ids)...))
}

// RemoveFromSelection removes the elements holding the given ids from the
// selection. Ids not currently selected are ignored.
func (sel *Selection) RemoveFromSelection(ids ...string) {
	drop := map[svg.Token]bool{}
	for _, t := range sel.resolve(ids) {
		drop[t] = true
	}
	var next []svg.Token
	for _, t := range sel.store.SelectedTokens() {
		if !drop[t] {
			next = append(next, t)
		}
	}
	sel.store.setSelection(next)
}

// ToggleSelection toggles the selection state of the element holding the
// given id. An unknown id is a no-op.
func (sel *Selection) ToggleSelection(id string) {
	n := sel.store.Registry().ByID(id)
	if n == nil {
		return
	}
	t := n.AsNodeBase().Token
	if sel.store.IsSelected(t) {
		sel.RemoveFromSelection(id)
	} else {
		sel.store.setSelection(append(sel.store.SelectedTokens(), t))
	}
}

// ClearSelection empties the selection set.
func (sel *Selection) ClearSelection() {
	sel.store.setSelection(nil)
}

// selectTokens replaces the selection with the given tokens directly,
// bypassing id resolution. Used to restore a selection across a commit
// cycle, where tokens survive but ids may have been re-synthesized.
func (sel *Selection) selectTokens(tokens []svg.Token) {
	sel.store.setSelection(tokens)
}

// SelectedIDs returns the addressing ids of the selection set.
func (sel *Selection) SelectedIDs() []string { return sel.store.SelectedIDs() }

// HasSelection returns whether any element is selected.
func (sel *Selection) HasSelection() bool { return sel.store.HasSelection() }

// SelectionCount returns the number of selected elements.
func (sel *Selection) SelectionCount() int { return sel.store.SelectionCount() }
