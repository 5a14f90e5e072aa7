// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionBasic(t *testing.T) {
	ed := newTestEditor(t)
	sel := ed.Selection

	sel.Select("rect-2")
	assert.Equal(t, []string{"rect-2"}, sel.SelectedIDs())

	sel.AddToSelection("circle-3")
	assert.Equal(t, []string{"rect-2", "circle-3"}, sel.SelectedIDs())

	sel.RemoveFromSelection("rect-2")
	assert.Equal(t, []string{"circle-3"}, sel.SelectedIDs())

	sel.ClearSelection()
	assert.False(t, sel.HasSelection())
}

func TestSelectionUnknownIDsSkipped(t *testing.T) {
	ed := newTestEditor(t)
	sel := ed.Selection

	sel.Select("rect-2", "no-such-id")
	assert.Equal(t, []string{"rect-2"}, sel.SelectedIDs())

	sel.ToggleSelection("no-such-id") // no-op
	assert.Equal(t, []string{"rect-2"}, sel.SelectedIDs())
}

func TestSelectionToggle(t *testing.T) {
	ed := newTestEditor(t)
	sel := ed.Selection

	sel.ToggleSelection("rect-2")
	assert.True(t, sel.HasSelection())
	sel.ToggleSelection("circle-3")
	assert.Equal(t, 2, sel.SelectionCount())
	sel.ToggleSelection("rect-2")
	assert.Equal(t, []string{"circle-3"}, sel.SelectedIDs())
}

func TestSelectionDuplicatesCollapsed(t *testing.T) {
	ed := newTestEditor(t)
	ed.Selection.Select("rect-2", "rect-2")
	assert.Equal(t, 1, ed.Selection.SelectionCount())
}

func TestSelectionSyncCallbacks(t *testing.T) {
	ed := newTestEditor(t)
	var changed [][]string
	var scrolled []string
	ed.Selection.RegisterSyncCallbacks(SyncCallbacks{
		OnChanged:      func(ids []string) { changed = append(changed, ids) },
		ScrollIntoView: func(id string) { scrolled = append(scrolled, id) },
	})

	ed.Selection.Select("rect-2")
	ed.Selection.AddToSelection("circle-3")
	ed.Selection.ClearSelection()

	require.Len(t, changed, 3)
	assert.Equal(t, []string{"rect-2"}, changed[0])
	assert.Equal(t, []string{"rect-2", "circle-3"}, changed[1])
	assert.Empty(t, changed[2])
	// scrolls only on single-element selections
	assert.Equal(t, []string{"rect-2"}, scrolled)
}

func TestSelectionNoNotifyWhenUnchanged(t *testing.T) {
	ed := newTestEditor(t)
	calls := 0
	ed.Store.Subscribe(SelectionField, func() { calls++ })
	ed.Selection.Select("rect-2")
	ed.Selection.Select("rect-2") // same set, no notification
	assert.Equal(t, 1, calls)
}
