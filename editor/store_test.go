// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"testing"

	"cogentcore.org/vector/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><rect id="r" x="10" y="10" width="30" height="20"/><circle cx="50" cy="50" r="10"/></svg>`

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	ed := NewEditor()
	require.NoError(t, ed.OpenText(testDoc))
	return ed
}

// mustToken returns the token of the element with the given internal id.
func mustToken(t *testing.T, ed *Editor, id string) svg.Token {
	t.Helper()
	n := ed.Store.Registry().ByID(id)
	require.NotNil(t, n, "no element with id %q", id)
	return n.AsNodeBase().Token
}

func TestStoreNotifiesInSubscriptionOrder(t *testing.T) {
	ed := NewEditor()
	var calls []string
	ed.Store.Subscribe(DocumentField, func() { calls = append(calls, "first") })
	ed.Store.Subscribe(DocumentField, func() { calls = append(calls, "second") })
	require.NoError(t, ed.OpenText(testDoc))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestStoreFieldIsolation(t *testing.T) {
	ed := newTestEditor(t)
	counts := map[Field]int{}
	for _, f := range []Field{DocumentField, RawTextField, HierarchyField, SelectionField, HoverField} {
		f := f
		ed.Store.Subscribe(f, func() { counts[f]++ })
	}

	ed.Store.UpdateRawSVG("<!-- edited -->")
	assert.Equal(t, 1, counts[RawTextField])
	assert.Zero(t, counts[DocumentField])
	assert.Zero(t, counts[HierarchyField])

	ed.Selection.Select("rect-2")
	assert.Equal(t, 1, counts[SelectionField])
	assert.Zero(t, counts[DocumentField])

	ed.Store.SetHovered(mustToken(t, ed, "circle-3"))
	assert.Equal(t, 1, counts[HoverField])
}

func TestStoreGenerationIncrements(t *testing.T) {
	ed := newTestEditor(t)
	g1 := ed.Store.Generation()
	require.NoError(t, ed.OpenText(testDoc))
	assert.Equal(t, g1+1, ed.Store.Generation())
	assert.Equal(t, ed.Store.Generation(), ed.Store.Document().Generation)
}

func TestStoreSelectionIntersectedOnReplace(t *testing.T) {
	ed := newTestEditor(t)
	ed.Selection.Select("rect-2", "circle-3")
	require.Equal(t, 2, ed.Store.SelectionCount())

	rectToken := mustToken(t, ed, "rect-2")

	// Replace with a document that carries only the rect's token.
	marked := `<svg xmlns="http://www.w3.org/2000/svg"><rect data-vid="` +
		rectToken.String() + `" x="10" y="10" width="30" height="20"/></svg>`
	selCalls := 0
	ed.Store.Subscribe(SelectionField, func() { selCalls++ })
	require.NoError(t, ed.UpdateText(marked))

	assert.Equal(t, []svg.Token{rectToken}, ed.Store.SelectedTokens())
	assert.Equal(t, 1, selCalls, "stale tokens dropped in the same cycle, silently")
}

func TestStoreReentrantSetDocumentQueued(t *testing.T) {
	ed := newTestEditor(t)
	recursed := false
	ed.Store.Subscribe(DocumentField, func() {
		if recursed {
			return
		}
		recursed = true
		// A structural update triggered from inside a notification must be
		// deferred, not nested.
		require.NoError(t, ed.UpdateText(testDoc))
	})
	require.NoError(t, ed.UpdateText(testDoc))
	assert.True(t, recursed)
	assert.NotNil(t, ed.Store.Document())
	assert.Equal(t, 3, ed.Store.Registry().NumElements())
}

func TestStoreNestedNotifyThenReplaceStillQueued(t *testing.T) {
	ed := newTestEditor(t)
	var trace []string
	recursed := false
	ed.Store.Subscribe(DocumentField, func() {
		trace = append(trace, "enter")
		if !recursed {
			recursed = true
			// A nested non-structural notification must not clear the
			// guard for the outer cycle: the structural replace that
			// follows it still has to wait for the cycle to finish.
			ed.Store.SetHovered(mustToken(t, ed, "circle-3"))
			require.NoError(t, ed.UpdateText(testDoc))
		}
		trace = append(trace, "leave")
	})
	require.NoError(t, ed.UpdateText(testDoc))
	assert.Equal(t, []string{"enter", "leave", "enter", "leave"}, trace)
}

func TestStoreClearDocument(t *testing.T) {
	ed := newTestEditor(t)
	ed.Selection.Select("rect-2")
	ed.Store.ClearDocument()
	assert.Nil(t, ed.Store.Document())
	assert.Empty(t, ed.Store.RawText())
	assert.False(t, ed.Store.HasSelection())
	assert.Zero(t, ed.Store.Generation())
}

func TestStoreHover(t *testing.T) {
	ed := newTestEditor(t)
	calls := 0
	ed.Store.Subscribe(HoverField, func() { calls++ })

	tok := mustToken(t, ed, "rect-2")
	ed.Store.SetHovered(tok)
	ed.Store.SetHovered(tok) // no change, no call
	assert.Equal(t, 1, calls)
	assert.Equal(t, tok, ed.Store.HoveredToken())

	// Hovered element removed with the replacing document: hover clears.
	require.NoError(t, ed.UpdateText(`<svg><circle cx="1" cy="1" r="1"/></svg>`))
	assert.True(t, ed.Store.HoveredToken().IsNil())
}
