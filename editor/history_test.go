// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOp struct {
	label   string
	doErr   error
	undoErr error
	did     int
	undid   int
}

func (op *stubOp) Label() string         { return op.label }
func (op *stubOp) Do(ed *Editor) error   { op.did++; return op.doErr }
func (op *stubOp) Undo(ed *Editor) error { op.undid++; return op.undoErr }

func TestHistoryBoundariesAreNoOps(t *testing.T) {
	h := NewHistory(nil)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.NoError(t, h.Undo())
	assert.NoError(t, h.Redo())
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(nil)
	a, b := &stubOp{label: "a"}, &stubOp{label: "b"}
	h.Push(a)
	h.Push(b)

	assert.Equal(t, "b", h.UndoLabel())
	require.NoError(t, h.Undo())
	assert.Equal(t, 1, b.undid)
	assert.Equal(t, "b", h.RedoLabel())
	assert.Equal(t, "a", h.UndoLabel())

	require.NoError(t, h.Redo())
	assert.Equal(t, 1, b.did)
	assert.False(t, h.CanRedo())
}

func TestHistoryPushTruncatesRedoTail(t *testing.T) {
	h := NewHistory(nil)
	a, b, c := &stubOp{label: "a"}, &stubOp{label: "b"}, &stubOp{label: "c"}
	h.Push(a)
	h.Push(b)
	require.NoError(t, h.Undo())

	h.Push(c) // b's redo branch is gone
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "c", h.UndoLabel())
}

func TestHistoryReplayErrorFreezesCursor(t *testing.T) {
	h := NewHistory(nil)
	bad := &stubOp{label: "bad", undoErr: errors.New("boom")}
	h.Push(bad)

	err := h.Undo()
	var re *ReplayError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "undo", re.Stage)
	assert.Same(t, bad, re.Op)

	// cursor frozen: the failed undo can be retried
	assert.True(t, h.CanUndo())
	assert.Equal(t, 2, func() int { h.Undo(); return bad.undid }())
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(nil)
	h.Push(&stubOp{label: "a"})
	h.Reset()
	assert.Zero(t, h.Len())
	assert.False(t, h.CanUndo())
}
