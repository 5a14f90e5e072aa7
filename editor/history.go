// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/vector/base/logx"
)

// Operation is one undoable edit. Do applies the edit to the editor's
// current document and Undo reverses it exactly; both address elements by
// token, so they replay correctly regardless of how ids were
// re-synthesized in between.
type Operation interface {
	// Label is a short human-readable description, e.g. "move 2 elements".
	Label() string

	// Do applies the operation and commits the resulting document.
	Do(ed *Editor) error

	// Undo reverses the operation and commits the resulting document.
	Undo(ed *Editor) error
}

// ReplayError is returned when replaying an operation from the history
// stack fails. The cursor is left where it was, so the failed replay can
// be retried or inspected; the history is not corrupted.
type ReplayError struct {
	Op    Operation
	Stage string // "undo" or "redo"
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("%s of %q failed: %v", e.Stage, e.Op.Label(), e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }

// History is a linear undo/redo stack of [Operation]s. Pushing while the
// cursor is mid-stack truncates the redo tail; there is no branching.
type History struct {
	ed     *Editor
	stack  []Operation
	cursor int // number of done operations; stack[:cursor] are undoable
}

// NewHistory returns a History driving the given editor.
func NewHistory(ed *Editor) *History {
	return &History{ed: ed}
}

// Push records an already-applied operation, truncating any redo tail.
func (h *History) Push(op Operation) {
	h.stack = append(h.stack[:h.cursor], op)
	h.cursor = len(h.stack)
}

// CanUndo returns whether there is an operation to undo.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo returns whether there is an operation to redo.
func (h *History) CanRedo() bool { return h.cursor < len(h.stack) }

// Len returns the total number of operations on the stack.
func (h *History) Len() int { return len(h.stack) }

// Undo reverses the most recent done operation. At the start of the
// stack it is a no-op returning nil.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return nil
	}
	op := h.stack[h.cursor-1]
	if err := op.Undo(h.ed); err != nil {
		return logx.PrintError(&ReplayError{Op: op, Stage: "undo", Err: err})
	}
	h.cursor--
	return nil
}

// Redo re-applies the most recently undone operation. At the end of the
// stack it is a no-op returning nil.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return nil
	}
	op := h.stack[h.cursor]
	if err := op.Do(h.ed); err != nil {
		return logx.PrintError(&ReplayError{Op: op, Stage: "redo", Err: err})
	}
	h.cursor++
	return nil
}

// Reset drops the entire stack, e.g. when a new document is opened.
func (h *History) Reset() {
	h.stack = nil
	h.cursor = 0
}

// UndoLabel returns the label of the operation Undo would reverse, or "".
func (h *History) UndoLabel() string {
	if !h.CanUndo() {
		return ""
	}
	return h.stack[h.cursor-1].Label()
}

// RedoLabel returns the label of the operation Redo would re-apply, or "".
func (h *History) RedoLabel() string {
	if !h.CanRedo() {
		return ""
	}
	return h.stack[h.cursor].Label()
}
