// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/vector/base/logx"
	"cogentcore.org/vector/svg"
)

// Editor binds together the state store, selection, undo history,
// gesture engine, and settings for one open document. It is the single
// entry point for applying edits: every mutation flows through an
// [Operation] applied via [Editor.Apply], or through the gesture engine,
// which itself ends in at most one Apply.
type Editor struct {
	Store     *Store
	Selection *Selection
	History   *History
	Gesture   *GestureEngine
	Settings  *Settings

	parseErrors   []svg.ParseError
	lastValidText string
}

// NewEditor returns an Editor with an empty store and default settings.
func NewEditor() *Editor {
	ed := &Editor{Settings: DefaultSettings()}
	ed.Store = NewStore()
	ed.Selection = NewSelection(ed.Store)
	ed.History = NewHistory(ed)
	ed.Gesture = NewGestureEngine(ed)
	return ed
}

// OpenText parses the given SVG text and makes it the open document,
// resetting history and selection. On a parse failure the current
// document is retained unchanged and the parse errors are returned and
// recorded.
func (ed *Editor) OpenText(text string) error {
	res := svg.Parse(text)
	if !res.Success {
		ed.parseErrors = res.Errors
		return logx.PrintError(fmt.Errorf("open: %w", res.Errors[0]))
	}
	ed.parseErrors = nil
	ed.History.Reset()
	ed.Selection.ClearSelection()
	ed.setDocument(res)
	return nil
}

// NewDocument replaces the open document with an empty canvas sized per
// settings, resetting history and selection.
func (ed *Editor) NewDocument() {
	doc := svg.NewDocument()
	rb := doc.Root.AsNodeBase()
	rb.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	rb.SetGeomAttr("width", ed.Settings.CanvasWidth)
	rb.SetGeomAttr("height", ed.Settings.CanvasHeight)
	svg.AssignIdentity(doc)
	ed.parseErrors = nil
	ed.History.Reset()
	ed.Selection.ClearSelection()
	ed.setDocument(&svg.Result{Success: true, Doc: doc, Tree: svg.BuildHierarchy(doc)})
}

// CloseDocument closes the open document, clearing all state.
func (ed *Editor) CloseDocument() {
	ed.parseErrors = nil
	ed.lastValidText = ""
	ed.History.Reset()
	ed.Store.ClearDocument()
}

// Apply applies the given operation and, on success, pushes it onto the
// history stack. A failed operation is not pushed.
func (ed *Editor) Apply(op Operation) error {
	if err := op.Do(ed); err != nil {
		return logx.PrintError(fmt.Errorf("apply %q: %w", op.Label(), err))
	}
	ed.History.Push(op)
	return nil
}

// Undo reverses the most recent operation. At the start of history it is
// a no-op.
func (ed *Editor) Undo() error { return ed.History.Undo() }

// Redo re-applies the most recently undone operation. At the end of
// history it is a no-op.
func (ed *Editor) Redo() error { return ed.History.Redo() }

// ExportText serializes the open document for export. Identity markers
// are never emitted: exported markup contains only standard SVG.
func (ed *Editor) ExportText() string {
	doc := ed.Store.Document()
	if doc == nil {
		return ""
	}
	return doc.XMLString(svg.WriteOptions{Indent: true})
}

// UpdateText replaces the open document from externally edited raw text,
// e.g. a source view. On a parse failure the current document is
// retained, the errors are recorded for [Editor.ParseErrors], and the
// first error is returned; the caller may keep editing or call
// [Editor.RollbackText]. A successful replace is pushed to history as a
// [ReplaceTextOp], so earlier operations stay replayable: undoing past
// the replace first restores the previous document, tokens intact.
func (ed *Editor) UpdateText(text string) error {
	res := svg.Parse(text)
	if !res.Success {
		ed.parseErrors = res.Errors
		return res.Errors[0]
	}
	ed.parseErrors = nil
	op := &ReplaceTextOp{
		newMarked: res.Doc.XMLString(svg.WriteOptions{KeepUUID: true, Indent: true}),
	}
	if doc := ed.Store.Document(); doc != nil {
		op.oldMarked = doc.XMLString(svg.WriteOptions{KeepUUID: true, Indent: true})
	}
	ed.setDocument(res)
	if op.oldMarked != "" {
		ed.History.Push(op)
	}
	return nil
}

// RollbackText restores the raw text mirror to the last text that parsed
// successfully, discarding any recorded parse errors. The document tree
// is untouched; it still reflects that text.
func (ed *Editor) RollbackText() {
	ed.parseErrors = nil
	if ed.lastValidText != "" {
		ed.Store.UpdateRawSVG(ed.lastValidText)
	}
}

// ParseErrors returns the errors from the most recent failed parse, or
// nil after a successful one.
func (ed *Editor) ParseErrors() []svg.ParseError {
	return ed.parseErrors
}

// setDocument installs a successful parse result into the store, using
// marker-free serialization as the raw-text mirror.
func (ed *Editor) setDocument(res *svg.Result) {
	raw := res.Doc.XMLString(svg.WriteOptions{Indent: true})
	res.Doc.Raw = raw
	ed.lastValidText = raw
	ed.Store.SetDocument(res.Doc, res.Tree, raw)
}

// commitStructural commits a structural edit: the mutated tree is
// serialized with identity markers, reparsed, and installed as the new
// document, so tokens survive while addressing ids are re-synthesized in
// document order.
func (ed *Editor) commitStructural() error {
	doc := ed.Store.Document()
	if doc == nil {
		return fmt.Errorf("no open document")
	}
	marked := doc.XMLString(svg.WriteOptions{KeepUUID: true, Indent: true})
	res := svg.Parse(marked)
	if !res.Success {
		return fmt.Errorf("commit: %w", res.Errors[0])
	}
	ed.setDocument(res)
	return nil
}

// syncRaw refreshes the raw-text mirror from the current tree without
// re-deriving structure. Used for attribute-only edits and live gesture
// updates, where element identity and hierarchy are unchanged.
func (ed *Editor) syncRaw() error {
	doc := ed.Store.Document()
	if doc == nil {
		return fmt.Errorf("no open document")
	}
	raw := doc.XMLString(svg.WriteOptions{Indent: true})
	ed.lastValidText = raw
	ed.Store.UpdateRawSVG(raw)
	return nil
}
