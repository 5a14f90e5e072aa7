// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/vector/svg"
)

// MoveOp translates a set of elements by a shared delta. Undo translates
// by the negated delta, restoring the original geometry attributes.
type MoveOp struct {
	Tokens []svg.Token
	Delta  svg.Vector2
}

// NewMoveOp returns a MoveOp for the given elements and delta.
func NewMoveOp(tokens []svg.Token, delta svg.Vector2) *MoveOp {
	return &MoveOp{Tokens: tokens, Delta: delta}
}

func (op *MoveOp) Label() string {
	if len(op.Tokens) == 1 {
		return "move element"
	}
	return fmt.Sprintf("move %d elements", len(op.Tokens))
}

func (op *MoveOp) Do(ed *Editor) error {
	return op.translate(ed, op.Delta)
}

func (op *MoveOp) Undo(ed *Editor) error {
	return op.translate(ed, op.Delta.Negate())
}

func (op *MoveOp) translate(ed *Editor, delta svg.Vector2) error {
	reg := ed.Store.Registry()
	nodes := make([]svg.Node, 0, len(op.Tokens))
	for _, t := range op.Tokens {
		n := reg.ByToken(t)
		if n == nil {
			return fmt.Errorf("element %s not in document", t)
		}
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		n.Translate(delta)
	}
	return ed.commitStructural()
}

// CreateOp inserts a new element subtree under a parent. The fragment is
// cloned on every Do, so redo after undo re-creates the element with the
// same tokens it was first created with.
type CreateOp struct {
	// Parent is the token of the parent element; zero means the root.
	Parent svg.Token

	// Fragment is the subtree to insert. It is never attached directly.
	Fragment svg.Node

	// Index is the child position to insert at; -1 appends.
	Index int
}

// NewCreateOp returns a CreateOp appending fragment under parent.
func NewCreateOp(parent svg.Token, fragment svg.Node) *CreateOp {
	return &CreateOp{Parent: parent, Fragment: fragment, Index: -1}
}

func (op *CreateOp) Label() string {
	return "create " + op.Fragment.SVGName()
}

func (op *CreateOp) Do(ed *Editor) error {
	parent, err := op.parentNode(ed)
	if err != nil {
		return err
	}
	if op.Fragment.AsNodeBase().Token.IsNil() {
		op.Fragment.AsNodeBase().Token = svg.NewToken()
	}
	child := op.Fragment.AsNodeBase().Clone()
	if op.Index < 0 || op.Index >= len(parent.AsNodeBase().Children) {
		parent.AsNodeBase().AddChild(child)
	} else {
		parent.AsNodeBase().InsertChild(child, op.Index)
	}
	return ed.commitStructural()
}

func (op *CreateOp) Undo(ed *Editor) error {
	t := op.Fragment.AsNodeBase().Token
	n := ed.Store.Registry().ByToken(t)
	if n == nil {
		return fmt.Errorf("created element %s not in document", t)
	}
	n.AsNodeBase().Delete()
	return ed.commitStructural()
}

func (op *CreateOp) parentNode(ed *Editor) (svg.Node, error) {
	if op.Parent.IsNil() {
		return ed.Store.Document().Root, nil
	}
	parent := ed.Store.Registry().ByToken(op.Parent)
	if parent == nil {
		return nil, fmt.Errorf("parent element %s not in document", op.Parent)
	}
	return parent, nil
}

// RemoveOp deletes a set of element subtrees. Undo re-inserts clones of
// the removed subtrees at their original positions, token-identical to
// what was removed.
type RemoveOp struct {
	Tokens  []svg.Token
	removed []removedElement
}

type removedElement struct {
	parent   svg.Token // zero means root
	index    int
	fragment svg.Node
}

// NewRemoveOp returns a RemoveOp for the given elements.
func NewRemoveOp(tokens []svg.Token) *RemoveOp {
	return &RemoveOp{Tokens: tokens}
}

func (op *RemoveOp) Label() string {
	if len(op.Tokens) == 1 {
		return "remove element"
	}
	return fmt.Sprintf("remove %d elements", len(op.Tokens))
}

func (op *RemoveOp) Do(ed *Editor) error {
	reg := ed.Store.Registry()
	op.removed = op.removed[:0]
	for _, t := range op.Tokens {
		n := reg.ByToken(t)
		if n == nil {
			return fmt.Errorf("element %s not in document", t)
		}
		nb := n.AsNodeBase()
		rec := removedElement{index: nb.IndexInParent(), fragment: nb.Clone()}
		if pb := nb.Parent; pb != nil && pb.AsNodeBase() != ed.Store.Document().Root.AsNodeBase() {
			rec.parent = pb.AsNodeBase().Token
		}
		op.removed = append(op.removed, rec)
		nb.Delete()
	}
	return ed.commitStructural()
}

func (op *RemoveOp) Undo(ed *Editor) error {
	// Re-insert in reverse removal order so sibling indexes line up.
	for i := len(op.removed) - 1; i >= 0; i-- {
		rec := op.removed[i]
		var parent svg.Node
		if rec.parent.IsNil() {
			parent = ed.Store.Document().Root
		} else {
			parent = ed.Store.Registry().ByToken(rec.parent)
			if parent == nil {
				return fmt.Errorf("parent element %s not in document", rec.parent)
			}
		}
		child := rec.fragment.AsNodeBase().Clone()
		if rec.index < 0 || rec.index > len(parent.AsNodeBase().Children) {
			parent.AsNodeBase().AddChild(child)
		} else {
			parent.AsNodeBase().InsertChild(child, rec.index)
		}
	}
	return ed.commitStructural()
}

// ReplaceTextOp replaces the whole document from externally edited raw
// text. Both sides are held as marker-full serializations, so undoing
// past a text replace restores the previous elements with their original
// identity tokens and earlier token-addressed operations keep replaying.
type ReplaceTextOp struct {
	oldMarked string
	newMarked string
}

func (op *ReplaceTextOp) Label() string { return "edit source" }

func (op *ReplaceTextOp) Do(ed *Editor) error {
	return op.install(ed, op.newMarked)
}

func (op *ReplaceTextOp) Undo(ed *Editor) error {
	return op.install(ed, op.oldMarked)
}

func (op *ReplaceTextOp) install(ed *Editor, marked string) error {
	res := svg.Parse(marked)
	if !res.Success {
		return res.Errors[0]
	}
	ed.setDocument(res)
	return nil
}

// SetAttributeOp sets, changes, or removes one attribute on one element.
// An empty NewValue with Remove set deletes the attribute; Undo restores
// the prior value, or the prior absence.
type SetAttributeOp struct {
	Token    svg.Token
	Name     string
	NewValue string
	Remove   bool

	oldValue string
	hadOld   bool
}

// NewSetAttributeOp returns an op setting attr name to value on the
// element holding token.
func NewSetAttributeOp(token svg.Token, name, value string) *SetAttributeOp {
	return &SetAttributeOp{Token: token, Name: name, NewValue: value}
}

// NewRemoveAttributeOp returns an op removing attr name from the element
// holding token.
func NewRemoveAttributeOp(token svg.Token, name string) *SetAttributeOp {
	return &SetAttributeOp{Token: token, Name: name, Remove: true}
}

func (op *SetAttributeOp) Label() string {
	if op.Remove {
		return "remove " + op.Name
	}
	return "set " + op.Name
}

func (op *SetAttributeOp) Do(ed *Editor) error {
	if !op.Remove {
		if err := svg.ValidateAttribute(op.Name, op.NewValue); err != nil {
			return err
		}
	}
	n := ed.Store.Registry().ByToken(op.Token)
	if n == nil {
		return fmt.Errorf("element %s not in document", op.Token)
	}
	nb := n.AsNodeBase()
	op.oldValue, op.hadOld = nb.AttrTry(op.Name)
	if op.Remove {
		nb.DeleteAttr(op.Name)
	} else {
		nb.SetAttr(op.Name, op.NewValue)
	}
	n.ReadGeometry()
	return ed.syncRaw()
}

func (op *SetAttributeOp) Undo(ed *Editor) error {
	n := ed.Store.Registry().ByToken(op.Token)
	if n == nil {
		return fmt.Errorf("element %s not in document", op.Token)
	}
	nb := n.AsNodeBase()
	if op.hadOld {
		nb.SetAttr(op.Name, op.oldValue)
	} else {
		nb.DeleteAttr(op.Name)
	}
	n.ReadGeometry()
	return ed.syncRaw()
}
