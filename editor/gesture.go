// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/vector/base/ordmap"
	"cogentcore.org/vector/svg"
	"github.com/chewxy/math32"
)

// GestureState is the lifecycle state of the gesture engine.
type GestureState int32

const (
	// GestureIdle means no gesture is in progress.
	GestureIdle GestureState = iota

	// GestureArmed means a gesture has started but nothing has moved yet.
	GestureArmed

	// GestureLive means the gesture has produced visible intermediate
	// state that is not yet committed to history.
	GestureLive

	// GestureCommitted means the most recent gesture finished and pushed
	// one operation. A new gesture can start.
	GestureCommitted

	// GestureCancelled means the most recent gesture was reverted or fell
	// below the drag epsilon, pushing nothing. A new gesture can start.
	GestureCancelled
)

func (gs GestureState) String() string {
	switch gs {
	case GestureArmed:
		return "armed"
	case GestureLive:
		return "live"
	case GestureCommitted:
		return "committed"
	case GestureCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// attrSnapshot captures one element's full attribute state at gesture
// start, so a cancelled or sub-epsilon gesture restores the exact
// original attribute bytes, not a recomputed approximation.
type attrSnapshot struct {
	node  svg.Node
	attrs *ordmap.Map[string, string]
}

// GestureEngine collapses a continuous interactive manipulation into at
// most one history operation. Intermediate drag states are applied to the
// live document and mirrored to the raw text, but nothing reaches the
// history until the gesture finishes; a finished gesture below the drag
// epsilon, or a cancelled one, leaves the document byte-identical to its
// pre-gesture state and pushes nothing.
type GestureEngine struct {
	ed    *Editor
	state GestureState

	// move gesture
	tokens    []svg.Token
	snapshots []attrSnapshot
	delta     svg.Vector2

	// creation gesture
	parent     svg.Token
	preview    svg.Node
	hadOpacity bool
	oldOpacity string
}

// NewGestureEngine returns a GestureEngine driving the given editor.
func NewGestureEngine(ed *Editor) *GestureEngine {
	return &GestureEngine{ed: ed}
}

// State returns the current gesture state.
func (ge *GestureEngine) State() GestureState { return ge.state }

// IsActive returns whether a gesture is in progress. Committed and
// Cancelled are terminal outcomes, not active states.
func (ge *GestureEngine) IsActive() bool {
	return ge.state == GestureArmed || ge.state == GestureLive
}

// Move gesture:

// StartMove arms a move gesture on the elements holding the given
// tokens, snapshotting their attribute state. Tokens not in the document
// are an error; an already-active gesture is an error.
func (ge *GestureEngine) StartMove(tokens []svg.Token) error {
	if ge.IsActive() {
		return fmt.Errorf("gesture already active (%s)", ge.state)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no elements to move")
	}
	reg := ge.ed.Store.Registry()
	var snaps []attrSnapshot
	for _, t := range tokens {
		n := reg.ByToken(t)
		if n == nil {
			return fmt.Errorf("element %s not in document", t)
		}
		snaps = append(snaps, attrSnapshot{node: n, attrs: n.AsNodeBase().Attrs.Copy()})
	}
	ge.tokens = append([]svg.Token{}, tokens...)
	ge.snapshots = snaps
	ge.delta = svg.Vector2{}
	ge.state = GestureArmed
	return nil
}

// MoveBy updates the move gesture to the given cumulative delta from the
// gesture start. The document and raw text reflect the new positions
// immediately; history does not.
func (ge *GestureEngine) MoveBy(delta svg.Vector2) error {
	if ge.state != GestureArmed && ge.state != GestureLive {
		return fmt.Errorf("no move gesture active")
	}
	// Reapply from the snapshots each time, so repeated updates do not
	// accumulate float error and revert stays byte-exact.
	ge.restoreSnapshots()
	ge.delta = delta
	for _, sn := range ge.snapshots {
		sn.node.Translate(delta)
	}
	ge.state = GestureLive
	return ge.ed.syncRaw()
}

// FinishMove ends the move gesture. If the total delta magnitude is below
// the drag epsilon the gesture is a no-op: the document reverts to its
// exact pre-gesture bytes and nothing is pushed to history. Otherwise the
// whole drag collapses into a single move operation.
func (ge *GestureEngine) FinishMove() error {
	if ge.state != GestureArmed && ge.state != GestureLive {
		return fmt.Errorf("no move gesture active")
	}
	tokens, delta := ge.tokens, ge.delta
	ge.restoreSnapshots()
	if math32.Hypot(delta.X, delta.Y) < ge.ed.Settings.DragEpsilon {
		ge.resetMove(GestureCancelled)
		return ge.ed.syncRaw()
	}
	ge.resetMove(GestureCommitted)
	if err := ge.ed.Apply(NewMoveOp(tokens, delta)); err != nil {
		return err
	}
	ge.ed.Selection.selectTokens(tokens)
	return nil
}

// CancelMove abandons the move gesture, restoring the exact pre-gesture
// attribute state. Nothing is pushed to history.
func (ge *GestureEngine) CancelMove() error {
	if ge.state != GestureArmed && ge.state != GestureLive {
		return fmt.Errorf("no move gesture active")
	}
	ge.restoreSnapshots()
	ge.resetMove(GestureCancelled)
	return ge.ed.syncRaw()
}

func (ge *GestureEngine) restoreSnapshots() {
	for _, sn := range ge.snapshots {
		sn.node.AsNodeBase().Attrs = sn.attrs.Copy()
		sn.node.ReadGeometry()
	}
}

func (ge *GestureEngine) resetMove(outcome GestureState) {
	ge.tokens = nil
	ge.snapshots = nil
	ge.delta = svg.Vector2{}
	ge.state = outcome
}

// Creation gesture:

// StartCreate begins a two-phase creation gesture: the given fragment is
// attached under the parent (zero token means root) as a reduced-opacity
// preview. The preview is live in the document tree but not in history.
// The returned node is the attached preview, which the caller mutates
// through [GestureEngine.UpdateCreate] as the gesture progresses.
func (ge *GestureEngine) StartCreate(parent svg.Token, fragment svg.Node) (svg.Node, error) {
	if ge.IsActive() {
		return nil, fmt.Errorf("gesture already active (%s)", ge.state)
	}
	var pn svg.Node
	if parent.IsNil() {
		pn = ge.ed.Store.Document().Root
	} else {
		pn = ge.ed.Store.Registry().ByToken(parent)
		if pn == nil {
			return nil, fmt.Errorf("parent element %s not in document", parent)
		}
	}
	nb := fragment.AsNodeBase()
	ge.oldOpacity, ge.hadOpacity = nb.AttrTry("opacity")
	nb.SetAttr("opacity", svg.Float32String(ge.ed.Settings.PreviewOpacity))
	pn.AsNodeBase().AddChild(fragment)
	ge.parent = parent
	ge.preview = fragment
	ge.state = GestureLive
	if err := ge.ed.syncRaw(); err != nil {
		return nil, err
	}
	return fragment, nil
}

// UpdateCreate applies a geometry update to the creation preview and
// mirrors it to the raw text.
func (ge *GestureEngine) UpdateCreate(update func(n svg.Node)) error {
	if ge.preview == nil {
		return fmt.Errorf("no creation gesture active")
	}
	update(ge.preview)
	return ge.ed.syncRaw()
}

// FinishCreate ends the creation gesture: the preview is detached, its
// preview opacity restored, and the finished element is created through a
// single history operation and selected.
func (ge *GestureEngine) FinishCreate() error {
	if ge.preview == nil {
		return fmt.Errorf("no creation gesture active")
	}
	preview := ge.preview
	nb := preview.AsNodeBase()
	index := nb.IndexInParent()
	nb.Delete()
	if ge.hadOpacity {
		nb.SetAttr("opacity", ge.oldOpacity)
	} else {
		nb.DeleteAttr("opacity")
	}
	op := &CreateOp{Parent: ge.parent, Fragment: preview, Index: index}
	ge.resetCreate(GestureCommitted)
	if err := ge.ed.Apply(op); err != nil {
		return err
	}
	ge.ed.Selection.selectTokens([]svg.Token{nb.Token})
	return nil
}

// CancelCreate abandons the creation gesture, detaching the preview.
// Nothing is pushed to history.
func (ge *GestureEngine) CancelCreate() error {
	if ge.preview == nil {
		return fmt.Errorf("no creation gesture active")
	}
	ge.preview.AsNodeBase().Delete()
	ge.resetCreate(GestureCancelled)
	return ge.ed.syncRaw()
}

func (ge *GestureEngine) resetCreate(outcome GestureState) {
	ge.parent = svg.Token{}
	ge.preview = nil
	ge.hadOpacity = false
	ge.oldOpacity = ""
	ge.state = outcome
}
