// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/vector/base/logx"
	"cogentcore.org/vector/base/ordmap"
	"github.com/jinzhu/copier"
)

// Node is the interface for all SVG elements.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "rect", "path" etc).
	SVGName() string

	// ReadGeometry refreshes the typed geometry fields of this node
	// from its string attribute values. Called after parsing and after
	// direct attribute edits.
	ReadGeometry()

	// Translate moves the position-bearing geometry of this node by the
	// given delta, updating both the typed fields and the corresponding
	// attribute values. Elements without direct position attributes
	// prepend or update a translate transform instead.
	Translate(delta Vector2)
}

// NodeBase is the base type for all elements within an SVG document tree.
// It implements the [Node] interface and contains the core functionality.
type NodeBase struct {

	// ID is the internal addressing id, synthesized deterministically in
	// document order when the document is parsed. It is never written to
	// exported markup.
	ID string `copier:"-"`

	// OriginalID is the author-supplied id attribute, if any, kept
	// separate from the internal [NodeBase.ID] used for addressing.
	OriginalID string

	// Token is the stable identity token for this element, unique within
	// the document. It survives serialize / parse round trips when the
	// identity marker is kept.
	Token Token `copier:"-"`

	// Attrs holds all other attributes of the element, as authored,
	// in insertion order.
	Attrs *ordmap.Map[string, string] `copier:"-"`

	// This is the value of this node as its true underlying type.
	This Node `copier:"-"`

	// Parent is the parent of this node. Nodes have at most one parent.
	Parent Node `copier:"-"`

	// Children is the ordered list of children of this node.
	Children []Node `copier:"-"`
}

func (n *NodeBase) AsNodeBase() *NodeBase { return n }
func (n *NodeBase) SVGName() string       { return "base" }
func (n *NodeBase) ReadGeometry()         {}

// String implements [fmt.Stringer] for debugging.
func (n *NodeBase) String() string {
	return fmt.Sprintf("<%s id=%q>", n.This.SVGName(), n.ID)
}

// initNode sets the This pointer, constructs the attribute map, and adds
// the node to the given parent, if non-nil. All node constructors call it.
func initNode(n Node, parent Node) {
	nb := n.AsNodeBase()
	nb.This = n
	nb.Attrs = ordmap.New[string, string]()
	if parent != nil {
		parent.AsNodeBase().AddChild(n)
	}
}

// NewInstance returns a new, empty instance of the same concrete type
// as this node. The instance is initialized but parentless.
func (n *NodeBase) NewInstance() Node {
	nn := reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
	initNode(nn, nil)
	return nn
}

// Attributes:

// Attr returns the value of the given attribute, with "" for a missing one.
func (n *NodeBase) Attr(name string) string {
	return n.Attrs.ValueByKey(name)
}

// AttrTry returns the value of the given attribute and whether it exists.
func (n *NodeBase) AttrTry(name string) (string, bool) {
	return n.Attrs.ValueByKeyTry(name)
}

// SetAttr sets the given attribute, preserving its position if it already
// exists and appending it otherwise.
func (n *NodeBase) SetAttr(name, value string) {
	n.Attrs.Set(name, value)
}

// SetGeomAttr sets the given attribute to the compact string form of the
// given geometry value.
func (n *NodeBase) SetGeomAttr(name string, value float32) {
	n.Attrs.Set(name, Float32String(value))
}

// GeomAttr returns the given attribute parsed as a float32, with 0 for a
// missing or malformed value. Parse failures are reported via logx at
// debug level only, as they are routine in passthrough content.
func (n *NodeBase) GeomAttr(name string) float32 {
	v, has := n.Attrs.ValueByKeyTry(name)
	if !has {
		return 0
	}
	f, err := ParseFloat32(v)
	if err != nil {
		logx.PrintDebug("svg: non-numeric geometry attribute", "attr", name, "value", v)
		return 0
	}
	return f
}

// DeleteAttr removes the given attribute, reporting whether it existed.
func (n *NodeBase) DeleteAttr(name string) bool {
	return n.Attrs.DeleteByKey(name)
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child at the given index, or nil if out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// AddChild adds the given child at the end of the children list.
// The child is assumed to not be on another tree.
func (n *NodeBase) AddChild(kid Node) {
	n.Children = append(n.Children, kid)
	kid.AsNodeBase().Parent = n.This
}

// InsertChild adds the given child at the given position in the children
// list, clamping the index into range.
func (n *NodeBase) InsertChild(kid Node, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(n.Children) {
		index = len(n.Children)
	}
	n.Children = slices.Insert(n.Children, index, kid)
	kid.AsNodeBase().Parent = n.This
}

// IndexInParent returns our index within our parent node, or -1 if we
// do not have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	return slices.IndexFunc(n.Parent.AsNodeBase().Children, func(k Node) bool {
		return k.AsNodeBase() == n
	})
}

// DeleteChild deletes the given child node, returning false if it
// cannot find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	idx := slices.IndexFunc(n.Children, func(k Node) bool { return k == child })
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	child.AsNodeBase().Parent = nil
	return true
}

// Delete deletes this node from its parent's children list.
func (n *NodeBase) Delete() {
	if n.Parent != nil {
		n.Parent.AsNodeBase().DeleteChild(n.This)
	}
}

// Walking:

const (
	// Continue can be returned from tree walking functions to continue
	// processing down the tree.
	Continue = true

	// Break can be returned from tree walking functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on this node and all of its children
// in depth-first order. It stops walking the current branch if the
// function returns [Break] and keeps walking if it returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if !fun(n.This) {
		return
	}
	for _, kid := range n.Children {
		kid.AsNodeBase().WalkDown(fun)
	}
}

// Copying:

// CopyFieldsFrom copies the typed fields of the given node into this one,
// excluding identity, attributes, and tree structure. Only same-type
// copies are supported.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsNodeBase().This,
		copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		logx.PrintError(fmt.Errorf("svg.NodeBase.CopyFieldsFrom: %w", err))
	}
}

// Clone returns a deep copy of the tree from this node down, including
// identity tokens, ids, and attributes. The clone is parentless.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	ncb := nc.AsNodeBase()
	nc.AsNodeBase().CopyFieldsFrom(n.This)
	ncb.ID = n.ID
	ncb.OriginalID = n.OriginalID
	ncb.Token = n.Token
	ncb.Attrs = n.Attrs.Copy()
	for _, kid := range n.Children {
		ncb.AddChild(kid.AsNodeBase().Clone())
	}
	return nc
}

// Transforms:

// Translate is the default translation behavior, for elements without
// direct position attributes: a translate transform is prepended to, or
// updated in, the transform attribute.
func (n *NodeBase) Translate(delta Vector2) {
	n.TranslateTransform(delta)
}

// TranslateTransform prepends or updates a translate() entry at the head
// of the transform attribute, offsetting it by the given delta.
func (n *NodeBase) TranslateTransform(delta Vector2) {
	cur := n.Attr("transform")
	tx, ty, rest, has := splitTranslate(cur)
	if has {
		tx += delta.X
		ty += delta.Y
	} else {
		tx, ty = delta.X, delta.Y
		rest = cur
	}
	tr := fmt.Sprintf("translate(%s,%s)", Float32String(tx), Float32String(ty))
	if rest != "" {
		tr += " " + rest
	}
	n.SetAttr("transform", tr)
}

// splitTranslate splits a leading translate(tx,ty) entry off the given
// transform attribute value, returning the remaining transform list and
// whether a leading translate was present.
func splitTranslate(transform string) (tx, ty float32, rest string, has bool) {
	s := strings.TrimSpace(transform)
	if !strings.HasPrefix(s, "translate(") {
		return 0, 0, transform, false
	}
	close := strings.Index(s, ")")
	if close < 0 {
		return 0, 0, transform, false
	}
	args := s[len("translate("):close]
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) < 1 || len(fields) > 2 {
		return 0, 0, transform, false
	}
	x, err := ParseFloat32(fields[0])
	if err != nil {
		return 0, 0, transform, false
	}
	y := float32(0)
	if len(fields) == 2 {
		y, err = ParseFloat32(fields[1])
		if err != nil {
			return 0, 0, transform, false
		}
	}
	return x, y, strings.TrimSpace(s[close+1:]), true
}
