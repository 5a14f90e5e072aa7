// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Root represents the root svg element of a document tree. Top-level
// attributes such as viewBox and xmlns declarations are carried in the
// attribute map as authored.
type Root struct {
	NodeBase
}

// NewRoot returns a new document [Root].
func NewRoot() *Root {
	g := &Root{}
	initNode(g, nil)
	return g
}

func (g *Root) SVGName() string { return "svg" }

// Document is one open vector document: the element tree, its raw-text
// mirror, and a generation counter. A Document is replaced wholesale on
// each successful parse, never mutated in place at the root.
type Document struct {

	// Root is the root svg element of the tree.
	Root *Root

	// Raw is the authoritative raw-text mirror of the tree.
	Raw string

	// Generation is a monotonically increasing counter, bumped each time
	// the document store accepts a replacement document.
	Generation uint64
}

// NewDocument returns a new, empty Document with an initialized root.
func NewDocument() *Document {
	return &Document{Root: NewRoot()}
}

// Clone returns a deep copy of the document, preserving identity tokens,
// for snapshotting. The clone's generation starts at zero.
func (doc *Document) Clone() *Document {
	nd := &Document{Raw: doc.Raw}
	nd.Root = doc.Root.AsNodeBase().Clone().(*Root)
	return nd
}

// WalkDown calls the given function on every element of the document in
// depth-first document order.
func (doc *Document) WalkDown(fun func(n Node) bool) {
	doc.Root.AsNodeBase().WalkDown(fun)
}

// HierarchyNode is a lightweight display-only parallel of one element:
// just the addressing id, tag, and children. The hierarchy tree is fully
// rebuilt, not patched, whenever the document is replaced.
type HierarchyNode struct {
	ID       string
	Tag      string
	Children []*HierarchyNode
}

// BuildHierarchy builds the display hierarchy tree for the document.
func BuildHierarchy(doc *Document) *HierarchyNode {
	return buildHierarchy(doc.Root)
}

func buildHierarchy(n Node) *HierarchyNode {
	nb := n.AsNodeBase()
	hn := &HierarchyNode{ID: nb.ID, Tag: n.SVGName()}
	for _, kid := range nb.Children {
		hn.Children = append(hn.Children, buildHierarchy(kid))
	}
	return hn
}
