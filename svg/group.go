// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Group groups together SVG elements. It provides a common transform for
// all group elements and shared presentation attributes.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] added to the given parent, which can be nil.
func NewGroup(parent Node) *Group {
	g := &Group{}
	initNode(g, parent)
	return g
}

func (g *Group) SVGName() string { return "g" }

// Translate uses the default transform-based translation, as groups have
// no direct position attributes.
func (g *Group) Translate(delta Vector2) {
	g.TranslateTransform(delta)
}
