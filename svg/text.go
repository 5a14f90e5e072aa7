// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Text is a SVG text element. Nested tspan elements are parsed as
// passthrough children; the direct character data is held here as a
// single run, serialized before the children, so text interleaved
// between tspans is normalized to a leading run on the first round trip.
type Text struct {
	NodeBase

	// position of the left, baseline of the text
	Pos Vector2

	// text string to render
	Text string
}

// NewText returns a new [Text] added to the given parent, which can be nil.
func NewText(parent Node) *Text {
	g := &Text{}
	initNode(g, parent)
	return g
}

func (g *Text) SVGName() string { return "text" }

func (g *Text) ReadGeometry() {
	g.Pos.Set(g.GeomAttr("x"), g.GeomAttr("y"))
}

func (g *Text) Translate(delta Vector2) {
	g.Pos = g.Pos.Add(delta)
	g.SetGeomAttr("x", g.Pos.X)
	g.SetGeomAttr("y", g.Pos.Y)
}
