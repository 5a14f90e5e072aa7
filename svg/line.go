// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Line is a SVG line.
type Line struct {
	NodeBase

	// position of the start of the line
	Start Vector2

	// position of the end of the line
	End Vector2
}

// NewLine returns a new [Line] added to the given parent, which can be nil.
func NewLine(parent Node) *Line {
	g := &Line{}
	initNode(g, parent)
	return g
}

func (g *Line) SVGName() string { return "line" }

func (g *Line) ReadGeometry() {
	g.Start.Set(g.GeomAttr("x1"), g.GeomAttr("y1"))
	g.End.Set(g.GeomAttr("x2"), g.GeomAttr("y2"))
}

// Translate moves both endpoint pairs by the given delta.
func (g *Line) Translate(delta Vector2) {
	g.Start = g.Start.Add(delta)
	g.End = g.End.Add(delta)
	g.SetGeomAttr("x1", g.Start.X)
	g.SetGeomAttr("y1", g.Start.Y)
	g.SetGeomAttr("x2", g.End.X)
	g.SetGeomAttr("y2", g.End.Y)
}
