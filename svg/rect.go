// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Rect is a SVG rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase

	// position of the top-left of the rectangle
	Pos Vector2

	// size of the rectangle
	Size Vector2

	// radii for curved corners
	Radius Vector2
}

// NewRect returns a new [Rect] added to the given parent, which can be nil.
func NewRect(parent Node) *Rect {
	g := &Rect{}
	initNode(g, parent)
	return g
}

func (g *Rect) SVGName() string { return "rect" }

func (g *Rect) ReadGeometry() {
	g.Pos.Set(g.GeomAttr("x"), g.GeomAttr("y"))
	g.Size.Set(g.GeomAttr("width"), g.GeomAttr("height"))
	g.Radius.Set(g.GeomAttr("rx"), g.GeomAttr("ry"))
}

func (g *Rect) Translate(delta Vector2) {
	g.Pos = g.Pos.Add(delta)
	g.SetGeomAttr("x", g.Pos.X)
	g.SetGeomAttr("y", g.Pos.Y)
}

// SetPos sets the position of the top-left corner, updating the x and y
// attributes.
func (g *Rect) SetPos(pos Vector2) {
	g.Pos = pos
	g.SetGeomAttr("x", pos.X)
	g.SetGeomAttr("y", pos.Y)
}

// SetSize sets the size, updating the width and height attributes.
func (g *Rect) SetSize(sz Vector2) {
	g.Size = sz
	g.SetGeomAttr("width", sz.X)
	g.SetGeomAttr("height", sz.Y)
}
