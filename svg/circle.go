// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Circle is a SVG circle.
type Circle struct {
	NodeBase

	// position of the center of the circle
	Pos Vector2

	// radius of the circle
	Radius float32
}

// NewCircle returns a new [Circle] added to the given parent, which can be nil.
func NewCircle(parent Node) *Circle {
	g := &Circle{}
	initNode(g, parent)
	return g
}

func (g *Circle) SVGName() string { return "circle" }

func (g *Circle) ReadGeometry() {
	g.Pos.Set(g.GeomAttr("cx"), g.GeomAttr("cy"))
	g.Radius = g.GeomAttr("r")
}

func (g *Circle) Translate(delta Vector2) {
	g.Pos = g.Pos.Add(delta)
	g.SetGeomAttr("cx", g.Pos.X)
	g.SetGeomAttr("cy", g.Pos.Y)
}

// SetPos sets the center position, updating the cx and cy attributes.
func (g *Circle) SetPos(pos Vector2) {
	g.Pos = pos
	g.SetGeomAttr("cx", pos.X)
	g.SetGeomAttr("cy", pos.Y)
}

// SetRadius sets the radius, updating the r attribute.
func (g *Circle) SetRadius(r float32) {
	g.Radius = r
	g.SetGeomAttr("r", r)
}
