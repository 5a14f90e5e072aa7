// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Ellipse is a SVG ellipse.
type Ellipse struct {
	NodeBase

	// position of the center of the ellipse
	Pos Vector2

	// radii of the ellipse in the horizontal, vertical axes
	Radii Vector2
}

// NewEllipse returns a new [Ellipse] added to the given parent, which can be nil.
func NewEllipse(parent Node) *Ellipse {
	g := &Ellipse{}
	initNode(g, parent)
	return g
}

func (g *Ellipse) SVGName() string { return "ellipse" }

func (g *Ellipse) ReadGeometry() {
	g.Pos.Set(g.GeomAttr("cx"), g.GeomAttr("cy"))
	g.Radii.Set(g.GeomAttr("rx"), g.GeomAttr("ry"))
}

func (g *Ellipse) Translate(delta Vector2) {
	g.Pos = g.Pos.Add(delta)
	g.SetGeomAttr("cx", g.Pos.X)
	g.SetGeomAttr("cy", g.Pos.Y)
}
