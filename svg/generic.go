// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Generic is the passthrough element for any SVG tag the editor does not
// model directly (path, polygon, defs, metadata, etc). Its tag, attributes,
// and children are preserved across round trips. Direct character data is
// held as a single run serialized before the children: mixed content with
// text interleaved between child elements is normalized to that form on
// the first round trip and is stable from then on.
type Generic struct {
	NodeBase

	// Tag is the element name as authored.
	Tag string

	// Content is the direct character data of the element, if any.
	Content string
}

// NewGeneric returns a new [Generic] with the given tag, added to the
// given parent, which can be nil.
func NewGeneric(parent Node, tag string) *Generic {
	g := &Generic{Tag: tag}
	initNode(g, parent)
	return g
}

func (g *Generic) SVGName() string { return g.Tag }

// Translate uses the default transform-based translation, since the
// geometry of a passthrough element is opaque to the editor.
func (g *Generic) Translate(delta Vector2) {
	g.TranslateTransform(delta)
}
