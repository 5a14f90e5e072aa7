// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRect(t *testing.T) {
	res := Parse(`<svg><rect id="a" x="1" y="2" width="3" height="4"/></svg>`)
	require.True(t, res.Success)
	require.Empty(t, res.Errors)
	require.NotNil(t, res.Doc)

	root := res.Doc.Root
	require.Equal(t, 1, root.NumChildren())
	rect, ok := root.Child(0).(*Rect)
	require.True(t, ok)

	assert.Equal(t, "a", rect.OriginalID)
	assert.NotEmpty(t, rect.ID)
	assert.NotEqual(t, "a", rect.ID)
	assert.False(t, rect.Token.IsNil())
	assert.Equal(t, Vec2(1, 2), rect.Pos)
	assert.Equal(t, Vec2(3, 4), rect.Size)

	// hierarchy mirrors the tree
	require.NotNil(t, res.Tree)
	assert.Equal(t, "svg", res.Tree.Tag)
	require.Len(t, res.Tree.Children, 1)
	assert.Equal(t, "rect", res.Tree.Children[0].Tag)
	assert.Equal(t, rect.ID, res.Tree.Children[0].ID)
}

func TestParseMismatchedTag(t *testing.T) {
	res := Parse(`<svg><rect></svg>`)
	assert.False(t, res.Success)
	assert.Nil(t, res.Doc)
	require.NotEmpty(t, res.Errors)
	assert.GreaterOrEqual(t, res.Errors[0].Line, 1)
	assert.NotEmpty(t, res.Errors[0].Message)
}

func TestParseInvalidTopLevel(t *testing.T) {
	res := Parse(`<div><rect/></div>`)
	assert.False(t, res.Success)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "top-level")
}

func TestParseUnclosed(t *testing.T) {
	res := Parse(`<svg><g><rect/>`)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)
}

func TestParseEmpty(t *testing.T) {
	res := Parse(``)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Errors)
}

func TestFreshTokensDiffer(t *testing.T) {
	const src = `<svg><circle cx="5" cy="5" r="2"/></svg>`
	r1 := Parse(src)
	r2 := Parse(src)
	require.True(t, r1.Success)
	require.True(t, r2.Success)
	c1 := r1.Doc.Root.Child(0).AsNodeBase()
	c2 := r2.Doc.Root.Child(0).AsNodeBase()
	assert.Equal(t, c1.ID, c2.ID) // deterministic internal ids
	assert.NotEqual(t, c1.Token, c2.Token)
}

func TestRoundTripTokens(t *testing.T) {
	res := Parse(`<svg viewBox="0 0 100 100">` +
		`<g id="layer"><rect id="a" x="1" y="2" width="3" height="4"/>` +
		`<circle cx="5" cy="6" r="7" fill="red"/></g>` +
		`<text x="10" y="20">hello</text></svg>`)
	require.True(t, res.Success)

	out := res.Doc.XMLString(WriteOptions{KeepUUID: true})
	res2 := Parse(out)
	require.True(t, res2.Success)

	var orig, rt []Node
	res.Doc.WalkDown(func(n Node) bool { orig = append(orig, n); return Continue })
	res2.Doc.WalkDown(func(n Node) bool { rt = append(rt, n); return Continue })
	require.Equal(t, len(orig), len(rt))
	for i := range orig {
		ob, rb := orig[i].AsNodeBase(), rt[i].AsNodeBase()
		assert.Equal(t, orig[i].SVGName(), rt[i].SVGName())
		assert.Equal(t, ob.Token, rb.Token)
		assert.Equal(t, ob.ID, rb.ID)
		assert.Equal(t, ob.OriginalID, rb.OriginalID)
		assert.Equal(t, ob.Attrs.Keys(), rb.Attrs.Keys())
	}
}

func TestExportPurity(t *testing.T) {
	res := Parse(`<svg><rect id="a" x="1" y="2" width="3" height="4"/></svg>`)
	require.True(t, res.Success)
	out := res.Doc.XMLString(WriteOptions{})
	assert.NotContains(t, out, TokenAttr)
	assert.Contains(t, out, `id="a"`)
}

func TestSerializeFixedPoint(t *testing.T) {
	res := Parse(`<svg width="100" height="50">` +
		`<rect x="1" y="2" width="3" height="4" fill="blue" stroke="black"/>` +
		`<metadata custom="x">meta</metadata></svg>`)
	require.True(t, res.Success)

	for _, opts := range []WriteOptions{{}, {KeepUUID: true}, {Indent: true}} {
		s1 := res.Doc.XMLString(opts)
		r2 := Parse(s1)
		require.True(t, r2.Success, "roundtrip parse of %q", s1)
		s2 := r2.Doc.XMLString(opts)
		assert.Equal(t, s1, s2)
	}
}

func TestAttrOrderPreserved(t *testing.T) {
	res := Parse(`<svg><path d="M0 0L1 1" stroke="red" fill="none" opacity="0.5"/></svg>`)
	require.True(t, res.Success)
	p, ok := res.Doc.Root.Child(0).(*Generic)
	require.True(t, ok)
	assert.Equal(t, "path", p.Tag)
	assert.Equal(t, []string{"d", "stroke", "fill", "opacity"}, p.Attrs.Keys())

	out := res.Doc.XMLString(WriteOptions{})
	di := strings.Index(out, "d=")
	si := strings.Index(out, "stroke=")
	fi := strings.Index(out, "fill=")
	assert.True(t, di < si && si < fi)
}

func TestTextContent(t *testing.T) {
	res := Parse(`<svg><text x="1" y="2">hello &amp; goodbye</text></svg>`)
	require.True(t, res.Success)
	txt := res.Doc.Root.Child(0).(*Text)
	assert.Equal(t, "hello & goodbye", txt.Text)
	out := res.Doc.XMLString(WriteOptions{})
	assert.Contains(t, out, "hello &amp; goodbye")
}

func TestMixedContentNormalizedOnFirstTrip(t *testing.T) {
	res := Parse(`<svg><text x="1" y="2">a<tspan>b</tspan>c</text></svg>`)
	require.True(t, res.Success)

	// Interleaved character data collapses to one leading run; the child
	// order is preserved, and the result is a fixed point.
	first := res.Doc.XMLString(WriteOptions{})
	assert.Contains(t, first, ">ac<tspan>b</tspan>")

	res2 := Parse(first)
	require.True(t, res2.Success)
	assert.Equal(t, first, res2.Doc.XMLString(WriteOptions{}))
}

func TestRegistryDuplicateIDs(t *testing.T) {
	res := Parse(`<svg><rect id="a" x="0" y="0" width="1" height="1"/>` +
		`<rect id="a" x="5" y="5" width="1" height="1"/></svg>`)
	require.True(t, res.Success)
	reg := NewRegistry(res.Doc)

	first := reg.ByID("a")
	require.NotNil(t, first)
	assert.Equal(t, float32(0), first.(*Rect).Pos.X)

	second := reg.ByID("a-2")
	require.NotNil(t, second)
	assert.Equal(t, float32(5), second.(*Rect).Pos.X)

	assert.Nil(t, reg.ByID("missing"))
}

func TestRegistryAuthorIDCollidingWithInternal(t *testing.T) {
	// The circle's author id "rect-2" is exactly the rect's synthesized
	// internal addressing id. Internal ids are never shadowed; the author
	// id is aliased with a suffix, so both elements stay addressable.
	res := Parse(`<svg><rect x="0" y="0" width="1" height="1"/>` +
		`<circle id="rect-2" cx="5" cy="5" r="1"/></svg>`)
	require.True(t, res.Success)
	reg := NewRegistry(res.Doc)

	rect, ok := reg.ByID("rect-2").(*Rect)
	require.True(t, ok, "internal id resolves to its own element")
	assert.Equal(t, "rect-2", rect.ID)

	circle, ok := reg.ByID("rect-2-2").(*Circle)
	require.True(t, ok, "colliding author id aliased deterministically")
	assert.Equal(t, "rect-2", circle.OriginalID)
}

func TestRegistryByToken(t *testing.T) {
	res := Parse(`<svg><ellipse cx="1" cy="2" rx="3" ry="4"/></svg>`)
	require.True(t, res.Success)
	reg := NewRegistry(res.Doc)
	el := res.Doc.Root.Child(0).AsNodeBase()
	assert.Equal(t, el.This, reg.ByToken(el.Token))
	assert.False(t, reg.HasToken(NewToken()))
	assert.Equal(t, 2, reg.NumElements())
}
