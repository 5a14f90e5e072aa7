// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"io"
	"strings"
)

// WriteOptions control serialization.
type WriteOptions struct {

	// KeepUUID emits the identity marker attribute on every element, for
	// internal round trips across the gesture and history boundary. The
	// default (false) produces pure standard markup for export, with no
	// editor-internal residue.
	KeepUUID bool

	// Indent pretty-prints with two-space indentation.
	Indent bool
}

// WriteXML serializes the document to the given writer. Attribute
// insertion order and child order are preserved exactly, so repeated
// serialize / parse / serialize cycles reach a fixed point once a document
// has been through one round trip.
func (doc *Document) WriteXML(w io.Writer, opts WriteOptions) error {
	enc := newXMLEncoder(w, opts.Indent)
	marshalTree(enc, doc.Root, opts)
	return enc.err
}

// XMLString returns the serialized document as a string.
func (doc *Document) XMLString(opts WriteOptions) string {
	var sb strings.Builder
	doc.WriteXML(&sb, opts)
	return sb.String()
}

// marshalTree writes one element and its subtree.
func marshalTree(enc *xmlEncoder, n Node, opts WriteOptions) {
	nb := n.AsNodeBase()
	enc.startElement(n.SVGName())
	if nb.OriginalID != "" {
		enc.attr("id", nb.OriginalID)
	}
	if opts.KeepUUID {
		enc.attr(TokenAttr, nb.Token.String())
	}
	for _, kv := range nb.Attrs.Order {
		enc.attr(kv.Key, kv.Value)
	}
	text := ""
	switch nd := n.(type) {
	case *Text:
		text = nd.Text
	case *Generic:
		text = nd.Content
	}
	if text == "" && !nb.HasChildren() {
		enc.closeEmpty()
		return
	}
	enc.closeStart()
	if text != "" {
		enc.charData(text)
	}
	for _, kid := range nb.Children {
		marshalTree(enc, kid, opts)
	}
	enc.endElement(n.SVGName(), text != "")
}

// xmlEncoder is a minimal XML writer that emits attributes in exactly the
// order given and supports self-closing empty elements, neither of which
// [encoding/xml.Encoder] guarantees in the form needed here.
type xmlEncoder struct {
	w      io.Writer
	indent bool
	depth  int
	err    error
}

func newXMLEncoder(w io.Writer, indent bool) *xmlEncoder {
	return &xmlEncoder{w: w, indent: indent}
}

func (enc *xmlEncoder) write(s string) {
	if enc.err != nil {
		return
	}
	_, enc.err = io.WriteString(enc.w, s)
}

func (enc *xmlEncoder) newline() {
	if !enc.indent {
		return
	}
	enc.write("\n")
	enc.write(strings.Repeat("  ", enc.depth))
}

func (enc *xmlEncoder) startElement(name string) {
	if enc.depth > 0 {
		enc.newline()
	}
	enc.write("<" + name)
	enc.depth++
}

func (enc *xmlEncoder) attr(name, value string) {
	enc.write(" " + name + `="` + escapeAttr(value) + `"`)
}

// closeEmpty closes the current element as self-closing.
func (enc *xmlEncoder) closeEmpty() {
	enc.write("/>")
	enc.depth--
}

// closeStart closes the start tag of an element that has content.
func (enc *xmlEncoder) closeStart() {
	enc.write(">")
}

func (enc *xmlEncoder) charData(text string) {
	enc.write(escapeText(text))
}

func (enc *xmlEncoder) endElement(name string, inline bool) {
	enc.depth--
	if !inline {
		enc.newline()
	}
	enc.write("</" + name + ">")
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")
	textEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;")
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
