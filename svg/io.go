// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ParseError is one positioned error from parsing markup.
type ParseError struct {

	// Line is the 1-based line number in the input text.
	Line int

	// Message describes what went wrong.
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Result is the outcome of [Parse]. When Success is false, Doc and Tree are
// nil and Errors has at least one entry; callers must not apply a failed
// result, retaining their last known good document instead.
type Result struct {

	// Success is whether the input parsed as a valid document.
	Success bool

	// Doc is the parsed, identity-stamped document.
	Doc *Document

	// Tree is the derived display hierarchy.
	Tree *HierarchyNode

	// Errors holds the parse errors, with line positions.
	Errors []ParseError
}

// Parse turns raw markup text into a validated, identity-stamped document
// plus its display hierarchy. Parsing identical fresh text twice yields
// structurally identical trees with different tokens; parsing text that was
// serialized with tokens kept reproduces the same tokens.
func Parse(text string) *Result {
	res := &Result{}
	doc, err := readXML(strings.NewReader(text))
	if err != nil {
		res.Errors = append(res.Errors, toParseError(err))
		return res
	}
	doc.Raw = text
	AssignIdentity(doc)
	res.Success = true
	res.Doc = doc
	res.Tree = BuildHierarchy(doc)
	return res
}

// toParseError converts a decoding error into a positioned [ParseError].
func toParseError(err error) ParseError {
	var pe ParseError
	if errors.As(err, &pe) {
		return pe
	}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return ParseError{Line: se.Line, Message: se.Msg}
	}
	return ParseError{Line: 1, Message: err.Error()}
}

// readXML reads one svg document from the reader, using xml.Decoder in
// strict mode so malformed markup (unclosed or mismatched tags) is
// reported rather than repaired.
func readXML(reader io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = true
	decoder.CharsetReader = charset.NewReaderLabel

	doc := NewDocument()
	var curPar Node // current parent node into which elements are created
	rootClosed := false

	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			nm := qualifiedName(se.Name)
			switch {
			case curPar == nil && rootClosed:
				return nil, ParseError{Line: lineAt(decoder), Message: "content after closing </svg> tag"}
			case curPar == nil && nm != "svg":
				return nil, ParseError{Line: lineAt(decoder), Message: fmt.Sprintf("invalid top-level element <%s>: document must be rooted at <svg>", nm)}
			case curPar == nil:
				setElementAttrs(doc.Root, se.Attr)
				curPar = doc.Root
			default:
				n := newElement(curPar, nm)
				setElementAttrs(n, se.Attr)
				n.ReadGeometry()
				curPar = n
			}
		case xml.EndElement:
			if curPar == nil {
				return nil, ParseError{Line: lineAt(decoder), Message: fmt.Sprintf("unexpected closing tag </%s>", qualifiedName(se.Name))}
			}
			curPar = curPar.AsNodeBase().Parent
			if curPar == nil {
				rootClosed = true
			}
		case xml.CharData:
			trspc := strings.TrimSpace(string(se))
			if trspc == "" || curPar == nil {
				break
			}
			switch nd := curPar.(type) {
			case *Text:
				nd.Text += trspc
			case *Generic:
				nd.Content += trspc
			}
		}
	}
	if curPar != nil {
		return nil, ParseError{Line: lineAt(decoder), Message: fmt.Sprintf("unclosed element <%s>", curPar.SVGName())}
	}
	if !rootClosed {
		return nil, ParseError{Line: 1, Message: "no svg element found"}
	}
	return doc, nil
}

// newElement creates the node for the given element name under the given
// parent. Any name without a dedicated type becomes a [Generic]
// passthrough, preserved verbatim.
func newElement(parent Node, nm string) Node {
	switch nm {
	case "g":
		return NewGroup(parent)
	case "rect":
		return NewRect(parent)
	case "circle":
		return NewCircle(parent)
	case "ellipse":
		return NewEllipse(parent)
	case "line":
		return NewLine(parent)
	case "text":
		return NewText(parent)
	}
	return NewGeneric(parent, nm)
}

// setElementAttrs applies parsed attributes to the node in document order.
// The id attribute is lifted into the original-id slot, and the identity
// marker (when present, from a re-serialized working copy) into the token;
// neither is kept in the ordered attribute map.
func setElementAttrs(n Node, attrs []xml.Attr) {
	nb := n.AsNodeBase()
	for _, attr := range attrs {
		nm := qualifiedName(attr.Name)
		switch nm {
		case "id":
			nb.OriginalID = attr.Value
		case TokenAttr:
			if tok, err := ParseToken(attr.Value); err == nil {
				nb.Token = tok
			}
		default:
			nb.SetAttr(nm, attr.Value)
		}
	}
}

// namespacePrefixes maps namespace URLs back to their conventional
// prefixes, so attributes from common vector-editor namespaces keep their
// authored form across round trips.
var namespacePrefixes = map[string]string{
	"http://www.inkscape.org/namespaces/inkscape":      "inkscape",
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd": "sodipodi",
	"http://www.w3.org/1999/xlink":                     "xlink",
	"http://www.w3.org/XML/1998/namespace":             "xml",
	"http://www.w3.org/2000/svg":                       "",
}

// qualifiedName rebuilds the authored qualified name of an element or
// attribute from the decoder's namespace-resolved form.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	prefix, known := namespacePrefixes[name.Space]
	if !known {
		prefix = name.Space // undeclared prefixes pass through as written
	}
	if prefix == "" {
		return name.Local
	}
	return prefix + ":" + name.Local
}

// lineAt returns the 1-based line of the decoder's current input position,
// for structural errors raised here; syntax errors carry their own line.
func lineAt(decoder *xml.Decoder) int {
	line, _ := decoder.InputPos()
	return line
}
