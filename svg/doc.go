// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package svg implements the document model for the vector editor: an element
tree parsed from standard SVG markup, with stable per-element identity
tokens that survive serialize / parse round trips.

svg.NodeBase is the base type for all SVG elements. Every element carries an
identity [Token], an internal addressing id synthesized in document order,
and the author-supplied id preserved in a separate slot. The persisted form
of a document is always pure standard markup: identity markers are emitted
only when explicitly requested for internal round trips, and are stripped
from exports.

Parsing is strict: malformed markup yields positioned errors and no
document, so callers can retain their last known good document. Attribute
and child order are preserved exactly, so serialize / parse / serialize
cycles reach a fixed point after one round trip.
*/
package svg
