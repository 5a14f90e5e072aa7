// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenAttr is the marker attribute carrying the identity token across
// internal round trips. It is only emitted when serializing with
// KeepUUID, and is always stripped from exported markup.
const TokenAttr = "data-vid"

// Token is the stable identity marker for one element: unique within a
// document, independent of any author-visible id, enabling cross-round-trip
// addressing. The zero value means unassigned.
type Token uuid.UUID

// NewToken returns a fresh random Token.
func NewToken() Token {
	return Token(uuid.New())
}

// ParseToken parses the string form of a Token.
func ParseToken(s string) (Token, error) {
	u, err := uuid.Parse(s)
	return Token(u), err
}

// String returns the canonical string form of the token.
func (t Token) String() string {
	return uuid.UUID(t).String()
}

// IsNil returns whether the token is unassigned.
func (t Token) IsNil() bool {
	return t == Token{}
}

// AssignIdentity walks a just-parsed document and stamps identity onto
// every element:
//
//   - Identity tokens already present (from a re-serialized working copy)
//     are kept; otherwise a fresh one is synthesized. A duplicated token is
//     kept on its first carrier in document order and re-synthesized on
//     later ones.
//   - Internal addressing ids are always synthesized, deterministically in
//     document order, as the element tag plus a running per-document count.
//     Author ids never influence them, so they are collision-free by
//     construction and identical on every reparse of the same structure.
//
// Author-supplied ids are left in their original slot untouched; duplicate
// author ids are resolved at the registry level (see [NewRegistry]).
// There is no failure mode: malformed input ids are always resolved,
// never rejected.
func AssignIdentity(doc *Document) {
	seen := map[Token]bool{}
	count := 0
	doc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.Token.IsNil() || seen[nb.Token] {
			nb.Token = NewToken()
		}
		seen[nb.Token] = true
		count++
		nb.ID = fmt.Sprintf("%s-%d", n.SVGName(), count)
		return Continue
	})
}
