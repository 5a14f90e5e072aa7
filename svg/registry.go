// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "fmt"

// Registry is the derived index from identity token and addressing id to
// live node. It is rebuilt wholesale each time the document store accepts
// a new document, and is never persisted. It is not updated incrementally
// during a live gesture; the gesture engine rebuilds it at commit time.
type Registry struct {
	tokens map[Token]Node
	ids    map[string]Node
}

// NewRegistry builds the index for the given document.
//
// The id index maps both internal addressing ids and author-supplied
// original ids. Internal ids are registered first, in one full pass, so
// they are never shadowed: they are collision-free among themselves by
// construction, and author ids that collide with them (or with each
// other) are aliased under deterministic -2, -3... suffixes in document
// order, first-seen-wins. Every element remains addressable and no input
// is ever rejected.
func NewRegistry(doc *Document) *Registry {
	reg := &Registry{
		tokens: map[Token]Node{},
		ids:    map[string]Node{},
	}
	doc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		reg.tokens[nb.Token] = n
		reg.ids[nb.ID] = n
		return Continue
	})
	seen := map[string]int{}
	doc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if nb.OriginalID == "" {
			return Continue
		}
		oid := nb.OriginalID
		for {
			alias := oid
			if c := seen[oid]; c > 0 {
				alias = fmt.Sprintf("%s-%d", oid, c+1)
			}
			seen[oid]++
			if _, taken := reg.ids[alias]; !taken {
				reg.ids[alias] = n
				break
			}
		}
		return Continue
	})
	return reg
}

// ByToken returns the live node holding the given identity token,
// or nil if none does.
func (reg *Registry) ByToken(t Token) Node {
	return reg.tokens[t]
}

// ByID returns the live node addressed by the given id, which can be an
// internal addressing id or an author-supplied one. Returns nil if no
// element is addressed by it.
func (reg *Registry) ByID(id string) Node {
	return reg.ids[id]
}

// HasToken returns whether the given token exists in the registry.
func (reg *Registry) HasToken(t Token) bool {
	_, has := reg.tokens[t]
	return has
}

// NumElements returns the number of indexed elements.
func (reg *Registry) NumElements() int {
	return len(reg.tokens)
}
