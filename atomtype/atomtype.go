// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atomtype defines the boundary collaborator the core uses to
// resolve atom-type names to indices (spec §6). The registry's internals
// (parsing, ownership of per-type metadata) live outside the core; this
// package only states the contract.
package atomtype

import "github.com/cpmech/gosl/chk"

// Registry provides (name, index) lookups for every known atom type
type Registry interface {
	// Lookup returns the index of name, or ok=false if not found
	Lookup(name string) (index int, ok bool)
	// Len returns the number of registered types
	Len() int
}

// MustLookup looks up name in reg, terminating the process via chk.Panic if
// unresolved — used at the few call sites where an unresolved name is a
// programming error rather than a recoverable Unresolved failure
func MustLookup(reg Registry, name string) int {
	idx, ok := reg.Lookup(name)
	if !ok {
		chk.Panic("atomtype: MustLookup: atom type %q not found", name)
	}
	return idx
}

// SliceRegistry is a minimal in-memory Registry backed by a name slice,
// useful for tests and for small standalone tools
type SliceRegistry []string

// Lookup implements Registry
func (o SliceRegistry) Lookup(name string) (int, bool) {
	for i, n := range o {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Len implements Registry
func (o SliceRegistry) Len() int { return len(o) }
