// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package names deduplicates mnemonic name roots.
package names

import (
	"slices"

	"github.com/ezrec/optable/spec"
)

// MaxRoots is the largest number of roots for which every name blob
// offset, including that of the trailing sentinel, fits in a byte.
const MaxRoots = 0xff / spec.RootLength

// Registry assigns each distinct name root an index in first-seen order.
// Indexes never change once assigned.
type Registry struct {
	roots []string
	index map[string]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// FromSpec interns the root of every record of s, in input order.
func FromSpec(s *spec.Spec) (reg *Registry, err error) {
	reg = New()
	for rec := range s.All() {
		index := reg.Intern(rec.Mnemonic)
		if index >= MaxRoots {
			reg = nil
			err = rec.Syntax(ErrTooManyRoots)
			return
		}
	}

	return
}

// Intern returns the index of root, assigning the next index if the root
// has not been seen before.
func (reg *Registry) Intern(root string) (index int) {
	index, ok := reg.index[root]
	if ok {
		return
	}

	if reg.index == nil {
		reg.index = make(map[string]int, 64)
	}

	index = len(reg.roots)
	reg.roots = append(reg.roots, root)
	reg.index[root] = index

	return
}

// Index returns the index of a previously interned root.
func (reg *Registry) Index(root string) (index int, ok bool) {
	index, ok = reg.index[root]
	return
}

// Root returns the root at an index.
func (reg *Registry) Root(index int) string {
	return reg.roots[index]
}

// Len returns the number of distinct roots.
func (reg *Registry) Len() int {
	return len(reg.roots)
}

// Roots returns a copy of all roots in index order.
func (reg *Registry) Roots() []string {
	return slices.Clone(reg.roots)
}
