// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"iter"

	"github.com/ezrec/optable/internal"
)

// Merge joins the records of several specs, in order, into a new Spec.
// An opcode defined by more than one spec is an ErrDuplicateOpcode, and
// the returned ErrSyntax names the later definition.
func Merge(specs ...*Spec) (out *Spec, err error) {
	seqs := make([]iter.Seq[*Record], len(specs))
	for n, s := range specs {
		seqs[n] = s.All()
	}

	merged := &Spec{}
	for rec := range internal.Concat(seqs...) {
		err = merged.Add(*rec)
		if err != nil {
			err = rec.Syntax(err)
			return
		}
	}

	out = merged

	return
}
