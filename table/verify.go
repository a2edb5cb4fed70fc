// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"github.com/ezrec/optable/spec"
)

// Verify checks the table invariants: the name blob holds every root plus
// the sentinel, every offset lands on a root boundary inside the blob,
// every mode code is known, and undefined opcodes are illegal. When the
// source records are present, each defined opcode must name its record's
// root and mode.
func (tab *Tables) Verify() (err error) {
	if len(tab.Names) != spec.RootLength*(tab.Roots+1) {
		err = ErrNamesLength
		return
	}

	sentinel := spec.RootLength * tab.Roots
	if string(tab.Names[sentinel:]) != tab.Sentinel {
		err = ErrNamesLength
		return
	}

	for op := range spec.OpcodeCount {
		opcode := byte(op)

		offset := tab.Offset(opcode)
		if offset%spec.RootLength != 0 || offset > sentinel {
			err = ErrTable{Opcode: opcode, Err: ErrOffset}
			return
		}

		mode, ok := spec.ModeOfCode(tab.Modes[op])
		if !ok {
			err = ErrTable{Opcode: opcode, Err: ErrModeCode}
			return
		}

		if !tab.Defined(opcode) && mode != spec.MODE_ILL {
			err = ErrTable{Opcode: opcode, Err: ErrUndefined}
			return
		}

		if tab.Spec == nil {
			continue
		}

		rec, ok := tab.Spec.Lookup(opcode)
		if !ok {
			if tab.Defined(opcode) {
				err = ErrTable{Opcode: opcode, Err: ErrNameMismatch}
				return
			}
			continue
		}
		if tab.Name(opcode) != rec.Mnemonic || !tab.Defined(opcode) {
			err = ErrTable{Opcode: opcode, Err: ErrNameMismatch}
			return
		}
		if mode != rec.Mode {
			err = ErrTable{Opcode: opcode, Err: ErrModeMismatch}
			return
		}
	}

	return
}
