// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"fmt"
	"iter"
	"strings"
)

// OpcodeCount is the size of the opcode space.
const OpcodeCount = 256

// RootLength is the number of mnemonic characters used as a name root.
const RootLength = 3

// Record is a single parsed instruction definition.
type Record struct {
	Source   string // Input name of the definition, may be empty.
	LineNo   int    // Input line of the definition.
	Opcode   byte   // Opcode value.
	Mnemonic string // Lowercase name root, the first 3 characters of the mnemonic.
	Extra    string // Lowercase remainder of the mnemonic, may be empty.
	Mode     Mode   // Addressing mode.
}

// Name returns the full lowercase mnemonic.
func (rec Record) Name() string {
	return rec.Mnemonic + rec.Extra
}

// String returns the record in input syntax.
func (rec Record) String() string {
	return fmt.Sprintf("%02X;%s;%v", rec.Opcode, strings.ToUpper(rec.Name()), rec.Mode)
}

// Syntax wraps err with the input position of the record.
func (rec Record) Syntax(err error) *ErrSyntax {
	return &ErrSyntax{Source: rec.Source, LineNo: rec.LineNo, Line: rec.String(), Err: err}
}

// Spec is a set of instruction records, kept in input order.
type Spec struct {
	Records []Record

	index [OpcodeCount]int // Record index + 1, zero if undefined.
}

// Add appends a record, refusing opcodes that are already defined.
func (s *Spec) Add(rec Record) (err error) {
	prior, ok := s.Lookup(rec.Opcode)
	if ok {
		err = ErrOpcodeDuplicate{
			Opcode:      rec.Opcode,
			FirstLine:   prior.LineNo,
			FirstSource: prior.Source,
		}
		return
	}

	s.Records = append(s.Records, rec)
	s.index[rec.Opcode] = len(s.Records)

	return
}

// Lookup returns the record defining an opcode.
func (s *Spec) Lookup(opcode byte) (rec *Record, ok bool) {
	n := s.index[opcode]
	if n == 0 {
		return
	}

	rec = &s.Records[n-1]
	ok = true

	return
}

// Len returns the number of defined opcodes.
func (s *Spec) Len() int {
	return len(s.Records)
}

// All iterates over records in input order.
func (s *Spec) All() iter.Seq[*Record] {
	return func(yield func(rec *Record) bool) {
		for n := range s.Records {
			if !yield(&s.Records[n]) {
				return
			}
		}
	}
}
