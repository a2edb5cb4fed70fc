// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package table encodes parsed instruction records into the fixed size
// lookup tables consulted by a 6502 family decoder or disassembler.
//
// Three artifacts are produced:
//
//   - Opcodes, mapping each opcode to the offset of its name in Names.
//   - Names, the concatenated 3 character name roots followed by a
//     sentinel root that undefined opcodes point at.
//   - Modes, mapping each opcode to its packed mode (bits 0..4) and
//     instruction length (bits 6..7) code.
package table

import (
	"fmt"
	"io"

	"github.com/ezrec/optable/names"
	"github.com/ezrec/optable/spec"
)

// SentinelDefault is the name root of undefined opcodes.
const SentinelDefault = "db "

// Tables holds the encoded lookup tables.
type Tables struct {
	Opcodes  [spec.OpcodeCount]byte // Name offset of each opcode.
	Modes    [spec.OpcodeCount]byte // Mode and length code of each opcode.
	Names    []byte                 // Name roots, then the sentinel root.
	Roots    int                    // Number of distinct name roots.
	Sentinel string                 // Sentinel root text.

	Spec *spec.Spec // Source records, nil when decoded from a binary image.
}

// Options controls the table generation pipeline.
type Options struct {
	Sentinel string // Sentinel root; SentinelDefault if empty.
	Select   string // Starlark record selection expression; all if empty.
	Verbose  bool   // If set, verbosely logs parsing.
}

// Encode builds the tables from records and their interned roots.
//
// The inputs must already be valid: every record root interned in reg,
// roots and sentinel exactly 3 bytes, and few enough roots that every
// offset fits a byte. A violation is a programming error and panics.
func Encode(s *spec.Spec, reg *names.Registry, sentinel string) (tab *Tables) {
	if len(sentinel) != spec.RootLength {
		panic(fmt.Sprintf("table: sentinel %q is not %d bytes", sentinel, spec.RootLength))
	}

	roots := reg.Len()
	if roots > names.MaxRoots {
		panic(fmt.Sprintf("table: %d roots overflow byte offsets", roots))
	}

	tab = &Tables{
		Roots:    roots,
		Sentinel: sentinel,
		Spec:     s,
	}

	unknown := byte(spec.RootLength * roots)
	illegal := spec.MODE_ILL.Code()

	for op := range spec.OpcodeCount {
		rec, ok := s.Lookup(byte(op))
		if !ok {
			tab.Opcodes[op] = unknown
			tab.Modes[op] = illegal
			continue
		}

		index, ok := reg.Index(rec.Mnemonic)
		if !ok {
			panic(fmt.Sprintf("table: root %q of opcode %02X not interned", rec.Mnemonic, op))
		}

		tab.Opcodes[op] = byte(spec.RootLength * index)
		tab.Modes[op] = rec.Mode.Code()
	}

	blob := make([]byte, 0, spec.RootLength*(roots+1))
	for _, root := range reg.Roots() {
		if len(root) != spec.RootLength {
			panic(fmt.Sprintf("table: root %q is not %d bytes", root, spec.RootLength))
		}
		blob = append(blob, root...)
	}
	blob = append(blob, sentinel...)

	tab.Names = blob

	return
}

// Build interns the roots of s in input order and encodes the tables.
func Build(s *spec.Spec, opt Options) (tab *Tables, err error) {
	sentinel := opt.Sentinel
	if len(sentinel) == 0 {
		sentinel = SentinelDefault
	}
	if len(sentinel) != spec.RootLength {
		err = ErrSentinel(sentinel)
		return
	}

	reg, err := names.FromSpec(s)
	if err != nil {
		return
	}

	tab = Encode(s, reg, sentinel)

	return
}

// Generate runs the whole pipeline: parse the input, select records,
// intern roots, and encode the tables.
func Generate(input io.Reader, opt Options) (tab *Tables, err error) {
	parser := &spec.Parser{Verbose: opt.Verbose}

	s, err := parser.Parse(input)
	if err != nil {
		return
	}

	s, err = s.Select(opt.Select)
	if err != nil {
		return
	}

	return Build(s, opt)
}

// Offset returns the name offset of an opcode.
func (tab *Tables) Offset(opcode byte) int {
	return int(tab.Opcodes[opcode])
}

// Defined returns true if the opcode has an instruction.
func (tab *Tables) Defined(opcode byte) bool {
	return tab.Offset(opcode) != spec.RootLength*tab.Roots
}

// Name returns the 3 character name root of an opcode, or the sentinel.
func (tab *Tables) Name(opcode byte) string {
	offset := tab.Offset(opcode)
	return string(tab.Names[offset : offset+spec.RootLength])
}

// Mode returns the addressing mode of an opcode.
func (tab *Tables) Mode(opcode byte) spec.Mode {
	mode, _ := spec.ModeOfCode(tab.Modes[opcode])
	return mode
}

// Length returns the instruction length category of an opcode.
func (tab *Tables) Length(opcode byte) int {
	return int(tab.Modes[opcode] >> 6)
}

// Chunks splits the name blob into runs of at most width bytes, for output
// formats with line length limits. A width less than 1 returns one run.
func (tab *Tables) Chunks(width int) (chunks []string) {
	blob := string(tab.Names)
	if width < 1 {
		width = len(blob)
	}

	for len(blob) > width {
		chunks = append(chunks, blob[:width])
		blob = blob[width:]
	}
	if len(blob) > 0 {
		chunks = append(chunks, blob)
	}

	return
}

// Annotation describes an opcode for emitted comments, as the name root,
// the extra mnemonic text, and the mode spelling. It is empty for
// undefined opcodes and for tables without source records.
func (tab *Tables) Annotation(opcode byte) (root, extra, mode string) {
	if tab.Spec == nil {
		return
	}

	rec, ok := tab.Spec.Lookup(opcode)
	if !ok {
		return
	}

	root = rec.Mnemonic
	extra = rec.Extra
	mode = rec.Mode.String()

	return
}

// String summarises the tables.
func (tab *Tables) String() string {
	defined := 0
	for op := range spec.OpcodeCount {
		if tab.Defined(byte(op)) {
			defined++
		}
	}

	return fmt.Sprintf("%d opcodes, %d roots, names %q", defined, tab.Roots, tab.Names)
}
