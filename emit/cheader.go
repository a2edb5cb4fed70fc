// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/optable/spec"
	"github.com/ezrec/optable/table"
)

// CHeader writes the tables as a C header declaring <prefix>_to_name,
// <prefix>_names, and <prefix>_modes, plus an OP_<mode> define per mode.
func CHeader(w io.Writer, tab *table.Tables, opt Options) (err error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "/* Generated from %s; do not edit */\n", opt.Source)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "#ifndef %s\n", opt.Guard)
	fmt.Fprintf(&buf, "#define %s\n", opt.Guard)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "/* Opcode modes (bits 0..4) and instruction lengths (bits 6..7). */")
	for mode := range spec.Modes() {
		fmt.Fprintf(&buf, "#define %-16s0x%02X\n", "OP_"+mode.Ident(), mode.Code())
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "/* Convert an opcode number into an index into the name table. */")
	fmt.Fprintf(&buf, "unsigned char const %s_to_name[%d] = {\n", opt.Prefix, spec.OpcodeCount)
	for op := range spec.OpcodeCount {
		text, ok := annotation(tab, byte(op))
		if ok {
			fmt.Fprintf(&buf, "    %3d, /* %s */\n", tab.Opcodes[op], text)
		} else {
			fmt.Fprintf(&buf, "    %3d,\n", tab.Opcodes[op])
		}
	}
	fmt.Fprintln(&buf, "};")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "/* List of all opcode names, compacted to save space */")
	fmt.Fprintf(&buf, "char const %s_names[] =\n", opt.Prefix)
	for _, chunk := range tab.Chunks(opt.Width) {
		fmt.Fprintf(&buf, "    %q\n", chunk)
	}
	fmt.Fprintln(&buf, ";")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "/* Modes and instruction lengths for all opcodes */")
	fmt.Fprintf(&buf, "unsigned char const %s_modes[] = {\n", opt.Prefix)
	for op := range spec.OpcodeCount {
		text, ok := modeAnnotation(tab, byte(op))
		if ok {
			fmt.Fprintf(&buf, "    OP_%-20s, /* %s */\n", tab.Mode(byte(op)).Ident(), text)
		} else {
			fmt.Fprintf(&buf, "    OP_%s,\n", tab.Mode(byte(op)).Ident())
		}
	}
	fmt.Fprintln(&buf, "};")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "#endif")

	_, err = w.Write(buf.Bytes())
	err = errors.Wrap(err, "C header write failed")

	return
}
