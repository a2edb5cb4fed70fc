// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/optable/spec"
	"github.com/ezrec/optable/table"
)

// goGenerator accumulates unformatted Go source.
type goGenerator struct {
	bytes.Buffer
}

func (g *goGenerator) printf(format string, args ...any) {
	fmt.Fprintf(g, "%s\n", fmt.Sprintf(format, args...))
}

// exported turns a symbol prefix into an exported Go identifier.
func exported(prefix, name string) string {
	var ident strings.Builder
	upper := true
	for _, c := range prefix + "_" + name {
		switch {
		case c == '_':
			upper = true
		case upper:
			ident.WriteString(strings.ToUpper(string(c)))
			upper = false
		default:
			ident.WriteRune(c)
		}
	}
	return ident.String()
}

// GoSource writes the tables as a gofmt formatted Go package.
func GoSource(w io.Writer, tab *table.Tables, opt Options) (err error) {
	g := &goGenerator{}

	g.printf(`// Code generated by optable from %s. DO NOT EDIT.`, opt.Source)
	g.printf(``)
	g.printf(`package %s`, opt.Package)
	g.printf(``)

	g.printf(`// Opcode modes (bits 0..4) and instruction lengths (bits 6..7).`)
	g.printf(`const (`)
	for mode := range spec.Modes() {
		g.printf(`OP_%s = 0x%02X`, mode.Ident(), mode.Code())
	}
	g.printf(`)`)
	g.printf(``)

	toName := exported(opt.Prefix, "to_name")
	g.printf(`// %s converts an opcode number into an index into the name table.`, toName)
	g.printf(`var %s = [%d]byte{`, toName, spec.OpcodeCount)
	for op := range spec.OpcodeCount {
		text, ok := annotation(tab, byte(op))
		if ok {
			g.printf(`%d, // %s`, tab.Opcodes[op], text)
		} else {
			g.printf(`%d,`, tab.Opcodes[op])
		}
	}
	g.printf(`}`)
	g.printf(``)

	names := exported(opt.Prefix, "names")
	chunks := tab.Chunks(opt.Width)
	for n, chunk := range chunks {
		chunks[n] = fmt.Sprintf("%q", chunk)
	}
	g.printf(`// %s lists all opcode names, compacted to save space.`, names)
	g.printf(`const %s = %s`, names, strings.Join(chunks, " +\n"))
	g.printf(``)

	modes := exported(opt.Prefix, "modes")
	g.printf(`// %s holds the modes and instruction lengths of all opcodes.`, modes)
	g.printf(`var %s = [%d]byte{`, modes, spec.OpcodeCount)
	for op := range spec.OpcodeCount {
		text, ok := modeAnnotation(tab, byte(op))
		if ok {
			g.printf(`OP_%s, // %s`, tab.Mode(byte(op)).Ident(), text)
		} else {
			g.printf(`OP_%s,`, tab.Mode(byte(op)).Ident())
		}
	}
	g.printf(`}`)

	buf, err := format.Source(g.Bytes())
	if err != nil {
		err = errors.Wrap(err, "gofmt failed")
		return
	}

	_, err = w.Write(buf)
	err = errors.Wrap(err, "Go source write failed")

	return
}
