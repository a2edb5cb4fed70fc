// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emit writes encoded opcode tables as C headers, Go source, or
// binary images.
package emit

import (
	"io"
	"iter"
	"strings"

	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/optable/table"
)

// Options controls the layout of emitted tables.
type Options struct {
	Prefix   string // Symbol prefix of the emitted arrays.
	Guard    string // C include guard macro.
	Package  string // Go package name.
	Width    int    // Name blob chunk width.
	Compress bool   // Snappy compress binary images.
	Source   string // Input name quoted in the generated banner.
}

// DefaultOptions returns options reproducing the classic instructions.h.
func DefaultOptions() Options {
	return Options{
		Prefix:  "op6502",
		Guard:   "INSTRUCTIONS_H",
		Package: "optable",
		Width:   63,
		Source:  "instructions.txt",
	}
}

// EmitFunc writes tab to w.
type EmitFunc func(w io.Writer, tab *table.Tables, opt Options) error

// Format is a named output format.
type Format struct {
	Name        string
	Description string
	Emit        EmitFunc
}

var formats = []Format{
	{Name: "c", Description: "C header", Emit: CHeader},
	{Name: "go", Description: "Go source", Emit: GoSource},
	{Name: "bin", Description: "binary image", Emit: Binary},
}

var formatTree = prefixtree.New[*Format]()

func init() {
	for n := range formats {
		formatTree.Add(formats[n].Name, &formats[n])
	}
}

// Lookup finds a format by name or any unambiguous prefix of one.
func Lookup(name string) (format *Format, err error) {
	format, err = formatTree.FindValue(strings.ToLower(name))
	if err != nil {
		format = nil
		err = &ErrFormat{Name: name, Err: err}
	}
	return
}

// Formats returns the known formats.
func Formats() iter.Seq[*Format] {
	return func(yield func(*Format) bool) {
		for n := range formats {
			if !yield(&formats[n]) {
				return
			}
		}
	}
}

// annotation is the to_name table comment of an opcode.
func annotation(tab *table.Tables, opcode byte) (text string, ok bool) {
	root, extra, mode := tab.Annotation(opcode)
	if len(root) == 0 {
		return
	}

	ok = true
	if len(extra) > 0 {
		text = root + extra + " " + mode
	} else {
		text = root + "  " + mode
	}

	return
}

// modeAnnotation is the modes table comment of an opcode.
func modeAnnotation(tab *table.Tables, opcode byte) (text string, ok bool) {
	root, extra, mode := tab.Annotation(opcode)
	if len(root) == 0 {
		return
	}

	text = root + extra + " " + mode
	ok = true

	return
}
