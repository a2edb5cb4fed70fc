// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/optable/config"
	"github.com/ezrec/optable/emit"
	"github.com/ezrec/optable/spec"
	"github.com/ezrec/optable/table"
	"github.com/ezrec/optable/translate"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")

	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal(err)
	}
}

// run compiles the inputs named by args, writing the tables to the -o
// file or stdout. It stops at the first error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	var output string
	var configPath string
	var dump bool
	var verify bool

	fs := flag.NewFlagSet("optable", flag.ContinueOnError)
	fs.SetOutput(stderr)

	settings := config.Default()
	settings.Register(fs)

	fs.StringVar(&output, "o", "-", "Output file")
	fs.StringVar(&configPath, "config", "", "Settings file (default: "+config.FileName+" in the config folders)")
	fs.BoolVar(&dump, "dump", false, "Dump the encoded tables to stderr")
	fs.BoolVar(&verify, "verify", false, "Verify the encoded tables before writing")

	fs.Usage = func() {
		translate.Fprintf(fs.Output(), "usage: %v [flags] [input ...]\n", fs.Name())
		translate.Fprintf(fs.Output(), "Compiles opcode;mnemonic;mode lines into 6502 opcode tables.\n")
		fs.PrintDefaults()
	}

	err = fs.Parse(args)
	if err != nil {
		return
	}

	logger := log.New(stderr, fs.Name()+": ", 0)

	if len(configPath) == 0 {
		configPath, _ = config.Find()
	}
	if len(configPath) != 0 {
		file := config.Default()
		err = config.LoadFile(configPath, file)
		if err != nil {
			return
		}
		settings.Merge(fs, file)
		if settings.Verbose {
			logger.Printf("settings from %v", configPath)
		}
	}

	if settings.Verbose {
		settings.Display(stderr)
	}

	format, err := emit.Lookup(settings.Format)
	if err != nil {
		return
	}

	opt := emit.DefaultOptions()
	opt.Prefix = settings.Prefix
	opt.Guard = settings.Guard
	opt.Package = settings.Package
	opt.Width = settings.Width
	opt.Compress = settings.Compress

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	} else if inputs[0] != "-" {
		opt.Source = filepath.Base(inputs[0])
	}

	specs := make([]*spec.Spec, len(inputs))
	for n, name := range inputs {
		specs[n], err = parseInput(name, stdin, settings.Verbose)
		if err != nil {
			return
		}
	}

	merged, err := spec.Merge(specs...)
	if err != nil {
		return
	}

	selected, err := merged.Select(settings.Select)
	if err != nil {
		return
	}

	tab, err := table.Build(selected, table.Options{Sentinel: settings.Sentinel})
	if err != nil {
		return
	}

	if settings.Verbose {
		logger.Printf("%v", tab)
	}

	if dump {
		dumpTables(stderr, tab)
	}

	var buf bytes.Buffer
	err = format.Emit(&buf, tab, opt)
	if err != nil {
		return
	}

	if verify {
		err = verifyOutput(format, tab, buf.Bytes())
		if err != nil {
			return
		}
	}

	if output == "-" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(output, buf.Bytes(), 0644)
	}

	return
}

// dumpTables writes every field of tab, bypassing its String summary.
func dumpTables(w io.Writer, tab *table.Tables) {
	dumper := &spew.ConfigState{Indent: " ", DisableMethods: true, DisablePointerAddresses: true}
	dumper.Fdump(w, tab)
}

// parseInput parses the named input file, or stdin for "-".
func parseInput(name string, stdin io.Reader, verbose bool) (s *spec.Spec, err error) {
	parser := &spec.Parser{Verbose: verbose, Source: name}

	if name == "-" {
		parser.Source = "stdin"
		return parser.Parse(stdin)
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return parser.Parse(inf)
}

// verifyOutput checks the table invariants, and for binary images that
// the written image decodes back to the same tables.
func verifyOutput(format *emit.Format, tab *table.Tables, data []byte) (err error) {
	err = tab.Verify()
	if err != nil {
		return
	}

	if format.Name != "bin" {
		return
	}

	image, err := emit.ReadBinary(bytes.NewReader(data))
	if err != nil {
		return
	}

	if image.Opcodes != tab.Opcodes || image.Modes != tab.Modes || !bytes.Equal(image.Names, tab.Names) {
		err = errImageMismatch
		return
	}

	return
}
