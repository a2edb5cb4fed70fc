// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"log"
	"os"

	"github.com/beevik/term"
	"github.com/mgutz/ansi"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var errImageMismatch = errors.New(f("binary image does not decode to the encoded tables"))

// diagnostic formats err for stderr, in red when stderr is a terminal.
func diagnostic(err error) string {
	msg := err.Error()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = ansi.Color(msg, "red+b")
	}
	return msg
}

// fatal reports err and exits with status 1.
func fatal(err error) {
	log.Fatal(diagnostic(err))
}
