// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parser reads instruction definitions of the form "opcode;mnemonic;mode",
// one per line.
type Parser struct {
	Verbose bool   // If set, verbosely logs each input line.
	Source  string // Input name recorded in records and errors.
}

// Parse parses an input stream with a default Parser.
func Parse(input io.Reader) (s *Spec, err error) {
	parser := &Parser{}
	return parser.Parse(input)
}

// ParseLines parses a list of input lines with a default Parser.
func ParseLines(lines ...string) (s *Spec, err error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")))
}

// Parse parses an input stream into a Spec. Parsing stops at the first
// bad line; the error is an ErrSyntax wrapping the reason.
func (p *Parser) Parse(input io.Reader) (s *Spec, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			s = nil
			err = &ErrSyntax{Source: p.Source, LineNo: lineno, Line: line, Err: err}
		}
	}()

	out := &Spec{}

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		text, _, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var rec Record
		rec, err = parseRecord(text)
		if err != nil {
			return
		}
		rec.Source = p.Source
		rec.LineNo = lineno

		err = out.Add(rec)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	s = out

	return
}

// parseRecord parses the three fields of a definition.
func parseRecord(text string) (rec Record, err error) {
	fields := strings.Split(text, ";")
	if len(fields) != 3 {
		err = ErrFieldCount
		return
	}
	for n := range fields {
		fields[n] = strings.TrimSpace(fields[n])
	}

	rec.Opcode, err = parseOpcode(fields[0])
	if err != nil {
		return
	}

	rec.Mnemonic, rec.Extra, err = splitMnemonic(fields[1])
	if err != nil {
		return
	}

	mode, ok := ParseMode(fields[2])
	if !ok {
		err = ErrModeUnknown(fields[2])
		return
	}
	rec.Mode = mode

	return
}

// parseOpcode parses a hexadecimal opcode. A "0x" or "$" prefix is allowed.
// Negative values are out of range, and an explicit '+' sign is rejected.
func parseOpcode(word string) (opcode byte, err error) {
	digits := word
	switch {
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	case strings.HasPrefix(digits, "$"):
		digits = digits[1:]
	}

	if strings.HasPrefix(digits, "+") {
		err = ErrParseOpcode(word)
		return
	}

	v64, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOpcodeRange(word)
		} else {
			err = ErrParseOpcode(word)
		}
		return
	}

	if v64 < 0 || v64 > 0xff {
		err = ErrOpcodeRange(word)
		return
	}

	opcode = byte(v64)

	return
}

// splitMnemonic lowercases a mnemonic and splits it into its name root and
// the extra text following the root.
func splitMnemonic(word string) (root, extra string, err error) {
	if len(word) < RootLength {
		err = ErrMnemonicInvalid(word)
		return
	}

	for n, c := range word {
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !letter && (n == 0 || !digit) {
			err = ErrMnemonicInvalid(word)
			return
		}
	}

	word = strings.ToLower(word)
	root = word[:RootLength]
	extra = word[RootLength:]

	return
}
