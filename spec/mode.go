// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"iter"
	"strings"
)

// Mode is an addressing mode. Its value is the mode identity stored in
// bits 0..4 of a packed mode code.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_ILL       = Mode(0)  // ill
	MODE_IMP       = Mode(1)  // imp
	MODE_IMM       = Mode(2)  // imm
	MODE_ABS       = Mode(3)  // abs
	MODE_ABS_X     = Mode(4)  // abs,X
	MODE_ABS_Y     = Mode(5)  // abs,Y
	MODE_X_IND     = Mode(6)  // X,ind
	MODE_IND_Y     = Mode(7)  // ind,Y
	MODE_ZPG       = Mode(8)  // zpg
	MODE_ZPG_X     = Mode(9)  // zpg,X
	MODE_ZPG_Y     = Mode(10) // zpg,Y
	MODE_REL       = Mode(11) // rel
	MODE_IND       = Mode(12) // ind
	MODE_IND_ZPG   = Mode(13) // ind,zpg
	MODE_IND_ABS_X = Mode(14) // ind,abs,X
	MODE_BIT_ZPG   = Mode(15) // bit,zpg
	MODE_ZPG_REL   = Mode(16) // zpg,rel
)

// ModeCount is the number of addressing modes.
const ModeCount = 17

// modeCode holds the packed mode (bits 0..4) and length (bits 6..7) byte
// of each addressing mode.
var modeCode = [ModeCount]byte{
	MODE_ILL:       0x40,
	MODE_IMP:       0x41,
	MODE_IMM:       0x82,
	MODE_ABS:       0xC3,
	MODE_ABS_X:     0xC4,
	MODE_ABS_Y:     0xC5,
	MODE_X_IND:     0x86,
	MODE_IND_Y:     0x87,
	MODE_ZPG:       0x88,
	MODE_ZPG_X:     0x89,
	MODE_ZPG_Y:     0x8A,
	MODE_REL:       0x8B,
	MODE_IND:       0xCC,
	MODE_IND_ZPG:   0x8D,
	MODE_IND_ABS_X: 0xCE,
	MODE_BIT_ZPG:   0x8F,
	MODE_ZPG_REL:   0xD0,
}

// modeMap maps lowercased mode spellings to modes.
var modeMap map[string]Mode

func init() {
	modeMap = make(map[string]Mode, ModeCount)
	for mode := range Modes() {
		modeMap[strings.ToLower(mode.String())] = mode
	}
}

// Modes returns every addressing mode, in code order.
func Modes() iter.Seq[Mode] {
	return func(yield func(Mode) bool) {
		for n := range ModeCount {
			if !yield(Mode(n)) {
				return
			}
		}
	}
}

// ParseMode returns the mode for an input spelling such as "abs,X".
// Spellings are matched without regard to case.
func ParseMode(spelling string) (mode Mode, ok bool) {
	mode, ok = modeMap[strings.ToLower(spelling)]
	return
}

// ModeOfCode returns the mode packed into a mode code.
func ModeOfCode(code byte) (mode Mode, ok bool) {
	mode = Mode(code & 0x1f)
	ok = mode.Valid() && modeCode[mode] == code
	return
}

// Valid returns true if the mode is one of the known addressing modes.
func (mode Mode) Valid() bool {
	return mode >= 0 && mode < ModeCount
}

// Code returns the packed mode and length byte.
func (mode Mode) Code() byte {
	return modeCode[mode]
}

// Length returns the instruction length category in bytes.
func (mode Mode) Length() int {
	return int(mode.Code() >> 6)
}

// Ident returns the mode spelling usable as an identifier fragment.
func (mode Mode) Ident() string {
	return strings.ReplaceAll(mode.String(), ",", "_")
}
