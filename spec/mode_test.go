package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeCodes(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Spelling string
		Mode     Mode
		Code     byte
		Length   int
		Ident    string
	}{
		{"ill", MODE_ILL, 0x40, 1, "ill"},
		{"imp", MODE_IMP, 0x41, 1, "imp"},
		{"imm", MODE_IMM, 0x82, 2, "imm"},
		{"abs", MODE_ABS, 0xC3, 3, "abs"},
		{"abs,X", MODE_ABS_X, 0xC4, 3, "abs_X"},
		{"abs,Y", MODE_ABS_Y, 0xC5, 3, "abs_Y"},
		{"X,ind", MODE_X_IND, 0x86, 2, "X_ind"},
		{"ind,Y", MODE_IND_Y, 0x87, 2, "ind_Y"},
		{"zpg", MODE_ZPG, 0x88, 2, "zpg"},
		{"zpg,X", MODE_ZPG_X, 0x89, 2, "zpg_X"},
		{"zpg,Y", MODE_ZPG_Y, 0x8A, 2, "zpg_Y"},
		{"rel", MODE_REL, 0x8B, 2, "rel"},
		{"ind", MODE_IND, 0xCC, 3, "ind"},
		{"ind,zpg", MODE_IND_ZPG, 0x8D, 2, "ind_zpg"},
		{"ind,abs,X", MODE_IND_ABS_X, 0xCE, 3, "ind_abs_X"},
		{"bit,zpg", MODE_BIT_ZPG, 0x8F, 2, "bit_zpg"},
		{"zpg,rel", MODE_ZPG_REL, 0xD0, 3, "zpg_rel"},
	}

	assert.Equal(ModeCount, len(table))

	for _, entry := range table {
		mode, ok := ParseMode(entry.Spelling)
		assert.True(ok, entry.Spelling)
		assert.Equal(entry.Mode, mode)
		assert.Equal(entry.Spelling, mode.String())
		assert.Equal(entry.Code, mode.Code(), entry.Spelling)
		assert.Equal(entry.Length, mode.Length(), entry.Spelling)
		assert.Equal(entry.Ident, mode.Ident())

		// Bits 0..4 carry the mode identity.
		assert.Equal(int(entry.Mode), int(entry.Code&0x1f))

		back, ok := ModeOfCode(entry.Code)
		assert.True(ok)
		assert.Equal(entry.Mode, back)
	}
}

func TestParseModeCase(t *testing.T) {
	assert := assert.New(t)

	mode, ok := ParseMode("ABS,x")
	assert.True(ok)
	assert.Equal(MODE_ABS_X, mode)

	_, ok = ParseMode("xyz")
	assert.False(ok)

	_, ok = ParseMode("abs_X")
	assert.False(ok)
}

func TestModeOfCodeInvalid(t *testing.T) {
	assert := assert.New(t)

	_, ok := ModeOfCode(0x00)
	assert.False(ok)

	_, ok = ModeOfCode(0x83) // abs identity with the wrong length
	assert.False(ok)

	_, ok = ModeOfCode(0x5f)
	assert.False(ok)

	assert.Equal("Mode(17)", Mode(17).String())
	assert.False(Mode(17).Valid())
	assert.False(Mode(-1).Valid())
}

func TestModes(t *testing.T) {
	assert := assert.New(t)

	var modes []Mode
	for mode := range Modes() {
		modes = append(modes, mode)
	}
	assert.Equal(ModeCount, len(modes))
	assert.Equal(MODE_ILL, modes[0])
	assert.Equal(MODE_ZPG_REL, modes[len(modes)-1])
}
