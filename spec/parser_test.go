package spec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	s, err := ParseLines(
		"00;BRK;imp",
		"01;ORA;X,ind",
		"4C;JMP;abs",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Record{
		{LineNo: 1, Opcode: 0x00, Mnemonic: "brk", Mode: MODE_IMP},
		{LineNo: 2, Opcode: 0x01, Mnemonic: "ora", Mode: MODE_X_IND},
		{LineNo: 3, Opcode: 0x4c, Mnemonic: "jmp", Mode: MODE_ABS},
	}
	assert.Equal(expected, s.Records)
	assert.Equal(3, s.Len())

	rec, ok := s.Lookup(0x4c)
	assert.True(ok)
	assert.Equal("jmp", rec.Mnemonic)

	_, ok = s.Lookup(0x02)
	assert.False(ok)
}

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	s, err := Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, s.Len())
}

func TestParseExtra(t *testing.T) {
	assert := assert.New(t)

	s, err := ParseLines(
		"07;RMB0;bit,zpg",
		"17;rmb1;bit,zpg",
		"61;ADC;X,ind",
		"62;adcx;imm",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	table := []struct {
		Opcode   byte
		Mnemonic string
		Extra    string
		Name     string
	}{
		{0x07, "rmb", "0", "rmb0"},
		{0x17, "rmb", "1", "rmb1"},
		{0x61, "adc", "", "adc"},
		{0x62, "adc", "x", "adcx"},
	}

	for _, entry := range table {
		rec, ok := s.Lookup(entry.Opcode)
		assert.True(ok, "opcode %02X", entry.Opcode)
		if !ok {
			continue
		}
		assert.Equal(entry.Mnemonic, rec.Mnemonic)
		assert.Equal(entry.Extra, rec.Extra)
		assert.Equal(entry.Name, rec.Name())
	}
}

func TestParseWhitespaceAndComments(t *testing.T) {
	assert := assert.New(t)

	s, err := ParseLines(
		"# 65C02 subset",
		"",
		"  0x00 ; BRK ; imp  ",
		"$4C;JMP;ABS # jump",
		"\t",
		"6c;jmp;IND",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(3, s.Len())
	assert.Equal(Record{LineNo: 3, Opcode: 0x00, Mnemonic: "brk", Mode: MODE_IMP}, s.Records[0])
	assert.Equal(Record{LineNo: 4, Opcode: 0x4c, Mnemonic: "jmp", Mode: MODE_ABS}, s.Records[1])
	assert.Equal(Record{LineNo: 6, Opcode: 0x6c, Mnemonic: "jmp", Mode: MODE_IND}, s.Records[2])
}

func TestParseErrors(t *testing.T) {
	table := []struct {
		Name   string
		Lines  []string
		Err    error
		LineNo int
	}{
		{"bad hex", []string{"G1;nop;imp"}, ErrParse, 1},
		{"empty opcode", []string{";nop;imp"}, ErrParse, 1},
		{"negative", []string{"-1;nop;imp"}, ErrRange, 1},
		{"negative prefixed", []string{"$-4C;nop;imp"}, ErrRange, 1},
		{"negative overflow", []string{"-FFFFFFFFFFFFFFFFFF;nop;imp"}, ErrRange, 1},
		{"plus sign", []string{"+4C;jmp;abs"}, ErrParse, 1},
		{"bare sign", []string{"-;nop;imp"}, ErrParse, 1},
		{"range", []string{"00;brk;imp", "100;nop;imp"}, ErrRange, 2},
		{"overflow", []string{"FFFFFFFFFFFFFFFFFF;nop;imp"}, ErrRange, 1},
		{"duplicate", []string{"4C;JMP;abs", "EA;NOP;imp", "4C;JMP;abs"}, ErrDuplicateOpcode, 3},
		{"mode", []string{"EA;NOP;xyz"}, ErrUnknownMode, 1},
		{"fields", []string{"EA;NOP"}, ErrFieldCount, 1},
		{"extra fields", []string{"EA;NOP;imp;2"}, ErrFieldCount, 1},
		{"short mnemonic", []string{"EA;NO;imp"}, ErrMnemonic, 1},
		{"digit mnemonic", []string{"EA;0AB;imp"}, ErrMnemonic, 1},
		{"punct mnemonic", []string{"EA;NO-P;imp"}, ErrMnemonic, 1},
	}

	for _, entry := range table {
		t.Run(entry.Name, func(t *testing.T) {
			assert := assert.New(t)

			s, err := ParseLines(entry.Lines...)
			assert.Nil(s)
			assert.ErrorIs(err, entry.Err)

			var syntax *ErrSyntax
			if assert.True(errors.As(err, &syntax)) {
				assert.Equal(entry.LineNo, syntax.LineNo)
				assert.Equal(entry.Lines[entry.LineNo-1], syntax.Line)
			}
		})
	}
}

func TestParseDuplicateFirstLine(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseLines("4C;JMP;abs", "4c;jmp;abs")

	var dup ErrOpcodeDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal(byte(0x4c), dup.Opcode)
	assert.Equal(1, dup.FirstLine)
}

func TestRecordString(t *testing.T) {
	assert := assert.New(t)

	rec := Record{Opcode: 0x0f, Mnemonic: "bbr", Extra: "0", Mode: MODE_ZPG_REL}
	assert.Equal("0F;BBR0;zpg,rel", rec.String())

	s, err := ParseLines(rec.String())
	assert.NoError(err)
	if err == nil {
		assert.Equal(rec.Name(), s.Records[0].Name())
		assert.Equal(rec.Mode, s.Records[0].Mode)
	}
}
