// Package spec parses the textual instruction set description consumed by
// the table compiler.
//
// Each non-empty line holds one instruction as three semicolon separated
// fields: the hexadecimal opcode, the mnemonic, and the addressing mode
// spelling (for example "4C;JMP;abs" or "01;ORA;X,ind"). Text following a
// '#' is ignored. Mnemonics are normalised to lowercase and split into a
// 3 character name root and the remaining extra text, so that variants
// such as "rmb0".."rmb7" share the root "rmb".
package spec
