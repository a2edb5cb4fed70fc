package spec

import (
	"errors"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	// Record errors
	ErrParse           = errors.New(f("malformed opcode"))
	ErrRange           = errors.New(f("opcode out of range"))
	ErrUnknownMode     = errors.New(f("unknown addressing mode"))
	ErrDuplicateOpcode = errors.New(f("duplicate opcode"))
	ErrFieldCount      = errors.New(f("expected opcode;mnemonic;mode"))
	ErrMnemonic        = errors.New(f("invalid mnemonic"))

	// Selection errors
	ErrSelectExpression = errors.New(f("selection is not a boolean expression"))
)

type ErrParseOpcode string

func (err ErrParseOpcode) Error() string {
	return f("'%v' is not a hexadecimal opcode", string(err))
}

func (err ErrParseOpcode) Is(target error) bool {
	return target == ErrParse
}

type ErrOpcodeRange string

func (err ErrOpcodeRange) Error() string {
	return f("opcode '%v' is outside 00..FF", string(err))
}

func (err ErrOpcodeRange) Is(target error) bool {
	return target == ErrRange
}

type ErrModeUnknown string

func (err ErrModeUnknown) Error() string {
	return f("'%v' is not an addressing mode", string(err))
}

func (err ErrModeUnknown) Is(target error) bool {
	return target == ErrUnknownMode
}

type ErrMnemonicInvalid string

func (err ErrMnemonicInvalid) Error() string {
	return f("'%v' is not a mnemonic of at least 3 characters", string(err))
}

func (err ErrMnemonicInvalid) Is(target error) bool {
	return target == ErrMnemonic
}

// ErrOpcodeDuplicate reports an opcode defined twice.
type ErrOpcodeDuplicate struct {
	Opcode      byte
	FirstLine   int
	FirstSource string
}

func (err ErrOpcodeDuplicate) Error() string {
	if len(err.FirstSource) != 0 {
		return f("opcode %02X already defined at %v:%d", err.Opcode, err.FirstSource, err.FirstLine)
	}
	return f("opcode %02X already defined on line %d", err.Opcode, err.FirstLine)
}

func (err ErrOpcodeDuplicate) Is(target error) bool {
	return target == ErrDuplicateOpcode
}

// ErrSelect reports a selection expression that could not be evaluated.
type ErrSelect struct {
	Expr string
	Err  error
}

func (err ErrSelect) Error() string {
	return f("select '%v' %v", err.Expr, err.Err)
}

func (err ErrSelect) Unwrap() error {
	return err.Err
}

func (err ErrSelect) Is(target error) bool {
	return target == ErrSelectExpression
}

// ErrSyntax indicates the input line a record error was found on.
type ErrSyntax struct {
	Source string // Input name, may be empty.
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	if len(err.Source) != 0 {
		return f("%v:%d '%v' %v", err.Source, err.LineNo, err.Line, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
