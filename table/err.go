package table

import (
	"errors"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	// Table consistency errors
	ErrNamesLength  = errors.New(f("name blob length does not match root count"))
	ErrOffset       = errors.New(f("name offset outside name blob"))
	ErrModeCode     = errors.New(f("invalid mode code"))
	ErrUndefined    = errors.New(f("undefined opcode is not illegal"))
	ErrNameMismatch = errors.New(f("name does not match record"))
	ErrModeMismatch = errors.New(f("mode does not match record"))
)

type ErrSentinel string

func (err ErrSentinel) Error() string {
	return f("sentinel '%v' is not 3 characters", string(err))
}

// ErrTable indicates the opcode a table consistency error was found at.
type ErrTable struct {
	Opcode byte
	Err    error
}

func (err ErrTable) Error() string {
	return f("opcode %02X %v", err.Opcode, err.Err)
}

func (err ErrTable) Unwrap() error {
	return err.Err
}
