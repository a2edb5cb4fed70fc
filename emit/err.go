package emit

import (
	"errors"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	// Binary image errors
	ErrImageMagic   = errors.New(f("not an opcode table image"))
	ErrImageVersion = errors.New(f("unsupported opcode table image version"))
	ErrImageNames   = errors.New(f("opcode table image name blob too short"))
)

// ErrFormat indicates an output format name could not be resolved.
type ErrFormat struct {
	Name string
	Err  error
}

func (err *ErrFormat) Error() string {
	return f("format '%v': %v", err.Name, err.Err)
}

func (err *ErrFormat) Unwrap() error {
	return err.Err
}
