package names

import (
	"errors"

	"github.com/ezrec/optable/translate"
)

var f = translate.From

var (
	ErrTooManyRoots = errors.New(f("too many distinct mnemonic roots for byte offsets"))
)
