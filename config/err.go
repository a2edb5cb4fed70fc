package config

import (
	"github.com/ezrec/optable/translate"
)

var f = translate.From

// ErrUnknownKey indicates a settings file key that names no setting.
type ErrUnknownKey string

func (err ErrUnknownKey) Error() string {
	return f("unknown setting '%v'", string(err))
}
