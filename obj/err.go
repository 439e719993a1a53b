package obj

import (
	"errors"

	"github.com/i0nbeam/LC-3/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageShort = errors.New(f("image missing origin word"))
	ErrImageOdd   = errors.New(f("image truncated mid-word"))
)
