package io

import (
	"errors"

	"github.com/i0nbeam/LC-3/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNoInput  = errors.New(f("no input attached"))
	ErrNoOutput = errors.New(f("no output attached"))
)
