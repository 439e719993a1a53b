package emulator

import (
	"errors"

	"github.com/i0nbeam/LC-3/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrNoImage = errors.New(f("no image loaded"))
)

// ErrRuntime records the address of a runtime fault.
type ErrRuntime struct {
	PC  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpression is an invalid entry address expression.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid address expression", string(err))
}
