package cpu

import (
	"errors"

	"github.com/i0nbeam/LC-3/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrNoConsole    = errors.New(f("no console attached"))
	ErrConsoleRead  = errors.New(f("console read"))
	ErrConsoleWrite = errors.New(f("console write"))

	// Instruction decode errors
	ErrOpcodeIllegal = errors.New(f("illegal opcode"))
	ErrOpcodeDecode  = errors.New(f("decode"))
)

// ErrInstruction records the instruction word a fault occurred on.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction 0x%04x %v", uint16(ei), Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrTrap is an unknown trap vector fault.
type ErrTrap TrapVector

func (et ErrTrap) Error() string {
	return f("unknown trap vector 0x%02x", int(et))
}

func (et ErrTrap) Is(err error) (ok bool) {
	_, ok = err.(ErrTrap)
	return
}
