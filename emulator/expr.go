package emulator

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/i0nbeam/LC-3/cpu"
)

// EvalAddress evaluates an entry address expression, with the machine
// constants from Defines predeclared. The result must land inside the
// address space.
func (emu *Emulator) EvalAddress(expr string) (address uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range emu.Defines() {
		value, perr := strconv.ParseUint(str, 0, 32)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(value))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 >= cpu.MEMORY_MAX {
		err = ErrExpression(expr)
		return
	}
	address = uint16(st_int64)
	return
}
