// Package emulator drives an LC-3 machine: it loads program images, wires
// the console, and runs the fetch-decode-execute loop until HALT or a
// fault.
package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/i0nbeam/LC-3/cpu"
	"github.com/i0nbeam/LC-3/internal"
	"github.com/i0nbeam/LC-3/io"
	"github.com/i0nbeam/LC-3/obj"
)

var _emulator_defines = map[string]string{
	"MEMORY_MAX": fmt.Sprintf("%v", cpu.MEMORY_MAX),
}

// Emulator state. Machine + loaded images + console wiring.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the machine simulation.

	Tape io.Tape // Default console when none else is attached.

	Images []*obj.Image // Images placed into memory at Reset, in order.
	Entry  uint16       // Address execution starts from.
}

// NewEmulator creates a new emulator with the Tape console attached.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Entry: cpu.PC_START,
	}
	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Defines returns an iterator over all of the machine constants.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// SetConsole attaches a console, replacing the default Tape.
func (emu *Emulator) SetConsole(console cpu.Console) {
	emu.Cpu.Console = console
}

// Load appends an image to be placed into memory at Reset.
func (emu *Emulator) Load(img *obj.Image) {
	emu.Images = append(emu.Images, img)
}

// LoadFile reads an image file and appends it.
func (emu *Emulator) LoadFile(path string) (err error) {
	img, err := obj.ReadFile(path)
	if err != nil {
		return
	}
	emu.Load(img)

	return
}

// Reset re-establishes the initial machine state: cleared registers, the
// ZERO flag, every loaded image in memory, and the PC at the entry address.
// Overlapping images are last-write-wins.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Images) == 0 {
		err = ErrNoImage
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	for _, img := range emu.Images {
		emu.Cpu.Mem.LoadImage(img.Origin, img.Words)
	}
	emu.Cpu.PC = emu.Entry

	return
}

// Tick executes one instruction. done reports HALT; a fault is wrapped
// with the address of the faulting instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Cpu.PC

	done, err = emu.Cpu.Step()
	if err != nil {
		err = &ErrRuntime{PC: pc, Err: err}
	}

	return
}

// Run executes instructions until HALT or a fault.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
