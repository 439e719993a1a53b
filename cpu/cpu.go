package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/i0nbeam/LC-3/io"
)

// Console is the host character I/O capability.
type Console io.Console

// PC_START is the conventional entry address.
const PC_START = uint16(0x3000)

var _cpu_defines = map[string]string{
	"PC_START":   fmt.Sprintf("0x%x", PC_START),
	"MR_KBSR":    fmt.Sprintf("0x%x", MR_KBSR),
	"MR_KBDR":    fmt.Sprintf("0x%x", MR_KBDR),
	"TRAP_GETC":  fmt.Sprintf("0x%x", int(TRAP_GETC)),
	"TRAP_OUT":   fmt.Sprintf("0x%x", int(TRAP_OUT)),
	"TRAP_PUTS":  fmt.Sprintf("0x%x", int(TRAP_PUTS)),
	"TRAP_IN":    fmt.Sprintf("0x%x", int(TRAP_IN)),
	"TRAP_PUTSP": fmt.Sprintf("0x%x", int(TRAP_PUTSP)),
	"TRAP_HALT":  fmt.Sprintf("0x%x", int(TRAP_HALT)),
}

// Cpu is the machine state: register file, condition flag, memory, and the
// attached console. Each instance is independent; nothing is shared.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg  [8]uint16 // General-purpose registers. r7 holds return addresses.
	PC   uint16    // Program counter.
	Cond Flag      // Condition flag. Exactly one of n/z/p.

	Mem *Memory // Word-addressable store.

	Console Console // Host character I/O.

	Ticks int // Instructions retired since reset.
}

// NewCpu creates a machine with empty memory and the given console.
func NewCpu(console Console) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:     &Memory{},
		Console: console,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the machine state.
// - Clears the registers and memory.
// - Establishes the ZERO flag, so the one-flag invariant holds before the
//   first instruction.
// - Sets the PC to the conventional entry address.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Reg[:])
	clear(cpu.Mem[:])
	cpu.Cond = FL_ZRO
	cpu.PC = PC_START
	cpu.Ticks = 0
}

// String returns the current machine state as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.Reg {
		text += fmt.Sprintf("  r%d: 0x%04x\n", n, val)
	}
	text += fmt.Sprintf("  pc: 0x%04x\n", cpu.PC)
	text += fmt.Sprintf("cond: %v\n", cpu.Cond)

	return
}

// Read returns the word at address. Reading the keyboard status register
// first polls the console and refreshes both device registers; every other
// address is plain storage.
func (cpu *Cpu) Read(address uint16) uint16 {
	if address == MR_KBSR {
		cpu.pollKeyboard()
	}
	return cpu.Mem.Load(address)
}

// Write stores a word at address. No write targets are device mapped.
func (cpu *Cpu) Write(address uint16, value uint16) {
	cpu.Mem.Store(address, value)
}

// pollKeyboard refreshes KBSR/KBDR from the console readiness state. The
// pending byte is consumed into KBDR when the console reports ready.
func (cpu *Cpu) pollKeyboard() {
	if cpu.Console != nil && cpu.Console.Ready() {
		value, err := cpu.Console.ReadByte()
		if err == nil {
			cpu.Mem.Store(MR_KBSR, 1<<15)
			cpu.Mem.Store(MR_KBDR, uint16(value))
			return
		}
	}
	cpu.Mem.Store(MR_KBSR, 0)
}

// updateFlags re-establishes the one-flag invariant from the sign of
// register r.
func (cpu *Cpu) updateFlags(r int) {
	switch {
	case cpu.Reg[r] == 0:
		cpu.Cond = FL_ZRO
	case cpu.Reg[r]>>15 != 0:
		cpu.Cond = FL_NEG
	default:
		cpu.Cond = FL_POS
	}
}

// Step fetches, decodes, and executes a single instruction. done reports a
// clean HALT. A non-nil err is a fault; the machine state is left as of the
// faulting instruction and the host decides how to react.
func (cpu *Cpu) Step() (done bool, err error) {
	pc := cpu.PC
	instr := Instruction(cpu.Read(pc))
	cpu.PC++ // wraps

	if cpu.Verbose {
		log.Printf("%04x: %v", pc, instr)
	}

	done, err = cpu.Execute(instr)
	if err == nil {
		cpu.Ticks++
	}

	return
}

// Execute executes a single fetched instruction against the machine state.
// The PC has already been advanced past the instruction.
func (cpu *Cpu) Execute(instr Instruction) (done bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(instr), err)
		}
	}()

	switch instr.Opcode() {
	case OP_ADD:
		dr, sr1 := instr.DR(), instr.SR1()
		if instr.ImmFlag() {
			cpu.Reg[dr] = cpu.Reg[sr1] + instr.Imm5()
		} else {
			cpu.Reg[dr] = cpu.Reg[sr1] + cpu.Reg[instr.SR2()]
		}
		cpu.updateFlags(dr)
	case OP_AND:
		dr, sr1 := instr.DR(), instr.SR1()
		if instr.ImmFlag() {
			cpu.Reg[dr] = cpu.Reg[sr1] & instr.Imm5()
		} else {
			cpu.Reg[dr] = cpu.Reg[sr1] & cpu.Reg[instr.SR2()]
		}
		cpu.updateFlags(dr)
	case OP_NOT:
		dr := instr.DR()
		cpu.Reg[dr] = ^cpu.Reg[instr.SR1()]
		cpu.updateFlags(dr)
	case OP_BR:
		if instr.CondMask()&cpu.Cond != 0 {
			cpu.PC += instr.PCOffset9()
		}
	case OP_JMP:
		// JMP r7 is the conventional subroutine return.
		cpu.PC = cpu.Reg[instr.BaseR()]
	case OP_JSR:
		cpu.Reg[7] = cpu.PC
		if instr.LongFlag() {
			cpu.PC += instr.PCOffset11()
		} else {
			cpu.PC = cpu.Reg[instr.BaseR()]
		}
	case OP_LD:
		dr := instr.DR()
		cpu.Reg[dr] = cpu.Read(cpu.PC + instr.PCOffset9())
		cpu.updateFlags(dr)
	case OP_LDI:
		dr := instr.DR()
		cpu.Reg[dr] = cpu.Read(cpu.Read(cpu.PC + instr.PCOffset9()))
		cpu.updateFlags(dr)
	case OP_LDR:
		dr := instr.DR()
		cpu.Reg[dr] = cpu.Read(cpu.Reg[instr.BaseR()] + instr.Offset6())
		cpu.updateFlags(dr)
	case OP_LEA:
		dr := instr.DR()
		cpu.Reg[dr] = cpu.PC + instr.PCOffset9()
		cpu.updateFlags(dr)
	case OP_ST:
		cpu.Write(cpu.PC+instr.PCOffset9(), cpu.Reg[instr.SR()])
	case OP_STI:
		cpu.Write(cpu.Read(cpu.PC+instr.PCOffset9()), cpu.Reg[instr.SR()])
	case OP_STR:
		cpu.Write(cpu.Reg[instr.BaseR()]+instr.Offset6(), cpu.Reg[instr.SR()])
	case OP_TRAP:
		cpu.Reg[7] = cpu.PC
		done, err = cpu.trap(instr.Vector())
	case OP_RTI, OP_RES:
		err = ErrOpcodeIllegal
	default:
		err = ErrOpcodeDecode
	}

	return
}
