package cpu

import (
	"errors"
)

// inPrompt is emitted by the IN service routine before reading.
const inPrompt = "Enter a character: "

// haltNotice is emitted by the HALT service routine.
const haltNotice = "HALT\n"

// trap dispatches a TRAP service routine. r7 already holds the return
// address. done reports HALT; unknown vectors fault.
func (cpu *Cpu) trap(vector TrapVector) (done bool, err error) {
	if cpu.Console == nil {
		err = ErrNoConsole
		return
	}

	switch vector {
	case TRAP_GETC:
		// Blocking read, not echoed.
		var value byte
		value, err = cpu.Console.ReadByte()
		if err != nil {
			err = errors.Join(ErrConsoleRead, err)
			return
		}
		cpu.Reg[0] = uint16(value)
		cpu.updateFlags(0)
	case TRAP_OUT:
		err = cpu.Console.WriteByte(byte(cpu.Reg[0]))
		if err != nil {
			return
		}
		err = cpu.Console.Flush()
	case TRAP_PUTS:
		// One character per word, zero terminated.
		for address := cpu.Reg[0]; ; address++ {
			word := cpu.Read(address)
			if word == 0 {
				break
			}
			err = cpu.Console.WriteByte(byte(word))
			if err != nil {
				return
			}
		}
		err = cpu.Console.Flush()
	case TRAP_IN:
		err = cpu.writeString(inPrompt)
		if err != nil {
			return
		}
		err = cpu.Console.Flush()
		if err != nil {
			return
		}
		var value byte
		value, err = cpu.Console.ReadByte()
		if err != nil {
			err = errors.Join(ErrConsoleRead, err)
			return
		}
		// Echo before storing.
		err = cpu.Console.WriteByte(value)
		if err != nil {
			return
		}
		err = cpu.Console.Flush()
		if err != nil {
			return
		}
		cpu.Reg[0] = uint16(value)
		cpu.updateFlags(0)
	case TRAP_PUTSP:
		// Two characters packed per word, low byte first, zero terminated.
		for address := cpu.Reg[0]; ; address++ {
			word := cpu.Read(address)
			if word == 0 {
				break
			}
			err = cpu.Console.WriteByte(byte(word))
			if err != nil {
				return
			}
			if high := byte(word >> 8); high != 0 {
				err = cpu.Console.WriteByte(high)
				if err != nil {
					return
				}
			}
		}
		err = cpu.Console.Flush()
	case TRAP_HALT:
		err = cpu.writeString(haltNotice)
		if err != nil {
			return
		}
		err = cpu.Console.Flush()
		if err != nil {
			return
		}
		done = true
	default:
		err = ErrTrap(vector)
	}

	return
}

// writeString writes text to the console a byte at a time.
func (cpu *Cpu) writeString(text string) (err error) {
	for _, value := range []byte(text) {
		err = cpu.Console.WriteByte(value)
		if err != nil {
			err = errors.Join(ErrConsoleWrite, err)
			return
		}
	}

	return
}
