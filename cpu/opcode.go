package cpu

import (
	"fmt"
)

// Opcode is the 4-bit instruction class selector.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_BR   = Opcode(0)  // br
	OP_ADD  = Opcode(1)  // add
	OP_LD   = Opcode(2)  // ld
	OP_ST   = Opcode(3)  // st
	OP_JSR  = Opcode(4)  // jsr
	OP_AND  = Opcode(5)  // and
	OP_LDR  = Opcode(6)  // ldr
	OP_STR  = Opcode(7)  // str
	OP_RTI  = Opcode(8)  // rti
	OP_NOT  = Opcode(9)  // not
	OP_LDI  = Opcode(10) // ldi
	OP_STI  = Opcode(11) // sti
	OP_JMP  = Opcode(12) // jmp
	OP_RES  = Opcode(13) // res
	OP_LEA  = Opcode(14) // lea
	OP_TRAP = Opcode(15) // trap
)

// Flag is a condition flag value. The machine keeps exactly one flag set
// at all times.
type Flag uint16

//go:generate go tool stringer -linecomment -type=Flag
const (
	FL_POS = Flag(1 << 0) // p
	FL_ZRO = Flag(1 << 1) // z
	FL_NEG = Flag(1 << 2) // n
)

// TrapVector is the 8-bit service routine selector of a TRAP instruction.
type TrapVector int

//go:generate go tool stringer -linecomment -type=TrapVector
const (
	TRAP_GETC  = TrapVector(0x20) // getc
	TRAP_OUT   = TrapVector(0x21) // out
	TRAP_PUTS  = TrapVector(0x22) // puts
	TRAP_IN    = TrapVector(0x23) // in
	TRAP_PUTSP = TrapVector(0x24) // putsp
	TRAP_HALT  = TrapVector(0x25) // halt
)

// Instruction is a single fetched memory word, decoded positionally.
// The top 4 bits select the opcode; the remaining fields depend on it.
type Instruction uint16

// Opcode returns the instruction class from bits 15-12.
func (in Instruction) Opcode() Opcode {
	return Opcode(in >> 12)
}

// DR returns the destination register selector from bits 11-9.
func (in Instruction) DR() int {
	return int((in >> 9) & 0x7)
}

// SR returns the source register selector of a store, bits 11-9.
func (in Instruction) SR() int {
	return int((in >> 9) & 0x7)
}

// SR1 returns the first operand register selector from bits 8-6.
func (in Instruction) SR1() int {
	return int((in >> 6) & 0x7)
}

// SR2 returns the second operand register selector from bits 2-0.
func (in Instruction) SR2() int {
	return int(in & 0x7)
}

// BaseR returns the base register selector from bits 8-6.
func (in Instruction) BaseR() int {
	return int((in >> 6) & 0x7)
}

// ImmFlag reports whether bit 5 selects immediate mode.
func (in Instruction) ImmFlag() bool {
	return (in>>5)&1 != 0
}

// LongFlag reports whether bit 11 selects the PC-relative JSR form.
func (in Instruction) LongFlag() bool {
	return (in>>11)&1 != 0
}

// Imm5 returns the sign-extended 5-bit immediate.
func (in Instruction) Imm5() uint16 {
	return SignExtend(uint16(in)&0x1f, 5)
}

// Offset6 returns the sign-extended 6-bit base-relative offset.
func (in Instruction) Offset6() uint16 {
	return SignExtend(uint16(in)&0x3f, 6)
}

// PCOffset9 returns the sign-extended 9-bit PC-relative offset.
func (in Instruction) PCOffset9() uint16 {
	return SignExtend(uint16(in)&0x1ff, 9)
}

// PCOffset11 returns the sign-extended 11-bit PC-relative offset.
func (in Instruction) PCOffset11() uint16 {
	return SignExtend(uint16(in)&0x7ff, 11)
}

// CondMask returns the n/z/p condition mask of a BR from bits 11-9.
func (in Instruction) CondMask() Flag {
	return Flag((in >> 9) & 0x7)
}

// Vector returns the trap vector from the low byte.
func (in Instruction) Vector() TrapVector {
	return TrapVector(in & 0xff)
}

// MakeBr creates a conditional branch with a 9-bit PC-relative offset.
func MakeBr(mask Flag, pcoffset int) Instruction {
	return Instruction((uint16(OP_BR) << 12) | (uint16(mask) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeAdd creates a register-mode ADD.
func MakeAdd(dr, sr1, sr2 int) Instruction {
	return Instruction((uint16(OP_ADD) << 12) | (uint16(dr) << 9) | (uint16(sr1) << 6) | (uint16(sr2) & 0x7))
}

// MakeAddImm creates an immediate-mode ADD with a 5-bit immediate.
func MakeAddImm(dr, sr1, imm int) Instruction {
	return Instruction((uint16(OP_ADD) << 12) | (uint16(dr) << 9) | (uint16(sr1) << 6) | (1 << 5) | (uint16(imm) & 0x1f))
}

// MakeAnd creates a register-mode AND.
func MakeAnd(dr, sr1, sr2 int) Instruction {
	return Instruction((uint16(OP_AND) << 12) | (uint16(dr) << 9) | (uint16(sr1) << 6) | (uint16(sr2) & 0x7))
}

// MakeAndImm creates an immediate-mode AND with a 5-bit immediate.
func MakeAndImm(dr, sr1, imm int) Instruction {
	return Instruction((uint16(OP_AND) << 12) | (uint16(dr) << 9) | (uint16(sr1) << 6) | (1 << 5) | (uint16(imm) & 0x1f))
}

// MakeNot creates a bitwise complement.
func MakeNot(dr, sr int) Instruction {
	return Instruction((uint16(OP_NOT) << 12) | (uint16(dr) << 9) | (uint16(sr) << 6) | 0x3f)
}

// MakeLd creates a PC-relative load.
func MakeLd(dr, pcoffset int) Instruction {
	return Instruction((uint16(OP_LD) << 12) | (uint16(dr) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeLdi creates an indirect load.
func MakeLdi(dr, pcoffset int) Instruction {
	return Instruction((uint16(OP_LDI) << 12) | (uint16(dr) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeLdr creates a base-relative load with a 6-bit offset.
func MakeLdr(dr, baser, offset int) Instruction {
	return Instruction((uint16(OP_LDR) << 12) | (uint16(dr) << 9) | (uint16(baser) << 6) | (uint16(offset) & 0x3f))
}

// MakeLea creates a load of the effective PC-relative address.
func MakeLea(dr, pcoffset int) Instruction {
	return Instruction((uint16(OP_LEA) << 12) | (uint16(dr) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeSt creates a PC-relative store.
func MakeSt(sr, pcoffset int) Instruction {
	return Instruction((uint16(OP_ST) << 12) | (uint16(sr) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeSti creates an indirect store.
func MakeSti(sr, pcoffset int) Instruction {
	return Instruction((uint16(OP_STI) << 12) | (uint16(sr) << 9) | (uint16(pcoffset) & 0x1ff))
}

// MakeStr creates a base-relative store with a 6-bit offset.
func MakeStr(sr, baser, offset int) Instruction {
	return Instruction((uint16(OP_STR) << 12) | (uint16(sr) << 9) | (uint16(baser) << 6) | (uint16(offset) & 0x3f))
}

// MakeJmp creates an unconditional jump through a base register.
func MakeJmp(baser int) Instruction {
	return Instruction((uint16(OP_JMP) << 12) | (uint16(baser) << 6))
}

// MakeRet creates the conventional subroutine return, JMP r7.
func MakeRet() Instruction {
	return MakeJmp(7)
}

// MakeJsr creates a PC-relative subroutine call with an 11-bit offset.
func MakeJsr(pcoffset int) Instruction {
	return Instruction((uint16(OP_JSR) << 12) | (1 << 11) | (uint16(pcoffset) & 0x7ff))
}

// MakeJsrr creates a subroutine call through a base register.
func MakeJsrr(baser int) Instruction {
	return Instruction((uint16(OP_JSR) << 12) | (uint16(baser) << 6))
}

// MakeTrap creates a service routine call.
func MakeTrap(vector TrapVector) Instruction {
	return Instruction((uint16(OP_TRAP) << 12) | (uint16(vector) & 0xff))
}

// String returns the assembly language representation of this instruction.
func (in Instruction) String() (out string) {
	op := in.Opcode()

	switch op {
	case OP_ADD, OP_AND:
		if in.ImmFlag() {
			out = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.SR1(), int16(in.Imm5()))
		} else {
			out = fmt.Sprintf("%v r%d, r%d, r%d", op, in.DR(), in.SR1(), in.SR2())
		}
	case OP_NOT:
		out = fmt.Sprintf("%v r%d, r%d", op, in.DR(), in.SR1())
	case OP_BR:
		mask := in.CondMask()
		var cond string
		if mask&FL_NEG != 0 {
			cond += "n"
		}
		if mask&FL_ZRO != 0 {
			cond += "z"
		}
		if mask&FL_POS != 0 {
			cond += "p"
		}
		out = fmt.Sprintf("%v%v #%d", op, cond, int16(in.PCOffset9()))
	case OP_LD, OP_LDI, OP_LEA:
		out = fmt.Sprintf("%v r%d, #%d", op, in.DR(), int16(in.PCOffset9()))
	case OP_ST, OP_STI:
		out = fmt.Sprintf("%v r%d, #%d", op, in.SR(), int16(in.PCOffset9()))
	case OP_LDR:
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, in.DR(), in.BaseR(), int16(in.Offset6()))
	case OP_STR:
		out = fmt.Sprintf("%v r%d, r%d, #%d", op, in.SR(), in.BaseR(), int16(in.Offset6()))
	case OP_JMP:
		out = fmt.Sprintf("%v r%d", op, in.BaseR())
	case OP_JSR:
		if in.LongFlag() {
			out = fmt.Sprintf("%v #%d", op, int16(in.PCOffset11()))
		} else {
			out = fmt.Sprintf("jsrr r%d", in.BaseR())
		}
	case OP_TRAP:
		out = fmt.Sprintf("%v %v", op, in.Vector())
	default:
		out = op.String()
	}

	return
}
