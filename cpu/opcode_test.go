package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionDecode(t *testing.T) {
	assert := assert.New(t)

	add := MakeAdd(3, 1, 2)
	assert.Equal(OP_ADD, add.Opcode())
	assert.Equal(3, add.DR())
	assert.Equal(1, add.SR1())
	assert.Equal(2, add.SR2())
	assert.False(add.ImmFlag())

	addi := MakeAddImm(3, 1, -16)
	assert.True(addi.ImmFlag())
	assert.Equal(uint16(0xfff0), addi.Imm5())

	br := MakeBr(FL_NEG|FL_ZRO, -5)
	assert.Equal(OP_BR, br.Opcode())
	assert.Equal(FL_NEG|FL_ZRO, br.CondMask())
	assert.Equal(uint16(0xfffb), br.PCOffset9())

	ldr := MakeLdr(4, 6, -1)
	assert.Equal(OP_LDR, ldr.Opcode())
	assert.Equal(4, ldr.DR())
	assert.Equal(6, ldr.BaseR())
	assert.Equal(uint16(0xffff), ldr.Offset6())

	jsr := MakeJsr(-1024)
	assert.Equal(OP_JSR, jsr.Opcode())
	assert.True(jsr.LongFlag())
	assert.Equal(uint16(0xfc00), jsr.PCOffset11())

	jsrr := MakeJsrr(5)
	assert.False(jsrr.LongFlag())
	assert.Equal(5, jsrr.BaseR())

	trap := MakeTrap(TRAP_PUTS)
	assert.Equal(OP_TRAP, trap.Opcode())
	assert.Equal(TRAP_PUTS, trap.Vector())

	ret := MakeRet()
	assert.Equal(OP_JMP, ret.Opcode())
	assert.Equal(7, ret.BaseR())
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add r0, r1, #-1", MakeAddImm(0, 1, -1).String())
	assert.Equal("add r0, r1, r2", MakeAdd(0, 1, 2).String())
	assert.Equal("brzp #-2", MakeBr(FL_ZRO|FL_POS, -2).String())
	assert.Equal("jmp r7", MakeRet().String())
	assert.Equal("jsrr r5", MakeJsrr(5).String())
	assert.Equal("trap halt", MakeTrap(TRAP_HALT).String())
	assert.Equal("rti", Instruction(uint16(OP_RTI)<<12).String())
}
