package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapGetc(t *testing.T) {
	assert := assert.New(t)

	c, out := newTestCpu("x")

	done, err := c.Execute(MakeTrap(TRAP_GETC))
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint16('x'), c.Reg[0])
	assert.Equal(FL_POS, c.Cond)
	// Not echoed.
	assert.Empty(out.String())
}

func TestTrapOut(t *testing.T) {
	assert := assert.New(t)

	c, out := newTestCpu("")
	c.Reg[0] = uint16('Q')

	done, err := c.Execute(MakeTrap(TRAP_OUT))
	assert.NoError(err)
	assert.False(done)
	assert.Equal("Q", out.String())
}

func TestTrapPuts(t *testing.T) {
	assert := assert.New(t)

	c, out := newTestCpu("")
	c.Mem.Store(0x5000, uint16('H'))
	c.Mem.Store(0x5001, uint16('I'))
	c.Mem.Store(0x5002, 0)
	c.Reg[0] = 0x5000

	_, err := c.Execute(MakeTrap(TRAP_PUTS))
	assert.NoError(err)
	assert.Equal("HI", out.String())
}

func TestTrapPutsp(t *testing.T) {
	assert := assert.New(t)

	// "HI" packed two characters per word, low byte first.
	c, out := newTestCpu("")
	c.Mem.Store(0x5000, uint16('H')|uint16('I')<<8)
	c.Mem.Store(0x5001, 0)
	c.Reg[0] = 0x5000

	_, err := c.Execute(MakeTrap(TRAP_PUTSP))
	assert.NoError(err)
	assert.Equal("HI", out.String())

	// Odd length: the final word carries one character in its low byte.
	c, out = newTestCpu("")
	c.Mem.Store(0x5000, uint16('H')|uint16('I')<<8)
	c.Mem.Store(0x5001, uint16('!'))
	c.Mem.Store(0x5002, 0)
	c.Reg[0] = 0x5000

	_, err = c.Execute(MakeTrap(TRAP_PUTSP))
	assert.NoError(err)
	assert.Equal("HI!", out.String())
}

func TestTrapIn(t *testing.T) {
	assert := assert.New(t)

	c, out := newTestCpu("y")

	done, err := c.Execute(MakeTrap(TRAP_IN))
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint16('y'), c.Reg[0])
	assert.Equal(FL_POS, c.Cond)
	// Prompt followed by the echo.
	assert.Equal(inPrompt+"y", out.String())
}

func TestTrapHalt(t *testing.T) {
	assert := assert.New(t)

	c, out := newTestCpu("")

	done, err := c.Execute(MakeTrap(TRAP_HALT))
	assert.NoError(err)
	assert.True(done)
	assert.Equal(haltNotice, out.String())
}

func TestTrapUnknown(t *testing.T) {
	assert := assert.New(t)

	c, _ := newTestCpu("")

	done, err := c.Execute(MakeTrap(TrapVector(0x33)))
	assert.False(done)
	assert.ErrorIs(err, ErrTrap(0))
	assert.ErrorIs(err, ErrInstruction(0))
}

func TestTrapSavesReturn(t *testing.T) {
	assert := assert.New(t)

	c, _ := newTestCpu("")
	c.Reg[0] = uint16('*')
	loadProgram(c, MakeTrap(TRAP_OUT))

	_, err := c.Step()
	assert.NoError(err)
	assert.Equal(PC_START+1, c.Reg[7])
}

func TestTrapNoConsole(t *testing.T) {
	assert := assert.New(t)

	c := NewCpu(nil)

	_, err := c.Execute(MakeTrap(TRAP_GETC))
	assert.ErrorIs(err, ErrNoConsole)
}
