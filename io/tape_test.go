package io

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeReadWrite(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("ab"),
		Output: output,
	}

	assert.True(tape.Ready())

	value, err := tape.ReadByte()
	assert.NoError(err)
	assert.Equal(byte('a'), value)

	assert.NoError(tape.WriteByte('X'))
	// Output is buffered until flushed.
	assert.Empty(output.String())
	assert.NoError(tape.Flush())
	assert.Equal("X", output.String())

	value, err = tape.ReadByte()
	assert.NoError(err)
	assert.Equal(byte('b'), value)

	assert.False(tape.Ready())
}

func TestTapeExhausted(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("")}

	assert.False(tape.Ready())

	_, err := tape.ReadByte()
	assert.ErrorIs(err, io.EOF)
}

func TestTapeUnattached(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}

	assert.False(tape.Ready())

	_, err := tape.ReadByte()
	assert.ErrorIs(err, ErrNoInput)

	err = tape.WriteByte('x')
	assert.ErrorIs(err, ErrNoOutput)

	// Flushing an unused tape is harmless.
	assert.NoError(tape.Flush())
}
