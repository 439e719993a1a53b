package io

import (
	"bufio"
	"io"
)

// Tape is a Console over plain byte streams. It wraps an io.Reader for
// input and an io.Writer for output, buffering both.
//
// Ready peeks at the input buffer, so it may block if the underlying
// reader blocks with no data pending. A tape is finite media; use Terminal
// for interactive input.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	input  *bufio.Reader
	output *bufio.Writer
}

var _ Console = (*Tape)(nil)

func (tc *Tape) reader() *bufio.Reader {
	if tc.input == nil {
		tc.input = bufio.NewReader(tc.Input)
	}
	return tc.input
}

func (tc *Tape) writer() *bufio.Writer {
	if tc.output == nil {
		tc.output = bufio.NewWriter(tc.Output)
	}
	return tc.output
}

// Ready reports whether an input byte remains on the tape.
func (tc *Tape) Ready() bool {
	if tc.Input == nil {
		return false
	}
	_, err := tc.reader().Peek(1)
	return err == nil
}

// ReadByte reads the next byte from the input stream.
func (tc *Tape) ReadByte() (value byte, err error) {
	if tc.Input == nil {
		err = ErrNoInput
		return
	}
	value, err = tc.reader().ReadByte()
	return
}

// WriteByte appends a byte to the output stream.
func (tc *Tape) WriteByte(value byte) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}
	err = tc.writer().WriteByte(value)
	return
}

// Flush drains buffered output to the underlying writer.
func (tc *Tape) Flush() (err error) {
	if tc.output == nil {
		return
	}
	err = tc.output.Flush()
	return
}
