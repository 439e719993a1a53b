package io

import (
	"bufio"
	"os"

	"golang.org/x/sys/unix"
)

// Terminal is a Console over the controlling terminal. Open switches the
// input descriptor to unbuffered, non-echoing mode; Restore must run before
// the process exits, including on interrupt.
type Terminal struct {
	in  *os.File
	out *os.File

	saved  *unix.Termios
	output *bufio.Writer
}

var _ Console = (*Terminal)(nil)

// NewTerminal creates a Terminal over stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// Open disables canonical input and echo on the terminal, saving the prior
// mode for Restore.
func (tm *Terminal) Open() (err error) {
	fd := int(tm.in.Fd())

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	saved := *termios
	tm.saved = &saved

	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	err = unix.IoctlSetTermios(fd, unix.TCSETS, termios)
	return
}

// Restore puts the terminal back into the mode saved by Open.
func (tm *Terminal) Restore() (err error) {
	if tm.saved == nil {
		return
	}
	err = unix.IoctlSetTermios(int(tm.in.Fd()), unix.TCSETS, tm.saved)
	tm.saved = nil
	return
}

// Ready polls the input descriptor without blocking.
func (tm *Terminal) Ready() bool {
	fds := []unix.PollFd{
		{Fd: int32(tm.in.Fd()), Events: unix.POLLIN},
	}
	count, err := unix.Poll(fds, 0)
	return err == nil && count > 0 && (fds[0].Revents&unix.POLLIN) != 0
}

// ReadByte blocks until a byte arrives from the terminal.
func (tm *Terminal) ReadByte() (value byte, err error) {
	var one [1]byte
	for {
		var count int
		count, err = tm.in.Read(one[:])
		if err != nil {
			return
		}
		if count == 1 {
			value = one[0]
			return
		}
	}
}

// WriteByte buffers a byte for the terminal output.
func (tm *Terminal) WriteByte(value byte) (err error) {
	if tm.output == nil {
		tm.output = bufio.NewWriter(tm.out)
	}
	err = tm.output.WriteByte(value)
	return
}

// Flush drains buffered output to the terminal.
func (tm *Terminal) Flush() (err error) {
	if tm.output == nil {
		return
	}
	err = tm.output.Flush()
	return
}
