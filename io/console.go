// Package io provides the character console implementations for the LC-3
// machine: a stream-backed Tape for piped and test execution, and a raw-mode
// Terminal for interactive sessions on a tty.
package io

// Console is the host-supplied character I/O capability consumed by the
// machine core. Input is delivered one byte at a time; the core's keyboard
// status register is refreshed from Ready, and GETC/IN block on ReadByte.
type Console interface {
	// Ready reports whether an input byte can be read without blocking.
	Ready() bool
	// ReadByte blocks until an input byte is available.
	ReadByte() (value byte, err error)
	// WriteByte writes a single output byte.
	WriteByte(value byte) error
	// Flush drains any buffered output to the host.
	Flush() error
}
