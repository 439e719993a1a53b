// Package cpu implements the LC-3 machine core.
//
// The machine consists of eight 16-bit general-purpose registers (r0-r7,
// with r7 holding return addresses by convention), a program counter, a
// condition-flag register holding exactly one of n/z/p, and a 65536-word
// memory with two keyboard device registers intercepted on read. The
// fetch-decode-execute loop runs one instruction at a time until a HALT
// trap or a fault.
package cpu
