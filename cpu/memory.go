package cpu

// MEMORY_MAX is the number of addressable words.
const MEMORY_MAX = 1 << 16

// Memory-mapped device register addresses.
const (
	MR_KBSR = uint16(0xfe00) // keyboard status
	MR_KBDR = uint16(0xfe02) // keyboard data
)

// Memory is the 65536-word store. Loads and stores here are plain storage
// with no side effects; device register interception happens in Cpu.Read.
type Memory [MEMORY_MAX]uint16

// Load returns the word at address.
func (mem *Memory) Load(address uint16) uint16 {
	return mem[address]
}

// Store writes a word at address.
func (mem *Memory) Store(address uint16, value uint16) {
	mem[address] = value
}

// LoadImage copies words into memory starting at origin. Words past the
// top of the address space are dropped.
func (mem *Memory) LoadImage(origin uint16, words []uint16) {
	copy(mem[origin:], words)
}
