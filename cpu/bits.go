package cpu

// SignExtend treats the low width bits of value as a two's-complement
// signed integer and extends its sign bit through the full word.
func SignExtend(value uint16, width int) uint16 {
	if (value>>(width-1))&1 != 0 {
		value |= 0xffff << width
	}
	return value
}
