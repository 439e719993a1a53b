// Package obj reads and writes LC-3 program images: a big-endian stream of
// 16-bit words whose first word is the origin address. Words are converted
// to host order once, at load time; the execution path never sees the
// stored representation.
package obj

import (
	"encoding/binary"
	"io"
	"math/bits"
	"os"
)

// Image is a program image: the origin address and the words to place in
// memory starting there.
type Image struct {
	Origin uint16
	Words  []uint16
}

// Swap16 swaps the two bytes of a word, converting between the big-endian
// stored order and little-endian host order.
func Swap16(value uint16) uint16 {
	return bits.ReverseBytes16(value)
}

// Read parses an image from r.
func Read(r io.Reader) (img *Image, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data) < 2 {
		err = ErrImageShort
		return
	}
	if len(data)%2 != 0 {
		err = ErrImageOdd
		return
	}

	img = &Image{
		Origin: binary.BigEndian.Uint16(data),
	}
	for n := 2; n < len(data); n += 2 {
		img.Words = append(img.Words, binary.BigEndian.Uint16(data[n:]))
	}

	return
}

// ReadFile parses an image from a file.
func ReadFile(path string) (img *Image, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	img, err = Read(file)
	return
}

// WriteTo writes the image in its stored representation.
func (img *Image) WriteTo(w io.Writer) (count int64, err error) {
	data := make([]byte, 2*(1+len(img.Words)))
	binary.BigEndian.PutUint16(data, img.Origin)
	for n, word := range img.Words {
		binary.BigEndian.PutUint16(data[2*(1+n):], word)
	}

	written, err := w.Write(data)
	count = int64(written)
	return
}
