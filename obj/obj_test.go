package obj

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	assert := assert.New(t)

	img, err := Read(bytes.NewReader([]byte{
		0x30, 0x00, // origin
		0x12, 0x34,
		0xab, 0xcd,
	}))
	assert.NoError(err)
	assert.Equal(uint16(0x3000), img.Origin)
	assert.Equal([]uint16{0x1234, 0xabcd}, img.Words)
}

func TestReadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Read(bytes.NewReader(nil))
	assert.ErrorIs(err, ErrImageShort)

	_, err = Read(bytes.NewReader([]byte{0x30}))
	assert.ErrorIs(err, ErrImageShort)

	_, err = Read(bytes.NewReader([]byte{0x30, 0x00, 0x12}))
	assert.ErrorIs(err, ErrImageOdd)
}

func TestWriteToRoundTrip(t *testing.T) {
	assert := assert.New(t)

	img := &Image{
		Origin: 0x3000,
		Words:  []uint16{0x1234, 0xfe00, 0x0001},
	}

	stored := &bytes.Buffer{}
	count, err := img.WriteTo(stored)
	assert.NoError(err)
	assert.Equal(int64(8), count)

	read, err := Read(stored)
	assert.NoError(err)
	assert.Equal(img, read)
}

func TestReadFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "test.obj")
	require.NoError(os.WriteFile(path, []byte{0x40, 0x00, 0xf0, 0x25}, 0o644))

	img, err := ReadFile(path)
	assert.NoError(err)
	assert.Equal(uint16(0x4000), img.Origin)
	assert.Equal([]uint16{0xf025}, img.Words)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.obj"))
	assert.Error(err)
}

func TestSwap16(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x3412), Swap16(0x1234))
	assert.Equal(uint16(0x1234), Swap16(Swap16(0x1234)))

	// Swapping a host-order load of the stored bytes matches the
	// big-endian decode used by Read.
	stored := []byte{0x12, 0x34}
	assert.Equal(binary.BigEndian.Uint16(stored), Swap16(binary.LittleEndian.Uint16(stored)))
}
