package catalog

import (
	"fmt"
	"io"
	"os"
)

// RNGTableOffset is the file offset of the RNG table in a headerless ROM image.
const RNGTableOffset = 0xFD00

// RNGTableSize is the number of bytes in the RNG table.
const RNGTableSize = 0x100

// RNGTable is the game's fixed table of random bytes, indexed by the 8-bit
// step and battle counters.
type RNGTable [RNGTableSize]byte

// ReadRNGTable reads the table from a ROM image.
func ReadRNGTable(r io.ReaderAt) (RNGTable, error) {
	var t RNGTable
	n, err := r.ReadAt(t[:], RNGTableOffset)
	if n == RNGTableSize {
		// io.ReaderAt may return io.EOF together with a full read at end of file.
		return t, nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return RNGTable{}, fmt.Errorf("%w: rng table at %#x: read %d of %d bytes: %v",
		ErrInvalidROM, RNGTableOffset, n, RNGTableSize, err)
}

// LoadRNGTable reads the table from the ROM image at path.
func LoadRNGTable(path string) (RNGTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return RNGTable{}, fmt.Errorf("catalog: open rom: %w", err)
	}
	defer f.Close()

	return ReadRNGTable(f)
}
