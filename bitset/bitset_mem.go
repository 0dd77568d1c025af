package bitset

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/kwertop/gobloom"
)

const wordSize = 32
const wordBytes = wordSize / 8

// BitSetMem is a fixed-length in-memory bit vector addressed as 32-bit
// words: bit i lives in word i>>5 at offset i%32. Storage is delegated
// to bits-and-blooms, whose 64-bit words serialize to the same
// little-endian byte stream as consecutive 32-bit words.
type BitSetMem struct {
	set  *bitset.BitSet
	size uint
}

// NewBitSetMem creates a zeroed bit vector of size bits. The size must
// be a multiple of wordSize; the filter constructors guarantee that.
func NewBitSetMem(size uint) *BitSetMem {
	return &BitSetMem{bitset.New(size), size}
}

// FromWordsMem creates a bit vector whose initial content is the given
// 32-bit words, word 0 first.
func FromWordsMem(words []uint32) (*BitSetMem, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("gobloom: bit set needs at least one %d-bit word: %w", wordSize, gobloom.ErrInvalidArgument)
	}
	buf := make([]uint64, (len(words)+1)/2)
	for i, word := range words {
		buf[i/2] |= uint64(word) << (uint(i%2) * wordSize)
	}
	return &BitSetMem{bitset.From(buf), uint(len(words)) * wordSize}, nil
}

// FromBytesMem creates a bit vector from a little-endian byte export,
// reading each 4-byte group as one 32-bit word.
func FromBytesMem(data []byte) (*BitSetMem, error) {
	if len(data) == 0 || len(data)%wordBytes != 0 {
		return nil, fmt.Errorf("gobloom: bit set must be a whole number of %d-byte words, got %d bytes: %w", wordBytes, len(data), gobloom.ErrInvalidArgument)
	}
	words := make([]uint32, len(data)/wordBytes)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*wordBytes:])
	}
	return FromWordsMem(words)
}

func (b *BitSetMem) Size() uint {
	return b.size
}

func (b *BitSetMem) Has(index uint) bool {
	return b.set.Test(index)
}

func (b *BitSetMem) Insert(index uint) {
	b.set.Set(index)
}

// BitCount returns the number of set bits, counted word-parallel.
func (b *BitSetMem) BitCount() uint {
	return b.set.Count()
}

// Words returns a copy of the vector as 32-bit words in index order.
func (b *BitSetMem) Words() []uint32 {
	raw := b.set.Bytes()
	words := make([]uint32, b.size/wordSize)
	for i := range words {
		words[i] = uint32(raw[i/2] >> (uint(i%2) * wordSize))
	}
	return words
}

// Export serializes the vector as size/8 little-endian bytes, 4 bytes
// per word in index order, with no header.
func (b *BitSetMem) Export() []byte {
	raw := b.set.Bytes()
	buf := make([]byte, len(raw)*8)
	for i, word := range raw {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	return buf[:b.size/8]
}

// Equals reports whether both vectors have the same size and the same
// serialized content. Serialized form is compared directly because the
// backing sets of equal vectors may differ in 64-bit word count.
func (b *BitSetMem) Equals(other *BitSetMem) bool {
	return b.size == other.size && bytes.Equal(b.Export(), other.Export())
}
