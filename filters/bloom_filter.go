package filters

import (
	"math"

	"github.com/kwertop/gobloom"
	"github.com/kwertop/gobloom/bitset"
	"github.com/kwertop/gobloom/hash"
)

// stepSeed feeds the second hash of the double-hashing scheme. It must
// stay fixed: two filters only interoperate if they derive identical
// bit indices for identical elements.
const stepSeed = 1576284489

// BloomFilter is a classic Bloom filter over a 32-bit-word bit vector.
// Lookup never returns a false negative; false positives occur at a
// rate governed by the filter size and the number of inserted
// elements. Bits are only ever set, so the filter cannot shrink or
// forget. Insert does unsynchronized read-modify-writes and needs
// external locking when used across goroutines; concurrent Lookup
// calls with no concurrent Insert are safe, as lookups only read.
type BloomFilter struct {
	size      uint
	numHashes uint
	filter    *bitset.BitSetMem
}

var _ BaseFilter = (*BloomFilter)(nil)

// NewBloomFilter creates a zeroed filter of at least size bits, rounded
// up to a whole number of 32-bit words, testing numHashes bits per
// element. Zero arguments are clamped to one word and one hash.
func NewBloomFilter(size, numHashes uint) *BloomFilter {
	size = ((gobloom.Max(size, 1) + 31) / 32) * 32
	return &BloomFilter{size, gobloom.Max(numHashes, 1), bitset.NewBitSetMem(size)}
}

// NewBloomFilterWithParameters creates a filter sized for numItems
// elements at the given target false-positive rate.
func NewBloomFilterWithParameters(numItems uint, errorRate float64) *BloomFilter {
	size := gobloom.CalculateFilterSize(numItems, errorRate)
	numHashes := gobloom.CalculateNumHashes(size, numItems)
	return NewBloomFilter(size, numHashes)
}

// NewBloomFilterFromWords creates a filter of len(words)*32 bits whose
// initial bit content is copied verbatim from words.
func NewBloomFilterFromWords(words []uint32, numHashes uint) (*BloomFilter, error) {
	set, err := bitset.FromWordsMem(words)
	if err != nil {
		return nil, err
	}
	return &BloomFilter{set.Size(), gobloom.Max(numHashes, 1), set}, nil
}

// FromBytes reconstructs a filter from the output of Export. The bit
// count is len(data)*8; numHashes is not part of the serialized form
// and must be supplied by the caller.
func FromBytes(data []byte, numHashes uint) (*BloomFilter, error) {
	set, err := bitset.FromBytesMem(data)
	if err != nil {
		return nil, err
	}
	return &BloomFilter{set.Size(), gobloom.Max(numHashes, 1), set}, nil
}

// Insert adds an element, which must be a number or a string. Numbers
// are inserted under their decimal string form, so Insert(10) and
// Insert("10") are the same element.
func (bloomFilter *BloomFilter) Insert(element any) error {
	s, err := gobloom.CanonicalString(element)
	if err != nil {
		return err
	}
	bloomFilter.InsertString(s)
	return nil
}

// InsertString adds a string element.
func (bloomFilter *BloomFilter) InsertString(element string) *BloomFilter {
	for _, index := range bloomFilter.indexes(element) {
		bloomFilter.filter.Insert(uint(index))
	}
	return bloomFilter
}

// Lookup reports whether an element may have been inserted. A false
// result is definitive; a true result may be a false positive.
func (bloomFilter *BloomFilter) Lookup(element any) (bool, error) {
	s, err := gobloom.CanonicalString(element)
	if err != nil {
		return false, err
	}
	return bloomFilter.LookupString(s), nil
}

// LookupString reports whether a string element may have been inserted.
func (bloomFilter *BloomFilter) LookupString(element string) bool {
	for _, index := range bloomFilter.indexes(element) {
		if !bloomFilter.filter.Has(uint(index)) {
			return false
		}
	}
	return true
}

// indexes derives the numHashes bit indices for an element by double
// hashing (Kirsch-Mitzenmacher): two seeded FNV-1a evaluations give a
// base and a step, and each round advances by the step mod size. The
// sum is carried in 64 bits so it cannot wrap before the reduction.
// A fresh slice is returned per call so lookups never write filter
// state.
func (bloomFilter *BloomFilter) indexes(element string) []uint32 {
	a := hash.Sum32(element, 0)
	b := hash.Sum32(element, stepSeed)
	m := uint64(bloomFilter.size)
	x := uint64(a) % m
	locations := make([]uint32, bloomFilter.numHashes)
	for i := range locations {
		locations[i] = uint32(x)
		x = (x + uint64(b)) % m
	}
	return locations
}

// Cardinality estimates how many distinct elements have been inserted,
// from the fill ratio alone: -m*ln(1-ones/m)/k. Returns +Inf once every
// bit is set. The estimate assumes the hash rounds are independent,
// which double hashing only approximates.
func (bloomFilter *BloomFilter) Cardinality() float64 {
	ones := bloomFilter.filter.BitCount()
	if ones == 0 {
		return 0
	}
	m := float64(bloomFilter.size)
	return -m * math.Log(1-float64(ones)/m) / float64(bloomFilter.numHashes)
}

// PositiveRate estimates the current false-positive probability as
// (ones/m)^k, the chance that k independently chosen bits are all
// already set. Exactly 0 while the filter is empty, approaching 1 as
// it saturates.
func (bloomFilter *BloomFilter) PositiveRate() float64 {
	ones := bloomFilter.filter.BitCount()
	return math.Pow(float64(ones)/float64(bloomFilter.size), float64(bloomFilter.numHashes))
}

// Export serializes the bit vector as little-endian 32-bit words in
// index order, 4 bytes per word, with no header or checksum. The size
// and hash count must travel out of band; see FromBytes.
func (bloomFilter *BloomFilter) Export() []byte {
	return bloomFilter.filter.Export()
}

// Equals reports whether both filters serialize to identical bytes,
// which requires identical size and bit content. The hash count is
// deliberately not compared, matching the serialized form.
func (bloomFilter *BloomFilter) Equals(other *BloomFilter) bool {
	return bloomFilter.size == other.size && bloomFilter.filter.Equals(other.filter)
}

// GetCap returns the filter size in bits.
func (bloomFilter *BloomFilter) GetCap() uint {
	return bloomFilter.size
}

// GetNumHashes returns the number of bits tested per element.
func (bloomFilter *BloomFilter) GetNumHashes() uint {
	return bloomFilter.numHashes
}

// Words returns a copy of the bit vector as 32-bit words.
func (bloomFilter *BloomFilter) Words() []uint32 {
	return bloomFilter.filter.Words()
}
