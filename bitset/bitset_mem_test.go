package bitset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/kwertop/gobloom"
)

func TestBitSetHas(t *testing.T) {
	bitset := NewBitSetMem(64)
	bitset.Insert(2)
	bitset.Insert(3)
	bitset.Insert(33)
	if !bitset.Has(3) {
		t.Error("should be true at index 3")
	}
	if bitset.Has(4) {
		t.Error("should be false at index 4")
	}
	if !bitset.Has(33) {
		t.Error("should be true at index 33")
	}
}

func TestBitSetInsertIdempotent(t *testing.T) {
	bitset := NewBitSetMem(32)
	bitset.Insert(7)
	bitset.Insert(7)
	if count := bitset.BitCount(); count != 1 {
		t.Errorf("count of set bits should be 1, got %v", count)
	}
}

func TestBitSetFromWords(t *testing.T) {
	bitset, err := FromWordsMem([]uint32{3, 0, 0x80000000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bitset.Size() != 96 {
		t.Fatalf("size should be 96, got %v", bitset.Size())
	}
	if !bitset.Has(0) || !bitset.Has(1) {
		t.Error("bits 0 and 1 of word 0 should be set")
	}
	if bitset.Has(2) || bitset.Has(32) {
		t.Error("bits 2 and 32 should not be set")
	}
	if !bitset.Has(95) {
		t.Error("top bit of word 2 should be set")
	}
	if count := bitset.BitCount(); count != 3 {
		t.Errorf("count of set bits should be 3, got %v", count)
	}
}

func TestBitSetFromWordsEmpty(t *testing.T) {
	if _, err := FromWordsMem(nil); !errors.Is(err, gobloom.ErrInvalidArgument) {
		t.Errorf("empty word slice should be invalid, got %v", err)
	}
}

func TestBitSetWordsRoundTrip(t *testing.T) {
	words := []uint32{0xdeadbeef, 0, 0x00c0ffee, 0xffffffff, 1}
	bitset, _ := FromWordsMem(words)
	got := bitset.Words()
	if len(got) != len(words) {
		t.Fatalf("words length should be %v, got %v", len(words), len(got))
	}
	for i := range words {
		if got[i] != words[i] {
			t.Errorf("word %v should be %#x, got %#x", i, words[i], got[i])
		}
	}
}

func TestBitSetExport(t *testing.T) {
	bitset := NewBitSetMem(64)
	bitset.Insert(0)
	bitset.Insert(8)
	bitset.Insert(33)
	want := []byte{0x01, 0x01, 0, 0, 0x02, 0, 0, 0}
	if got := bitset.Export(); !bytes.Equal(got, want) {
		t.Errorf("exported bytes should be %v, got %v", want, got)
	}
}

func TestBitSetExportOddWordCount(t *testing.T) {
	bitset, _ := FromWordsMem([]uint32{1, 2, 3})
	data := bitset.Export()
	if len(data) != 12 {
		t.Fatalf("export of 3 words should be 12 bytes, got %v", len(data))
	}
	want := []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}
	if !bytes.Equal(data, want) {
		t.Errorf("exported bytes should be %v, got %v", want, data)
	}
}

func TestBitSetFromBytes(t *testing.T) {
	aSet, _ := FromWordsMem([]uint32{7, 0x80000001, 42})
	bSet, err := FromBytesMem(aSet.Export())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !aSet.Equals(bSet) {
		t.Error("round-tripped bitset should equal the original")
	}
	if !bytes.Equal(aSet.Export(), bSet.Export()) {
		t.Error("round-tripped export should be byte-identical")
	}
}

func TestBitSetFromBytesInvalid(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7} {
		if _, err := FromBytesMem(make([]byte, n)); !errors.Is(err, gobloom.ErrInvalidArgument) {
			t.Errorf("%v bytes should be invalid, got %v", n, err)
		}
	}
	if _, err := FromBytesMem(nil); !errors.Is(err, gobloom.ErrInvalidArgument) {
		t.Errorf("empty input should be invalid, got %v", err)
	}
}

func TestBitSetEquals(t *testing.T) {
	aSet := NewBitSetMem(96)
	aSet.Insert(0)
	aSet.Insert(1)
	aSet.Insert(95)
	bSet, _ := FromWordsMem([]uint32{3, 0, 0x80000000})
	if !aSet.Equals(bSet) {
		t.Error("bitsets with identical size and content should be equal")
	}
	bSet.Insert(50)
	if aSet.Equals(bSet) {
		t.Error("bitsets with different content shouldn't be equal")
	}
}

func TestBitSetNotEqualSizes(t *testing.T) {
	aSet := NewBitSetMem(32)
	bSet := NewBitSetMem(64)
	if aSet.Equals(bSet) {
		t.Error("bitsets of different sizes shouldn't be equal")
	}
}
