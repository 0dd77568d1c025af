package hash

import "unicode/utf16"

// fnvOffset32 is the standard 32-bit FNV-1a offset basis.
const fnvOffset32 = 2166136261

// Sum32 computes a seeded 32-bit FNV-1a hash of s. The offset basis is
// XORed with seed, so distinct seeds give independent hash streams over
// the same input. Bytes are folded from the UTF-16 encoding of s, high
// byte before low byte, skipping high bytes that are zero, and a final
// xorshift pass disperses the accumulator before use as a bit index.
func Sum32(s string, seed uint32) uint32 {
	a := fnvOffset32 ^ seed
	for _, c := range utf16.Encode([]rune(s)) {
		if d := c & 0xff00; d != 0 {
			a = multiply(a ^ uint32(d>>8))
		}
		a = multiply(a ^ uint32(c)&0xff)
	}
	return mix(a)
}

// multiply is a * 16777619 mod 2^32, the FNV prime step, written as a
// sum of shifted copies so every intermediate stays in 32 bits.
func multiply(a uint32) uint32 {
	return a + a<<1 + a<<4 + a<<7 + a<<8 + a<<24
}

func mix(a uint32) uint32 {
	a += a << 13
	a ^= a >> 7
	a += a << 3
	a ^= a >> 17
	a += a << 5
	return a
}
