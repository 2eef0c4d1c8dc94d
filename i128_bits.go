package num

import (
	"math/bits"
)

func (i I128) Not() I128 { return I128{hi: ^i.hi, lo: ^i.lo} }

func (i I128) And(n I128) I128 { return I128{hi: i.hi & n.hi, lo: i.lo & n.lo} }

// AndNot returns i & ^n.
func (i I128) AndNot(n I128) I128 { return I128{hi: i.hi &^ n.hi, lo: i.lo &^ n.lo} }

func (i I128) Or(n I128) I128  { return I128{hi: i.hi | n.hi, lo: i.lo | n.lo} }
func (i I128) Xor(n I128) I128 { return I128{hi: i.hi ^ n.hi, lo: i.lo ^ n.lo} }

// Lsh returns i << n. Bits shifted out of the top are lost; shifts of 128 or
// more produce 0, as Go's << does for fixed-width integers.
func (i I128) Lsh(n uint) (v I128) {
	v.hi, v.lo = lsh128(i.hi, i.lo, n)
	return v
}

// Rsh returns the arithmetic (sign-extending) shift i >> n. Shifts of 128 or
// more produce 0 for non-negative values and -1 for negative ones, as Go's >>
// does for signed integers.
func (i I128) Rsh(n uint) (v I128) {
	if n == 0 {
		return i
	} else if n >= 64 {
		// int64 >> k with k >= 64 fills with the sign bit, which also covers
		// n >= 128.
		v.lo = uint64(int64(i.hi) >> (n - 64))
		v.hi = uint64(FastZeroOrMinusOne(int64(i.hi)))
		return v
	}
	v.lo = (i.lo >> n) | (i.hi << (64 - n))
	v.hi = uint64(int64(i.hi) >> n)
	return v
}

// RshUnsigned returns the logical shift i >> n, filling from the top with
// zeros regardless of the sign.
func (i I128) RshUnsigned(n uint) (v I128) {
	v.hi, v.lo = rsh128(i.hi, i.lo, n)
	return v
}

// Bit returns the value of the bit at index idx, where 0 is the least
// significant bit and 127 is the sign bit.
func (i I128) Bit(idx int) (uint, error) {
	if idx < 0 || idx >= I128Bits {
		return 0, indexError("I128.Bit", idx)
	}
	if idx < 64 {
		return uint(i.lo>>uint(idx)) & 1, nil
	}
	return uint(i.hi>>uint(idx-64)) & 1, nil
}

// SetBit returns i with the bit at index idx set to 1.
func (i I128) SetBit(idx int) (I128, error) {
	if idx < 0 || idx >= I128Bits {
		return i, indexError("I128.SetBit", idx)
	}
	if idx < 64 {
		i.lo |= 1 << uint(idx)
	} else {
		i.hi |= 1 << uint(idx-64)
	}
	return i, nil
}

// ClearBit returns i with the bit at index idx set to 0.
func (i I128) ClearBit(idx int) (I128, error) {
	if idx < 0 || idx >= I128Bits {
		return i, indexError("I128.ClearBit", idx)
	}
	if idx < 64 {
		i.lo &^= 1 << uint(idx)
	} else {
		i.hi &^= 1 << uint(idx-64)
	}
	return i, nil
}

// FlipBit returns i with the bit at index idx inverted. Flipping bit 127
// moves the value by exactly 1<<127, modulo 1<<128.
func (i I128) FlipBit(idx int) (I128, error) {
	if idx < 0 || idx >= I128Bits {
		return i, indexError("I128.FlipBit", idx)
	}
	if idx < 64 {
		i.lo ^= 1 << uint(idx)
	} else {
		i.hi ^= 1 << uint(idx-64)
	}
	return i, nil
}

// LeadingZeros returns the number of leading zero bits in the two's
// complement form of i; it is 0 for any negative value and 128 for zero.
func (i I128) LeadingZeros() uint {
	return i.AsU128().LeadingZeros()
}

// TrailingZeros returns the number of trailing zero bits in i; it is 128
// for zero.
func (i I128) TrailingZeros() uint {
	return i.AsU128().TrailingZeros()
}

// OnesCount returns the number of one bits in the two's complement form of i.
func (i I128) OnesCount() int {
	return bits.OnesCount64(i.hi) + bits.OnesCount64(i.lo)
}

// BitLen returns the number of bits required to represent |i|, like
// big.Int.BitLen. BitLen of MinI128 is 128.
func (i I128) BitLen() int {
	return i.absU128().BitLen()
}
