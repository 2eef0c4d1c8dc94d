package num

import (
	"math/bits"
)

// FastZeroOrValue is the branch-free form of:
//
//	if test < 0 {
//		return value
//	}
//	return 0
func FastZeroOrValue(test, value int64) int64 {
	return value & (test >> 63)
}

// FastZeroOrMinusOne is the branch-free form of:
//
//	if test < 0 {
//		return -1
//	}
//	return 0
//
// It is the word that sign-extends test into a wider integer.
func FastZeroOrMinusOne(test int64) int64 {
	return test >> 63
}

func joinWords32(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

func splitWord32(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

// mul64to128 returns the full 128-bit product of u and v, using only 64-bit
// multiplication of 32-bit halves.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

// mul128to128 returns the low 128 bits of (uhi:ulo) * (nhi:nlo). The
// uhi*nhi partial product lands entirely above bit 128 and is skipped; the
// cross products only contribute their low words.
func mul128to128(uhi, ulo, nhi, nlo uint64) (ohi, olo uint64) {
	ohi, olo = mul64to128(ulo, nlo)
	ohi += uhi*nlo + ulo*nhi
	return ohi, olo
}

// mulAddWord returns (hi:lo) * m + a. carry holds whatever spilled out past
// bit 128; a non-zero carry means the result overflowed.
func mulAddWord(hi, lo, m, a uint64) (ohi, olo, carry uint64) {
	lh, ll := mul64to128(lo, m)
	hh, hl := mul64to128(hi, m)

	olo = ll + a
	if olo < a {
		lh++ // cannot wrap, lh < m
	}

	ohi = hl + lh
	carry = hh
	if ohi < lh {
		carry++
	}
	return ohi, olo, carry
}

// cmp128 compares two 128-bit values as unsigned.
func cmp128(hi1, lo1, hi2, lo2 uint64) int {
	if hi1 > hi2 {
		return 1
	} else if hi1 < hi2 {
		return -1
	} else if lo1 > lo2 {
		return 1
	} else if lo1 < lo2 {
		return -1
	}
	return 0
}

// lsh128 shifts (hi:lo) left by n, carrying bits from lo into hi. Shifts of
// 128 or more produce 0.
func lsh128(hi, lo uint64, n uint) (ohi, olo uint64) {
	if n == 0 {
		return hi, lo
	} else if n > 64 {
		return lo << (n - 64), 0
	} else if n < 64 {
		return (hi << n) | (lo >> (64 - n)), lo << n
	}
	return lo, 0 // n == 64
}

// rsh128 shifts (hi:lo) right by n, carrying bits from hi into lo, and fills
// from the top with zeros. Shifts of 128 or more produce 0.
func rsh128(hi, lo uint64, n uint) (ohi, olo uint64) {
	if n == 0 {
		return hi, lo
	} else if n > 64 {
		return 0, hi >> (n - 64)
	} else if n < 64 {
		return hi >> n, (lo >> n) | (hi << (64 - n))
	}
	return 0, hi // n == 64
}

// quorem128by64 divides the 128-bit value (u1:u0) by v. u1 must be less than
// v, otherwise the quotient does not fit in a word.
//
// Hacker's delight 9-4, divlu.
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	var b uint64 = 1 << 32
	var un1, un0, vn1, vn0, q1, q0, un32, un21, un10, rhat, left, right uint64

	s := uint(bits.LeadingZeros64(v))
	v <<= s

	vn1 = v >> 32
	vn0 = v & 0xffffffff

	if s > 0 {
		un32 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un32 = u1
		un10 = u0
	}

	un1 = un10 >> 32
	un0 = un10 & 0xffffffff

	q1 = un32 / vn1
	rhat = un32 % vn1

	left = q1 * vn0
	right = (rhat << 32) + un1

again1:
	if (q1 >= b) || (left > right) {
		q1--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un1
			goto again1
		}
	}

	un21 = (un32 << 32) + (un1 - (q1 * v))

	q0 = un21 / vn1
	rhat = un21 % vn1

	left = q0 * vn0
	right = (rhat << 32) | un0

again2:
	if (q0 >= b) || (left > right) {
		q0--
		rhat += vn1
		if rhat < b {
			left -= vn0
			right = (rhat << 32) | un0
			goto again2
		}
	}

	return (q1 << 32) | q0, ((un21 << 32) + (un0 - (q0 * v))) >> s
}

// quorem128by128 divides m by v using a single-word quotient estimate taken
// from the normalised top word of v. The estimate is at most one too small.
func quorem128by128(m, v U128) (q, r U128) {
	if v.hi == 0 {
		if m.hi < v.lo {
			q.lo, r.lo = quorem128by64(m.hi, m.lo, v.lo)
			return q, r
		}
		q.hi = m.hi / v.lo
		rhi := m.hi % v.lo
		q.lo, r.lo = quorem128by64(rhi, m.lo, v.lo)
		return q, r
	}

	sh := uint(bits.LeadingZeros64(v.hi))

	v1 := v.Lsh(sh)
	u1 := m.Rsh(1)

	var q1 U128
	q1.lo, _ = quorem128by64(u1.hi, u1.lo, v1.hi)
	q1 = q1.Rsh(63 - sh)

	if q1.hi|q1.lo != 0 {
		q1 = q1.Dec()
	}
	q = q1
	r = m.Sub(q1.Mul(v))

	if r.Cmp(v) >= 0 {
		q = q.Inc()
		r = r.Sub(v)
	}
	return q, r
}

// quorem128bin is binary long division: the divisor is aligned with the
// dividend's top bit, then each step shifts the quotient left and subtracts
// the divisor wherever it still fits.
func quorem128bin(u, by U128, uLeading0, byLeading0 uint) (q, r U128) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q.hi, q.lo = lsh128(q.hi, q.lo, 1)

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.Sub(by)
			q.lo |= 1
		}

		by.hi, by.lo = rsh128(by.hi, by.lo, 1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}
