package num

import (
	"math/big"
)

// I128 is a signed 128-bit two's complement integer. The value is
// int64(hi) * 2^64 + lo; bit 63 of hi is the sign bit.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromBits creates an I128 from its signed high word and unsigned low
// word. See I128.Bits() for the counterpart.
func I128FromBits(hi int64, lo uint64) I128 {
	return I128{hi: uint64(hi), lo: lo}
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	return I128{hi: uint64(FastZeroOrMinusOne(v)), lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Values outside
// [MinI128, MaxI128] fail with ErrOutOfRange; nothing is clamped.
func I128FromBigInt(v *big.Int) (out I128, err error) {
	u, err := U128FromBigInt(new(big.Int).Abs(v))
	if err != nil {
		return out, rangeError("I128FromBigInt", v.String())
	}
	out, ok := i128FromMagnitude(v.Sign() < 0, u)
	if !ok {
		return out, rangeError("I128FromBigInt", v.String())
	}
	return out, nil
}

// i128FromMagnitude applies a sign to an unsigned magnitude, reporting
// whether the result fits in an I128.
func i128FromMagnitude(neg bool, mag U128) (out I128, ok bool) {
	if !neg {
		if mag.GreaterThan(maxI128AsU128) {
			return out, false
		}
		return mag.AsI128(), true
	}
	if mag.GreaterThan(minI128AsAbsU128) {
		return out, false
	}
	// Negating the magnitude of MinI128 gives back MinI128, which is the
	// answer we want.
	return mag.AsI128().Neg(), true
}

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == ZeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// Bits returns the signed high word and the unsigned low word. See
// I128FromBits() for the counterpart.
func (i I128) Bits() (hi int64, lo uint64) { return int64(i.hi), i.lo }

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	b.SetUint64(i.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Or(b, &lo)

	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{hi: i.hi, lo: i.lo}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to its low word. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert, or
// ToInt64() for the checked form.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64, that is, whether
// the high word is exactly the sign extension of the low word.
func (i I128) IsInt64() bool {
	return i.hi == uint64(FastZeroOrMinusOne(int64(i.lo)))
}

// ToInt64 returns i as an int64, or fails with ErrPrecisionLoss if it does
// not fit.
func (i I128) ToInt64() (int64, error) {
	if !i.IsInt64() {
		return 0, &NumError{Func: "I128.ToInt64", Input: i.String(), Err: ErrPrecisionLoss}
	}
	return int64(i.lo), nil
}

// ToUint64Bits returns the low word of i reinterpreted as unsigned. Like
// ToInt64, it fails with ErrPrecisionLoss unless i fits in an int64, so -1
// comes back as math.MaxUint64.
func (i I128) ToUint64Bits() (uint64, error) {
	if !i.IsInt64() {
		return 0, &NumError{Func: "I128.ToUint64Bits", Input: i.String(), Err: ErrPrecisionLoss}
	}
	return i.lo, nil
}

func (i I128) Sign() int {
	if i == ZeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Hash mixes both words into a single uint64. Equal values always hash the
// same; I128 is also comparable, so it can be used as a map key directly.
func (i I128) Hash() uint64 {
	h := i.hi * 0x9E3779B97F4A7C15
	h ^= h >> 32
	return h ^ i.lo
}

func (i I128) Inc() (v I128) {
	v.lo = i.lo + 1
	v.hi = i.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

func (i I128) Dec() (v I128) {
	v.lo = i.lo - 1
	v.hi = i.hi
	if i.lo < v.lo {
		v.hi--
	}
	return v
}

// Add returns i + n. Overflow wraps around, like Go's built-in integers.
func (i I128) Add(n I128) (v I128) {
	v.lo = i.lo + n.lo
	v.hi = i.hi + n.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

// Add64 returns i + n, sign-extending n.
func (i I128) Add64(n int64) (v I128) {
	v.lo = i.lo + uint64(n)
	v.hi = i.hi + uint64(FastZeroOrMinusOne(n))
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

// Sub returns i - n. Overflow wraps around, like Go's built-in integers.
func (i I128) Sub(n I128) (v I128) {
	v.lo = i.lo - n.lo
	v.hi = i.hi - n.hi
	if i.lo < v.lo {
		v.hi--
	}
	return v
}

// Sub64 returns i - n, sign-extending n.
func (i I128) Sub64(n int64) (v I128) {
	v.lo = i.lo - uint64(n)
	v.hi = i.hi - uint64(FastZeroOrMinusOne(n))
	if i.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns the two's complement negation ^i + 1. Negating MinI128 yields
// MinI128, as it does for Go's fixed-width integers.
func (i I128) Neg() (v I128) {
	v.hi = ^i.hi
	v.lo = ^i.lo + 1
	if v.lo == 0 { // carry out of the low word
		v.hi++
	}
	return v
}

// Abs returns |i|. Like Neg, MinI128.Abs() == MinI128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// absU128 returns |i| as a U128, which is exact for every I128 including
// MinI128.
func (i I128) absU128() U128 {
	if i.hi&signBit != 0 {
		i = i.Neg()
	}
	return U128{hi: i.hi, lo: i.lo}
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// The high words are compared as signed, then the low words as unsigned.
func (i I128) Cmp(n I128) int {
	ih, nh := int64(i.hi), int64(n.hi)
	if ih > nh {
		return 1
	} else if ih < nh {
		return -1
	} else if i.lo > n.lo {
		return 1
	} else if i.lo < n.lo {
		return -1
	}
	return 0
}

// CmpUnsigned compares the two's complement bit patterns of i and n as if
// they were both U128s.
func (i I128) CmpUnsigned(n I128) int {
	return cmp128(i.hi, i.lo, n.hi, n.lo)
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

// Equal64 reports whether i equals the sign-extended n.
func (i I128) Equal64(n int64) bool {
	return i.lo == uint64(n) && i.hi == uint64(FastZeroOrMinusOne(n))
}

func (i I128) GreaterThan(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih > nh || (ih == nh && i.lo > n.lo)
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih > nh || (ih == nh && i.lo >= n.lo)
}

func (i I128) LessThan(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih < nh || (ih == nh && i.lo < n.lo)
}

func (i I128) LessOrEqualTo(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih < nh || (ih == nh && i.lo <= n.lo)
}

// Mul returns the product of two I128s.
//
// Overflow wraps around, like Go's built-in integers. The low 128 bits of a two's
// complement product do not depend on the signs of the operands, so this is
// the unsigned schoolbook product truncated to 128 bits.
func (i I128) Mul(n I128) (dest I128) {
	dest.hi, dest.lo = mul128to128(i.hi, i.lo, n.hi, n.lo)
	return dest
}

// Mul64 returns i * n, sign-extending n.
func (i I128) Mul64(n int64) (dest I128) {
	dest.hi, dest.lo = mul128to128(i.hi, i.lo, uint64(FastZeroOrMinusOne(n)), uint64(n))
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, it
// panics with a *NumError wrapping ErrDivisionByZero; see QuoRemChecked for a
// form that returns the error instead.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI128.QuoRem(I128From64(-1)) wraps to (MinI128, 0), as it does for Go's
// fixed-width integers.
//
// I128 does not support big.Int.DivMod()-style Euclidean division.
//
func (i I128) QuoRem(by I128) (q, r I128) {
	if by == ZeroI128 {
		panic(&NumError{Func: "I128.QuoRem", Input: i.String(), Err: ErrDivisionByZero})
	}
	return i.quoRem(by)
}

// QuoRemChecked is QuoRem, but reports division by zero as an error.
func (i I128) QuoRemChecked(by I128) (q, r I128, err error) {
	if by == ZeroI128 {
		return q, r, &NumError{Func: "I128.QuoRemChecked", Input: i.String(), Err: ErrDivisionByZero}
	}
	q, r = i.quoRem(by)
	return q, r, nil
}

func (i I128) quoRem(by I128) (q, r I128) {
	qNeg := (i.hi^by.hi)&signBit != 0
	rNeg := i.hi&signBit != 0

	// Working on U128 magnitudes side-steps the MinI128 edge case, as
	// |MinI128| == 1<<127 is exact in a U128 even though it isn't in an I128.
	iu, byu := i.absU128(), by.absU128()

	var qu, ru U128
	if iu.hi|byu.hi == 0 {
		qu.lo, ru.lo = iu.lo/byu.lo, iu.lo%byu.lo
	} else {
		qu, ru = iu.QuoRem(byu)
	}

	q, r = qu.AsI128(), ru.AsI128()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, it panics with a
// *NumError wrapping ErrDivisionByZero. Quo implements truncated division
// (like Go); see QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	if by == ZeroI128 {
		panic(&NumError{Func: "I128.Quo", Input: i.String(), Err: ErrDivisionByZero})
	}
	q, _ = i.quoRem(by)
	return q
}

// Divide is the checked form of Quo: it returns the truncated quotient i/by,
// or an error wrapping ErrDivisionByZero if by is zero.
func (i I128) Divide(by I128) (I128, error) {
	if by == ZeroI128 {
		return I128{}, &NumError{Func: "I128.Divide", Input: i.String(), Err: ErrDivisionByZero}
	}
	q, _ := i.quoRem(by)
	return q, nil
}

// Rem returns the remainder of i%by for by != 0. If by == 0, it panics with
// a *NumError wrapping ErrDivisionByZero. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	if by == ZeroI128 {
		panic(&NumError{Func: "I128.Rem", Input: i.String(), Err: ErrDivisionByZero})
	}
	_, r = i.quoRem(by)
	return r
}
