package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer. I128 uses it to hold magnitudes, which
// is how the magnitude of MinI128 (1<<127) stays representable.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Values that do not
// fit fail with ErrOutOfRange.
func U128FromString(s string) (out U128, err error) {
	neg, mag, err := parseMagnitude(s, 10, false)
	if err != nil {
		return out, &NumError{Func: "U128FromString", Input: s, Err: err}
	}
	if neg && !mag.IsZero() {
		return out, rangeError("U128FromString", s)
	}
	return mag, nil
}

// U128FromBigInt creates a U128 from a big.Int. Negative values and values
// wider than 128 bits fail with ErrOutOfRange.
func U128FromBigInt(v *big.Int) (out U128, err error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return out, rangeError("U128FromBigInt", v.String())
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 2:
			out.hi = uint64(words[1])
			fallthrough
		case 1:
			out.lo = uint64(words[0])
		}

	case 32:
		var w [4]uint64
		for i := range words {
			w[i] = uint64(words[i])
		}
		out.lo = w[1]<<32 | w[0]
		out.hi = w[3]<<32 | w[2]

	default:
		panic("num: unsupported bit size")
	}

	return out, nil
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return formatUint64(u.lo, 10)
	}
	return string(appendU128(nil, u, 10))
}

// Text returns the string representation of u in the given base, which must
// be between 2 and 36 inclusive. Digits above 9 are lower-case letters.
func (u U128) Text(base int) string {
	checkBase(base)
	return string(appendU128(nil, u, base))
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Or(b, &lo)
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{hi: u.hi, lo: u.lo}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Mul returns the low 128 bits of u * n; overflow wraps.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul128to128(u.hi, u.lo, n.hi, n.lo)
	return dest
}

// Cmp compares u to n and returns -1, 0 or +1.
func (u U128) Cmp(n U128) int {
	return cmp128(u.hi, u.lo, n.hi, n.lo)
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) U128    { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) AndNot(v U128) U128 { return U128{hi: u.hi &^ v.hi, lo: u.lo &^ v.lo} }
func (u U128) Or(v U128) U128     { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Xor(v U128) U128    { return U128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }
func (u U128) Not() U128          { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	v.hi, v.lo = lsh128(u.hi, u.lo, n)
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	v.hi, v.lo = rsh128(u.hi, u.lo, n)
	return v
}

// LeadingZeros returns the number of leading zero bits in u; the result is
// 128 for u == 0.
func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 128 for u == 0.
func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the minimum number of bits required to represent u.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

// Quo returns the quotient u/by. Quo panics with a *NumError wrapping
// ErrDivisionByZero if by is zero.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by. Rem panics with a *NumError wrapping
// ErrDivisionByZero if by is zero.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero panic occurs.
//
//	q = u/by
//	r = u - by*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic(&NumError{Func: "U128.QuoRem", Input: u.String(), Err: ErrDivisionByZero})
	}

	if u.hi|by.hi == 0 {
		// by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r // by == 1
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		// Power of two:
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	// The single-word estimate wins once the quotient gets wide enough that
	// the bit-by-bit loop would run for too many iterations.
	uLeading0 := u.LeadingZeros()
	if by.hi == 0 || byLeading0-uLeading0 > 16 {
		return quorem128by128(u, by)
	}
	return quorem128bin(u, by, uLeading0, byLeading0)
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	s, err := jsonNumberText("U128.UnmarshalJSON", bts)
	if err != nil {
		return err
	}
	v, err := U128FromString(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
