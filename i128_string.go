package num

import (
	"fmt"
	"strconv"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// I128FromString creates an I128 from a decimal string with an optional
// leading '-'. Malformed input fails with ErrInvalidFormat; values outside
// [MinI128, MaxI128] fail with ErrOutOfRange.
func I128FromString(s string) (out I128, err error) {
	return parseI128("I128FromString", s, 10)
}

// I128FromStringBase creates an I128 from a string of digits in the given
// base (2 to 36, letters are case-insensitive) with an optional leading '-'.
// It is the counterpart to I128.Text().
func I128FromStringBase(s string, base int) (out I128, err error) {
	if base < 2 || base > 36 {
		return out, &NumError{Func: "I128FromStringBase", Input: s, Err: fmt.Errorf("%w: base %d", ErrInvalidFormat, base)}
	}
	return parseI128("I128FromStringBase", s, base)
}

func parseI128(fn string, s string, base int) (out I128, err error) {
	neg, mag, err := parseMagnitude(s, base, false)
	if err != nil {
		return out, &NumError{Func: fn, Input: s, Err: err}
	}
	out, ok := i128FromMagnitude(neg, mag)
	if !ok {
		return out, rangeError(fn, s)
	}
	return out, nil
}

// I128FromHexString creates an I128 from a hex string. The syntax is an
// optional '-', an optional "0x" or "0X" prefix, then case-insensitive hex
// digits; '_' may be used anywhere after the prefix as a separator.
//
// Unsigned input is read as a 128-bit two's complement bit pattern, so any
// value of up to 32 significant digits is accepted and
// I128FromHexString(v.HexString()) == v for every v. Input with a '-' is a
// magnitude, which must not exceed 1<<127.
func I128FromHexString(s string) (out I128, err error) {
	neg, mag, err := parseMagnitude(s, 16, true)
	if err != nil {
		return out, &NumError{Func: "I128FromHexString", Input: s, Err: err}
	}
	if !neg {
		return mag.AsI128(), nil
	}
	out, ok := i128FromMagnitude(true, mag)
	if !ok {
		return out, rangeError("I128FromHexString", s)
	}
	return out, nil
}

// parseMagnitude accumulates mag = mag*base + digit over s. It returns the
// sentinel error only; callers wrap it with their own context. Syntax errors
// take precedence over overflow.
func parseMagnitude(s string, base int, hexSyntax bool) (neg bool, mag U128, err error) {
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if hexSyntax && len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var ndigits int
	var overflow bool
	var carry uint64

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if hexSyntax && c == '_' {
			continue
		}
		d := digitVal(c)
		if d >= base {
			return neg, mag, ErrInvalidFormat
		}
		ndigits++
		if !overflow {
			mag.hi, mag.lo, carry = mulAddWord(mag.hi, mag.lo, uint64(base), uint64(d))
			overflow = carry != 0
		}
	}

	if ndigits == 0 {
		return neg, mag, ErrInvalidFormat
	}
	if overflow {
		return neg, mag, ErrOutOfRange
	}
	return neg, mag, nil
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 255
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic(fmt.Sprintf("num: illegal base %d", base))
	}
}

func formatUint64(v uint64, base int) string {
	return strconv.FormatUint(v, base)
}

// bigBase returns the largest power of base that fits in a uint64, and the
// number of digits it represents.
func bigBase(base int) (bb uint64, ndigits int) {
	b := uint64(base)
	bb, ndigits = b, 1
	for bb <= maxUint64/b {
		bb *= b
		ndigits++
	}
	return bb, ndigits
}

// quoRem64 divides u by a single word.
func (u U128) quoRem64(v uint64) (q U128, r uint64) {
	if u.hi < v {
		q.lo, r = quorem128by64(u.hi, u.lo, v)
		return q, r
	}
	q.hi, r = u.hi/v, u.hi%v
	q.lo, r = quorem128by64(r, u.lo, v)
	return q, r
}

// appendU128 appends the digits of u in the given base. Each division by
// bigBase peels off a whole uint64's worth of digits; once the remaining
// value fits in a word, strconv takes over.
func appendU128(dst []byte, u U128, base int) []byte {
	if u.hi == 0 {
		return strconv.AppendUint(dst, u.lo, base)
	}

	bb, nd := bigBase(base)
	b := uint64(base)

	var buf [128]byte
	pos := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.quoRem64(bb)
		for j := 0; j < nd; j++ {
			pos--
			buf[pos] = digits[r%b]
			r /= b
		}
	}
	dst = strconv.AppendUint(dst, u.lo, base)
	return append(dst, buf[pos:]...)
}

// String returns the decimal representation of i.
func (i I128) String() string {
	if i.IsInt64() {
		return strconv.FormatInt(int64(i.lo), 10)
	}
	return string(i.appendText(nil, 10))
}

// Text returns the string representation of i in the given base, which must
// be between 2 and 36 inclusive. Negative values are prefixed with '-'; see
// BinaryString and HexString for the two's complement bit pattern.
func (i I128) Text(base int) string {
	checkBase(base)
	return string(i.appendText(nil, base))
}

func (i I128) appendText(dst []byte, base int) []byte {
	if i.hi&signBit != 0 {
		dst = append(dst, '-')
	}
	return appendU128(dst, i.absU128(), base)
}

func appendPaddedWord(dst []byte, v uint64, base int, width int) []byte {
	var buf [64]byte
	s := strconv.AppendUint(buf[:0], v, base)
	for n := len(s); n < width; n++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// BinaryString returns the 128-bit two's complement pattern of i as 128
// '0'/'1' characters, most significant bit first and without a sign.
func (i I128) BinaryString() string {
	out := make([]byte, 0, 128)
	out = appendPaddedWord(out, i.hi, 2, 64)
	out = appendPaddedWord(out, i.lo, 2, 64)
	return string(out)
}

// BinaryStringReadable is BinaryString split into groups of 32 bits with '_'.
func (i I128) BinaryStringReadable() string {
	return groupDigits(i.BinaryString(), 32)
}

// HexString returns the 128-bit two's complement pattern of i as 32
// lower-case hex digits, zero-padded and without a sign or prefix.
func (i I128) HexString() string {
	out := make([]byte, 0, 32)
	out = appendPaddedWord(out, i.hi, 16, 16)
	out = appendPaddedWord(out, i.lo, 16, 16)
	return string(out)
}

// HexStringReadable is HexString split into groups of 4 digits with '_'. The
// result is still accepted by I128FromHexString.
func (i I128) HexStringReadable() string {
	return groupDigits(i.HexString(), 4)
}

func groupDigits(s string, size int) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/size)
	for idx := 0; idx < len(s); idx += size {
		if idx > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(s[idx : idx+size])
	}
	return sb.String()
}

// Format implements fmt.Formatter, supporting the same verbs and flags as
// big.Int.
func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}
