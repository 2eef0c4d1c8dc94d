package num

import (
	"encoding/binary"

	"github.com/tidwall/gjson"
)

// I128FromBytes creates an I128 from exactly 16 big-endian bytes: b[0] is
// the most significant byte of the high word and b[15] the least significant
// byte of the low word. Any other length fails with ErrIndexOutOfRange.
func I128FromBytes(b []byte) (out I128, err error) {
	if len(b) != I128Bytes {
		return out, lengthError("I128FromBytes", I128Bytes, len(b))
	}
	out.hi = binary.BigEndian.Uint64(b[:8])
	out.lo = binary.BigEndian.Uint64(b[8:])
	return out, nil
}

// I128FromUint32s creates an I128 from four big-endian 32-bit words:
// [hi>>32, hi, lo>>32, lo].
func I128FromUint32s(w []uint32) (out I128, err error) {
	if len(w) != 4 {
		return out, lengthError("I128FromUint32s", 4, len(w))
	}
	out.hi = joinWords32(w[0], w[1])
	out.lo = joinWords32(w[2], w[3])
	return out, nil
}

// I128FromUint64s creates an I128 from [hi, lo].
func I128FromUint64s(w []uint64) (out I128, err error) {
	if len(w) != 2 {
		return out, lengthError("I128FromUint64s", 2, len(w))
	}
	return I128{hi: w[0], lo: w[1]}, nil
}

// Bytes returns the 16-byte big-endian two's complement encoding of i. See
// I128FromBytes() for the counterpart.
func (i I128) Bytes() []byte {
	return i.AppendBytes(make([]byte, 0, I128Bytes))
}

// AppendBytes appends the 16-byte big-endian encoding of i to dst.
func (i I128) AppendBytes(dst []byte) []byte {
	var buf [I128Bytes]byte
	binary.BigEndian.PutUint64(buf[:8], i.hi)
	binary.BigEndian.PutUint64(buf[8:], i.lo)
	return append(dst, buf[:]...)
}

// Uint32s returns i as four big-endian 32-bit words.
func (i I128) Uint32s() []uint32 {
	hh, hl := splitWord32(i.hi)
	lh, ll := splitWord32(i.lo)
	return []uint32{hh, hl, lh, ll}
}

// Uint64s returns i as [hi, lo].
func (i I128) Uint64s() []uint64 {
	return []uint64{i.hi, i.lo}
}

func (i I128) MarshalBinary() ([]byte, error) {
	return i.Bytes(), nil
}

func (i *I128) UnmarshalBinary(data []byte) error {
	v, err := I128FromBytes(data)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalText() ([]byte, error) {
	return i.appendText(nil, 10), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalJSON encodes i as a quoted decimal string, as most JSON decoders
// can't hold 128-bit numbers.
func (i I128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 42)
	out = append(out, '"')
	out = i.appendText(out, 10)
	return append(out, '"'), nil
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON number
// token.
func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	s, err := jsonNumberText("I128.UnmarshalJSON", bts)
	if err != nil {
		return err
	}
	v, err := I128FromString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// jsonNumberText extracts the digits from a JSON string or number token.
func jsonNumberText(fn string, bts []byte) (string, error) {
	if !gjson.ValidBytes(bts) {
		return "", syntaxError(fn, string(bts))
	}
	res := gjson.ParseBytes(bts)
	switch res.Type {
	case gjson.String:
		return res.Str, nil
	case gjson.Number:
		return res.Raw, nil
	default:
		return "", syntaxError(fn, string(bts))
	}
}
