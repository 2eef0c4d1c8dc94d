/*
Package num provides a signed 128-bit integer (I128) built from two uint64
words, plus the unsigned companion U128 it uses for magnitudes.

I128 and U128 are value types; all operations return new values. The zero
value is 0, every bit pattern is a valid number, and both types are
comparable with == so they can be used as map keys.

Arithmetic wraps modulo 2^128 like Go's fixed-width integers:

	v := MaxI128.Add(OneI128)
	fmt.Println(v == MinI128)
	// Output: true

Conversions that can lose information return an error instead, and the error
always wraps one of ErrInvalidFormat, ErrOutOfRange, ErrDivisionByZero,
ErrIndexOutOfRange or ErrPrecisionLoss:

	_, err := I128FromString("170141183460469231731687303715884105728")
	fmt.Println(errors.Is(err, ErrOutOfRange))
	// Output: true

I128 can be created from a variety of sources:

	I128From64(v int64) I128
	I128FromBits(hi int64, lo uint64) I128
	I128FromString(s string) (I128, error)
	I128FromHexString(s string) (I128, error)
	I128FromStringBase(s string, base int) (I128, error)
	I128FromBytes(b []byte) (I128, error)
	I128FromUint32s(w []uint32) (I128, error)
	I128FromUint64s(w []uint64) (I128, error)
	I128FromBigInt(v *big.Int) (I128, error)
	I128FromFloat64(f float64) (I128, error)
	I128FromDecimal(d decimal.Decimal) (I128, error)

I128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- bin.BinaryMarshaler (github.com/gagliardetto/binary, Borsh/Bin)
	- bin.BinaryUnmarshaler

*/
package num
