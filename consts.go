package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	maxI128Float = float64(170141183460469231731687303715884105727)  // (1<<127) - 1
	minI128Float = float64(-170141183460469231731687303715884105728) // -(1<<127)

	intSize = 32 << (^uint(0) >> 63)

	signBit = 0x8000000000000000
)

const (
	// I128Bits is the number of bits in the two's complement form of an I128.
	I128Bits = 128

	// I128Bytes is the length of the byte encodings produced by I128.Bytes.
	I128Bytes = I128Bits / 8
)

var (
	ZeroI128 = I128{}
	OneI128  = I128{lo: 1}
	MaxI128  = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128  = I128{hi: 0x8000000000000000, lo: 0}

	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128

	// minI128AsAbsU128 is the magnitude of MinI128, which does not fit in an
	// I128 but does in a U128.
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

	// maxBigU128 is used to flip the bits of a negative I128 when converting
	// to a big.Int:
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	big1 = new(big.Int).SetInt64(1)
)
