package num

import (
	"github.com/shopspring/decimal"
)

// AsDecimal converts i to a decimal.Decimal with exponent 0.
func (i I128) AsDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(i.AsBigInt(), 0)
}

// AsDecimalScaled interprets i as a count of minor units with scale decimal
// places, e.g. cents with a scale of 2:
//
//	I128From64(12345).AsDecimalScaled(2) // 123.45
func (i I128) AsDecimalScaled(scale int32) decimal.Decimal {
	return decimal.NewFromBigInt(i.AsBigInt(), -scale)
}

// I128FromDecimal converts d to an I128, truncating any fractional part
// towards zero. Values outside [MinI128, MaxI128] fail with ErrOutOfRange.
func I128FromDecimal(d decimal.Decimal) (I128, error) {
	out, err := I128FromBigInt(d.Truncate(0).BigInt())
	if err != nil {
		return out, rangeError("I128FromDecimal", d.String())
	}
	return out, nil
}

// I128FromDecimalScaled is the counterpart to AsDecimalScaled: it converts
// an amount to minor units by shifting the decimal point right by scale
// places, truncating whatever precision is left over.
//
//	I128FromDecimalScaled(decimal.RequireFromString("123.456"), 2) // 12345
func I128FromDecimalScaled(d decimal.Decimal, scale int32) (I128, error) {
	out, err := I128FromBigInt(d.Shift(scale).Truncate(0).BigInt())
	if err != nil {
		return out, rangeError("I128FromDecimalScaled", d.String())
	}
	return out, nil
}
