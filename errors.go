package num

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidFormat is reported for malformed decimal, hex or radix input:
	// no digits, an illegal character or a dangling sign.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOutOfRange is reported when a parsed or converted magnitude does not
	// fit in the destination type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrDivisionByZero is reported (or panicked with) when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrIndexOutOfRange is reported for a bit index outside [0, 127], or an
	// input array of the wrong length.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPrecisionLoss is reported when narrowing a value that does not fit.
	ErrPrecisionLoss = errors.New("precision loss")
)

// NumError records a failed conversion or violated precondition. Err is always
// one of the Err* sentinels in this package, so callers can test for the kind
// of failure with errors.Is.
type NumError struct {
	Func  string // the failing function or method (I128FromString, I128.Bit, ...)
	Input string // the input, as a string
	Err   error
}

func (e *NumError) Error() string {
	return "num: " + e.Func + "(" + strconv.Quote(e.Input) + "): " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func syntaxError(fn, input string) *NumError {
	return &NumError{Func: fn, Input: input, Err: ErrInvalidFormat}
}

func rangeError(fn, input string) *NumError {
	return &NumError{Func: fn, Input: input, Err: ErrOutOfRange}
}

func indexError(fn string, idx int) *NumError {
	return &NumError{Func: fn, Input: strconv.Itoa(idx), Err: ErrIndexOutOfRange}
}

func lengthError(fn string, expected, actual int) *NumError {
	return &NumError{
		Func:  fn,
		Input: "len " + strconv.Itoa(actual) + ", expected " + strconv.Itoa(expected),
		Err:   ErrIndexOutOfRange,
	}
}
