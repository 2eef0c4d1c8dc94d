// This file contains a heavily modified version of math.Mod
// that only supports our specific range of values.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"strconv"
)

// modpos is a very slimmed-down approximation of math.Mod, but without support
// for any of the things we don't need here. It is intended for when x is known
// to be positive. All calls have been hand-inlined for performance.
func modpos(x, y float64) float64 {
	const (
		mask  = 0x7FF
		shift = 64 - 11 - 1
		bias  = 1023
	)

	ybits := math.Float64bits(y)

	bits := ybits
	yexp := int((bits>>shift)&mask) - bias + 1
	bits &^= mask << shift
	bits |= (-1 + bias) << shift
	yfr := math.Float64frombits(bits)

	r := x
	for r >= y {
		bits = math.Float64bits(r)
		rexp := int((bits>>shift)&mask) - bias + 1
		bits &^= mask << shift
		bits |= (-1 + bias) << shift
		rfr := math.Float64frombits(bits)

		if rfr < yfr {
			rexp = rexp - 1
		}

		x := ybits
		exp := (rexp - yexp) + int(x>>shift)&mask - bias
		x &^= mask << shift
		x |= uint64(exp+bias) << shift
		r = r - math.Float64frombits(x)
	}
	return r
}

// I128FromFloat64 creates an I128 from a float64, truncating any fractional
// portion towards zero. NaN fails with ErrInvalidFormat; values outside
// [MinI128, MaxI128], including the infinities, fail with ErrOutOfRange.
func I128FromFloat64(f float64) (out I128, err error) {
	if f == 0 {
		return out, nil

	} else if f != f { // f != f == isnan
		return out, &NumError{Func: "I128FromFloat64", Input: "NaN", Err: ErrInvalidFormat}

	} else if f < 0 {
		if f > -wrapUint64Float {
			return I128{lo: uint64(-f)}.Neg(), nil
		} else if f >= minI128Float {
			f = -f
			lo := modpos(f, wrapUint64Float) // f is guaranteed to be > 0 here.
			return I128{hi: uint64(f / wrapUint64Float), lo: uint64(lo)}.Neg(), nil
		}

	} else {
		if f < wrapUint64Float {
			return I128{lo: uint64(f)}, nil
		} else if f < maxI128Float {
			lo := modpos(f, wrapUint64Float) // f is guaranteed to be > 0 here.
			return I128{hi: uint64(f / wrapUint64Float), lo: uint64(lo)}, nil
		}
	}

	return out, rangeError("I128FromFloat64", strconv.FormatFloat(f, 'g', -1, 64))
}

// AsFloat64 returns the nearest float64 to i, give or take the rounding of
// the two words.
func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.absU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}
