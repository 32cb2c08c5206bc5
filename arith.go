// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Number arithmetic.
//
// Mixed-sign operations are reduced to operations on magnitudes:
//
//	 a  + (-b) = a - b
//	(-a) +  b  = b - a
//	(-a) + (-b) = -(a + b)
//
// so that the word-level carry and borrow loops never see a sign.

package numeric

import (
	"math"

	"github.com/cockroachdb/errors"
)

// addExp returns a+b and whether the sum fits in an int64.
func addExp(a, b int64) (int64, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

// makeCarry is like makeNumber, except that the last word of z is a carry
// with exponent hi+1. A non-zero carry above math.MaxInt64 saturates to ±Inf.
func makeCarry(neg bool, z nat, hi int64) Number {
	if hi == math.MaxInt64 {
		if z[len(z)-1] != 0 {
			return Inf(sign(neg))
		}
		return makeNumber(neg, z[:len(z)-1], hi)
	}
	return makeNumber(neg, z, hi+1)
}

// addAbs returns ±(|x| + |y|).
func addAbs(neg bool, x, y Number) Number {
	lo, hi, _ := alignRange(x, y)
	z := make(nat, hi-lo+2)
	var c Word
	i := 0
	for col := range align(x, y) {
		z[i], c = addWW(col.x, col.y, c)
		i++
	}
	z[i] = c
	return makeCarry(neg, z, hi)
}

// subAbs returns |x| - |y| for |x| >= |y|.
func subAbs(x, y Number) (nat, int64) {
	lo, hi, _ := alignRange(x, y)
	z := make(nat, hi-lo+1)
	var b Word
	i := 0
	for col := range align(x, y) {
		z[i], b = subWW(col.x, col.y, b)
		i++
	}
	if debugNumeric && b != 0 {
		panic("BUG: borrow out of magnitude subtraction")
	}
	return z, hi
}

// diff returns s|x| - s|y| where s is -1 if neg is set, +1 otherwise.
func diff(neg bool, x, y Number) Number {
	if cmpAbs(x, y) < 0 {
		m, e := subAbs(y, x)
		return makeNumber(!neg, m, e)
	}
	m, e := subAbs(x, y)
	return makeNumber(neg, m, e)
}

// addSpecial handles Add with at least one non-finite operand. ok is false if
// both operands are finite.
func addSpecial(x, y Number) (z Number, ok bool) {
	switch {
	case x.form == Indeterminate || y.form == Indeterminate:
		return NaN(), true
	case x.form == Infinite && y.form == Infinite:
		if x.neg != y.neg {
			// ∞ - ∞
			return NaN(), true
		}
		return x, true
	case x.form == Infinite:
		return x, true
	case y.form == Infinite:
		return y, true
	}
	return Number{}, false
}

// Add returns the exact sum x+y.
//
// NaN operands yield NaN, an infinity absorbs any finite operand and the sum
// of two infinities with opposite signs is NaN. A carry out of the word with
// exponent math.MaxInt64 yields ±Inf.
func (x Number) Add(y Number) Number {
	if z, ok := addSpecial(x, y); ok {
		return z
	}
	x, y = x.Normalize(), y.Normalize()
	switch {
	case len(x.mant) == 0:
		return y
	case len(y.mant) == 0:
		return x
	case x.neg == y.neg:
		return addAbs(x.neg, x, y)
	}
	return diff(x.neg, x, y)
}

// Sub returns the exact difference x-y. Special values behave as in
// x.Add(y.Neg()).
func (x Number) Sub(y Number) Number {
	if z, ok := addSpecial(x, y.Neg()); ok {
		return z
	}
	x, y = x.Normalize(), y.Normalize()
	switch {
	case len(y.mant) == 0:
		return x
	case len(x.mant) == 0:
		return y.Neg()
	case x.neg != y.neg:
		// a - (-b) = a + b, (-a) - b = -(a + b)
		return addAbs(x.neg, x, y)
	}
	return diff(x.neg, x, y)
}

// Neg returns -x. The negation of 0 and NaN is the same value.
func (x Number) Neg() Number {
	if x.IsZero() || x.IsNaN() {
		return x
	}
	x.neg = !x.neg
	return x
}

// Abs returns |x|.
func (x Number) Abs() Number {
	x.neg = false
	return x
}

// Mul returns the exact product x*y.
//
// NaN operands yield NaN. An infinity times a non-zero value is an infinity
// with the product of the signs; an infinity times 0 is NaN. Products whose
// exponent leaves the int64 range saturate to ±Inf or 0.
func (x Number) Mul(y Number) Number {
	neg := x.neg != y.neg
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN()
	case x.IsInf() || y.IsInf():
		if x.IsZero() || y.IsZero() {
			return NaN()
		}
		return Inf(sign(neg))
	}
	x, y = x.Normalize(), y.Normalize()
	if len(x.mant) == 0 || len(y.mant) == 0 {
		return Number{}
	}
	hi, ok := addExp(x.exp, y.exp)
	if !ok {
		if x.exp > 0 {
			return Inf(sign(neg))
		}
		return Number{}
	}
	base, ok := addExp(x.MinExp(), y.MinExp())
	if !ok {
		return Number{}
	}

	// Schoolbook multiplication: every partial product of the grid lands at
	// index i+j of an accumulator whose word 0 has exponent base. The last
	// word is a carry above hi.
	z := make(nat, len(x.mant)+len(y.mant))
	for col := range cartesian(x, y) {
		hi, lo := mulWW(col.x, col.y)
		k := int(col.exp - base)
		c := addVW(z[k:], z[k:], lo)
		c += addVW(z[k+1:], z[k+1:], hi)
		if debugNumeric && c != 0 {
			panic("BUG: carry out of product accumulator")
		}
	}
	return makeCarry(neg, z, hi)
}

// quoWords divides the magnitude of x by d, producing one quotient word for
// each exponent from x.exp down to stop. It returns the quotient words
// (least significant first, the last one at exponent x.exp), the running
// remainder in units of 2**(64*stop) and the words of x below stop.
// x must be finite with x.exp >= stop.
func quoWords(x Number, d Word, stop int64) (q nat, r Word, rest nat) {
	n := int(x.exp - stop + 1)
	q = make(nat, n)
	for k := n - 1; k >= 0; k-- {
		q[k], r = divWW(r, x.wordAt(stop+int64(k)), d)
	}
	if lo := x.MinExp(); lo < stop {
		rest = x.mant[:stop-lo]
	}
	return q, r, rest
}

// QuoRemWord returns the quotient q = x/d truncated toward zero and the
// remainder r = x - q*d, so that x == q*d + r holds exactly. q is an integer
// and r has the sign of x; for integral x, r is a single word less than d.
// For fractional x, r also holds the fractional part of x.
//
// Dividing NaN yields (NaN, NaN), dividing ±Inf yields (±Inf, 0). A zero
// divisor returns ErrDivisionByZero.
func (x Number) QuoRemWord(d Word) (q, r Number, err error) {
	if d == 0 {
		return Number{}, Number{}, errors.WithStack(ErrDivisionByZero)
	}
	switch x.form {
	case Indeterminate:
		return NaN(), NaN(), nil
	case Infinite:
		return x, Number{}, nil
	}
	x = x.Normalize()
	if len(x.mant) == 0 || x.exp < 0 {
		// |x| < 1
		return Number{}, x, nil
	}
	qm, rw, rest := quoWords(x, d, 0)
	rm := make(nat, len(rest)+1)
	copy(rm, rest)
	rm[len(rest)] = rw
	return makeNumber(x.neg, qm, x.exp), makeNumber(x.neg, rm, 0), nil
}

// QuoWord returns x/d truncated toward zero after prec fractional words
// (that is to a multiple of 2**(-64*prec)). A zero divisor returns
// ErrDivisionByZero. Special values behave as in QuoRemWord.
func (x Number) QuoWord(d Word, prec int) (Number, error) {
	if d == 0 {
		return Number{}, errors.WithStack(ErrDivisionByZero)
	}
	if prec < 0 {
		prec = 0
	}
	switch x.form {
	case Indeterminate:
		return NaN(), nil
	case Infinite:
		return x, nil
	}
	x = x.Normalize()
	stop := -int64(prec)
	if len(x.mant) == 0 || x.exp < stop {
		return Number{}, nil
	}
	qm, _, _ := quoWords(x, d, stop)
	return makeNumber(x.neg, qm, x.exp), nil
}

// RemWord returns the remainder of x.QuoRemWord(d).
func (x Number) RemWord(d Word) (Number, error) {
	_, r, err := x.QuoRemWord(d)
	return r, err
}
