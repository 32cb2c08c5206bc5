// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

const debugNumeric = true

// A Number is an exact signed number in base 2**64, or one of the special
// values ±Inf and NaN. See the package documentation for details.
//
// The zero value for a Number is 0. Numbers are immutable: operations return
// new values and never modify their operands.
type Number struct {
	mant nat
	exp  int64
	form Form
	neg  bool
}

// makeNumber returns the normalized Number ±m whose most significant word
// has exponent exp. Leading zero words are dropped and exp decremented
// accordingly; trailing zero words are dropped without touching exp. The
// result takes ownership of m.
//
// Non-zero words below math.MinInt64 cannot be represented: like Shift, the
// result is then 0.
func makeNumber(neg bool, m nat, exp int64) Number {
	n := len(m)
	m = m.norm()
	lead := int64(n - len(m))
	if exp < math.MinInt64+lead {
		return Number{}
	}
	exp -= lead
	m = m[m.lszw():]
	if len(m) == 0 || exp < math.MinInt64+int64(len(m)-1) {
		return Number{}
	}
	z := Number{mant: m, exp: exp, neg: neg}
	if debugNumeric {
		z.validate()
	}
	return z
}

// New returns the normalized Number ±digits with digits stored least
// significant word first and exp the exponent (power of 2**64) of the last
// word in digits. digits is copied.
func New(neg bool, digits []Word, exp int64) Number {
	return makeNumber(neg, nat(nil).set(digits), exp)
}

// Zero returns the canonical zero.
func Zero() Number {
	return Number{}
}

// Inf returns +Inf if sign >= 0, -Inf if sign < 0.
func Inf(sign int) Number {
	return Number{form: Infinite, neg: sign < 0}
}

// NaN returns the indeterminate value.
func NaN() Number {
	return Number{form: Indeterminate}
}

// Normalize returns x in canonical form: no zero word at either end of the
// digit sequence, zero and NaN positive. Numbers built by this package are
// always normalized; Normalize is idempotent.
func (x Number) Normalize() Number {
	switch x.form {
	case Finite:
		return makeNumber(x.neg, x.mant, x.exp)
	case Infinite:
		return Inf(sign(x.neg))
	}
	return NaN()
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// Form returns the form of x.
func (x Number) Form() Form {
	return x.form
}

// IsZero reports whether x is 0.
func (x Number) IsZero() bool {
	return x.form == Finite && len(x.mant) == 0
}

// IsInf reports whether x is +Inf or -Inf.
func (x Number) IsInf() bool {
	return x.form == Infinite
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Number) IsFinite() bool {
	return x.form == Finite
}

// IsNaN reports whether x is the indeterminate value.
func (x Number) IsNaN() bool {
	return x.form == Indeterminate
}

// IsInt reports whether x is a finite integer.
func (x Number) IsInt() bool {
	return x.form == Finite && x.MinExp() >= 0
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is 0 or NaN
//	+1 if x >   0
//
func (x Number) Sign() int {
	if debugNumeric {
		x.validate()
	}
	if x.IsZero() || x.IsNaN() {
		return 0
	}
	return sign(x.neg)
}

// Signbit reports whether x is negative.
func (x Number) Signbit() bool {
	return x.neg
}

// Digits returns a copy of the digit words of x, least significant first.
// The result is empty for 0 and non-finite values.
func (x Number) Digits() []Word {
	if x.form != Finite || len(x.mant) == 0 {
		return nil
	}
	return slices.Clone([]Word(x.mant))
}

// Exp returns the exponent (power of 2**64) of the most significant word of
// x. It is 0 for 0 and non-finite values.
func (x Number) Exp() int64 {
	return x.exp
}

// MinExp returns the exponent of the least significant word of x. It is 0
// for 0 and non-finite values.
func (x Number) MinExp() int64 {
	if len(x.mant) == 0 {
		return x.exp
	}
	return x.exp - int64(len(x.mant)) + 1
}

// Len returns the number of words in the digit sequence of x.
func (x Number) Len() int {
	return len(x.mant)
}

// Clone returns a deep copy of x.
func (x Number) Clone() Number {
	x.mant = nat(nil).set(x.mant)
	if len(x.mant) == 0 {
		x.mant = nil
	}
	return x
}

// Equal reports whether x and y have the same normalized form. Unlike the
// IEEE comparison, NaN is equal to NaN.
func (x Number) Equal(y Number) bool {
	x, y = x.Normalize(), y.Normalize()
	return x.form == y.form &&
		x.neg == y.neg &&
		x.exp == y.exp &&
		slices.Equal(x.mant, y.mant)
}

// Hash returns a hash of x consistent with Equal.
func (x Number) Hash() uint64 {
	var buf [64]byte
	return xxhash.Sum64(x.Normalize().appendBinary(buf[:0]))
}

// Truncate returns x with at most prec words, dropping the least
// significant ones (rounding toward zero). The exponent of the most
// significant word is unchanged. Truncate returns 0 for prec <= 0 and
// non-finite values unchanged.
func (x Number) Truncate(prec int) Number {
	switch {
	case x.form != Finite || len(x.mant) <= prec:
		return x
	case prec <= 0:
		return Number{}
	}
	return makeNumber(x.neg, nat(nil).set(x.mant[len(x.mant)-prec:]), x.exp)
}

// Shift returns x * 2**(64*n). Shifting out of the exponent range yields ±Inf
// or 0.
func (x Number) Shift(n int64) Number {
	if x.form != Finite || len(x.mant) == 0 || n == 0 {
		return x
	}
	switch {
	case n > 0 && x.exp > math.MaxInt64-n:
		return Inf(sign(x.neg))
	case n < 0 && x.MinExp() < math.MinInt64-n:
		return Number{}
	}
	x.exp += n
	return x
}

// validate panics if x violates the representation invariants.
func (x Number) validate() {
	if !debugNumeric {
		// avoid performance bugs
		panic("validate called but debugNumeric is not set")
	}
	switch x.form {
	case Finite:
	case Infinite:
		if len(x.mant) != 0 {
			panic("infinite number with mantissa")
		}
		return
	case Indeterminate:
		if len(x.mant) != 0 || x.neg {
			panic("NaN with mantissa or sign")
		}
		return
	default:
		panic(errors.AssertionFailedf("invalid form %d", x.form))
	}
	m := len(x.mant)
	if m == 0 {
		if x.neg || x.exp != 0 {
			panic(errors.AssertionFailedf("non-canonical zero: neg=%t exp=%d", x.neg, x.exp))
		}
		return
	}
	if x.mant[m-1] == 0 {
		panic(errors.AssertionFailedf("most significant word of %v is zero", []Word(x.mant)))
	}
	if x.mant[0] == 0 {
		panic(errors.AssertionFailedf("least significant word of %v is zero", []Word(x.mant)))
	}
	if x.exp < math.MinInt64+int64(m-1) {
		panic(errors.AssertionFailedf("exponent %d underflows for %d words", x.exp, m))
	}
}
