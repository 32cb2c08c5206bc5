// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package numeric implements exact, variable-length signed numbers in base
2**64, together with the special values ±Inf and NaN.

A Number is a little-endian sequence of 64 bits Words and the exponent, as a
power of 2**64, of its most significant word. The value of

	Number{mant: [m0, m1, ..., mn], exp: e}

is

	(m0 * 2**(-64*n) + ... + mn) * 2**(64*e)

so that integers have non-negative exponents and binary fractions use negative
ones. Numbers are always normalized: there is no zero word at either end of
the mantissa, and zero is represented by an empty mantissa with a zero exponent
and a positive sign.

The zero value for a Number corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

	var x numeric.Number // x is 0

Other values are built with conversion functions or literal parsing:

	x := numeric.FromInt64(-42)
	y := numeric.FromFloat64(0.5)       // [1<<63] w-1
	z, err := numeric.Parse("1.25e3")

Unlike math/big, Numbers are immutable values. Operations are methods of the
form

	func (x Number) Unary() Number          // unary x
	func (x Number) Binary(y Number) Number // x binary y
	func (x Number) Pred() P                // p = pred(x)

and never modify their operands, so Numbers can be freely copied, shared
between goroutines and used as leaves of expression trees.

Addition, subtraction and multiplication are exact. Division is only
supported by a single Word (QuoRemWord, QuoWord, RemWord); division by zero
reports ErrDivisionByZero. Special values follow IEEE-754 conventions: NaN
poisons every operation, infinities absorb finite operands, and both ∞ - ∞
and ∞ * 0 yield NaN.

Word exponents are int64. Like Shift, operations whose result would need a
word above exponent math.MaxInt64 saturate to ±Inf, and those that would need
a non-zero word below math.MinInt64 yield 0.

Cmp defines a total order where NaN compares equal to itself and greater than
+Inf, which makes Numbers usable as sort and map keys (through Hash, or the
order-preserving encoding of the keyenc package).

Conversions to float64 and float32 round to nearest even and report an
Accuracy. Text returns the exact decimal expansion of a Number, and Parse reads
it back unchanged. Number implements the fmt package's Formatter and Scanner
interfaces, and the encoding text, binary and gob marshalling interfaces.
*/
package numeric
