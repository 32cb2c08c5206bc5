// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "iter"

// A column pairs the words of two operands that share the exponent exp.
type column struct {
	x, y Word
	exp  int64
}

// wordAt returns the word of x with exponent e, or 0 if x has no word there.
func (x Number) wordAt(e int64) Word {
	lo := x.MinExp()
	if len(x.mant) == 0 || e < lo || e > x.exp {
		return 0
	}
	return x.mant[e-lo]
}

// alignRange returns the exponents of the least and most significant words
// occupied by x or y. ok is false if both are 0.
func alignRange(x, y Number) (lo, hi int64, ok bool) {
	switch {
	case len(x.mant) == 0 && len(y.mant) == 0:
		return 0, 0, false
	case len(x.mant) == 0:
		return y.MinExp(), y.exp, true
	case len(y.mant) == 0:
		return x.MinExp(), x.exp, true
	}
	return min(x.MinExp(), y.MinExp()), max(x.exp, y.exp), true
}

// align yields the words of x and y for every exponent in the union of their
// occupied ranges, from the least significant to the most significant,
// substituting 0 where an operand has no word.
func align(x, y Number) iter.Seq[column] {
	return func(yield func(column) bool) {
		lo, hi, ok := alignRange(x, y)
		if !ok {
			return
		}
		for e := lo; ; e++ {
			if !yield(column{x.wordAt(e), y.wordAt(e), e}) || e == hi {
				return
			}
		}
	}
}

// alignDesc is like align but yields columns from the most significant to the
// least significant.
func alignDesc(x, y Number) iter.Seq[column] {
	return func(yield func(column) bool) {
		lo, hi, ok := alignRange(x, y)
		if !ok {
			return
		}
		for e := hi; ; e-- {
			if !yield(column{x.wordAt(e), y.wordAt(e), e}) || e == lo {
				return
			}
		}
	}
}

// cartesian yields, for every pair of occupied exponents (i, j) of x and y,
// the words x_i and y_j with exp = i+j. Pairs where either word is 0 are
// skipped.
func cartesian(x, y Number) iter.Seq[column] {
	return func(yield func(column) bool) {
		xlo, ylo := x.MinExp(), y.MinExp()
		for i, xw := range x.mant {
			if xw == 0 {
				continue
			}
			for j, yw := range y.mant {
				if yw == 0 {
					continue
				}
				if !yield(column{xw, yw, xlo + ylo + int64(i+j)}) {
					return
				}
			}
		}
	}
}

// cmpAbs compares the magnitudes of the finite numbers x and y.
func cmpAbs(x, y Number) int {
	switch {
	case len(x.mant) == 0 && len(y.mant) == 0:
		return 0
	case len(x.mant) == 0:
		return -1
	case len(y.mant) == 0:
		return 1
	}
	// the most significant words are non-zero, so the exponents decide first
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	if len(x.mant) == len(y.mant) {
		// the words line up
		return x.mant.cmp(y.mant)
	}
	for c := range alignDesc(x, y) {
		switch {
		case c.x < c.y:
			return -1
		case c.x > c.y:
			return 1
		}
	}
	return 0
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
//
// Infinities are larger than any finite value, and NaN is larger than
// everything but NaN.
func (x Number) CmpAbs(y Number) int {
	x, y = x.Normalize(), y.Normalize()
	if x.form != y.form {
		if x.form < y.form {
			return -1
		}
		return 1
	}
	if x.form != Finite {
		return 0
	}
	return cmpAbs(x, y)
}

// rank orders the classes of numbers: -Inf < negative < 0 < positive < +Inf <
// NaN.
func (x Number) rank() int {
	switch x.form {
	case Infinite:
		return 2 * sign(x.neg)
	case Indeterminate:
		return 3
	}
	if len(x.mant) == 0 {
		return 0
	}
	return sign(x.neg)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Cmp is a total order: -Inf < finite values < +Inf < NaN, and NaN == NaN.
func (x Number) Cmp(y Number) int {
	x, y = x.Normalize(), y.Normalize()
	rx, ry := x.rank(), y.rank()
	switch {
	case rx < ry:
		return -1
	case rx > ry:
		return 1
	case rx == 1:
		return cmpAbs(x, y)
	case rx == -1:
		// a smaller magnitude is a larger negative number
		return -cmpAbs(x, y)
	}
	return 0
}

// Less reports whether x < y in the order defined by Cmp.
func Less(x, y Number) bool {
	return x.Cmp(y) < 0
}
