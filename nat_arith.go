// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import "math/bits"

// A Word represents a single digit of a multi-precision number in base 2**64.
type Word uint64

const _S = _W / 8 // word size in bytes

//-----------------------------------------------------------------------------
// Arithmetic primitives
//
// These operate on single words or on word vectors of equal length. The loop
// conditions `i < len(z) && i < len(x)` let the compiler drop bounds checks.

// z1<<_W + z0 = x*y
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Word(hi), Word(lo)
}

// z1<<_W + z0 = x*y + c
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	var cc uint64
	lo, cc = bits.Add64(lo, uint64(c), 0)
	return Word(hi + cc), Word(lo)
}

// q = (u1<<_W + u0 - r)/v. u1 must be < v.
func divWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div64(uint64(u1), uint64(u0), uint64(v))
	return Word(qq), Word(rr)
}

// The resulting carry c is either 0 or 1.
func addWW(x, y, cIn Word) (s, c Word) {
	ss, cc := bits.Add64(uint64(x), uint64(y), uint64(cIn))
	return Word(ss), Word(cc)
}

// The resulting borrow b is either 0 or 1.
func subWW(x, y, bIn Word) (d, b Word) {
	dd, bb := bits.Sub64(uint64(x), uint64(y), uint64(bIn))
	return Word(dd), Word(bb)
}

// addVW sets z to x + y. The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			// copy remaining digits if not adding in-place
			if !same(z, x) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = addWW(x[i], c, 0)
	}
	return c
}

// mulAddVWW sets z to x*y + r and returns the carry word.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// divWVW sets z to (xn<<(_W*len(x)) + x) / y, processing words from the most
// significant to the least significant, and returns the remainder. xn must
// be < y.
func divWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

func same(x, y []Word) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
