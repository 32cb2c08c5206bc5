// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides exact integer powers, factorials and reductions over
// numeric.Number values.
package math

import (
	"github.com/db47h/numeric"
)

// constants
var (
	one = numeric.FromUint64(1)
	// ten19 = 10**19, the largest power of 10 that fits in a Word.
	ten19 = numeric.FromUint64(upow(10, 19))
)

// Pow returns x**n, computed exactly by binary exponentiation. Pow(x, 0) is 1
// for any x, including NaN and infinities.
func Pow(x numeric.Number, n uint64) numeric.Number {
	if n == 0 {
		return one
	}
	y := one
	z := x
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(z)
		}
		z = z.Mul(z)
		if z.IsInf() || z.IsZero() || z.IsNaN() {
			return z.Mul(y)
		}
		n /= 2
	}
	if y.Cmp(one) == 0 {
		return z
	}
	return z.Mul(y)
}

// Pow10 returns 10**n.
func Pow10(n uint64) numeric.Number {
	return Pow(ten19, n/19).Mul(numeric.FromUint64(upow(10, n%19)))
}

// Factorial returns n!.
func Factorial(n uint64) numeric.Number {
	z := one
	// multiply by products of consecutive factors that fit in a Word
	var p uint64 = 1
	for i := uint64(2); i <= n; i++ {
		if hi := mulHi(p, i); hi != 0 {
			z = z.Mul(numeric.FromUint64(p))
			p = 1
		}
		p *= i
	}
	return z.Mul(numeric.FromUint64(p))
}

// Sum returns the exact sum of xs, 0 if xs is empty.
func Sum(xs ...numeric.Number) numeric.Number {
	var z numeric.Number
	for _, x := range xs {
		z = z.Add(x)
	}
	return z
}

// Product returns the exact product of xs, 1 if xs is empty.
func Product(xs ...numeric.Number) numeric.Number {
	z := one
	for _, x := range xs {
		z = z.Mul(x)
	}
	return z
}

func upow(x, n uint64) uint64 {
	if n == 0 {
		return 1
	}
	z := x
	y := uint64(1)
	for n > 1 {
		if n%2 != 0 {
			y *= z
		}
		z *= z
		n /= 2
	}
	return z * y
}
