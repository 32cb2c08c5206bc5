// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/bits"

	"github.com/db47h/numeric"
)

// FMA returns x * y + u. Both operations are exact, so unlike its floating
// point counterpart there is no rounding at all.
//
// This function is a proxy for x.Mul(y).Add(u)
func FMA(x, y, u numeric.Number) numeric.Number {
	return x.Mul(y).Add(u)
}

// Abs returns |x|.
//
// This function is a proxy for x.Abs()
func Abs(x numeric.Number) numeric.Number {
	return x.Abs()
}

// mulHi returns the high word of the 128 bits product x*y.
func mulHi(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}
