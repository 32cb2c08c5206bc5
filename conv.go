// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Numbers and native integers,
// IEEE-754 floats and math/big values.

package numeric

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// FromUint64 returns x as a Number.
func FromUint64(x uint64) Number {
	if x == 0 {
		return Number{}
	}
	return Number{mant: nat{Word(x)}}
}

// FromInt64 returns x as a Number.
func FromInt64(x int64) Number {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	z := FromUint64(u)
	z.neg = x < 0
	return z
}

// FromInt returns x as a Number for any signed integer type.
func FromInt[T constraints.Signed](x T) Number {
	return FromInt64(int64(x))
}

// FromUint returns x as a Number for any unsigned integer type.
func FromUint[T constraints.Unsigned](x T) Number {
	return FromUint64(uint64(x))
}

// FromUint128 returns the unsigned 128-bit integer hi<<64 | lo as a Number.
func FromUint128(hi, lo uint64) Number {
	return makeNumber(false, nat{Word(lo), Word(hi)}, 1)
}

// FromInt128 returns the two's complement 128-bit integer hi<<64 | lo as a
// Number.
func FromInt128(hi int64, lo uint64) Number {
	neg := hi < 0
	uhi := uint64(hi)
	if neg {
		var b uint64
		lo, b = bits.Sub64(0, lo, 0)
		uhi, _ = bits.Sub64(0, uhi, b)
	}
	return makeNumber(neg, nat{Word(lo), Word(uhi)}, 1)
}

// FromBig returns x as a Number.
func FromBig(x *big.Int) Number {
	if x.Sign() == 0 {
		return Number{}
	}
	m := nat(nil).setBytes(x.Bytes())
	return makeNumber(x.Sign() < 0, m, int64(len(m))-1)
}

// fromBinary returns ±m * 2**e.
func fromBinary(neg bool, m uint64, e int64) Number {
	// floor division: e = 64*q + s with 0 <= s < 64
	q, s := e>>6, uint(e&63)
	lo := m << s
	var hi uint64
	if s > 0 {
		hi = m >> (_W - s)
	}
	return makeNumber(neg, nat{Word(lo), Word(hi)}, q+1)
}

// FromFloat64 returns the exact value of x. NaN maps to NaN, ±Inf to ±Inf
// and ±0 to 0.
func FromFloat64(x float64) Number {
	switch {
	case math.IsNaN(x):
		return NaN()
	case math.IsInf(x, 0):
		return Inf(int(math.Copysign(1, x)))
	case x == 0:
		return Number{}
	}
	b := math.Float64bits(x)
	e := int64(b>>52) & 0x7ff
	m := b & (1<<52 - 1)
	if e == 0 {
		// denormal
		e = 1
	} else {
		m |= 1 << 52
	}
	return fromBinary(b>>63 != 0, m, e-1075)
}

// FromFloat32 returns the exact value of x. NaN maps to NaN, ±Inf to ±Inf
// and ±0 to 0.
func FromFloat32(x float32) Number {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 0):
		return Inf(int(math.Copysign(1, f)))
	case x == 0:
		return Number{}
	}
	b := math.Float32bits(x)
	e := int64(b>>23) & 0xff
	m := uint64(b & (1<<23 - 1))
	if e == 0 {
		e = 1
	} else {
		m |= 1 << 23
	}
	return fromBinary(b>>31 != 0, m, e-150)
}

// A floatFormat describes an IEEE-754 binary interchange format.
type floatFormat struct {
	mbits uint  // explicit mantissa bits
	bias  int64 // exponent bias, also the largest exponent
}

var (
	float64Format = floatFormat{52, 1023}
	float32Format = floatFormat{23, 127}
)

// floatBits returns the bit pattern of |x| rounded to nearest even in format
// f, and the accuracy of the rounded magnitude. x must be finite and
// non-zero.
func (x Number) floatBits(f floatFormat) (b uint64, acc Accuracy) {
	var (
		prec  = int64(f.mbits) + 1
		emin  = 1 - f.bias
		inf   = uint64(2*f.bias+1) << f.mbits
		words = int64(len(x.mant))
	)
	// Keep 64*x.exp away from overflow: these bounds are well outside the
	// range of any supported format.
	switch {
	case x.exp > f.bias/_W+1:
		return inf, Above
	case x.exp < (emin-prec)/_W-2:
		return 0, Below
	}

	w := uint64(x.mant[words-1])
	l := bits.Len64(w)
	// binary exponent of the leading bit: 2**p <= |x| < 2**(p+1)
	p := _W*x.exp + int64(l) - 1

	// top holds the 64 most significant bits of |x|, leading bit first.
	var next uint64
	if words > 1 {
		next = uint64(x.mant[words-2])
	}
	top := w<<(_W-l) | next>>l
	sticky := next<<(_W-l) != 0
	for i := int64(0); i < words-2 && !sticky; i++ {
		sticky = x.mant[i] != 0
	}

	// number of significant bits that survive
	kept := prec
	if p < emin {
		kept -= emin - p
		if kept < 0 {
			return 0, Below
		}
	}
	var m, rest uint64
	if kept == 0 {
		rest = top
	} else {
		m, rest = top>>(_W-kept), top<<kept
	}

	const half = 1 << 63
	inexact := rest != 0 || sticky
	up := rest > half || rest == half && (sticky || m&1 != 0)
	if up {
		m++
	}

	if p < emin {
		// denormal; a carry into bit mbits yields the smallest normal number
		b = m
	} else {
		if m == 1<<prec {
			m >>= 1
			p++
		}
		if p > f.bias {
			return inf, Above
		}
		b = uint64(p+f.bias)<<f.mbits | m&(1<<f.mbits-1)
	}

	if !inexact {
		return b, Exact
	}
	return b, makeAcc(up)
}

// Float64 returns the float64 value nearest to x (ties to even) and the
// accuracy of the result. Values too large for a float64 saturate to ±Inf,
// values too small go through denormals to ±0.
func (x Number) Float64() (float64, Accuracy) {
	switch {
	case x.IsNaN():
		return math.NaN(), Exact
	case x.IsInf():
		return math.Inf(sign(x.neg)), Exact
	case x.IsZero():
		return 0, Exact
	}
	b, acc := x.floatBits(float64Format)
	if x.neg {
		b |= 1 << 63
		acc = -acc
	}
	return math.Float64frombits(b), acc
}

// Float32 returns the float32 value nearest to x (ties to even) and the
// accuracy of the result, with the same saturation rules as Float64.
func (x Number) Float32() (float32, Accuracy) {
	switch {
	case x.IsNaN():
		return float32(math.NaN()), Exact
	case x.IsInf():
		return float32(math.Inf(sign(x.neg))), Exact
	case x.IsZero():
		return 0, Exact
	}
	b, acc := x.floatBits(float32Format)
	if x.neg {
		b |= 1 << 31
		acc = -acc
	}
	return math.Float32frombits(uint32(b)), acc
}

// truncAcc returns the accuracy of truncating x toward zero to an integer.
func (x Number) truncAcc() Accuracy {
	if x.MinExp() >= 0 {
		return Exact
	}
	return makeAcc(x.neg)
}

// Uint64 returns the integer resulting from truncating x toward zero. If x
// does not fit in a uint64, the result is saturated. The accuracy is Exact
// for integral x in range, Below or Above otherwise. NaN yields (0, Exact).
func (x Number) Uint64() (uint64, Accuracy) {
	switch {
	case x.IsNaN() || x.IsZero():
		return 0, Exact
	case x.neg:
		return 0, Above
	case x.IsInf() || x.exp > 0:
		return math.MaxUint64, Below
	}
	return uint64(x.wordAt(0)), x.truncAcc()
}

// Int64 returns the integer resulting from truncating x toward zero. If x
// does not fit in an int64, the result is saturated. The accuracy is Exact
// for integral x in range, Below or Above otherwise. NaN yields (0, Exact).
func (x Number) Int64() (int64, Accuracy) {
	switch {
	case x.IsNaN() || x.IsZero():
		return 0, Exact
	case x.IsInf() || x.exp > 0:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}
	u := uint64(x.wordAt(0))
	if x.neg {
		if u > 1<<63 {
			return math.MinInt64, Above
		}
		return -int64(u), x.truncAcc()
	}
	if u > math.MaxInt64 {
		return math.MaxInt64, Below
	}
	return int64(u), x.truncAcc()
}

// intWords returns the words of the integer part of the finite number x,
// least significant first.
func (x Number) intWords() nat {
	if len(x.mant) == 0 || x.exp < 0 {
		return nil
	}
	z := make(nat, x.exp+1)
	for i := range z {
		z[i] = x.wordAt(int64(i))
	}
	return z.norm()
}

// fracWords returns the words of the fractional part of the finite number x,
// least significant first, with the last word at exponent -1.
func (x Number) fracWords() nat {
	lo := x.MinExp()
	if len(x.mant) == 0 || lo >= 0 {
		return nil
	}
	z := make(nat, -lo)
	for i := range z {
		z[i] = x.wordAt(lo + int64(i))
	}
	return z
}

// Int returns the result of truncating x toward zero, or nil if x is an
// infinity or NaN. If a non-nil *big.Int argument z is provided, Int stores
// the result in z instead of allocating a new big.Int.
func (x Number) Int(z *big.Int) (*big.Int, Accuracy) {
	switch {
	case x.IsNaN():
		return nil, Exact
	case x.IsInf():
		return nil, makeAcc(x.neg)
	}
	if z == nil {
		z = new(big.Int)
	}
	m := x.intWords()
	buf := make([]byte, len(m)*_S)
	z.SetBytes(buf[m.bytes(buf):])
	if x.neg {
		z.Neg(z)
	}
	return z, x.truncAcc()
}

// maxFloatExp bounds the word exponents of finite non-zero values within the
// exponent range of a *big.Float.
const maxFloatExp = math.MaxInt32 / _W

// floatRange reports whether the finite non-zero value x is above (+1) or
// below (-1) the range of a *big.Float, or within it (0).
func (x Number) floatRange() int {
	switch {
	case x.exp > maxFloatExp:
		return 1
	case x.exp < -maxFloatExp-2:
		return -1
	}
	return 0
}

// Rat returns the exact value of x, or nil if x is an infinity or NaN. Rat
// also returns nil for values whose binary exponent is outside the range of a
// *big.Float. If a non-nil *big.Rat argument z is provided, Rat stores the
// result in z instead of allocating a new big.Rat.
func (x Number) Rat(z *big.Rat) *big.Rat {
	if !x.IsFinite() || len(x.mant) > 0 && x.floatRange() != 0 {
		return nil
	}
	if z == nil {
		z = new(big.Rat)
	}
	if len(x.mant) == 0 {
		return z.SetInt64(0)
	}
	buf := make([]byte, len(x.mant)*_S)
	num := new(big.Int).SetBytes(buf[x.mant.bytes(buf):])
	if x.neg {
		num.Neg(num)
	}
	shift := _W * x.MinExp()
	if shift >= 0 {
		return z.SetInt(num.Lsh(num, uint(shift)))
	}
	den := new(big.Int).Lsh(big.NewInt(1), uint(-shift))
	return z.SetFrac(num, den)
}

// Float returns x as a *big.Float. If a non-nil argument z is provided, Float
// stores the result in z instead of allocating a new big.Float. If z's
// precision is 0, it is changed to the precision needed to represent x
// exactly. NaN has no big.Float equivalent and yields (nil, Exact).
func (x Number) Float(z *big.Float) (*big.Float, Accuracy) {
	if x.IsNaN() {
		return nil, Exact
	}
	if z == nil {
		z = new(big.Float)
	}
	if z.Prec() == 0 {
		z.SetPrec(uint(max(len(x.mant), 1)) * _W)
	}
	switch {
	case x.IsInf():
		return z.SetInf(x.neg), Exact
	case x.IsZero():
		return z.SetInt64(0), Exact
	}
	buf := make([]byte, len(x.mant)*_S)
	num := new(big.Int).SetBytes(buf[x.mant.bytes(buf):])
	if x.neg {
		num.Neg(num)
	}
	switch x.floatRange() {
	case 1:
		return z.SetInf(x.neg), makeAcc(!x.neg)
	case -1:
		z.SetInt64(0)
		if x.neg {
			z.Neg(z)
		}
		return z, makeAcc(x.neg)
	}
	// x.exp is in range, so _W * x.MinExp() cannot overflow; big.Float
	// rounds what does not fit.
	shift := _W * x.MinExp()
	var m big.Float
	m.SetPrec(z.Prec()).SetMode(z.Mode()).SetInt(num)
	acc := m.Acc()
	z.SetMantExp(&m, int(shift))
	if z.IsInf() || z.Sign() == 0 {
		acc = z.Acc()
	}
	return z, bigAcc(acc)
}
