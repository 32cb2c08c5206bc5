// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-collecting arithmetic contexts for Numbers.
//
// Operators of the form
//
//	func (c *Context) UnaryOp(x numeric.Number) numeric.Number
//	func (c *Context) BinaryOp(x, y numeric.Number) numeric.Number
//
// return x.Op(args). Operations that may lose precision (division, parsing)
// keep c's precision, in fractional words.
//
// A Context catches errors: if an operation fails (division by zero,
// malformed literal) or generates a NaN from operands that are not NaN, the
// operation returns NaN and the error is recorded. Further operations with the
// context are no-ops returning NaN until (*Context).Err is called to check for
// errors. This allows evaluating a whole expression and checking for errors
// only once, in the manner of bufio.Scanner.
package context

import (
	"github.com/cockroachdb/errors"
	"github.com/db47h/numeric"
)

// ErrNaN is recorded when an operation on values that are not NaN yields NaN,
// like ∞ - ∞ or 0 × ∞.
var ErrNaN = errors.New("operation produced NaN")

// A Context is a wrapper around Numbers that facilitates management of
// precision and error handling.
type Context struct {
	prec int
	err  error
}

// New creates a new context with the given precision in fractional words. If
// prec is 0 or less, it is set to numeric.DefaultPrec.
func New(prec int) *Context {
	return new(Context).SetPrec(prec)
}

// Prec returns the precision of c in fractional words.
func (c *Context) Prec() int {
	return c.prec
}

// SetPrec sets c's precision to prec and returns c. If prec is 0 or less, it
// is set to numeric.DefaultPrec.
func (c *Context) SetPrec(prec int) *Context {
	if prec <= 0 {
		prec = numeric.DefaultPrec
	}
	c.prec = prec
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records an ErrNaN if z is NaN but none of the operands are, and
// returns z.
func (c *Context) check(op string, z numeric.Number, args ...numeric.Number) numeric.Number {
	if !z.IsNaN() {
		return z
	}
	for _, x := range args {
		if x.IsNaN() {
			return z
		}
	}
	c.err = errors.Wrapf(ErrNaN, "%s", errors.Safe(op))
	return z
}

// fail records err and returns NaN.
func (c *Context) fail(err error) numeric.Number {
	c.err = err
	return numeric.NaN()
}

// Add returns the sum x+y.
func (c *Context) Add(x, y numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return c.check("add", x.Add(y), x, y)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return c.check("sub", x.Sub(y), x, y)
}

// Mul returns the product x×y.
func (c *Context) Mul(x, y numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return c.check("mul", x.Mul(y), x, y)
}

// MulAdd returns x×y + u.
func (c *Context) MulAdd(x, y, u numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return c.check("muladd", x.Mul(y).Add(u), x, y, u)
}

// Neg returns -x.
func (c *Context) Neg(x numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x numeric.Number) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	return x.Abs()
}

// Quo returns x/d truncated after c's precision.
func (c *Context) Quo(x numeric.Number, d numeric.Word) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	z, err := x.QuoWord(d, c.prec)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// QuoRem returns the truncated quotient and the remainder of x/d.
func (c *Context) QuoRem(x numeric.Number, d numeric.Word) (q, r numeric.Number) {
	if c.err != nil {
		return numeric.NaN(), numeric.NaN()
	}
	q, r, err := x.QuoRemWord(d)
	if err != nil {
		return c.fail(err), numeric.NaN()
	}
	return q, r
}

// Rem returns the remainder of x/d.
func (c *Context) Rem(x numeric.Number, d numeric.Word) numeric.Number {
	_, r := c.QuoRem(x, d)
	return r
}

// Truncate returns x truncated toward zero after c's precision.
func (c *Context) Truncate(x numeric.Number) numeric.Number {
	return c.Quo(x, 1)
}

// Parse returns the value of the literal s, keeping c's precision for
// fractions. See numeric.ParsePrec.
func (c *Context) Parse(s string) numeric.Number {
	if c.err != nil {
		return numeric.NaN()
	}
	z, err := numeric.ParsePrec(s, c.prec)
	if err != nil {
		return c.fail(err)
	}
	return z
}

// Float64 returns the float64 value nearest to x, or a float64 NaN if c is in
// an error state.
func (c *Context) Float64(x numeric.Number) float64 {
	if c.err != nil {
		x = numeric.NaN()
	}
	f, _ := x.Float64()
	return f
}
