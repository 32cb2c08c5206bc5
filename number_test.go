// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func TestNew_normalize(t *testing.T) {
	for i, td := range []struct {
		neg    bool
		digits []Word
		exp    int64
		mant   []Word
		wexp   int64
	}{
		{false, nil, 7, nil, 0},
		{true, []Word{0, 0}, -3, nil, 0},
		{false, []Word{1}, 0, []Word{1}, 0},
		// leading (most significant) zero words decrement exp
		{false, []Word{5, 0, 0}, 2, []Word{5}, 0},
		// trailing (least significant) zero words leave exp untouched
		{true, []Word{0, 0, 5}, 4, []Word{5}, 4},
		{false, []Word{0, 3, 0, 4, 0}, 1, []Word{3, 0, 4}, 0},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x := New(td.neg, td.digits, td.exp)
			x.validate()
			require.Equal(t, td.mant, x.Digits(), spew.Sdump(x))
			require.Equal(t, td.wexp, x.Exp())
			if len(td.mant) == 0 {
				require.True(t, x.IsZero())
				require.False(t, x.Signbit(), "zero must be positive")
			} else {
				require.Equal(t, td.neg, x.Signbit())
			}
		})
	}
}

func TestNew_copies(t *testing.T) {
	d := []Word{1, 2}
	x := New(false, d, 0)
	d[0] = 42
	require.Equal(t, []Word{1, 2}, x.Digits())
	x.Digits()[0] = 42
	require.Equal(t, []Word{1, 2}, x.Digits())
}

func TestNormalize(t *testing.T) {
	raw := Number{mant: nat{0, 9, 0}, exp: 5, neg: true}
	x := raw.Normalize()
	x.validate()
	require.Equal(t, []Word{9}, x.Digits())
	require.Equal(t, int64(4), x.Exp())
	require.True(t, x.Equal(x.Normalize()))
	require.True(t, raw.Equal(x))

	require.True(t, Number{form: Indeterminate, neg: true}.Normalize().Equal(NaN()))
	require.False(t, Number{form: Indeterminate, neg: true}.Normalize().Signbit())
	require.True(t, Number{form: Infinite, neg: true, exp: 3}.Normalize().Equal(Inf(-1)))
}

func TestPredicates(t *testing.T) {
	for i, td := range []struct {
		x                             Number
		zero, inf, finite, nan, isInt bool
		sign                          int
		form                          Form
	}{
		{Zero(), true, false, true, false, true, 0, Finite},
		{Number{}, true, false, true, false, true, 0, Finite},
		{FromInt64(-3), false, false, true, false, true, -1, Finite},
		{FromFloat64(0.5), false, false, true, false, false, 1, Finite},
		{New(false, []Word{1, 1}, 0), false, false, true, false, false, 1, Finite},
		{Inf(1), false, true, false, false, false, 1, Infinite},
		{Inf(-1), false, true, false, false, false, -1, Infinite},
		{NaN(), false, false, false, true, false, 0, Indeterminate},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			x := td.x
			require.Equal(t, td.zero, x.IsZero())
			require.Equal(t, td.inf, x.IsInf())
			require.Equal(t, td.finite, x.IsFinite())
			require.Equal(t, td.nan, x.IsNaN())
			require.Equal(t, td.isInt, x.IsInt())
			require.Equal(t, td.sign, x.Sign())
			require.Equal(t, td.form, x.Form())
		})
	}
}

func TestEqual_Hash(t *testing.T) {
	a := New(false, []Word{0, 1, 2}, 3)
	b := Number{mant: nat{1, 2, 0}, exp: 4}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	// negative zero is zero
	nz := Number{neg: true}
	require.True(t, nz.Equal(Zero()))
	require.Equal(t, Zero().Hash(), nz.Hash())

	require.True(t, NaN().Equal(NaN()))
	require.False(t, Inf(1).Equal(Inf(-1)))
	require.NotEqual(t, Inf(1).Hash(), Inf(-1).Hash())
	require.False(t, FromInt64(1).Equal(FromInt64(-1)))
	require.NotEqual(t, FromInt64(1).Hash(), FromInt64(-1).Hash())
	// same words, different place
	require.False(t, FromInt64(1).Equal(FromInt64(1).Shift(1)))
	require.NotEqual(t, FromInt64(1).Hash(), FromInt64(1).Shift(1).Hash())
}

func TestClone(t *testing.T) {
	x := New(true, []Word{3, 4}, 1)
	y := x.Clone()
	require.True(t, x.Equal(y))
	y.mant[0] = 99
	require.Equal(t, []Word{3, 4}, x.Digits())
	require.True(t, Zero().Clone().Equal(Zero()))
}

func TestTruncate(t *testing.T) {
	x := New(true, []Word{1, 2, 3}, 5)
	require.True(t, x.Truncate(3).Equal(x))
	require.True(t, x.Truncate(2).Equal(New(true, []Word{2, 3}, 5)))
	require.True(t, x.Truncate(1).Equal(New(true, []Word{3}, 5)))
	require.True(t, x.Truncate(0).IsZero())
	// dropping words can expose new zero words at the low end
	y := New(false, []Word{7, 0, 1}, 0)
	z := y.Truncate(2)
	z.validate()
	require.True(t, z.Equal(New(false, []Word{1}, 0)))
	require.True(t, Inf(-1).Truncate(1).Equal(Inf(-1)))
}

func TestValidate(t *testing.T) {
	for i, x := range []Number{
		{mant: nat{1, 0}},
		{mant: nat{0, 1}, exp: 2},
		{neg: true},
		{exp: 3},
		{form: Infinite, mant: nat{1}},
		{form: Indeterminate, neg: true},
		{form: 7},
		{mant: nat{1, 1}, exp: math.MinInt64},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.Panics(t, x.validate)
			// operations validate their inputs
			require.Panics(t, func() { x.Sign() })
		})
	}
	require.NotPanics(t, func() { FromInt64(-3).Sign() })
}

func TestNew_exponentRange(t *testing.T) {
	// words below math.MinInt64 cannot be represented
	require.True(t, New(false, []Word{1, 1}, math.MinInt64).IsZero())
	require.True(t, New(true, []Word{5, 0}, math.MinInt64).IsZero())
	x := New(false, []Word{0, 5}, math.MinInt64+1)
	x.validate()
	require.Equal(t, int64(math.MinInt64+1), x.Exp())
	require.Equal(t, []Word{5}, x.Digits())
	y := New(true, []Word{7}, math.MinInt64)
	y.validate()
	require.Equal(t, int64(math.MinInt64), y.MinExp())
	require.Equal(t, -1, y.Sign())
}

func TestShift(t *testing.T) {
	x := FromInt64(-5)
	require.True(t, x.Shift(2).Equal(New(true, []Word{5}, 2)))
	require.True(t, x.Shift(-1).Equal(New(true, []Word{5}, -1)))
	require.Equal(t, int64(math.MaxInt64), x.Shift(math.MaxInt64).Exp())
	require.True(t, x.Shift(2).Shift(math.MaxInt64).Equal(Inf(-1)))
	require.True(t, x.Shift(-2).Shift(math.MinInt64).IsZero())
	require.True(t, Zero().Shift(3).IsZero())
	require.Equal(t, int64(0), Zero().Shift(3).Exp())
}

func TestForm_String(t *testing.T) {
	require.Equal(t, "finite", Finite.String())
	require.Equal(t, "inf", Infinite.String())
	require.Equal(t, "NaN", Indeterminate.String())
	require.Equal(t, "Below", Below.String())
	require.Equal(t, "Exact", Exact.String())
	require.Equal(t, "Above", Above.String())
}
