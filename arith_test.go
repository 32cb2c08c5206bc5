// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// rndNumber returns a random finite Number with up to n words and an exponent
// in [-3, 3], with a bias toward small and extreme words.
func rndNumber(n int) Number {
	words := make([]Word, rnd.Intn(n+1))
	for i := range words {
		switch rnd.Intn(4) {
		case 0:
			words[i] = 0
		case 1:
			words[i] = ^Word(0)
		default:
			words[i] = rndW()
		}
	}
	return New(rnd.Intn(2) == 0, words, int64(rnd.Intn(7)-3))
}

func ratOf(x Number) *big.Rat {
	return x.Rat(nil)
}

func TestArith_scenarios(t *testing.T) {
	require.True(t, FromInt64(154).Add(FromInt64(145)).Equal(FromInt64(299)))

	z := FromInt64(-1).Add(FromInt64(1))
	z.validate()
	require.True(t, z.IsZero())
	require.False(t, z.Signbit())
	require.Equal(t, int64(0), z.Exp())
	require.Nil(t, z.Digits())

	q, r, err := FromInt64(100).QuoRemWord(7)
	require.NoError(t, err)
	require.True(t, q.Equal(FromInt64(14)), spew.Sdump(q))
	require.True(t, r.Equal(FromInt64(2)), spew.Sdump(r))

	// carry out of the most significant word
	m := FromUint64(^uint64(0))
	s := m.Add(FromInt64(1))
	require.Equal(t, []Word{1}, s.Digits())
	require.Equal(t, int64(1), s.Exp())

	// borrow across words
	d := s.Sub(FromInt64(1))
	require.True(t, d.Equal(m))
}

func TestArith_oracle(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x, y := rndNumber(4), rndNumber(4)
		rx, ry := ratOf(x), ratOf(y)

		for _, td := range []struct {
			op   string
			got  Number
			want *big.Rat
		}{
			{"+", x.Add(y), new(big.Rat).Add(rx, ry)},
			{"-", x.Sub(y), new(big.Rat).Sub(rx, ry)},
			{"*", x.Mul(y), new(big.Rat).Mul(rx, ry)},
			{"neg", x.Neg(), new(big.Rat).Neg(rx)},
			{"abs", x.Abs(), new(big.Rat).Abs(rx)},
		} {
			td.got.validate()
			if ratOf(td.got).Cmp(td.want) != 0 {
				t.Fatalf("%v %s %v = %v, expected %v", x, td.op, y, td.got, td.want.FloatString(40))
			}
		}
	}
}

func TestArith_special(t *testing.T) {
	one, pinf, ninf, nan := FromInt64(1), Inf(1), Inf(-1), NaN()
	for i, td := range []struct {
		got, want Number
	}{
		{nan.Add(one), nan},
		{one.Sub(nan), nan},
		{pinf.Add(one), pinf},
		{one.Sub(pinf), ninf},
		{ninf.Add(ninf), ninf},
		{pinf.Add(ninf), nan},
		{pinf.Sub(pinf), nan},
		{ninf.Sub(pinf), ninf},
		{pinf.Mul(FromInt64(-2)), ninf},
		{ninf.Mul(ninf), pinf},
		{pinf.Mul(Zero()), nan},
		{Zero().Mul(ninf), nan},
		{nan.Mul(Zero()), nan},
		{nan.Neg(), nan},
		{ninf.Neg(), pinf},
		{ninf.Abs(), pinf},
		{Zero().Neg(), Zero()},
		{FromInt64(3).Mul(FromInt64(-2)), FromInt64(-6)},
		{FromInt64(-3).Mul(FromInt64(-2)), FromInt64(6)},
		{FromInt64(-3).Mul(Zero()), Zero()},
		{FromInt64(3).Sub(FromInt64(3)), Zero()},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			require.True(t, td.got.Equal(td.want), "got %v, expected %v", td.got, td.want)
			if td.got.IsZero() {
				require.False(t, td.got.Signbit())
			}
		})
	}
}

func TestQuoRemWord(t *testing.T) {
	for i, td := range []struct {
		x    Number
		d    Word
		q, r Number
	}{
		{FromInt64(100), 7, FromInt64(14), FromInt64(2)},
		{FromInt64(-100), 7, FromInt64(-14), FromInt64(-2)},
		{FromInt64(6), 3, FromInt64(2), Zero()},
		{FromInt64(5), 10, Zero(), FromInt64(5)},
		{FromFloat64(0.5), 3, Zero(), FromFloat64(0.5)},
		{FromFloat64(7.5), 2, FromInt64(3), FromFloat64(1.5)},
		{New(false, []Word{1}, 1), 2, FromUint64(1 << 63), Zero()},
		{New(false, []Word{5}, 2), 1, New(false, []Word{5}, 2), Zero()},
		{Inf(-1), 3, Inf(-1), Zero()},
		{NaN(), 3, NaN(), NaN()},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			q, r, err := td.x.QuoRemWord(td.d)
			require.NoError(t, err)
			require.True(t, q.Equal(td.q), "q = %v, expected %v", q, td.q)
			require.True(t, r.Equal(td.r), "r = %v, expected %v", r, td.r)
			rr, err := td.x.RemWord(td.d)
			require.NoError(t, err)
			require.True(t, rr.Equal(r))
		})
	}

	_, _, err := FromInt64(1).QuoRemWord(0)
	require.True(t, errors.Is(err, ErrDivisionByZero))
	_, err = FromInt64(1).QuoWord(0, 1)
	require.True(t, errors.Is(err, ErrDivisionByZero))
	_, err = NaN().RemWord(0)
	require.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestQuoRemWord_identity(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := rndNumber(4)
		d := rndW()
		if i%2 == 0 {
			d = Word(rnd.Intn(100) + 1)
		}
		if d == 0 {
			continue
		}
		q, r, err := x.QuoRemWord(d)
		require.NoError(t, err)
		require.True(t, q.IsInt())
		require.True(t, x.Equal(q.Mul(FromUint64(uint64(d))).Add(r)), "x = %v, d = %d, q = %v, r = %v", x, d, q, r)
		// |r| < d and r has the sign of x
		require.True(t, r.CmpAbs(FromUint64(uint64(d))) < 0)
		require.True(t, r.IsZero() || r.Signbit() == x.Signbit())
	}
}

func TestQuoWord(t *testing.T) {
	third, err := FromInt64(1).QuoWord(3, 2)
	require.NoError(t, err)
	require.Equal(t, []Word{0x5555555555555555, 0x5555555555555555}, third.Digits())
	require.Equal(t, int64(-1), third.Exp())

	// exact results are not padded
	half, err := FromInt64(-1).QuoWord(2, 5)
	require.NoError(t, err)
	require.True(t, half.Equal(FromFloat64(-0.5)))

	// results below the precision truncate to 0
	z, err := New(false, []Word{1}, -3).QuoWord(2, 2)
	require.NoError(t, err)
	require.True(t, z.IsZero())

	z, err = FromInt64(7).QuoWord(2, -1)
	require.NoError(t, err)
	require.True(t, z.Equal(FromInt64(3)))

	for i := 0; i < 500; i++ {
		x := rndNumber(3)
		d := rndW() | 1
		prec := rnd.Intn(4)
		q, err := x.QuoWord(d, prec)
		require.NoError(t, err)
		// |x/d - q| < 2**(-64*prec), with q truncated toward zero
		exact := new(big.Rat).Quo(ratOf(x), new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(d))))
		diff := new(big.Rat).Sub(exact, ratOf(q))
		ulp := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(64*prec)))
		require.True(t, diff.Sign() == 0 || diff.Sign() == exact.Sign(), "q = %v not truncated toward zero", q)
		require.True(t, new(big.Rat).Abs(diff).Cmp(ulp) < 0, "x = %v, d = %d, prec = %d, q = %v", x, d, prec, q)
	}
}

func TestArith_exponentRange(t *testing.T) {
	huge := New(false, []Word{1}, 1<<62)
	require.True(t, huge.Mul(huge).Equal(Inf(1)))
	require.True(t, huge.Mul(huge.Neg()).Equal(Inf(-1)))
	require.Equal(t, 1, huge.Mul(huge).Cmp(huge))

	tiny := New(false, []Word{1}, math.MinInt64/2-1)
	sq := tiny.Mul(tiny)
	require.True(t, sq.IsZero(), spew.Sdump(sq))
	require.Equal(t, -1, sq.Cmp(tiny))
	require.True(t, tiny.Mul(huge).Equal(New(false, []Word{1}, math.MinInt64/2-1+1<<62)))

	two := FromInt64(2)
	top := New(false, []Word{1 << 63}, math.MaxInt64-1)
	require.True(t, top.Mul(two).Equal(New(false, []Word{1}, math.MaxInt64)))
	edge := New(true, []Word{1 << 63}, math.MaxInt64)
	require.True(t, edge.Mul(two).Equal(Inf(-1)))
	require.True(t, edge.Mul(FromInt64(1)).Equal(edge))

	// carry out of the top word
	require.True(t, edge.Add(edge).Equal(Inf(-1)))
	require.True(t, edge.Sub(edge.Neg()).Equal(Inf(-1)))
	require.True(t, edge.Neg().Add(edge.Neg()).Equal(Inf(1)))
	sum := New(false, []Word{1 << 62}, math.MaxInt64).Add(New(false, []Word{1 << 62}, math.MaxInt64))
	require.True(t, sum.Equal(New(false, []Word{1 << 63}, math.MaxInt64)))
	require.Equal(t, "∞", edge.Neg().Add(edge.Neg()).String())
}
