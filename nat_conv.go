// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements decimal conversions of nats.

package numeric

const (
	// _DW is the number of decimal digits that always fit in a Word.
	_DW = 19
	// _DB = 10**_DW is the largest power of 10 that fits in a Word.
	_DB Word = 10000000000000000000
)

var pow10tab = [...]Word{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10 returns 10**n for n <= _DW.
func pow10(n int) Word {
	return pow10tab[n]
}

// mulPow10 sets z to x*10**n and returns z.
func (z nat) mulPow10(x nat, n int64) nat {
	z = z.set(x)
	for ; n >= _DW; n -= _DW {
		z = z.mulAddWW(z, _DB, 0)
	}
	if n > 0 {
		z = z.mulAddWW(z, pow10(int(n)), 0)
	}
	return z
}

// utoa returns the decimal representation of x.
func (x nat) utoa() []byte {
	if len(x) == 0 {
		return []byte("0")
	}

	// 64*log10(2) < 20 decimal digits per word
	s := make([]byte, len(x)*20)
	i := len(s)

	// preserve x, create local copy for in-place division
	q := nat(nil).set(x)
	for len(q) > 0 {
		// extract least significant, base _DB "digit"
		var r Word
		q, r = q.divW(q, _DB)
		for j := 0; j < _DW && i > 0; j++ {
			i--
			// avoid % computation since r%10 == r - int(r/10)*10
			t := r / 10
			s[i] = '0' + byte(r-t*10)
			r = t
		}
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	for s[i] == '0' {
		i++
	}
	return s[i:]
}

// ftoa returns the decimal digits of the fraction x / 2**(64*len(x)), without
// trailing zeros. Every step multiplies the fraction by 10**19 and emits the
// integral word, which always terminates since 2**(64*len(x)) divides
// 10**(64*len(x)).
func (x nat) ftoa() []byte {
	f := nat(nil).set(x)
	f = f[f.lszw():]
	var s []byte
	for len(f) > 0 {
		c := mulAddVWW(f, f, _DB, 0)
		var buf [_DW]byte
		for j := _DW - 1; j >= 0; j-- {
			t := c / 10
			buf[j] = '0' + byte(c-t*10)
			c = t
		}
		s = append(s, buf[:]...)
		f = f[f.lszw():]
	}
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	return s[:i]
}
