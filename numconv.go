// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion functions.

package numeric

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultPrec is the number of fractional words Parse keeps when a literal
// has no exact binary representation.
const DefaultPrec = 2

// MaxExp10 is the largest absolute decimal exponent accepted in literals.
const MaxExp10 = 1 << 20

var _ fmt.Scanner = (*Number)(nil)
var _ fmt.Formatter = Number{}

// A ParseError describes a malformed numeric literal. Pos is the byte offset
// in Text of the offending character. Err is one of the Err sentinels of this
// package.
type ParseError struct {
	Text string
	Pos  int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("numeric: invalid literal %q at offset %d: %v", e.Text, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse is like ParsePrec(s, DefaultPrec).
func Parse(s string) (Number, error) {
	return ParsePrec(s, DefaultPrec)
}

// MustParse is like Parse but panics if s is not a valid literal. It
// simplifies initialization of global variables and tests.
func MustParse(s string) Number {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// ParsePrec parses the decimal literal s. The literal must be of the form:
//
//	number   = [ sign ] ( float | "Inf" | "inf" | "Infinity" | "∞" | "NaN" | "nan" ) .
//	sign     = "+" | "-" .
//	float    = mantissa [ exponent ] .
//	mantissa = digits [ "." [ digits ] ] | "." digits .
//	exponent = ( "e" | "E" ) [ sign ] digits .
//
// Underscores and commas between digits are ignored. Integers are converted
// exactly whatever their size. Fractions and negative exponents keep at least
// prec fractional words, and at least prec words below the most significant
// one, and are truncated toward zero beyond that; literals with an exact
// binary representation (like the output of Text) are always converted
// exactly.
//
// On failure, the returned error is a *ParseError.
func ParsePrec(s string, prec int) (Number, error) {
	fail := func(pos int, err error) (Number, error) {
		return Number{}, &ParseError{Text: s, Pos: pos, Err: err}
	}

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	switch s[i:] {
	case "Inf", "inf", "Infinity", "infinity", "∞":
		return Inf(sign(neg)), nil
	case "NaN", "nan":
		return NaN(), nil
	}

	var (
		z      nat
		di     Word // current chunk
		n      int  // digits in di
		digits int
		frac   int64
		point  = -1
	)
mantissa:
	for ; i < len(s); i++ {
		ch := s[i]
		switch {
		case '0' <= ch && ch <= '9':
			di = di*10 + Word(ch-'0')
			n++
			digits++
			if point >= 0 {
				frac++
			}
			if n == _DW {
				z = z.mulAddWW(z, _DB, di)
				di, n = 0, 0
			}
		case ch == '_' || ch == ',':
		case ch == '.':
			if point >= 0 {
				return fail(i, ErrMultiplePoints)
			}
			point = i
		case ch == 'e' || ch == 'E':
			break mantissa
		default:
			return fail(i, ErrInvalidDigit)
		}
	}
	if digits == 0 {
		return fail(i, ErrNoDigits)
	}
	if n > 0 {
		z = z.mulAddWW(z, pow10(n), di)
	}

	var exp int64
	if i < len(s) {
		e := i
		i++
		eneg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			eneg = s[i] == '-'
			i++
		}
		edigits := 0
		for ; i < len(s); i++ {
			ch := s[i]
			switch {
			case '0' <= ch && ch <= '9':
				edigits++
				exp = exp*10 + int64(ch-'0')
				if exp > MaxExp10 {
					return fail(e, ErrExponentRange)
				}
			case ch == '_':
			default:
				return fail(i, ErrInvalidDigit)
			}
		}
		if edigits == 0 {
			return fail(e, ErrDanglingExponent)
		}
		if eneg {
			exp = -exp
		}
	}

	d := exp - frac
	if d > 0 {
		z = z.mulPow10(z, d)
	}
	x := makeNumber(neg, z, int64(len(z))-1)
	if d >= 0 || x.IsZero() {
		return x, nil
	}

	// 10**k = 2**k * 5**k, so k decimal places need at most k bits of binary
	// fraction plus one guard word. Dividing by 10**k also moves the most
	// significant word at most ceil(k*log2(10)/64) words down, and prec words
	// are kept below it. 3.3220 > log2(10).
	k10 := -d
	down := (k10*33220/10000 + _W) / _W
	p := max(int64(prec), (k10+_W-1)/_W+1, int64(prec)+down-x.exp)
	for d < 0 {
		k := min(-d, _DW)
		x, _ = x.QuoWord(pow10(int(k)), int(p))
		d += k
	}
	return x, nil
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned literal. It accepts the verbs 'v', 'd', 'e', 'E', 'f', 'F', 'g' and
// 'G'.
func (z *Number) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'v', 'd', 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		return errors.Newf("numeric: invalid verb %q for Number.Scan", ch)
	}
	s.SkipSpace()
	tok, err := s.Token(false, func(r rune) bool {
		return r == '+' || r == '-' || r == '.' || r == '_' || r == '∞' ||
			'0' <= r && r <= '9' ||
			'a' <= r && r <= 'z' ||
			'A' <= r && r <= 'Z'
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	x, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*z = x
	return nil
}

// appendHex appends the digit words of the finite number x in hexadecimal,
// most significant first and separated by underscores.
func (x Number) appendHex(buf []byte, upper bool) []byte {
	m := x.mant
	if len(m) == 0 {
		return append(buf, '0')
	}
	digits := "0123456789abcdef"
	if upper {
		digits = "0123456789ABCDEF"
	}
	hex := func(w Word, width int) {
		var tmp [16]byte
		i := len(tmp)
		for w != 0 || len(tmp)-i < width {
			i--
			tmp[i] = digits[w&15]
			w >>= 4
		}
		buf = append(buf, tmp[i:]...)
	}
	hex(m[len(m)-1], 1)
	for i := len(m) - 2; i >= 0; i-- {
		buf = append(buf, '_')
		hex(m[i], 16)
	}
	return buf
}

// approx returns a short scientific approximation of x. It saturates to ±Inf
// or ±0 outside the exponent range of a *big.Float.
func (x Number) approx() string {
	f, _ := x.Float(new(big.Float).SetPrec(53))
	return f.Text('e', -1)
}

// String returns a debugging representation of x: the sign, the digit words
// in hexadecimal from the most significant, the exponent of the most
// significant word and a decimal approximation, like in
//
//	-0x1_8000000000000000 w1 (-2.7670116110564327e+19)
//
// Infinities are "∞" and "-∞", the indeterminate value is "NaN".
func (x Number) String() string {
	switch x.form {
	case Indeterminate:
		return "NaN"
	case Infinite:
		if x.neg {
			return "-∞"
		}
		return "∞"
	}
	var b strings.Builder
	if x.neg {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	b.WriteString("0x")
	b.Write(x.appendHex(nil, false))
	b.WriteString(" w")
	b.WriteString(strconv.FormatInt(x.exp, 10))
	b.WriteString(" (")
	b.WriteString(x.approx())
	b.WriteByte(')')
	return b.String()
}

// Text returns the exact decimal representation of x. Every finite Number
// has a finite decimal expansion. Infinities are "∞" and "-∞", the
// indeterminate value is "NaN". Parse(x.Text()) returns x.
func (x Number) Text() string {
	return string(x.appendText(nil))
}

func (x Number) appendText(buf []byte) []byte {
	switch x.form {
	case Indeterminate:
		return append(buf, "NaN"...)
	case Infinite:
		if x.neg {
			return append(buf, "-∞"...)
		}
		return append(buf, "∞"...)
	}
	if x.neg {
		buf = append(buf, '-')
	}
	buf = append(buf, x.intWords().utoa()...)
	if f := x.fracWords(); len(f) > 0 {
		buf = append(buf, '.')
		buf = append(buf, f.ftoa()...)
	}
	return buf
}

// Format implements fmt.Formatter. It accepts
//
//	'v', 's'           the String representation
//	'd'                the integer part in decimal (Text for special values)
//	'x', 'X'           the digit words in hexadecimal
//	'e', 'E', 'f', 'F', 'g', 'G'
//	                   as *big.Float, using the fmt precision, if any
//
// Width and flags are honored by the floating point verbs only.
func (x Number) Format(s fmt.State, format rune) {
	switch format {
	case 'v', 's':
		io.WriteString(s, x.String())
	case 'd':
		if !x.IsFinite() {
			io.WriteString(s, x.Text())
			return
		}
		m := x.intWords()
		var buf []byte
		if x.neg && len(m) > 0 {
			buf = append(buf, '-')
		} else if s.Flag('+') {
			buf = append(buf, '+')
		}
		s.Write(append(buf, m.utoa()...))
	case 'x', 'X':
		if !x.IsFinite() {
			io.WriteString(s, x.Text())
			return
		}
		var buf []byte
		if x.neg {
			buf = append(buf, '-')
		}
		if s.Flag('#') {
			buf = append(buf, '0', byte(format))
		}
		s.Write(x.appendHex(buf, format == 'X'))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if x.IsNaN() {
			io.WriteString(s, "NaN")
			return
		}
		f, _ := x.Float(nil)
		f.Format(s, format)
	default:
		fmt.Fprintf(s, "%%!%c(numeric.Number=%s)", format, x.String())
	}
}
