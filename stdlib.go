// This file mirrors types and constants from math/big.

package numeric

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Internal representation: The magnitude of a nonzero finite Number x is
// stored in x.mant, least significant word first, and x.exp holds the power
// of 2**64 of the most significant word:
//
//   |x| = sum(x.mant[i] * 2**(64*(x.exp - (len(x.mant)-1) + i)))
//
// A non-finite Number ignores x.mant and x.exp.
//
// x                 form           neg      mant         exp
// ----------------------------------------------------------------
// 0                 Finite         false    empty        0
// 0 < |x| < +Inf    Finite         sign     mantissa     exponent
// ±Inf              Infinite       sign     -            -
// NaN               Indeterminate  false    -            -

// A Form describes the internal representation of a Number.
type Form byte

// The Form value order is relevant - do not change!
const (
	Finite Form = iota
	Infinite
	Indeterminate
)

func (f Form) String() string {
	switch f {
	case Finite:
		return "finite"
	case Infinite:
		return "inf"
	case Indeterminate:
		return "NaN"
	}
	return fmt.Sprintf("Form(%d)", byte(f))
}

// SafeValue implements redact.SafeValue.
func (Form) SafeValue() {}

// Accuracy describes the rounding error produced by the most recent
// conversion that generated a value, relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return fmt.Sprintf("Accuracy(%d)", int8(a))
}

// SafeValue implements redact.SafeValue.
func (Accuracy) SafeValue() {}

var (
	_ redact.SafeValue = Finite
	_ redact.SafeValue = Exact
)

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

func bigAcc(acc big.Accuracy) Accuracy {
	return Accuracy(acc)
}

// Errors returned by division and literal parsing. Use errors.Is to test for
// them.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNoDigits         = errors.New("number has no digits")
	ErrMultiplePoints   = errors.New("more than one decimal point")
	ErrDanglingExponent = errors.New("exponent has no digits")
	ErrInvalidDigit     = errors.New("invalid character in number")
	ErrExponentRange    = errors.New("exponent out of range")
	ErrBadEncoding      = errors.New("invalid encoding")
)
