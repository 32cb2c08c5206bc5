// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keyenc implements an order-preserving byte encoding of
// numeric.Number values, suitable for keys of sorted key-value stores.
//
// For any two numbers x and y,
//
//	bytes.Compare(EncodeAscending(nil, x), EncodeAscending(nil, y)) == x.Cmp(y)
//
// and the descending encoding reverses the order. Encoded values are self
// delimiting: they can be concatenated with other keys and decoded back.
//
// The encoding starts with a marker byte splitting numbers into ordered
// classes:
//
//	-Inf < negative < 0 < positive < +Inf < NaN
//
// Finite non-zero values follow with the exponent of their most significant
// word, as a big-endian uint64 with its sign bit flipped, then every word from
// the most significant, each one prefixed with a continuation byte, and a
// terminator. All bytes after the marker of negative values are inverted, so
// that larger magnitudes sort first.
package keyenc

import (
	"encoding/binary"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/db47h/numeric"
)

const (
	markerNegInf = 0x02
	markerNeg    = 0x03
	markerZero   = 0x04
	markerPos    = 0x05
	markerPosInf = 0x06
	markerNaN    = 0x07

	continuation = 0x01
	terminator   = 0x00
)

// EncodeAscending returns the resulting byte slice with the encoded number
// appended to b.
func EncodeAscending(b []byte, x numeric.Number) []byte {
	return encode(b, x, 0)
}

// EncodeDescending is the descending version of EncodeAscending.
func EncodeDescending(b []byte, x numeric.Number) []byte {
	return encode(b, x, 0xff)
}

// encode appends the ascending encoding of x to b, with every byte xored with
// mask.
func encode(b []byte, x numeric.Number, mask byte) []byte {
	x = x.Normalize()
	switch {
	case x.IsNaN():
		return append(b, markerNaN^mask)
	case x.IsInf() && x.Signbit():
		return append(b, markerNegInf^mask)
	case x.IsInf():
		return append(b, markerPosInf^mask)
	case x.IsZero():
		return append(b, markerZero^mask)
	}

	if x.Signbit() {
		b = append(b, markerNeg^mask)
		mask ^= 0xff
	} else {
		b = append(b, markerPos^mask)
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(x.Exp())^1<<63)
	b = appendMasked(b, tmp[:], mask)
	d := x.Digits()
	for i := len(d) - 1; i >= 0; i-- {
		b = append(b, continuation^mask)
		binary.BigEndian.PutUint64(tmp[:], uint64(d[i]))
		b = appendMasked(b, tmp[:], mask)
	}
	return append(b, terminator^mask)
}

func appendMasked(b, s []byte, mask byte) []byte {
	for _, c := range s {
		b = append(b, c^mask)
	}
	return b
}

// DecodeAscending decodes a number encoded with EncodeAscending at the start
// of buf. It returns the remaining bytes and the decoded value. Errors wrap
// numeric.ErrBadEncoding.
func DecodeAscending(buf []byte) ([]byte, numeric.Number, error) {
	return decode(buf, 0)
}

// DecodeDescending decodes numbers encoded with EncodeDescending.
func DecodeDescending(buf []byte) ([]byte, numeric.Number, error) {
	return decode(buf, 0xff)
}

func decode(buf []byte, mask byte) ([]byte, numeric.Number, error) {
	if len(buf) == 0 {
		return nil, numeric.Number{}, errors.Wrap(numeric.ErrBadEncoding, "keyenc: empty buffer")
	}
	neg := false
	switch m := buf[0] ^ mask; m {
	case markerNaN:
		return buf[1:], numeric.NaN(), nil
	case markerNegInf:
		return buf[1:], numeric.Inf(-1), nil
	case markerPosInf:
		return buf[1:], numeric.Inf(1), nil
	case markerZero:
		return buf[1:], numeric.Zero(), nil
	case markerNeg:
		neg = true
		mask ^= 0xff
	case markerPos:
	default:
		return nil, numeric.Number{}, errors.Wrapf(numeric.ErrBadEncoding, "keyenc: unknown marker %#x", m)
	}
	orig := buf
	buf = buf[1:]

	var tmp [8]byte
	read := func() bool {
		if len(buf) < len(tmp) {
			return false
		}
		for i := range tmp {
			tmp[i] = buf[i] ^ mask
		}
		buf = buf[len(tmp):]
		return true
	}
	if !read() {
		return nil, numeric.Number{}, errors.Wrapf(numeric.ErrBadEncoding, "keyenc: truncated exponent in %#x", orig)
	}
	exp := int64(binary.BigEndian.Uint64(tmp[:]) ^ 1<<63)

	var words []numeric.Word
	for {
		if len(buf) == 0 {
			return nil, numeric.Number{}, errors.Wrapf(numeric.ErrBadEncoding, "keyenc: did not find terminator in %#x", orig)
		}
		c := buf[0] ^ mask
		buf = buf[1:]
		if c == terminator {
			break
		}
		if c != continuation || !read() {
			return nil, numeric.Number{}, errors.Wrapf(numeric.ErrBadEncoding, "keyenc: invalid word in %#x", orig)
		}
		words = append(words, numeric.Word(binary.BigEndian.Uint64(tmp[:])))
	}
	if len(words) == 0 || words[0] == 0 || words[len(words)-1] == 0 {
		return nil, numeric.Number{}, errors.Wrapf(numeric.ErrBadEncoding, "keyenc: non-canonical digits in %#x", orig)
	}
	// words are most significant first
	slices.Reverse(words)
	return buf, numeric.New(neg, words, exp), nil
}
