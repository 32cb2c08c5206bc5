// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Numbers.

package numeric

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Binary codec version. Permits backward-compatible changes to the encoding.
const numberBinaryVersion byte = 1

// appendBinary appends the binary encoding of x to buf:
//
//	version    1 byte
//	form|neg   1 byte, form<<1 | neg
//	exp        8 bytes, big-endian; finite non-zero values only
//	words      8 bytes each, big-endian, most significant word first
func (x Number) appendBinary(buf []byte) []byte {
	b := byte(x.form&3) << 1
	if x.neg {
		b |= 1
	}
	buf = append(buf, numberBinaryVersion, b)
	if x.form != Finite || len(x.mant) == 0 {
		return buf
	}
	buf = binary.BigEndian.AppendUint64(buf, uint64(x.exp))
	for i := len(x.mant) - 1; i >= 0; i-- {
		buf = binary.BigEndian.AppendUint64(buf, uint64(x.mant[i]))
	}
	return buf
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (x Number) MarshalBinary() ([]byte, error) {
	x = x.Normalize()
	return x.appendBinary(make([]byte, 0, 2+_S+len(x.mant)*_S)), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// decoded value is normalized.
func (z *Number) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return errors.Wrapf(ErrBadEncoding, "numeric: short buffer (%d bytes)", len(buf))
	}
	if buf[0] != numberBinaryVersion {
		return errors.Wrapf(ErrBadEncoding, "numeric: encoding version %d not supported", buf[0])
	}
	form := Form(buf[1] >> 1)
	neg := buf[1]&1 != 0
	payload := buf[2:]
	switch form {
	case Infinite, Indeterminate:
		if len(payload) != 0 {
			return errors.Wrapf(ErrBadEncoding, "numeric: %s value with %d bytes of payload", form, len(payload))
		}
		if form == Infinite {
			*z = Inf(sign(neg))
		} else {
			*z = NaN()
		}
		return nil
	case Finite:
	default:
		return errors.Wrapf(ErrBadEncoding, "numeric: invalid form %d", buf[1]>>1)
	}
	if len(payload) == 0 {
		*z = Number{}
		return nil
	}
	if len(payload) < 2*_S || len(payload)%_S != 0 {
		return errors.Wrapf(ErrBadEncoding, "numeric: invalid payload length %d", len(payload))
	}
	exp := int64(binary.BigEndian.Uint64(payload))
	m := nat(nil).setBytes(payload[_S:])
	// setBytes drops leading zero bytes: restore the length so that exp
	// still refers to the first encoded word.
	n := (len(payload) - _S) / _S
	if len(m) < n {
		m = append(m, make(nat, n-len(m))...)
	}
	*z = makeNumber(neg, m, exp)
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Number) GobEncode() ([]byte, error) {
	return x.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Number) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Number{}
		return nil
	}
	return z.UnmarshalBinary(buf)
}

// MarshalText implements the encoding.TextMarshaler interface. The exact
// decimal representation of x is marshaled.
func (x Number) MarshalText() ([]byte, error) {
	return x.appendText(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Number) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return errors.Wrapf(err, "numeric: cannot unmarshal %q into a Number", text)
	}
	*z = x
	return nil
}
