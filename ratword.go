// Package ratword implements a bit-exact codec mapping reduced rationals
// in (0, 1] to fixed-width words, and back. It allocates a word-sized
// buffer, drives the rho-region coder (lib/coder) over the
// continued-fraction digits of the rational (lib/rational), terminates
// the stream, and packs the result big-endian via encoding/binary.
package ratword

import (
	"encoding/binary"

	"github.com/thebagchi/ratword/lib/bitio"
	"github.com/thebagchi/ratword/lib/coder"
	"github.com/thebagchi/ratword/lib/rational"
)

// EncodeStream encodes num/den into out, sized to any whole number of
// bytes. It returns true on success and false on truncation; on either
// path out holds the best-effort encoding, padded with the end-of-stream
// ones terminator, so the caller always gets back a best-effort prefix
// on truncation, never a half-written buffer. Panics
// if den == 0 or num > den.
func EncodeStream(num, den uint64, out []byte) bool {
	if den == 0 {
		panic("ratword: denominator == 0")
	}
	if num > den {
		panic("ratword: numerator > denominator")
	}
	for i := range out {
		out[i] = 0
	}
	enc := bitio.NewBitEncoder(out)
	c := &coder.Coder{}
	truncated := false
	it := rational.CFDigits(num, den)
	for {
		digit, ok := it.Next()
		if !ok {
			break
		}
		if err := c.Write(enc, digit); err != nil {
			truncated = true
			break
		}
	}
	c.WriteInf(enc)
	return !truncated
}

// DecodeStream decodes in (of any whole-byte length) into a reduced
// rational. DecodeStream is total: every possible bit pattern decodes to
// some (num, den) with den >= 1 and num <= den.
func DecodeStream(in []byte) (num, den uint64) {
	dec := bitio.NewBitDecoder(in)
	c := &coder.Coder{}
	digits, tail := c.ReadAll(dec)
	r := rational.Reconstruct(digits, tail)
	return r.Num, r.Den
}

// EncodeC8 encodes num/den into a single byte. The bool result is false
// on truncation, matching EncodeStream.
func EncodeC8(num, den uint64) (uint8, bool) {
	var buf [1]byte
	ok := EncodeStream(num, den, buf[:])
	return buf[0], ok
}

// DecodeC8 decodes a single byte into a reduced rational.
func DecodeC8(word uint8) (num, den uint64) {
	return DecodeStream([]byte{word})
}

// EncodeC16 encodes num/den into a big-endian uint16.
func EncodeC16(num, den uint64) (uint16, bool) {
	var buf [2]byte
	ok := EncodeStream(num, den, buf[:])
	return binary.BigEndian.Uint16(buf[:]), ok
}

// DecodeC16 decodes a big-endian uint16 into a reduced rational.
func DecodeC16(word uint16) (num, den uint64) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], word)
	return DecodeStream(buf[:])
}

// EncodeC32 encodes num/den into a big-endian uint32.
func EncodeC32(num, den uint64) (uint32, bool) {
	var buf [4]byte
	ok := EncodeStream(num, den, buf[:])
	return binary.BigEndian.Uint32(buf[:]), ok
}

// DecodeC32 decodes a big-endian uint32 into a reduced rational.
func DecodeC32(word uint32) (num, den uint64) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], word)
	return DecodeStream(buf[:])
}

// EncodeC64 encodes num/den into a big-endian uint64.
func EncodeC64(num, den uint64) (uint64, bool) {
	var buf [8]byte
	ok := EncodeStream(num, den, buf[:])
	return binary.BigEndian.Uint64(buf[:]), ok
}

// DecodeC64 decodes a big-endian uint64 into a reduced rational.
func DecodeC64(word uint64) (num, den uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], word)
	return DecodeStream(buf[:])
}
