// Package sbs2 wraps sbsutils to cover integers v >= 1 with a different
// short-value layout than sbs1: v==1 is "00", v==2 is "01", and v>=3 defers
// to sbsutils directly on v itself (no +1/-1 offset, since 3 is already
// sbsutils' own minimum). Grounded on
// _examples/original_source/src/sbs2.rs; the Rust draft
// only sketched the decode half, so the encode half mirrors sbs1's
// structure and the Coder tests in
// _examples/original_source/src/symbolstream/sbs_main.rs.
package sbs2

import (
	"github.com/thebagchi/ratword/lib/bitio"
	"github.com/thebagchi/ratword/lib/incomplete"
	"github.com/thebagchi/ratword/lib/sbsutils"
)

// Write encodes v (v >= 1).
func Write(enc *bitio.BitEncoder, v uint64) error {
	if v == 1 {
		if err := enc.WriteBit(false); err != nil {
			return incomplete.Unbounded(1)
		}
		if err := enc.WriteBit(false); err != nil {
			return incomplete.Unbounded(1)
		}
		return nil
	}
	if v == 2 {
		if err := enc.WriteBit(false); err != nil {
			return incomplete.Unbounded(1)
		}
		if err := enc.WriteBit(true); err != nil {
			return incomplete.Unbounded(2)
		}
		return nil
	}
	if err := enc.WriteBit(true); err != nil {
		return incomplete.Unbounded(3)
	}
	return sbsutils.Write(enc, v)
}

// WriteInf writes the end-of-stream terminator; identical across modes, see
// sbs1.WriteInf.
func WriteInf(enc *bitio.BitEncoder) error {
	return sbsutils.WriteInf(enc)
}

// Read decodes the next value (>= 1).
func Read(dec *bitio.BitDecoder) (uint64, error) {
	first, err := dec.ReadBit()
	if err != nil {
		return 0, incomplete.Unbounded(1)
	}
	if !first {
		second, err := dec.ReadBit()
		if err != nil {
			return 0, incomplete.Bounded(1, 2, 1)
		}
		if second {
			return 2, nil
		}
		return 1, nil
	}
	return sbsutils.Read(dec)
}
