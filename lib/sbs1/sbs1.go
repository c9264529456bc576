// Package sbs1 wraps sbsutils to cover integers v >= 1: v==1 is a single
// zero bit, v>=2 defers to sbsutils on v+1 and subtracts 1 back out on
// decode. Grounded on _examples/original_source/src/sbs1.rs; the Rust
// draft only sketched the decode half, so the encode half
// and the IncompleteInt offset handling follow the "+1 on the wire"
// convention the Coder tests in
// _examples/original_source/src/symbolstream/sbs_main.rs exercise (sbs2
// applies no such offset).
package sbs1

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
		return nil
	}
	if err := enc.WriteBit(true); err != nil {
		return incomplete.Unbounded(2)
	}
	if err := sbsutils.Write(enc, v+1); err != nil {
		ii := err.(incomplete.Int)
		return ii.Offset(-1)
	}
	return nil
}

// WriteInf writes the end-of-stream terminator. It is identical to
// sbsutils.WriteInf regardless of mode: the terminator is always a run of
// one-bits, never a value-specific encoding, so sbs1 and sbs2 both defer
// to the same underlying primitive.
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
		return 1, nil
	}
	v, err := sbsutils.Read(dec)
	if err != nil {
		ii := err.(incomplete.Int)
		return 0, ii.Offset(-1)
	}
	return v - 1, nil
}
