// Package coder implements the Mealy-style rho-region state machine that
// picks between sbs1 and sbs2 on a per-symbol basis. Grounded on
// _examples/original_source/src/symbolstream/sbs_main.rs for the region
// enum, the mode selection, and the Coder/write/read/write_inf structure,
// translated from Rust's NonZeroU64 + Result style into Go's
// (uint64, error) convention. The transition table itself (Region.Next)
// follows the documented five-region table rather than that file's
// RhoRegion::next, which disagrees with it in three cases.
package coder

import (
	"github.com/thebagchi/ratword/lib/bitio"
	"github.com/thebagchi/ratword/lib/sbs1"
	"github.com/thebagchi/ratword/lib/sbs2"
)

// Mode identifies which of sbs1/sbs2 a Region currently selects.
type Mode uint8

const (
	Mode1 Mode = iota
	Mode2
)

// Region is the coder's state: a position in the Stern-Brocot ancestry of
// the continued-fraction digits read or written so far.
type Region uint8

const (
	RegionEq0 Region = iota
	RegionLeq1d3
	RegionGt1d3Lt3d4
	RegionGeq3d4
	RegionEq1
)

// Mode reports which sub-code a region dispatches to.
func (r Region) Mode() Mode {
	switch r {
	case RegionEq0, RegionLeq1d3, RegionGt1d3Lt3d4:
		return Mode1
	default:
		return Mode2
	}
}

// Next computes the region that follows having just coded value (value must
// be >= 1; the digit alphabet has no zero symbol).
func (r Region) Next(value uint64) Region {
	switch r {
	case RegionEq0:
		if value == 1 {
			return RegionEq1
		}
		return RegionLeq1d3
	case RegionLeq1d3:
		if value == 1 {
			return RegionGeq3d4
		}
		return RegionLeq1d3
	case RegionGt1d3Lt3d4, RegionGeq3d4:
		if value == 1 || value == 2 {
			return RegionGt1d3Lt3d4
		}
		return RegionLeq1d3
	default: // RegionEq1
		if value == 2 {
			return RegionLeq1d3
		}
		return RegionGt1d3Lt3d4
	}
}

// Coder is a stateful symbol coder over a stream of continued-fraction
// digits, each >= 1. Its zero value starts in RegionEq0, matching Rust's
// Default impl.
type Coder struct {
	region Region
}

// Region reports the coder's current state, mostly useful for tests.
func (c *Coder) Region() Region {
	return c.region
}

// Write encodes value (>= 1) and advances the region.
func (c *Coder) Write(enc *bitio.BitEncoder, value uint64) error {
	var err error
	switch c.region.Mode() {
	case Mode1:
		err = sbs1.Write(enc, value)
	default:
		err = sbs2.Write(enc, value)
	}
	if err != nil {
		return err
	}
	c.region = c.region.Next(value)
	return nil
}

// WriteInf writes the end-of-stream terminator for whichever mode is
// currently selected and resets the region to RegionEq0.
func (c *Coder) WriteInf(enc *bitio.BitEncoder) error {
	var err error
	switch c.region.Mode() {
	case Mode1:
		err = sbs1.WriteInf(enc)
	default:
		err = sbs2.WriteInf(enc)
	}
	c.region = RegionEq0
	return err
}

// Read decodes the next value (>= 1) and advances the region.
func (c *Coder) Read(dec *bitio.BitDecoder) (uint64, error) {
	var (
		v   uint64
		err error
	)
	switch c.region.Mode() {
	case Mode1:
		v, err = sbs1.Read(dec)
	default:
		v, err = sbs2.Read(dec)
	}
	if err != nil {
		return 0, err
	}
	c.region = c.region.Next(v)
	return v, nil
}

// ReadAll decodes digits from dec until Read fails, returning every digit
// successfully decoded plus the terminal error (never nil: a complete
// digit stream still ends in the underflow that signals its own end,
// matching the original's core::iter::from_fn read_iter, but surfaced as a
// single batch rather than a lazy iterator since every call site in this
// module consumes the whole stream at once).
func (c *Coder) ReadAll(dec *bitio.BitDecoder) ([]uint64, error) {
	var digits []uint64
	for {
		v, err := c.Read(dec)
		if err != nil {
			return digits, err
		}
		digits = append(digits, v)
	}
}

// WriteAll encodes every digit in values in order, then writes the
// end-of-stream terminator. It returns the first digit-write error, or nil
// once every digit fits; the terminator's own error is discarded, since
// WriteInf always runs out of room by design.
func (c *Coder) WriteAll(enc *bitio.BitEncoder, values []uint64) error {
	for _, v := range values {
		if err := c.Write(enc, v); err != nil {
			return err
		}
	}
	c.WriteInf(enc)
	return nil
}
