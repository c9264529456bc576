// Package sbsutils implements the self-delimiting variable-length integer
// code that underlies both sbs1 and sbs2: a "length-prefix + suffix" format
// for any integer v >= 3. Grounded on
// _examples/original_source/src/sbs_utils.rs, translated from its
// bitstream_io-based encoder/decoder into direct bitio.BitEncoder/
// BitDecoder calls.
//
// Precondition: Write only accepts v >= 3; callers (sbs1, sbs2) are
// responsible for routing v in {1, 2} through their own short-value
// layouts before ever reaching this package.
package sbsutils

import (
	"math/bits"

	"github.com/thebagchi/ratword/lib/bitio"
	"github.com/thebagchi/ratword/lib/incomplete"
)

// flen is the bit length of v, i.e. floor(log2(v)) + 1.
func flen(v uint64) uint {
	return uint(bits.Len64(v))
}

// flenPrefixBits computes the smallest value representable with the given
// vlenPrefix and next-bit choice: (3 - nextBit) << suffixLen(vlenPrefix, nextBit).
func flenPrefixBits(vlenPrefix uint, nextBit bool) uint64 {
	nb := uint64(0)
	if nextBit {
		nb = 1
	}
	return (3 - nb) << suffixLenFor(vlenPrefix, nextBit)
}

// suffixLenFor is the number of suffix bits once vlenPrefix and the
// next-bit choice are known.
func suffixLenFor(vlenPrefix uint, nextBit bool) uint {
	if nextBit {
		return vlenPrefix + 1
	}
	return vlenPrefix
}

// rangeForPrefix returns the full [lo, hi] range of values sharing the
// given vlenPrefix, regardless of what the next bit turns out to be.
func rangeForPrefix(vlenPrefix uint) (lo, hi uint64) {
	lo = flenPrefixBits(vlenPrefix, false)
	hi = flenPrefixBits(vlenPrefix+1, false) - 1
	return lo, hi
}

// rangeForPartialSuffix returns the range consistent with vlenPrefix,
// nextBit, and partialLen bits of suffix already known to equal
// partialBits (out of the full suffixLenFor(vlenPrefix, nextBit) bits).
func rangeForPartialSuffix(vlenPrefix uint, nextBit bool, partialBits uint64, partialLen uint) (lo, hi uint64) {
	suffixLen := suffixLenFor(vlenPrefix, nextBit)
	base := flenPrefixBits(vlenPrefix, nextBit)
	needed := suffixLen - partialLen
	lo = base | (partialBits << needed)
	hi = base | (((partialBits + 1) << needed) - 1)
	return lo, hi
}

// fromFull reconstructs the value once vlenPrefix, nextBit, and the full
// suffix are all known.
func fromFull(vlenPrefix uint, nextBit bool, suffixBits uint64) uint64 {
	return flenPrefixBits(vlenPrefix, nextBit) | suffixBits
}

// Write encodes v (v >= 3) to enc. On underflow it returns the
// incomplete.Int consistent with exactly the bits already written,
// consistent with exactly the bits already committed.
func Write(enc *bitio.BitEncoder, v uint64) error {
	n := flen(v)
	flenNextBit := v&(1<<(n-2)) != 0
	vlenNextBit := !flenNextBit
	vlenPrefix := uint(n) + boolToUint(!vlenNextBit) - 3
	suffixLen := n - 2
	suffixBits := v & ((uint64(1) << suffixLen) - 1)

	for i := uint(0); i < vlenPrefix; i++ {
		if err := enc.WriteBit(true); err != nil {
			return incomplete.Unbounded(flenPrefixBits(i, false))
		}
	}
	if err := enc.WriteBit(false); err != nil {
		return incomplete.Unbounded(flenPrefixBits(vlenPrefix, false))
	}
	if err := enc.WriteBit(vlenNextBit); err != nil {
		lo, hi := rangeForPrefix(vlenPrefix)
		return incomplete.Bounded(lo, hi, 1+suffixLenFor(vlenPrefix, true))
	}
	for i := uint(0); i < suffixLen; i++ {
		bitIdx := suffixLen - 1 - i // MSB-first within the suffix
		bit := suffixBits&(1<<bitIdx) != 0
		if err := enc.WriteBit(bit); err != nil {
			partialBits := suffixBits >> (suffixLen - i)
			lo, hi := rangeForPartialSuffix(vlenPrefix, vlenNextBit, partialBits, i)
			return incomplete.Bounded(lo, hi, suffixLen-i)
		}
	}
	return nil
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// WriteInf writes ones forever; it always returns a non-nil error once the
// encoder's buffer is exhausted, reporting the Unbounded state consistent
// with however many ones were written. This is the end-of-stream
// terminator: callers are expected to call it and discard the error, since
// running out of room is the whole point.
func WriteInf(enc *bitio.BitEncoder) error {
	var i uint
	for {
		if err := enc.WriteBit(true); err != nil {
			return incomplete.Unbounded(flenPrefixBits(i, false))
		}
		i++
	}
}

// Read decodes the next value (always >= 3 on success) from dec.
func Read(dec *bitio.BitDecoder) (uint64, error) {
	var vlenPrefix uint
	for {
		bit, err := dec.ReadBit()
		if err != nil {
			return 0, incomplete.Unbounded(flenPrefixBits(vlenPrefix, false))
		}
		if !bit {
			break
		}
		vlenPrefix++
	}

	nextBit, err := dec.ReadBit()
	if err != nil {
		lo, hi := rangeForPrefix(vlenPrefix)
		return 0, incomplete.Bounded(lo, hi, 1+suffixLenFor(vlenPrefix, true))
	}

	suffixLen := suffixLenFor(vlenPrefix, nextBit)
	var suffixBits uint64
	for i := uint(0); i < suffixLen; i++ {
		bit, err := dec.ReadBit()
		if err != nil {
			lo, hi := rangeForPartialSuffix(vlenPrefix, nextBit, suffixBits, i)
			return 0, incomplete.Bounded(lo, hi, suffixLen-i)
		}
		suffixBits <<= 1
		if bit {
			suffixBits |= 1
		}
	}
	return fromFull(vlenPrefix, nextBit, suffixBits), nil
}
