// Package rational bridges positive rationals in (0, 1] and the
// continued-fraction digit streams the coder package codes. Grounded on
// _examples/original_source/src/rationals.rs: CFDigits is the forward
// Euclidean expansion it never implements directly (only exercised via its
// test fixtures), and Fold is a direct translation of its
// cf_to_rational64 fold, including the "swap the tuple on the way out"
// trick that turns a left-to-right fold into a right-to-left continuant
// recurrence. ResolveTrailing implements the incomplete-symbol
// resolution rule for which rationals.rs has no counterpart: the Rust
// crate's iter_cf only ever discards Unbounded tails and downgrades
// Bounded tails to their start+1, rather than distinguishing the
// ambiguous trailing-1 pattern handled here.
package rational

import "github.com/thebagchi/ratword/lib/incomplete"

// Rational is a reduced fraction in (0, 1]: Num <= Den, Den >= 1,
// gcd(Num, Den) in {1} or Num == 0 (the degenerate 0/1 produced by
// decoding an empty digit stream).
type Rational struct {
	Num, Den uint64
}

// New validates and builds a Rational. Panics if den == 0 or num > den,
// the two invalid-input cases; num == 0 is the legitimate degenerate case
// and is not rejected.
func New(num, den uint64) Rational {
	if den == 0 {
		panic("rational: denominator == 0")
	}
	if num > den {
		panic("rational: numerator > denominator")
	}
	return Rational{Num: num, Den: den}
}

// IsReduced reports whether Num and Den share no common factor, i.e.
// gcd(Num, Den) == 1. A Num of 0 is considered reduced only when Den == 1,
// matching the unique degenerate representation 0/1.
func (r Rational) IsReduced() bool {
	if r.Num == 0 {
		return r.Den == 1
	}
	return gcd(r.Num, r.Den) == 1
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// CFIter is a finite stateful producer of continued-fraction digits: the
// Euclidean expansion of p/q, one coefficient at a time, with no heap
// allocation beyond the iterator itself. Grounded on
// _examples/original_source/src/rationals.rs, which exposes the same
// expansion as a step-by-step Iterator rather than a slice-returning
// function.
type CFIter struct {
	p, q uint64
}

// CFDigits constructs the CF digit iterator for p/q:
// (p, q) <- (q mod p, p) while p > 0, emitting a_i = floor(q/p) at each
// step. p and q need not already be reduced: the expansion of a
// non-reduced fraction is simply the expansion of its reduced form, since
// the Euclidean algorithm's first step already divides out the gcd.
func CFDigits(p, q uint64) *CFIter {
	return &CFIter{p: p, q: q}
}

// Next returns the next digit and true, or (0, false) once the expansion
// is exhausted.
func (it *CFIter) Next() (uint64, bool) {
	if it.p == 0 {
		return 0, false
	}
	a := it.q / it.p
	it.p, it.q = it.q%it.p, it.p
	return a, true
}

// Digits drains a CF expansion of p/q into a slice, for callers (such as
// tests) that need the whole sequence at once rather than stepping
// through it.
func Digits(p, q uint64) []uint64 {
	it := CFDigits(p, q)
	var digits []uint64
	for {
		a, ok := it.Next()
		if !ok {
			return digits
		}
		digits = append(digits, a)
	}
}

// ResolveTrailing appends zero or one digit to digits, consuming the
// terminal IncompleteInt a decoder hits at end-of-stream, per the
// canonical smallest-denominator resolution rule below. tail must be an incomplete.Int (the
// only error shape the coder/symbol layers ever return); any other error,
// or a nil tail, is treated as "append nothing".
func ResolveTrailing(digits []uint64, tail error) []uint64 {
	ii, ok := tail.(incomplete.Int)
	if !ok {
		return digits
	}
	switch ii.Kind {
	case incomplete.KindUnbounded:
		n := len(digits)
		if n >= 2 && digits[n-1] == 1 {
			return append(digits, ii.Start+1)
		}
		return digits
	default:
		return append(digits, SmallestInInterval(ii.Lo, ii.Hi))
	}
}

// SmallestInInterval returns the digit ResolveTrailing appends for a
// Bounded IncompleteInt with range [lo, hi]: always lo+1, one past the
// range's lower end; hi does not affect the result. Factored out from
// ResolveTrailing so it can be tested directly.
func SmallestInInterval(lo, hi uint64) uint64 {
	return lo + 1
}

// Fold runs the Horner-style continuant recurrence over digitsRev (digits
// in reverse emission order, i.e. a_n, ..., a_1) and returns the resulting
// (num, den). Starting from the pair (x, y) = (1, 0), each digit updates
// (x, y) <- (a*x + y, x); the final numerator is the second-to-last x
// value and the final denominator is the last, which is exactly what
// rationals.rs's cf_to_rational64 computes by destructuring its fold's
// (num, den) accumulator as (den, num) on the way out.
func Fold(digitsRev []uint64) (num, den uint64) {
	x, y := uint64(1), uint64(0)
	for _, a := range digitsRev {
		x, y = a*x+y, x
	}
	return y, x
}

// Reconstruct resolves a freshly-read digit stream (digits in emission
// order, plus the terminal error from the read loop) into a Rational, per
// the decode procedure: resolve the trailing incomplete symbol, reverse,
// and fold.
func Reconstruct(digits []uint64, tail error) Rational {
	resolved := ResolveTrailing(digits, tail)
	rev := make([]uint64, len(resolved))
	for i, d := range resolved {
		rev[len(resolved)-1-i] = d
	}
	num, den := Fold(rev)
	return Rational{Num: num, Den: den}
}
