package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/ratword/lib/incomplete"
)

func TestNewPanicsOnZeroDenominator(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	New(1, 0)
}

func TestNewPanicsOnNumeratorExceedingDenominator(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	New(3, 2)
}

func TestNewAllowsZeroNumerator(t *testing.T) {
	require.NotPanics(t, func() {
		r := New(0, 1)
		assert.Equal(t, uint64(0), r.Num)
	})
}

func TestIsReduced(t *testing.T) {
	assert.True(t, New(2, 3).IsReduced())
	assert.True(t, New(0, 1).IsReduced())
	assert.True(t, New(1, 1).IsReduced())
}

func TestCFDigitsExamples(t *testing.T) {
	// 2/3 = 1/(1 + 1/2): expansion digits (1, 2).
	assert.Equal(t, []uint64{1, 2}, Digits(2, 3))
	// 1/1 has a single digit.
	assert.Equal(t, []uint64{1}, Digits(1, 1))
	// 3/7 = [2,3] by Euclidean steps: (3,7)->q/p=2,(1,3)->q/p=3,(0,1) stop.
	assert.Equal(t, []uint64{2, 3}, Digits(3, 7))
}

func TestCFIterNextExhausts(t *testing.T) {
	it := CFDigits(2, 3)
	a, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), a)
	a, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), a)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestFoldInvertsCFDigits(t *testing.T) {
	for _, r := range []Rational{New(1, 1), New(1, 2), New(2, 3), New(3, 7), New(5, 8)} {
		digits := Digits(r.Num, r.Den)
		rev := make([]uint64, len(digits))
		for i, d := range digits {
			rev[len(digits)-1-i] = d
		}
		num, den := Fold(rev)
		assert.Equal(t, r.Num, num)
		assert.Equal(t, r.Den, den)
	}
}

func TestResolveTrailingBounded(t *testing.T) {
	digits := ResolveTrailing([]uint64{3}, incomplete.Bounded(7, 8, 1))
	assert.Equal(t, []uint64{3, 8}, digits)
}

func TestResolveTrailingUnboundedAppendsOnlyAfterAmbiguousPattern(t *testing.T) {
	// [..., n, 1, Unbounded] is ambiguous with [..., n+1, Unbounded]: append.
	digits := ResolveTrailing([]uint64{5, 1}, incomplete.Unbounded(3))
	assert.Equal(t, []uint64{5, 1, 4}, digits)

	// A single prior digit (no "n" before the trailing 1) is not ambiguous.
	digits = ResolveTrailing([]uint64{1}, incomplete.Unbounded(3))
	assert.Equal(t, []uint64{1}, digits)

	// A non-1 last digit is never ambiguous.
	digits = ResolveTrailing([]uint64{5, 2}, incomplete.Unbounded(3))
	assert.Equal(t, []uint64{5, 2}, digits)
}

func TestReconstructEmptyDigitsIsZeroOverOne(t *testing.T) {
	r := Reconstruct(nil, incomplete.Unbounded(1))
	assert.Equal(t, Rational{Num: 0, Den: 1}, r)
}
