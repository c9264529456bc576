package sbsutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebagchi/ratword/lib/bitio"
	"github.com/thebagchi/ratword/lib/incomplete"
)

// Known-good single-byte decode vectors.
func TestReadSeedVectors(t *testing.T) {
	cases := []struct {
		name string
		byte byte
		want uint64
	}{
		{"v=3", 0b00111111, 3},
		{"v=24", 0b11100000, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := bitio.NewBitDecoder([]byte{tc.byte})
			got, err := Read(dec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadAllOnesIsUnbounded(t *testing.T) {
	dec := bitio.NewBitDecoder([]byte{0b11111111})
	_, err := Read(dec)
	require.Error(t, err)
	ii, ok := err.(incomplete.Int)
	require.True(t, ok)
	assert.Equal(t, incomplete.KindUnbounded, ii.Kind)
	assert.Equal(t, uint64(0x300), ii.Start)
}

func TestWriteReadRoundTrip(t *testing.T) {
	for v := uint64(3); v < 2000; v++ {
		buf := make([]byte, 8)
		enc := bitio.NewBitEncoder(buf)
		require.NoError(t, Write(enc, v))

		dec := bitio.NewBitDecoder(buf)
		got, err := Read(dec)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestWriteInfAlwaysUnderflows(t *testing.T) {
	buf := make([]byte, 2)
	enc := bitio.NewBitEncoder(buf)
	err := WriteInf(enc)
	require.Error(t, err)
	_, ok := err.(incomplete.Int)
	assert.True(t, ok)
	assert.Equal(t, byte(0xFF), buf[0])
	assert.Equal(t, byte(0xFF), buf[1])
}

func TestWriteUnderflowReturnsConsistentBound(t *testing.T) {
	// v=24 fully encodes to the 8 bits "11100000" (see TestReadSeedVectors);
	// consuming one leading bit first leaves only 7 of those 8 bits room to
	// land, forcing a truncated write.
	buf := make([]byte, 1)
	enc := bitio.NewBitEncoder(buf)
	require.NoError(t, enc.WriteBit(false))

	err := Write(enc, 24)
	require.Error(t, err)
	ii, ok := err.(incomplete.Int)
	require.True(t, ok)
	assert.Equal(t, incomplete.KindBounded, ii.Kind)
	assert.LessOrEqual(t, ii.Lo, uint64(24))
	assert.GreaterOrEqual(t, ii.Hi, uint64(24))
	assert.Equal(t, uint(1), ii.BitsNeeded)
}
