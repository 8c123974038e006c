package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutUvarint_BoundaryLengths(t *testing.T) {
	tests := []struct {
		value uint32
		bytes int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{268435455, 4},
		{268435456, 5},
		{math.MaxUint32, 5},
	}

	for _, tt := range tests {
		var buf [MaxVarintLen32]byte
		n := PutUvarint(buf[:], tt.value)
		require.Equal(t, tt.bytes, n, "encoded length of %d", tt.value)

		decoded, consumed := Uvarint(buf[:n])
		require.Equal(t, tt.bytes, consumed, "decoded length of %d", tt.value)
		require.Equal(t, tt.value, decoded)
	}
}

func TestPutUvarint_ContinuationBits(t *testing.T) {
	var buf [MaxVarintLen32]byte

	// 300 = 0b100101100: low 7 bits with continuation, then high bits.
	n := PutUvarint(buf[:], 300)
	require.Equal(t, 2, n)
	require.Equal(t, byte(0xAC), buf[0]) // 0x2C | 0x80
	require.Equal(t, byte(0x02), buf[1])

	// A single-byte value has its high bit clear.
	n = PutUvarint(buf[:], 127)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x7F), buf[0])
}

func TestUvarint_DecodeIgnoresTrailingBytes(t *testing.T) {
	buf := []byte{0x05, 0xFF, 0xFF, 0xFF}
	v, n := Uvarint(buf)
	require.Equal(t, uint32(5), v)
	require.Equal(t, 1, n)
}

func TestUvarint_Truncated(t *testing.T) {
	// Empty input.
	_, n := Uvarint(nil)
	require.Equal(t, 0, n)

	// All continuation bits, no terminator.
	_, n = Uvarint([]byte{0x80, 0x81})
	require.Equal(t, 0, n)

	// Continuation run past the 5-byte maximum.
	_, n = Uvarint([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	require.Equal(t, 0, n)
}

func TestUvarint_RoundTripSweep(t *testing.T) {
	values := []uint32{0, 1, 63, 64, 200, 1000, 32766, 50000, 1 << 20, 1 << 28, math.MaxUint32}
	for _, v := range values {
		var buf [MaxVarintLen32]byte
		n := PutUvarint(buf[:], v)
		decoded, consumed := Uvarint(buf[:n])
		require.Equal(t, v, decoded)
		require.Equal(t, n, consumed)
	}
}
