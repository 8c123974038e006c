package encoding

// MaxVarintLen32 is the maximum number of bytes a 32-bit varint occupies.
const MaxVarintLen32 = 5

// PutUvarint encodes v into buf and returns the number of bytes written (1-5).
//
// The encoding is little-endian base-128: 7 value bits per byte, least
// significant group first, with the high bit set on every byte except the
// last. A value below 128 therefore occupies a single byte, which is why the
// frame header can reuse a lone zero byte to mark raw payloads.
//
// buf must have room for MaxVarintLen32 bytes; PutUvarint panics on a buffer
// that is too small, as that is a caller bug rather than a data condition.
func PutUvarint(buf []byte, v uint32) int {
	i := 0
	for v >= 0x80 {
		buf[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	buf[i] = byte(v)

	return i + 1
}

// Uvarint decodes a varint from the start of buf.
//
// It returns the decoded value and the number of bytes consumed (1-5).
// A consumed count of 0 means buf is malformed: either it is empty, it ends
// before a terminating byte (high bit clear) is found, or the continuation
// run exceeds MaxVarintLen32 bytes. Callers treat that as framing corruption;
// there is no recoverable partial result.
func Uvarint(buf []byte) (uint32, int) {
	var v uint32
	for i := 0; i < len(buf) && i < MaxVarintLen32; i++ {
		b := buf[i]
		if b < 0x80 {
			return v | uint32(b)<<(7*i), i + 1
		}
		v |= uint32(b&0x7f) << (7 * i)
	}

	return 0, 0
}
