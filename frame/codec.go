// Package frame implements the value frame codec: it packs a byte value into
// a self-describing [varint originalSize][payload] frame and unpacks it back.
//
// A header of 0 marks a raw frame whose payload is the value verbatim; any
// other header value is the original size of a dictionary-primed raw-DEFLATE
// payload. Encoding compresses only when the policy allows it and only when
// compression actually pays for itself; otherwise it falls back to the raw
// frame, so encoding can never fail. Decoding is strict: the inflated output
// must match the declared size exactly, and every deviation surfaces as
// ErrCorruptFrame.
package frame

import (
	"errors"
	"fmt"

	"github.com/arloliu/valpack/compress"
	"github.com/arloliu/valpack/dict"
	"github.com/arloliu/valpack/encoding"
	"github.com/arloliu/valpack/format"
)

// ErrCorruptFrame reports a frame that cannot be decoded: a truncated length
// header, a DEFLATE payload that fails to parse, or an inflated size that
// does not match the header. It usually means corrupted storage or a
// dictionary that differs from the one used at encode time. There is no safe
// partial result; callers should treat it as fatal for the value.
var ErrCorruptFrame = errors.New("corrupt frame")

// Codec encodes byte values into frames and back.
//
// A Codec is immutable after NewCodec and safe for use by any number of
// concurrent goroutines; the mutable compression state lives in per-operation
// engines managed by internal pools.
type Codec struct {
	level       int
	onlyWhenNec bool
	dict        *dict.Dictionary
	deflaters   *compress.DeflaterPool
	inflaters   *compress.InflaterPool
}

// NewCodec creates a Codec.
//
// Defaults: maximum compression level, compress regardless of value size, no
// dictionary. An invalid option (such as an out-of-range compression level)
// is a configuration error and aborts construction.
func NewCodec(opts ...Option) (*Codec, error) {
	c := &Codec{level: format.DefaultCompressionLevel}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	deflaters, err := compress.NewDeflaterPool(c.level, c.dict.Bytes())
	if err != nil {
		return nil, err
	}
	c.deflaters = deflaters
	c.inflaters = compress.NewInflaterPool(c.dict.Bytes())

	return c, nil
}

// Level returns the configured compression level.
func (c *Codec) Level() int {
	return c.level
}

// CompressOnlyWhenNecessary reports whether small values skip compression.
func (c *Codec) CompressOnlyWhenNecessary() bool {
	return c.onlyWhenNec
}

// Dictionary returns the configured priming dictionary, nil when absent.
func (c *Codec) Dictionary() *dict.Dictionary {
	return c.dict
}

// shouldCompress applies the encode-time policies.
//
// Empty values gain nothing from compression. With the necessity policy
// active, any value that would fit the host storage slot raw is stored raw,
// trading size savings for speed.
func (c *Codec) shouldCompress(size int) bool {
	if size == 0 {
		return false
	}
	if c.onlyWhenNec && size < format.MaxValueBytes-1 {
		return false
	}

	return true
}

// Encode packs src into a frame.
//
// The compressed payload is given a budget of len(src) bytes after the
// header: if DEFLATE cannot beat storing the value as-is, the attempt is
// discarded and the raw frame is produced instead. The fallback is part of
// normal operation and is indistinguishable from a deliberately raw frame,
// which is why Encode has no error to return.
//
// The returned slice is newly allocated and owned by the caller; src is not
// retained.
func (c *Codec) Encode(src []byte) []byte {
	if !c.shouldCompress(len(src)) {
		return rawFrame(src)
	}

	var hdr [encoding.MaxVarintLen32]byte
	h := encoding.PutUvarint(hdr[:], uint32(len(src))) //nolint:gosec

	out := make([]byte, h+len(src))
	copy(out, hdr[:h])

	n, ok := c.deflaters.Deflate(out[h:], src)
	if !ok {
		return rawFrame(src)
	}

	return out[:h+n]
}

// EncodeString packs the UTF-8 bytes of s into a frame.
func (c *Codec) EncodeString(s string) []byte {
	return c.Encode([]byte(s))
}

// Decode unpacks a frame produced by Encode under the same configuration.
//
// For raw frames the returned slice aliases data (zero-copy); for compressed
// frames it is newly allocated. The same dictionary configuration used at
// encode time is required: decoding with a different one fails with
// ErrCorruptFrame.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	size, n := encoding.Uvarint(data)
	if n == 0 {
		return nil, fmt.Errorf("%w: truncated length header", ErrCorruptFrame)
	}

	payload := data[n:]
	if size == 0 {
		return payload, nil
	}

	out := make([]byte, size)
	if err := c.inflaters.Inflate(out, payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}

	return out, nil
}

// DecodeString unpacks a frame and returns its value as a string.
func (c *Codec) DecodeString(data []byte) (string, error) {
	b, err := c.Decode(data)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// rawFrame builds [varint(0)][src]: the first byte is the zero header, the
// rest is the value verbatim.
func rawFrame(src []byte) []byte {
	out := make([]byte, len(src)+1)
	copy(out[1:], src)

	return out
}
