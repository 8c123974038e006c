package frame

import (
	"fmt"

	"github.com/arloliu/valpack/dict"
	"github.com/arloliu/valpack/format"
)

// Option configures a Codec during NewCodec.
type Option func(*Codec) error

// WithCompressionLevel sets the DEFLATE compression level, 1 (fastest) to
// 9 (smallest output). The default is 9.
func WithCompressionLevel(level int) Option {
	return func(c *Codec) error {
		if level < format.MinCompressionLevel || level > format.MaxCompressionLevel {
			return fmt.Errorf("invalid compression level %d: must be in [%d, %d]",
				level, format.MinCompressionLevel, format.MaxCompressionLevel)
		}
		c.level = level

		return nil
	}
}

// WithCompressOnlyWhenNecessary controls the necessity policy. When enabled,
// values small enough to fit the host storage slot raw are stored raw and
// compression is attempted only for values that would not fit otherwise.
// Disabled by default.
func WithCompressOnlyWhenNecessary(enabled bool) Option {
	return func(c *Codec) error {
		c.onlyWhenNec = enabled

		return nil
	}
}

// WithDictionary sets the priming dictionary shared by all compression and
// decompression engines. Frames encoded with a dictionary can only be decoded
// by a codec configured with the same dictionary. A nil dictionary is the
// default and disables priming.
func WithDictionary(d *dict.Dictionary) Option {
	return func(c *Codec) error {
		c.dict = d

		return nil
	}
}
