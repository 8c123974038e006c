// Package valpack packs arbitrary byte values into compact, self-describing
// frames that fit fixed-capacity storage slots, and unpacks them exactly.
//
// A frame is [varint originalSize][payload]. A zero header marks a raw
// payload (the value verbatim); a non-zero header gives the original size of
// a dictionary-primed raw-DEFLATE payload. Encoding compresses only when it
// pays for itself and silently falls back to the raw form otherwise, so the
// encoded frame is never meaningfully larger than the value it carries.
// Decoding is the exact inverse and fails hard on corruption or a mismatched
// dictionary instead of returning wrong bytes.
//
// # Basic Usage
//
//	codec, _ := valpack.NewCodec()
//
//	frame := codec.Encode([]byte("some value"))
//	value, err := codec.Decode(frame)
//
// Priming short, stereotyped values with a shared dictionary:
//
//	codec, err := valpack.NewDictionaryCodec("conf/values.dict")
//	if err != nil {
//	    return err
//	}
//	frame := codec.EncodeString(`{"status":"ok","region":"us-east-1"}`)
//
// The same dictionary configuration must be used for the whole lifetime of
// the frames it produced.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the frame
// package. For fine-grained control (supplying an in-memory dictionary,
// tuning the compression level, enabling the compress-only-when-necessary
// policy), use the frame, dict and format packages directly.
package valpack

import (
	"github.com/arloliu/valpack/dict"
	"github.com/arloliu/valpack/format"
	"github.com/arloliu/valpack/frame"
)

// MaxValueBytes is the host storage slot ceiling, re-exported for callers
// that size values against it.
const MaxValueBytes = format.MaxValueBytes

// Codec is re-exported so most callers only import this package.
type Codec = frame.Codec

// NewCodec creates a codec with the given options.
//
// Defaults: compression level 9, compress regardless of value size, no
// dictionary.
func NewCodec(opts ...frame.Option) (*Codec, error) {
	return frame.NewCodec(opts...)
}

// NewDictionaryCodec creates a codec primed with the dictionary file at path.
//
// The file is read fully at construction time; a read or close failure is a
// configuration error. Additional options are applied after the dictionary.
func NewDictionaryCodec(path string, opts ...frame.Option) (*Codec, error) {
	d, err := dict.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return frame.NewCodec(append([]frame.Option{frame.WithDictionary(d)}, opts...)...)
}
