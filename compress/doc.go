// Package compress manages reusable DEFLATE engines for the frame codec.
//
// Engines (deflaters and inflaters) are stateful and must not be shared
// between concurrent operations. Rather than paying for a new engine per
// call, each pool keeps engines in a sync.Pool: a worker acquires an engine
// for the duration of one operation, the engine is reset and re-primed with
// the configured dictionary before use, and it is returned for reuse
// afterwards. There is no lock on the hot path.
//
// The engines produce and consume raw, headerless DEFLATE streams. Length
// framing, the raw-payload fallback and the varint header all live one level
// up in the frame package; this package only answers "compress these bytes
// into this budget" and "inflate these bytes to exactly this size".
package compress
