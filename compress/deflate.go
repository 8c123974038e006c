package compress

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/arloliu/valpack/format"
)

// errBudgetExceeded is returned by boundedWriter when the compressed stream
// outgrows its output budget. It never escapes the package: Deflate folds it
// into the boolean "did not fit" result.
var errBudgetExceeded = errors.New("compress: output budget exceeded")

// boundedWriter writes into a fixed caller-supplied buffer and fails the
// stream as soon as a write would run past the end. DEFLATE has no way to
// abandon a stream midway, so failing the sink is how the deflater learns
// that compression stopped being worthwhile.
type boundedWriter struct {
	buf []byte
	n   int
}

func (w *boundedWriter) reset(buf []byte) {
	w.buf = buf
	w.n = 0
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if len(p) > len(w.buf)-w.n {
		return 0, errBudgetExceeded
	}
	copy(w.buf[w.n:], p)
	w.n += len(p)

	return len(p), nil
}

// deflater is one reusable compression engine: a flate writer permanently
// wired to its bounded output sink. Resetting the writer re-installs the
// dictionary it was constructed with, so reuse is reset-and-go.
type deflater struct {
	w   *flate.Writer
	out boundedWriter
}

// DeflaterPool hands out primed DEFLATE compressors.
//
// The pool is safe for concurrent use; the engines it manages are not shared.
// Each Deflate call operates on an engine no other goroutine can observe,
// which is how the codec stays lock-free under arbitrarily many concurrent
// encoders.
type DeflaterPool struct {
	level int
	dict  []byte
	pool  sync.Pool
}

// NewDeflaterPool creates a pool of compressors for the given level and
// priming dictionary. A nil or empty dict disables priming.
//
// The level must be within [format.MinCompressionLevel,
// format.MaxCompressionLevel]; anything else is a configuration error.
func NewDeflaterPool(level int, dict []byte) (*DeflaterPool, error) {
	if level < format.MinCompressionLevel || level > format.MaxCompressionLevel {
		return nil, fmt.Errorf("compression level %d out of range [%d, %d]",
			level, format.MinCompressionLevel, format.MaxCompressionLevel)
	}

	p := &DeflaterPool{level: level, dict: dict}
	p.pool.New = func() any {
		d := &deflater{}
		w, err := flate.NewWriterDict(io.Discard, p.level, p.dict)
		if err != nil {
			// Unreachable: the level was validated at pool construction.
			panic(fmt.Sprintf("failed to create deflater for pool: %v", err))
		}
		d.w = w

		return d
	}

	return p, nil
}

// Level returns the compression level the pool's engines use.
func (p *DeflaterPool) Level() int {
	return p.level
}

// Deflate compresses src into dst as a single finished raw-DEFLATE stream.
//
// It returns the number of bytes written and true on success, or 0 and false
// when the compressed form does not fit in dst. The latter is the signal for
// the caller's raw-frame fallback, not an error: dst is deliberately sized to
// "compression must beat storing the bytes as-is".
func (p *DeflaterPool) Deflate(dst, src []byte) (int, bool) {
	d, _ := p.pool.Get().(*deflater)
	defer func() {
		// Drop the reference to dst so a parked engine does not pin the
		// caller's buffer until its next use.
		d.out.reset(nil)
		p.pool.Put(d)
	}()

	d.out.reset(dst)
	d.w.Reset(&d.out)

	if _, err := d.w.Write(src); err != nil {
		return 0, false
	}
	if err := d.w.Close(); err != nil {
		return 0, false
	}

	return d.out.n, true
}
