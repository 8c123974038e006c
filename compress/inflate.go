package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

// inflater is one reusable decompression engine. The bytes.Reader front-end
// lets each operation feed a new input slice without allocating a reader.
type inflater struct {
	src bytes.Reader
	r   io.ReadCloser
	rs  flate.Resetter
}

// InflaterPool hands out primed DEFLATE decompressors.
//
// Like DeflaterPool, the pool itself is safe for concurrent use while each
// engine is exclusive to a single operation.
type InflaterPool struct {
	dict []byte
	pool sync.Pool
}

// NewInflaterPool creates a pool of decompressors primed with dict.
// A nil or empty dict disables priming.
func NewInflaterPool(dict []byte) *InflaterPool {
	p := &InflaterPool{dict: dict}
	p.pool.New = func() any {
		f := &inflater{}
		f.r = flate.NewReaderDict(&f.src, p.dict)
		// The flate reader always implements Resetter; reuse depends on it.
		f.rs = f.r.(flate.Resetter)

		return f
	}

	return p
}

// Inflate decompresses src into dst and requires the stream to produce
// exactly len(dst) bytes.
//
// Any deviation is corruption: a stream that ends early, keeps going past
// len(dst), or fails to parse all indicate damaged input or a dictionary
// that differs from the one used at compression time. No partial output is
// ever returned.
func (p *InflaterPool) Inflate(dst, src []byte) error {
	f, _ := p.pool.Get().(*inflater)
	defer func() {
		// Drop the reference to src so a parked engine does not pin the
		// caller's buffer until its next use.
		f.src.Reset(nil)
		p.pool.Put(f)
	}()

	f.src.Reset(src)
	if err := f.rs.Reset(&f.src, p.dict); err != nil {
		return fmt.Errorf("reset inflater: %w", err)
	}

	if _, err := io.ReadFull(f.r, dst); err != nil {
		return fmt.Errorf("inflate: %w", err)
	}

	// The stream must end exactly at len(dst) decompressed bytes.
	var trailer [1]byte
	n, err := f.r.Read(trailer[:])
	switch {
	case n != 0:
		return fmt.Errorf("inflate: stream longer than declared size %d", len(dst))
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("inflate: %w", err)
	default:
		return fmt.Errorf("inflate: stream did not terminate at declared size %d", len(dst))
	}
}
