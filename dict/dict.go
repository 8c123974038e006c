// Package dict holds the priming dictionary shared by all compression and
// decompression engines of a codec.
//
// A dictionary is loaded once at configuration time and is immutable
// afterwards. A nil *Dictionary means "no dictionary configured": every
// accessor is nil-safe and priming degrades to a no-op, so callers never
// branch on presence themselves.
//
// Frames produced with a dictionary can only be decoded with the same
// dictionary. ID exposes a content hash so hosts can verify that encode-time
// and decode-time configurations actually match before data corruption does
// it for them.
package dict

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Dictionary is an immutable priming dictionary.
//
// The zero value is not used; construct instances with New, Load or LoadFile.
// A nil *Dictionary represents the absent dictionary.
type Dictionary struct {
	data []byte
	id   uint64
}

// New creates a Dictionary from data.
//
// The bytes are copied, so the caller may reuse its buffer. New returns nil
// for empty input: an empty dictionary primes nothing and is equivalent to
// having none at all.
func New(data []byte) *Dictionary {
	if len(data) == 0 {
		return nil
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return &Dictionary{data: owned, id: xxhash.Sum64(owned)}
}

// Load reads r to EOF and builds a Dictionary from its contents.
//
// The stream length is not known in advance; the buffer grows as needed.
// A read failure is a configuration error and aborts codec initialization.
func Load(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	return New(data), nil
}

// LoadFile loads a Dictionary from the file at path.
//
// Both a failed read and a failed close are configuration errors: a
// half-read dictionary would silently produce undecodable frames.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file %s: %w", path, err)
	}

	d, err := Load(f)
	cerr := f.Close()
	if err != nil {
		return nil, fmt.Errorf("dictionary file %s: %w", path, err)
	}
	if cerr != nil {
		return nil, fmt.Errorf("close dictionary file %s: %w", path, cerr)
	}

	return d, nil
}

// Bytes returns the dictionary contents, or nil when absent.
//
// The returned slice is shared and must not be modified.
func (d *Dictionary) Bytes() []byte {
	if d == nil {
		return nil
	}

	return d.data
}

// Len returns the dictionary size in bytes, 0 when absent.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.data)
}

// ID returns the xxHash64 of the dictionary contents, 0 when absent.
//
// Two codecs with the same ID are guaranteed to prime their engines
// identically, which makes ID suitable for configuration-mismatch checks
// and log/error context.
func (d *Dictionary) ID() uint64 {
	if d == nil {
		return 0
	}

	return d.id
}
