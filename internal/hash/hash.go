// Package hash wraps the xxhash64 implementation shared across the engine,
// fixing the seed used by hashed keys so digests are stable between the
// one-shot and streaming forms.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// DefaultSeed is the seed applied to every digest.
const DefaultSeed uint64 = 0x42

// Sum64 hashes b with the default seed.
func Sum64(b []byte) uint64 {
	d := xxhash.NewWithSeed(DefaultSeed)
	_, _ = d.Write(b)
	return d.Sum64()
}

// Sum64String hashes s with the default seed without copying it.
func Sum64String(s string) uint64 {
	d := xxhash.NewWithSeed(DefaultSeed)
	_, _ = d.WriteString(s)
	return d.Sum64()
}

// Accum accumulates a streaming hash over multiple writes. The digest of an
// Accum fed a single write equals the one-shot Sum64 of the same bytes.
type Accum struct {
	d *xxhash.Digest
}

// NewAccum returns a streaming hasher seeded with DefaultSeed.
func NewAccum() *Accum {
	return &Accum{d: xxhash.NewWithSeed(DefaultSeed)}
}

// Reset restores the accumulator to its initial seeded state.
func (a *Accum) Reset() { a.d.ResetWithSeed(DefaultSeed) }

// Write feeds raw bytes into the digest.
func (a *Accum) Write(b []byte) {
	_, _ = a.d.Write(b)
}

// WriteString feeds a string into the digest without copying it.
func (a *Accum) WriteString(s string) {
	_, _ = a.d.WriteString(s)
}

// WriteUint64 feeds a little-endian uint64 into the digest.
func (a *Accum) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	a.Write(buf[:])
}

// Digest returns the hash of everything written so far.
func (a *Accum) Digest() uint64 { return a.d.Sum64() }
