// Package pool implements the string interning table that owns the offsets
// stored by string columns. The evaluation core only depends on the lookup
// contract; this implementation exists so the engine has a concrete pool to
// evaluate against.
package pool

import (
	"strings"
	"sync"

	"github.com/colibri-db/colibri/internal/hash"
)

// PadChar is the trailing pad character of fixed-width strings.
const PadChar = "\x00"

// Pool interns strings to stable integer offsets. It is append-only:
// offsets are never reassigned, so concurrent readers need no coordination
// beyond the pool's own lock.
type Pool struct {
	mu      sync.RWMutex
	byHash  map[uint64][]uint64
	strings []string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{byHash: make(map[uint64][]uint64)}
}

// Intern returns the offset for s, adding it to the pool if absent.
func (p *Pool) Intern(s string) uint64 {
	h := hash.Sum64String(s)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, off := range p.byHash[h] {
		if p.strings[off] == s {
			return off
		}
	}
	off := uint64(len(p.strings))
	p.strings = append(p.strings, s)
	p.byHash[h] = append(p.byHash[h], off)
	return off
}

// OffsetFor returns the offset already interned for s, if any.
func (p *Pool) OffsetFor(s string) (uint64, bool) {
	h := hash.Sum64String(s)
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, off := range p.byHash[h] {
		if p.strings[off] == s {
			return off, true
		}
	}
	return 0, false
}

// OffsetsFor resolves a set of raw strings to the set of their interned
// offsets. Strings the pool has never seen contribute nothing: a column
// cannot store an offset for them.
func (p *Pool) OffsetsFor(values map[string]struct{}) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(values))
	for s := range values {
		if off, ok := p.OffsetFor(s); ok {
			out[off] = struct{}{}
		}
	}
	return out
}

// StringAt reconstructs the string interned at off.
func (p *Pool) StringAt(off uint64) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if off >= uint64(len(p.strings)) {
		return "", false
	}
	return p.strings[off], true
}

// Len returns the number of interned strings.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.strings)
}

// PadToWidth pads s with trailing NULs to exactly width bytes. ok is false
// when s does not fit, in which case no fixed-width column of that width
// can store it.
func PadToWidth(s string, width int) (string, bool) {
	if len(s) > width {
		return "", false
	}
	return s + strings.Repeat(PadChar, width-len(s)), true
}

// StripPadding removes the trailing NUL padding of a fixed-width string so
// that padded and unpadded spellings compare by logical content.
func StripPadding(s string) string {
	return strings.TrimRight(s, PadChar)
}
