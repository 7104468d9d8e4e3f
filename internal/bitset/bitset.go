// Package bitset provides the row mask produced by filtering operations:
// one bit per logical row over a compressed bitmap.
package bitset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a bitset over the logical rows of a column. Unset bits mean "no
// match"; rows a sparse column never stored stay unset.
type Mask struct {
	bits *roaring.Bitmap
	n    uint32
}

// New returns an all-unset mask over n logical rows.
func New(n int) *Mask {
	return &Mask{bits: roaring.New(), n: uint32(n)}
}

// NewFull returns an all-set mask over n logical rows.
func NewFull(n int) *Mask {
	m := New(n)
	m.SetAll()
	return m
}

// FromBools builds a mask from a per-row boolean slice, mainly for tests.
func FromBools(rows []bool) *Mask {
	m := New(len(rows))
	for i, set := range rows {
		if set {
			m.Set(i)
		}
	}
	return m
}

// Len returns the logical row count the mask covers.
func (m *Mask) Len() int { return int(m.n) }

// Count returns the number of set bits.
func (m *Mask) Count() int { return int(m.bits.GetCardinality()) }

// Set sets the bit for logical row i.
func (m *Mask) Set(i int) { m.bits.Add(uint32(i)) }

// Test reports whether the bit for logical row i is set.
func (m *Mask) Test(i int) bool { return m.bits.Contains(uint32(i)) }

// SetAll sets every bit in [0, Len).
func (m *Mask) SetAll() {
	if m.n > 0 {
		m.bits.AddRange(0, uint64(m.n))
	}
}

// And returns the intersection of two masks of equal length.
func (m *Mask) And(other *Mask) *Mask {
	return &Mask{bits: roaring.And(m.bits, other.bits), n: m.n}
}

// Or returns the union of two masks of equal length.
func (m *Mask) Or(other *Mask) *Mask {
	return &Mask{bits: roaring.Or(m.bits, other.bits), n: m.n}
}

// Xor returns the symmetric difference of two masks of equal length.
func (m *Mask) Xor(other *Mask) *Mask {
	return &Mask{bits: roaring.Xor(m.bits, other.bits), n: m.n}
}

// Not returns the complement of the mask over its logical length.
func (m *Mask) Not() *Mask {
	flipped := m.bits.Clone()
	flipped.Flip(0, uint64(m.n))
	return &Mask{bits: flipped, n: m.n}
}

// Compact run-compresses the underlying bitmap. Purely a storage and
// iteration optimization; the mask's contents are unchanged.
func (m *Mask) Compact() { m.bits.RunOptimize() }

// Equal reports whether two masks cover the same rows with identical bits.
func (m *Mask) Equal(other *Mask) bool {
	return m.n == other.n && m.bits.Equals(other.bits)
}

// Slice expands the mask to a per-row boolean slice.
func (m *Mask) Slice() []bool {
	out := make([]bool, m.n)
	it := m.bits.Iterator()
	for it.HasNext() {
		out[it.Next()] = true
	}
	return out
}
