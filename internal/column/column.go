// Package column models the physical column the evaluation core consumes:
// an arrow buffer of stored rows, a logical row count and an optional
// sparse mapping from stored to logical positions. The buffer's layout and
// the sparse bitmap representation belong to the storage layer; this
// package only reads them.
package column

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/pool"
	"github.com/colibri-db/colibri/internal/types"
)

// Column is an immutable typed column. Physical rows live in an arrow
// array; a sparse column stores fewer physical rows than its logical row
// count and maps each stored row to its logical position.
type Column struct {
	tag        types.Tag
	data       arrow.Array
	logicalLen int
	sparseMap  []uint32
	fixedWidth int
}

// New wraps a dense column: every logical row is stored.
func New(tag types.Tag, data arrow.Array) *Column {
	return &Column{tag: tag, data: data, logicalLen: data.Len()}
}

// NewEmpty returns a column of the empty type: rows logical rows, no data.
func NewEmpty(rows int) *Column {
	return &Column{tag: types.Empty, logicalLen: rows}
}

// NewSparse wraps a sparse column. sparseMap maps each physical row to its
// logical position and must be strictly increasing with every entry below
// logicalLen.
func NewSparse(tag types.Tag, data arrow.Array, logicalLen int, sparseMap []uint32) (*Column, error) {
	if len(sparseMap) != data.Len() {
		return nil, errors.Assertion("Column",
			"sparse map length %d does not match physical row count %d", len(sparseMap), data.Len())
	}
	for i, logical := range sparseMap {
		if int(logical) >= logicalLen || (i > 0 && logical <= sparseMap[i-1]) {
			return nil, errors.Assertion("Column",
				"sparse map entry %d (logical row %d) out of order or out of range", i, logical)
		}
	}
	return &Column{tag: tag, data: data, logicalLen: logicalLen, sparseMap: sparseMap}, nil
}

// NewString wraps a variable-width string column of pool offsets.
func NewString(offsets arrow.Array) *Column {
	return &Column{tag: types.StringDynamic, data: offsets, logicalLen: offsets.Len()}
}

// NewFixedString wraps a fixed-width string column of pool offsets; width
// is the stored byte width every value is NUL padded to.
func NewFixedString(offsets arrow.Array, width int) *Column {
	return &Column{tag: types.StringFixed, data: offsets, logicalLen: offsets.Len(), fixedWidth: width}
}

// Tag returns the column's type tag.
func (c *Column) Tag() types.Tag { return c.tag }

// RowCount returns the logical row count.
func (c *Column) RowCount() int { return c.logicalLen }

// PhysicalRowCount returns the number of stored rows.
func (c *Column) PhysicalRowCount() int {
	if c.data == nil {
		return 0
	}
	return c.data.Len()
}

// IsSparse reports whether the column omits rows from physical storage.
func (c *Column) IsSparse() bool { return c.sparseMap != nil }

// SparseMap returns the physical-to-logical row mapping, nil when dense.
func (c *Column) SparseMap() []uint32 { return c.sparseMap }

// FixedWidth returns the stored byte width of a fixed-width string column,
// zero otherwise.
func (c *Column) FixedWidth() int { return c.fixedWidth }

// Data exposes the physical buffer.
func (c *Column) Data() arrow.Array { return c.data }

// StringPool is the contract the evaluation core requires from the
// interning table owning a string column's offsets. The pool is append-only
// and safe for concurrent reads per its own contract.
type StringPool interface {
	OffsetFor(s string) (uint64, bool)
	OffsetsFor(values map[string]struct{}) map[uint64]struct{}
	StringAt(offset uint64) (string, bool)
}

// WithStrings pairs a column with the pool that owns its string offsets.
// Numeric columns carry a nil pool.
type WithStrings struct {
	Col  *Column
	Pool StringPool
}

// StringAt reconstructs the string stored at a physical row's offset,
// stripping fixed-width padding when strip is set.
func (ws WithStrings) StringAt(offset uint64, strip bool) (string, bool) {
	if ws.Pool == nil {
		return "", false
	}
	s, ok := ws.Pool.StringAt(offset)
	if !ok {
		return "", false
	}
	if strip {
		s = pool.StripPadding(s)
	}
	return s, true
}
