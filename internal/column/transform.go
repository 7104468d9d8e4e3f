package column

import (
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colibri-db/colibri/internal/bitset"
	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/types"
)

// TransformMask evaluates fn over every physical row of c and sets the bit
// at the corresponding logical position when fn returns true. Logical rows
// a sparse column never stored stay unset.
func TransformMask(c *Column, fn func(phys int) bool) *bitset.Mask {
	out := bitset.New(c.RowCount())
	n := c.PhysicalRowCount()
	if c.sparseMap != nil {
		for i := 0; i < n; i++ {
			if fn(i) {
				out.Set(int(c.sparseMap[i]))
			}
		}
		return out
	}
	for i := 0; i < n; i++ {
		if fn(i) {
			out.Set(i)
		}
	}
	return out
}

// Aligned verifies two columns share row layout: equal logical and physical
// row counts and, when sparse, identical sparse maps. Elementwise pair
// operations require this so the same physical index addresses the same
// logical row on both sides.
func Aligned(op string, a, b *Column) *errors.EvalError {
	if a.RowCount() != b.RowCount() {
		return errors.Assertion(op,
			"columns with different row counts (%d and %d)", a.RowCount(), b.RowCount())
	}
	if a.PhysicalRowCount() != b.PhysicalRowCount() || !slices.Equal(a.sparseMap, b.sparseMap) {
		return errors.Assertion(op, "columns with mismatched sparse layouts")
	}
	return nil
}

// TransformMaskPair evaluates fn over the shared physical rows of two
// aligned columns, producing a mask over logical rows.
func TransformMaskPair(op string, a, b *Column, fn func(phys int) bool) (*bitset.Mask, error) {
	if err := Aligned(op, a, b); err != nil {
		return nil, err
	}
	return TransformMask(a, fn), nil
}

// NewLike builds a column with src's row layout and a new tag and buffer.
// Arithmetic uses it so output columns inherit the input's sparse map.
func NewLike(src *Column, tag types.Tag, data arrow.Array) *Column {
	return &Column{
		tag:        tag,
		data:       data,
		logicalLen: src.logicalLen,
		sparseMap:  src.sparseMap,
	}
}

// MaterializeInt64 builds an arrow buffer of the physical type named by tag
// from an int64-valued element function, narrowing each element to the
// output width. tag must be a signed integer tag.
func MaterializeInt64(mem memory.Allocator, tag types.Tag, n int, gen func(int) int64) (arrow.Array, error) {
	switch tag {
	case types.Int8:
		b := array.NewInt8Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(int8(gen(i)))
		}
		return b.NewArray(), nil
	case types.Int16:
		b := array.NewInt16Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(int16(gen(i)))
		}
		return b.NewArray(), nil
	case types.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(int32(gen(i)))
		}
		return b.NewArray(), nil
	case types.Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(gen(i))
		}
		return b.NewArray(), nil
	}
	return nil, errors.Assertion("Materialize", "tag %s is not a signed integer output type", tag)
}

// MaterializeUint64 builds an arrow buffer of the physical type named by
// tag from a uint64-valued element function. tag must be an unsigned
// integer tag.
func MaterializeUint64(mem memory.Allocator, tag types.Tag, n int, gen func(int) uint64) (arrow.Array, error) {
	switch tag {
	case types.Uint8:
		b := array.NewUint8Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(uint8(gen(i)))
		}
		return b.NewArray(), nil
	case types.Uint16:
		b := array.NewUint16Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(uint16(gen(i)))
		}
		return b.NewArray(), nil
	case types.Uint32:
		b := array.NewUint32Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(uint32(gen(i)))
		}
		return b.NewArray(), nil
	case types.Uint64:
		b := array.NewUint64Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(gen(i))
		}
		return b.NewArray(), nil
	}
	return nil, errors.Assertion("Materialize", "tag %s is not an unsigned integer output type", tag)
}

// MaterializeFloat64 builds an arrow buffer of the physical type named by
// tag from a float64-valued element function. tag must be a float tag.
func MaterializeFloat64(mem memory.Allocator, tag types.Tag, n int, gen func(int) float64) (arrow.Array, error) {
	switch tag {
	case types.Float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(float32(gen(i)))
		}
		return b.NewArray(), nil
	case types.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.Reserve(n)
		for i := 0; i < n; i++ {
			b.Append(gen(i))
		}
		return b.NewArray(), nil
	}
	return nil, errors.Assertion("Materialize", "tag %s is not a float output type", tag)
}
