// Package testutil provides helpers for building columns and operands in
// tests.
package testutil

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/pool"
	"github.com/colibri-db/colibri/internal/types"
)

// Int8Array builds an arrow buffer from vals.
func Int8Array(mem memory.Allocator, vals []int8) arrow.Array {
	b := array.NewInt8Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// Int32Array builds an arrow buffer from vals.
func Int32Array(mem memory.Allocator, vals []int32) arrow.Array {
	b := array.NewInt32Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// Int64Array builds an arrow buffer from vals.
func Int64Array(mem memory.Allocator, vals []int64) arrow.Array {
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// Uint64Array builds an arrow buffer from vals.
func Uint64Array(mem memory.Allocator, vals []uint64) arrow.Array {
	b := array.NewUint64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// Float64Array builds an arrow buffer from vals.
func Float64Array(mem memory.Allocator, vals []float64) arrow.Array {
	b := array.NewFloat64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// BoolArray builds an arrow buffer from vals.
func BoolArray(mem memory.Allocator, vals []bool) arrow.Array {
	b := array.NewBooleanBuilder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewArray()
}

// Int8Column builds a dense int8 column.
func Int8Column(mem memory.Allocator, vals []int8) *column.Column {
	return column.New(types.Int8, Int8Array(mem, vals))
}

// Int32Column builds a dense int32 column.
func Int32Column(mem memory.Allocator, vals []int32) *column.Column {
	return column.New(types.Int32, Int32Array(mem, vals))
}

// Int64Column builds a dense int64 column.
func Int64Column(mem memory.Allocator, vals []int64) *column.Column {
	return column.New(types.Int64, Int64Array(mem, vals))
}

// Uint64Column builds a dense uint64 column.
func Uint64Column(mem memory.Allocator, vals []uint64) *column.Column {
	return column.New(types.Uint64, Uint64Array(mem, vals))
}

// Float64Column builds a dense float64 column.
func Float64Column(mem memory.Allocator, vals []float64) *column.Column {
	return column.New(types.Float64, Float64Array(mem, vals))
}

// BoolColumn builds a dense boolean column.
func BoolColumn(mem memory.Allocator, vals []bool) *column.Column {
	return column.New(types.Bool, BoolArray(mem, vals))
}

// SparseInt64Column builds an int64 column storing only vals, mapped to
// logical rows by sparseMap.
func SparseInt64Column(mem memory.Allocator, vals []int64, logicalLen int, sparseMap []uint32) (*column.Column, error) {
	return column.NewSparse(types.Int64, Int64Array(mem, vals), logicalLen, sparseMap)
}

// StringColumn interns vals into p and builds a variable-width string
// column of the resulting offsets.
func StringColumn(mem memory.Allocator, p *pool.Pool, vals []string) *column.Column {
	offsets := make([]uint64, len(vals))
	for i, s := range vals {
		offsets[i] = p.Intern(s)
	}
	return column.NewString(Uint64Array(mem, offsets))
}

// FixedStringColumn pads vals to width, interns the padded spellings and
// builds a fixed-width string column.
func FixedStringColumn(mem memory.Allocator, p *pool.Pool, vals []string, width int) (*column.Column, bool) {
	offsets := make([]uint64, len(vals))
	for i, s := range vals {
		padded, ok := pool.PadToWidth(s, width)
		if !ok {
			return nil, false
		}
		offsets[i] = p.Intern(padded)
	}
	return column.NewFixedString(Uint64Array(mem, offsets), width), true
}
