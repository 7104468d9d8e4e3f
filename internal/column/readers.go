package column

import (
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Readers give promoted-type access to a column's physical rows without
// materializing a converted copy. Each reader takes a physical row index.

// Int64Reader returns an int64 view over the physical rows. ok is false
// when the buffer has no integer representation. Uint64 buffers are
// included because signed arithmetic promotion of mixed-sign operands
// narrows to int64 by the promotion rule.
func Int64Reader(c *Column) (func(int) int64, bool) {
	switch a := c.data.(type) {
	case *array.Int8:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Int16:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Int32:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Int64:
		return func(i int) int64 { return a.Value(i) }, true
	case *array.Uint8:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Uint16:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Uint32:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	case *array.Uint64:
		return func(i int) int64 { return int64(a.Value(i)) }, true
	}
	return nil, false
}

// Uint64Reader returns a uint64 view over the physical rows of an unsigned
// column.
func Uint64Reader(c *Column) (func(int) uint64, bool) {
	switch a := c.data.(type) {
	case *array.Uint8:
		return func(i int) uint64 { return uint64(a.Value(i)) }, true
	case *array.Uint16:
		return func(i int) uint64 { return uint64(a.Value(i)) }, true
	case *array.Uint32:
		return func(i int) uint64 { return uint64(a.Value(i)) }, true
	case *array.Uint64:
		return func(i int) uint64 { return a.Value(i) }, true
	}
	return nil, false
}

// Float64Reader returns a float64 view over the physical rows of any
// numeric column.
func Float64Reader(c *Column) (func(int) float64, bool) {
	switch a := c.data.(type) {
	case *array.Int8:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Int16:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Int32:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Int64:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Uint8:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Uint16:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Uint32:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Uint64:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Float32:
		return func(i int) float64 { return float64(a.Value(i)) }, true
	case *array.Float64:
		return func(i int) float64 { return a.Value(i) }, true
	}
	return nil, false
}

// BoolReader returns a view over the physical rows of a boolean column.
func BoolReader(c *Column) (func(int) bool, bool) {
	if a, ok := c.data.(*array.Boolean); ok {
		return func(i int) bool { return a.Value(i) }, true
	}
	return nil, false
}

// OffsetReader returns the stored pool offsets of a string column.
func OffsetReader(c *Column) (func(int) uint64, bool) {
	if !c.tag.IsSequence() {
		return nil, false
	}
	if a, ok := c.data.(*array.Uint64); ok {
		return func(i int) uint64 { return a.Value(i) }, true
	}
	return nil, false
}
