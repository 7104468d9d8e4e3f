package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

func TestSet_Basics(t *testing.T) {
	s := value.NewInt64Set(1, 2, 3)
	assert.Equal(t, types.Int64, s.Tag())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Empty())

	empty := value.NewInt64Set()
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Len())
}

func TestSet_Int64Set(t *testing.T) {
	s := value.NewInt64Set(-1, 0, 42)
	got := s.Int64Set()
	assert.Len(t, got, 3)
	assert.Contains(t, got, int64(-1))
	assert.Contains(t, got, int64(42))

	// Memoized: same map on repeated calls.
	assert.Len(t, s.Int64Set(), 3)
}

func TestSet_Int64SetDropsUnrepresentableMembers(t *testing.T) {
	s := value.NewUint64Set(1, math.MaxUint64)
	got := s.Int64Set()
	assert.Len(t, got, 1)
	assert.Contains(t, got, int64(1))
}

func TestSet_Uint64SetDropsNegativeMembers(t *testing.T) {
	s := value.NewInt64Set(-5, 0, 7)
	got := s.Uint64Set()
	assert.Len(t, got, 2)
	assert.Contains(t, got, uint64(0))
	assert.Contains(t, got, uint64(7))

	nn := s.NonNegativeUint64Set()
	assert.Len(t, nn, 2)
	assert.Contains(t, nn, uint64(7))
}

func TestSet_Float64Set(t *testing.T) {
	s := value.NewFloat64Set(1.5, -2.25)
	got := s.Float64Set()
	assert.Len(t, got, 2)
	assert.Contains(t, got, 1.5)
	assert.Contains(t, got, -2.25)

	// Integer members convert exactly.
	mixed := value.NewInt32Set(3)
	assert.Contains(t, mixed.Float64Set(), 3.0)
}

func TestSet_StringSet(t *testing.T) {
	s := value.NewStringSet("apple", "banana")
	got := s.StringSet()
	assert.Len(t, got, 2)
	assert.Contains(t, got, "apple")
}

func TestSet_FixedWidthStringSet(t *testing.T) {
	s := value.NewStringSet("ab", "toolong")

	got := s.FixedWidthStringSet(4)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "ab\x00\x00")

	// A different width materializes separately.
	wide := s.FixedWidthStringSet(8)
	assert.Len(t, wide, 2)
	assert.Contains(t, wide, "toolong\x00")

	// Memoized per width.
	assert.Len(t, s.FixedWidthStringSet(4), 1)
}

func TestSet_BoolSetExistsForRejectionTests(t *testing.T) {
	s := value.NewBoolSet(true, false)
	assert.Equal(t, types.Bool, s.Tag())
	assert.Equal(t, 2, s.Len())
}
