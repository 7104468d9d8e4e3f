package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

func TestValue_Tags(t *testing.T) {
	assert.Equal(t, types.Int8, value.NewInt8(1).Tag())
	assert.Equal(t, types.Uint32, value.NewUint32(1).Tag())
	assert.Equal(t, types.Float32, value.NewFloat32(1).Tag())
	assert.Equal(t, types.Bool, value.NewBool(true).Tag())
	assert.Equal(t, types.StringDynamic, value.NewString("x").Tag())
}

func TestValue_AsInt64(t *testing.T) {
	v, ok := value.NewInt8(-5).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(-5), v)

	v, ok = value.NewUint32(math.MaxUint32).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxUint32), v)

	// uint64 beyond int64 range has no int64 view.
	_, ok = value.NewUint64(math.MaxUint64).AsInt64()
	assert.False(t, ok)

	_, ok = value.NewFloat64(1.5).AsInt64()
	assert.False(t, ok)

	_, ok = value.NewString("1").AsInt64()
	assert.False(t, ok)
}

func TestValue_AsUint64(t *testing.T) {
	v, ok := value.NewUint64(math.MaxUint64).AsUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), v)

	v, ok = value.NewInt32(7).AsUint64()
	require.True(t, ok)
	assert.Equal(t, uint64(7), v)

	// Negative values have no unsigned view.
	_, ok = value.NewInt64(-1).AsUint64()
	assert.False(t, ok)
	_, ok = value.NewInt8(-1).AsUint64()
	assert.False(t, ok)
}

func TestValue_AsFloat64(t *testing.T) {
	v, ok := value.NewFloat32(1.5).AsFloat64()
	require.True(t, ok)
	assert.InDelta(t, 1.5, v, 1e-9)

	v, ok = value.NewInt64(-3).AsFloat64()
	require.True(t, ok)
	assert.InDelta(t, -3.0, v, 1e-9)

	_, ok = value.NewBool(true).AsFloat64()
	assert.False(t, ok)
}

func TestValue_AsBoolAndStr(t *testing.T) {
	b, ok := value.NewBool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)
	_, ok = value.NewInt64(1).AsBool()
	assert.False(t, ok)

	s, ok := value.NewString("apple").Str()
	require.True(t, ok)
	assert.Equal(t, "apple", s)
	_, ok = value.NewInt64(1).Str()
	assert.False(t, ok)
}

func TestFromInt64_Narrowing(t *testing.T) {
	assert.Equal(t, types.Int8, value.FromInt64(types.Int8, 5).Tag())
	assert.Equal(t, types.Int16, value.FromInt64(types.Int16, 5).Tag())
	assert.Equal(t, types.Int32, value.FromInt64(types.Int32, 5).Tag())
	assert.Equal(t, types.Int64, value.FromInt64(types.Int64, 5).Tag())

	v, ok := value.FromInt64(types.Int16, -300).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(-300), v)
}

func TestFromUint64_Narrowing(t *testing.T) {
	assert.Equal(t, types.Uint8, value.FromUint64(types.Uint8, 5).Tag())
	assert.Equal(t, types.Uint64, value.FromUint64(types.Uint64, 5).Tag())
}

func TestFromFloat64_Narrowing(t *testing.T) {
	assert.Equal(t, types.Float32, value.FromFloat64(types.Float32, 1.5).Tag())
	assert.Equal(t, types.Float64, value.FromFloat64(types.Float64, 1.5).Tag())
}
