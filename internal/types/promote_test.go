package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colibri-db/colibri/internal/types"
)

func TestArithmeticPromotion_IntegerWidening(t *testing.T) {
	tests := []struct {
		name  string
		left  types.Tag
		right types.Tag
		op    types.ArithOp
		want  types.Tag
	}{
		{name: "int8 add int8 doubles width", left: types.Int8, right: types.Int8, op: types.ArithAdd, want: types.Int16},
		{name: "uint8 add uint8 stays unsigned", left: types.Uint8, right: types.Uint8, op: types.ArithAdd, want: types.Uint16},
		{name: "int16 mul int16", left: types.Int16, right: types.Int16, op: types.ArithMul, want: types.Int32},
		{name: "uint32 add uint32", left: types.Uint32, right: types.Uint32, op: types.ArithAdd, want: types.Uint64},
		{name: "width capped at 64", left: types.Int64, right: types.Int64, op: types.ArithAdd, want: types.Int64},
		{name: "uint64 mul uint64 capped", left: types.Uint64, right: types.Uint64, op: types.ArithMul, want: types.Uint64},
		{name: "wider operand wins", left: types.Int8, right: types.Int32, op: types.ArithAdd, want: types.Int64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := types.ArithmeticPromotion(tt.left, tt.right, tt.op)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticPromotion_SignedRules(t *testing.T) {
	// Subtraction forces a signed result even for unsigned operands.
	got, ok := types.ArithmeticPromotion(types.Uint8, types.Uint8, types.ArithSub)
	require.True(t, ok)
	assert.Equal(t, types.Int16, got)

	// Mixed signedness makes the result signed.
	got, ok = types.ArithmeticPromotion(types.Uint16, types.Int16, types.ArithAdd)
	require.True(t, ok)
	assert.Equal(t, types.Int32, got)

	got, ok = types.ArithmeticPromotion(types.Int32, types.Uint8, types.ArithMul)
	require.True(t, ok)
	assert.Equal(t, types.Int64, got)
}

func TestArithmeticPromotion_FloatRules(t *testing.T) {
	got, ok := types.ArithmeticPromotion(types.Float32, types.Float32, types.ArithAdd)
	require.True(t, ok)
	assert.Equal(t, types.Float32, got)

	got, ok = types.ArithmeticPromotion(types.Float32, types.Float64, types.ArithAdd)
	require.True(t, ok)
	assert.Equal(t, types.Float64, got)

	got, ok = types.ArithmeticPromotion(types.Int64, types.Float32, types.ArithMul)
	require.True(t, ok)
	assert.Equal(t, types.Float64, got)
}

func TestArithmeticPromotion_DivisionAlwaysFloat64(t *testing.T) {
	for _, pair := range [][2]types.Tag{
		{types.Int8, types.Int8},
		{types.Uint64, types.Uint64},
		{types.Float32, types.Float32},
		{types.Int32, types.Uint16},
	} {
		got, ok := types.ArithmeticPromotion(pair[0], pair[1], types.ArithDiv)
		require.True(t, ok)
		assert.Equal(t, types.Float64, got, "%s / %s", pair[0], pair[1])
	}
}

func TestArithmeticPromotion_RejectsNonNumeric(t *testing.T) {
	for _, bad := range []types.Tag{types.Empty, types.Bool, types.StringFixed, types.StringDynamic} {
		_, ok := types.ArithmeticPromotion(bad, types.Int64, types.ArithAdd)
		assert.False(t, ok, "left %s", bad)
		_, ok = types.ArithmeticPromotion(types.Int64, bad, types.ArithAdd)
		assert.False(t, ok, "right %s", bad)
	}
}

func TestComparisonClass(t *testing.T) {
	tests := []struct {
		name  string
		left  types.Tag
		right types.Tag
		want  types.CmpClass
	}{
		{name: "signed pair", left: types.Int8, right: types.Int64, want: types.CmpInt64},
		{name: "unsigned pair", left: types.Uint16, right: types.Uint64, want: types.CmpUint64},
		{name: "float wins", left: types.Int64, right: types.Float32, want: types.CmpFloat64},
		{name: "float pair", left: types.Float64, right: types.Float64, want: types.CmpFloat64},
		{name: "narrow unsigned fits int64", left: types.Uint32, right: types.Int8, want: types.CmpInt64},
		{name: "uint64 against signed", left: types.Uint64, right: types.Int32, want: types.CmpUint64SpecialLeft},
		{name: "signed against uint64", left: types.Int64, right: types.Uint64, want: types.CmpUint64SpecialRight},
		{name: "bool pair", left: types.Bool, right: types.Bool, want: types.CmpBool},
		{name: "string pair", left: types.StringDynamic, right: types.StringDynamic, want: types.CmpString},
		{name: "mixed string widths", left: types.StringFixed, right: types.StringDynamic, want: types.CmpString},
		{name: "bool against int", left: types.Bool, right: types.Int8, want: types.CmpUnsupported},
		{name: "string against int", left: types.StringDynamic, right: types.Int64, want: types.CmpUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, types.ComparisonClass(tt.left, tt.right))
		})
	}
}
