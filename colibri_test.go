package colibri_test

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colibri "github.com/colibri-db/colibri"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

func int64Column(t *testing.T, mem memory.Allocator, vals []int64) *colibri.Column {
	t.Helper()
	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.AppendValues(vals, nil)
	return colibri.NewColumn(types.Int64, b.NewArray())
}

func TestFacade_FilterExpression(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := colibri.NewEngine(mem)

	ages := int64Column(t, mem, []int64{17, 25, 34, 12, 61})
	codes := int64Column(t, mem, []int64{1, 2, 2, 3, 2})

	adults, err := engine.EvaluateBinary(
		colibri.ColumnOf(ages, nil),
		colibri.ValueOf(value.NewInt64(18)),
		colibri.OpGe,
	)
	require.NoError(t, err)

	wanted, err := engine.EvaluateBinary(
		colibri.ColumnOf(codes, nil),
		colibri.SetOf(value.NewInt64Set(2)),
		colibri.OpIsIn,
	)
	require.NoError(t, err)

	out, err := engine.EvaluateBinary(adults, wanted, colibri.OpAnd)
	require.NoError(t, err)

	mask, ok := out.(colibri.MaskOperand)
	require.True(t, ok)
	assert.Equal(t, []bool{false, true, true, false, true}, mask.Mask.Slice())
}

func TestFacade_StringEquality(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := colibri.NewEngine(mem)
	p := colibri.NewPool()

	offsets := []uint64{p.Intern("red"), p.Intern("green"), p.Intern("red")}
	b := array.NewUint64Builder(mem)
	defer b.Release()
	b.AppendValues(offsets, nil)
	col := colibri.NewColumn(types.StringDynamic, b.NewArray())

	out, err := engine.EvaluateBinary(
		colibri.ColumnOf(col, p),
		colibri.ValueOf(value.NewString("red")),
		colibri.OpEq,
	)
	require.NoError(t, err)

	mask, ok := out.(colibri.MaskOperand)
	require.True(t, ok)
	assert.Equal(t, []bool{true, false, true}, mask.Mask.Slice())
}

func TestFacade_MaskOf(t *testing.T) {
	mem := memory.NewGoAllocator()
	engine := colibri.NewEngine(mem)

	col := int64Column(t, mem, []int64{1, 2, 3})
	gt1, err := engine.EvaluateBinary(
		colibri.ColumnOf(col, nil),
		colibri.ValueOf(value.NewInt64(1)),
		colibri.OpGt,
	)
	require.NoError(t, err)

	prior, ok := gt1.(colibri.MaskOperand)
	require.True(t, ok)

	out, err := engine.EvaluateBinary(colibri.MaskOf(prior.Mask), gt1, colibri.OpXor)
	require.NoError(t, err)
	mask, ok := out.(colibri.MaskOperand)
	require.True(t, ok)
	assert.Equal(t, 0, mask.Mask.Count())
}
