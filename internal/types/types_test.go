package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colibri-db/colibri/internal/types"
)

func TestTag_Predicates(t *testing.T) {
	tests := []struct {
		tag      types.Tag
		signed   bool
		unsigned bool
		float    bool
		numeric  bool
		sequence bool
	}{
		{tag: types.Empty},
		{tag: types.Bool},
		{tag: types.Int8, signed: true, numeric: true},
		{tag: types.Int64, signed: true, numeric: true},
		{tag: types.Uint8, unsigned: true, numeric: true},
		{tag: types.Uint64, unsigned: true, numeric: true},
		{tag: types.Float32, float: true, numeric: true},
		{tag: types.Float64, float: true, numeric: true},
		{tag: types.StringFixed, sequence: true},
		{tag: types.StringDynamic, sequence: true},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			assert.Equal(t, tt.signed, tt.tag.IsSigned())
			assert.Equal(t, tt.unsigned, tt.tag.IsUnsigned())
			assert.Equal(t, tt.signed || tt.unsigned, tt.tag.IsInteger())
			assert.Equal(t, tt.float, tt.tag.IsFloat())
			assert.Equal(t, tt.numeric, tt.tag.IsNumeric())
			assert.Equal(t, tt.sequence, tt.tag.IsSequence())
		})
	}
}

func TestTag_BoolIsNotNumeric(t *testing.T) {
	assert.True(t, types.Bool.IsBool())
	assert.False(t, types.Bool.IsNumeric())
	assert.False(t, types.Bool.IsInteger())
}

func TestTag_Width(t *testing.T) {
	assert.Equal(t, 8, types.Int8.Width())
	assert.Equal(t, 8, types.Bool.Width())
	assert.Equal(t, 16, types.Uint16.Width())
	assert.Equal(t, 32, types.Float32.Width())
	assert.Equal(t, 64, types.Int64.Width())
	assert.Equal(t, 64, types.Uint64.Width())
	assert.Equal(t, 0, types.StringDynamic.Width())
	assert.Equal(t, 0, types.Empty.Width())
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "int32", types.Int32.String())
	assert.Equal(t, "string_fixed", types.StringFixed.String())
	assert.Equal(t, "empty", types.Empty.String())
	assert.Contains(t, types.Tag(99).String(), "unknown_tag")
}

func TestTag_IsFixedString(t *testing.T) {
	assert.True(t, types.StringFixed.IsFixedString())
	assert.False(t, types.StringDynamic.IsFixedString())
}
