// Package colibri exposes the expression-evaluation core of the colibri
// columnar analytical engine: binary operations between columns, scalar
// values, value-sets and row masks, with runtime type dispatch, numeric
// promotion and absorbing-result short circuits.
//
// The expression-tree walker drives evaluation through a single entry
// point:
//
//	engine := colibri.NewEngine(nil)
//	mask, err := engine.EvaluateBinary(left, right, colibri.OpGt)
package colibri

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colibri-db/colibri/internal/bitset"
	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/compute"
	"github.com/colibri-db/colibri/internal/pool"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

// Core evaluation types re-exported from the internal packages.
type (
	Engine        = compute.Engine
	Operand       = compute.Operand
	OperationKind = compute.OperationKind
	ColumnOperand = compute.ColumnOperand
	ValueOperand  = compute.ValueOperand
	SetOperand    = compute.SetOperand
	MaskOperand   = compute.MaskOperand
	EmptyResult   = compute.EmptyResult
	FullResult    = compute.FullResult

	Column      = column.Column
	StringPool  = column.StringPool
	WithStrings = column.WithStrings
	Mask        = bitset.Mask
	Value       = value.Value
	ValueSet    = value.Set
	Pool        = pool.Pool
)

// Operation kinds.
const (
	OpAnd     = compute.OpAnd
	OpOr      = compute.OpOr
	OpXor     = compute.OpXor
	OpIsIn    = compute.OpIsIn
	OpIsNotIn = compute.OpIsNotIn
	OpEq      = compute.OpEq
	OpNe      = compute.OpNe
	OpLt      = compute.OpLt
	OpLe      = compute.OpLe
	OpGt      = compute.OpGt
	OpGe      = compute.OpGe
	OpAdd     = compute.OpAdd
	OpSub     = compute.OpSub
	OpMul     = compute.OpMul
	OpDiv     = compute.OpDiv
)

// NewEngine creates an evaluation engine. A nil allocator falls back to the
// Go allocator.
func NewEngine(mem memory.Allocator) *Engine {
	return compute.NewEngine(mem)
}

// NewColumn wraps an arrow buffer as a dense column of the given type.
func NewColumn(tag types.Tag, data arrow.Array) *Column {
	return column.New(tag, data)
}

// NewPool creates an empty string interning pool.
func NewPool() *Pool {
	return pool.New()
}

// ColumnOf wraps a column (and, for string columns, its pool) as an
// evaluation operand.
func ColumnOf(col *Column, p StringPool) ColumnOperand {
	return compute.NewColumnOperand(col, p)
}

// ValueOf wraps a scalar as an evaluation operand.
func ValueOf(v *Value) ValueOperand {
	return ValueOperand{Value: v}
}

// SetOf wraps a value-set as an evaluation operand.
func SetOf(s *ValueSet) SetOperand {
	return SetOperand{Set: s}
}

// MaskOf wraps a previously computed mask as an evaluation operand.
func MaskOf(m *Mask) MaskOperand {
	return MaskOperand{Mask: m}
}
