package compute

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

// arithmeticValues computes a scalar/scalar operation: single-element
// promotion and computation, no column or pool involvement.
func (e *Engine) arithmeticValues(left, right *value.Value, op OperationKind) (Operand, error) {
	outTag, err := arithmeticOutputTag(left.Tag(), right.Tag(), op)
	if err != nil {
		return nil, err
	}

	switch {
	case outTag.IsFloat():
		lf, lok := left.AsFloat64()
		rf, rok := right.AsFloat64()
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no float64 view over %s/%s scalars", left.Tag(), right.Tag())
		}
		return ValueOperand{Value: value.FromFloat64(outTag, applyFloat64(op, lf, rf))}, nil
	case outTag.IsUnsigned():
		lu, lok := left.AsUint64()
		ru, rok := right.AsUint64()
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no uint64 view over %s/%s scalars", left.Tag(), right.Tag())
		}
		return ValueOperand{Value: value.FromUint64(outTag, applyUint64(op, lu, ru))}, nil
	default:
		li, lok := left.AsInt64()
		ri, rok := right.AsInt64()
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no int64 view over %s/%s scalars", left.Tag(), right.Tag())
		}
		return ValueOperand{Value: value.FromInt64(outTag, applyInt64(op, li, ri))}, nil
	}
}

// arithmeticColumns computes an elementwise operation over two aligned
// columns. The promoted output tag is computed first: the output buffer's
// element width depends on it.
func (e *Engine) arithmeticColumns(left, right *column.Column, op OperationKind) (Operand, error) {
	outTag, err := arithmeticOutputTag(left.Tag(), right.Tag(), op)
	if err != nil {
		return nil, err
	}
	if err := column.Aligned("Arithmetic", left, right); err != nil {
		return nil, err
	}

	n := left.PhysicalRowCount()
	var data arrow.Array
	switch {
	case outTag.IsFloat():
		lrd, lok := column.Float64Reader(left)
		rrd, rok := column.Float64Reader(right)
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no float64 view over %s/%s columns", left.Tag(), right.Tag())
		}
		data, err = column.MaterializeFloat64(e.mem, outTag, n, func(i int) float64 {
			return applyFloat64(op, lrd(i), rrd(i))
		})
	case outTag.IsUnsigned():
		lrd, lok := column.Uint64Reader(left)
		rrd, rok := column.Uint64Reader(right)
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no uint64 view over %s/%s columns", left.Tag(), right.Tag())
		}
		data, err = column.MaterializeUint64(e.mem, outTag, n, func(i int) uint64 {
			return applyUint64(op, lrd(i), rrd(i))
		})
	default:
		lrd, lok := column.Int64Reader(left)
		rrd, rok := column.Int64Reader(right)
		if !lok || !rok {
			return nil, errors.Assertion("Arithmetic", "no int64 view over %s/%s columns", left.Tag(), right.Tag())
		}
		data, err = column.MaterializeInt64(e.mem, outTag, n, func(i int) int64 {
			return applyInt64(op, lrd(i), rrd(i))
		})
	}
	if err != nil {
		return nil, err
	}
	return NewColumnOperand(column.NewLike(left, outTag, data), nil), nil
}

// arithmeticColumnValue computes an elementwise operation between a column
// and a scalar resolved once up front. reversed marks that the expression
// placed the scalar on the left; it only controls the argument order, the
// promotion path is shared.
func (e *Engine) arithmeticColumnValue(col *column.Column, val *value.Value, op OperationKind, reversed bool) (Operand, error) {
	ltag, rtag := col.Tag(), val.Tag()
	if reversed {
		ltag, rtag = rtag, ltag
	}
	outTag, err := arithmeticOutputTag(ltag, rtag, op)
	if err != nil {
		return nil, err
	}

	n := col.PhysicalRowCount()
	var data arrow.Array
	switch {
	case outTag.IsFloat():
		rd, ok := column.Float64Reader(col)
		sv, vok := val.AsFloat64()
		if !ok || !vok {
			return nil, errors.Assertion("Arithmetic", "no float64 view over %s/%s operands", col.Tag(), val.Tag())
		}
		gen := func(i int) float64 { return applyFloat64(op, rd(i), sv) }
		if reversed {
			gen = func(i int) float64 { return applyFloat64(op, sv, rd(i)) }
		}
		data, err = column.MaterializeFloat64(e.mem, outTag, n, gen)
	case outTag.IsUnsigned():
		rd, ok := column.Uint64Reader(col)
		sv, vok := val.AsUint64()
		if !ok || !vok {
			return nil, errors.Assertion("Arithmetic", "no uint64 view over %s/%s operands", col.Tag(), val.Tag())
		}
		gen := func(i int) uint64 { return applyUint64(op, rd(i), sv) }
		if reversed {
			gen = func(i int) uint64 { return applyUint64(op, sv, rd(i)) }
		}
		data, err = column.MaterializeUint64(e.mem, outTag, n, gen)
	default:
		rd, ok := column.Int64Reader(col)
		sv, vok := val.AsInt64()
		if !ok || !vok {
			return nil, errors.Assertion("Arithmetic", "no int64 view over %s/%s operands", col.Tag(), val.Tag())
		}
		gen := func(i int) int64 { return applyInt64(op, rd(i), sv) }
		if reversed {
			gen = func(i int) int64 { return applyInt64(op, sv, rd(i)) }
		}
		data, err = column.MaterializeInt64(e.mem, outTag, n, gen)
	}
	if err != nil {
		return nil, err
	}
	return NewColumnOperand(column.NewLike(col, outTag, data), nil), nil
}

// arithmeticOutputTag validates both operand tags and picks the promoted
// output type. Arithmetic has no defined result for empty-typed or
// non-numeric data and is not silently absorbed the way boolean predicates
// are.
func arithmeticOutputTag(left, right types.Tag, op OperationKind) (types.Tag, error) {
	if left.IsEmpty() || right.IsEmpty() {
		return types.Empty, errors.UnsupportedColumnType("Arithmetic",
			"empty-typed operand provided to arithmetic operation")
	}
	if !left.IsNumeric() {
		return types.Empty, errors.UnsupportedColumnType("Arithmetic",
			"non-numeric type %s provided to arithmetic operation", left)
	}
	if !right.IsNumeric() {
		return types.Empty, errors.UnsupportedColumnType("Arithmetic",
			"non-numeric type %s provided to arithmetic operation", right)
	}
	outTag, ok := types.ArithmeticPromotion(left, right, arithKind(op))
	if !ok {
		return types.Empty, errors.UnsupportedColumnType("Arithmetic",
			"no promoted type for %s %s %s", left, op, right)
	}
	return outTag, nil
}
