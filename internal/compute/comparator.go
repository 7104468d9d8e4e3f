package compute

import (
	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/pool"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

// compareColumns evaluates a comparison between two aligned columns,
// producing a mask over logical rows.
func (e *Engine) compareColumns(left, right column.WithStrings, op OperationKind) (Operand, error) {
	ltag, rtag := left.Col.Tag(), right.Col.Tag()
	if ltag.IsEmpty() || rtag.IsEmpty() {
		return EmptyResult{}, nil
	}

	var pred func(int) bool
	switch types.ComparisonClass(ltag, rtag) {
	case types.CmpString:
		// Fixed-width values carry trailing NUL padding; strip both sides
		// so padded and unpadded spellings compare by logical content.
		strip := ltag.IsFixedString() || rtag.IsFixedString()
		lrd, lok := column.OffsetReader(left.Col)
		rrd, rok := column.OffsetReader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "string column has no offset buffer")
		}
		pred = func(i int) bool {
			ls, lok := left.StringAt(lrd(i), strip)
			rs, rok := right.StringAt(rrd(i), strip)
			if !lok || !rok {
				return false
			}
			return compare(op, ls, rs)
		}

	case types.CmpBool:
		lrd, lok := column.BoolReader(left.Col)
		rrd, rok := column.BoolReader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "boolean column has no boolean buffer")
		}
		pred = func(i int) bool { return compare(op, boolRank(lrd(i)), boolRank(rrd(i))) }

	case types.CmpInt64:
		lrd, lok := column.Int64Reader(left.Col)
		rrd, rok := column.Int64Reader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "no int64 view over %s/%s columns", ltag, rtag)
		}
		pred = func(i int) bool { return compare(op, lrd(i), rrd(i)) }

	case types.CmpUint64:
		lrd, lok := column.Uint64Reader(left.Col)
		rrd, rok := column.Uint64Reader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "no uint64 view over %s/%s columns", ltag, rtag)
		}
		pred = func(i int) bool { return compare(op, lrd(i), rrd(i)) }

	case types.CmpFloat64:
		lrd, lok := column.Float64Reader(left.Col)
		rrd, rok := column.Float64Reader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "no float64 view over %s/%s columns", ltag, rtag)
		}
		pred = func(i int) bool { return compare(op, lrd(i), rrd(i)) }

	case types.CmpUint64SpecialLeft:
		lrd, lok := column.Uint64Reader(left.Col)
		rrd, rok := column.Int64Reader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "no promoted view over %s/%s columns", ltag, rtag)
		}
		pred = func(i int) bool { return compareUint64Signed(op, lrd(i), rrd(i)) }

	case types.CmpUint64SpecialRight:
		lrd, lok := column.Int64Reader(left.Col)
		rrd, rok := column.Uint64Reader(right.Col)
		if !lok || !rok {
			return nil, errors.Assertion("Compare", "no promoted view over %s/%s columns", ltag, rtag)
		}
		pred = func(i int) bool { return compareSignedUint64(op, lrd(i), rrd(i)) }

	default:
		return nil, errors.UnsupportedColumnType("Compare", "cannot compare %s to %s", ltag, rtag)
	}

	out, err := column.TransformMaskPair("Compare", left.Col, right.Col, pred)
	if err != nil {
		return nil, err
	}
	if e.cfg.MaskCompaction {
		out.Compact()
	}
	e.debugf("comparison %s filtered %d rows down to %d", op, out.Len(), out.Count())
	return MaskOperand{Mask: out}, nil
}

// compareColumnValue evaluates a comparison between a column and a scalar.
// reversed marks that the expression placed the scalar on the left; the
// flag only controls the argument order handed to the comparison function,
// the promotion rules are shared.
func (e *Engine) compareColumnValue(cw column.WithStrings, val *value.Value, op OperationKind, reversed bool) (Operand, error) {
	ctag, vtag := cw.Col.Tag(), val.Tag()
	if ctag.IsEmpty() {
		return EmptyResult{}, nil
	}

	var pred func(int) bool
	switch types.ComparisonClass(ctag, vtag) {
	case types.CmpString:
		var err error
		pred, err = stringValuePredicate(cw, val, op, reversed)
		if err != nil {
			return nil, err
		}

	case types.CmpBool:
		rd, ok := column.BoolReader(cw.Col)
		bv, vok := val.AsBool()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no boolean view over %s/%s operands", ctag, vtag)
		}
		sv := boolRank(bv)
		if reversed {
			pred = func(i int) bool { return compare(op, sv, boolRank(rd(i))) }
		} else {
			pred = func(i int) bool { return compare(op, boolRank(rd(i)), sv) }
		}

	case types.CmpInt64:
		rd, ok := column.Int64Reader(cw.Col)
		sv, vok := val.AsInt64()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no int64 view over %s/%s operands", ctag, vtag)
		}
		if reversed {
			pred = func(i int) bool { return compare(op, sv, rd(i)) }
		} else {
			pred = func(i int) bool { return compare(op, rd(i), sv) }
		}

	case types.CmpUint64:
		rd, ok := column.Uint64Reader(cw.Col)
		sv, vok := val.AsUint64()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no uint64 view over %s/%s operands", ctag, vtag)
		}
		if reversed {
			pred = func(i int) bool { return compare(op, sv, rd(i)) }
		} else {
			pred = func(i int) bool { return compare(op, rd(i), sv) }
		}

	case types.CmpFloat64:
		rd, ok := column.Float64Reader(cw.Col)
		sv, vok := val.AsFloat64()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no float64 view over %s/%s operands", ctag, vtag)
		}
		if reversed {
			pred = func(i int) bool { return compare(op, sv, rd(i)) }
		} else {
			pred = func(i int) bool { return compare(op, rd(i), sv) }
		}

	case types.CmpUint64SpecialLeft:
		// Column is uint64, scalar is signed.
		rd, ok := column.Uint64Reader(cw.Col)
		sv, vok := val.AsInt64()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no promoted view over %s/%s operands", ctag, vtag)
		}
		if reversed {
			pred = func(i int) bool { return compareSignedUint64(op, sv, rd(i)) }
		} else {
			pred = func(i int) bool { return compareUint64Signed(op, rd(i), sv) }
		}

	case types.CmpUint64SpecialRight:
		// Column is signed, scalar is uint64.
		rd, ok := column.Int64Reader(cw.Col)
		sv, vok := val.AsUint64()
		if !ok || !vok {
			return nil, errors.Assertion("Compare", "no promoted view over %s/%s operands", ctag, vtag)
		}
		if reversed {
			pred = func(i int) bool { return compareUint64Signed(op, sv, rd(i)) }
		} else {
			pred = func(i int) bool { return compareSignedUint64(op, rd(i), sv) }
		}

	default:
		return nil, errors.UnsupportedColumnType("Compare", "cannot compare %s to %s", ctag, vtag)
	}

	out := column.TransformMask(cw.Col, pred)
	if e.cfg.MaskCompaction {
		out.Compact()
	}
	e.debugf("comparison %s filtered %d rows down to %d", op, out.Len(), out.Count())
	return MaskOperand{Mask: out}, nil
}

// stringValuePredicate compares a string column against a string scalar.
// Equality resolves the scalar to a pool offset once: a scalar the pool
// never interned, or one too long for the column's fixed width, matches no
// stored row. Ordering operators reconstruct each row's string and compare
// lexicographically with padding stripped from both sides.
func stringValuePredicate(cw column.WithStrings, val *value.Value, op OperationKind, reversed bool) (func(int) bool, error) {
	ctag := cw.Col.Tag()
	s, ok := val.Str()
	if !ok {
		return nil, errors.Assertion("Compare", "string comparison against non-string scalar %s", val.Tag())
	}
	rd, ok := column.OffsetReader(cw.Col)
	if !ok {
		return nil, errors.Assertion("Compare", "string column %s has no offset buffer", ctag)
	}

	if op == OpEq || op == OpNe {
		lookup := s
		padOK := true
		if ctag.IsFixedString() {
			lookup, padOK = pool.PadToWidth(s, cw.Col.FixedWidth())
		}
		var valOffset uint64
		found := false
		if padOK {
			valOffset, found = cw.Pool.OffsetFor(lookup)
		}
		if op == OpEq {
			return func(i int) bool { return found && rd(i) == valOffset }, nil
		}
		return func(i int) bool { return !(found && rd(i) == valOffset) }, nil
	}

	strip := ctag.IsFixedString()
	sv := s
	if strip {
		sv = pool.StripPadding(s)
	}
	if reversed {
		return func(i int) bool {
			rs, ok := cw.StringAt(rd(i), strip)
			if !ok {
				return false
			}
			return compare(op, sv, rs)
		}, nil
	}
	return func(i int) bool {
		ls, ok := cw.StringAt(rd(i), strip)
		if !ok {
			return false
		}
		return compare(op, ls, sv)
	}, nil
}
