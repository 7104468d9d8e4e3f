package compute

import (
	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/types"
	"github.com/colibri-db/colibri/internal/value"
)

// binaryMembership tests each stored row of a column for membership in a
// value-set. String columns probe a set of pool offsets; numeric columns
// probe a set materialized in the promoted working type.
func (e *Engine) binaryMembership(cw column.WithStrings, set *value.Set, op OperationKind) (Operand, error) {
	col := cw.Col
	if col.Tag().IsEmpty() {
		return vacuousMembership(op)
	}
	if !op.IsMembership() {
		return nil, errors.Assertion("Membership", "unexpected operator %s in membership evaluation", op)
	}

	want := op == OpIsIn
	var pred func(int) bool

	ctag, stag := col.Tag(), set.Tag()
	switch {
	case set.Empty():
		// Nothing is in the empty set; everything is outside it. Sparse
		// columns still leave absent rows unset through the transform.
		pred = func(int) bool { return !want }

	case ctag.IsSequence() && stag.IsSequence():
		var members map[string]struct{}
		if ctag.IsFixedString() {
			// Pad members to the column's stored width so they compare
			// against the padded layout the pool interned.
			members = set.FixedWidthStringSet(col.FixedWidth())
		} else {
			members = set.StringSet()
		}
		offsets := cw.Pool.OffsetsFor(members)
		rd, ok := column.OffsetReader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "string column %s has no offset buffer", ctag)
		}
		pred = func(i int) bool {
			_, in := offsets[rd(i)]
			return in == want
		}

	case ctag.IsBool() && stag.IsBool():
		return nil, errors.UnsupportedOperandCombination("Membership",
			"membership is not implemented for boolean columns")

	case ctag.IsNumeric() && stag.IsNumeric():
		var err error
		pred, err = numericMembership(col, set, want)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.UnsupportedColumnType("Membership",
			"cannot check membership of %s in set of %s", ctag, stag)
	}

	out := column.TransformMask(col, pred)
	if e.cfg.MaskCompaction {
		out.Compact()
	}
	e.debugf("membership %s filtered %d rows down to %d", op, out.Len(), out.Count())
	return MaskOperand{Mask: out}, nil
}

// numericMembership selects the promoted working type for the column/set
// pair and returns the per-row probe.
func numericMembership(col *column.Column, set *value.Set, want bool) (func(int) bool, error) {
	ctag, stag := col.Tag(), set.Tag()
	switch types.ComparisonClass(ctag, stag) {
	case types.CmpInt64:
		rd, ok := column.Int64Reader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "no int64 view over %s column", ctag)
		}
		members := set.Int64Set()
		return func(i int) bool {
			_, in := members[rd(i)]
			return in == want
		}, nil

	case types.CmpUint64:
		rd, ok := column.Uint64Reader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "no uint64 view over %s column", ctag)
		}
		members := set.Uint64Set()
		return func(i int) bool {
			_, in := members[rd(i)]
			return in == want
		}, nil

	case types.CmpFloat64:
		rd, ok := column.Float64Reader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "no float64 view over %s column", ctag)
		}
		members := set.Float64Set()
		return func(i int) bool {
			_, in := members[rd(i)]
			return in == want
		}, nil

	case types.CmpUint64SpecialLeft:
		// uint64 column against signed members: negative members can never
		// match, the rest probe with unsigned semantics.
		rd, ok := column.Uint64Reader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "no uint64 view over %s column", ctag)
		}
		members := set.NonNegativeUint64Set()
		return func(i int) bool {
			_, in := members[rd(i)]
			return in == want
		}, nil

	case types.CmpUint64SpecialRight:
		// Signed column against uint64 members: negative stored values are
		// outside every uint64 set.
		rd, ok := column.Int64Reader(col)
		if !ok {
			return nil, errors.Assertion("Membership", "no int64 view over %s column", ctag)
		}
		members := set.Uint64Set()
		return func(i int) bool {
			v := rd(i)
			in := false
			if v >= 0 {
				_, in = members[uint64(v)]
			}
			return in == want
		}, nil
	}
	return nil, errors.UnsupportedColumnType("Membership",
		"cannot check membership of %s in set of %s", ctag, stag)
}
