package types

// ArithOp distinguishes promotion behavior between arithmetic operators:
// subtraction forces a signed result and division always produces a float.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
)

// ArithmeticPromotion returns the output tag for an arithmetic operation
// between two numeric tags. The result is wide enough that no overflow can
// occur for operands within the narrower input's range: integer results use
// twice the wider input width (capped at 64 bits), any floating input makes
// the result floating, and mixing signed with unsigned (or subtracting)
// makes the result signed. Division always promotes to float64. ok is false
// when either tag is not numeric.
func ArithmeticPromotion(left, right Tag, op ArithOp) (Tag, bool) {
	if !left.IsNumeric() || !right.IsNumeric() {
		return Empty, false
	}
	if op == ArithDiv {
		return Float64, true
	}
	if left.IsFloat() || right.IsFloat() {
		if left == Float32 && right == Float32 {
			return Float32, true
		}
		return Float64, true
	}
	width := left.Width()
	if right.Width() > width {
		width = right.Width()
	}
	width *= 2
	if width > 64 {
		width = 64
	}
	signed := op == ArithSub || left.IsSigned() || right.IsSigned()
	return integerTag(width, signed), true
}

func integerTag(width int, signed bool) Tag {
	if signed {
		switch width {
		case 8:
			return Int8
		case 16:
			return Int16
		case 32:
			return Int32
		default:
			return Int64
		}
	}
	switch width {
	case 8:
		return Uint8
	case 16:
		return Uint16
	case 32:
		return Uint32
	default:
		return Uint64
	}
}

// CmpClass names the working representation a comparison or membership test
// uses for a pair of tags.
type CmpClass int

const (
	CmpUnsupported CmpClass = iota
	// CmpInt64 compares via int64; both sides are representable.
	CmpInt64
	// CmpUint64 compares via uint64; both sides are unsigned.
	CmpUint64
	// CmpFloat64 compares via float64; at least one side is floating.
	CmpFloat64
	// CmpBool compares two boolean operands.
	CmpBool
	// CmpString compares two string operands via their pools.
	CmpString
	// CmpUint64SpecialLeft marks the left operand as uint64 against a
	// signed right operand: no signed type holds the full uint64 range, so
	// the comparison validates the signed side's sign before comparing
	// with unsigned semantics.
	CmpUint64SpecialLeft
	// CmpUint64SpecialRight is the mirrored case.
	CmpUint64SpecialRight
)

// ComparisonClass selects the working representation for comparing or
// testing membership between two tags. Empty tags are never classified;
// callers short-circuit them before dispatch.
func ComparisonClass(left, right Tag) CmpClass {
	switch {
	case left.IsSequence() && right.IsSequence():
		return CmpString
	case left.IsBool() && right.IsBool():
		return CmpBool
	case left.IsNumeric() && right.IsNumeric():
		if left.IsFloat() || right.IsFloat() {
			return CmpFloat64
		}
		if left.IsSigned() == right.IsSigned() {
			if left.IsSigned() {
				return CmpInt64
			}
			return CmpUint64
		}
		// Mixed signedness: any unsigned type narrower than 64 bits fits
		// in int64.
		if left == Uint64 {
			return CmpUint64SpecialLeft
		}
		if right == Uint64 {
			return CmpUint64SpecialRight
		}
		return CmpInt64
	}
	return CmpUnsupported
}
