package compute

import (
	"github.com/colibri-db/colibri/internal/bitset"
	"github.com/colibri-db/colibri/internal/errors"
)

// binaryBoolean combines two mask or absorbing operands. The absorbing
// markers follow the logic-gate absorption and identity laws, centralized
// here so every simplification sits in one place. Boolean combination is
// commutative, so the mask-versus-marker case is implemented once and the
// operands swapped as needed.
func (e *Engine) binaryBoolean(left, right Operand, op OperationKind) (Operand, error) {
	switch l := left.(type) {
	case MaskOperand:
		switch r := right.(type) {
		case MaskOperand:
			return e.maskPair(l.Mask, r.Mask, op)
		case EmptyResult:
			return maskWithMarker(l.Mask, false, op), nil
		case FullResult:
			return maskWithMarker(l.Mask, true, op), nil
		}
	case EmptyResult:
		switch r := right.(type) {
		case MaskOperand:
			return maskWithMarker(r.Mask, false, op), nil
		case EmptyResult:
			return markerPair(false, false, op), nil
		case FullResult:
			return markerPair(false, true, op), nil
		}
	case FullResult:
		switch r := right.(type) {
		case MaskOperand:
			return maskWithMarker(r.Mask, true, op), nil
		case EmptyResult:
			return markerPair(true, false, op), nil
		case FullResult:
			return markerPair(true, true, op), nil
		}
	}
	return nil, errors.UnsupportedOperandCombination("BooleanCombine",
		"boolean combination requires mask operands, got %s and %s", left.Kind(), right.Kind())
}

// maskPair is the live bitset case: a plain elementwise operation over
// masks of matching length.
func (e *Engine) maskPair(l, r *bitset.Mask, op OperationKind) (Operand, error) {
	if l.Len() != r.Len() {
		return nil, errors.Assertion("BooleanCombine",
			"masks with different row counts (%d and %d)", l.Len(), r.Len())
	}
	var out *bitset.Mask
	switch op {
	case OpAnd:
		out = l.And(r)
	case OpOr:
		out = l.Or(r)
	case OpXor:
		out = l.Xor(r)
	default:
		return nil, errors.Assertion("BooleanCombine", "unexpected operator %s", op)
	}
	return MaskOperand{Mask: out}, nil
}

// maskWithMarker combines a live mask with an absorbing marker. full=false
// is EmptyResult, full=true is FullResult.
func maskWithMarker(m *bitset.Mask, full bool, op OperationKind) Operand {
	switch op {
	case OpAnd:
		if full {
			return MaskOperand{Mask: m}
		}
		return EmptyResult{}
	case OpOr:
		if full {
			return FullResult{}
		}
		return MaskOperand{Mask: m}
	default: // OpXor
		if full {
			return MaskOperand{Mask: m.Not()}
		}
		return MaskOperand{Mask: m}
	}
}

// markerPair evaluates two absorbing markers directly as boolean algebra
// on {Empty=false, Full=true}.
func markerPair(l, r bool, op OperationKind) Operand {
	var v bool
	switch op {
	case OpAnd:
		v = l && r
	case OpOr:
		v = l || r
	default: // OpXor
		v = l != r
	}
	if v {
		return FullResult{}
	}
	return EmptyResult{}
}
