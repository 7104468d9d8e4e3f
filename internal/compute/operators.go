package compute

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/colibri-db/colibri/internal/errors"
	"github.com/colibri-db/colibri/internal/types"
)

// OperationKind identifies a binary operation.
type OperationKind int

const (
	OpAnd OperationKind = iota
	OpOr
	OpXor
	OpIsIn
	OpIsNotIn
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var opNames = map[OperationKind]string{
	OpAnd:     "AND",
	OpOr:      "OR",
	OpXor:     "XOR",
	OpIsIn:    "IS IN",
	OpIsNotIn: "IS NOT IN",
	OpEq:      "==",
	OpNe:      "!=",
	OpLt:      "<",
	OpLe:      "<=",
	OpGt:      ">",
	OpGe:      ">=",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
}

func (op OperationKind) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("unknown_operation(%d)", int(op))
}

// IsBoolean reports whether op combines masks.
func (op OperationKind) IsBoolean() bool { return op == OpAnd || op == OpOr || op == OpXor }

// IsMembership reports whether op tests set membership.
func (op OperationKind) IsMembership() bool { return op == OpIsIn || op == OpIsNotIn }

// IsComparison reports whether op compares elements.
func (op OperationKind) IsComparison() bool { return op >= OpEq && op <= OpGe }

// IsArithmetic reports whether op computes elementwise values.
func (op OperationKind) IsArithmetic() bool { return op >= OpAdd && op <= OpDiv }

func arithKind(op OperationKind) types.ArithOp {
	switch op {
	case OpSub:
		return types.ArithSub
	case OpMul:
		return types.ArithMul
	case OpDiv:
		return types.ArithDiv
	default:
		return types.ArithAdd
	}
}

// vacuousMembership gives the absorbing result of a membership test whose
// column carries the empty type: no rows can be in any set, all rows are
// outside every set. Any other operator reaching this table is a defect in
// the dispatcher.
func vacuousMembership(op OperationKind) (Operand, error) {
	switch op {
	case OpIsIn:
		return EmptyResult{}, nil
	case OpIsNotIn:
		return FullResult{}, nil
	}
	return nil, errors.Assertion("Membership", "unexpected operator %s in membership evaluation", op)
}

// compare applies a comparison operator to an ordered pair.
func compare[T constraints.Ordered](op OperationKind, l, r T) bool {
	switch op {
	case OpEq:
		return l == r
	case OpNe:
		return l != r
	case OpLt:
		return l < r
	case OpLe:
		return l <= r
	case OpGt:
		return l > r
	case OpGe:
		return l >= r
	}
	return false
}

// compareUint64Signed compares an unsigned 64-bit value against a signed
// value without narrowing either side: a negative right operand is below
// every uint64, otherwise both sides compare with unsigned semantics.
func compareUint64Signed(op OperationKind, l uint64, r int64) bool {
	if r < 0 {
		switch op {
		case OpNe, OpGt, OpGe:
			return true
		}
		return false
	}
	return compare(op, l, uint64(r))
}

// compareSignedUint64 is the mirrored ordering of compareUint64Signed.
func compareSignedUint64(op OperationKind, l int64, r uint64) bool {
	if l < 0 {
		switch op {
		case OpNe, OpLt, OpLe:
			return true
		}
		return false
	}
	return compare(op, uint64(l), r)
}

// boolRank orders booleans as false < true for comparison operators.
func boolRank(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// applyInt64 computes an integer arithmetic operation in the promoted
// working type. Division never reaches here: it promotes to float64.
func applyInt64(op OperationKind, l, r int64) int64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	}
	return 0
}

func applyUint64(op OperationKind, l, r uint64) uint64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	}
	return 0
}

func applyFloat64(op OperationKind, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	}
	return 0
}
