package compute

import (
	"log"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/colibri-db/colibri/internal/config"
	"github.com/colibri-db/colibri/internal/errors"
)

// Engine evaluates binary operations for the expression-tree walker. A
// single evaluation call is synchronous and single-threaded; inputs are
// read-only, outputs are newly allocated and owned by the caller, so
// independent expression-tree nodes may evaluate concurrently against the
// same data.
type Engine struct {
	mem memory.Allocator
	cfg config.Config
}

// NewEngine creates an engine using the process-global configuration.
func NewEngine(mem memory.Allocator) *Engine {
	return NewEngineWithConfig(mem, config.GetGlobalConfig())
}

// NewEngineWithConfig creates an engine with an explicit configuration.
func NewEngineWithConfig(mem memory.Allocator, cfg config.Config) *Engine {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Engine{mem: mem, cfg: cfg}
}

// EvaluateBinary inspects the operand kinds and routes to the evaluator
// for op. Structurally invalid operand combinations fail rather than
// returning a sentinel.
func (e *Engine) EvaluateBinary(left, right Operand, op OperationKind) (Operand, error) {
	switch {
	case op.IsBoolean():
		return e.binaryBoolean(left, right, op)
	case op.IsMembership():
		return e.visitMembership(left, right, op)
	case op.IsComparison():
		return e.visitComparison(left, right, op)
	case op.IsArithmetic():
		return e.visitArithmetic(left, right, op)
	}
	return nil, errors.Assertion("EvaluateBinary", "unknown operation %s", op)
}

// visitMembership accepts a column and a value-set in either operand
// order: acceptance is commutative, so one ordering is implemented and the
// operands swapped.
func (e *Engine) visitMembership(left, right Operand, op OperationKind) (Operand, error) {
	if left.Kind() == KindEmpty {
		return EmptyResult{}, nil
	}
	switch l := left.(type) {
	case ColumnOperand:
		if r, ok := right.(SetOperand); ok {
			return e.binaryMembership(l.WithStrings, r.Set, op)
		}
	case SetOperand:
		if r, ok := right.(ColumnOperand); ok {
			return e.binaryMembership(r.WithStrings, l.Set, op)
		}
	}
	return nil, errors.UnsupportedOperandCombination("Membership",
		"membership requires a column and a value-set, got %s and %s", left.Kind(), right.Kind())
}

// visitComparison routes column/column and column/value comparisons.
// Comparators are not commutative: the reversed-argument flag tracks which
// side of the expression the scalar came from.
func (e *Engine) visitComparison(left, right Operand, op OperationKind) (Operand, error) {
	if left.Kind() == KindEmpty || right.Kind() == KindEmpty {
		return EmptyResult{}, nil
	}
	switch l := left.(type) {
	case ColumnOperand:
		switch r := right.(type) {
		case ColumnOperand:
			return e.compareColumns(l.WithStrings, r.WithStrings, op)
		case ValueOperand:
			return e.compareColumnValue(l.WithStrings, r.Value, op, false)
		}
	case ValueOperand:
		switch r := right.(type) {
		case ColumnOperand:
			return e.compareColumnValue(r.WithStrings, l.Value, op, true)
		case ValueOperand:
			return nil, errors.UnsupportedOperandCombination("Compare",
				"two value inputs not accepted by comparison operations")
		}
	}
	return nil, errors.UnsupportedOperandCombination("Compare",
		"mask or value-set inputs not accepted by comparison operations, got %s and %s",
		left.Kind(), right.Kind())
}

// visitArithmetic routes column/column, column/value and value/value
// arithmetic.
func (e *Engine) visitArithmetic(left, right Operand, op OperationKind) (Operand, error) {
	if left.Kind() == KindEmpty || right.Kind() == KindEmpty {
		return EmptyResult{}, nil
	}
	switch l := left.(type) {
	case ColumnOperand:
		switch r := right.(type) {
		case ColumnOperand:
			return e.arithmeticColumns(l.Col, r.Col, op)
		case ValueOperand:
			return e.arithmeticColumnValue(l.Col, r.Value, op, false)
		}
	case ValueOperand:
		switch r := right.(type) {
		case ColumnOperand:
			return e.arithmeticColumnValue(r.Col, l.Value, op, true)
		case ValueOperand:
			return e.arithmeticValues(l.Value, r.Value, op)
		}
	}
	return nil, errors.UnsupportedOperandCombination("Arithmetic",
		"mask or value-set inputs not accepted by arithmetic operations, got %s and %s",
		left.Kind(), right.Kind())
}

func (e *Engine) debugf(format string, args ...any) {
	if e.cfg.VerboseLogging {
		log.Printf(format, args...)
	}
}
