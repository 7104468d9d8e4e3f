// Package errors provides the standardized error type for evaluation
// failures. Schema errors describe operand types the requested operation
// cannot accept and surface to the user; assertion errors are internal
// invariant violations. Both abort the containing evaluation.
package errors

import (
	"fmt"
)

// Code classifies an evaluation failure.
type Code int

const (
	// CodeUnsupportedColumnType is a schema error: the physical types of
	// the operands are incompatible with the operation.
	CodeUnsupportedColumnType Code = iota + 1
	// CodeUnsupportedOperandCombination is a schema error: the operand
	// kinds form a structurally invalid expression tree.
	CodeUnsupportedOperandCombination
	// CodeAssertionFailure is an internal invariant violation, a defect
	// rather than a user error.
	CodeAssertionFailure
)

func (c Code) String() string {
	switch c {
	case CodeUnsupportedColumnType:
		return "unsupported column type"
	case CodeUnsupportedOperandCombination:
		return "unsupported operand combination"
	case CodeAssertionFailure:
		return "assertion failure"
	}
	return fmt.Sprintf("unknown_code(%d)", int(c))
}

// EvalError represents a failed evaluation step.
type EvalError struct {
	Code    Code   // Failure class
	Op      string // Operation name (e.g. "Compare", "Membership")
	Message string // Human-readable description
	Cause   error  // Underlying error cause, if any
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support.
func (e *EvalError) Unwrap() error { return e.Cause }

// Is matches on code, and on operation when the target names one. This lets
// callers test for a failure class with errors.Is(err,
// &EvalError{Code: CodeAssertionFailure}).
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Code == e.Code
}

// UnsupportedColumnType builds a schema error naming the offending types.
func UnsupportedColumnType(op, format string, args ...any) *EvalError {
	return &EvalError{
		Code:    CodeUnsupportedColumnType,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnsupportedOperandCombination builds a schema error for structurally
// invalid operand kinds.
func UnsupportedOperandCombination(op, format string, args ...any) *EvalError {
	return &EvalError{
		Code:    CodeUnsupportedOperandCombination,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// Assertion builds an internal invariant violation.
func Assertion(op, format string, args ...any) *EvalError {
	return &EvalError{
		Code:    CodeAssertionFailure,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsSchemaError reports whether err is a user-facing schema error rather
// than an internal defect. Telemetry uses this to separate invalid queries
// from bugs.
func IsSchemaError(err error) bool {
	e, ok := err.(*EvalError)
	if !ok {
		return false
	}
	return e.Code == CodeUnsupportedColumnType || e.Code == CodeUnsupportedOperandCombination
}
