// Package compute implements binary expression evaluation over columns,
// scalar values, value-sets and row masks: boolean combination, membership,
// comparison and arithmetic, with runtime type dispatch and numeric
// promotion.
package compute

import (
	"fmt"

	"github.com/colibri-db/colibri/internal/bitset"
	"github.com/colibri-db/colibri/internal/column"
	"github.com/colibri-db/colibri/internal/value"
)

// Kind names the active variant of an Operand.
type Kind int

const (
	KindColumn Kind = iota
	KindValue
	KindValueSet
	KindMask
	KindEmpty
	KindFull
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindValue:
		return "value"
	case KindValueSet:
		return "value-set"
	case KindMask:
		return "mask"
	case KindEmpty:
		return "empty-result"
	case KindFull:
		return "full-result"
	}
	return fmt.Sprintf("unknown_kind(%d)", int(k))
}

// Operand is the closed union of inputs and outputs of binary evaluation.
// Exactly one variant is active; EmptyResult and FullResult carry no
// payload and only become masks through an explicit widening step in the
// boolean combinator.
type Operand interface {
	Kind() Kind
}

// ColumnOperand is a live column plus the pool owning its string offsets.
type ColumnOperand struct {
	column.WithStrings
}

// NewColumnOperand wraps a column for evaluation. pool may be nil for
// non-string columns.
func NewColumnOperand(col *column.Column, pool column.StringPool) ColumnOperand {
	return ColumnOperand{WithStrings: column.WithStrings{Col: col, Pool: pool}}
}

func (ColumnOperand) Kind() Kind { return KindColumn }

// ValueOperand is a single typed scalar.
type ValueOperand struct {
	Value *value.Value
}

func (ValueOperand) Kind() Kind { return KindValue }

// SetOperand is a value-set for membership tests.
type SetOperand struct {
	Set *value.Set
}

func (SetOperand) Kind() Kind { return KindValueSet }

// MaskOperand is a bitset over logical rows produced by a prior
// comparison, membership or boolean step.
type MaskOperand struct {
	Mask *bitset.Mask
}

func (MaskOperand) Kind() Kind { return KindMask }

// EmptyResult is the absorbing marker for "no rows can ever match".
type EmptyResult struct{}

func (EmptyResult) Kind() Kind { return KindEmpty }

// FullResult is the absorbing marker for "all rows always match".
type FullResult struct{}

func (FullResult) Kind() Kind { return KindFull }
