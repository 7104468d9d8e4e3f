// Package types defines the runtime descriptors of physical element types
// shared by columns, scalar values and value-sets, together with the
// promotion rules binary operations use to pick a common working type.
package types

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tag describes the physical representation of a column or scalar element.
type Tag int

const (
	// Empty marks a column or value that carries no data at all.
	Empty Tag = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	// StringFixed is a fixed-width string stored as a pool offset; the
	// stored bytes are NUL padded to the column's width.
	StringFixed
	// StringDynamic is a variable-width string stored as a pool offset.
	StringDynamic
)

var tagNames = map[Tag]string{
	Empty:         "empty",
	Bool:          "bool",
	Int8:          "int8",
	Int16:         "int16",
	Int32:         "int32",
	Int64:         "int64",
	Uint8:         "uint8",
	Uint16:        "uint16",
	Uint32:        "uint32",
	Uint64:        "uint64",
	Float32:       "float32",
	Float64:       "float64",
	StringFixed:   "string_fixed",
	StringDynamic: "string_dynamic",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown_tag(%d)", int(t))
}

// IsEmpty reports whether the tag is the no-data marker.
func (t Tag) IsEmpty() bool { return t == Empty }

// IsBool reports whether the tag is the boolean type.
func (t Tag) IsBool() bool { return t == Bool }

// IsSigned reports whether the tag is a signed integer type.
func (t Tag) IsSigned() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsUnsigned reports whether the tag is an unsigned integer type.
func (t Tag) IsUnsigned() bool {
	switch t {
	case Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsInteger reports whether the tag is any integer type.
func (t Tag) IsInteger() bool { return t.IsSigned() || t.IsUnsigned() }

// IsFloat reports whether the tag is a floating-point type.
func (t Tag) IsFloat() bool { return t == Float32 || t == Float64 }

// IsNumeric reports whether the tag is an integer or floating-point type.
// Booleans are not numeric: they compare but never take part in arithmetic.
func (t Tag) IsNumeric() bool { return t.IsInteger() || t.IsFloat() }

// IsSequence reports whether the tag is either string flavor.
func (t Tag) IsSequence() bool { return t == StringFixed || t == StringDynamic }

// IsFixedString reports whether the tag is the fixed-width string type.
func (t Tag) IsFixedString() bool { return t == StringFixed }

// Width returns the element width in bits for numeric and boolean tags.
// String and empty tags report zero; their storage width is the pool
// offset, not a property of the logical type.
func (t Tag) Width() int {
	switch t {
	case Bool, Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	}
	return 0
}

// Numeric is the constraint satisfied by every raw numeric element type.
type Numeric interface {
	constraints.Integer | constraints.Float
}
