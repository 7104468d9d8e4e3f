// Package value holds the typed scalar values and value-sets binary
// operations compare columns against. Values are shared by pointer: the
// same scalar may be reused across evaluations and is never mutated.
package value

import (
	"fmt"
	"math"

	"github.com/colibri-db/colibri/internal/types"
)

// Value is a single typed scalar.
type Value struct {
	tag  types.Tag
	data any
}

func NewInt8(v int8) *Value    { return &Value{tag: types.Int8, data: v} }
func NewInt16(v int16) *Value  { return &Value{tag: types.Int16, data: v} }
func NewInt32(v int32) *Value  { return &Value{tag: types.Int32, data: v} }
func NewInt64(v int64) *Value  { return &Value{tag: types.Int64, data: v} }
func NewUint8(v uint8) *Value  { return &Value{tag: types.Uint8, data: v} }
func NewUint16(v uint16) *Value { return &Value{tag: types.Uint16, data: v} }
func NewUint32(v uint32) *Value { return &Value{tag: types.Uint32, data: v} }
func NewUint64(v uint64) *Value { return &Value{tag: types.Uint64, data: v} }
func NewFloat32(v float32) *Value { return &Value{tag: types.Float32, data: v} }
func NewFloat64(v float64) *Value { return &Value{tag: types.Float64, data: v} }
func NewBool(v bool) *Value    { return &Value{tag: types.Bool, data: v} }
func NewString(s string) *Value { return &Value{tag: types.StringDynamic, data: s} }

// FromInt64 narrows v to the physical type named by tag.
func FromInt64(tag types.Tag, v int64) *Value {
	switch tag {
	case types.Int8:
		return NewInt8(int8(v))
	case types.Int16:
		return NewInt16(int16(v))
	case types.Int32:
		return NewInt32(int32(v))
	default:
		return NewInt64(v)
	}
}

// FromUint64 narrows v to the physical type named by tag.
func FromUint64(tag types.Tag, v uint64) *Value {
	switch tag {
	case types.Uint8:
		return NewUint8(uint8(v))
	case types.Uint16:
		return NewUint16(uint16(v))
	case types.Uint32:
		return NewUint32(uint32(v))
	default:
		return NewUint64(v)
	}
}

// FromFloat64 narrows v to the physical type named by tag.
func FromFloat64(tag types.Tag, v float64) *Value {
	if tag == types.Float32 {
		return NewFloat32(float32(v))
	}
	return NewFloat64(v)
}

// Tag returns the value's type tag.
func (v *Value) Tag() types.Tag { return v.tag }

// Str returns the string payload.
func (v *Value) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// AsInt64 converts an integer payload to int64. ok is false for payloads
// int64 cannot represent and for non-integer payloads; conversions never
// truncate silently.
func (v *Value) AsInt64() (int64, bool) {
	switch d := v.data.(type) {
	case int8:
		return int64(d), true
	case int16:
		return int64(d), true
	case int32:
		return int64(d), true
	case int64:
		return d, true
	case uint8:
		return int64(d), true
	case uint16:
		return int64(d), true
	case uint32:
		return int64(d), true
	case uint64:
		if d > math.MaxInt64 {
			return 0, false
		}
		return int64(d), true
	}
	return 0, false
}

// AsUint64 converts a non-negative integer payload to uint64.
func (v *Value) AsUint64() (uint64, bool) {
	switch d := v.data.(type) {
	case uint8:
		return uint64(d), true
	case uint16:
		return uint64(d), true
	case uint32:
		return uint64(d), true
	case uint64:
		return d, true
	case int8:
		if d < 0 {
			return 0, false
		}
		return uint64(d), true
	case int16:
		if d < 0 {
			return 0, false
		}
		return uint64(d), true
	case int32:
		if d < 0 {
			return 0, false
		}
		return uint64(d), true
	case int64:
		if d < 0 {
			return 0, false
		}
		return uint64(d), true
	}
	return 0, false
}

// AsFloat64 converts any numeric payload to float64.
func (v *Value) AsFloat64() (float64, bool) {
	switch d := v.data.(type) {
	case int8:
		return float64(d), true
	case int16:
		return float64(d), true
	case int32:
		return float64(d), true
	case int64:
		return float64(d), true
	case uint8:
		return float64(d), true
	case uint16:
		return float64(d), true
	case uint32:
		return float64(d), true
	case uint64:
		return float64(d), true
	case float32:
		return float64(d), true
	case float64:
		return d, true
	}
	return 0, false
}

// AsBool returns the boolean payload.
func (v *Value) AsBool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

func (v *Value) String() string {
	return fmt.Sprintf("%v:%s", v.data, v.tag)
}
