package value

import (
	"sync"

	"github.com/colibri-db/colibri/internal/pool"
	"github.com/colibri-db/colibri/internal/types"
)

// Set is an unordered collection of typed scalar values used for membership
// tests. Typed materializations are built lazily and memoized: the same set
// may be probed against columns of different promoted types, and is shared
// between concurrent evaluations, hence the lock.
type Set struct {
	tag     types.Tag
	members []*Value

	mu    sync.Mutex
	i64   map[int64]struct{}
	u64   map[uint64]struct{}
	u64nn map[uint64]struct{}
	f64   map[float64]struct{}
	str   map[string]struct{}
	fixed map[int]map[string]struct{}
}

// NewSet builds a set with the given base tag. Members are expected to be
// of (or convertible to) the base type; the query parser guarantees this
// upstream.
func NewSet(tag types.Tag, members ...*Value) *Set {
	return &Set{tag: tag, members: members}
}

// NewInt64Set builds an int64-based set.
func NewInt64Set(vs ...int64) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewInt64(v)
	}
	return NewSet(types.Int64, members...)
}

// NewInt32Set builds an int32-based set.
func NewInt32Set(vs ...int32) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewInt32(v)
	}
	return NewSet(types.Int32, members...)
}

// NewUint64Set builds a uint64-based set.
func NewUint64Set(vs ...uint64) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewUint64(v)
	}
	return NewSet(types.Uint64, members...)
}

// NewFloat64Set builds a float64-based set.
func NewFloat64Set(vs ...float64) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewFloat64(v)
	}
	return NewSet(types.Float64, members...)
}

// NewStringSet builds a string-based set.
func NewStringSet(vs ...string) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewString(v)
	}
	return NewSet(types.StringDynamic, members...)
}

// NewBoolSet builds a boolean-based set. Boolean membership is rejected by
// the evaluator; the constructor exists so the rejection is testable.
func NewBoolSet(vs ...bool) *Set {
	members := make([]*Value, len(vs))
	for i, v := range vs {
		members[i] = NewBool(v)
	}
	return NewSet(types.Bool, members...)
}

// Tag returns the set's base type tag.
func (s *Set) Tag() types.Tag { return s.tag }

// Empty reports whether the set has no members.
func (s *Set) Empty() bool { return len(s.members) == 0 }

// Len returns the member count.
func (s *Set) Len() int { return len(s.members) }

// Int64Set materializes the members as int64. Members int64 cannot
// represent are dropped: they can never equal an int64-classed column
// value.
func (s *Set) Int64Set() map[int64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.i64 == nil {
		s.i64 = make(map[int64]struct{}, len(s.members))
		for _, m := range s.members {
			if v, ok := m.AsInt64(); ok {
				s.i64[v] = struct{}{}
			}
		}
	}
	return s.i64
}

// Uint64Set materializes the members as uint64, dropping members uint64
// cannot represent.
func (s *Set) Uint64Set() map[uint64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.u64 == nil {
		s.u64 = make(map[uint64]struct{}, len(s.members))
		for _, m := range s.members {
			if v, ok := m.AsUint64(); ok {
				s.u64[v] = struct{}{}
			}
		}
	}
	return s.u64
}

// NonNegativeUint64Set materializes signed members as uint64, dropping
// negative members. Used for the uint64-vs-signed special case: a negative
// member can never match an unsigned 64-bit column value.
func (s *Set) NonNegativeUint64Set() map[uint64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.u64nn == nil {
		s.u64nn = make(map[uint64]struct{}, len(s.members))
		for _, m := range s.members {
			if v, ok := m.AsUint64(); ok {
				s.u64nn[v] = struct{}{}
			}
		}
	}
	return s.u64nn
}

// Float64Set materializes the members as float64.
func (s *Set) Float64Set() map[float64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f64 == nil {
		s.f64 = make(map[float64]struct{}, len(s.members))
		for _, m := range s.members {
			if v, ok := m.AsFloat64(); ok {
				s.f64[v] = struct{}{}
			}
		}
	}
	return s.f64
}

// StringSet materializes the members as raw strings.
func (s *Set) StringSet() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.str == nil {
		s.str = make(map[string]struct{}, len(s.members))
		for _, m := range s.members {
			if v, ok := m.Str(); ok {
				s.str[v] = struct{}{}
			}
		}
	}
	return s.str
}

// FixedWidthStringSet materializes the members padded to width, matching
// the stored layout of a fixed-width string column. Members longer than
// width are dropped: no stored value of that column can equal them.
func (s *Set) FixedWidthStringSet(width int) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fixed == nil {
		s.fixed = make(map[int]map[string]struct{})
	}
	if set, ok := s.fixed[width]; ok {
		return set
	}
	set := make(map[string]struct{}, len(s.members))
	for _, m := range s.members {
		v, ok := m.Str()
		if !ok {
			continue
		}
		if padded, ok := pool.PadToWidth(v, width); ok {
			set[padded] = struct{}{}
		}
	}
	s.fixed[width] = set
	return set
}
