package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colibri-db/colibri/internal/pool"
)

func TestPool_InternIsIdempotent(t *testing.T) {
	p := pool.New()
	a := p.Intern("apple")
	b := p.Intern("banana")
	assert.NotEqual(t, a, b)

	assert.Equal(t, a, p.Intern("apple"))
	assert.Equal(t, b, p.Intern("banana"))
	assert.Equal(t, 2, p.Len())
}

func TestPool_OffsetFor(t *testing.T) {
	p := pool.New()
	off := p.Intern("apple")

	got, ok := p.OffsetFor("apple")
	require.True(t, ok)
	assert.Equal(t, off, got)

	_, ok = p.OffsetFor("pear")
	assert.False(t, ok)
}

func TestPool_StringAt(t *testing.T) {
	p := pool.New()
	off := p.Intern("apple")

	s, ok := p.StringAt(off)
	require.True(t, ok)
	assert.Equal(t, "apple", s)

	_, ok = p.StringAt(off + 100)
	assert.False(t, ok)
}

func TestPool_OffsetsForSkipsUnknownStrings(t *testing.T) {
	p := pool.New()
	apple := p.Intern("apple")
	p.Intern("banana")

	offsets := p.OffsetsFor(map[string]struct{}{
		"apple": {},
		"pear":  {},
	})
	assert.Len(t, offsets, 1)
	assert.Contains(t, offsets, apple)
}

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
		ok    bool
	}{
		{name: "shorter than width", input: "ab", width: 4, want: "ab\x00\x00", ok: true},
		{name: "exact width", input: "abcd", width: 4, want: "abcd", ok: true},
		{name: "too long", input: "abcde", width: 4, ok: false},
		{name: "empty string", input: "", width: 2, want: "\x00\x00", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pool.PadToWidth(tt.input, tt.width)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Len(t, got, tt.width)
			}
		})
	}
}

func TestStripPadding_RoundTrip(t *testing.T) {
	padded, ok := pool.PadToWidth("ab", 6)
	require.True(t, ok)
	assert.Equal(t, "ab", pool.StripPadding(padded))
	assert.Equal(t, "plain", pool.StripPadding("plain"))
}
