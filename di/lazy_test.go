package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{ n int }

type widgetMeta struct{ Label string }

// TestLazy_MetadataDoesNotConstruct verifies metadata is readable before the value exists.
func TestLazy_MetadataDoesNotConstruct(t *testing.T) {
	t.Parallel()

	calls := 0
	h := NewLazy("w", func() *widget { calls++; return &widget{n: calls} }, widgetMeta{Label: "first"})

	assert.Equal(t, "first", h.Metadata().Label)
	assert.Equal(t, "w", h.Part())
	assert.False(t, h.IsValueCreated())
	assert.Equal(t, 0, calls)
}

// TestLazy_ValueMemoized verifies the factory runs once per handle.
func TestLazy_ValueMemoized(t *testing.T) {
	t.Parallel()

	calls := 0
	h := NewLazy("w", func() *widget { calls++; return &widget{n: calls} }, widgetMeta{})

	first := h.Value()
	second := h.Value()

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, h.IsValueCreated())
}

// TestLazy_NilFactory verifies a nil factory yields the zero value without panicking.
func TestLazy_NilFactory(t *testing.T) {
	t.Parallel()

	h := NewLazy[*widget, widgetMeta]("w", nil, widgetMeta{})
	assert.Nil(t, h.Value())
	assert.True(t, h.IsValueCreated())
}

// TestLazy_UniqueIDs verifies every handle gets its own id.
func TestLazy_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := NewLazy("w", func() int { return 1 }, widgetMeta{})
	b := NewLazy("w", func() int { return 1 }, widgetMeta{})

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
