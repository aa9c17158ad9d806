package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

func TestShapeCache_GetPut(t *testing.T) {
	c, err := NewShapeCache(4)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Put("k", &Rendered{Text: "number"})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "number", got.Text)
	assert.Equal(t, 1, c.Len())
}

func TestShapeCache_Eviction(t *testing.T) {
	c, err := NewShapeCache(2)
	require.NoError(t, err)

	c.Put("a", &Rendered{Text: "a"})
	c.Put("b", &Rendered{Text: "b"})
	c.Put("c", &Rendered{Text: "c"})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry evicted")
}

func TestKey_DistinguishesInputs(t *testing.T) {
	p := shape.DefaultPolicy()

	base := Key([]byte(`{"a":1}`), p, "")
	assert.Equal(t, base, Key([]byte(`{"a":1}`), p, ""), "deterministic")

	assert.NotEqual(t, base, Key([]byte(`{"a":2}`), p, ""), "input changes key")
	assert.NotEqual(t, base, Key([]byte(`{"a":1}`), p, ".a"), "filter changes key")

	compact := *p
	compact.Compact = true
	assert.NotEqual(t, base, Key([]byte(`{"a":1}`), &compact, ""), "policy changes key")
}
