package history

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/store"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

func newTestHistory(capacity, entryMaxBytes int) *History {
	return New(store.NewMemoryStore(), capacity, entryMaxBytes)
}

func TestHistory_AddAndList(t *testing.T) {
	h := newTestHistory(10, 0)

	first, err := h.Add([]byte(`{"a": 1}`))
	require.NoError(t, err)
	second, err := h.Add([]byte(`{"b": 2}`))
	require.NoError(t, err)

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent first.
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestHistory_CapacityEvictsOldest(t *testing.T) {
	h := newTestHistory(2, 0)

	_, err := h.Add([]byte(`1`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`2`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`3`))
	require.NoError(t, err)

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, `3`, entries[0].Raw)
	assert.Equal(t, `2`, entries[1].Raw)
}

func TestHistory_DedupeMovesToFront(t *testing.T) {
	h := newTestHistory(10, 0)

	_, err := h.Add([]byte(`{"a": 1}`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`{"b": 2}`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`{"a": 1}`)) // same content again
	require.NoError(t, err)

	entries, err := h.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, `{"a": 1}`, entries[0].Raw)
	assert.Equal(t, `{"b": 2}`, entries[1].Raw)
}

func TestHistory_TruncatesAboveCeiling(t *testing.T) {
	h := newTestHistory(10, 16)

	big := strings.Repeat("x", 100)
	entry, err := h.Add([]byte(big))
	require.NoError(t, err)

	assert.True(t, entry.Truncated)
	assert.Equal(t, 100, entry.Size)
	assert.Len(t, entry.Raw, 16)
}

func TestHistory_TruncationKeepsValidUTF8(t *testing.T) {
	h := newTestHistory(10, 5)

	// The ceiling lands inside the two-byte é; the cut backs up to the
	// rune boundary instead of keeping a dangling continuation byte.
	entry, err := h.Add([]byte(`"aaaé"`))
	require.NoError(t, err)

	assert.True(t, entry.Truncated)
	assert.Equal(t, `"aaa`, entry.Raw)
	assert.True(t, utf8.ValidString(entry.Raw))
}

func TestHistory_Get(t *testing.T) {
	h := newTestHistory(10, 0)

	entry, err := h.Add([]byte(`{"a": 1}`))
	require.NoError(t, err)

	got, ok, err := h.Get(entry.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, got.Raw)

	_, ok, err = h.Get("deadbeef")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistory_Clear(t *testing.T) {
	h := newTestHistory(10, 0)
	_, err := h.Add([]byte(`1`))
	require.NoError(t, err)

	require.NoError(t, h.Clear())
	entries, err := h.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_VersionBumpsOnMutation(t *testing.T) {
	h := newTestHistory(10, 0)
	v0 := h.Version()

	_, err := h.Add([]byte(`1`))
	require.NoError(t, err)
	v1 := h.Version()
	assert.Greater(t, v1, v0)

	require.NoError(t, h.Clear())
	assert.Greater(t, h.Version(), v1)
}

func TestEntryID_Deterministic(t *testing.T) {
	a := EntryID([]byte(`{"a": 1}`))
	b := EntryID([]byte(`{"a": 1}`))
	c := EntryID([]byte(`{"a": 2}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16) // 8 bytes hex-encoded
}

func TestHistory_OptionsRoundTrip(t *testing.T) {
	h := newTestHistory(10, 0)

	_, ok, err := h.Options()
	require.NoError(t, err)
	assert.False(t, ok, "no options saved yet")

	want := &shape.Policy{ShowLength: true, ShowSample: true, MaxDepth: 4}
	require.NoError(t, h.SetOptions(want))

	got, ok, err := h.Options()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestHistory_Theme(t *testing.T) {
	h := newTestHistory(10, 0)

	theme, err := h.Theme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme, "defaults to light")

	require.NoError(t, h.SetTheme(ThemeDark))
	theme, err = h.Theme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	assert.Error(t, h.SetTheme("sepia"))
}
