package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_EmptyRead(t *testing.T) {
	m := NewMemory()
	_, err := m.ReadText()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.WriteText("first"))
	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "first", text)

	require.NoError(t, m.WriteText("second"))
	text, err = m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestMemory_EmptyStringIsAValue(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteText(""))

	text, err := m.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
