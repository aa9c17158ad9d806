package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_FieldAccess(t *testing.T) {
	out, err := Filter(context.Background(), []byte(`{"data": {"id": 7}}`), ".data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7}`, string(out))
}

func TestFilter_Identity(t *testing.T) {
	out, err := Filter(context.Background(), []byte(`[1, 2, 3]`), ".")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(out))
}

func TestFilter_MultipleOutputsBecomeArray(t *testing.T) {
	out, err := Filter(context.Background(), []byte(`[{"v": 1}, {"v": 2}]`), ".[].v")
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2]`, string(out))
}

func TestFilter_NoOutputIsNull(t *testing.T) {
	out, err := Filter(context.Background(), []byte(`[]`), ".[]")
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestFilter_MissingFieldIsNull(t *testing.T) {
	out, err := Filter(context.Background(), []byte(`{"a": 1}`), ".missing")
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestFilter_InvalidExpression(t *testing.T) {
	_, err := Filter(context.Background(), []byte(`{}`), ".[unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")
}

func TestFilter_InvalidJSON(t *testing.T) {
	_, err := Filter(context.Background(), []byte(`not json`), ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON input")
}

func TestFilter_RuntimeError(t *testing.T) {
	_, err := Filter(context.Background(), []byte(`[1, 2]`), ".foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jq execution failed")
}

func TestValidateExpression(t *testing.T) {
	assert.NoError(t, ValidateExpression(".data.items[0]"))
	assert.NoError(t, ValidateExpression(".[] | select(.active)"))
	assert.Error(t, ValidateExpression("|||"))
	assert.Error(t, ValidateExpression(".x | nosuchfunction"))
}
