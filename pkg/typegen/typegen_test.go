package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/render"
)

func mustDecode(t *testing.T, input string) any {
	t.Helper()
	v, err := jsonvalue.DecodeString(input)
	require.NoError(t, err)
	return v
}

func TestGenerate_Interface(t *testing.T) {
	input := `{"status": 200, "items": [{"id": 1, "name": "a"}], "tags": ["x"], "empty": []}`

	got := Generate(mustDecode(t, input), "IResponse")
	want := `interface IResponse {
  status: number;
  items: Array<{
    id: number;
    name: string;
  }>;
  tags: string[];
  empty: any[];
}`
	assert.Equal(t, want, got)
}

func TestGenerate_NonObjectRoots(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{`200`, `type IGenerated = number;`},
		{`"x"`, `type IGenerated = string;`},
		{`null`, `type IGenerated = null;`},
		{`[1, 2]`, `type IGenerated = number[];`},
		{`[]`, `type IGenerated = any[];`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Generate(mustDecode(t, tc.input), ""), tc.input)
	}
}

func TestGenerate_DefaultRootName(t *testing.T) {
	got := Generate(mustDecode(t, `{"a": 1}`), "")
	assert.Contains(t, got, "interface IGenerated {")
}

func TestGenerate_QuotesNonIdentifierKeys(t *testing.T) {
	got := Generate(mustDecode(t, `{"my-key": 1, "plain": "x", "$ok": true}`), "T")
	assert.Contains(t, got, `"my-key": number;`)
	assert.Contains(t, got, "plain: string;")
	assert.Contains(t, got, "$ok: boolean;")
}

func TestGenerate_RepresentativeElement(t *testing.T) {
	got := Generate(mustDecode(t, `[{"x": 1}, {"y": 2}]`), "T")
	assert.Contains(t, got, "x: number;")
	assert.NotContains(t, got, "y:")
}

func TestGenerate_NestedArrayOfArrays(t *testing.T) {
	got := Generate(mustDecode(t, `[[1, 2], [3]]`), "Grid")
	assert.Equal(t, "type Grid = Array<number[]>;", got)
}

func TestGenerate_CycleEmitsAny(t *testing.T) {
	root := map[string]any{}
	root["self"] = root

	got := Generate(root, "Node")
	want := `interface Node {
  self: any;
}`
	assert.Equal(t, want, got)
}

func TestGenerate_EmptyObject(t *testing.T) {
	assert.Equal(t, "interface T {}", Generate(mustDecode(t, `{}`), "T"))
}

func TestGenerateAnnotated_ConcatenatesToPlainText(t *testing.T) {
	v := mustDecode(t, `{"status": 200, "items": [{"id": 1}]}`)
	spans := GenerateAnnotated(v, "IResponse")
	assert.Equal(t, Generate(v, "IResponse"), render.Text(spans))
}
