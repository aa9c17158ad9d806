package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/typegen"
)

// GenerateTypesInput is the input for json_generate_types.
type GenerateTypesInput struct {
	SourceInput
	Filter    string `json:"filter,omitempty" jsonschema:"jq expression applied to the input before inference"`
	RootName  string `json:"root_name,omitempty" jsonschema:"Name of the generated root type (default: IGenerated)"`
	Annotated bool   `json:"annotated,omitempty" jsonschema:"Include kind-tagged output spans alongside the plain text"`
}

// GenerateTypesOutput is the output for json_generate_types.
type GenerateTypesOutput struct {
	Types string    `json:"types"`
	Spans []SpanOut `json:"spans,omitzero"`
}

// ToolGenerateTypes emits a TypeScript-style type declaration for the
// structure of a JSON input.
func ToolGenerateTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypesInput) (*sdkmcp.CallToolResult, GenerateTypesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateTypesInput) (*sdkmcp.CallToolResult, GenerateTypesOutput, error) {
		raw, err := d.ResolveInput(input.SourceInput)
		if err != nil {
			return nil, GenerateTypesOutput{}, err
		}

		v, err := d.decodeFiltered(ctx, raw, input.Filter)
		if err != nil {
			return nil, GenerateTypesOutput{}, err
		}

		out := GenerateTypesOutput{
			Types: typegen.Generate(v, input.RootName),
		}
		if input.Annotated {
			out.Spans = spansOut(typegen.GenerateAnnotated(v, input.RootName))
		}
		return nil, out, nil
	}
}
