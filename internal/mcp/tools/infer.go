package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// InferShapeInput is the input for json_infer_shape.
type InferShapeInput struct {
	SourceInput
	Filter      string           `json:"filter,omitempty" jsonschema:"jq expression applied to the input before inference"`
	Options     *PolicyOverrides `json:"options,omitempty" jsonschema:"Display policy overrides for this call"`
	Annotated   bool             `json:"annotated,omitempty" jsonschema:"Include kind-tagged output spans alongside the plain text"`
	SaveHistory bool             `json:"save_history,omitempty" jsonschema:"Remember the input in history"`
}

// InferShapeOutput is the output for json_infer_shape.
type InferShapeOutput struct {
	Shape     string    `json:"shape"`
	Spans     []SpanOut `json:"spans,omitzero"`
	HistoryID string    `json:"history_id,omitempty"`
}

// ToolInferShape infers and renders the structural shape of a JSON input.
func ToolInferShape(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferShapeInput) (*sdkmcp.CallToolResult, InferShapeOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferShapeInput) (*sdkmcp.CallToolResult, InferShapeOutput, error) {
		raw, err := d.ResolveInput(input.SourceInput)
		if err != nil {
			return nil, InferShapeOutput{}, err
		}

		policy, err := d.EffectivePolicy(input.Options)
		if err != nil {
			return nil, InferShapeOutput{}, err
		}

		rendered, err := d.inferRendered(ctx, raw, policy, input.Filter)
		if err != nil {
			return nil, InferShapeOutput{}, err
		}

		out := InferShapeOutput{Shape: rendered.Text}
		if input.Annotated {
			out.Spans = spansOut(rendered.Spans)
		}

		if input.SaveHistory {
			entry, err := d.History.Add(raw)
			if err != nil {
				return nil, InferShapeOutput{}, WrapError(err)
			}
			out.HistoryID = entry.ID
		}

		return nil, out, nil
	}
}
