package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shapediff"
)

// DiffInput is the input for json_diff.
type DiffInput struct {
	Left   SourceInput `json:"left" jsonschema:"required,Baseline JSON input"`
	Right  SourceInput `json:"right" jsonschema:"required,Candidate JSON input"`
	Filter string      `json:"filter,omitempty" jsonschema:"jq expression applied to both inputs before comparing"`
	Report bool        `json:"report,omitempty" jsonschema:"Include a human-readable report alongside the classified paths"`
}

// DiffOutput is the output for json_diff.
type DiffOutput struct {
	Diff      *shapediff.Result `json:"diff"`
	Identical bool              `json:"identical"`
	Report    string            `json:"report,omitempty"`
}

// ToolDiff compares the structure of two JSON inputs.
func ToolDiff(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DiffInput) (*sdkmcp.CallToolResult, DiffOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DiffInput) (*sdkmcp.CallToolResult, DiffOutput, error) {
		left, err := d.resolveDiffSide(ctx, input.Left, input.Filter, "left")
		if err != nil {
			return nil, DiffOutput{}, err
		}
		right, err := d.resolveDiffSide(ctx, input.Right, input.Filter, "right")
		if err != nil {
			return nil, DiffOutput{}, err
		}

		result := shapediff.Diff(left, right)

		out := DiffOutput{
			Diff:      result,
			Identical: result.Identical(),
		}
		if input.Report {
			out.Report = shapediff.RenderReport(result)
		}
		return nil, out, nil
	}
}

func (d *Deps) resolveDiffSide(ctx context.Context, in SourceInput, filter, side string) (any, error) {
	raw, err := d.ResolveInput(in)
	if err != nil {
		if coded, ok := err.(*CodedError); ok && coded.Code == ErrCodeInvalidInput {
			return nil, ErrInvalidInput(side + ": " + coded.Message)
		}
		return nil, err
	}
	return d.decodeFiltered(ctx, raw, filter)
}
