package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/typegen"
)

// Copy targets accepted by json_copy.
const (
	CopyTargetShape = "shape"
	CopyTargetTypes = "types"
	CopyTargetRaw   = "raw"
)

// CopyInput is the input for json_copy.
type CopyInput struct {
	SourceInput
	Target   string           `json:"target,omitempty" jsonschema:"What to copy: shape (default), types, or raw"`
	Filter   string           `json:"filter,omitempty" jsonschema:"jq expression applied to the input first"`
	RootName string           `json:"root_name,omitempty" jsonschema:"Root type name when target is types"`
	Options  *PolicyOverrides `json:"options,omitempty" jsonschema:"Display policy overrides for this call"`
}

// CopyOutput is the output for json_copy.
type CopyOutput struct {
	Copied int    `json:"copied"` // bytes written to the clipboard
	Target string `json:"target"`
}

// ToolCopy renders a result and writes it to the clipboard.
func ToolCopy(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input CopyInput) (*sdkmcp.CallToolResult, CopyOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input CopyInput) (*sdkmcp.CallToolResult, CopyOutput, error) {
		target := input.Target
		if target == "" {
			target = CopyTargetShape
		}

		raw, err := d.ResolveInput(input.SourceInput)
		if err != nil {
			return nil, CopyOutput{}, err
		}

		var text string
		switch target {
		case CopyTargetRaw:
			text = string(raw)

		case CopyTargetShape:
			policy, err := d.EffectivePolicy(input.Options)
			if err != nil {
				return nil, CopyOutput{}, err
			}
			rendered, err := d.inferRendered(ctx, raw, policy, input.Filter)
			if err != nil {
				return nil, CopyOutput{}, err
			}
			text = rendered.Text

		case CopyTargetTypes:
			v, err := d.decodeFiltered(ctx, raw, input.Filter)
			if err != nil {
				return nil, CopyOutput{}, err
			}
			text = typegen.Generate(v, input.RootName)

		default:
			return nil, CopyOutput{}, ErrInvalidInput("target must be shape, types, or raw")
		}

		if err := d.Clipboard.WriteText(text); err != nil {
			return nil, CopyOutput{}, &CodedError{
				Code:    ErrCodeClipboardError,
				Message: "writing clipboard failed",
				Cause:   err,
			}
		}

		return nil, CopyOutput{Copied: len(text), Target: target}, nil
	}
}
