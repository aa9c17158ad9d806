package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/query"
)

// BatchInferInput is the input for json_batch_infer.
type BatchInferInput struct {
	Inputs  []string         `json:"inputs" jsonschema:"required,JSON documents to analyze"`
	Filter  string           `json:"filter,omitempty" jsonschema:"jq expression applied to every input before inference"`
	Options *PolicyOverrides `json:"options,omitempty" jsonschema:"Display policy overrides for this call"`
}

// BatchItemOut is the result for one batch input. Either shape or error is
// set, never both.
type BatchItemOut struct {
	Index int    `json:"index"`
	Shape string `json:"shape,omitempty"`
	Error string `json:"error,omitempty"`
}

// BatchInferOutput is the output for json_batch_infer.
type BatchInferOutput struct {
	Items   []BatchItemOut `json:"items,omitzero"`
	Failed  int            `json:"failed"`
	Summary string         `json:"summary"`
}

// ToolBatchInfer infers shapes for many documents concurrently. A failing
// document reports its error in place without aborting the batch.
func ToolBatchInfer(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input BatchInferInput) (*sdkmcp.CallToolResult, BatchInferOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input BatchInferInput) (*sdkmcp.CallToolResult, BatchInferOutput, error) {
		if len(input.Inputs) == 0 {
			return nil, BatchInferOutput{}, ErrInvalidInput("inputs is required")
		}
		// The filter is shared across all documents; reject a bad one
		// before any worker starts.
		if input.Filter != "" {
			if err := query.ValidateExpression(input.Filter); err != nil {
				return nil, BatchInferOutput{}, ErrQuery(err)
			}
		}

		policy, err := d.EffectivePolicy(input.Options)
		if err != nil {
			return nil, BatchInferOutput{}, err
		}

		items := make([]BatchItemOut, len(input.Inputs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(d.Config.BatchWorkers)
		for i, raw := range input.Inputs {
			g.Go(func() error {
				rendered, err := d.inferRendered(gctx, []byte(raw), policy, input.Filter)
				if err != nil {
					items[i] = BatchItemOut{Index: i, Error: err.Error()}
					return nil
				}
				items[i] = BatchItemOut{Index: i, Shape: rendered.Text}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, BatchInferOutput{}, WrapError(err)
		}

		failed := 0
		for _, item := range items {
			if item.Error != "" {
				failed++
			}
		}

		return nil, BatchInferOutput{
			Items:   items,
			Failed:  failed,
			Summary: counts.Sprintf("%d documents analyzed, %d failed", len(items), failed),
		}, nil
	}
}
