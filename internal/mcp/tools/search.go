package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/search"
)

// HistorySearchInput is the input for json_history_search.
type HistorySearchInput struct {
	Query string `json:"query,omitempty" jsonschema:"Free-text query; tokens are ANDed. Empty lists the most recent entries"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum results to return (default: 10)"`
}

// HistorySearchOutput is the output for json_history_search.
type HistorySearchOutput struct {
	Results []*search.Result `json:"results,omitzero"`
	Summary string           `json:"summary"`
}

// ToolHistorySearch searches remembered inputs by key names and values.
func ToolHistorySearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistorySearchInput) (*sdkmcp.CallToolResult, HistorySearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistorySearchInput) (*sdkmcp.CallToolResult, HistorySearchOutput, error) {
		results, err := d.Search.Search(input.Query, input.Limit)
		if err != nil {
			return nil, HistorySearchOutput{}, WrapError(err)
		}
		if results == nil {
			results = []*search.Result{}
		}
		return nil, HistorySearchOutput{
			Results: results,
			Summary: counts.Sprintf("%d matching entries", len(results)),
		}, nil
	}
}
