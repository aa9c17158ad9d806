package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
)

var counts = message.NewPrinter(language.English)

// HistoryEntryOut is one history entry in tool output, raw text omitted.
type HistoryEntryOut struct {
	ID        string `json:"id"`
	AddedAtMs int64  `json:"added_at_ms"`
	Size      int    `json:"size"`
	Truncated bool   `json:"truncated,omitempty"`
	Preview   string `json:"preview"`
}

// HistoryListInput is the input for json_history_list.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum entries to return (default: all)"`
}

// HistoryListOutput is the output for json_history_list.
type HistoryListOutput struct {
	Entries []HistoryEntryOut `json:"entries,omitzero"`
	Summary string            `json:"summary"`
}

// ToolHistoryList lists remembered inputs, most recent first.
func ToolHistoryList(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryListInput) (*sdkmcp.CallToolResult, HistoryListOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryListInput) (*sdkmcp.CallToolResult, HistoryListOutput, error) {
		entries, err := d.History.List()
		if err != nil {
			return nil, HistoryListOutput{}, WrapError(err)
		}

		out := HistoryListOutput{Entries: []HistoryEntryOut{}}
		for _, e := range entries {
			if input.Limit > 0 && len(out.Entries) == input.Limit {
				break
			}
			out.Entries = append(out.Entries, entryOut(e))
		}
		out.Summary = counts.Sprintf("%d of %d entries", len(out.Entries), len(entries))
		return nil, out, nil
	}
}

// HistoryGetInput is the input for json_history_get.
type HistoryGetInput struct {
	ID string `json:"id" jsonschema:"required,History entry ID"`
}

// HistoryGetOutput is the output for json_history_get.
type HistoryGetOutput struct {
	Entry HistoryEntryOut `json:"entry"`
	Raw   string          `json:"raw"`
}

// ToolHistoryGet returns one remembered input including its raw text.
func ToolHistoryGet(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryGetInput) (*sdkmcp.CallToolResult, HistoryGetOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryGetInput) (*sdkmcp.CallToolResult, HistoryGetOutput, error) {
		if input.ID == "" {
			return nil, HistoryGetOutput{}, ErrInvalidInput("id is required")
		}
		entry, ok, err := d.History.Get(input.ID)
		if err != nil {
			return nil, HistoryGetOutput{}, WrapError(err)
		}
		if !ok {
			return nil, HistoryGetOutput{}, ErrNotFound("history entry", input.ID)
		}
		return nil, HistoryGetOutput{Entry: entryOut(entry), Raw: entry.Raw}, nil
	}
}

// HistoryClearInput is the input for json_history_clear.
type HistoryClearInput struct{}

// HistoryClearOutput is the output for json_history_clear.
type HistoryClearOutput struct {
	Cleared int `json:"cleared"`
}

// ToolHistoryClear removes all remembered inputs.
func ToolHistoryClear(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryClearInput) (*sdkmcp.CallToolResult, HistoryClearOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HistoryClearInput) (*sdkmcp.CallToolResult, HistoryClearOutput, error) {
		entries, err := d.History.List()
		if err != nil {
			return nil, HistoryClearOutput{}, WrapError(err)
		}
		if err := d.History.Clear(); err != nil {
			return nil, HistoryClearOutput{}, WrapError(err)
		}
		return nil, HistoryClearOutput{Cleared: len(entries)}, nil
	}
}

func entryOut(e *history.Entry) HistoryEntryOut {
	return HistoryEntryOut{
		ID:        e.ID,
		AddedAtMs: e.AddedAtMs,
		Size:      e.Size,
		Truncated: e.Truncated,
		Preview:   previewOf(e.Raw),
	}
}

const entryPreviewLen = 120

func previewOf(raw string) string {
	runes := []rune(raw)
	if len(runes) > entryPreviewLen {
		return string(runes[:entryPreviewLen]) + "..."
	}
	return raw
}
