// Package tools contains the MCP tool implementations.
package tools

import (
	"context"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/cache"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/query"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/render"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// MIME type constant.
const MimeJSON = "application/json"

// SourceInput selects where a tool reads its JSON from. Exactly one source
// is used; inline text wins over a history reference, which wins over the
// clipboard.
type SourceInput struct {
	JSON          string `json:"json,omitempty" jsonschema:"Inline JSON text to analyze"`
	HistoryID     string `json:"history_id,omitempty" jsonschema:"ID of a history entry to analyze"`
	FromClipboard bool   `json:"from_clipboard,omitempty" jsonschema:"Read the input from the clipboard"`
}

// ResolveInput returns the raw bytes a tool should operate on.
func (d *Deps) ResolveInput(in SourceInput) ([]byte, error) {
	switch {
	case in.JSON != "":
		return []byte(in.JSON), nil
	case in.HistoryID != "":
		entry, ok, err := d.History.Get(in.HistoryID)
		if err != nil {
			return nil, WrapError(err)
		}
		if !ok {
			return nil, ErrNotFound("history entry", in.HistoryID)
		}
		return []byte(entry.Raw), nil
	case in.FromClipboard:
		text, err := d.Clipboard.ReadText()
		if err != nil {
			return nil, WrapError(err)
		}
		return []byte(text), nil
	default:
		return nil, ErrInvalidInput("provide json, history_id, or from_clipboard")
	}
}

// PolicyOverrides carries per-call display policy overrides. Unset fields
// keep the persisted or default value.
type PolicyOverrides struct {
	ShowLength *bool `json:"show_length,omitempty" jsonschema:"Include array lengths like array[3]"`
	ShowSample *bool `json:"show_sample,omitempty" jsonschema:"Include example values next to leaf types"`
	KeysOnly   *bool `json:"keys_only,omitempty" jsonschema:"Show only key structure without value types"`
	Compact    *bool `json:"compact,omitempty" jsonschema:"Render on a single line without indentation"`
	MaxDepth   *int  `json:"max_depth,omitempty" jsonschema:"Stop descending below this depth (0 = unlimited)"`
}

func applyOverrides(base *shape.Policy, o *PolicyOverrides) *shape.Policy {
	p := *base
	if o == nil {
		return &p
	}
	if o.ShowLength != nil {
		p.ShowLength = *o.ShowLength
	}
	if o.ShowSample != nil {
		p.ShowSample = *o.ShowSample
	}
	if o.KeysOnly != nil {
		p.KeysOnly = *o.KeysOnly
	}
	if o.Compact != nil {
		p.Compact = *o.Compact
	}
	if o.MaxDepth != nil {
		p.MaxDepth = *o.MaxDepth
	}
	return &p
}

// inferRendered runs the filter-decode-infer-render pipeline, consulting
// the shape cache first.
func (d *Deps) inferRendered(ctx context.Context, raw []byte, p *shape.Policy, filter string) (*cache.Rendered, error) {
	key := cache.Key(raw, p, filter)
	if r, ok := d.Cache.Get(key); ok {
		return r, nil
	}

	s, err := d.inferShape(ctx, raw, p, filter)
	if err != nil {
		return nil, err
	}

	r := &cache.Rendered{
		Text:  shape.Render(s, p),
		Spans: shape.RenderAnnotated(s, p),
	}
	d.Cache.Put(key, r)
	return r, nil
}

func (d *Deps) inferShape(ctx context.Context, raw []byte, p *shape.Policy, filter string) (shape.Shape, error) {
	v, err := d.decodeFiltered(ctx, raw, filter)
	if err != nil {
		return nil, err
	}
	return shape.Infer(v, p), nil
}

// decodeFiltered applies the optional jq filter and decodes the result,
// preserving object key order where the filter allows.
func (d *Deps) decodeFiltered(ctx context.Context, raw []byte, filter string) (any, error) {
	if filter != "" {
		filtered, err := query.Filter(ctx, raw, filter)
		if err != nil {
			return nil, ErrQuery(err)
		}
		raw = filtered
	}

	v, err := jsonvalue.Decode(raw)
	if err != nil {
		return nil, WrapError(err)
	}
	return v, nil
}

// spansOut converts render spans to the wire representation.
func spansOut(spans []render.Span) []SpanOut {
	out := make([]SpanOut, 0, len(spans))
	for _, s := range spans {
		out = append(out, SpanOut{Text: s.Text, Kind: string(s.Kind)})
	}
	return out
}

// SpanOut is one annotated output token.
type SpanOut struct {
	Text string `json:"text"`
	Kind string `json:"kind,omitempty"`
}
