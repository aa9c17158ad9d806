package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// OptionsGetInput is the input for json_options_get.
type OptionsGetInput struct{}

// OptionsGetOutput is the output for json_options_get.
type OptionsGetOutput struct {
	Options   *shape.Policy `json:"options"`
	Theme     string        `json:"theme"`
	Persisted bool          `json:"persisted"` // options were saved before, not environment defaults
}

// ToolOptionsGet returns the effective display options and theme.
func ToolOptionsGet(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OptionsGetInput) (*sdkmcp.CallToolResult, OptionsGetOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OptionsGetInput) (*sdkmcp.CallToolResult, OptionsGetOutput, error) {
		options, persisted, err := d.History.Options()
		if err != nil {
			return nil, OptionsGetOutput{}, WrapError(err)
		}
		if !persisted {
			options = d.Config.Policy()
		}
		theme, err := d.History.Theme()
		if err != nil {
			return nil, OptionsGetOutput{}, WrapError(err)
		}
		return nil, OptionsGetOutput{Options: options, Theme: theme, Persisted: persisted}, nil
	}
}

// OptionsSetInput is the input for json_options_set.
type OptionsSetInput struct {
	Options *PolicyOverrides `json:"options,omitempty" jsonschema:"Display option fields to change"`
	Theme   string           `json:"theme,omitempty" jsonschema:"Color theme: light or dark"`
}

// OptionsSetOutput is the output for json_options_set.
type OptionsSetOutput struct {
	Options *shape.Policy `json:"options"`
	Theme   string        `json:"theme"`
}

// ToolOptionsSet updates and persists display options and theme. Unset
// fields keep their current values.
func ToolOptionsSet(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input OptionsSetInput) (*sdkmcp.CallToolResult, OptionsSetOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input OptionsSetInput) (*sdkmcp.CallToolResult, OptionsSetOutput, error) {
		if input.Options == nil && input.Theme == "" {
			return nil, OptionsSetOutput{}, ErrInvalidInput("provide options or theme")
		}
		if input.Theme != "" && input.Theme != history.ThemeLight && input.Theme != history.ThemeDark {
			return nil, OptionsSetOutput{}, ErrInvalidInput("theme must be light or dark")
		}

		options, err := d.EffectivePolicy(input.Options)
		if err != nil {
			return nil, OptionsSetOutput{}, err
		}
		if input.Options != nil {
			if err := d.History.SetOptions(options); err != nil {
				return nil, OptionsSetOutput{}, WrapError(err)
			}
		}
		if input.Theme != "" {
			if err := d.History.SetTheme(input.Theme); err != nil {
				return nil, OptionsSetOutput{}, WrapError(err)
			}
		}

		theme, err := d.History.Theme()
		if err != nil {
			return nil, OptionsSetOutput{}, WrapError(err)
		}
		return nil, OptionsSetOutput{Options: options, Theme: theme}, nil
	}
}
