// Package query evaluates jq expressions against raw JSON, used to narrow
// an input before shape inference runs on it.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Filter runs a jq expression over the raw JSON and returns the result
// re-encoded as JSON. A filter yielding multiple values returns them as an
// array; a filter yielding nothing returns JSON null.
//
// gojq works on stdlib-decoded values, so object key order is not preserved
// through a filter; downstream re-decoding falls back to sorted keys.
func Filter(ctx context.Context, raw []byte, expression string) ([]byte, error) {
	code, err := compile(expression)
	if err != nil {
		return nil, err
	}

	var input any
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("invalid JSON input: %w", err)
	}

	var outputs []any
	iter := code.RunWithContext(ctx, input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("jq execution failed: %s", formatJQError(err, expression))
		}
		outputs = append(outputs, v)
	}

	var result any
	switch len(outputs) {
	case 0:
		result = nil
	case 1:
		result = outputs[0]
	default:
		result = outputs
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding filter result: %w", err)
	}
	return out, nil
}

// ValidateExpression checks that an expression parses and compiles without
// running it.
func ValidateExpression(expression string) error {
	_, err := compile(expression)
	return err
}

func compile(expression string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %s", formatJQError(err, expression))
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %s", formatJQError(err, expression))
	}
	return code, nil
}

// formatJQError rewrites common gojq failures into actionable messages.
func formatJQError(err error, expression string) string {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "expected an object"):
		return fmt.Sprintf("%s (input is not an object; try wrapping with [.[]] or check the path)", msg)
	case strings.Contains(msg, "expected an array"):
		return fmt.Sprintf("%s (input is not an array; drop the [] iteration)", msg)
	case strings.Contains(msg, "function not defined"):
		return fmt.Sprintf("%s (check the function name against the jq manual)", msg)
	case strings.Contains(msg, "unexpected token"):
		return fmt.Sprintf("%s in %q", msg, expression)
	default:
		return msg
	}
}
