package mcp

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/mcp/tools"
)

// LoggingMiddleware returns middleware that logs every incoming method call
// with its duration, the analysis tool it targets, and on failure the
// tool error code.
func LoggingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()

			result, err := next(ctx, method, req)

			attrs := []slog.Attr{
				slog.String("method", method),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if name := toolName(req); name != "" {
				attrs = append(attrs, slog.String("tool", name))
			}

			if err != nil {
				var coded *tools.CodedError
				if errors.As(err, &coded) {
					attrs = append(attrs, slog.String("code", coded.Code))
				}
				attrs = append(attrs, slog.String("error", err.Error()))
				slog.LogAttrs(ctx, slog.LevelError, "method call failed", attrs...)
			} else {
				slog.LogAttrs(ctx, slog.LevelInfo, "method call completed", attrs...)
			}

			return result, err
		}
	}
}

func toolName(req sdkmcp.Request) string {
	if r, ok := req.(*sdkmcp.CallToolRequest); ok && r.Params != nil {
		return r.Params.Name
	}
	return ""
}
