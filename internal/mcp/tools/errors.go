package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/clipboard"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeParseError     = "PARSE_ERROR"
	ErrCodeQueryError     = "QUERY_ERROR"
	ErrCodeClipboardError = "CLIPBOARD_ERROR"
	ErrCodeInternal       = "INTERNAL"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapError converts infrastructure errors to coded errors.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return err
	}

	var parseErr *jsonvalue.ParseError
	switch {
	case errors.As(err, &parseErr):
		coded = &CodedError{
			Code:    ErrCodeParseError,
			Message: parseErr.Error(),
			Cause:   err,
		}
	case errors.Is(err, clipboard.ErrEmpty):
		coded = &CodedError{
			Code:    ErrCodeClipboardError,
			Message: "clipboard is empty",
			Cause:   err,
		}
	default:
		coded = &CodedError{
			Code:    ErrCodeInternal,
			Message: err.Error(),
			Cause:   err,
		}
	}

	slog.Warn("tool error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// ErrQuery creates a jq expression error.
func ErrQuery(err error) error {
	return &CodedError{
		Code:    ErrCodeQueryError,
		Message: err.Error(),
		Cause:   err,
	}
}
