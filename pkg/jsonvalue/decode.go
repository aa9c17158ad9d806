package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ParseError reports malformed JSON input. It is the only error the parse
// boundary produces; the inference engines behind it never fail.
type ParseError struct {
	Message string
	Offset  int64 // byte offset of the error when known, else 0
}

func (e *ParseError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
	}
	return "parse error: " + e.Message
}

// Decode parses JSON text into a value tree that preserves object key order:
// objects decode to *Object, arrays to []any, strings to string, numbers to
// float64, booleans to bool, null to nil.
//
// Malformed input yields a *ParseError and no partial value.
func Decode(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Message: "empty input"}
	}

	// Validate with the standard decoder first: it rejects trailing
	// garbage and produces positioned error messages, neither of which
	// the order-preserving scanner below guarantees.
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, toParseError(err)
	}

	value, dt, _, err := jsonparser.Get(trimmed)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	return decodeValue(value, dt)
}

// DecodeString is Decode over a string input.
func DecodeString(text string) (any, error) {
	return Decode([]byte(text))
}

func decodeValue(data []byte, dt jsonparser.ValueType) (any, error) {
	switch dt {
	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
			child, err := decodeValue(value, vt)
			if err != nil {
				return err
			}
			obj.Set(string(key), child)
			return nil
		})
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		return obj, nil

	case jsonparser.Array:
		var arr []any
		var elemErr error
		_, err := jsonparser.ArrayEach(data, func(value []byte, vt jsonparser.ValueType, _ int, cbErr error) {
			if elemErr != nil {
				return
			}
			if cbErr != nil {
				elemErr = cbErr
				return
			}
			child, err := decodeValue(value, vt)
			if err != nil {
				elemErr = err
				return
			}
			arr = append(arr, child)
		})
		if err == nil {
			err = elemErr
		}
		if err != nil {
			if pe := (*ParseError)(nil); errors.As(err, &pe) {
				return nil, pe
			}
			return nil, &ParseError{Message: err.Error()}
		}
		if arr == nil {
			arr = []any{}
		}
		return arr, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		return s, nil

	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		return f, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, &ParseError{Message: err.Error()}
		}
		return b, nil

	case jsonparser.Null:
		return nil, nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unexpected value type %s", dt)}
	}
}

func toParseError(err error) *ParseError {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &ParseError{Message: syn.Error(), Offset: syn.Offset}
	}
	return &ParseError{Message: err.Error()}
}
