// Package jsonvalue provides order-preserving JSON decoding and value
// classification for the shape inference engine.
//
// Decoded objects are *orderedmap.OrderedMap[string, any] so that field
// order in inferred shapes matches the document's own key order. Values
// built by callers out of map[string]any are accepted too; their keys are
// enumerated in sorted order since Go map iteration order is unspecified.
package jsonvalue

import (
	"math"
	"reflect"
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON object.
type Object = orderedmap.OrderedMap[string, any]

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// undefinedValue is the type of the Undefined sentinel.
type undefinedValue struct{}

// Undefined marks a missing value. JSON text never decodes to it; callers
// constructing values programmatically may use it where a JavaScript value
// would be undefined.
var Undefined any = undefinedValue{}

// Kind is the classification of a raw JSON value.
type Kind string

// The eight classifications. KindCircular is only produced by classifiers
// that track an ancestor chain.
const (
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
	KindCircular  Kind = "circular"
)

// IsLeaf reports whether the kind is a non-composite value.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindNull, KindUndefined, KindString, KindNumber, KindBoolean:
		return true
	}
	return false
}

// KindOf classifies a raw value without cycle tracking.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefinedValue:
		return KindUndefined
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	case *Object, map[string]any:
		return KindObject
	default:
		// Anything else is opaque; treat it like null so the engines
		// stay total over their input domain.
		return KindNull
	}
}

// Identity returns a comparable identity for composite values, used to
// detect cycles. Non-composite values have no identity.
func Identity(v any) (uintptr, bool) {
	switch val := v.(type) {
	case *Object:
		return reflect.ValueOf(val).Pointer(), val != nil
	case map[string]any:
		return reflect.ValueOf(val).Pointer(), val != nil
	case []any:
		// Empty slices are never recursed into, so a nil base pointer
		// never reaches an ancestor chain.
		return reflect.ValueOf(val).Pointer(), len(val) > 0
	}
	return 0, false
}

// Field is one object field in enumeration order.
type Field struct {
	Name  string
	Value any
}

// Fields enumerates an object's fields. Ordered objects enumerate in
// insertion order; plain maps enumerate in sorted key order.
func Fields(v any) []Field {
	switch obj := v.(type) {
	case *Object:
		if obj == nil {
			return nil
		}
		fields := make([]Field, 0, obj.Len())
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			fields = append(fields, Field{Name: pair.Key, Value: pair.Value})
		}
		return fields
	case map[string]any:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, Field{Name: k, Value: obj[k]})
		}
		return fields
	}
	return nil
}

// NumberString renders a numeric value the way JSON does: integral floats
// print without a fractional part.
func NumberString(v any) string {
	switch n := v.(type) {
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	case int:
		return formatInt(int64(n))
	case int8:
		return formatInt(int64(n))
	case int16:
		return formatInt(int64(n))
	case int32:
		return formatInt(int64(n))
	case int64:
		return formatInt(n)
	case uint:
		return formatUint(uint64(n))
	case uint8:
		return formatUint(uint64(n))
	case uint16:
		return formatUint(uint64(n))
	case uint32:
		return formatUint(uint64(n))
	case uint64:
		return formatUint(n)
	}
	return ""
}

func formatFloat(f float64) string {
	if math.Trunc(f) == f && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

func formatUint(n uint64) string { return strconv.FormatUint(n, 10) }
