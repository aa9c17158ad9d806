// Package shape infers a compact structural description from an arbitrary
// JSON value and renders it as display text.
//
// Inference walks the value once under a Policy and produces a Shape tree, a
// closed tagged union. Arrays contribute a single representative element
// (index 0); cycles are cut by CircularRef nodes; a positive MaxDepth
// replaces deeper subtrees with Truncated nodes. Inference and rendering are
// total: every value that classifies (see pkg/jsonvalue) maps to a Shape and
// every Shape renders.
package shape

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
)

// SampleMaxLen is the longest leaf sample captured before truncation.
const SampleMaxLen = 30

// Markers emitted for the two synthetic shape nodes.
const (
	TruncationMarker = "..."
	CircularMarker   = "[Circular Reference]"
)

// Shape is one node of an inferred shape tree.
type Shape interface {
	shape()
}

// Leaf is a non-composite value: null, undefined, string, number or boolean.
type Leaf struct {
	Kind      jsonvalue.Kind
	Sample    string // formatted example value
	HasSample bool
}

// ArrayOfLeaf is an array whose representative element inferred to a leaf.
type ArrayOfLeaf struct {
	Length int
	Elem   *Leaf
}

// ArrayOfComposite is an array whose representative element inferred to
// anything other than a leaf (object, array, truncation or cycle marker).
type ArrayOfComposite struct {
	Length int
	Elem   Shape
}

// EmptyArray is an array with no elements.
type EmptyArray struct{}

// Object holds inferred field shapes in the source value's own key order.
type Object struct {
	Fields *orderedmap.OrderedMap[string, Shape]
}

// Truncated marks a subtree cut off by Policy.MaxDepth.
type Truncated struct{}

// CircularRef marks a composite value already open on the ancestor chain.
type CircularRef struct{}

func (*Leaf) shape()             {}
func (*ArrayOfLeaf) shape()      {}
func (*ArrayOfComposite) shape() {}
func (EmptyArray) shape()        {}
func (*Object) shape()           {}
func (Truncated) shape()         {}
func (CircularRef) shape()       {}

// NewObject creates an Object with no fields.
func NewObject() *Object {
	return &Object{Fields: orderedmap.New[string, Shape]()}
}
