package shape

import (
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
)

// Infer produces the Shape of a raw JSON value under the given policy.
// A nil policy means DefaultPolicy. Infer never fails: every classifiable
// value has a shape, cycles terminate as CircularRef nodes, and a positive
// MaxDepth bounds recursion with Truncated nodes.
func Infer(v any, p *Policy) Shape {
	if p == nil {
		p = DefaultPolicy()
	}
	return infer(v, p, 0, make(map[uintptr]struct{}))
}

// infer recurses with the chain of currently-open composite identities.
// The chain is pushed before a composite's children are visited and popped
// after, so sibling reuse of one sub-object is not mistaken for a cycle.
func infer(v any, p *Policy, depth int, ancestors map[uintptr]struct{}) Shape {
	if p.MaxDepth > 0 && depth >= p.MaxDepth {
		return Truncated{}
	}

	kind := jsonvalue.KindOf(v)
	if kind.IsLeaf() {
		return leafOf(v, kind, p)
	}

	id, tracked := jsonvalue.Identity(v)
	if tracked {
		if _, open := ancestors[id]; open {
			return CircularRef{}
		}
		ancestors[id] = struct{}{}
		defer delete(ancestors, id)
	}

	switch kind {
	case jsonvalue.KindArray:
		arr := v.([]any)
		if len(arr) == 0 {
			return EmptyArray{}
		}
		// Only the representative element is inspected; siblings beyond
		// index 0 never are.
		elem := infer(arr[0], p, depth+1, ancestors)
		if leaf, ok := elem.(*Leaf); ok {
			return &ArrayOfLeaf{Length: len(arr), Elem: leaf}
		}
		return &ArrayOfComposite{Length: len(arr), Elem: elem}

	case jsonvalue.KindObject:
		obj := NewObject()
		for _, f := range jsonvalue.Fields(v) {
			obj.Fields.Set(f.Name, infer(f.Value, p, depth+1, ancestors))
		}
		return obj
	}

	// Unreachable for classifiable input; keep inference total anyway.
	return &Leaf{Kind: jsonvalue.KindNull}
}

func leafOf(v any, kind jsonvalue.Kind, p *Policy) *Leaf {
	leaf := &Leaf{Kind: kind}
	if p.KeysOnly || !p.ShowSample {
		return leaf
	}

	switch kind {
	case jsonvalue.KindString:
		leaf.Sample = truncateSample(v.(string))
		leaf.HasSample = true
	case jsonvalue.KindNumber:
		leaf.Sample = jsonvalue.NumberString(v)
		leaf.HasSample = true
	case jsonvalue.KindBoolean:
		if v.(bool) {
			leaf.Sample = "true"
		} else {
			leaf.Sample = "false"
		}
		leaf.HasSample = true
	}
	return leaf
}

func truncateSample(s string) string {
	runes := []rune(s)
	if len(runes) <= SampleMaxLen {
		return s
	}
	return string(runes[:SampleMaxLen]) + TruncationMarker
}
