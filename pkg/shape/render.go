package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/render"
)

// Render produces the plain display text for a shape under the policy.
func Render(s Shape, p *Policy) string {
	if p == nil {
		p = DefaultPolicy()
	}
	e := &render.PlainEmitter{}
	renderNode(e, s, p, 0)
	return e.String()
}

// RenderAnnotated produces the same text as Render, split into spans tagged
// by token kind for downstream highlighting.
func RenderAnnotated(s Shape, p *Policy) []render.Span {
	if p == nil {
		p = DefaultPolicy()
	}
	e := &render.SpanEmitter{}
	renderNode(e, s, p, 0)
	return e.Spans()
}

// RenderSource is the copy form: always plain text, same traversal.
func RenderSource(s Shape, p *Policy) string {
	return Render(s, p)
}

func renderNode(e render.Emitter, s Shape, p *Policy, indent int) {
	switch n := s.(type) {
	case *Leaf:
		renderLeaf(e, n, p)

	case *ArrayOfLeaf:
		e.Emit(arrayTag(n.Length, p), render.TokenArray)
		if p.KeysOnly {
			return
		}
		e.Emit("<", render.TokenBracket)
		renderLeaf(e, n.Elem, p)
		e.Emit(">", render.TokenBracket)

	case *ArrayOfComposite:
		e.Emit(arrayTag(n.Length, p), render.TokenArray)
		e.Emit(" ", render.TokenText)
		renderNode(e, n.Elem, p, indent)

	case EmptyArray:
		e.Emit(arrayTag(0, p), render.TokenArray)

	case *Object:
		renderObject(e, n, p, indent)

	case Truncated:
		e.Emit(TruncationMarker, render.TokenTruncated)

	case CircularRef:
		e.Emit(CircularMarker, render.TokenCircular)
	}
}

func renderLeaf(e render.Emitter, leaf *Leaf, p *Policy) {
	if p.KeysOnly {
		return
	}
	kind := leafToken(leaf.Kind)
	e.Emit(string(leaf.Kind), kind)
	if leaf.HasSample {
		e.Emit("(", render.TokenText)
		if leaf.Kind == jsonvalue.KindString {
			e.Emit(strconv.Quote(leaf.Sample), kind)
		} else {
			e.Emit(leaf.Sample, kind)
		}
		e.Emit(")", render.TokenText)
	}
}

// renderObject places one field per line indented by 2*(indent+1) spaces,
// no trailing comma on the last field, closing brace at the parent indent.
// Compact mode renders the whole object on one line. An empty object is
// always {} regardless of policy.
func renderObject(e render.Emitter, obj *Object, p *Policy, indent int) {
	if obj.Fields.Len() == 0 {
		e.Emit("{}", render.TokenBracket)
		return
	}

	if p.Compact {
		e.Emit("{", render.TokenBracket)
		e.Emit(" ", render.TokenText)
		first := true
		for pair := obj.Fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				e.Emit(", ", render.TokenText)
			}
			first = false
			renderField(e, pair.Key, pair.Value, p, indent)
		}
		e.Emit(" ", render.TokenText)
		e.Emit("}", render.TokenBracket)
		return
	}

	e.Emit("{", render.TokenBracket)
	e.Emit("\n", render.TokenText)
	fieldPad := strings.Repeat(" ", 2*(indent+1))
	for pair := obj.Fields.Oldest(); pair != nil; pair = pair.Next() {
		e.Emit(fieldPad, render.TokenText)
		renderField(e, pair.Key, pair.Value, p, indent+1)
		if pair.Next() != nil {
			e.Emit(",", render.TokenText)
		}
		e.Emit("\n", render.TokenText)
	}
	e.Emit(strings.Repeat(" ", 2*indent), render.TokenText)
	e.Emit("}", render.TokenBracket)
}

func renderField(e render.Emitter, key string, child Shape, p *Policy, indent int) {
	e.Emit(strconv.Quote(key), render.TokenKey)
	// Under keysOnly a leaf field is just its key.
	if _, isLeaf := child.(*Leaf); isLeaf && p.KeysOnly {
		return
	}
	e.Emit(": ", render.TokenText)
	renderNode(e, child, p, indent)
}

func arrayTag(length int, p *Policy) string {
	if p.ShowLength {
		return fmt.Sprintf("array[%d]", length)
	}
	return "array"
}

func leafToken(kind jsonvalue.Kind) render.TokenKind {
	switch kind {
	case jsonvalue.KindString:
		return render.TokenString
	case jsonvalue.KindNumber:
		return render.TokenNumber
	case jsonvalue.KindBoolean:
		return render.TokenBoolean
	default:
		// null and undefined share the null highlight class.
		return render.TokenNull
	}
}
