// Package typegen renders a raw JSON value as a TypeScript-style type
// declaration. It traverses the value directly rather than an inferred
// shape, but follows the same representative-element rule: only array
// element 0 is ever inspected. No field is marked optional and no union
// types are produced.
package typegen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/render"
)

// bareIdentifier matches field names that can appear unquoted.
var bareIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Generate renders the type-language declaration for a value. Objects wrap
// as `interface Name { ... }`, everything else as `type Name = T;`.
func Generate(v any, name string) string {
	e := &render.PlainEmitter{}
	generate(e, v, name)
	return e.String()
}

// GenerateAnnotated is Generate with tagged-span output.
func GenerateAnnotated(v any, name string) []render.Span {
	e := &render.SpanEmitter{}
	generate(e, v, name)
	return e.Spans()
}

func generate(e render.Emitter, v any, name string) {
	if name == "" {
		name = "IGenerated"
	}
	if jsonvalue.KindOf(v) == jsonvalue.KindObject {
		e.Emit("interface ", render.TokenText)
		e.Emit(name, render.TokenKey)
		e.Emit(" ", render.TokenText)
		emitType(e, v, 0, make(map[uintptr]struct{}))
		return
	}
	e.Emit("type ", render.TokenText)
	e.Emit(name, render.TokenKey)
	e.Emit(" = ", render.TokenText)
	emitType(e, v, 0, make(map[uintptr]struct{}))
	e.Emit(";", render.TokenText)
}

// emitType writes the type expression for a value at the given indent level.
func emitType(e render.Emitter, v any, level int, ancestors map[uintptr]struct{}) {
	kind := jsonvalue.KindOf(v)
	if kind.IsLeaf() {
		e.Emit(string(kind), leafToken(kind))
		return
	}

	id, tracked := jsonvalue.Identity(v)
	if tracked {
		if _, open := ancestors[id]; open {
			e.Emit("any", render.TokenNull)
			return
		}
		ancestors[id] = struct{}{}
		defer delete(ancestors, id)
	}

	switch kind {
	case jsonvalue.KindArray:
		arr := v.([]any)
		if len(arr) == 0 {
			e.Emit("any", render.TokenNull)
			e.Emit("[]", render.TokenBracket)
			return
		}
		rep := arr[0]
		repKind := jsonvalue.KindOf(rep)
		if repKind == jsonvalue.KindObject || repKind == jsonvalue.KindArray {
			e.Emit("Array", render.TokenArray)
			e.Emit("<", render.TokenBracket)
			emitType(e, rep, level, ancestors)
			e.Emit(">", render.TokenBracket)
			return
		}
		emitType(e, rep, level, ancestors)
		e.Emit("[]", render.TokenBracket)

	case jsonvalue.KindObject:
		emitStructural(e, v, level, ancestors)
	}
}

// emitStructural writes an inline structural type, one `name: type;` per
// line, fields indented one level deeper than the container.
func emitStructural(e render.Emitter, v any, level int, ancestors map[uintptr]struct{}) {
	fields := jsonvalue.Fields(v)
	if len(fields) == 0 {
		e.Emit("{}", render.TokenBracket)
		return
	}

	e.Emit("{", render.TokenBracket)
	e.Emit("\n", render.TokenText)
	pad := strings.Repeat(" ", 2*(level+1))
	for _, f := range fields {
		e.Emit(pad, render.TokenText)
		e.Emit(fieldName(f.Name), render.TokenKey)
		e.Emit(": ", render.TokenText)
		emitType(e, f.Value, level+1, ancestors)
		e.Emit(";", render.TokenText)
		e.Emit("\n", render.TokenText)
	}
	e.Emit(strings.Repeat(" ", 2*level), render.TokenText)
	e.Emit("}", render.TokenBracket)
}

func fieldName(name string) string {
	if bareIdentifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
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
		return render.TokenNull
	}
}
