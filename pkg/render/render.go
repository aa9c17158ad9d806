// Package render provides the shared emit strategy for the text renderers.
// A renderer walks its input once and emits typed tokens; the emitter decides
// whether tokens become a plain string or a sequence of tagged spans.
package render

import "strings"

// TokenKind classifies an emitted token for downstream highlighting.
type TokenKind string

// Token kinds emitted by the shape and type-language renderers.
const (
	TokenText      TokenKind = ""          // structural text: punctuation, whitespace
	TokenString    TokenKind = "string"    // string leaf type name or sample
	TokenNumber    TokenKind = "number"    // number leaf type name or sample
	TokenBoolean   TokenKind = "boolean"   // boolean leaf type name or sample
	TokenNull      TokenKind = "null"      // null/undefined leaf type name
	TokenArray     TokenKind = "array"     // array marker including length tag
	TokenTruncated TokenKind = "truncated" // depth-limit ellipsis
	TokenCircular  TokenKind = "circular"  // circular-reference marker
	TokenKey       TokenKind = "key"       // object field name
	TokenBracket   TokenKind = "bracket"   // braces and angle brackets
)

// Span is one emitted token with its kind. A sequence of spans concatenates
// to exactly the plain-text rendering.
type Span struct {
	Text string    `json:"text"`
	Kind TokenKind `json:"kind,omitempty"`
}

// Emitter receives tokens from a renderer traversal.
type Emitter interface {
	Emit(text string, kind TokenKind)
}

// PlainEmitter concatenates tokens, discarding kinds.
type PlainEmitter struct {
	sb strings.Builder
}

// Emit appends the token text.
func (e *PlainEmitter) Emit(text string, _ TokenKind) {
	e.sb.WriteString(text)
}

// String returns the accumulated text.
func (e *PlainEmitter) String() string { return e.sb.String() }

// SpanEmitter collects tokens as tagged spans. Adjacent tokens of the same
// kind are merged so the span list stays compact.
type SpanEmitter struct {
	spans []Span
}

// Emit appends a span, merging with the previous one when kinds match.
func (e *SpanEmitter) Emit(text string, kind TokenKind) {
	if text == "" {
		return
	}
	if n := len(e.spans); n > 0 && e.spans[n-1].Kind == kind {
		e.spans[n-1].Text += text
		return
	}
	e.spans = append(e.spans, Span{Text: text, Kind: kind})
}

// Spans returns the collected spans.
func (e *SpanEmitter) Spans() []Span {
	if e.spans == nil {
		return []Span{}
	}
	return e.spans
}

// Text concatenates the collected spans into plain text.
func Text(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
