package source

import "github.com/OpenVicProject/ovdl-go/internal/text"

// NodeLocation is a half-open byte range into a SourceFile's original
// buffer. The zero value is Synthesized: a diagnostic-only location with no
// backing source range.
type NodeLocation struct {
	span  text.Span
	valid bool
}

// Synthesized is the zero NodeLocation: no source range.
var Synthesized = NodeLocation{}

// NewNodeLocation wraps a concrete byte span.
func NewNodeLocation(span text.Span) NodeLocation {
	return NodeLocation{span: span, valid: true}
}

// Valid reports whether the location refers to a real source range, as
// opposed to being synthesized.
func (l NodeLocation) Valid() bool {
	return l.valid
}

// Span returns the location's byte span and whether it is valid. The span
// returned for a synthesized location is the zero Span and must not be used.
func (l NodeLocation) Span() (text.Span, bool) {
	return l.span, l.valid
}
