// Package diagnostic accumulates structured parse/semantic diagnostics into
// an ordered tree and renders them with inline source annotations.
package diagnostic

import (
	"fmt"

	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

// Kind tags the variant an Error node holds.
type Kind uint8

// Kind values.
const (
	KindBufferError Kind = iota
	KindExpectedLiteral
	KindExpectedKeyword
	KindExpectedCharClass
	KindGenericParseError
	KindSemanticError
	KindSemanticWarning
	KindSemanticInfo
	KindSemanticDebug
	KindSemanticFixit
	KindSemanticHelp
)

func (k Kind) String() string {
	switch k {
	case KindBufferError:
		return "BufferError"
	case KindExpectedLiteral:
		return "ExpectedLiteral"
	case KindExpectedKeyword:
		return "ExpectedKeyword"
	case KindExpectedCharClass:
		return "ExpectedCharClass"
	case KindGenericParseError:
		return "GenericParseError"
	case KindSemanticError:
		return "SemanticError"
	case KindSemanticWarning:
		return "SemanticWarning"
	case KindSemanticInfo:
		return "SemanticInfo"
	case KindSemanticDebug:
		return "SemanticDebug"
	case KindSemanticFixit:
		return "SemanticFixit"
	case KindSemanticHelp:
		return "SemanticHelp"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsFatal reports whether errors of this kind halt the parse immediately.
func (k Kind) IsFatal() bool { return k == KindBufferError }

// Severity classifies how a Kind should be counted toward the errored/
// warned flags and how its heading line is labeled.
func (k Kind) Severity() Severity {
	switch k {
	case KindSemanticWarning:
		return SeverityWarning
	case KindSemanticInfo, KindSemanticDebug, KindSemanticFixit, KindSemanticHelp:
		return SeverityNote
	default:
		return SeverityError
	}
}

// Severity is the heading-line label an Error renders with.
type Severity uint8

// Severity values.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// AnnotationKind distinguishes the primary span of an error from secondary,
// context-only spans.
type AnnotationKind uint8

// AnnotationKind values.
const (
	AnnotationPrimary AnnotationKind = iota
	AnnotationSecondary
)

// Annotation attaches a message and location to one span of an Error.
type Annotation struct {
	Kind     AnnotationKind
	Message  symbol.Symbol
	Location source.NodeLocation
}

// Error is one diagnostic: a tagged variant carrying its own message,
// location, and (for parse errors) the production it arose under.
type Error struct {
	Kind        Kind
	Production  string
	Message     symbol.Symbol
	Location    source.NodeLocation
	Annotations []Annotation
}

// Root is the ordered diagnostic tree produced by a single parse.
type Root struct {
	Errors []Error
}
