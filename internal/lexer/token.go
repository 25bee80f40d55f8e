// Package lexer tokenizes v2script source into a flat token stream.
// Whitespace and comments are never preserved as trivia: the data model
// this package feeds keeps only the byte ranges a token itself occupies.
package lexer

import (
	"fmt"

	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// TokenKind identifies the syntactic category of a token.
type TokenKind uint8

// TokenKind values used by the v2script lexer.
const (
	TokenError TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenString
	TokenLBrace
	TokenRBrace
	TokenEqual
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenIdentifier:
		return "Identifier"
	case TokenString:
		return "String"
	case TokenLBrace:
		return "LBrace"
	case TokenRBrace:
		return "RBrace"
	case TokenEqual:
		return "Equal"
	case TokenComma:
		return "Comma"
	default:
		return fmt.Sprintf("TokenKind(%d)", k)
	}
}

// TokenFlags carry metadata about the token source or origin.
type TokenFlags uint8

// TokenFlags values describe token provenance or recovery state.
const (
	TokenFlagMalformed TokenFlags = 1 << iota
	TokenFlagSynthesized
)

// Has reports whether all bits in mask are set.
func (f TokenFlags) Has(mask TokenFlags) bool {
	return f&mask == mask
}

// Token is a lexed token with a source span. For TokenString, Span covers
// the full literal including its quotes; Text holds the unescaped value.
type Token struct {
	Kind  TokenKind
	Span  text.Span
	Text  string
	Flags TokenFlags
}

// Bytes returns the token bytes referenced by Span or nil if Span is invalid for src.
func (t Token) Bytes(src []byte) []byte {
	return bytesForSpan(src, t.Span)
}

func bytesForSpan(src []byte, sp text.Span) []byte {
	if !sp.IsValid() {
		return nil
	}
	if sp.End > text.ByteOffset(len(src)) {
		return nil
	}
	return src[sp.Start:sp.End]
}
