package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/OpenVicProject/ovdl-go/internal/encoding"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// Mode selects the lexical dialect: the ordinary script grammar (simple,
// event, and decision parses all share it) or the Lua-defines grammar.
type Mode uint8

// Mode values.
const (
	ModeScript Mode = iota
	ModeLuaDefines
)

// Config controls lexical details that vary by parse mode.
type Config struct {
	Mode Mode
	// CStyleEscapes enables backslash escape processing inside string
	// literals (\n, \t, \\, \", \'). Some legacy files rely on raw
	// backslashes being kept literal, so this is opt-in per parse.
	CStyleEscapes bool
}

// DiagnosticCode identifies lexer diagnostic categories.
type DiagnosticCode string

// DiagnosticCode values emitted by the lexer.
const (
	DiagnosticInvalidByte        DiagnosticCode = "LEX_INVALID_BYTE"
	DiagnosticUnknownCharacter   DiagnosticCode = "LEX_UNKNOWN_CHARACTER"
	DiagnosticUnterminatedString DiagnosticCode = "LEX_UNTERMINATED_STRING"
)

// Diagnostic is a lexer-level issue with source location.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Span    text.Span
}

// Result is the output of lexing source bytes.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
}

// Lex tokenizes src under cfg into a flat token stream.
func Lex(src []byte, cfg Config) Result {
	s := scanner{src: src, cfg: cfg}
	s.run()
	return Result{Tokens: s.tokens, Diagnostics: s.diagnostics}
}

type scanner struct {
	src         []byte
	i           int
	cfg         Config
	tokens      []Token
	diagnostics []Diagnostic
}

func (s *scanner) run() {
	for {
		if errTok := s.skipTrivia(); errTok != nil {
			s.tokens = append(s.tokens, *errTok)
			continue
		}

		if s.eof() {
			s.tokens = append(s.tokens, Token{Kind: TokenEOF, Span: span(len(s.src), len(s.src))})
			return
		}

		s.tokens = append(s.tokens, s.scanToken())
	}
}

// skipTrivia advances past whitespace and comments, returning an error
// token if it runs into an invalid byte while doing so.
func (s *scanner) skipTrivia() *Token {
	for !s.eof() {
		start := s.i
		switch b := s.src[s.i]; {
		case isSpace(b):
			s.i++
		case b == '#' && s.cfg.Mode == ModeScript:
			s.scanLineComment()
		case b == '-' && s.peekByte(1) == '-' && s.cfg.Mode == ModeLuaDefines:
			s.i += 2
			s.scanLineComment()
		case b >= utf8.RuneSelf:
			if r, size := utf8.DecodeRune(s.src[s.i:]); r == utf8.RuneError && size == 1 && !encoding.IsLegacyNonASCIILetter(b) {
				s.i++
				return s.makeErrorToken(start, s.i, DiagnosticInvalidByte, "invalid UTF-8 byte")
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) scanToken() Token {
	start := s.i
	b := s.src[s.i]

	switch {
	case b == '"' || (b == '\'' && s.cfg.Mode == ModeLuaDefines):
		return s.scanString(b)
	case isIdentByte(b):
		s.i++
		for !s.eof() && (isIdentByte(s.src[s.i]) || (s.src[s.i] >= utf8.RuneSelf && encoding.IsLegacyNonASCIILetter(s.src[s.i]))) {
			s.i++
		}
		return Token{Kind: TokenIdentifier, Span: span(start, s.i)}
	case b >= utf8.RuneSelf && encoding.IsLegacyNonASCIILetter(b):
		s.i++
		for !s.eof() && (isIdentByte(s.src[s.i]) || encoding.IsLegacyNonASCIILetter(s.src[s.i])) {
			s.i++
		}
		return Token{Kind: TokenIdentifier, Span: span(start, s.i)}
	case b >= utf8.RuneSelf:
		r, size := utf8.DecodeRune(s.src[s.i:])
		if r == utf8.RuneError && size == 1 {
			s.i++
			return *s.makeErrorToken(start, start+1, DiagnosticInvalidByte, "invalid UTF-8 byte")
		}
		s.i += size
		return *s.makeErrorToken(start, s.i, DiagnosticUnknownCharacter, "unsupported character in this position")
	default:
		s.i++
		switch b {
		case '{':
			return Token{Kind: TokenLBrace, Span: span(start, s.i)}
		case '}':
			return Token{Kind: TokenRBrace, Span: span(start, s.i)}
		case '=':
			return Token{Kind: TokenEqual, Span: span(start, s.i)}
		case ',':
			return Token{Kind: TokenComma, Span: span(start, s.i)}
		default:
			return *s.makeErrorToken(start, s.i, DiagnosticUnknownCharacter, fmt.Sprintf("unknown character %q", b))
		}
	}
}

func (s *scanner) scanString(quote byte) Token {
	start := s.i
	s.i++

	var value []byte
	for !s.eof() {
		b := s.src[s.i]
		switch {
		case b == quote:
			s.i++
			return Token{Kind: TokenString, Span: span(start, s.i), Text: string(value)}
		case b == '\\' && s.cfg.CStyleEscapes:
			s.i++
			if s.eof() {
				break
			}
			value = append(value, decodeEscape(s.src[s.i]))
			s.i++
		case b == '\r' || b == '\n':
			return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
		default:
			value = append(value, b)
			s.i++
		}
	}

	return *s.makeErrorToken(start, s.i, DiagnosticUnterminatedString, "unterminated string literal")
}

func decodeEscape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return b
	}
}

func (s *scanner) scanLineComment() {
	for !s.eof() && s.src[s.i] != '\n' && s.src[s.i] != '\r' {
		s.i++
	}
}

func (s *scanner) makeErrorToken(start, end int, code DiagnosticCode, msg string) *Token {
	sp := span(start, end)
	s.diagnostics = append(s.diagnostics, Diagnostic{Code: code, Message: msg, Span: sp})
	return &Token{Kind: TokenError, Span: sp, Flags: TokenFlagMalformed}
}

func (s *scanner) eof() bool { return s.i >= len(s.src) }

func (s *scanner) peekByte(delta int) byte {
	j := s.i + delta
	if j < 0 || j >= len(s.src) {
		return 0
	}
	return s.src[j]
}

func span(start, end int) text.Span {
	return text.Span{Start: text.ByteOffset(start), End: text.ByteOffset(end)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	default:
		return false
	}
}

// isIdentByte reports whether b is an ASCII byte allowed in a script
// identifier: letters, digits, underscore, and the additional punctuation
// the grammar tolerates bare in value position.
func isIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '_', '+', ':', '@', '%', '&', '\'', '-', '.':
		return true
	default:
		return false
	}
}
