// Package parser implements the recursive-descent grammar for v2script
// source: a single-pass, LL(1)-ish core that consumes a token stream and
// builds an AST, recovering to a brace-synchronised boundary on error.
package parser

import (
	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
	"github.com/OpenVicProject/ovdl-go/internal/encoding"
	"github.com/OpenVicProject/ovdl-go/internal/lexer"
	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// Mode selects which grammar entry point to run over the loaded buffer.
type Mode uint8

// Mode values, one per public parse operation.
const (
	ModeSimple Mode = iota
	ModeEvent
	ModeDecision
	ModeLuaDefines
)

// Parser owns a single buffer, its AST arena, its symbol interner, and its
// diagnostic state. It is not safe for concurrent use; independent Parser
// instances share nothing mutable.
type Parser struct {
	file     *source.SourceFile
	interner *symbol.Interner
	tree     *ast.Tree
	diags    *diagnostic.Engine

	toks []lexer.Token
	pos  int

	// src holds the bytes actually lexed: the file's buffer, transcoded to
	// UTF-8 when its tagged encoding is not already a UTF-8 variant.
	src    []byte
	posMap *encoding.PositionMap

	fatalError bool
}

// New creates a Parser over file's loaded buffer. Parse transcodes the
// buffer to UTF-8 according to its tagged BufferKind before lexing.
func New(file *source.SourceFile) *Parser {
	return &Parser{
		file:     file,
		interner: symbol.NewInterner(),
		tree:     ast.NewTree(),
		diags:    diagnostic.NewEngine(),
	}
}

// Tree returns the AST arena built so far.
func (p *Parser) Tree() *ast.Tree { return p.tree }

// Interner returns the symbol interner values were interned into.
func (p *Parser) Interner() *symbol.Interner { return p.interner }

// Diagnostics returns the diagnostic engine accumulating parse errors.
func (p *Parser) Diagnostics() *diagnostic.Engine { return p.diags }

// FatalError reports whether the parse was aborted before completion
// (the buffer was empty or not loaded, carried an unrecognized encoding tag,
// or failed to transcode).
func (p *Parser) FatalError() bool { return p.fatalError }

// lexConfig returns the lexer configuration for the given grammar mode.
func lexConfig(mode Mode) lexer.Config {
	switch mode {
	case ModeLuaDefines:
		return lexer.Config{Mode: lexer.ModeLuaDefines, CStyleEscapes: true}
	default:
		return lexer.Config{Mode: lexer.ModeScript, CStyleEscapes: true}
	}
}

// bufferEncoding maps a SourceFile's tagged BufferKind to the Encoding
// Transcode expects. Buffers already in a UTF-8 variant pass through
// untranscoded.
func bufferEncoding(kind source.BufferKind) (encoding.Encoding, bool) {
	switch kind {
	case source.BufferASCII:
		return encoding.ASCII, true
	case source.BufferUTF8:
		return encoding.UTF8, true
	case source.BufferUTF8BOM:
		return encoding.UTF8BOM, true
	case source.BufferWindows1252:
		return encoding.Windows1252, true
	case source.BufferWindows1251:
		return encoding.Windows1251, true
	case source.BufferGBK:
		return encoding.GBK, true
	case source.BufferUTF16LE:
		return encoding.UTF16LE, true
	case source.BufferUTF16BE:
		return encoding.UTF16BE, true
	case source.BufferUTF32:
		return encoding.UTF32, true
	default:
		return encoding.Unknown, false
	}
}

// Parse runs the grammar selected by mode over the loaded buffer and
// returns the root FileTree node. It returns false iff a fatal error
// occurred; any number of recoverable errors may still be present in
// Diagnostics().
func (p *Parser) Parse(mode Mode) (ast.NodeID, bool) {
	if p.file == nil || p.file.Buffer().IsEmpty() {
		p.fatalError = true
		p.diags.Report(diagnostic.KindBufferError, "", "buffer is empty or not loaded", source.Synthesized)
		return ast.NoNode, false
	}

	raw := p.file.Buffer().Bytes()
	enc, known := bufferEncoding(p.file.Buffer().Kind())
	if !known {
		p.fatalError = true
		p.diags.Report(diagnostic.KindBufferError, "", "buffer carries an unrecognized encoding tag", source.Synthesized)
		return ast.NoNode, false
	}

	decoded, posMap, warnings, err := encoding.Transcode(raw, enc)
	if err != nil {
		p.fatalError = true
		p.diags.Report(diagnostic.KindBufferError, "", "failed to transcode source: "+err.Error(), source.Synthesized)
		return ast.NoNode, false
	}
	p.src = decoded
	p.posMap = posMap
	for _, w := range warnings {
		p.diags.Report(diagnostic.KindSemanticWarning, "transcode", w.Message, p.inputLocation(w.InputOffset, w.InputOffset+1))
	}

	res := lexer.Lex(p.src, lexConfig(mode))
	p.toks = res.Tokens
	for _, d := range res.Diagnostics {
		p.reportLexDiagnostic(d)
	}

	statements := p.parseStatements(mode, func(tok lexer.Token) bool { return tok.Kind == lexer.TokenEOF })
	root := p.tree.NewFileTree(statements)
	p.setSpanLocation(root, 0, text.ByteOffset(len(p.src)))
	return root, true
}

func (p *Parser) reportLexDiagnostic(d lexer.Diagnostic) {
	loc := p.locationForSpan(d.Span)
	p.diags.Report(diagnostic.KindGenericParseError, "lex", d.Message, loc)
}

// locationForSpan maps an output-offset (post-transcode) span to a
// NodeLocation over the original input bytes via the recorded PositionMap.
func (p *Parser) locationForSpan(sp text.Span) source.NodeLocation {
	if !sp.IsValid() {
		return source.Synthesized
	}
	return p.inputLocation(int(sp.Start), int(sp.End))
}

func (p *Parser) inputLocation(outStart, outEnd int) source.NodeLocation {
	start, end := outStart, outEnd
	if p.posMap != nil {
		start = p.posMap.ToInputOffset(outStart)
		end = p.posMap.ToInputOffset(outEnd)
	}
	if end < start {
		end = start
	}
	sp, err := text.NewSpan(text.ByteOffset(start), text.ByteOffset(end))
	if err != nil {
		return source.Synthesized
	}
	return source.NewNodeLocation(sp)
}

// --- token stream helpers -------------------------------------------------

func (p *Parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *Parser) advance() lexer.Token {
	tok := p.toks[p.pos]
	if tok.Kind != lexer.TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) atEOF() bool { return p.peek().Kind == lexer.TokenEOF }

// --- grammar ---------------------------------------------------------------

// parseStatements reads Statement* until stop reports true for the lookahead token.
func (p *Parser) parseStatements(mode Mode, stop func(lexer.Token) bool) []ast.NodeID {
	var out []ast.NodeID
	for !p.atEOF() && !stop(p.peek()) {
		id, ok := p.parseStatement(mode)
		if !ok {
			p.recover()
			continue
		}
		out = append(out, id)
		if mode == ModeLuaDefines && p.peek().Kind == lexer.TokenComma {
			p.advance()
		}
	}
	return out
}

// parseStatement implements:
//
//	Statement ::= Identifier ( "=" Value | /* value-only */ ) | StringValue | ListValue
func (p *Parser) parseStatement(mode Mode) (ast.NodeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenLBrace:
		val, ok := p.parseListValue(mode)
		if !ok {
			return ast.NoNode, false
		}
		id := p.tree.NewValueStatement(val)
		p.copyLocation(id, val)
		return id, true

	case lexer.TokenString:
		left := p.parseFlatValue(tok, ast.KindStringValue)
		p.advance()
		return p.finishStatement(mode, left, tok)

	case lexer.TokenIdentifier:
		left := p.parseFlatValue(tok, ast.KindIdentifierValue)
		p.advance()
		return p.finishStatement(mode, left, tok)

	default:
		p.expectedCharClass("statement", tok)
		return ast.NoNode, false
	}
}

func (p *Parser) finishStatement(mode Mode, left ast.NodeID, leftTok lexer.Token) (ast.NodeID, bool) {
	if p.peek().Kind == lexer.TokenEqual {
		p.advance()

		leftName := ""
		if fv := p.tree.FlatValue(left); fv != nil && fv.Kind == ast.KindIdentifierValue {
			leftName = p.interner.Text(fv.Text)
		}
		trigger := classifyTrigger(mode, leftName)

		var right ast.NodeID
		var ok bool
		switch classifySubGrammar(mode, leftName) {
		case subGrammarTrigger:
			right, ok = p.ParseTrigger(mode)
		case subGrammarEffect:
			right, ok = p.ParseEffect(mode)
		case subGrammarAiWillDo:
			right, ok = p.ParseAiWillDo(mode)
		default:
			right, ok = p.parseValue(mode)
		}
		if !ok {
			return ast.NoNode, false
		}

		if trigger != triggerNone {
			if lv := p.tree.ListValue(right); lv != nil {
				p.checkDuplicateKeywords(lv.Statements)
			}
		}

		if trigger == triggerCountryEvent || trigger == triggerProvinceEvent {
			id := p.tree.NewEventStatement(trigger == triggerProvinceEvent, right)
			p.setSpanLocation(id, leftTok.Span.Start, p.lastConsumedEnd())
			return id, true
		}

		id := p.tree.NewAssignStatement(left, right)
		p.setSpanLocation(id, leftTok.Span.Start, p.lastConsumedEnd())
		return id, true
	}

	id := p.tree.NewValueStatement(left)
	p.copyLocation(id, left)
	return id, true
}

// parseValue implements: Value ::= Identifier | StringValue | ListValue
func (p *Parser) parseValue(mode Mode) (ast.NodeID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.TokenLBrace:
		return p.parseListValue(mode)
	case lexer.TokenIdentifier:
		id := p.parseFlatValue(tok, ast.KindIdentifierValue)
		p.advance()
		return id, true
	case lexer.TokenString:
		id := p.parseFlatValue(tok, ast.KindStringValue)
		p.advance()
		return id, true
	default:
		p.expectedCharClass("value", tok)
		return ast.NoNode, false
	}
}

// parseListValue implements: ListValue ::= "{" Statement* ("," | /*empty*/) "}"
func (p *Parser) parseListValue(mode Mode) (ast.NodeID, bool) {
	open := p.peek()
	if open.Kind != lexer.TokenLBrace {
		p.expectedLiteral("list value", "{", open)
		return ast.NoNode, false
	}
	p.advance()

	stop := func(tok lexer.Token) bool { return tok.Kind == lexer.TokenRBrace }
	statements := p.parseStatements(mode, stop)

	close := p.peek()
	if close.Kind != lexer.TokenRBrace {
		p.expectedLiteral("list value", "}", close)
		return ast.NoNode, false
	}
	p.advance()

	id := p.tree.NewListValue(statements)
	p.setSpanLocation(id, open.Span.Start, close.Span.End)
	return id, true
}

func (p *Parser) parseFlatValue(tok lexer.Token, kind ast.Kind) ast.NodeID {
	value := tok.Text
	if kind == ast.KindIdentifierValue {
		value = string(tok.Bytes(p.src))
	}
	sym := p.interner.InternString(value)

	var id ast.NodeID
	if kind == ast.KindStringValue {
		id = p.tree.NewStringValue(sym)
	} else {
		id = p.tree.NewIdentifierValue(sym)
	}
	p.setSpanLocation(id, tok.Span.Start, tok.Span.End)
	return id
}

// --- error recovery ----------------------------------------------------

// recover advances to the next brace-synchronised boundary (a "}" at the
// current depth) or end of input, whichever comes first.
func (p *Parser) recover() {
	depth := 0
	for !p.atEOF() {
		switch p.peek().Kind {
		case lexer.TokenLBrace:
			depth++
			p.advance()
		case lexer.TokenRBrace:
			if depth == 0 {
				return
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
}

func (p *Parser) expectedLiteral(production, literal string, got lexer.Token) {
	loc := p.locationForSpan(got.Span)
	p.diags.Report(diagnostic.KindExpectedLiteral, production, "expected '"+literal+"'", loc)
}

func (p *Parser) expectedCharClass(production string, got lexer.Token) {
	loc := p.locationForSpan(got.Span)
	p.diags.Report(diagnostic.KindExpectedCharClass, production, "expected a value", loc)
}

// --- location bookkeeping ------------------------------------------------

func (p *Parser) copyLocation(dst, src ast.NodeID) {
	if loc, ok := p.file.Location.LocationOf(src); ok {
		p.file.Location.Set(dst, loc)
	}
}

// setSpanLocation records id's location from an output-offset (post-transcode)
// span, translated back to input-buffer offsets.
func (p *Parser) setSpanLocation(id ast.NodeID, start, end text.ByteOffset) {
	p.file.Location.Set(id, p.inputLocation(int(start), int(end)))
}

func (p *Parser) lastConsumedEnd() text.ByteOffset {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].Span.End
}
