// Package csv implements the delimiter-separated "CSV" dialect: one
// LineObject per source line, each line a sequence of Values split on a
// configurable delimiter, with an optional double-quoted string-aware mode.
package csv

import (
	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
	"github.com/OpenVicProject/ovdl-go/internal/encoding"
	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// Delimiter is one of the recognized field separators.
type Delimiter byte

// Delimiter values.
const (
	DelimiterSemicolon Delimiter = ';'
	DelimiterComma     Delimiter = ','
	DelimiterColon     Delimiter = ':'
	DelimiterTab       Delimiter = '\t'
	DelimiterPipe      Delimiter = '|'
)

// Config controls field splitting.
type Config struct {
	Delimiter Delimiter
	// HandleStrings enables double-quoted, string-aware fields: a field that
	// begins with '"' runs until a closing '"' not immediately followed by
	// another '"' (the doubled-quote escape), and may itself contain the
	// delimiter or raw bytes that would otherwise end a plain field.
	HandleStrings bool
}

// DefaultConfig is the semicolon-delimited, non-string-aware dialect.
func DefaultConfig() Config {
	return Config{Delimiter: DelimiterSemicolon}
}

// Parser owns a single buffer, its AST arena, its symbol interner, and its
// diagnostic state. It is not safe for concurrent use.
type Parser struct {
	file     *source.SourceFile
	interner *symbol.Interner
	tree     *ast.Tree
	diags    *diagnostic.Engine

	src        []byte
	posMap     *encoding.PositionMap
	fatalError bool
}

// New creates a Parser over file's loaded buffer.
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

// FatalError reports whether the parse was aborted before completion.
func (p *Parser) FatalError() bool { return p.fatalError }

// bufferEncoding maps a SourceFile's tagged BufferKind to the Encoding
// Transcode expects.
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

// Parse splits the loaded buffer into lines and each line into fields under
// cfg, returning the root LineFile node. It returns false iff a fatal error
// occurred.
func (p *Parser) Parse(cfg Config) (ast.NodeID, bool) {
	if cfg.Delimiter == 0 {
		cfg = DefaultConfig()
	}

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

	var lines []ast.NodeID
	if len(p.src) > 0 {
		for start := 0; ; {
			end, next := findLineEnd(p.src, start)
			lines = append(lines, p.parseLine(cfg, start, end))
			if next >= len(p.src) {
				break
			}
			start = next
		}
	}

	root := p.tree.NewLineFile(lines)
	p.setSpanLocation(root, 0, text.ByteOffset(len(p.src)))
	return root, true
}

// findLineEnd returns the exclusive end of the line starting at start (not
// including its terminator) and the start offset of the following line.
func findLineEnd(src []byte, start int) (end, next int) {
	i := start
	for i < len(src) && src[i] != '\n' && src[i] != '\r' {
		i++
	}
	end = i
	if i >= len(src) {
		return end, i
	}
	if src[i] == '\r' && i+1 < len(src) && src[i+1] == '\n' {
		return end, i + 2
	}
	return end, i + 1
}

// parseLine splits the bytes in [start,end) of p.src into fields under cfg
// and builds the corresponding LineObject.
func (p *Parser) parseLine(cfg Config, start, end int) ast.NodeID {
	fields := splitFields(p.src[start:end], byte(cfg.Delimiter), cfg.HandleStrings)

	n := len(fields)
	prefixEnd := n
	prefixSet := false
	var stored []ast.StoredValue
	for i, f := range fields {
		if f == "" {
			continue
		}
		if !prefixSet {
			prefixEnd = i
			prefixSet = true
		}
		sym := p.interner.InternString(f)
		stored = append(stored, ast.StoredValue{Position: i, Value: sym})
	}

	id := p.tree.NewLineObject(prefixEnd, stored, n)
	p.setSpanLocation(id, text.ByteOffset(start), text.ByteOffset(end))
	return id
}

// splitFields splits line on delim, honoring double-quoted fields with
// doubled-quote escaping when handleStrings is set.
func splitFields(line []byte, delim byte, handleStrings bool) []string {
	var fields []string
	i := 0
	for {
		var buf []byte
		if handleStrings && i < len(line) && line[i] == '"' {
			i++
			for i < len(line) {
				if line[i] == '"' {
					if i+1 < len(line) && line[i+1] == '"' {
						buf = append(buf, '"')
						i += 2
						continue
					}
					i++
					break
				}
				buf = append(buf, line[i])
				i++
			}
			// Consume any trailing bytes up to the next delimiter (malformed
			// input with content after the closing quote is tolerated).
			for i < len(line) && line[i] != delim {
				buf = append(buf, line[i])
				i++
			}
		} else {
			for i < len(line) && line[i] != delim {
				buf = append(buf, line[i])
				i++
			}
		}
		fields = append(fields, string(buf))
		if i >= len(line) {
			break
		}
		i++ // skip delimiter
	}
	return fields
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

func (p *Parser) setSpanLocation(id ast.NodeID, start, end text.ByteOffset) {
	p.file.Location.Set(id, p.inputLocation(int(start), int(end)))
}
