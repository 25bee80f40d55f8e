// Package config wires the flags the cmd/ovdlparse and cmd/ovdlfmt CLI
// wrappers share into the parser/csv options their underlying packages
// expect: script parse mode, CSV delimiter/string-handling, and the
// source-encoding override used when loading a file.
package config

import (
	"flag"
	"fmt"

	"github.com/OpenVicProject/ovdl-go/internal/encoding"
	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/parser/csv"
	"github.com/OpenVicProject/ovdl-go/internal/source"
)

// Grammar selects which of the two dialects a CLI invocation parses.
type Grammar string

// Grammar values.
const (
	GrammarScript Grammar = "script"
	GrammarCSV    Grammar = "csv"
)

// Options collects the flags shared by the CLI wrappers. Zero value is not
// meaningful; construct via RegisterFlags + flag.Parse.
type Options struct {
	Grammar   string
	Mode      string
	Encoding  string
	Delimiter string
	Strings   bool
	Color     bool
	Format    string
	Semantic  bool
}

// RegisterFlags binds fs's flags into opts.
func RegisterFlags(fs *flag.FlagSet, opts *Options) {
	fs.StringVar(&opts.Grammar, "grammar", string(GrammarScript), "dialect to parse: script|csv")
	fs.StringVar(&opts.Mode, "mode", "simple", "script parse mode: simple|event|decision|lua-defines (ignored for --grammar=csv)")
	fs.StringVar(&opts.Encoding, "encoding", "auto", "source encoding: auto|ascii|utf8|utf8bom|windows1252|windows1251|gbk|utf16le|utf16be|utf32")
	fs.StringVar(&opts.Delimiter, "delimiter", ";", "CSV field delimiter: ;|,|:|tab|| (ignored for --grammar=script)")
	fs.BoolVar(&opts.Strings, "strings", false, "enable double-quoted string-aware CSV fields (ignored for --grammar=script)")
	fs.BoolVar(&opts.Color, "color", false, "force-enable colorized diagnostic output")
	fs.StringVar(&opts.Format, "format", "text", "diagnostic output format: text|json")
	fs.BoolVar(&opts.Semantic, "semantic", false, "run optional advisory checks (duplicate keys, empty blocks) in addition to grammar diagnostics (--grammar=script only)")
}

// ParserMode resolves opts.Mode to a parser.Mode.
func ParserMode(mode string) (parser.Mode, error) {
	switch mode {
	case "simple", "":
		return parser.ModeSimple, nil
	case "event":
		return parser.ModeEvent, nil
	case "decision":
		return parser.ModeDecision, nil
	case "lua-defines":
		return parser.ModeLuaDefines, nil
	default:
		return 0, fmt.Errorf("unknown --mode %q", mode)
	}
}

// CSVConfig resolves opts.Delimiter/opts.Strings to a csv.Config.
func CSVConfig(delimiter string, handleStrings bool) (csv.Config, error) {
	d, err := csvDelimiter(delimiter)
	if err != nil {
		return csv.Config{}, err
	}
	return csv.Config{Delimiter: d, HandleStrings: handleStrings}, nil
}

func csvDelimiter(s string) (csv.Delimiter, error) {
	switch s {
	case ";", "":
		return csv.DelimiterSemicolon, nil
	case ",":
		return csv.DelimiterComma, nil
	case ":":
		return csv.DelimiterColon, nil
	case "tab", "\t":
		return csv.DelimiterTab, nil
	case "|":
		return csv.DelimiterPipe, nil
	default:
		return 0, fmt.Errorf("unknown --delimiter %q", s)
	}
}

// bufferKindFor maps a named encoding flag value to a source.BufferKind,
// not including "auto" (callers resolve that via Detect against the bytes).
func bufferKindFor(name string) (source.BufferKind, error) {
	switch name {
	case "ascii":
		return source.BufferASCII, nil
	case "utf8":
		return source.BufferUTF8, nil
	case "utf8bom":
		return source.BufferUTF8BOM, nil
	case "windows1252":
		return source.BufferWindows1252, nil
	case "windows1251":
		return source.BufferWindows1251, nil
	case "gbk":
		return source.BufferGBK, nil
	case "utf16le":
		return source.BufferUTF16LE, nil
	case "utf16be":
		return source.BufferUTF16BE, nil
	case "utf32":
		return source.BufferUTF32, nil
	default:
		return source.BufferEmpty, fmt.Errorf("unknown --encoding %q", name)
	}
}

// encodingToBufferKind maps a Detect result to the BufferKind it tags.
func encodingToBufferKind(enc encoding.Encoding) source.BufferKind {
	switch enc {
	case encoding.ASCII:
		return source.BufferASCII
	case encoding.UTF8:
		return source.BufferUTF8
	case encoding.UTF8BOM:
		return source.BufferUTF8BOM
	case encoding.Windows1252:
		return source.BufferWindows1252
	case encoding.Windows1251:
		return source.BufferWindows1251
	case encoding.GBK:
		return source.BufferGBK
	case encoding.UTF16LE:
		return source.BufferUTF16LE
	case encoding.UTF16BE:
		return source.BufferUTF16BE
	case encoding.UTF32:
		return source.BufferUTF32
	default:
		return source.BufferUTF8
	}
}

// LoadFile reads path and tags the resulting SourceFile with either the
// named encoding or, when encodingName is "auto" (or empty), the Detector's
// best guess (UTF-8 is an allowed candidate). I/O failures are classified
// by source.LoadFile into os_error/file_not_found/permission_denied.
func LoadFile(path, encodingName string) (*source.SourceFile, error) {
	if encodingName != "" && encodingName != "auto" {
		kind, err := bufferKindFor(encodingName)
		if err != nil {
			return nil, err
		}
		return source.LoadFile(path, kind)
	}

	sf, err := source.LoadFile(path, source.BufferUTF8)
	if err != nil {
		return nil, err
	}
	raw := sf.Buffer().Bytes()
	enc, _ := encoding.Detect(raw, true)
	return source.NewSourceFile(path, source.NewBuffer(encodingToBufferKind(enc), raw)), nil
}
