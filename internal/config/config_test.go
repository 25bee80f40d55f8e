package config

import (
	"flag"
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/parser/csv"
)

func TestRegisterFlagsDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var opts Options
	RegisterFlags(fs, &opts)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if opts.Grammar != string(GrammarScript) {
		t.Fatalf("Grammar default = %q, want %q", opts.Grammar, GrammarScript)
	}
	if opts.Mode != "simple" {
		t.Fatalf("Mode default = %q, want simple", opts.Mode)
	}
	if opts.Encoding != "auto" {
		t.Fatalf("Encoding default = %q, want auto", opts.Encoding)
	}
	if opts.Semantic {
		t.Fatalf("Semantic default = true, want false")
	}
}

func TestParserModeMapsAllNames(t *testing.T) {
	t.Parallel()

	tests := map[string]parser.Mode{
		"simple":      parser.ModeSimple,
		"":            parser.ModeSimple,
		"event":       parser.ModeEvent,
		"decision":    parser.ModeDecision,
		"lua-defines": parser.ModeLuaDefines,
	}
	for name, want := range tests {
		got, err := ParserMode(name)
		if err != nil {
			t.Fatalf("ParserMode(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParserMode(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParserModeRejectsUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ParserMode("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestCSVConfigMapsDelimiters(t *testing.T) {
	t.Parallel()

	tests := map[string]csv.Delimiter{
		";":   csv.DelimiterSemicolon,
		",":   csv.DelimiterComma,
		":":   csv.DelimiterColon,
		"tab": csv.DelimiterTab,
		"|":   csv.DelimiterPipe,
	}
	for name, want := range tests {
		cfg, err := CSVConfig(name, true)
		if err != nil {
			t.Fatalf("CSVConfig(%q) error: %v", name, err)
		}
		if cfg.Delimiter != want {
			t.Fatalf("CSVConfig(%q).Delimiter = %v, want %v", name, cfg.Delimiter, want)
		}
		if !cfg.HandleStrings {
			t.Fatalf("CSVConfig(%q).HandleStrings = false, want true", name)
		}
	}
}

func TestCSVConfigRejectsUnknownDelimiter(t *testing.T) {
	t.Parallel()

	if _, err := CSVConfig("%", false); err == nil {
		t.Fatalf("expected an error for an unknown delimiter")
	}
}
