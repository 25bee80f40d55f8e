package csv

import (
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/source"
)

func TestParseWorkedExampleFromSpec(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, ";a;b;;c;;")
	p := New(file)
	root, ok := p.Parse(DefaultConfig())
	if !ok {
		t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
	}
	lf := p.Tree().LineFile(root)
	if len(lf.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lf.Lines))
	}
	lo := p.Tree().LineObject(lf.Lines[0])
	if lo.PrefixEnd != 1 {
		t.Fatalf("PrefixEnd = %d, want 1", lo.PrefixEnd)
	}
	if lo.SuffixEnd != 7 {
		t.Fatalf("SuffixEnd = %d, want 7", lo.SuffixEnd)
	}
	if lo.ValueFor(1, p.Interner()) != "a" || lo.ValueFor(2, p.Interner()) != "b" || lo.ValueFor(4, p.Interner()) != "c" {
		t.Fatalf("stored values wrong: %+v", lo.Stored)
	}
	for _, k := range []int{0, 3, 5, 6} {
		if lo.ValueFor(k, p.Interner()) != "" {
			t.Fatalf("ValueFor(%d) = %q, want empty", k, lo.ValueFor(k, p.Interner()))
		}
	}
	if lo.ValueFor(7, p.Interner()) != "" {
		t.Fatalf("ValueFor(7) (out of range) should be empty")
	}
}

func TestParseMultipleLines(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, "a;b\nc;d\n")
	p := New(file)
	root, ok := p.Parse(DefaultConfig())
	if !ok {
		t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
	}
	lf := p.Tree().LineFile(root)
	if len(lf.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lf.Lines), lf.Lines)
	}
	first := p.Tree().LineObject(lf.Lines[0])
	second := p.Tree().LineObject(lf.Lines[1])
	if first.ValueFor(0, p.Interner()) != "a" || first.ValueFor(1, p.Interner()) != "b" {
		t.Fatalf("first line wrong: %+v", first)
	}
	if second.ValueFor(0, p.Interner()) != "c" || second.ValueFor(1, p.Interner()) != "d" {
		t.Fatalf("second line wrong: %+v", second)
	}
}

func TestParseConfigurableDelimiters(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		src   string
		delim Delimiter
	}{
		{"comma", "a,b,c", DelimiterComma},
		{"colon", "a:b:c", DelimiterColon},
		{"tab", "a\tb\tc", DelimiterTab},
		{"pipe", "a|b|c", DelimiterPipe},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			file := source.FromString(source.BufferASCII, tc.src)
			p := New(file)
			root, ok := p.Parse(Config{Delimiter: tc.delim})
			if !ok {
				t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
			}
			lf := p.Tree().LineFile(root)
			lo := p.Tree().LineObject(lf.Lines[0])
			if lo.ValueCount() != 3 {
				t.Fatalf("ValueCount() = %d, want 3", lo.ValueCount())
			}
			if lo.ValueFor(0, p.Interner()) != "a" || lo.ValueFor(2, p.Interner()) != "c" {
				t.Fatalf("fields wrong: %+v", lo)
			}
		})
	}
}

func TestParseStringAwareFieldWithEmbeddedDelimiter(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, `a;"b;c";d`)
	p := New(file)
	root, ok := p.Parse(Config{Delimiter: DelimiterSemicolon, HandleStrings: true})
	if !ok {
		t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
	}
	lf := p.Tree().LineFile(root)
	lo := p.Tree().LineObject(lf.Lines[0])
	if lo.ValueCount() != 3 {
		t.Fatalf("ValueCount() = %d, want 3", lo.ValueCount())
	}
	if lo.ValueFor(1, p.Interner()) != "b;c" {
		t.Fatalf("ValueFor(1) = %q, want %q", lo.ValueFor(1, p.Interner()), "b;c")
	}
}

func TestParseStringAwareDoubledQuoteEscape(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, `a;"he said ""hi""";c`)
	p := New(file)
	root, ok := p.Parse(Config{Delimiter: DelimiterSemicolon, HandleStrings: true})
	if !ok {
		t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
	}
	lf := p.Tree().LineFile(root)
	lo := p.Tree().LineObject(lf.Lines[0])
	want := `he said "hi"`
	if got := lo.ValueFor(1, p.Interner()); got != want {
		t.Fatalf("ValueFor(1) = %q, want %q", got, want)
	}
}

func TestParseEmptyBufferIsFatal(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, "")
	p := New(file)
	_, ok := p.Parse(DefaultConfig())
	if ok || !p.FatalError() {
		t.Fatalf("expected a fatal error for an empty buffer")
	}
}

func TestParseCRLFLineEndings(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, "a;b\r\nc;d\r\n")
	p := New(file)
	root, ok := p.Parse(DefaultConfig())
	if !ok {
		t.Fatalf("Parse() fatal: %v", p.Diagnostics().Errors())
	}
	lf := p.Tree().LineFile(root)
	if len(lf.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lf.Lines))
	}
}
