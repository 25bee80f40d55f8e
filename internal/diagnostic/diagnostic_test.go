package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

func TestEngineReportTracksErroredAndWarnedFlags(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	if e.Errored() || e.Warned() {
		t.Fatalf("fresh engine should report neither errored nor warned")
	}

	e.Report(KindSemanticWarning, "", "a minor issue", source.Synthesized)
	if e.Errored() || !e.Warned() {
		t.Fatalf("after a warning: errored=%v warned=%v, want false,true", e.Errored(), e.Warned())
	}

	e.Report(KindGenericParseError, "parse<EventGrammar>", "unexpected token", source.Synthesized)
	if !e.Errored() {
		t.Fatalf("after a parse error, Errored() should be true")
	}
	if e.Finish() != 2 {
		t.Fatalf("Finish() = %d, want 2", e.Finish())
	}
}

func TestEngineReportStripsAngleBracketProductionSuffix(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	err := e.Report(KindGenericParseError, "parse<EventGrammar>", "boom", source.Synthesized)
	if err.Production != "parse" {
		t.Fatalf("Production = %q, want %q", err.Production, "parse")
	}
}

func TestEngineErrorsPreserveInsertionOrder(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	e.Report(KindGenericParseError, "", "first", source.Synthesized)
	e.Report(KindGenericParseError, "", "second", source.Synthesized)

	errs := e.Errors()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if e.Interner().Text(errs[0].Message) != "first" || e.Interner().Text(errs[1].Message) != "second" {
		t.Fatalf("errors out of order: %q, %q", e.Interner().Text(errs[0].Message), e.Interner().Text(errs[1].Message))
	}
}

func TestPrintErrorsToRendersHeadingAndAnnotation(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	src := []byte("a = b\n")
	span, err := text.NewSpan(0, 1)
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	loc := source.NewNodeLocation(span)
	e.Report(KindGenericParseError, "", "unexpected identifier", loc, Annotation{
		Kind:     AnnotationPrimary,
		Message:  e.Interner().InternString("here"),
		Location: loc,
	})

	var buf bytes.Buffer
	e.PrintErrorsTo(StreamSink(&buf), "input.txt", src)

	out := buf.String()
	if !strings.Contains(out, "error:") || !strings.Contains(out, "unexpected identifier") {
		t.Fatalf("missing heading/message in output:\n%s", out)
	}
	if !strings.Contains(out, "input.txt") {
		t.Fatalf("missing path line in output:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing primary pointer in output:\n%s", out)
	}
}

func TestPrintErrorsToOmitsPathLineWhenEmpty(t *testing.T) {
	t.Parallel()

	e := NewEngine()
	e.Report(KindBufferError, "", "file not found", source.Synthesized)

	var buf bytes.Buffer
	e.PrintErrorsTo(StreamSink(&buf), "", nil)

	if strings.Contains(buf.String(), "-->") {
		t.Fatalf("expected no path line, got:\n%s", buf.String())
	}
}
