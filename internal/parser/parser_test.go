package parser

import (
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/source"
)

func mustParse(t *testing.T, src string, mode Mode) (*Parser, ast.NodeID) {
	t.Helper()
	file := source.FromString(source.BufferASCII, src)
	p := New(file)
	root, ok := p.Parse(mode)
	if !ok {
		t.Fatalf("Parse() returned fatal error: %v", p.Diagnostics().Errors())
	}
	return p, root
}

func TestParseSimpleAssignment(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "a = b\n", ModeSimple)
	ft := p.Tree().FileTree(root)
	if ft == nil || len(ft.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %+v", ft)
	}
	asg := p.Tree().AssignStatement(ft.Statements[0])
	if asg == nil {
		t.Fatalf("expected AssignStatement")
	}
	left := p.Tree().FlatValue(asg.Left)
	right := p.Tree().FlatValue(asg.Right)
	if p.Interner().Text(left.Text) != "a" || p.Interner().Text(right.Text) != "b" {
		t.Fatalf("got left=%q right=%q, want a, b", p.Interner().Text(left.Text), p.Interner().Text(right.Text))
	}
	if p.Diagnostics().Errored() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
}

func TestParseNestedListValue(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "a = { b c = d }\n", ModeSimple)
	ft := p.Tree().FileTree(root)
	asg := p.Tree().AssignStatement(ft.Statements[0])
	lv := p.Tree().ListValue(asg.Right)
	if lv == nil || len(lv.Statements) != 2 {
		t.Fatalf("expected a ListValue with 2 statements, got %+v", lv)
	}
}

func TestParseBareValueStatement(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "{ a b c }\n", ModeSimple)
	ft := p.Tree().FileTree(root)
	vs := p.Tree().ValueStatement(ft.Statements[0])
	if vs == nil {
		t.Fatalf("expected a ValueStatement wrapping the bare list")
	}
	lv := p.Tree().ListValue(vs.Value)
	if lv == nil || len(lv.Statements) != 3 {
		t.Fatalf("expected 3 statements inside list, got %+v", lv)
	}
}

func TestParseStringValue(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, `name = "hello world"`+"\n", ModeSimple)
	ft := p.Tree().FileTree(root)
	asg := p.Tree().AssignStatement(ft.Statements[0])
	right := p.Tree().FlatValue(asg.Right)
	if right.Kind != ast.KindStringValue || p.Interner().Text(right.Text) != "hello world" {
		t.Fatalf("got %+v, want StringValue(hello world)", right)
	}
}

func TestParseUnbalancedBraceRecoversAndReportsError(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "a = { b\nc = d\n", ModeSimple)
	if !p.Diagnostics().Errored() {
		t.Fatalf("expected a recoverable parse error for the unterminated list")
	}
	ft := p.Tree().FileTree(root)
	if ft == nil {
		t.Fatalf("expected a FileTree even after a recoverable error")
	}
}

func TestParseLuaDefinesTrailingCommaTolerated(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "a = { 1, 2, 3, }\n", ModeLuaDefines)
	if p.Diagnostics().Errored() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	ft := p.Tree().FileTree(root)
	asg := p.Tree().AssignStatement(ft.Statements[0])
	lv := p.Tree().ListValue(asg.Right)
	if lv == nil || len(lv.Statements) != 3 {
		t.Fatalf("expected 3 entries, got %+v", lv)
	}
}

func TestParseLuaDefinesSingleQuotedString(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "a = 'hi' -- comment\n", ModeLuaDefines)
	ft := p.Tree().FileTree(root)
	asg := p.Tree().AssignStatement(ft.Statements[0])
	right := p.Tree().FlatValue(asg.Right)
	if right.Kind != ast.KindStringValue || p.Interner().Text(right.Text) != "hi" {
		t.Fatalf("got %+v, want StringValue(hi)", right)
	}
}

func TestParseCountryEventBuildsEventStatement(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "country_event = {\n\tid = 1\n\ttitle = x\n}\n", ModeEvent)
	ft := p.Tree().FileTree(root)
	ev := p.Tree().EventStatement(ft.Statements[0])
	if ev == nil {
		t.Fatalf("expected an EventStatement")
	}
	if ev.IsProvinceEvent {
		t.Fatalf("country_event should not be flagged as a province event")
	}
	if p.Diagnostics().Errored() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
}

func TestParseProvinceEventFlag(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "province_event = {\n\tid = 1\n}\n", ModeEvent)
	ft := p.Tree().FileTree(root)
	ev := p.Tree().EventStatement(ft.Statements[0])
	if ev == nil || !ev.IsProvinceEvent {
		t.Fatalf("expected a province EventStatement, got %+v", ev)
	}
}

func TestParseEventDuplicateKeyReportsRecoverableError(t *testing.T) {
	t.Parallel()

	p, _ := mustParse(t, "country_event = {\n\tid = 1\n\tid = 2\n}\n", ModeEvent)
	if !p.Diagnostics().Errored() {
		t.Fatalf("expected a duplicate-key error")
	}
	found := false
	for _, e := range p.Diagnostics().Errors() {
		if p.Diagnostics().Interner().Text(e.Message) == "duplicate key: id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 'duplicate key: id' diagnostic, got %v", p.Diagnostics().Errors())
	}
}

func TestParseDecisionBlockDuplicateKey(t *testing.T) {
	t.Parallel()

	p, _ := mustParse(t, "political_decisions = {\n\ttrigger = { a = 1 }\n\ttrigger = { b = 2 }\n}\n", ModeDecision)
	if !p.Diagnostics().Errored() {
		t.Fatalf("expected a duplicate-key error in decision mode")
	}
}

func TestParseTriggerAndEffectBodiesParseAsListValues(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "country_event = {\n\tid = 1\n\ttrigger = { a = 1 }\n\teffect = { b = 2 }\n\tai_will_do = { c = 3 }\n}\n", ModeEvent)
	if p.Diagnostics().Errored() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}

	ft := p.Tree().FileTree(root)
	ev := p.Tree().EventStatement(ft.Statements[0])
	if ev == nil {
		t.Fatalf("expected an EventStatement")
	}
	lv := p.Tree().ListValue(ev.Body)
	if lv == nil || len(lv.Statements) != 4 {
		t.Fatalf("expected 4 statements in event body, got %v", lv)
	}

	for _, name := range []string{"trigger", "effect", "ai_will_do"} {
		found := false
		for _, stmt := range lv.Statements {
			asg := p.Tree().AssignStatement(stmt)
			if asg == nil {
				continue
			}
			fv := p.Tree().FlatValue(asg.Left)
			if fv == nil || p.Interner().Text(fv.Text) != name {
				continue
			}
			found = true
			if p.Tree().ListValue(asg.Right) == nil {
				t.Fatalf("%s body did not parse as a ListValue", name)
			}
		}
		if !found {
			t.Fatalf("expected a %q key in the event body", name)
		}
	}
}

func TestParseEmptyBufferIsFatal(t *testing.T) {
	t.Parallel()

	file := source.FromString(source.BufferASCII, "")
	p := New(file)
	_, ok := p.Parse(ModeSimple)
	if ok || !p.FatalError() {
		t.Fatalf("expected a fatal error for an empty buffer")
	}
}

func TestParseLegacyNonASCIIIdentifierBytesRoundTrip(t *testing.T) {
	t.Parallel()

	p, root := mustParse(t, "caf\xe9 = b\n", ModeSimple)
	if p.Diagnostics().Errored() {
		t.Fatalf("unexpected errors: %v", p.Diagnostics().Errors())
	}
	ft := p.Tree().FileTree(root)
	asg := p.Tree().AssignStatement(ft.Statements[0])
	left := p.Tree().FlatValue(asg.Left)
	if left == nil {
		t.Fatalf("expected an identifier left side")
	}
}
