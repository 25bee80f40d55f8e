package printer

import (
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

func mustParseScript(t *testing.T, src string) (*parser.Parser, ast.NodeID) {
	t.Helper()
	file := source.FromString(source.BufferASCII, src)
	p := parser.New(file)
	root, ok := p.Parse(parser.ModeSimple)
	if !ok {
		t.Fatalf("Parse(%q) fatal: %v", src, p.Diagnostics().Errors())
	}
	return p, root
}

func TestDocumentReconstructsSimpleAssignment(t *testing.T) {
	t.Parallel()

	p, root := mustParseScript(t, "a = b\n")
	out, err := Document(p.Tree(), p.Interner(), root, Options{})
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if string(out) != "a = b\n" {
		t.Fatalf("Document() = %q, want %q", out, "a = b\n")
	}
}

func TestDocumentReconstructionReparsesToEquivalentTree(t *testing.T) {
	t.Parallel()

	src := "a = {\n\tb = \"c d\"\n\te\n}\n"
	p, root := mustParseScript(t, src)
	out, err := Document(p.Tree(), p.Interner(), root, Options{})
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}

	p2, root2 := mustParseScript(t, string(out))
	assertEquivalentFileTree(t, p.Tree(), p.Interner(), root, p2.Tree(), p2.Interner(), root2)
}

func TestDocumentEmptyListValue(t *testing.T) {
	t.Parallel()

	p, root := mustParseScript(t, "a = { }\n")
	out, err := Document(p.Tree(), p.Interner(), root, Options{})
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if string(out) != "a = { }\n" {
		t.Fatalf("Document() = %q, want %q", out, "a = { }\n")
	}
}

func TestDocumentEventStatement(t *testing.T) {
	t.Parallel()

	p, root := mustParseScript(t, "country_event = {\n\tid = 1\n}\n")
	out, err := Document(p.Tree(), p.Interner(), root, Options{})
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}

	p2, root2 := mustParseScript(t, string(out))
	assertEquivalentFileTree(t, p.Tree(), p.Interner(), root, p2.Tree(), p2.Interner(), root2)
}

// assertEquivalentFileTree compares two FileTree roots structurally (Kind
// and interned text), ignoring node locations.
func assertEquivalentFileTree(t *testing.T, t1 *ast.Tree, in1 *symbol.Interner, root1 ast.NodeID, t2 *ast.Tree, in2 *symbol.Interner, root2 ast.NodeID) {
	t.Helper()
	ft1, ft2 := t1.FileTree(root1), t2.FileTree(root2)
	if ft1 == nil || ft2 == nil {
		t.Fatalf("expected both roots to be FileTree nodes")
	}
	if len(ft1.Statements) != len(ft2.Statements) {
		t.Fatalf("statement count = %d, want %d", len(ft2.Statements), len(ft1.Statements))
	}
	for i := range ft1.Statements {
		assertEquivalentNode(t, t1, in1, ft1.Statements[i], t2, in2, ft2.Statements[i])
	}
}

func assertEquivalentNode(t *testing.T, t1 *ast.Tree, in1 *symbol.Interner, id1 ast.NodeID, t2 *ast.Tree, in2 *symbol.Interner, id2 ast.NodeID) {
	t.Helper()
	k1, k2 := t1.Kind(id1), t2.Kind(id2)
	if k1 != k2 {
		t.Fatalf("kind mismatch: %s vs %s", k1, k2)
	}
	switch k1 {
	case ast.KindIdentifierValue, ast.KindStringValue:
		fv1, fv2 := t1.FlatValue(id1), t2.FlatValue(id2)
		if in1.Text(fv1.Text) != in2.Text(fv2.Text) {
			t.Fatalf("flat value mismatch: %q vs %q", in1.Text(fv1.Text), in2.Text(fv2.Text))
		}
	case ast.KindListValue:
		lv1, lv2 := t1.ListValue(id1), t2.ListValue(id2)
		if len(lv1.Statements) != len(lv2.Statements) {
			t.Fatalf("list value statement count mismatch: %d vs %d", len(lv1.Statements), len(lv2.Statements))
		}
		for i := range lv1.Statements {
			assertEquivalentNode(t, t1, in1, lv1.Statements[i], t2, in2, lv2.Statements[i])
		}
	case ast.KindAssignStatement:
		as1, as2 := t1.AssignStatement(id1), t2.AssignStatement(id2)
		assertEquivalentNode(t, t1, in1, as1.Left, t2, in2, as2.Left)
		assertEquivalentNode(t, t1, in1, as1.Right, t2, in2, as2.Right)
	case ast.KindValueStatement:
		vs1, vs2 := t1.ValueStatement(id1), t2.ValueStatement(id2)
		assertEquivalentNode(t, t1, in1, vs1.Value, t2, in2, vs2.Value)
	case ast.KindEventStatement:
		es1, es2 := t1.EventStatement(id1), t2.EventStatement(id2)
		if es1.IsProvinceEvent != es2.IsProvinceEvent {
			t.Fatalf("IsProvinceEvent mismatch: %v vs %v", es1.IsProvinceEvent, es2.IsProvinceEvent)
		}
		assertEquivalentNode(t, t1, in1, es1.Body, t2, in2, es2.Body)
	}
}
