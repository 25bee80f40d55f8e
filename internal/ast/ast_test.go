package ast

import (
	"testing"

	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

func TestTreeAssignStatementRoundTrip(t *testing.T) {
	t.Parallel()

	in := symbol.NewInterner()
	tree := NewTree()

	left := tree.NewIdentifierValue(in.InternString("a"))
	right := tree.NewIdentifierValue(in.InternString("b"))
	assign := tree.NewAssignStatement(left, right)
	root := tree.NewFileTree([]NodeID{assign})

	if got := tree.Kind(assign); got != KindAssignStatement {
		t.Fatalf("Kind(assign) = %v, want %v", got, KindAssignStatement)
	}
	got := tree.AssignStatement(assign)
	if got == nil {
		t.Fatalf("AssignStatement(assign) = nil")
	}
	if got.Left != left || got.Right != right {
		t.Fatalf("AssignStatement(assign) = %+v, want Left=%v Right=%v", got, left, right)
	}

	ft := tree.FileTree(root)
	if ft == nil || len(ft.Statements) != 1 || ft.Statements[0] != assign {
		t.Fatalf("FileTree(root) = %+v, want single statement %v", ft, assign)
	}
}

func TestLineObjectValueForMatchesPrefixSuffixInvariant(t *testing.T) {
	t.Parallel()

	in := symbol.NewInterner()
	lo := LineObject{
		PrefixEnd: 2,
		Stored: []StoredValue{
			{Position: 2, Value: in.InternString("a")},
			{Position: 3, Value: in.InternString("b")},
			{Position: 5, Value: in.InternString("c")},
		},
		SuffixEnd: 7,
	}

	cases := []struct {
		k    int
		want string
	}{
		{0, ""},
		{1, ""},
		{2, "a"},
		{3, "b"},
		{4, ""},
		{5, "c"},
		{6, ""},
		{7, ""},
	}
	for _, c := range cases {
		if got := lo.ValueFor(c.k, in); got != c.want {
			t.Fatalf("ValueFor(%d) = %q, want %q", c.k, got, c.want)
		}
	}
	if got := lo.ValueCount(); got != 7 {
		t.Fatalf("ValueCount() = %d, want 7", got)
	}
}

func TestKindStringNamesEveryKind(t *testing.T) {
	t.Parallel()

	kinds := []Kind{
		KindIdentifierValue, KindStringValue, KindListValue, KindNullValue,
		KindAssignStatement, KindValueStatement, KindEventStatement, KindFileTree,
		KindLineObject, KindLineFile,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		name := k.String()
		if name == "Invalid" {
			t.Fatalf("Kind(%d).String() = %q, want a real name", k, name)
		}
		if seen[name] {
			t.Fatalf("duplicate Kind name %q", name)
		}
		seen[name] = true
	}
}
