package semantic

import (
	"context"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

// walkBlocks visits every statement list in tree rooted at root (the
// top-level FileTree plus every nested ListValue body), invoking fn once
// per block with its statement IDs.
func walkBlocks(tree *ast.Tree, root ast.NodeID, fn func(stmts []ast.NodeID)) {
	if tree.Kind(root) != ast.KindFileTree {
		return
	}
	ft := tree.FileTree(root)
	if ft == nil {
		return
	}
	walkBlock(tree, ft.Statements, fn)
}

func walkBlock(tree *ast.Tree, stmts []ast.NodeID, fn func(stmts []ast.NodeID)) {
	fn(stmts)
	for _, id := range stmts {
		walkNestedValue(tree, id, fn)
	}
}

func walkNestedValue(tree *ast.Tree, id ast.NodeID, fn func(stmts []ast.NodeID)) {
	switch tree.Kind(id) {
	case ast.KindAssignStatement:
		as := tree.AssignStatement(id)
		walkListBody(tree, as.Right, fn)
	case ast.KindValueStatement:
		vs := tree.ValueStatement(id)
		walkListBody(tree, vs.Value, fn)
	case ast.KindEventStatement:
		es := tree.EventStatement(id)
		walkListBody(tree, es.Body, fn)
	}
}

func walkListBody(tree *ast.Tree, id ast.NodeID, fn func(stmts []ast.NodeID)) {
	if tree.Kind(id) != ast.KindListValue {
		return
	}
	lv := tree.ListValue(id)
	walkBlock(tree, lv.Statements, fn)
}

// DuplicateTopLevelKeyRule flags a key assigned more than once within the
// same block. The parser itself only enforces this for the fixed
// event/decision keyword set; this rule generalizes it to every
// identifier/string key in every block, as an opt-in stricter pass.
type DuplicateTopLevelKeyRule struct{}

// ID returns the stable rule identifier.
func (DuplicateTopLevelKeyRule) ID() string { return "duplicate_top_level_key" }

// Description returns a human-readable rule summary.
func (DuplicateTopLevelKeyRule) Description() string {
	return "a key should not be assigned more than once within the same block"
}

// Run evaluates the rule against tree/root.
func (DuplicateTopLevelKeyRule) Run(ctx context.Context, tree *ast.Tree, interner *symbol.Interner, root ast.NodeID) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Finding
	walkBlocks(tree, root, func(stmts []ast.NodeID) {
		seen := make(map[string]bool)
		for _, id := range stmts {
			if tree.Kind(id) != ast.KindAssignStatement {
				continue
			}
			as := tree.AssignStatement(id)
			fv := tree.FlatValue(as.Left)
			if fv == nil {
				continue
			}
			name := interner.Text(fv.Text)
			if seen[name] {
				out = append(out, Finding{
					Kind:    diagnostic.KindSemanticWarning,
					Message: "duplicate key: " + name,
					Node:    id,
				})
				continue
			}
			seen[name] = true
		}
	})
	return out, nil
}

// EmptyBlockRule flags a `key = { }` assignment, which is almost always a
// leftover/typo in hand-edited legacy configuration files rather than
// something deliberately empty.
type EmptyBlockRule struct{}

// ID returns the stable rule identifier.
func (EmptyBlockRule) ID() string { return "empty_block" }

// Description returns a human-readable rule summary.
func (EmptyBlockRule) Description() string {
	return "an assigned block should not be empty"
}

// Run evaluates the rule against tree/root.
func (EmptyBlockRule) Run(ctx context.Context, tree *ast.Tree, interner *symbol.Interner, root ast.NodeID) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Finding
	walkBlocks(tree, root, func(stmts []ast.NodeID) {
		for _, id := range stmts {
			if tree.Kind(id) != ast.KindAssignStatement {
				continue
			}
			as := tree.AssignStatement(id)
			if tree.Kind(as.Right) != ast.KindListValue {
				continue
			}
			lv := tree.ListValue(as.Right)
			if len(lv.Statements) == 0 {
				fv := tree.FlatValue(as.Left)
				name := ""
				if fv != nil {
					name = interner.Text(fv.Text)
				}
				out = append(out, Finding{
					Kind:    diagnostic.KindSemanticWarning,
					Message: "empty block assigned to " + name,
					Node:    id,
				})
			}
		}
	})
	return out, nil
}
