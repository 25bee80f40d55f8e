// Package semantic runs post-parse advisory checks over a parsed AST, on
// top of (not instead of) the parser's own mandatory diagnostics. Rules are
// optional: a caller that wants stricter checking than the grammar itself
// enforces runs a Runner against the tree it already has.
package semantic

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

// Finding is one advisory diagnostic a Rule emits, expressed in terms of
// the diagnostic package's own vocabulary so a Runner's output can be fed
// straight into an Engine or rendered with the same Renderer a parse uses.
type Finding struct {
	Kind    diagnostic.Kind
	Message string
	Node    ast.NodeID
}

// Rule is an advisory check that can emit Findings for a parsed tree.
type Rule interface {
	ID() string
	Description() string
	Run(ctx context.Context, tree *ast.Tree, interner *symbol.Interner, root ast.NodeID) ([]Finding, error)
}

// Runner executes a configured rule set and returns aggregated Findings.
type Runner struct {
	rules []Rule
}

// NewRunner builds a Runner from an explicit rule set.
func NewRunner(rules ...Rule) *Runner {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Runner{rules: copied}
}

// NewDefaultRunner builds the default advisory rule set.
func NewDefaultRunner() *Runner {
	return NewRunner(
		DuplicateTopLevelKeyRule{},
		EmptyBlockRule{},
	)
}

// Run executes every configured rule against tree/root and returns the
// combined, deterministically ordered Finding list.
func (r *Runner) Run(ctx context.Context, tree *ast.Tree, interner *symbol.Interner, root ast.NodeID) ([]Finding, error) {
	if tree == nil {
		return nil, errors.New("nil tree")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || len(r.rules) == 0 {
		return nil, nil
	}

	var out []Finding
	for _, rule := range r.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		findings, err := rule.Run(ctx, tree, interner, root)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		out = append(out, findings...)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out, nil
}

// Report feeds every Finding into diags, resolving its location through
// locate (typically a *source.LocationMap's LocationOf), and returns the
// diagnostic.Error values produced, in the same order as findings.
func Report(diags *diagnostic.Engine, locate func(ast.NodeID) source.NodeLocation, production string, findings []Finding) []diagnostic.Error {
	out := make([]diagnostic.Error, 0, len(findings))
	for _, f := range findings {
		out = append(out, diags.Report(f.Kind, production, f.Message, locate(f.Node)))
	}
	return out
}
