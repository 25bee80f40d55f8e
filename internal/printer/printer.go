// Package printer reconstructs source text from a parsed AST, exercising
// the grammar's reconstruction law: printing a successfully parsed tree and
// reparsing the result yields an AST equal to the original up to node
// locations.
package printer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

const defaultIndent = "\t"

// Options configures the printed layout. The zero value is valid and uses
// a tab for indentation.
type Options struct {
	Indent string
}

func normalizeOptions(opts Options) Options {
	if opts.Indent == "" {
		opts.Indent = defaultIndent
	}
	return opts
}

// UnsafeReason identifies why Document refused to print a tree.
type UnsafeReason string

// UnsafeReason values.
const (
	// UnsafeReasonUnknownNode means the tree contains a Kind the printer
	// does not know how to reconstruct (e.g. a CSV node passed to the
	// script printer).
	UnsafeReasonUnknownNode UnsafeReason = "unknown_node"
)

// ErrUnsafeToPrint is returned when Document refuses to print a tree.
type ErrUnsafeToPrint struct {
	Reason  UnsafeReason
	Message string
}

func (e *ErrUnsafeToPrint) Error() string {
	if e == nil {
		return "unsafe to print"
	}
	if e.Message == "" {
		return fmt.Sprintf("unsafe to print (%s)", e.Reason)
	}
	return fmt.Sprintf("unsafe to print (%s): %s", e.Reason, e.Message)
}

// IsErrUnsafeToPrint reports whether err is a printer safety refusal.
func IsErrUnsafeToPrint(err error) bool {
	var target *ErrUnsafeToPrint
	return errors.As(err, &target)
}

// Document reconstructs root (a FileTree node) into source text.
func Document(tree *ast.Tree, interner *symbol.Interner, root ast.NodeID, opts Options) ([]byte, error) {
	opts = normalizeOptions(opts)
	ft := tree.FileTree(root)
	if ft == nil {
		return nil, &ErrUnsafeToPrint{Reason: UnsafeReasonUnknownNode, Message: "root is not a FileTree"}
	}
	p := &printer{tree: tree, interner: interner, opts: opts}
	var b strings.Builder
	p.printStatements(&b, ft.Statements, 0)
	return []byte(b.String()), p.err
}

type printer struct {
	tree     *ast.Tree
	interner *symbol.Interner
	opts     Options
	err      error
}

func (p *printer) fail(kind ast.Kind) {
	if p.err == nil {
		p.err = &ErrUnsafeToPrint{
			Reason:  UnsafeReasonUnknownNode,
			Message: fmt.Sprintf("cannot print node kind %s", kind),
		}
	}
}

func (p *printer) printStatements(b *strings.Builder, stmts []ast.NodeID, depth int) {
	for _, id := range stmts {
		p.printStatement(b, id, depth)
	}
}

func (p *printer) indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(p.opts.Indent)
	}
}

func (p *printer) printStatement(b *strings.Builder, id ast.NodeID, depth int) {
	switch p.tree.Kind(id) {
	case ast.KindAssignStatement:
		as := p.tree.AssignStatement(id)
		p.indent(b, depth)
		p.printFlatValue(b, as.Left)
		b.WriteString(" = ")
		p.printValue(b, as.Right, depth)
		b.WriteString("\n")

	case ast.KindValueStatement:
		vs := p.tree.ValueStatement(id)
		p.indent(b, depth)
		p.printValue(b, vs.Value, depth)
		b.WriteString("\n")

	case ast.KindEventStatement:
		es := p.tree.EventStatement(id)
		p.indent(b, depth)
		if es.IsProvinceEvent {
			b.WriteString("province_event = ")
		} else {
			b.WriteString("country_event = ")
		}
		p.printValue(b, es.Body, depth)
		b.WriteString("\n")

	default:
		p.fail(p.tree.Kind(id))
	}
}

func (p *printer) printValue(b *strings.Builder, id ast.NodeID, depth int) {
	switch p.tree.Kind(id) {
	case ast.KindIdentifierValue, ast.KindStringValue:
		p.printFlatValue(b, id)
	case ast.KindNullValue:
		// A NullValue prints as nothing; callers that assigned it already
		// wrote "left = " before this call.
	case ast.KindListValue:
		lv := p.tree.ListValue(id)
		if len(lv.Statements) == 0 {
			b.WriteString("{ }")
			return
		}
		b.WriteString("{\n")
		p.printStatements(b, lv.Statements, depth+1)
		p.indent(b, depth)
		b.WriteString("}")
	default:
		p.fail(p.tree.Kind(id))
	}
}

func (p *printer) printFlatValue(b *strings.Builder, id ast.NodeID) {
	fv := p.tree.FlatValue(id)
	if fv == nil {
		p.fail(p.tree.Kind(id))
		return
	}
	text := p.interner.Text(fv.Text)
	if fv.Kind == ast.KindStringValue {
		b.WriteByte('"')
		b.WriteString(escapeStringBody(text))
		b.WriteByte('"')
		return
	}
	b.WriteString(text)
}

func escapeStringBody(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
