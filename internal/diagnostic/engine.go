package diagnostic

import (
	"strings"

	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
)

// Engine accumulates diagnostics produced by a parser into a Root tree,
// owns a dedicated interner for formatted messages, and tracks the
// cumulative errored/warned flags callers observe after a parse.
type Engine struct {
	interner *symbol.Interner
	root     Root
	errored  bool
	warned   bool
}

// NewEngine returns an empty diagnostic engine with its own message interner.
func NewEngine() *Engine {
	return &Engine{interner: symbol.NewInterner()}
}

// Interner returns the engine's private message interner.
func (e *Engine) Interner() *symbol.Interner { return e.interner }

// Report interns msg, attaches it to an Error of the given kind, and
// appends the error to the root in insertion order. production is the
// grammar production name the error arose under; it is only meaningful
// for the ExpectedLiteral/ExpectedKeyword/ExpectedCharClass/
// GenericParseError kinds and is stripped of any "<...>" substring before
// being stored, mirroring how a debug-name production identifier can
// carry template-instantiation noise that isn't useful to a reader.
func (e *Engine) Report(kind Kind, production string, msg string, loc source.NodeLocation, annotations ...Annotation) Error {
	err := Error{
		Kind:        kind,
		Production:  stripAngleBracketSuffix(production),
		Message:     e.interner.InternString(msg),
		Location:    loc,
		Annotations: annotations,
	}
	e.root.Errors = append(e.root.Errors, err)

	switch kind.Severity() {
	case SeverityError:
		e.errored = true
	case SeverityWarning:
		e.warned = true
	}
	return err
}

// Finish returns the total number of errors (of any severity) accumulated
// so far.
func (e *Engine) Finish() int { return len(e.root.Errors) }

// Errored reports whether any error-severity diagnostic has been reported.
func (e *Engine) Errored() bool { return e.errored }

// Warned reports whether any warning-severity diagnostic has been reported.
func (e *Engine) Warned() bool { return e.warned }

// Errors returns the accumulated diagnostics in insertion order.
func (e *Engine) Errors() []Error { return e.root.Errors }

// Root returns the diagnostic tree accumulated so far.
func (e *Engine) Root() Root { return e.root }

// stripAngleBracketSuffix removes a trailing "<...>" substring from name,
// e.g. "parse<EventGrammar>" -> "parse".
func stripAngleBracketSuffix(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 && strings.HasSuffix(name, ">") {
		return name[:i]
	}
	return name
}
