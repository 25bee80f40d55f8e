package diagnostic

import (
	"io"
	"os"

	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// ErrorSink is the contract the parser reports through: a single
// report operation plus a running count. NewSink adapts an *Engine to it;
// ParserContext carries the production name.
type ErrorSink interface {
	Report(ctx ParserContext, kind Kind, msg string, loc source.NodeLocation, annotations ...Annotation)
	Finish() int
}

// ParserContext names the grammar production an error arose under.
type ParserContext struct {
	Production string
}

// engineSink adapts *Engine to the ErrorSink contract.
type engineSink struct {
	engine *Engine
}

// NewSink wraps engine as an ErrorSink.
func NewSink(engine *Engine) ErrorSink { return engineSink{engine: engine} }

func (s engineSink) Report(ctx ParserContext, kind Kind, msg string, loc source.NodeLocation, annotations ...Annotation) {
	s.engine.Report(kind, ctx.Production, msg, loc, annotations...)
}

func (s engineSink) Finish() int { return s.engine.Finish() }

// Sink selects where PrintErrorsTo's output goes and whether it should be
// colorized, mirroring the source's set_error_log_to_{null,stderr,stdout}
// family of operations.
type Sink struct {
	w     io.Writer
	color bool
}

// NullSink discards all rendered output.
func NullSink() Sink { return Sink{w: io.Discard} }

// StderrSink writes to os.Stderr, colorizing when it's a terminal.
func StderrSink() Sink { return Sink{w: os.Stderr, color: isTerminal(os.Stderr)} }

// StdoutSink writes to os.Stdout, colorizing when it's a terminal.
func StdoutSink() Sink { return Sink{w: os.Stdout, color: isTerminal(os.Stdout)} }

// StreamSink wraps an arbitrary writer with color disabled.
func StreamSink(w io.Writer) Sink { return Sink{w: w} }

// ColorSink wraps an arbitrary writer, forcing colorization on or off
// regardless of whether w is a terminal (a CLI's --color flag overriding
// the StderrSink/StdoutSink auto-detection).
func ColorSink(w io.Writer, color bool) Sink { return Sink{w: w, color: color} }

// PrintErrorsTo renders every diagnostic in e to the sink's writer, one
// block per diagnostic in insertion order.
func (e *Engine) PrintErrorsTo(sink Sink, path string, src []byte) {
	r := &Renderer{Color: sink.color}
	var lines *text.LineIndex
	if src != nil {
		lines = text.NewLineIndex(src)
	}
	for _, err := range e.root.Errors {
		r.Render(sink.w, e.interner, path, err, src, lines)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
