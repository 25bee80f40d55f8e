package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenVicProject/ovdl-go/internal/symbol"
	"github.com/OpenVicProject/ovdl-go/internal/text"
)

// ansi color codes used when the output sink is terminal-like.
const (
	ansiReset      = "\x1b[0m"
	ansiBoldRed    = "\x1b[1;31m"
	ansiBoldYellow = "\x1b[1;33m"
	ansiBoldCyan   = "\x1b[1;36m"
)

// Renderer formats diagnostics as heading + gutter + annotation blocks. It
// is isolated behind io.Writer so the same formatting code can build a
// string (for embedding a rendered diagnostic back into an error node) or
// stream directly to an external sink.
type Renderer struct {
	// Color enables ANSI escapes around severity headings.
	Color bool
}

// NewRenderer returns a Renderer with color disabled.
func NewRenderer() *Renderer { return &Renderer{} }

// Render writes one diagnostic block for err to w. path may be empty, in
// which case the path line is omitted rather than printed blank. src and
// lines resolve err's annotations to line-numbered gutters; if lines is
// nil, only the heading, message, and path line are written.
func (r *Renderer) Render(w io.Writer, in *symbol.Interner, path string, err Error, src []byte, lines *text.LineIndex) {
	heading := err.Kind.Severity().String() + ":"
	if r.Color {
		heading = r.colorFor(err.Kind.Severity()) + heading + ansiReset
	}
	fmt.Fprintf(w, "%s %s\n", heading, in.Text(err.Message))

	if path != "" {
		fmt.Fprintf(w, "  --> %s\n", path)
	}

	for _, ann := range err.Annotations {
		r.renderAnnotation(w, in, ann, src, lines)
	}
}

func (r *Renderer) renderAnnotation(w io.Writer, in *symbol.Interner, ann Annotation, src []byte, lines *text.LineIndex) {
	span, ok := ann.Location.Span()
	if !ok || lines == nil {
		return
	}

	startPt, err := lines.OffsetToPoint(span.Start)
	if err != nil {
		return
	}
	endOff := span.End
	if endOff > 0 {
		endOff--
	}
	endPt, err := lines.OffsetToPoint(endOff)
	if err != nil {
		endPt = startPt
	}

	pointer, fill := "^", "~"
	if ann.Kind == AnnotationSecondary {
		pointer, fill = "-", "-"
	}

	if startPt.Line == endPt.Line {
		lineBytes := lines.Line(startPt.Line)
		fmt.Fprintf(w, "%5d | %s\n", startPt.Line+1, lineBytes)
		width := endPt.Column - startPt.Column + 1
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(w, "      | %s%s %s\n", strings.Repeat(" ", startPt.Column), pointer+strings.Repeat(fill, width-1), in.Text(ann.Message))
		return
	}

	fmt.Fprintf(w, "%5d | %s\n", startPt.Line+1, lines.Line(startPt.Line))
	fmt.Fprintf(w, "      | ...\n")
	fmt.Fprintf(w, "%5d | %s\n", endPt.Line+1, lines.Line(endPt.Line))
	fmt.Fprintf(w, "      | %s\n", in.Text(ann.Message))
}

func (r *Renderer) colorFor(sev Severity) string {
	switch sev {
	case SeverityError:
		return ansiBoldRed
	case SeverityWarning:
		return ansiBoldYellow
	default:
		return ansiBoldCyan
	}
}
