// Package main provides the ovdlparse CLI entry point: load a file, parse
// it under the requested dialect, and print diagnostics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/OpenVicProject/ovdl-go/internal/ast"
	"github.com/OpenVicProject/ovdl-go/internal/config"
	"github.com/OpenVicProject/ovdl-go/internal/diagnostic"
	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/parser/csv"
	"github.com/OpenVicProject/ovdl-go/internal/semantic"
	"github.com/OpenVicProject/ovdl-go/internal/source"
	"github.com/OpenVicProject/ovdl-go/internal/symbol"
	"github.com/OpenVicProject/ovdl-go/internal/text"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK       = 0
	exitLoadFail = 1
	exitParseErr = 2
)

type cliOptions struct {
	config.Options
	paths []string
}

// fileResult is one path's independent outcome: either a load failure, or a
// parsed (possibly error-reporting) file ready to have its diagnostics
// rendered.
type fileResult struct {
	path    string
	src     []byte
	diags   *diagnostic.Engine
	loadErr error
	fatal   bool
}

// run implements the exit policy: no file argument or a load failure exits
// 1; any reported parse error exits 2; warnings alone exit 0. Multiple file
// arguments are parsed concurrently: a Parser owns its buffer, arena,
// interner, and diagnostics outright and shares nothing mutable, so
// independent files can be driven from distinct goroutines with no locking
// in the parser package itself. Results are reported back in argument order
// so output stays deterministic, and the worst outcome across all files
// decides the process exit code.
func run(stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "ovdlparse: %v\n\n%s", err, usage)
		return exitLoadFail
	}

	results := make([]fileResult, len(opts.paths))
	var g errgroup.Group
	for i, path := range opts.paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = parseFile(opts.Options, path)
			return nil
		})
	}
	_ = g.Wait()

	exitCode := exitOK
	for _, res := range results {
		switch {
		case res.loadErr != nil:
			writef(stderr, "ovdlparse: %v\n", res.loadErr)
			exitCode = maxExitCode(exitCode, exitLoadFail)
		case res.fatal:
			writef(stderr, "ovdlparse: %s: load produced no parseable content\n", res.path)
			exitCode = maxExitCode(exitCode, exitLoadFail)
		default:
			if opts.Format == "json" {
				writeJSONDiagnostics(stdout, res.diags, res.src)
			} else {
				sink := diagnostic.ColorSink(stderr, opts.Color)
				res.diags.PrintErrorsTo(sink, res.path, res.src)
			}
			if res.diags.Errored() {
				exitCode = maxExitCode(exitCode, exitParseErr)
			}
		}
	}
	return exitCode
}

func maxExitCode(a, b int) int {
	if b > a {
		return b
	}
	return a
}

// parseFile loads and parses a single path under opts, independent of any
// other call to parseFile: it allocates its own SourceFile, Parser (or
// csv.Parser), and diagnostic.Engine.
func parseFile(opts config.Options, path string) fileResult {
	file, err := config.LoadFile(path, opts.Encoding)
	if err != nil {
		return fileResult{path: path, loadErr: err}
	}

	switch config.Grammar(opts.Grammar) {
	case config.GrammarCSV:
		cfg, err := config.CSVConfig(opts.Delimiter, opts.Strings)
		if err != nil {
			return fileResult{path: path, loadErr: err}
		}
		p := csv.New(file)
		_, ok := p.Parse(cfg)
		return fileResult{path: path, src: file.Buffer().Bytes(), diags: p.Diagnostics(), fatal: !ok}
	default:
		mode, err := config.ParserMode(opts.Mode)
		if err != nil {
			return fileResult{path: path, loadErr: err}
		}
		p := parser.New(file)
		root, ok := p.Parse(mode)
		diags := p.Diagnostics()
		if ok && opts.Semantic {
			runSemanticChecks(diags, file.Location, p.Tree(), p.Interner(), root)
		}
		return fileResult{path: path, src: file.Buffer().Bytes(), diags: diags, fatal: !ok}
	}
}

// runSemanticChecks runs the default advisory rule set over a successfully
// parsed script tree and reports any Findings into diags alongside the
// grammar's own diagnostics. A rule error is reported as a single note
// rather than aborting the run, since advisory checks are best-effort.
func runSemanticChecks(diags *diagnostic.Engine, locations *source.LocationMap, tree *ast.Tree, interner *symbol.Interner, root ast.NodeID) {
	findings, err := semantic.NewDefaultRunner().Run(context.Background(), tree, interner, root)
	if err != nil {
		diags.Report(diagnostic.KindSemanticInfo, "semantic", fmt.Sprintf("advisory checks skipped: %v", err), source.Synthesized)
		return
	}
	locate := func(id ast.NodeID) source.NodeLocation {
		loc, _ := locations.LocationOf(id)
		return loc
	}
	semantic.Report(diags, locate, "semantic", findings)
}

type diagnosticJSON struct {
	Kind       string `json:"kind"`
	Production string `json:"production,omitempty"`
	Message    string `json:"message"`
	StartLine  int    `json:"startLine,omitempty"`
	StartCol   int    `json:"startCol,omitempty"`
}

func writeJSONDiagnostics(w io.Writer, diags *diagnostic.Engine, src []byte) {
	lines := text.NewLineIndex(src)
	payload := make([]diagnosticJSON, 0, len(diags.Errors()))
	for _, e := range diags.Errors() {
		d := diagnosticJSON{
			Kind:       e.Kind.String(),
			Production: e.Production,
			Message:    string(diags.Interner().Bytes(e.Message)),
		}
		if sp, ok := e.Location.Span(); ok {
			if p, err := lines.OffsetToPoint(sp.Start); err == nil {
				d.StartLine, d.StartCol = p.Line+1, p.Column+1
			}
		}
		payload = append(payload, d)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("ovdlparse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs, &opts.Options)

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return cliOptions{}, usage, fmt.Errorf("at least one input file path is required")
	}
	opts.paths = rest
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n  ovdlparse [flags] path/to/file [path/to/file ...]\n\nFlags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}
