// Package main provides the ovdlfmt CLI entry point: parse a script file
// and print its canonical reconstruction.
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/OpenVicProject/ovdl-go/internal/config"
	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/printer"
)

const (
	exitOK       = 0
	exitLoadFail = 1
	exitParseErr = 2
)

type cliOptions struct {
	config.Options
	path string
}

func run(stdout, stderr io.Writer, args []string) int {
	opts, usage, err := parseArgs(args)
	if err != nil {
		writef(stderr, "ovdlfmt: %v\n\n%s", err, usage)
		return exitLoadFail
	}

	file, err := config.LoadFile(opts.path, opts.Encoding)
	if err != nil {
		writef(stderr, "ovdlfmt: %v\n", err)
		return exitLoadFail
	}

	mode, err := config.ParserMode(opts.Mode)
	if err != nil {
		writef(stderr, "ovdlfmt: %v\n", err)
		return exitLoadFail
	}

	p := parser.New(file)
	root, ok := p.Parse(mode)
	if !ok {
		writef(stderr, "ovdlfmt: %s: load produced no parseable content\n", opts.path)
		return exitLoadFail
	}
	if p.Diagnostics().Errored() {
		msgs := p.Diagnostics().Interner()
		for _, e := range p.Diagnostics().Errors() {
			writef(stderr, "ovdlfmt: %s: %s\n", opts.path, msgs.Text(e.Message))
		}
		return exitParseErr
	}

	out, err := printer.Document(p.Tree(), p.Interner(), root, printer.Options{})
	if err != nil {
		writef(stderr, "ovdlfmt: %s: %v\n", opts.path, err)
		return exitParseErr
	}

	if _, err := stdout.Write(out); err != nil {
		writef(stderr, "ovdlfmt: write output: %v\n", err)
		return exitLoadFail
	}
	return exitOK
}

func parseArgs(args []string) (cliOptions, string, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("ovdlfmt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs, &opts.Options)

	usage := cliUsage(fs)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usage, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return cliOptions{}, usage, fmt.Errorf("exactly one input file path is required")
	}
	opts.path = rest[0]
	return opts, usage, nil
}

func cliUsage(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("Usage:\n  ovdlfmt [flags] path/to/file\n\nFlags:\n")
	fs.VisitAll(func(f *flag.Flag) {
		writef(&b, "  --%s\t%s\n", f.Name, f.Usage)
	})
	return b.String()
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}
