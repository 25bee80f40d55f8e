// Package main runs reproducible parse/print performance measurements for
// the ovdl-go script and CSV grammars.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/OpenVicProject/ovdl-go/internal/parser"
	"github.com/OpenVicProject/ovdl-go/internal/parser/csv"
	"github.com/OpenVicProject/ovdl-go/internal/printer"
	"github.com/OpenVicProject/ovdl-go/internal/source"
)

const (
	setSmall     = "small"
	setTypical   = "typical"
	setLarge     = "large"
	setMalformed = "malformed"
)

type config struct {
	iterations int
	warmup     int
	jsonPath   string
}

type corpusFile struct {
	Name      string `json:"name"`
	Set       string `json:"set"`
	Grammar   string `json:"grammar"`
	Bytes     int    `json:"bytes"`
	Malformed bool   `json:"malformed"`
}

type sampleStats struct {
	Samples int     `json:"samples"`
	P50MS   float64 `json:"p50_ms"`
	P95MS   float64 `json:"p95_ms"`
	MinMS   float64 `json:"min_ms"`
	MaxMS   float64 `json:"max_ms"`
	MeanMS  float64 `json:"mean_ms"`
}

type benchSetReport struct {
	Set          string      `json:"set"`
	Files        int         `json:"files"`
	Iterations   int         `json:"iterations"`
	Samples      int         `json:"samples"`
	SkippedFiles int         `json:"skipped_files,omitempty"`
	Stats        sampleStats `json:"stats"`
	Notes        []string    `json:"notes,omitempty"`
}

type report struct {
	GeneratedAt time.Time               `json:"generated_at"`
	GoVersion   string                  `json:"go_version"`
	GOOS        string                  `json:"goos"`
	GOARCH      string                  `json:"goarch"`
	CPUs        int                     `json:"cpus"`
	Config      map[string]any          `json:"config"`
	Corpus      map[string][]corpusFile `json:"corpus"`
	ParseBench  []benchSetReport        `json:"parse_bench"`
	PrintBench  []benchSetReport        `json:"print_bench"`
	Warnings    []string                `json:"warnings,omitempty"`
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "perf-report: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.iterations, "iterations", 15, "benchmark iterations per document")
	flag.IntVar(&cfg.warmup, "warmup", 2, "warmup iterations per document")
	flag.StringVar(&cfg.jsonPath, "json", "", "optional JSON report output path")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	if cfg.iterations <= 0 {
		return errors.New("iterations must be > 0")
	}
	if cfg.warmup < 0 {
		return errors.New("warmup must be >= 0")
	}

	corpus, sources := builtinCorpus()
	var warnings []string
	if len(corpus[setMalformed]) == 0 {
		warnings = append(warnings, "no malformed documents in the built-in corpus")
	}

	parseBench, err := runParseBench(corpus, sources, cfg)
	if err != nil {
		return err
	}
	printBench, err := runPrintBench(corpus, sources, cfg)
	if err != nil {
		return err
	}

	rep := report{
		GeneratedAt: time.Now().UTC(),
		GoVersion:   runtime.Version(),
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		CPUs:        runtime.NumCPU(),
		Config:      configJSON(cfg),
		Corpus:      corpus,
		ParseBench:  parseBench,
		PrintBench:  printBench,
		Warnings:    warnings,
	}

	printReport(rep)
	if cfg.jsonPath != "" {
		if err := writeJSON(cfg.jsonPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nJSON report written to %s\n", cfg.jsonPath)
	}
	return nil
}

// builtinCorpus returns a fixed, in-binary corpus spanning both grammars and
// all four size/health buckets; no external repository of legacy script/CSV
// files is read.
func builtinCorpus() (map[string][]corpusFile, map[string]string) {
	docs := map[string]string{
		"script-small":     "player = \"ENG\"\nstart_date = \"1836.1.1\"\n",
		"script-typical":   syntheticScriptDocument(40),
		"script-large":     syntheticScriptDocument(800),
		"script-malformed": "country_event = {\n\tid = 1\n\ttitle\n",
		"csv-small":        "id;name;cost\n1;iron;10\n",
		"csv-typical":      syntheticCSVDocument(60),
		"csv-large":        syntheticCSVDocument(1200),
		"csv-malformed":    "id;name;cost\n1;\"unterminated;10\n",
	}

	grammarOf := func(name string) string {
		if strings.HasPrefix(name, "csv-") {
			return "csv"
		}
		return "script"
	}
	setOf := func(name string) string {
		switch {
		case strings.HasSuffix(name, "-small"):
			return setSmall
		case strings.HasSuffix(name, "-typical"):
			return setTypical
		case strings.HasSuffix(name, "-large"):
			return setLarge
		default:
			return setMalformed
		}
	}

	corpus := map[string][]corpusFile{setSmall: {}, setTypical: {}, setLarge: {}, setMalformed: {}}
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		set := setOf(name)
		corpus[set] = append(corpus[set], corpusFile{
			Name:      name,
			Set:       set,
			Grammar:   grammarOf(name),
			Bytes:     len(docs[name]),
			Malformed: set == setMalformed,
		})
	}
	return corpus, docs
}

func syntheticScriptDocument(blocks int) string {
	var b strings.Builder
	for i := 0; i < blocks; i++ {
		fmt.Fprintf(&b, "event_%d = {\n\tid = %d\n\ttitle = \"event %d\"\n\ttrigger = {\n\t\tcontrol = yes\n\t}\n}\n", i, i, i)
	}
	return b.String()
}

func syntheticCSVDocument(rows int) string {
	var b strings.Builder
	b.WriteString("id;name;cost;category\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%d;item_%d;%d;goods\n", i, i, i*3)
	}
	return b.String()
}

func runParseBench(corpus map[string][]corpusFile, sources map[string]string, cfg config) ([]benchSetReport, error) {
	sets := []string{setSmall, setTypical, setLarge, setMalformed}
	out := make([]benchSetReport, 0, len(sets))
	for _, set := range sets {
		files := corpus[set]
		samples, notes, err := benchmarkParse(files, sources, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse bench %s: %w", set, err)
		}
		out = append(out, benchSetReport{
			Set:        set,
			Files:      len(files),
			Iterations: cfg.iterations,
			Samples:    len(samples),
			Stats:      durationStats(samples),
			Notes:      notes,
		})
	}
	return out, nil
}

func parseOnce(grammar, src string) (ok bool) {
	file := source.FromString(source.BufferUTF8, src)
	if grammar == "csv" {
		p := csv.New(file)
		_, ok = p.Parse(csv.Config{Delimiter: csv.DelimiterSemicolon, HandleStrings: true})
		return ok
	}
	p := parser.New(file)
	_, ok = p.Parse(parser.ModeSimple)
	return ok
}

func benchmarkParse(files []corpusFile, sources map[string]string, cfg config) ([]time.Duration, []string, error) {
	var samples []time.Duration
	var notes []string
	for _, f := range files {
		src := sources[f.Name]
		for range cfg.warmup {
			parseOnce(f.Grammar, src)
		}
		for range cfg.iterations {
			start := time.Now()
			parseOnce(f.Grammar, src)
			samples = append(samples, time.Since(start))
		}
		if f.Malformed {
			notes = append(notes, f.Name)
		}
	}
	return samples, notes, nil
}

func runPrintBench(corpus map[string][]corpusFile, sources map[string]string, cfg config) ([]benchSetReport, error) {
	sets := []string{setSmall, setTypical, setLarge}
	out := make([]benchSetReport, 0, len(sets))
	for _, set := range sets {
		files := corpus[set]
		samples, skipped, notes, err := benchmarkPrint(files, sources, cfg)
		if err != nil {
			return nil, fmt.Errorf("print bench %s: %w", set, err)
		}
		out = append(out, benchSetReport{
			Set:          set,
			Files:        len(files),
			Iterations:   cfg.iterations,
			Samples:      len(samples),
			SkippedFiles: skipped,
			Stats:        durationStats(samples),
			Notes:        notes,
		})
	}
	return out, nil
}

// benchmarkPrint only covers script-grammar documents, since internal/printer
// reconstructs the script AST and has no CSV counterpart (csv.LineFile has no
// bracket structure to canonicalize the way script's ListValue does).
func benchmarkPrint(files []corpusFile, sources map[string]string, cfg config) ([]time.Duration, int, []string, error) {
	var samples []time.Duration
	skipped := 0
	var notes []string
	for _, f := range files {
		if f.Grammar != "script" {
			skipped++
			notes = append(notes, "skipped non-script document: "+f.Name)
			continue
		}
		src := sources[f.Name]
		file := source.FromString(source.BufferUTF8, src)
		p := parser.New(file)
		root, ok := p.Parse(parser.ModeSimple)
		if !ok {
			skipped++
			notes = append(notes, "skipped unparseable document: "+f.Name)
			continue
		}

		for range cfg.warmup {
			if _, err := printer.Document(p.Tree(), p.Interner(), root, printer.Options{}); err != nil {
				return nil, 0, nil, fmt.Errorf("warmup print %s: %w", f.Name, err)
			}
		}
		for range cfg.iterations {
			start := time.Now()
			if _, err := printer.Document(p.Tree(), p.Interner(), root, printer.Options{}); err != nil {
				return nil, 0, nil, fmt.Errorf("print %s: %w", f.Name, err)
			}
			samples = append(samples, time.Since(start))
		}
	}
	return samples, skipped, notes, nil
}

func durationStats(samples []time.Duration) sampleStats {
	if len(samples) == 0 {
		return sampleStats{}
	}
	ns := make([]int64, len(samples))
	var sum int64
	for i, d := range samples {
		ns[i] = d.Nanoseconds()
		sum += ns[i]
	}
	slices.Sort(ns)
	p50 := quantile(ns, 0.50)
	p95 := quantile(ns, 0.95)
	return sampleStats{
		Samples: len(samples),
		P50MS:   nanosToMS(p50),
		P95MS:   nanosToMS(p95),
		MinMS:   nanosToMS(ns[0]),
		MaxMS:   nanosToMS(ns[len(ns)-1]),
		MeanMS:  nanosToMS(sum / int64(len(ns))),
	}
}

func quantile(sorted []int64, q float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	idx := int(float64(len(sorted)-1) * q)
	return sorted[idx]
}

func nanosToMS(ns int64) float64 {
	return float64(ns) / float64(time.Millisecond)
}

func printReport(rep report) {
	fmt.Printf("ovdl-go Performance Report\n")
	fmt.Printf("Generated: %s\n", rep.GeneratedAt.Format(time.RFC3339))
	fmt.Printf("Go: %s | %s/%s | CPUs=%d\n", rep.GoVersion, rep.GOOS, rep.GOARCH, rep.CPUs)
	fmt.Println()
	fmt.Println("Corpus sets")
	for _, set := range []string{setSmall, setTypical, setLarge, setMalformed} {
		files := rep.Corpus[set]
		totalBytes := 0
		for _, f := range files {
			totalBytes += f.Bytes
		}
		fmt.Printf("- %-9s files=%3d total=%7d bytes\n", set, len(files), totalBytes)
	}
	if len(rep.Warnings) > 0 {
		fmt.Println()
		fmt.Println("Warnings")
		for _, w := range rep.Warnings {
			fmt.Printf("- %s\n", w)
		}
	}
	fmt.Println()
	printBenchTable("Parse (warm)", rep.ParseBench)
	fmt.Println()
	printBenchTable("Print document (warm, parse tree prebuilt)", rep.PrintBench)
}

func printBenchTable(title string, rows []benchSetReport) {
	fmt.Println(title)
	fmt.Println("set        files samples  p50(ms)  p95(ms)  mean(ms)   min    max  skipped")
	for _, r := range rows {
		fmt.Printf("%-10s %5d %7d %8.2f %8.2f %8.2f %6.2f %6.2f %7d\n",
			r.Set, r.Files, r.Samples, r.Stats.P50MS, r.Stats.P95MS, r.Stats.MeanMS, r.Stats.MinMS, r.Stats.MaxMS, r.SkippedFiles)
	}
}

func writeJSON(path string, rep report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return os.WriteFile(path, b, 0o600)
}

func configJSON(cfg config) map[string]any {
	return map[string]any{
		"iterations": cfg.iterations,
		"warmup":     cfg.warmup,
		"json":       cfg.jsonPath,
	}
}
