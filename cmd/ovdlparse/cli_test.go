package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNoArgsExitsLoadFail(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, nil)
	if code != exitLoadFail {
		t.Fatalf("exit code = %d, want %d", code, exitLoadFail)
	}
}

func TestRunMissingFileExitsLoadFail(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{filepath.Join(t.TempDir(), "missing.txt")})
	if code != exitLoadFail {
		t.Fatalf("exit code = %d, want %d", code, exitLoadFail)
	}
}

func TestRunCleanScriptExitsOK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "valid.txt")
	if err := os.WriteFile(path, []byte("a = { b = \"c\" }\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{path})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitOK, errb.String())
	}
}

func TestRunUnbalancedBraceExitsParseErr(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.txt")
	if err := os.WriteFile(path, []byte("a = { b\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{path})
	if code != exitParseErr {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitParseErr, errb.String())
	}
	if errb.Len() == 0 {
		t.Fatalf("expected rendered diagnostics on stderr")
	}
}

func TestRunCSVGrammar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a;b;c\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{"--grammar", "csv", path})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitOK, errb.String())
	}
}

func TestRunMultipleFilesReportsWorstOutcome(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clean := filepath.Join(dir, "clean.txt")
	broken := filepath.Join(dir, "broken.txt")
	if err := os.WriteFile(clean, []byte("a = b\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(broken, []byte("a = { b\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{clean, broken})
	if code != exitParseErr {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitParseErr, errb.String())
	}
	if !strings.Contains(errb.String(), broken) {
		t.Fatalf("stderr = %q, want it to mention %q", errb.String(), broken)
	}
}

func TestRunSemanticFlagReportsAdvisoryWarningWithoutFailingExitCode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "dupe.txt")
	if err := os.WriteFile(path, []byte("a = b\na = c\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{"--semantic", "--format", "json", path})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitOK, errb.String())
	}
	if !strings.Contains(out.String(), "duplicate key") {
		t.Fatalf("stdout = %q, want it to mention the duplicate key finding", out.String())
	}
}

func TestRunJSONFormatWritesToStdout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.txt")
	if err := os.WriteFile(path, []byte("a = { b\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(strings.NewReader(""), &out, &errb, []string{"--format", "json", path})
	if code != exitParseErr {
		t.Fatalf("exit code = %d, want %d", code, exitParseErr)
	}
	if out.Len() == 0 {
		t.Fatalf("expected JSON diagnostics on stdout")
	}
	if errb.Len() != 0 {
		t.Fatalf("expected no stderr output in json mode, got %q", errb.String())
	}
}
