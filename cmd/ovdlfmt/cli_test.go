package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunNoArgsExitsLoadFail(t *testing.T) {
	t.Parallel()

	var out, errb bytes.Buffer
	code := run(&out, &errb, nil)
	if code != exitLoadFail {
		t.Fatalf("exit code = %d, want %d", code, exitLoadFail)
	}
}

func TestRunReconstructsSimpleAssignment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "valid.txt")
	if err := os.WriteFile(path, []byte("a = b\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out, errb bytes.Buffer
	code := run(&out, &errb, []string{path})
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr=%q", code, exitOK, errb.String())
	}
	if out.String() != "a = b\n" {
		t.Fatalf("stdout = %q, want %q", out.String(), "a = b\n")
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
	code := run(&out, &errb, []string{path})
	if code != exitParseErr {
		t.Fatalf("exit code = %d, want %d", code, exitParseErr)
	}
	if errb.Len() == 0 {
		t.Fatalf("expected an error message on stderr")
	}
}
