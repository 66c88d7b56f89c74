package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"pdftext/pkg/pdftest"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PDFTEXT_CONFIG", "PDFTEXT_BACKEND", "PDFTEXT_LOG_LEVEL", "PDFTEXT_VALIDATE", "PDFTEXT_STRICT_EXIT"} {
		t.Setenv(key, "")
	}
}

func TestRun_Usage(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if stdout.String() != "Usage: pdftext <pdf_file>\n" {
		t.Errorf("unexpected usage output %q", stdout.String())
	}
}

func TestRun_Extract(t *testing.T) {
	clearEnv(t)
	path := pdftest.WriteFile(t, "Hello", "World")

	expected := "PDF has 2 pages\n" +
		"\n" +
		strings.Repeat("=", 80) + "\n" +
		"\n" +
		"--- Page 1 ---\n" +
		"Hello\n" +
		"\n" +
		"--- Page 2 ---\n" +
		"World\n"

	for _, backend := range []string{"ledongthuc", "rsc"} {
		t.Run(backend, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run([]string{"-backend", backend, path}, &stdout, &stderr); code != 0 {
				t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
			}
			if stdout.String() != expected {
				t.Errorf("expected %q, got %q", expected, stdout.String())
			}
		})
	}
}

func TestRun_NoPages(t *testing.T) {
	clearEnv(t)
	path := pdftest.WriteFile(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	expected := "PDF has 0 pages\n\n" + strings.Repeat("=", 80) + "\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestRun_ExtractionFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")

	testCases := []struct {
		name         string
		args         []string
		strictEnv    string
		expectedCode int
	}{
		{"ExitsZero", []string{missing}, "", 0},
		{"StrictExitFlag", []string{"-strict-exit", missing}, "", 2},
		{"StrictExitEnv", []string{missing}, "true", 2},
		{"FlagOverridesEnv", []string{"-strict-exit=false", missing}, "true", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PDFTEXT_STRICT_EXIT", tc.strictEnv)

			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.expectedCode {
				t.Errorf("expected exit code %d, got %d", tc.expectedCode, code)
			}

			out := stdout.String()
			if !strings.HasPrefix(out, "Error reading PDF: ") {
				t.Errorf("expected error message, got %q", out)
			}
			if !strings.Contains(out, missing) {
				t.Errorf("expected message to name %s, got %q", missing, out)
			}
			if strings.Contains(out, "--- Page") {
				t.Errorf("expected no page headers, got %q", out)
			}
		})
	}
}

func TestRun_InvalidBackend(t *testing.T) {
	clearEnv(t)
	path := pdftest.WriteFile(t, "x")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-backend", "poppler", path}, &stdout, &stderr); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}
}

func TestRun_ArgumentErrorsNeverExitOne(t *testing.T) {
	path := pdftest.WriteFile(t, "x")

	testCases := []struct {
		name string
		args []string
	}{
		{"DashPrefixedPath", []string{"-report.pdf"}},
		{"FlagAfterPath", []string{path, "-strict-exit"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)

			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != 2 {
				t.Errorf("expected exit code 2, got %d", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("expected nothing on stdout, got %q", stdout.String())
			}
			if stderr.Len() == 0 {
				t.Error("expected a diagnostic on stderr")
			}
		})
	}
}

func TestRun_ExtraPositionalArgumentsIgnored(t *testing.T) {
	clearEnv(t)
	path := pdftest.WriteFile(t, "Hello")

	var stdout, stderr bytes.Buffer
	if code := run([]string{path, "other.pdf"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.HasSuffix(stdout.String(), "--- Page 1 ---\nHello\n") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestRun_ValidateWellFormed(t *testing.T) {
	clearEnv(t)
	path := pdftest.WriteFile(t, "one", "two", "three")

	expected := "PDF has 3 pages\n\n" + strings.Repeat("=", 80) + "\n" +
		"\n--- Page 1 ---\none\n" +
		"\n--- Page 2 ---\ntwo\n" +
		"\n--- Page 3 ---\nthree\n"

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-validate", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}
