package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/harrison/search/internal/models"
)

// executeSearch runs the CLI with an isolated config home and captures both streams.
func executeSearch(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("SEARCH_HOME", t.TempDir())

	var outBuf, errBuf bytes.Buffer
	code = Execute(args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	if !strings.HasPrefix(cmd.Use, "search") {
		t.Errorf("Expected Use to start with 'search', got %q", cmd.Use)
	}

	for _, name := range []string{"file", "text", "folder", "config", "log-level", "log-dir",
		"exclude", "skip-hidden", "skip-binary", "max-depth", "max-concurrency", "timeout", "hyperlinks"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
	if cmd.Flags().ShorthandLookup("f") == nil || cmd.Flags().ShorthandLookup("t") == nil {
		t.Error("expected -f and -t shorthands")
	}
}

func TestHelpFlag(t *testing.T) {
	stdout, _, code := executeSearch(t, "--help")

	if code != ExitOK {
		t.Errorf("exit code = %d, want %d", code, ExitOK)
	}
	for _, want := range []string{"-ft", "keyword", "--exclude", "--skip-binary", "Exit status", "2    invalid arguments"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help should mention %q, got: %s", want, stdout)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, code := executeSearch(t, "--version")

	if code != ExitOK {
		t.Errorf("exit code = %d, want %d", code, ExitOK)
	}
	if !strings.Contains(stdout, Version) {
		t.Errorf("version output should contain %q, got: %s", Version, stdout)
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "folder mode", args: []string{"-ft", "docs", "/srv"}, want: []string{"--folder", "docs", "/srv"}},
		{name: "other flags untouched", args: []string{"-f", "a.txt"}, want: []string{"-f", "a.txt"}},
		{name: "after terminator", args: []string{"-t", "--", "-ft"}, want: []string{"-t", "--", "-ft"}},
		{name: "empty", args: []string{}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.args)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("normalizeArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "invalid argument", err: &models.InvalidArgumentError{Field: "mode", Reason: "x"}, want: ExitUsage},
		{name: "wrapped invalid argument", err: fmt.Errorf("wrap: %w", &models.InvalidArgumentError{Field: "k"}), want: ExitUsage},
		{name: "interrupted", err: fmt.Errorf("search interrupted: %w", context.Canceled), want: ExitInterrupted},
		{name: "timed out", err: fmt.Errorf("search interrupted: %w", context.DeadlineExceeded), want: ExitFailure},
		{name: "other", err: errors.New("disk on fire"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
