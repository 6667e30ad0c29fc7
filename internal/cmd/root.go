package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/harrison/search/internal/models"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Process exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// NewRootCommand creates and returns the root cobra command for search
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search (-f | -t | -ft) <keyword> [path]",
		Short: "Find files, folders, or text across the filesystem",
		Long: `Search walks every directory below a starting path and reports what matches.

Exactly one mode is required:
  -f     files whose name equals the keyword (glob characters are honored)
  -t     lines containing the keyword, case-insensitive
  -ft    folders whose name equals the keyword

Without a path, search starts at every drive on Windows and at / elsewhere.
Results print as clickable links on terminals that support them.

Configuration is loaded from $SEARCH_HOME/config.yaml (default ~/.search/config.yaml)
if present. CLI flags override configuration file settings.

Exit status:
  0    search finished (including when nothing was found)
  1    search failed or hit --timeout
  2    invalid arguments; the error and usage are printed and nothing is searched
  130  interrupted

Examples:
  search -f go.mod ~/src
  search -t "connection refused" /var/log
  search -ft node_modules . --max-depth 4
  search -f "*.pem" --exclude .git/ --skip-hidden`,
		Version: Version,
		Args:    validateArgs,
		RunE:    runSearch,
		// Errors and usage are printed by Execute
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("file", "f", false, "Match files by name")
	cmd.Flags().BoolP("text", "t", false, "Match text inside files")
	cmd.Flags().Bool("folder", false, "Match folders by name (same as -ft)")

	cmd.Flags().String("config", "", "Path to config file (default: $SEARCH_HOME/config.yaml)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for the search log file")
	cmd.Flags().StringArray("exclude", nil, "Gitignore-style pattern to skip (repeatable)")
	cmd.Flags().Bool("skip-hidden", false, "Skip dot-files and dot-directories")
	cmd.Flags().Bool("skip-binary", false, "Skip files with NUL bytes near the start in text mode")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth below each root (0 = unlimited)")
	cmd.Flags().Int("max-concurrency", 0, "Maximum roots searched at once (0 = all)")
	cmd.Flags().String("timeout", "", "Maximum search time (e.g., 30s, 5m)")
	cmd.Flags().String("hyperlinks", "", "Clickable paths: auto, always, never")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &models.InvalidArgumentError{Field: "flag", Reason: err.Error()}
	})

	return cmd
}

// validateArgs requires a keyword and allows at most one path.
func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &models.InvalidArgumentError{Field: "keyword", Reason: "a keyword is required"}
	case len(args) > 2:
		return &models.InvalidArgumentError{
			Field:  "arguments",
			Reason: fmt.Sprintf("expected <keyword> [path], got %d arguments", len(args)),
		}
	}
	return nil
}

// normalizeArgs rewrites the combined -ft mode into --folder so the flag parser does
// not split it into -f and -t. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg == models.FlagFolderName {
			arg = "--folder"
		}
		out = append(out, arg)
	}
	return out
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(normalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	code := ExitCode(err)

	switch code {
	case ExitOK, ExitInterrupted:
	case ExitUsage:
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, root.UsageString())
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return code
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var argErr *models.InvalidArgumentError
	if errors.As(err, &argErr) {
		return ExitUsage
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	return ExitFailure
}
