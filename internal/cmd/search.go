package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/harrison/search/internal/config"
	"github.com/harrison/search/internal/display"
	"github.com/harrison/search/internal/logger"
	"github.com/harrison/search/internal/models"
	"github.com/harrison/search/internal/roots"
	"github.com/harrison/search/internal/search"
	"github.com/harrison/search/internal/walker"
	"github.com/spf13/cobra"
)

// resolveMode turns the mode flags into a SearchMode. Exactly one must be set.
func resolveMode(cmd *cobra.Command) (models.SearchMode, error) {
	var chosen []string
	if on, _ := cmd.Flags().GetBool("file"); on {
		chosen = append(chosen, models.FlagFileName)
	}
	if on, _ := cmd.Flags().GetBool("text"); on {
		chosen = append(chosen, models.FlagTextContent)
	}
	if on, _ := cmd.Flags().GetBool("folder"); on {
		chosen = append(chosen, models.FlagFolderName)
	}

	switch len(chosen) {
	case 0:
		return 0, &models.InvalidArgumentError{Field: "mode", Reason: "one of -f, -t, or -ft is required"}
	case 1:
		return models.ParseSearchMode(chosen[0])
	default:
		return 0, &models.InvalidArgumentError{
			Field:  "mode",
			Reason: fmt.Sprintf("only one of -f, -t, or -ft may be given, got %v", chosen),
		}
	}
}

// loadConfig reads the config file and applies the flags the user changed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var overrides config.FlagOverrides
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides.LogLevel = &v
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		overrides.LogDir = &v
	}
	if flags.Changed("max-concurrency") {
		v, _ := flags.GetInt("max-concurrency")
		overrides.MaxConcurrency = &v
	}
	if flags.Changed("timeout") {
		timeoutStr, _ := flags.GetString("timeout")
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, &models.InvalidArgumentError{
				Field:  "timeout",
				Reason: fmt.Sprintf("invalid duration %q", timeoutStr),
			}
		}
		overrides.Timeout = &timeout
	}
	if flags.Changed("exclude") {
		overrides.Excludes, _ = flags.GetStringArray("exclude")
	}
	if flags.Changed("skip-hidden") {
		v, _ := flags.GetBool("skip-hidden")
		overrides.SkipHidden = &v
	}
	if flags.Changed("skip-binary") {
		v, _ := flags.GetBool("skip-binary")
		overrides.SkipBinary = &v
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		overrides.MaxDepth = &v
	}
	if flags.Changed("hyperlinks") {
		v, _ := flags.GetString("hyperlinks")
		overrides.Hyperlinks = &v
	}

	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, &models.InvalidArgumentError{Field: "configuration", Reason: err.Error()}
	}
	return cfg, nil
}

// runSearch implements the search command logic
func runSearch(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var path string
	if len(args) == 2 {
		path = args[1]
	}
	req := models.SearchRequest{
		Mode:    mode,
		Keyword: args[0],
		Roots:   roots.Resolve(path),
	}
	if err := req.Validate(); err != nil {
		return err
	}

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log := logger.NewMultiLogger(consoleLog)
	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		log = logger.NewMultiLogger(consoleLog, fileLog)
		log.LogDebug(fmt.Sprintf("Writing log to %s (run %s)", fileLog.Path(), fileLog.RunID()))
	}

	w := walker.New(
		walker.WithExcludes(cfg.Excludes),
		walker.WithSkipHidden(cfg.SkipHidden),
		walker.WithMaxDepth(cfg.MaxDepth),
		walker.WithSkipHandler(log.LogSkip),
	)
	dispatcher := search.NewDispatcher(w, log,
		search.WithMaxConcurrency(cfg.MaxConcurrency),
		search.WithMaxFileSize(cfg.MaxFileSize),
		search.WithMaxLineBytes(cfg.MaxLineBytes),
		search.WithSkipBinary(cfg.SkipBinary),
	)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if cfg.Timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, cfg.Timeout)
		defer timeoutCancel()
	}

	result, searchErr := dispatcher.Dispatch(ctx, req)
	if result == nil {
		return searchErr
	}

	out := cmd.OutOrStdout()
	outFile, _ := out.(*os.File)
	presenter := display.Presenter{
		Out:        out,
		Hyperlinks: display.ShouldHyperlink(cfg.Hyperlinks, outFile),
	}
	if err := presenter.Render(result); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if searchErr != nil {
		if errors.Is(searchErr, context.Canceled) || errors.Is(searchErr, context.DeadlineExceeded) {
			display.WarnInterrupted(searchErr).Display(cmd.ErrOrStderr())
		}
		return fmt.Errorf("search interrupted: %w", searchErr)
	}
	return nil
}
