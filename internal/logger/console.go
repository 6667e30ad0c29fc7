package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/search/internal/models"
)

// ConsoleLogger logs search progress to a writer (normally stderr) with timestamps.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
	progress    *ProgressBar
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// fatih/color already honors NO_COLOR and non-TTY output
		return !color.NoColor
	}
	return false
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// LogSearchStart logs the resolved request at INFO level and resets root progress.
func (cl *ConsoleLogger) LogSearchStart(req models.SearchRequest) {
	cl.mutex.Lock()
	cl.progress = NewProgressBar(len(req.Roots), 10, cl.colorOutput)
	cl.mutex.Unlock()

	cl.LogInfo(formatSearchStart(req))
}

// LogSkip logs an entry the walk could not read, at DEBUG level.
func (cl *ConsoleLogger) LogSkip(path string, err error) {
	cl.LogDebug(fmt.Sprintf("Skipped %s: %v", path, err))
}

// LogRootComplete logs one root's outcome. Unavailable roots are warnings.
// Searches over several roots also log a progress bar at INFO level.
func (cl *ConsoleLogger) LogRootComplete(result models.RootResult, duration time.Duration) {
	if result.Err != nil {
		cl.LogWarn(formatRootUnavailable(result))
	} else {
		cl.LogDebug(formatRootComplete(result, duration))
	}

	cl.mutex.Lock()
	pb := cl.progress
	cl.mutex.Unlock()
	if pb != nil && pb.Total() > 1 {
		cl.LogInfo(fmt.Sprintf("Progress: %s roots", pb.Advance()))
	}
}

// LogSummary logs the aggregate outcome at INFO level.
func (cl *ConsoleLogger) LogSummary(result *models.AggregatedResult, duration time.Duration) {
	cl.LogInfo(formatSummary(result, duration))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !allows(cl.logLevel, level) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// colorLevel wraps a level name in its ANSI color.
func colorLevel(level string) string {
	switch strings.ToUpper(level) {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

func formatSearchStart(req models.SearchRequest) string {
	return fmt.Sprintf("Searching %d %s for %s %q", len(req.Roots), plural(len(req.Roots), "root", "roots"), req.Mode, req.Keyword)
}

func formatRootUnavailable(result models.RootResult) string {
	return fmt.Sprintf("Root %s skipped: %v", result.Root, result.Err)
}

func formatRootComplete(result models.RootResult, duration time.Duration) string {
	matches := len(result.Paths) + len(result.Files)
	return fmt.Sprintf("Root %s complete: %d %s, %d skipped in %.1fs",
		result.Root, matches, plural(matches, "match", "matches"), result.Skipped, duration.Seconds())
}

func formatSummary(result *models.AggregatedResult, duration time.Duration) string {
	matches := result.Len()
	return fmt.Sprintf("Search complete: %d %s across %d %s in %.1fs (%d skipped, %d unavailable)",
		matches, plural(matches, "match", "matches"),
		result.RootsMerged(), plural(result.RootsMerged(), "root", "roots"),
		duration.Seconds(), result.Skipped(), len(result.Unavailable()))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
