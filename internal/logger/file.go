package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/search/internal/filelock"
	"github.com/harrison/search/internal/models"
)

// LogFileName is the shared run log inside the log directory.
const LogFileName = "search.log"

// FileLogger appends search events to <logDir>/search.log.
// Every line carries the run ID so concurrent invocations can be told apart, and each
// append holds a file lock so their lines never interleave.
type FileLogger struct {
	path     string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing into logDir and records the run header.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fl := &FileLogger{
		path:     filepath.Join(logDir, LogFileName),
		runID:    uuid.New().String(),
		logLevel: normalizeLogLevel(logLevel),
	}

	header := fmt.Sprintf("=== Search Run %s ===\nStarted at: %s\n", fl.runID, time.Now().Format(time.RFC3339))
	if err := fl.write(header); err != nil {
		return nil, err
	}
	return fl, nil
}

// Path returns the log file path.
func (fl *FileLogger) Path() string {
	return fl.path
}

// RunID returns the identifier stamped on every line of this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

// LogSearchStart logs the resolved request at INFO level.
func (fl *FileLogger) LogSearchStart(req models.SearchRequest) {
	fl.LogInfo(formatSearchStart(req))
	for _, root := range req.Roots {
		fl.LogDebug("Root: " + root)
	}
}

// LogSkip logs an entry the walk could not read, at DEBUG level.
func (fl *FileLogger) LogSkip(path string, err error) {
	fl.LogDebug(fmt.Sprintf("Skipped %s: %v", path, err))
}

// LogRootComplete logs one root's outcome. Unavailable roots are warnings.
func (fl *FileLogger) LogRootComplete(result models.RootResult, duration time.Duration) {
	if result.Err != nil {
		fl.LogWarn(formatRootUnavailable(result))
		return
	}
	fl.LogInfo(formatRootComplete(result, duration))
}

// LogSummary logs the aggregate outcome at INFO level.
func (fl *FileLogger) LogSummary(result *models.AggregatedResult, duration time.Duration) {
	fl.LogInfo(formatSummary(result, duration))
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !allows(fl.logLevel, level) {
		return
	}
	line := fmt.Sprintf("[%s] [%s] [%s] %s\n", time.Now().Format(time.RFC3339), fl.runID[:8], level, message)
	// Logging must never fail a search
	_ = fl.write(line)
}

func (fl *FileLogger) write(s string) error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return filelock.AppendLocked(fl.path, []byte(s))
}
