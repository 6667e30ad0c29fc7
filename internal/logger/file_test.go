package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harrison/search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, fl *FileLogger) string {
	t.Helper()
	data, err := os.ReadFile(fl.Path())
	require.NoError(t, err)
	return string(data)
}

func TestNewFileLogger_CreatesDirectoryAndHeader(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(logDir, LogFileName), fl.Path())
	assert.Len(t, fl.RunID(), 36)

	content := readLog(t, fl)
	assert.Contains(t, content, "=== Search Run "+fl.RunID()+" ===")
	assert.Contains(t, content, "Started at: ")
}

func TestFileLogger_RunsShareOneFile(t *testing.T) {
	logDir := t.TempDir()

	first, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)
	first.LogInfo("from first run")

	second, err := NewFileLogger(logDir, "info")
	require.NoError(t, err)
	second.LogInfo("from second run")

	assert.NotEqual(t, first.RunID(), second.RunID())

	content := readLog(t, second)
	assert.Contains(t, content, "["+first.RunID()[:8]+"] [INFO] from first run")
	assert.Contains(t, content, "["+second.RunID()[:8]+"] [INFO] from second run")
	assert.Equal(t, 2, strings.Count(content, "=== Search Run "))
}

func TestFileLogger_LevelFiltering(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "warn")
	require.NoError(t, err)

	fl.LogDebug("debug message")
	fl.LogInfo("info message")
	fl.LogWarn("warn message")
	fl.LogError("error message")

	content := readLog(t, fl)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "[WARN] warn message")
	assert.Contains(t, content, "[ERROR] error message")
}

func TestFileLogger_SearchEvents(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "debug")
	require.NoError(t, err)

	fl.LogSearchStart(models.SearchRequest{Mode: models.ModeFolderName, Keyword: "docs", Roots: []string{"/srv"}})
	fl.LogRootComplete(models.RootResult{Root: "/srv", Paths: []string{"/srv/docs", "/srv/a/docs"}}, 2*time.Second)
	fl.LogRootComplete(models.RootResult{Root: "/gone", Err: errors.New("gone")}, 0)
	fl.LogSkip("/srv/locked", errors.New("permission denied"))

	content := readLog(t, fl)
	assert.Contains(t, content, `[INFO] Searching 1 root for folder "docs"`)
	assert.Contains(t, content, "[DEBUG] Root: /srv")
	assert.Contains(t, content, "[INFO] Root /srv complete: 2 matches, 0 skipped in 2.0s")
	assert.Contains(t, content, "[WARN] Root /gone skipped: gone")
	assert.Contains(t, content, "[DEBUG] Skipped /srv/locked: permission denied")
}

func TestMultiLogger_FansOut(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileLogger(filepath.Join(dir, "a"), "info")
	require.NoError(t, err)
	b, err := NewFileLogger(filepath.Join(dir, "b"), "info")
	require.NoError(t, err)

	m := NewMultiLogger(a, nil, b)
	m.LogWarn("shared warning")

	assert.Contains(t, readLog(t, a), "shared warning")
	assert.Contains(t, readLog(t, b), "shared warning")
}
