package matcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/harrison/search/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesFileName(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		keyword string
		want    bool
	}{
		{name: "exact name", entry: "target.txt", keyword: "target.txt", want: true},
		{name: "no substring leakage", entry: "foobar", keyword: "foo", want: false},
		{name: "keyword plus suffix", entry: "target.txtx", keyword: "target.txt", want: false},
		{name: "case sensitive", entry: "Target.txt", keyword: "target.txt", want: false},
		{name: "glob keyword", entry: "report.csv", keyword: "*.csv", want: true},
		{name: "glob keyword miss", entry: "report.csv", keyword: "*.txt", want: false},
		{name: "question mark", entry: "a1.log", keyword: "a?.log", want: true},
		{name: "invalid pattern falls back to equality", entry: "[abc", keyword: "[abc", want: true},
		{name: "invalid pattern miss", entry: "abc", keyword: "[abc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesFileName(tt.entry, tt.keyword))
		})
	}
}

func TestMatchesFolderName(t *testing.T) {
	assert.True(t, MatchesFolderName("docs", "docs", true))
	assert.False(t, MatchesFolderName("docs", "docs", false))
	assert.False(t, MatchesFolderName("docs2", "docs", true))
}

func TestFindTextMatch(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		keyword    string
		wantColumn int
		wantOK     bool
	}{
		{name: "case insensitive", line: "Error occurred", keyword: "ERROR", wantColumn: 1, wantOK: true},
		{name: "hello world", line: "Hello World", keyword: "world", wantColumn: 7, wantOK: true},
		{name: "first occurrence only", line: "ab ab ab", keyword: "ab", wantColumn: 1, wantOK: true},
		{name: "later first occurrence", line: "xx ab ab", keyword: "AB", wantColumn: 4, wantOK: true},
		{name: "no match", line: "nothing here", keyword: "error", wantOK: false},
		{name: "column counts characters", line: "héllo wörld", keyword: "WÖRLD", wantColumn: 7, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := FindTextMatch(tt.line, tt.keyword)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantColumn, column)
			}
		})
	}
}

func TestScanText(t *testing.T) {
	content := "first line\nsecond\nHello World\nworld again, World\n"

	locs, err := ScanText(strings.NewReader(content), "world", TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, []models.MatchLocation{
		{Line: 3, Column: 7},
		{Line: 4, Column: 1},
	}, locs)
}

func TestScanText_LineEndings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []models.MatchLocation
	}{
		{name: "crlf", content: "a\r\nb key\r\nc", want: []models.MatchLocation{{Line: 2, Column: 3}}},
		{name: "lone cr", content: "a\rkey\rc", want: []models.MatchLocation{{Line: 2, Column: 1}}},
		{name: "no trailing newline", content: "a\nthe key", want: []models.MatchLocation{{Line: 2, Column: 5}}},
		{name: "trailing cr at eof", content: "key\r", want: []models.MatchLocation{{Line: 1, Column: 1}}},
		{name: "empty", content: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locs, err := ScanText(strings.NewReader(tt.content), "KEY", TextOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, locs)
		})
	}
}

func TestScanText_Undecodable(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    TextOptions
		reason  string
	}{
		{name: "binary when skipped", content: "key\x00\x01\x02", opts: TextOptions{SkipBinary: true}, reason: "binary content"},
		{name: "invalid utf8", content: "ok key\n\xff\xfe key\n", reason: "invalid UTF-8"},
		{name: "line too long", content: strings.Repeat("k", 64) + "\n", opts: TextOptions{MaxLineBytes: 16}, reason: "line too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locs, err := ScanText(strings.NewReader(tt.content), "key", tt.opts)
			assert.Nil(t, locs)
			var undecodable *UndecodableError
			require.True(t, errors.As(err, &undecodable), "expected UndecodableError, got %v", err)
			assert.Equal(t, tt.reason, undecodable.Reason)
		})
	}
}

func TestScanText_NulBytesAreText(t *testing.T) {
	content := "header\x00field\nneedle here\n"

	locs, err := ScanText(strings.NewReader(content), "needle", TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, []models.MatchLocation{{Line: 2, Column: 1}}, locs)

	locs, err = ScanText(strings.NewReader("\x00\x00needle\n"), "NEEDLE", TextOptions{})
	require.NoError(t, err)
	assert.Equal(t, []models.MatchLocation{{Line: 1, Column: 3}}, locs)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestScanText_ReadError(t *testing.T) {
	readErr := errors.New("input/output error")
	_, err := ScanText(failingReader{err: readErr}, "key", TextOptions{})
	assert.ErrorIs(t, err, readErr)
}
