package matcher

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/harrison/search/internal/models"
)

// binarySampleSize is the number of leading bytes inspected for NUL bytes, matching Git's heuristic.
const binarySampleSize = 8000

// DefaultMaxLineBytes bounds a single line; longer lines make the file unreadable.
const DefaultMaxLineBytes = 10 * 1024 * 1024

// UndecodableError is returned when content cannot be scanned as text.
type UndecodableError struct {
	Reason string
	Line   int
	Cause  error
}

func (e *UndecodableError) Error() string {
	msg := "content is not text: " + e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *UndecodableError) Unwrap() error { return e.Cause }

// TextOptions tunes ScanText.
type TextOptions struct {
	// MaxLineBytes caps the length of one line (0 = DefaultMaxLineBytes)
	MaxLineBytes int

	// SkipBinary rejects content with a NUL byte in its first 8000 bytes, even when
	// it is valid UTF-8
	SkipBinary bool
}

// ScanText returns one MatchLocation per line of r that contains keyword, ignoring case.
// Lines are split on \n, \r\n and \r. Content must be valid UTF-8; otherwise an
// *UndecodableError is returned and no locations are.
func ScanText(r io.Reader, keyword string, opts TextOptions) ([]models.MatchLocation, error) {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	br := bufio.NewReaderSize(r, 64*1024)
	if opts.SkipBinary {
		sample, err := br.Peek(binarySampleSize)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return nil, err
		}
		if bytes.IndexByte(sample, 0) >= 0 {
			return nil, &UndecodableError{Reason: "binary content"}
		}
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	scanner.Split(scanUniversalLines)

	lowerKeyword := strings.ToLower(keyword)
	var locations []models.MatchLocation
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			return nil, &UndecodableError{Reason: "invalid UTF-8", Line: lineNumber}
		}
		if column, ok := findLowered(strings.ToLower(string(line)), lowerKeyword); ok {
			locations = append(locations, models.MatchLocation{Line: lineNumber, Column: column})
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &UndecodableError{Reason: "line too long", Line: lineNumber + 1, Cause: err}
		}
		return nil, err
	}

	return locations, nil
}

// scanUniversalLines is a bufio.SplitFunc that accepts \n, \r\n and a lone \r as line endings.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
