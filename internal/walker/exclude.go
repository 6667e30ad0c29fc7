package walker

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// excludeMatcher matches root-relative paths against gitignore-style patterns.
// A nil matcher excludes nothing.
type excludeMatcher struct {
	matcher gitignore.Matcher
}

// newExcludeMatcher parses patterns, ignoring blanks and comments.
// It returns nil when no usable pattern remains.
func newExcludeMatcher(patterns []string) *excludeMatcher {
	var parsed []gitignore.Pattern
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		parsed = append(parsed, gitignore.ParsePattern(p, nil))
	}
	if len(parsed) == 0 {
		return nil
	}
	return &excludeMatcher{matcher: gitignore.NewMatcher(parsed)}
}

func (m *excludeMatcher) match(rel string, isDir bool) bool {
	if m == nil {
		return false
	}
	return m.matcher.Match(splitPath(rel), isDir)
}

// splitPath splits a path into segments for gitignore matching.
func splitPath(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}
