// Package matcher holds the predicates a search applies to walked entries and lines of text.
//
// Name matching is whole-name and case-sensitive: a keyword is treated as a literal name
// pattern tested against one path segment (the base name). Text matching is a
// case-insensitive substring search that reports the first occurrence per line only.
package matcher

import (
	"path"
	"strings"
	"unicode/utf8"
)

// MatchesFileName reports whether a file's base name matches keyword.
// A keyword containing glob metacharacters (*, ?, [) is matched as a pattern; an invalid
// pattern falls back to literal equality. "foo" never matches "foobar".
func MatchesFileName(name, keyword string) bool {
	if name == keyword {
		return true
	}
	if !strings.ContainsAny(keyword, `*?[\`) {
		return false
	}
	ok, err := path.Match(keyword, name)
	if err != nil {
		return false
	}
	return ok
}

// MatchesFolderName is MatchesFileName restricted to directory entries.
func MatchesFolderName(name, keyword string, isDir bool) bool {
	return isDir && MatchesFileName(name, keyword)
}

// FindTextMatch reports whether line contains keyword, ignoring case.
// When it does, column is the 1-based character offset of the first occurrence
// within the lower-cased line.
func FindTextMatch(line, keyword string) (column int, ok bool) {
	return findLowered(strings.ToLower(line), strings.ToLower(keyword))
}

// findLowered is FindTextMatch for an already lower-cased keyword.
func findLowered(lowerLine, lowerKeyword string) (int, bool) {
	idx := strings.Index(lowerLine, lowerKeyword)
	if idx < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(lowerLine[:idx]) + 1, true
}
