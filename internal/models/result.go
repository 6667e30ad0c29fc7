package models

import (
	"slices"
	"sync"
)

// MatchLocation is one matching line inside a file (text mode only).
type MatchLocation struct {
	Line   int // 1-based line number
	Column int // 1-based column of the first occurrence on the line
}

// FileMatches holds the matching lines of a single file, in ascending line order.
type FileMatches struct {
	Path      string
	Locations []MatchLocation
}

// RootResult is what one root's search task produces.
type RootResult struct {
	Root    string        // Root path as requested
	Mode    SearchMode    // Mode the root was searched with
	Paths   []string      // File/folder mode: absolute paths in traversal order
	Files   []FileMatches // Text mode: matching files in traversal order
	Skipped int           // Entries that could not be read and were skipped
	Err     error         // Non-nil when the root could not be searched at all
}

// IsEmpty reports whether the root produced no matches.
func (r RootResult) IsEmpty() bool {
	return len(r.Paths) == 0 && len(r.Files) == 0
}

// AggregatedResult is the union of every RootResult of one search.
// Merge is safe for concurrent use. Insertion order is kept so rendering is stable
// for a given arrival order of roots.
type AggregatedResult struct {
	mode SearchMode

	mu          sync.Mutex
	paths       []string
	seenPaths   map[string]struct{}
	files       []FileMatches
	fileIndex   map[string]int
	unavailable []RootError
	skipped     int
	roots       int
}

// NewAggregatedResult creates an empty aggregate for the given mode.
func NewAggregatedResult(mode SearchMode) *AggregatedResult {
	return &AggregatedResult{
		mode:      mode,
		seenPaths: make(map[string]struct{}),
		fileIndex: make(map[string]int),
	}
}

// Mode returns the mode the aggregate was created for.
func (a *AggregatedResult) Mode() SearchMode {
	return a.mode
}

// Merge folds one root's result into the aggregate.
// Paths are set-unioned. For text mode a file seen before gets the union of its locations.
func (a *AggregatedResult) Merge(partial RootResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.roots++
	a.skipped += partial.Skipped
	if partial.Err != nil {
		a.unavailable = append(a.unavailable, RootError{Root: partial.Root, Err: partial.Err})
	}

	for _, p := range partial.Paths {
		if _, ok := a.seenPaths[p]; ok {
			continue
		}
		a.seenPaths[p] = struct{}{}
		a.paths = append(a.paths, p)
	}

	for _, fm := range partial.Files {
		if len(fm.Locations) == 0 {
			continue
		}
		idx, ok := a.fileIndex[fm.Path]
		if !ok {
			a.fileIndex[fm.Path] = len(a.files)
			a.files = append(a.files, FileMatches{
				Path:      fm.Path,
				Locations: slices.Clone(fm.Locations),
			})
			continue
		}
		a.files[idx].Locations = mergeLocations(a.files[idx].Locations, fm.Locations)
	}
}

// mergeLocations returns the ascending, duplicate-free union of two location lists.
func mergeLocations(a, b []MatchLocation) []MatchLocation {
	merged := make([]MatchLocation, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.SortFunc(merged, func(x, y MatchLocation) int {
		if x.Line != y.Line {
			return x.Line - y.Line
		}
		return x.Column - y.Column
	})
	return slices.Compact(merged)
}

// Paths returns a copy of the matched paths (file/folder mode).
func (a *AggregatedResult) Paths() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.paths)
}

// Files returns a copy of the matched files (text mode).
func (a *AggregatedResult) Files() []FileMatches {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]FileMatches, len(a.files))
	for i, fm := range a.files {
		out[i] = FileMatches{Path: fm.Path, Locations: slices.Clone(fm.Locations)}
	}
	return out
}

// Unavailable returns the roots that could not be searched.
func (a *AggregatedResult) Unavailable() []RootError {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.unavailable)
}

// Skipped returns the total number of entries skipped across roots.
func (a *AggregatedResult) Skipped() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.skipped
}

// RootsMerged returns how many root results have been merged so far.
func (a *AggregatedResult) RootsMerged() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.roots
}

// Len returns the number of matched paths or files.
func (a *AggregatedResult) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.paths) + len(a.files)
}

// IsEmpty reports whether no root produced a match.
func (a *AggregatedResult) IsEmpty() bool {
	return a.Len() == 0
}
