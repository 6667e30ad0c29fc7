package search

import (
	"os"

	"github.com/harrison/search/internal/matcher"
	"github.com/harrison/search/internal/models"
	"github.com/harrison/search/internal/walker"
)

// rootHandler applies one search mode to every entry of a walk, filling result.
type rootHandler func(walk *walker.Walk, keyword string, result *models.RootResult)

// handlerFor resolves the handler for a mode once per request.
func (d *Dispatcher) handlerFor(mode models.SearchMode) (rootHandler, error) {
	switch mode {
	case models.ModeFileName:
		return searchFileNames, nil
	case models.ModeFolderName:
		return searchFolderNames, nil
	case models.ModeTextContent:
		return d.searchTextContent, nil
	default:
		return nil, &models.InvalidArgumentError{Field: "mode", Reason: "unknown search mode " + mode.String()}
	}
}

func searchFileNames(walk *walker.Walk, keyword string, result *models.RootResult) {
	for entry := range walk.Entries() {
		if entry.IsDir || !matcher.MatchesFileName(entry.Name, keyword) {
			continue
		}
		if entry.Type&os.ModeSymlink != 0 && linksToDir(entry.Path) {
			continue
		}
		result.Paths = append(result.Paths, entry.Path)
	}
}

func searchFolderNames(walk *walker.Walk, keyword string, result *models.RootResult) {
	for entry := range walk.Entries() {
		isDir := entry.IsDir
		// A symlink is reported when it resolves to a directory; it is not descended into
		if entry.Type&os.ModeSymlink != 0 && matcher.MatchesFolderName(entry.Name, keyword, true) {
			isDir = linksToDir(entry.Path)
		}
		if matcher.MatchesFolderName(entry.Name, keyword, isDir) {
			result.Paths = append(result.Paths, entry.Path)
		}
	}
}

// linksToDir reports whether the symlink at path resolves to a directory.
// Dangling links and links to files report false.
func linksToDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (d *Dispatcher) searchTextContent(walk *walker.Walk, keyword string, result *models.RootResult) {
	for entry := range walk.Entries() {
		if entry.IsDir {
			continue
		}
		// Devices, FIFOs and sockets are never opened; symlinks are resolved below
		if !entry.Type.IsRegular() && entry.Type&os.ModeSymlink == 0 {
			continue
		}

		locations := d.scanFile(walk, entry, keyword)
		if len(locations) > 0 {
			result.Files = append(result.Files, models.FileMatches{Path: entry.Path, Locations: locations})
		}
	}
}

// scanFile returns the matching lines of one file. Any failure is recorded on the walk
// and the file contributes nothing.
func (d *Dispatcher) scanFile(walk *walker.Walk, entry walker.Entry, keyword string) []models.MatchLocation {
	info, err := os.Stat(entry.Path)
	if err != nil {
		walk.Skip(entry.Path, err)
		return nil
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	if d.maxFileSize > 0 && info.Size() > d.maxFileSize {
		return nil
	}

	f, err := os.Open(entry.Path)
	if err != nil {
		walk.Skip(entry.Path, err)
		return nil
	}
	defer f.Close()

	locations, err := matcher.ScanText(f, keyword, d.textOpts)
	if err != nil {
		walk.Skip(entry.Path, err)
		return nil
	}
	return locations
}
