// Package walker enumerates the filesystem entries below a search root.
//
// A walk is best-effort: entries that cannot be read are reported to a skip handler,
// counted, and passed over. A single bad entry never aborts the walk.
//
// # Usage
//
//	w := walker.New(walker.WithExcludes([]string{"node_modules/", "*.tmp"}))
//	walk, err := w.Walk(ctx, "/home/user")
//	if err != nil {
//	    // root missing or not a directory
//	}
//	for entry := range walk.Entries() {
//	    fmt.Println(entry.Path)
//	}
//	fmt.Println("skipped:", walk.Skipped())
package walker

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/search/internal/models"
)

// ErrNotDirectory is the cause reported when a root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Entry is one filesystem object found during a walk.
type Entry struct {
	Path  string      // Absolute path
	Name  string      // Base name
	IsDir bool        // True for directories
	Type  fs.FileMode // Type bits from the directory listing
}

// SkipHandler receives every entry a walk could not read.
// It may be called from several walks at once.
type SkipHandler func(path string, err error)

// Walker holds walk settings shared by all roots of a search. It keeps no per-walk state.
type Walker struct {
	excludes   *excludeMatcher
	skipHidden bool
	maxDepth   int
	onSkip     SkipHandler
}

// Option configures a Walker.
type Option func(*Walker)

// WithExcludes skips entries matching any of the given gitignore-style patterns,
// evaluated relative to each root.
func WithExcludes(patterns []string) Option {
	return func(w *Walker) {
		w.excludes = newExcludeMatcher(patterns)
	}
}

// WithSkipHidden skips entries whose name starts with a dot.
func WithSkipHidden(skip bool) Option {
	return func(w *Walker) {
		w.skipHidden = skip
	}
}

// WithMaxDepth limits recursion (0 = unlimited, 1 = direct children of the root only).
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		w.maxDepth = depth
	}
}

// WithSkipHandler sets the handler notified of unreadable entries.
func WithSkipHandler(h SkipHandler) Option {
	return func(w *Walker) {
		w.onSkip = h
	}
}

// New creates a Walker.
func New(opts ...Option) *Walker {
	w := &Walker{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk prepares a walk of root. It returns a *models.RootUnavailableError when the root
// does not exist, cannot be resolved, is not a directory, or cannot be listed.
func (w *Walker) Walk(ctx context.Context, root string) (*Walk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &models.RootUnavailableError{Root: root, Cause: err}
	}

	linfo, err := os.Lstat(abs)
	if err != nil {
		return nil, &models.RootUnavailableError{Root: root, Cause: err}
	}
	// filepath.WalkDir does not descend into a symlinked root
	if linfo.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, &models.RootUnavailableError{Root: root, Cause: err}
		}
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &models.RootUnavailableError{Root: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &models.RootUnavailableError{Root: root, Cause: ErrNotDirectory}
	}
	if err := checkListable(abs); err != nil {
		return nil, &models.RootUnavailableError{Root: root, Cause: err}
	}

	return &Walk{ctx: ctx, walker: w, root: abs}, nil
}

// checkListable reads one entry of dir so a root without read or search permission
// fails up front instead of inside the traversal.
func checkListable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Walk is a single prepared traversal of one root.
// It is owned by one goroutine.
type Walk struct {
	ctx     context.Context
	walker  *Walker
	root    string
	skipped int
}

// Root returns the absolute root path being walked.
func (wk *Walk) Root() string {
	return wk.root
}

// Skipped returns how many entries have been skipped so far.
func (wk *Walk) Skipped() int {
	return wk.skipped
}

// Skip records an entry that could not be processed. Callers use it for files
// that fail while being read so the failure stays inside the walk.
func (wk *Walk) Skip(path string, err error) {
	wk.skipped++
	if wk.walker.onSkip != nil {
		wk.walker.onSkip(path, err)
	}
}

// Entries returns a lazy, depth-first, lexically ordered sequence of the entries
// under the root, excluding the root itself. Each range over the sequence starts a
// fresh traversal. The sequence ends early when the walk's context is cancelled.
func (wk *Walk) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(wk.root, func(path string, d fs.DirEntry, err error) error {
			if wk.ctx.Err() != nil {
				return filepath.SkipAll
			}

			if err != nil {
				wk.Skip(path, err)
				if d != nil && d.IsDir() && path != wk.root {
					return filepath.SkipDir
				}
				return nil
			}

			if path == wk.root {
				return nil
			}

			rel, relErr := filepath.Rel(wk.root, path)
			if relErr != nil {
				wk.Skip(path, relErr)
				return nil
			}

			if wk.excluded(rel, d) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			entry := Entry{
				Path:  path,
				Name:  d.Name(),
				IsDir: d.IsDir(),
				Type:  d.Type(),
			}
			if !yield(entry) {
				return filepath.SkipAll
			}

			if d.IsDir() && wk.walker.maxDepth > 0 && depth(rel) >= wk.walker.maxDepth {
				return filepath.SkipDir
			}
			return nil
		})
	}
}

// excluded applies the hidden, depth and pattern filters to one entry.
func (wk *Walk) excluded(rel string, d fs.DirEntry) bool {
	w := wk.walker
	if w.skipHidden && strings.HasPrefix(d.Name(), ".") {
		return true
	}
	if w.maxDepth > 0 && depth(rel) > w.maxDepth {
		return true
	}
	return w.excludes.match(rel, d.IsDir())
}

// depth returns the number of path segments in a root-relative path.
func depth(rel string) int {
	return strings.Count(rel, string(filepath.Separator)) + 1
}
