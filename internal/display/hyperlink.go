package display

import (
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	osc8Open  = "\x1b]8;;"
	osc8Close = "\a"
)

// Hyperlink wraps path in an OSC-8 sequence pointing at its file:// URI.
// The visible text is the path itself.
func Hyperlink(path string) string {
	return hyperlink(path, runtime.GOOS)
}

func hyperlink(path, goos string) string {
	return osc8Open + FileURI(path, goos) + osc8Close + path + osc8Open + osc8Close
}

// FileURI builds the file:// URI for path. Windows paths use forward slashes and gain
// a leading slash before the drive letter.
func FileURI(path, goos string) string {
	if goos == "windows" {
		path = strings.ReplaceAll(path, `\`, "/")
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
	}
	return "file://" + path
}

// ShouldHyperlink resolves a hyperlink mode (auto, always, never) for the given output.
// In auto mode links are only emitted when f is a terminal.
func ShouldHyperlink(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
