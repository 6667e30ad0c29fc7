// Package roots decides which directories a search starts from.
package roots

import (
	"os"
	"runtime"
)

// Default returns the roots searched when no path is given: every existing drive
// letter on Windows, the filesystem root elsewhere.
func Default() []string {
	return defaultFor(runtime.GOOS, dirExists)
}

// Resolve returns the explicit path when one is given and the defaults otherwise.
func Resolve(path string) []string {
	if path != "" {
		return []string{path}
	}
	return Default()
}

func defaultFor(goos string, exists func(string) bool) []string {
	if goos != "windows" {
		return []string{"/"}
	}

	var drives []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		drive := string(letter) + ":/"
		if exists(drive) {
			drives = append(drives, drive)
		}
	}
	return drives
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
