package models

import "fmt"

// SearchMode selects which predicate a search applies to walked entries.
type SearchMode int

// Search modes
const (
	ModeFileName    SearchMode = iota // -f: match files by base name
	ModeFolderName                    // -ft: match folders by base name
	ModeTextContent                   // -t: match lines inside files
)

// Mode flags as accepted on the command line
const (
	FlagFileName    = "-f"
	FlagFolderName  = "-ft"
	FlagTextContent = "-t"
)

// ParseSearchMode maps a command-line mode flag to its SearchMode.
func ParseSearchMode(flag string) (SearchMode, error) {
	switch flag {
	case FlagFileName:
		return ModeFileName, nil
	case FlagFolderName:
		return ModeFolderName, nil
	case FlagTextContent:
		return ModeTextContent, nil
	default:
		return 0, &InvalidArgumentError{
			Field:  "mode",
			Reason: fmt.Sprintf("unrecognized option %q, use -f, -t, or -ft", flag),
		}
	}
}

// String returns the short name of the mode.
func (m SearchMode) String() string {
	switch m {
	case ModeFileName:
		return "file"
	case ModeFolderName:
		return "folder"
	case ModeTextContent:
		return "text"
	default:
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m SearchMode) Valid() bool {
	return m >= ModeFileName && m <= ModeTextContent
}

// IsNameMode reports whether the mode produces a flat path set.
func (m SearchMode) IsNameMode() bool {
	return m == ModeFileName || m == ModeFolderName
}
