package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	yellow := color.New(color.FgYellow)
	yellow.Fprint(out, b.String())
}

// WarnInterrupted creates a warning for a search stopped before every root finished
func WarnInterrupted(cause error) Warning {
	return Warning{
		Title:      "Search interrupted",
		Message:    fmt.Sprintf("Results are partial: %v", cause),
		Suggestion: "Narrow the path or raise --timeout to search everything",
	}
}
