package display

import (
	"fmt"
	"io"

	"github.com/harrison/search/internal/models"
)

// NotFoundMessage is printed when a search produced no matches.
const NotFoundMessage = "The specified file, text, or folder was not found."

// Presenter writes search results to Out.
type Presenter struct {
	Out        io.Writer
	Hyperlinks bool
}

// Render prints result. Text results list every file with one indented
// "Line n, Column c" line per match; name results list one path per line.
func (p Presenter) Render(result *models.AggregatedResult) error {
	if result == nil || result.IsEmpty() {
		_, err := fmt.Fprintln(p.Out, NotFoundMessage)
		return err
	}

	if result.Mode() == models.ModeTextContent {
		for _, fm := range result.Files() {
			if _, err := fmt.Fprintln(p.Out, p.link(fm.Path)); err != nil {
				return err
			}
			for _, loc := range fm.Locations {
				if _, err := fmt.Fprintf(p.Out, "    Line %d, Column %d\n", loc.Line, loc.Column); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, path := range result.Paths() {
		if _, err := fmt.Fprintln(p.Out, p.link(path)); err != nil {
			return err
		}
	}
	return nil
}

func (p Presenter) link(path string) string {
	if !p.Hyperlinks {
		return path
	}
	return Hyperlink(path)
}
