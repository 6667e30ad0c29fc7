// Package display renders search results for the terminal.
//
// # Results
//
// Presenter writes an aggregated result to a writer. Name searches print one path per
// line; text searches print each file followed by its match locations:
//
//	p := display.Presenter{Out: os.Stdout, Hyperlinks: display.ShouldHyperlink("auto", os.Stdout)}
//	p.Render(result)
//
// Paths are wrapped in OSC-8 escape sequences when Hyperlinks is set, so terminals
// that support them make each path clickable. Terminals that don't simply show the text.
//
// # Warnings
//
// Warning prints a yellow notice, used when a search is interrupted and only
// partial results are shown:
//
//	display.WarnInterrupted(ctx.Err()).Display(os.Stderr)
package display
