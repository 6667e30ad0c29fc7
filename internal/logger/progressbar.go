package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// ProgressBar tracks how many roots of a search have finished.
// It is safe for use by the goroutines reporting completed roots.
type ProgressBar struct {
	done        int
	total       int
	width       int
	enableColor bool
	mu          sync.RWMutex
}

// NewProgressBar creates a bar for total roots, width characters wide.
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{total: total, width: width, enableColor: enableColor}
}

// Advance marks one more root done and returns the bar rendered at that point.
// Rendering under the same lock keeps concurrent callers from printing the same count.
func (pb *ProgressBar) Advance() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.done < pb.total {
		pb.done++
	}
	return pb.render()
}

// Done returns how many roots have finished.
func (pb *ProgressBar) Done() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.done
}

// Total returns the number of roots in the search.
func (pb *ProgressBar) Total() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.total
}

// Percentage returns the finished share of roots (0-100).
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentage()
}

// Render returns the bar as "[===   ] done/total (p%)".
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.render()
}

func (pb *ProgressBar) percentage() int {
	if pb.total <= 0 {
		return 0
	}
	return min(max(pb.done*100/pb.total, 0), 100)
}

func (pb *ProgressBar) render() string {
	perc := pb.percentage()
	filled := perc * pb.width / 100

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	out := fmt.Sprintf("%s %d/%d (%d%%)", bar, pb.done, pb.total, perc)

	if !pb.enableColor {
		return out
	}
	if perc < 100 {
		return color.New(color.FgCyan).Sprint(out)
	}
	return color.New(color.FgGreen).Sprint(out)
}
