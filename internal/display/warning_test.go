package display

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Something odd"}.Display(&buf)

	output := buf.String()
	if !strings.Contains(output, "Warning: Something odd") {
		t.Errorf("expected title in output, got %q", output)
	}
	if strings.Contains(output, "Suggestion") {
		t.Error("unexpected suggestion section")
	}
}

func TestDisplayWarning_AllSections(t *testing.T) {
	var buf bytes.Buffer
	Warning{
		Title:      "Title",
		Message:    "Details here",
		Suggestion: "Try again",
	}.Display(&buf)

	output := buf.String()
	for _, want := range []string{
		"    Details here\n",
		"    Suggestion: Try again\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
}

func TestWarnInterrupted(t *testing.T) {
	w := WarnInterrupted(context.DeadlineExceeded)
	if w.Title != "Search interrupted" {
		t.Errorf("Title = %q", w.Title)
	}
	if !strings.Contains(w.Message, "deadline exceeded") {
		t.Errorf("Message = %q, want cause", w.Message)
	}
}
