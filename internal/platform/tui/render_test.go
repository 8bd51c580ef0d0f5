package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bouncing-seal/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 1, "seal", core.ColorBrightCyan)
	s.DrawTextColor(8, 1, "ice", core.ColorWhite)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, expected 2", got)
	}
	if !strings.Contains(out, "seal") || !strings.Contains(out, "ice") {
		t.Errorf("rendered output missing text: %q", out)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.expected)
		}
	}
}
