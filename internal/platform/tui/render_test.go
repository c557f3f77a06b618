package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/geodash/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorPlayer)
	s.DrawTextColored(2, 0, "cd", core.ColorObstacle)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q lacks %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 %q lacks xyz", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 2, "abc"},
		{"", 4, "  "},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
