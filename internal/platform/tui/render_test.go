package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(1, 1, "cd")

	want := "ab  \n cd "
	if got := RenderScreen(s); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsColouredText(t *testing.T) {
	s := core.NewScreen(20, 1)
	s.DrawTextColor(0, 0, "Score: 7", core.ColorWhite)
	s.FillRect(core.NewRect(10, 0, 4, 1), core.ColorBlue)
	s.DrawTextColor(10, 0, "Quit", core.ColorWhite)

	got := RenderScreen(s)
	for _, want := range []string{"Score: 7", "Quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderScreen() = %q, missing %q", got, want)
		}
	}
	if lines := strings.Count(got, "\n"); lines != 0 {
		t.Errorf("single row rendered with %d newlines", lines)
	}
}

func TestStyleForUnknownColour(t *testing.T) {
	// Unknown colours fall back to the terminal default instead of panicking.
	style := styleFor(cellStyle{fg: core.Color(200), bg: core.ColorDefault})
	if got := style.Render("x"); !strings.Contains(got, "x") {
		t.Errorf("Render() = %q", got)
	}
}
