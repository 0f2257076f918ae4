package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardrift/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Star Drift in the terminal. The 800x600 world is scaled to the
terminal size; the mouse works on the game over buttons.

Controls:
  Arrows/WASD  - Move
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a text screenshot and copy it to the clipboard
  Q/Esc        - Quit

Difficulty options:
  easy   - Five lives, enemies speed up slowly with the score
  normal - Enemies start a little faster and keep speeding up
  hard   - Two lives, enemies start fast
  fixed  - No progression (default)

Logs go to ~/.stardrift/stardrift.log.

Examples:
  stardrift play
  stardrift play --difficulty easy
  stardrift play --store json --db ./highscore.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog := newFileLogger()
	defer closeLog()

	g, err := newGame(logger, true)
	if err != nil {
		return err
	}
	defer g.Close()

	width, height := terminalSize()
	return tui.Run(tui.Options{
		Session: g.newSession(g.preset),
		Width:   width,
		Height:  height,
		Logger:  logger,
	})
}
