package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardrift/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Star Drift with a title menu.

Pick a difficulty, look at the score history or start a game. Quitting a
game returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - Scores
  Q/Esc         - Quit

Examples:
  stardrift menu
  stardrift menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newFileLogger()
	defer closeLog()

	g, err := newGame(logger, true)
	if err != nil {
		return err
	}
	defer g.Close()

	width, height := terminalSize()
	preset := g.preset

	// Menu loop
	for {
		high := 0
		if g.stores.high != nil {
			high = g.stores.high.LoadHighScore()
		}

		res, err := tui.RunMenu(preset, high, width, height)
		if err != nil {
			return err
		}
		preset = res.Preset
		width, height = res.Width, res.Height

		switch res.Choice {
		case tui.MenuPlay:
			err := tui.Run(tui.Options{
				Session: g.newSession(preset),
				Width:   width,
				Height:  height,
				Logger:  logger,
			})
			// Quitting mid-game leaves the music running.
			g.audio.StopMusic()
			if err != nil {
				return err
			}

		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(g.stores.db, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
