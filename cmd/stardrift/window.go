package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardrift/internal/assets"
	"github.com/vovakirdan/stardrift/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Star Drift in a desktop window with sprites and sound.

Sprites (player.png, enemy.png, item.png, heart.png, bg.png) and sounds
(sfx_hit.wav, sfx_pick.wav, sfx_gameover.wav, bgm.wav) are read from the
asset directory. Missing sprites are drawn as coloured boxes, missing
sounds stay silent.

Controls:
  Arrows/WASD  - Move
  Mouse        - Restart/Quit buttons after game over
  R/Enter      - Restart (after game over)
  Esc/Q        - Quit

Examples:
  stardrift window
  stardrift window --assets ./assets --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world size")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	g, err := newGame(logger, true)
	if err != nil {
		return err
	}
	defer g.Close()

	session := g.newSession(g.preset)
	lib := assets.Load(g.assetDir, assets.SpriteSizes(g.configFor(g.preset)), logger)

	return window.Run(window.Options{
		Session: session,
		Assets:  lib,
		Scale:   flagScale,
		Logger:  logger,
	})
}
