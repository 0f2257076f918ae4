// stardrift is a small arcade survival game: steer a ship, dodge the
// falling enemies and collect items.
//
// Usage:
//
//	stardrift play       - Play in the terminal
//	stardrift menu       - Title menu with difficulty picker and scoreboard
//	stardrift window     - Play in a desktop window
//	stardrift headless   - Run a bot session without a display
//	stardrift scores     - Show the score history
//
// Global flags:
//
//	--config <path>      - Custom tuning YAML
//	--assets <dir>       - Sprite and sound directory (default: ./assets)
//	--db <path>          - Score database or high score file
//	--store <kind>       - sqlite or json (default: sqlite)
//	--difficulty <name>  - easy, normal, hard or fixed
//	--seed <value>       - RNG seed for reproducible gameplay
//	--fps <rate>         - Gameplay frame rate (default: from config)
//	--width/--height     - World size (default: from config)
//	--mute               - Disable sound
//	--debug              - Debug logging with periodic stats
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagAssets     string
	flagDBPath     string
	flagStore      string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagWidth      int
	flagHeight     int
	flagMute       bool
	flagDebug      bool
)

// errUsage marks errors caused by bad flags.
var errUsage = errors.New("invalid usage")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Star Drift - dodge the enemies, grab the items",
	Long: `Star Drift is an arcade survival game. Steer your ship with the arrow
keys or WASD, dodge the enemies falling from above and pick up items for
points and extra lives. Every enemy that gets past you scores a point.

Available commands:
  play      - Play in the terminal
  menu      - Title menu with difficulty picker and scoreboard
  window    - Play in a desktop window
  headless  - Run a bot session without a display
  scores    - Show the score history

Examples:
  stardrift play
  stardrift play --difficulty hard
  stardrift window --assets ./assets
  stardrift headless --frames 3600 --seed 42
  stardrift scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagAssets, "assets", "", "Asset directory (default: ./assets or next to the binary)")
	pf.StringVar(&flagDBPath, "db", "", "Score database, or high score file with --store json (default: ~/.stardrift/...)")
	pf.StringVar(&flagStore, "store", storeSQLite, "Score store: sqlite or json")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 0, "Gameplay frame rate (0 = config value)")
	pf.IntVar(&flagWidth, "width", 0, "World width (0 = config value)")
	pf.IntVar(&flagHeight, "height", 0, "World height (0 = config value)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")
	pf.BoolVar(&flagDebug, "debug", false, "Debug logging with periodic stats")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(scoresCmd)
}
