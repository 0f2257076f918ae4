package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardrift/internal/assets"
	"github.com/vovakirdan/stardrift/internal/audio"
	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
	"github.com/vovakirdan/stardrift/internal/games/stardrift"
	"github.com/vovakirdan/stardrift/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeJSON   = "json"

	defaultDBPath   = "~/.stardrift/scores.db"
	defaultJSONPath = "~/.stardrift/highscore.json"
	defaultLogPath  = "~/.stardrift/stardrift.log"
)

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stardrift",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newFileLogger logs to ~/.stardrift/stardrift.log; the terminal frontend
// owns stderr. Returns a discarding logger when the file cannot be opened.
func newFileLogger() (*log.Logger, func()) {
	path, err := storage.ExpandHome(defaultLogPath)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// loadConfig loads the tuning config and applies the command line
// overrides. The difficulty preset is returned separately so the menu can
// change it per session.
func loadConfig() (config.StarDriftConfig, config.DifficultyPreset, error) {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.StarDriftConfig{}, "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", errUsage, flagDifficulty)
	}
	if flagWidth < 0 || flagHeight < 0 || flagFPS < 0 {
		return config.StarDriftConfig{}, "", fmt.Errorf("%w: --width, --height and --fps must not be negative", errUsage)
	}

	cfg, err := config.LoadStarDrift(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	if flagWidth > 0 {
		cfg.World.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.World.Height = flagHeight
	}
	if flagFPS > 0 {
		cfg.Session.GameplayFPS = flagFPS
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, preset, nil
}

// runtimeConfig builds the session runtime settings from cfg and the flags.
func runtimeConfig(cfg config.StarDriftConfig) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  cfg.World.Width,
		ScreenH:  cfg.World.Height,
		TickRate: cfg.Session.GameplayFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
}

// scoreStores holds the high score store handed to the session and, for
// sqlite, the database behind it.
type scoreStores struct {
	high core.PersistentStore
	db   *storage.Store
}

func (s scoreStores) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// openStores opens the store selected by --store. A store that cannot be
// opened is logged and replaced by none: the high score starts at 0 and
// is not saved.
func openStores(logger *log.Logger) (scoreStores, error) {
	switch flagStore {
	case storeSQLite:
		path := flagDBPath
		if path == "" {
			path = defaultDBPath
		}
		db, err := storage.Open(path)
		if err != nil {
			logger.Warn("score database unavailable", "path", path, "err", err)
			return scoreStores{}, nil
		}
		return scoreStores{high: storage.NewHighScores(db, storage.GameID, logger), db: db}, nil

	case storeJSON:
		path := flagDBPath
		if path == "" {
			path = defaultJSONPath
		}
		fs, err := storage.NewFileStore(path, logger)
		if err != nil {
			logger.Warn("high score file unavailable", "path", path, "err", err)
			return scoreStores{}, nil
		}
		logger.Debug("high score file", "path", fs.Path())
		return scoreStores{high: fs}, nil
	}
	return scoreStores{}, fmt.Errorf("%w: unknown store %q (want sqlite or json)", errUsage, flagStore)
}

// openAudio opens the speaker and loads the sounds. Returns a silent
// player when audio is disabled or unavailable.
func openAudio(cfg config.StarDriftConfig, assetDir string, logger *log.Logger) (core.AudioPlayer, func()) {
	if !cfg.Audio.Enabled {
		return audio.Nop{}, func() {}
	}
	p := audio.NewPlayer(cfg.Audio.MusicVolume, logger)
	if err := p.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	p.LoadDir(assetDir)
	return p, p.Close
}

// game holds the resources shared by every session of one process.
type game struct {
	base     config.StarDriftConfig
	preset   config.DifficultyPreset
	assetDir string
	stores   scoreStores
	audio    core.AudioPlayer
	logger   *log.Logger
	closers  []func()
}

func (g *game) Close() {
	for i := len(g.closers) - 1; i >= 0; i-- {
		g.closers[i]()
	}
	g.stores.Close()
}

// newGame loads config and opens the score store and, when withAudio is
// set, the speaker.
func newGame(logger *log.Logger, withAudio bool) (*game, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return nil, err
	}
	stores, err := openStores(logger)
	if err != nil {
		return nil, err
	}

	g := &game{
		base:     cfg,
		preset:   preset,
		assetDir: assets.ResolveDir(flagAssets),
		stores:   stores,
		audio:    audio.Nop{},
		logger:   logger,
	}
	if withAudio {
		p, closeAudio := openAudio(cfg, g.assetDir, logger)
		g.audio = p
		g.closers = append(g.closers, closeAudio)
	}
	return g, nil
}

// configFor returns the base config with a difficulty preset applied.
func (g *game) configFor(preset config.DifficultyPreset) config.StarDriftConfig {
	cfg := g.base
	config.ApplyPreset(&cfg, preset)
	return cfg
}

// newSession starts a session at the given difficulty. The high score is
// loaded from the store and the music starts.
func (g *game) newSession(preset config.DifficultyPreset) *stardrift.Session {
	cfg := g.configFor(preset)
	g.logger.Debug("new session", "difficulty", preset, "world", fmt.Sprintf("%dx%d", cfg.World.Width, cfg.World.Height))
	return stardrift.New(stardrift.Options{
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Store:   g.stores.high,
		Audio:   g.audio,
		Logger:  g.logger,
	})
}
