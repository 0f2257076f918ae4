// Package stardrift implements the Star Drift game session.
// The player steers a ship at the bottom of the screen, dodging enemies that
// fall from above and collecting items for points or lives.
package stardrift

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// Mode is the session state machine position.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreRecorder is implemented by stores that also keep a score history.
type ScoreRecorder interface {
	RecordScore(score int)
}

// Options wires a session to its collaborators. Nil collaborators are
// replaced by silent no-op implementations.
type Options struct {
	Config  config.StarDriftConfig
	Runtime core.RuntimeConfig
	Store   core.PersistentStore
	Audio   core.AudioPlayer
	Logger  *log.Logger
}

// Session owns the complete game state and advances it one frame at a time.
type Session struct {
	cfg     config.StarDriftConfig
	runtime core.RuntimeConfig
	width   float64
	height  float64
	screenW int

	rng        *rand.Rand
	difficulty *config.DifficultyManager
	collide    Collisions
	spawner    *Spawner
	bg         *Background

	player  *Player
	enemies []*Enemy
	items   []*Item

	mode       Mode
	life       int
	score      int
	highScore  int
	invincible float64
	elapsed    float64 // Seconds played in the current session
	frame      int     // Frames stepped since construction

	restartButton core.Box
	quitButton    core.Box

	store  core.PersistentStore
	audio  core.AudioPlayer
	logger *log.Logger
}

// New creates a session, loads the stored high score and starts the music.
func New(opts Options) *Session {
	cfg := opts.Config
	rt := opts.Runtime

	w, h := rt.ScreenW, rt.ScreenH
	if w <= 0 || h <= 0 {
		w, h = cfg.World.Width, cfg.World.Height
	}

	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:        cfg,
		runtime:    rt,
		width:      float64(w),
		height:     float64(h),
		screenW:    w,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		collide:    NewCollisions(cfg.Enemy.VisibleTop),
		spawner:    NewSpawner(cfg.Spawn),
		bg:         NewBackground(cfg.Background.ScrollSpeed, float64(w), float64(h)),
		store:      opts.Store,
		audio:      opts.Audio,
		logger:     opts.Logger,
	}
	if s.store == nil {
		s.store = nopStore{}
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	// Buttons sit below the centre of the screen, side by side.
	cx, cy := float64(w/2), float64(h/2)
	s.restartButton = core.NewBox(cx-120, cy+60, 100, 44)
	s.quitButton = core.NewBox(cx+20, cy+60, 100, 44)

	s.player = NewPlayer(cfg.Player, s.width/2, s.height-cfg.Player.BottomOffset)
	s.highScore = s.store.LoadHighScore()
	s.Reset()
	s.audio.PlayMusic()

	s.logger.Debug("session ready", "width", w, "height", h, "seed", seed, "high", s.highScore)
	return s
}

// Reset starts a fresh session: entities cleared, counters back to their
// starting values and the player recentred. The high score is kept.
func (s *Session) Reset() {
	clear(s.enemies)
	clear(s.items)
	s.enemies = s.enemies[:0]
	s.items = s.items[:0]
	s.score = 0
	s.life = s.cfg.Session.MaxLife
	s.invincible = s.cfg.Session.StartInvincible
	s.elapsed = 0
	s.mode = ModePlaying
	s.spawner.Reset()
	s.bg.Reset()
	s.player.MoveTo(s.width/2, s.height-s.cfg.Player.BottomOffset)
}

// Restart resets the session and restarts the music.
func (s *Session) Restart() {
	s.Reset()
	s.audio.PlayMusic()
	s.logger.Info("session restarted")
}

// Step advances the session by dt seconds using the frame's input.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	s.frame++
	if dt < 0 {
		dt = 0
	}

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: s.State(), Quit: true}
	}

	switch s.mode {
	case ModePlaying:
		s.update(in, dt)
		s.logStats()
	case ModeGameOver:
		if s.handleGameOverInput(in) {
			return core.StepResult{State: s.State(), Quit: true}
		}
	}

	return core.StepResult{State: s.State()}
}

func (s *Session) update(in core.InputFrame, dt float64) {
	s.elapsed += dt
	if s.invincible > 0 {
		s.invincible = max(s.invincible-dt, 0)
	}

	s.player.Move(in.Direction(), dt, s.width, s.height)

	spawnEnemy, spawnItem := s.spawner.Advance(dt, len(s.enemies))
	if spawnEnemy {
		s.spawnEnemy()
	}
	if spawnItem {
		s.spawnItem()
	}

	if s.updateEnemies(dt) {
		return
	}
	s.updateItems(dt)
	s.bg.Update(dt)
}

func (s *Session) spawnEnemy() {
	x := EnemyColumn(s.rng, s.cfg.Enemy, s.cfg.Spawn, s.screenW, s.player.Bounds())
	scale := s.difficulty.Speed(1, s.score, s.elapsed)
	s.enemies = append(s.enemies, NewEnemy(s.rng, s.cfg.Enemy, s.screenW, &x, scale))
}

func (s *Session) spawnItem() {
	s.items = append(s.items, NewItem(s.rng, s.cfg.Item, s.screenW))
}

// updateEnemies moves and culls enemies and applies hits. An enemy that
// leaves the bottom scores a point; one that hits the player is removed.
// It returns true when a hit ended the session.
func (s *Session) updateEnemies(dt float64) bool {
	limit := s.height + s.cfg.Enemy.ExitMargin
	alive := s.enemies[:0]
	for i, e := range s.enemies {
		e.Update(dt)

		if e.Top() > limit {
			s.score++
			continue
		}

		if s.collide.EnemyHits(s.player, e, s.invincible) {
			if s.takeHit() {
				// Enemies after this one stay where they are for the frozen frame.
				alive = append(alive, s.enemies[i+1:]...)
				clear(s.enemies[len(alive):])
				s.enemies = alive
				return true
			}
			continue
		}
		alive = append(alive, e)
	}
	clear(s.enemies[len(alive):])
	s.enemies = alive
	return false
}

func (s *Session) updateItems(dt float64) {
	limit := s.height + s.cfg.Item.ExitMargin
	kept := s.items[:0]
	for _, it := range s.items {
		it.Update(dt)

		if it.Top() > limit {
			continue
		}
		if s.collide.Collects(s.player, it) {
			s.collect(it)
			continue
		}
		kept = append(kept, it)
	}
	clear(s.items[len(kept):])
	s.items = kept
}

func (s *Session) collect(it *Item) {
	s.audio.PlayOnce(core.SoundPick)
	r := it.Reward()
	switch r.Kind {
	case RewardHeal:
		s.life = min(s.life+1, s.cfg.Session.MaxLife)
	default:
		s.score += r.Value
	}
}

// takeHit removes a life and grants invincibility.
// It returns true when that was the last life.
func (s *Session) takeHit() bool {
	s.audio.PlayOnce(core.SoundHit)
	s.life--
	s.invincible = s.cfg.Session.HitInvincible
	if s.life <= 0 {
		s.life = 0
		s.enterGameOver()
		return true
	}
	return false
}

func (s *Session) enterGameOver() {
	s.mode = ModeGameOver
	s.audio.StopMusic()

	if s.score > s.highScore {
		s.highScore = s.score
		s.store.SaveHighScore(s.highScore)
	}
	if rec, ok := s.store.(ScoreRecorder); ok && s.score > 0 {
		rec.RecordScore(s.score)
	}

	s.audio.PlayOnce(core.SoundGameOver)
	s.logger.Info("game over",
		"score", s.score,
		"high", s.highScore,
		"seconds", fmt.Sprintf("%.1f", s.elapsed))
}

// handleGameOverInput applies clicks on the buttons and the restart action.
// It returns true when the player chose to quit.
func (s *Session) handleGameOverInput(in core.InputFrame) bool {
	if in.Click != nil {
		switch {
		case s.restartButton.Contains(*in.Click):
			s.Restart()
			return false
		case s.quitButton.Contains(*in.Click):
			return true
		}
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	return false
}

func (s *Session) logStats() {
	every := s.cfg.Session.StatsEveryFrames
	if !s.runtime.Debug || every <= 0 || s.frame%every != 0 {
		return
	}
	s.logger.Debug("stats",
		"frame", s.frame,
		"enemies", len(s.enemies),
		"items", len(s.items),
		"score", s.score,
		"life", s.life,
		"inv", fmt.Sprintf("%.2f", s.invincible))
}

// State returns the externally visible state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Life:      s.life,
		GameOver:  s.mode == ModeGameOver,
	}
}

// Mode returns the current state machine position.
func (s *Session) Mode() Mode { return s.mode }

// TargetFPS returns the frame rate the loop should cap at for the current mode.
func (s *Session) TargetFPS() int {
	fps := s.cfg.Session.GameplayFPS
	if s.mode == ModeGameOver {
		fps = s.cfg.Session.GameOverFPS
	}
	if fps <= 0 {
		fps = s.runtime.TickRate
	}
	if fps <= 0 {
		fps = 60
	}
	return fps
}

// Invincible returns the remaining invincibility in seconds.
func (s *Session) Invincible() float64 { return s.invincible }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// Enemies returns the live enemies. The slice must not be modified.
func (s *Session) Enemies() []*Enemy { return s.enemies }

// Items returns the live items. The slice must not be modified.
func (s *Session) Items() []*Item { return s.items }

// Background returns the scrolling background.
func (s *Session) Background() *Background { return s.bg }

// Buttons returns the restart and quit button boxes of the game over screen.
func (s *Session) Buttons() (restart, quit core.Box) {
	return s.restartButton, s.quitButton
}

// Size returns the playfield size in world units.
func (s *Session) Size() (w, h float64) { return s.width, s.height }

// Elapsed returns the seconds played in the current session.
func (s *Session) Elapsed() float64 { return s.elapsed }

type nopStore struct{}

func (nopStore) LoadHighScore() int { return 0 }
func (nopStore) SaveHighScore(int)  {}

type nopAudio struct{}

func (nopAudio) PlayOnce(core.Sound) {}
func (nopAudio) PlayMusic()          {}
func (nopAudio) StopMusic()          {}
