// Package audio plays Star Drift's sound effects and background music
// through the system speaker. Every operation degrades to silence when the
// speaker or a sound file is unavailable.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/stardrift/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// MusicFile is the looping background track inside the asset directory.
	MusicFile = "bgm.wav"
)

// Player implements core.AudioPlayer with beep.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[core.Sound]*beep.Buffer
	music       *beep.Buffer
	musicCtrl   *beep.Ctrl
	musicVolume float64 // Linear gain, 1.0 = unchanged
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with nothing loaded. A nil logger discards output.
func NewPlayer(musicVolume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:       &beep.Mixer{},
		sounds:      make(map[core.Sound]*beep.Buffer),
		musicVolume: musicVolume,
		logger:      logger,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// LoadDir loads the sound effects and music from an asset directory.
// Missing or broken files are logged and stay silent.
func (p *Player) LoadDir(dir string) {
	for _, s := range []core.Sound{core.SoundHit, core.SoundPick, core.SoundGameOver} {
		path := filepath.Join(dir, s.String()+".wav")
		if err := p.LoadSound(s, path); err != nil {
			p.logger.Warn("sound unavailable", "sound", s, "err", err)
		}
	}
	if err := p.LoadMusic(filepath.Join(dir, MusicFile)); err != nil {
		p.logger.Warn("music unavailable", "err", err)
	}
}

// LoadSound decodes a WAV file into memory for the given effect.
func (p *Player) LoadSound(s core.Sound, path string) error {
	buf, err := decodeWAV(path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.sounds[s] = buf
	p.mu.Unlock()
	return nil
}

// LoadMusic decodes the background track into memory.
func (p *Player) LoadMusic(path string) error {
	buf, err := decodeWAV(path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.music = buf
	p.mu.Unlock()
	return nil
}

// decodeWAV reads a WAV file and resamples it to the speaker rate.
func decodeWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

// PlayOnce plays a sound effect over whatever is already playing.
func (p *Player) PlayOnce(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.sounds[s]
	if !p.initialized || buf == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlayMusic starts the background track from the beginning, looping forever.
// A track that is already playing is restarted.
func (p *Player) PlayMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	p.stopMusicLocked()
	p.musicCtrl = &beep.Ctrl{Streamer: beep.Loop(-1, p.music.Streamer(0, p.music.Len()))}
	p.mixer.Add(withGain(p.musicCtrl, p.musicVolume))
}

// StopMusic stops the background track.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.stopMusicLocked()
	speaker.Unlock()
}

// stopMusicLocked detaches the current track; the mixer drops it on its
// next pass. Callers hold both locks.
func (p *Player) stopMusicLocked() {
	if p.musicCtrl == nil {
		return
	}
	p.musicCtrl.Paused = true
	p.musicCtrl.Streamer = nil
	p.musicCtrl = nil
}

// Close stops everything. The speaker itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.stopMusicLocked()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
}

// withGain wraps a streamer in a volume effect applying a linear gain.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain == 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainToVolume(gain),
		Silent:   gain <= 0,
	}
}

// gainToVolume converts a linear gain to the base-2 exponent effects.Volume uses.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
