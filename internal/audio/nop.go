package audio

import "github.com/vovakirdan/stardrift/internal/core"

// Nop is a silent core.AudioPlayer used with --mute or when the speaker
// cannot be opened.
type Nop struct{}

func (Nop) PlayOnce(core.Sound) {}
func (Nop) PlayMusic()          {}
func (Nop) StopMusic()          {}

var (
	_ core.AudioPlayer = Nop{}
	_ core.AudioPlayer = (*Player)(nil)
)
