package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// HighScores adapts a Store to the game's high score interface.
// Errors are logged and swallowed: a broken database reads as 0 and
// failed writes are lost.
type HighScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScores creates an adapter for one game. A nil logger discards output.
func NewHighScores(store *Store, gameID string, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, gameID: gameID, logger: logger}
}

// LoadHighScore returns the stored high score, or 0 on failure.
func (h *HighScores) LoadHighScore() int {
	score, err := h.store.HighScore(h.gameID)
	if err != nil {
		h.logger.Warn("cannot load high score", "err", err)
		return 0
	}
	return score
}

// SaveHighScore stores the high score.
func (h *HighScores) SaveHighScore(score int) {
	if err := h.store.SetHighScore(h.gameID, score); err != nil {
		h.logger.Warn("cannot save high score", "score", score, "err", err)
		return
	}
	h.logger.Info("new high score", "score", score)
}

// RecordScore appends a finished session to the history.
func (h *HighScores) RecordScore(score int) {
	if _, err := h.store.SaveScore(h.gameID, score); err != nil {
		h.logger.Warn("cannot record score", "score", score, "err", err)
	}
}
