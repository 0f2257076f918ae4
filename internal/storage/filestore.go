package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileStore keeps the high score in a small JSON file: {"highscore": N}.
type FileStore struct {
	path   string
	logger *log.Logger
}

type highScoreFile struct {
	HighScore int `json:"highscore"`
}

// NewFileStore creates a store backed by the file at path. A leading ~ is
// expanded. The file is created on the first save.
func NewFileStore(path string, logger *log.Logger) (*FileStore, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// LoadHighScore returns the stored high score. A missing, unreadable or
// malformed file reads as 0.
func (f *FileStore) LoadHighScore() int {
	score, err := f.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("cannot load high score", "path", f.path, "err", err)
		}
		return 0
	}
	return score
}

func (f *FileStore) read() (int, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, err
	}
	var hs highScoreFile
	if err := json.Unmarshal(data, &hs); err != nil {
		return 0, fmt.Errorf("storage: malformed high score file: %w", err)
	}
	if hs.HighScore < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", hs.HighScore)
	}
	return hs.HighScore, nil
}

// SaveHighScore writes the high score, logging failures.
func (f *FileStore) SaveHighScore(score int) {
	if err := f.write(score); err != nil {
		f.logger.Warn("cannot save high score", "path", f.path, "err", err)
		return
	}
	f.logger.Info("new high score", "score", score)
}

func (f *FileStore) write(score int) error {
	data, err := json.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
