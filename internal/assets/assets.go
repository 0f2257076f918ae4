// Package assets locates and loads Star Drift's sprite images.
// Images are decoded once and scaled to their draw size up front so
// frontends can blit them without resampling every frame.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// DirName is the asset directory looked up next to the working directory
// and the executable.
const DirName = "assets"

var fileNames = map[core.SpriteID]string{
	core.SpritePlayer:     "player.png",
	core.SpriteEnemy:      "enemy.png",
	core.SpriteItem:       "item.png",
	core.SpriteHeart:      "heart.png",
	core.SpriteBackground: "bg.png",
}

// FileName returns the image file name for a sprite.
func FileName(id core.SpriteID) string {
	return fileNames[id]
}

// ResolveDir returns the asset directory to use.
// Search order: custom -> ./assets -> <executable dir>/assets.
// When nothing exists the custom path (or ./assets) is returned anyway
// and every load falls back to placeholders.
func ResolveDir(custom string) string {
	if custom != "" {
		return custom
	}
	if isDir(DirName) {
		return DirName
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), DirName)
		if isDir(dir) {
			return dir
		}
	}
	return DirName
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LoadImage decodes an image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// Scale returns img resized to w x h with Catmull-Rom interpolation.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// SpriteSizes returns the draw size of every sprite for a configuration.
func SpriteSizes(cfg config.StarDriftConfig) map[core.SpriteID]image.Point {
	return map[core.SpriteID]image.Point{
		core.SpritePlayer:     square(cfg.Player.Size),
		core.SpriteEnemy:      square(cfg.Enemy.Size),
		core.SpriteItem:       square(cfg.Item.Size),
		core.SpriteHeart:      image.Pt(32, 32),
		core.SpriteBackground: image.Pt(cfg.World.Width, cfg.World.Height),
	}
}

func square(size float64) image.Point {
	return image.Pt(int(size), int(size))
}

// Library holds the scaled sprite images. Sprites that failed to load
// are absent.
type Library struct {
	images map[core.SpriteID]image.Image
}

// Load reads and scales every sprite from dir. Failures are logged at warn
// level and leave the sprite absent. A nil logger discards output.
func Load(dir string, sizes map[core.SpriteID]image.Point, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lib := &Library{images: make(map[core.SpriteID]image.Image)}
	for id, size := range sizes {
		name := FileName(id)
		if name == "" {
			continue
		}
		img, err := LoadImage(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("sprite unavailable", "sprite", id, "err", err)
			continue
		}
		lib.images[id] = Scale(img, size.X, size.Y)
	}
	return lib
}

// Image returns the scaled image for a sprite, or nil if it is absent.
func (l *Library) Image(id core.SpriteID) image.Image {
	if l == nil {
		return nil
	}
	return l.images[id]
}

// Placeholder returns the flat colour drawn in place of a missing sprite.
// ok is false for sprites that are simply skipped when missing: hearts
// disappear and the background stays the clear colour.
func Placeholder(id core.SpriteID) (c core.Color, ok bool) {
	switch id {
	case core.SpritePlayer:
		return core.ColorCyan, true
	case core.SpriteEnemy:
		return core.ColorRed, true
	case core.SpriteItem:
		return core.ColorGold, true
	default:
		return core.ColorDefault, false
	}
}
