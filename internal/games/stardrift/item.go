package stardrift

import (
	"math/rand"

	"github.com/vovakirdan/stardrift/internal/config"
	"github.com/vovakirdan/stardrift/internal/core"
)

// RewardKind says what collecting an item does.
type RewardKind int

const (
	RewardScore RewardKind = iota // Adds Value to the score
	RewardHeal                    // Restores one life
)

// Reward is applied when the player collects an item.
type Reward struct {
	Kind  RewardKind
	Value int
}

// Item is a pickup falling at a fixed speed.
type Item struct {
	body
	reward Reward
}

// NewItem creates an item above the visible area at a random column.
// With probability heal_chance the item heals instead of scoring.
func NewItem(rng *rand.Rand, cfg config.ItemConfig, screenW int) *Item {
	x := float64(randInt(rng, cfg.SideMargin, max(cfg.SideMargin, screenW-cfg.SideMargin)))

	reward := Reward{Kind: RewardScore, Value: cfg.Value}
	if cfg.HealChance > 0 && rng.Float64() < cfg.HealChance {
		reward = Reward{Kind: RewardHeal}
	}

	return newItemAt(cfg, x, reward)
}

func newItemAt(cfg config.ItemConfig, x float64, reward Reward) *Item {
	return &Item{
		body: body{
			box:   core.BoxAt(x, cfg.SpawnY, cfg.Size, cfg.Size),
			speed: cfg.Speed,
			inset: cfg.Inset,
		},
		reward: reward,
	}
}

// Update moves the item straight down.
func (it *Item) Update(dt float64) {
	it.fall(dt)
}

// Reward returns what collecting the item grants.
func (it *Item) Reward() Reward {
	return it.reward
}

// IsHeal reports whether the item restores a life.
func (it *Item) IsHeal() bool {
	return it.reward.Kind == RewardHeal
}

// Sprite returns the image to draw; heal items reuse the heart.
func (it *Item) Sprite() core.Sprite {
	id := core.SpriteItem
	if it.IsHeal() {
		id = core.SpriteHeart
	}
	return core.Sprite{ID: id, W: it.box.W, H: it.box.H}
}
