package stardrift

import (
	"math"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

func TestBackgroundWraps(t *testing.T) {
	bg := NewBackground(50, 800, 600)

	bg.Update(11.9)
	if math.Abs(bg.Offset()-595) > 1e-9 {
		t.Fatalf("offset = %v, expected 595", bg.Offset())
	}

	bg.Update(0.2)
	if bg.Offset() != 0 {
		t.Errorf("offset = %v, expected wrap to 0", bg.Offset())
	}
}

func TestBackgroundWrapsOnExactHeight(t *testing.T) {
	bg := NewBackground(50, 800, 600)

	bg.Update(12)
	if bg.Offset() != 0 {
		t.Fatalf("offset = %v, expected 0 when the scroll reaches the height exactly", bg.Offset())
	}
	if first, second := bg.Spans(); first != 0 || second != 600 {
		t.Errorf("spans = (%v, %v), expected (0, 600)", first, second)
	}
}

func TestBackgroundCoversScreen(t *testing.T) {
	bg := NewBackground(50, 800, 600)

	for i := 0; i < 2000; i++ {
		bg.Update(1.0 / 60)

		off := bg.Offset()
		if off < 0 || off >= 600 {
			t.Fatalf("offset %v outside [0, 600)", off)
		}
		first, second := bg.Spans()
		if first > 0 || second < 0 || second > 600 {
			t.Fatalf("spans (%v, %v) leave a gap", first, second)
		}
		if math.Abs(second-first-600) > 1e-9 {
			t.Fatalf("copies are not adjacent: (%v, %v)", first, second)
		}
	}
}

func TestBackgroundDraw(t *testing.T) {
	bg := NewBackground(50, 800, 600)
	bg.Update(2)

	r := &fakeRenderer{}
	bg.Draw(r)

	if len(r.images) != 2 {
		t.Fatalf("drew %d images, expected 2", len(r.images))
	}
	if r.images[0].pos != (core.Vec2{X: 0, Y: -100}) || r.images[1].pos != (core.Vec2{X: 0, Y: 500}) {
		t.Errorf("unexpected positions %+v, %+v", r.images[0].pos, r.images[1].pos)
	}
	if r.images[0].sprite.W != 800 || r.images[0].sprite.H != 600 {
		t.Errorf("background should be drawn at screen size, got %+v", r.images[0].sprite)
	}
}
