package stardrift

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
)

func TestNewSessionStartsPlaying(t *testing.T) {
	store := &memStore{high: 17}
	audio := &fakeAudio{}
	s := newTestSession(store, audio)

	st := s.State()
	if st.GameOver || st.Score != 0 || st.Life != 3 || st.HighScore != 17 {
		t.Errorf("unexpected initial state %+v", st)
	}
	if s.Invincible() != 2.0 {
		t.Errorf("initial invincibility = %v, expected 2.0", s.Invincible())
	}
	if audio.musicStarts != 1 {
		t.Errorf("music should start once, started %d times", audio.musicStarts)
	}

	c := s.Player().Bounds().Center()
	if c.X != 400 || c.Y != 520 {
		t.Errorf("player centre = %+v, expected (400, 520)", c)
	}
}

func TestEnemyExitScoresOnce(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.enemies = append(s.enemies, enemyAt(20, 645, 100))

	step(s, 0.1)
	if s.State().Score != 1 {
		t.Fatalf("score after exit = %d, expected 1", s.State().Score)
	}
	if len(s.Enemies()) != 0 {
		t.Errorf("exited enemy should be removed, %d left", len(s.Enemies()))
	}

	step(s, 0.1)
	if s.State().Score != 1 {
		t.Errorf("score changed after removal: %d", s.State().Score)
	}
}

func TestEnemyInsideScreenDoesNotScore(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.enemies = append(s.enemies, enemyAt(20, 600, 0))

	step(s, 0.1)
	if s.State().Score != 0 || len(s.Enemies()) != 1 {
		t.Errorf("enemy at top=600 should stay without scoring, score=%d enemies=%d",
			s.State().Score, len(s.Enemies()))
	}
}

func TestItemCollectedOnce(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(&memStore{}, audio)
	p := s.Player().Bounds()
	s.items = append(s.items, itemAt(p.X+19, p.Y+15, 0, Reward{Kind: RewardScore, Value: 5}))

	step(s, 0)
	if s.State().Score != 5 {
		t.Errorf("score after pickup = %d, expected 5", s.State().Score)
	}
	if len(s.Items()) != 0 {
		t.Errorf("collected item should be removed")
	}

	step(s, 0)
	if s.State().Score != 5 {
		t.Errorf("item counted twice, score %d", s.State().Score)
	}
	if audio.count(core.SoundPick) != 1 {
		t.Errorf("pick sound played %d times, expected 1", audio.count(core.SoundPick))
	}
}

func TestHealItemCapsAtMaxLife(t *testing.T) {
	tests := []struct {
		name     string
		life     int
		expected int
	}{
		{"heals one", 2, 3},
		{"capped at max", 3, 3},
		{"from last life", 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(&memStore{}, &fakeAudio{})
			s.life = tc.life
			p := s.Player().Bounds()
			s.items = append(s.items, itemAt(p.X+19, p.Y+15, 0, Reward{Kind: RewardHeal}))

			step(s, 0)
			if s.State().Life != tc.expected {
				t.Errorf("life = %d, expected %d", s.State().Life, tc.expected)
			}
			if s.State().Score != 0 {
				t.Errorf("heal item should not score, got %d", s.State().Score)
			}
		})
	}
}

func TestItemMissedIsRemovedWithoutScore(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.items = append(s.items, itemAt(20, 649, 100, Reward{Kind: RewardScore, Value: 5}))

	step(s, 0.1)
	if len(s.Items()) != 0 || s.State().Score != 0 {
		t.Errorf("missed item: items=%d score=%d", len(s.Items()), s.State().Score)
	}
}

func TestHitGrantsInvincibility(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(&memStore{}, audio)
	s.invincible = 0
	s.enemies = append(s.enemies, onPlayer(s))

	step(s, 0)
	if s.State().Life != 2 {
		t.Fatalf("life after hit = %d, expected 2", s.State().Life)
	}
	if s.Invincible() != 1.5 {
		t.Errorf("invincibility after hit = %v, expected 1.5", s.Invincible())
	}
	if len(s.Enemies()) != 0 {
		t.Errorf("enemy that hit should be removed")
	}
	if audio.count(core.SoundHit) != 1 {
		t.Errorf("hit sound played %d times", audio.count(core.SoundHit))
	}

	// A second overlapping enemy does nothing while invincible.
	s.enemies = append(s.enemies, onPlayer(s))
	step(s, 0.5)
	if s.State().Life != 2 {
		t.Errorf("life changed while invincible: %d", s.State().Life)
	}
	if s.Invincible() != 1.0 {
		t.Errorf("invincibility = %v, expected 1.0", s.Invincible())
	}
}

func TestInvincibilityNeverNegative(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	step(s, 5)
	if s.Invincible() != 0 {
		t.Errorf("invincibility = %v, expected 0", s.Invincible())
	}
}

func TestThreeHitsEndSession(t *testing.T) {
	store := &memStore{}
	audio := &fakeAudio{}
	s := newTestSession(store, audio)

	for i := 0; i < 3; i++ {
		if s.State().GameOver {
			t.Fatalf("game over after %d hits", i)
		}
		s.invincible = 0
		s.enemies = append(s.enemies, onPlayer(s))
		step(s, 0)
	}

	st := s.State()
	if !st.GameOver || st.Life != 0 {
		t.Fatalf("expected game over with 0 lives, got %+v", st)
	}
	if s.Mode() != ModeGameOver {
		t.Errorf("mode = %v", s.Mode())
	}
	if audio.musicStops != 1 {
		t.Errorf("music stopped %d times, expected 1", audio.musicStops)
	}
	if last := audio.played[len(audio.played)-1]; last != core.SoundGameOver {
		t.Errorf("last sound = %v, expected game over", last)
	}
	if len(store.saves) != 0 {
		t.Errorf("score 0 should not be saved, saves=%v", store.saves)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.life = 1
	s.invincible = 0
	s.enemies = append(s.enemies, onPlayer(s), enemyAt(20, 100, 100))
	step(s, 0)

	if !s.State().GameOver {
		t.Fatal("expected game over")
	}
	if len(s.Enemies()) != 1 {
		t.Fatalf("only the hitting enemy should be removed, %d left", len(s.Enemies()))
	}

	before := s.Enemies()[0].Top()
	offset := s.Background().Offset()
	step(s, 1)
	if s.Enemies()[0].Top() != before || s.Background().Offset() != offset {
		t.Error("world should not move after game over")
	}
}

func TestHighScorePersistence(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		score     int
		wantHigh  int
		wantSaves int
	}{
		{"new record", 5, 42, 42, 1},
		{"below record", 50, 42, 50, 0},
		{"equal to record", 42, 42, 42, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &memStore{high: tc.stored}
			s := newTestSession(store, &fakeAudio{})
			s.score = tc.score
			s.life = 1
			s.invincible = 0
			s.enemies = append(s.enemies, onPlayer(s))
			step(s, 0)

			if !s.State().GameOver {
				t.Fatal("expected game over")
			}
			if s.State().HighScore != tc.wantHigh || store.high != tc.wantHigh {
				t.Errorf("high score = %d (stored %d), expected %d", s.State().HighScore, store.high, tc.wantHigh)
			}
			if len(store.saves) != tc.wantSaves {
				t.Errorf("saves = %v, expected %d", store.saves, tc.wantSaves)
			}
			if len(store.recorded) != 1 || store.recorded[0] != tc.score {
				t.Errorf("recorded = %v, expected [%d]", store.recorded, tc.score)
			}
		})
	}
}

func endSession(s *Session) {
	s.life = 1
	s.invincible = 0
	s.enemies = append(s.enemies, onPlayer(s))
	step(s, 0)
}

func TestRestartByClick(t *testing.T) {
	audio := &fakeAudio{}
	s := newTestSession(&memStore{high: 9}, audio)
	s.score = 12
	s.items = append(s.items, itemAt(20, 100, 0, Reward{Kind: RewardScore, Value: 5}))
	endSession(s)

	restart, _ := s.Buttons()
	in := core.NewInputFrame()
	in.SetClick(restart.Center())
	res := s.Step(in, 0.016)

	if res.Quit {
		t.Fatal("restart click should not quit")
	}
	st := res.State
	if st.GameOver || st.Score != 0 || st.Life != 3 || st.HighScore != 12 {
		t.Errorf("unexpected state after restart %+v", st)
	}
	if len(s.Enemies()) != 0 || len(s.Items()) != 0 {
		t.Errorf("entities should be cleared")
	}
	if s.Invincible() != 2.0 {
		t.Errorf("invincibility = %v, expected 2.0", s.Invincible())
	}
	if audio.musicStarts != 2 {
		t.Errorf("music should restart, started %d times", audio.musicStarts)
	}
}

func TestResetReleasesEntities(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	s.enemies = append(s.enemies, enemyAt(100, 100, 0), enemyAt(300, 100, 0))
	s.items = append(s.items, itemAt(200, 100, 0, Reward{Kind: RewardScore, Value: 1}))

	s.Reset()

	if len(s.enemies) != 0 || len(s.items) != 0 {
		t.Fatalf("entities left after reset: %d enemies, %d items", len(s.enemies), len(s.items))
	}
	for i, e := range s.enemies[:2] {
		if e != nil {
			t.Errorf("enemy slot %d still holds %p", i, e)
		}
	}
	if it := s.items[:1][0]; it != nil {
		t.Errorf("item slot still holds %p", it)
	}
}

func TestGameOverInput(t *testing.T) {
	tests := []struct {
		name        string
		input       func(s *Session) core.InputFrame
		wantQuit    bool
		wantPlaying bool
	}{
		{
			name: "quit button",
			input: func(s *Session) core.InputFrame {
				_, quit := s.Buttons()
				in := core.NewInputFrame()
				in.SetClick(quit.Center())
				return in
			},
			wantQuit: true,
		},
		{
			name: "click elsewhere",
			input: func(s *Session) core.InputFrame {
				in := core.NewInputFrame()
				in.SetClick(core.Vec2{X: 5, Y: 5})
				return in
			},
		},
		{
			name: "restart action",
			input: func(s *Session) core.InputFrame {
				in := core.NewInputFrame()
				in.Set(core.ActionRestart)
				return in
			},
			wantPlaying: true,
		},
		{
			name: "quit action",
			input: func(s *Session) core.InputFrame {
				in := core.NewInputFrame()
				in.Set(core.ActionQuit)
				return in
			},
			wantQuit: true,
		},
		{
			name: "movement ignored",
			input: func(s *Session) core.InputFrame {
				in := core.NewInputFrame()
				in.Set(core.ActionLeft)
				return in
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(&memStore{}, &fakeAudio{})
			endSession(s)

			res := s.Step(tc.input(s), 0.016)
			if res.Quit != tc.wantQuit {
				t.Errorf("Quit = %v, expected %v", res.Quit, tc.wantQuit)
			}
			if playing := s.Mode() == ModePlaying; playing != tc.wantPlaying {
				t.Errorf("playing = %v, expected %v", playing, tc.wantPlaying)
			}
		})
	}
}

func TestQuitWhilePlaying(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	in := core.NewInputFrame()
	in.Set(core.ActionQuit)
	if !s.Step(in, 0.016).Quit {
		t.Error("quit action should request termination")
	}
}

func TestTargetFPS(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	if s.TargetFPS() != 60 {
		t.Errorf("gameplay fps = %d, expected 60", s.TargetFPS())
	}
	endSession(s)
	if s.TargetFPS() != 30 {
		t.Errorf("game over fps = %d, expected 30", s.TargetFPS())
	}
}

func TestSessionBoundsUnderRandomPlay(t *testing.T) {
	s := newTestSession(&memStore{}, &fakeAudio{})
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	prevScore := 0
	for frame := 0; frame < 20000 && !s.State().GameOver; frame++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			if rng.Intn(3) == 0 {
				in.Set(a)
			}
		}
		st := s.Step(in, 1.0/60).State

		if st.Life < 0 || st.Life > 3 {
			t.Fatalf("frame %d: life %d out of range", frame, st.Life)
		}
		if st.Score < prevScore {
			t.Fatalf("frame %d: score decreased %d -> %d", frame, prevScore, st.Score)
		}
		prevScore = st.Score

		b := s.Player().Bounds()
		if b.X < 0 || b.Y < 0 || b.Right() > 800 || b.Bottom() > 600 {
			t.Fatalf("frame %d: player %+v outside the screen", frame, b)
		}
		if len(s.Enemies()) > 6 {
			t.Fatalf("frame %d: %d enemies alive", frame, len(s.Enemies()))
		}
		if s.Invincible() < 0 {
			t.Fatalf("frame %d: negative invincibility", frame)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() (int, int, int) {
		s := newTestSession(&memStore{}, &fakeAudio{})
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			if (i/90)%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			s.Step(in, 1.0/60)
		}
		return s.State().Score, len(s.Enemies()), len(s.Items())
	}

	s1, e1, i1 := run()
	s2, e2, i2 := run()
	if s1 != s2 || e1 != e2 || i1 != i2 {
		t.Errorf("runs differ: (%d,%d,%d) vs (%d,%d,%d)", s1, e1, i1, s2, e2, i2)
	}
}
