package particle

import "testing"

func TestSpawnFollowsCadence(t *testing.T) {
	s := NewSystem(NewRand(1))
	for tick := uint64(1); tick <= 120; tick++ {
		spawned := s.Spawn(tick, 800, 600)
		if want := tick%12 == 0; spawned != want {
			t.Fatalf("tick %d: spawned = %v, want %v", tick, spawned, want)
		}
	}
	if s.Len() != 10 {
		t.Fatalf("len = %d, want 10", s.Len())
	}
}

func TestSpawnRanges(t *testing.T) {
	const w, h = 1000.0, 500.0
	s := NewSystem(NewRand(42))
	s.Cadence = 1
	s.Max = 5000
	for tick := uint64(0); tick < 5000; tick++ {
		s.Spawn(tick, w, h)
	}

	s.Each(func(p Heart) {
		if p.X < 100 || p.X > 900 {
			t.Fatalf("x = %v out of [100, 900]", p.X)
		}
		if p.Y < 300 || p.Y > 475 {
			t.Fatalf("y = %v out of [300, 475]", p.Y)
		}
		if p.Size < 24 || p.Size > 80 {
			t.Fatalf("size = %v out of [24, 80]", p.Size)
		}
		if p.VX < -0.4 || p.VX > 0.4 {
			t.Fatalf("vx = %v out of [-0.4, 0.4]", p.VX)
		}
		if p.VY < -2 || p.VY > -0.6 {
			t.Fatalf("vy = %v out of [-2, -0.6]", p.VY)
		}
		if p.Life < 80 || p.Life > 200 || p.Life != p.MaxLife {
			t.Fatalf("life = %d/%d, want equal and in [80, 200]", p.Life, p.MaxLife)
		}
		if p.Color.R < 200 || p.Color.G < 80 || p.Color.G > 160 || p.Color.B < 120 || p.Color.B > 220 {
			t.Fatalf("color = %+v not pink", p.Color)
		}
	})
}

func TestPopulationNeverExceedsMax(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := NewSystem(NewRand(seed))
		s.Cadence = 1
		for tick := uint64(1); tick <= 2000; tick++ {
			s.Tick(tick, 800, 600, nil)
			if s.Len() > 120 {
				t.Fatalf("seed %d tick %d: len = %d, want <= 120", seed, tick, s.Len())
			}
		}
	}
}

func TestSpawnDropsWhenFull(t *testing.T) {
	s := NewSystem(NewRand(3))
	s.Cadence = 1
	s.Max = 4
	for tick := uint64(0); tick < 4; tick++ {
		if !s.Spawn(tick, 100, 100) {
			t.Fatalf("spawn %d refused below the cap", tick)
		}
	}
	if s.Spawn(4, 100, 100) {
		t.Fatal("spawn accepted at the cap")
	}
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
}

func TestAdvanceVisitsEveryHeartOnce(t *testing.T) {
	s := NewSystem(NewRand(1))
	// Alternate dying and surviving hearts so removals hit adjacent slots.
	for i := 0; i < 10; i++ {
		life := 1
		if i%3 == 0 {
			life = 50
		}
		s.hearts = append(s.hearts, Heart{X: float64(i), Y: 300, Size: 30, Life: life, MaxLife: 50})
	}

	seen := map[float64]int{}
	s.Advance(func(h Heart) { seen[h.X]++ })

	if len(seen) != 10 {
		t.Fatalf("drew %d distinct hearts, want 10", len(seen))
	}
	for x, n := range seen {
		if n != 1 {
			t.Fatalf("heart %v drawn %d times", x, n)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4 survivors", s.Len())
	}
	s.Each(func(h Heart) {
		if h.Life != 49 {
			t.Fatalf("survivor %v life = %d, want 49", h.X, h.Life)
		}
	})
}

func TestExpiredHeartRemovedOnNextPass(t *testing.T) {
	s := NewSystem(NewRand(1))
	s.hearts = append(s.hearts, Heart{Y: 300, Size: 30, Life: 3, MaxLife: 3})

	var lives []int
	for i := 0; i < 3; i++ {
		s.Advance(func(h Heart) { lives = append(lives, h.Life) })
	}
	if want := []int{2, 1, 0}; len(lives) != 3 || lives[0] != want[0] || lives[1] != want[1] || lives[2] != want[2] {
		t.Fatalf("lives = %v, want %v", lives, want)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestResetClears(t *testing.T) {
	s := NewSystem(NewRand(1))
	s.Spawn(0, 100, 100)
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("len = %d after reset", s.Len())
	}
}
