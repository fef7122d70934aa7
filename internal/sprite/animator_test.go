package sprite

import "testing"

func TestAnimatorStartsPaused(t *testing.T) {
	a := NewAnimator(8)
	if a.State() != Paused {
		t.Fatalf("state = %v, want paused", a.State())
	}
	for i := 0; i < 100; i++ {
		a.Advance(1)
	}
	if a.Frame() != 0 || a.Counter() != 0 {
		t.Fatalf("paused animator moved: frame %d counter %d", a.Frame(), a.Counter())
	}
}

func TestAnimatorAdvancesOnInterval(t *testing.T) {
	a := NewAnimator(8)
	a.Toggle()

	for i := 0; i < 2; i++ {
		a.Advance(3)
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d after 2 ticks, want 0", a.Frame())
	}
	a.Advance(3)
	if a.Frame() != 1 || a.Counter() != 0 {
		t.Fatalf("after 3 ticks: frame %d counter %d, want 1 and 0", a.Frame(), a.Counter())
	}

	for i := 3; i < 24; i++ {
		a.Advance(3)
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d after 24 ticks, want 0", a.Frame())
	}
}

func TestAnimatorPauseFreezesCounter(t *testing.T) {
	a := NewAnimator(8)
	a.SetPlaying(true)
	a.Advance(6)
	a.Advance(6)
	a.SetPlaying(false)
	a.Advance(6)
	if a.Counter() != 2 {
		t.Fatalf("counter = %d, want 2", a.Counter())
	}
	a.SetPlaying(true)
	for i := 0; i < 4; i++ {
		a.Advance(6)
	}
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
}

func TestAnimatorDoubleToggleIsIdentity(t *testing.T) {
	a := NewAnimator(8)
	a.Toggle()
	a.Advance(6)
	a.Advance(6)
	frame, counter, state := a.Frame(), a.Counter(), a.State()

	a.Toggle()
	a.Toggle()
	if a.Frame() != frame || a.Counter() != counter || a.State() != state {
		t.Fatalf("double toggle changed state: %d/%d/%v -> %d/%d/%v",
			frame, counter, state, a.Frame(), a.Counter(), a.State())
	}
}

func TestAnimatorIntervalBelowOne(t *testing.T) {
	a := NewAnimator(8)
	a.Toggle()
	a.Advance(0)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
}
