package timing

import (
	"math"
	"testing"
)

type fakePlayer bool

func (p fakePlayer) IsPlaying() bool { return bool(p) }

type fixedLevel float64

func (l fixedLevel) Level() float64 { return float64(l) }

func TestIntervalWithoutAudioIsBaseDelay(t *testing.T) {
	var c Controller
	for i := 0; i < 50; i++ {
		if got := c.Interval(nil, nil); got != 6 {
			t.Fatalf("tick %d: interval = %d, want 6", i, got)
		}
	}
	if got := c.Interval(fakePlayer(true), nil); got != 6 {
		t.Fatalf("no analyzer: interval = %d, want 6", got)
	}
	if got := c.Interval(nil, fixedLevel(0.5)); got != 6 {
		t.Fatalf("no player: interval = %d, want 6", got)
	}
}

func TestIntervalWhenPausedKeepsSmoothedLevel(t *testing.T) {
	c := Controller{smoothed: 0.1}
	if got := c.Interval(fakePlayer(false), fixedLevel(1)); got != 6 {
		t.Fatalf("interval = %d, want 6", got)
	}
	if c.Smoothed() != 0.1 {
		t.Fatalf("smoothed = %v, want 0.1 untouched", c.Smoothed())
	}
}

func TestSpeedFactorMapping(t *testing.T) {
	cases := []struct {
		level, want float64
	}{
		{-1, 0.5},
		{0, 0.5},
		{0.1, 1.25},
		{0.2, 2},
		{1, 2},
		{math.NaN(), 0.5},
	}
	for _, c := range cases {
		if got := SpeedFactor(c.level); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("SpeedFactor(%v) = %v, want %v", c.level, got, c.want)
		}
	}
}

func TestIntervalScenarios(t *testing.T) {
	if got := IntervalFor(SpeedFactor(0.2)); got != 3 {
		t.Fatalf("level 0.2: interval = %d, want 3", got)
	}
	if got := IntervalFor(SpeedFactor(0)); got != 12 {
		t.Fatalf("level 0: interval = %d, want 12", got)
	}
}

func TestIntervalAlwaysPositive(t *testing.T) {
	for i := -100; i <= 1100; i++ {
		level := float64(i) / 1000
		if got := IntervalFor(SpeedFactor(level)); got < 1 {
			t.Fatalf("level %v: interval = %d", level, got)
		}
	}
	for _, f := range []float64{0, -1, 1e-9, 1000, math.Inf(1)} {
		if got := IntervalFor(f); got < 1 {
			t.Fatalf("factor %v: interval = %d", f, got)
		}
	}
}

func TestIntervalSmoothsLevel(t *testing.T) {
	var c Controller
	c.Interval(fakePlayer(true), fixedLevel(1))
	if math.Abs(c.Smoothed()-0.12) > 1e-12 {
		t.Fatalf("smoothed = %v, want 0.12", c.Smoothed())
	}
	c.Interval(fakePlayer(true), fixedLevel(1))
	if want := 0.12 + 0.88*0.12; math.Abs(c.Smoothed()-want) > 1e-12 {
		t.Fatalf("smoothed = %v, want %v", c.Smoothed(), want)
	}

	// A loud track converges to the fastest speed.
	var got int
	for i := 0; i < 200; i++ {
		got = c.Interval(fakePlayer(true), fixedLevel(1))
	}
	if got != 3 {
		t.Fatalf("converged interval = %d, want 3", got)
	}
}

func TestMultiplier(t *testing.T) {
	cases := map[int]float64{6: 1, 3: 2, 12: 0.5, 7: 0.86, 5: 1.2, 0: 1}
	for interval, want := range cases {
		if got := Multiplier(interval); got != want {
			t.Errorf("Multiplier(%d) = %v, want %v", interval, got, want)
		}
	}
}
