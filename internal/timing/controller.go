// Package timing turns the music amplitude into the number of ticks between
// sprite frame advances.
package timing

import (
	"math"

	"github.com/iburimskiy/heart-sprite/internal/config"
)

const (
	BaseDelay = config.BaseFrameDelay
	Smoothing = config.LevelSmoothing
)

// Player reports whether the music is currently audible.
type Player interface {
	IsPlaying() bool
}

// LevelSource returns the instantaneous amplitude, roughly in [0, 1].
type LevelSource interface {
	Level() float64
}

// Controller keeps the smoothed level between ticks.
type Controller struct {
	smoothed float64
}

// Smoothed returns the current smoothed level.
func (c *Controller) Smoothed() float64 { return c.smoothed }

// Interval reads the level, smooths it and returns the frame advance interval.
// Without a playing player or a level source it returns BaseDelay and leaves
// the smoothed level untouched.
func (c *Controller) Interval(p Player, src LevelSource) int {
	if p == nil || src == nil || !p.IsPlaying() {
		return BaseDelay
	}
	c.smoothed = Lerp(c.smoothed, src.Level(), Smoothing)
	return IntervalFor(SpeedFactor(c.smoothed))
}

// Lerp moves from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SpeedFactor maps a level in [0, LevelCeiling] linearly onto
// [MinSpeed, MaxSpeed], clamped at both ends.
func SpeedFactor(level float64) float64 {
	if math.IsNaN(level) || level <= 0 {
		return config.MinSpeed
	}
	if level >= config.LevelCeiling {
		return config.MaxSpeed
	}
	return config.MinSpeed + level/config.LevelCeiling*(config.MaxSpeed-config.MinSpeed)
}

// IntervalFor converts a speed factor to a whole number of ticks, at least 1.
func IntervalFor(factor float64) int {
	if factor <= 0 || math.IsNaN(factor) {
		return BaseDelay
	}
	n := int(math.Round(BaseDelay / factor))
	if n < 1 {
		return 1
	}
	return n
}

// Multiplier is the displayed speed, BaseDelay/interval rounded to 2 decimals.
func Multiplier(interval int) float64 {
	if interval < 1 {
		interval = BaseDelay
	}
	return math.Round(float64(BaseDelay)/float64(interval)*100) / 100
}
