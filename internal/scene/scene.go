// Package scene composes the heart particles, audio timing, sprite animation
// and layout into one tick of the screen.
package scene

import (
	"image/color"

	"github.com/iburimskiy/heart-sprite/internal/config"
	"github.com/iburimskiy/heart-sprite/internal/layout"
	"github.com/iburimskiy/heart-sprite/internal/particle"
	"github.com/iburimskiy/heart-sprite/internal/sprite"
	"github.com/iburimskiy/heart-sprite/internal/timing"
)

// Frames provides the natural size of each sprite frame. ok is false for a
// frame that failed to load.
type Frames interface {
	Len() int
	Size(i int) (w, h int, ok bool)
}

// Renderer receives the draw calls of a tick in order.
type Renderer interface {
	Background(c color.RGBA)
	Heart(h particle.Heart)
	Frame(index int, dst layout.Rect)
	Text(s string, centerX, y int)
}

// Env is what the host supplies for one tick. Any collaborator may be nil.
type Env struct {
	Width, Height int

	Frames Frames
	Player timing.Player
	Level  timing.LevelSource
}

// State is the whole mutable state of the screen.
type State struct {
	Tick     uint64
	Hearts   *particle.System
	HeartsOn bool
	Anim     *sprite.Animator
	Timing   timing.Controller
	Interval int
}

// NewState returns the initial state: animation paused, hearts as given.
func NewState(rng particle.Rand, heartsOn bool) *State {
	return &State{
		Hearts:   particle.NewSystem(rng),
		HeartsOn: heartsOn,
		Anim:     sprite.NewAnimator(config.FrameCount),
		Interval: timing.BaseDelay,
	}
}

// Step runs one tick against env and emits its draw calls to r.
func (s *State) Step(env Env, r Renderer) {
	s.Tick++

	r.Background(config.BackgroundColor)

	if s.HeartsOn {
		s.Hearts.Tick(s.Tick, float64(env.Width), float64(env.Height), r.Heart)
	}

	s.Interval = s.Timing.Interval(env.Player, env.Level)

	s.Anim.Advance(s.Interval)

	if env.Frames != nil && env.Frames.Len() > 0 {
		idx := s.Anim.Frame()
		if w, h, ok := env.Frames.Size(idx); ok {
			size := layout.Fit(w, h, env.Width, env.Height)
			r.Frame(idx, layout.Centered(size, env.Width, env.Height))
		}
	}

	st := StatusLines(s.Anim.Playing(), env.Player, s.Interval)
	cx := env.Width / 2
	r.Text(st.Hint, cx, config.StatusHintY)
	r.Text(st.Music, cx, config.StatusMusicY)
	r.Text(st.Speed, cx, config.StatusSpeedY)
}
