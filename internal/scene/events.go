package scene

import "github.com/iburimskiy/heart-sprite/internal/sprite"

// Event is a click toggle. Events are delivered between ticks.
type Event int

const (
	ToggleAnimation Event = iota
	ToggleHearts
)

func (e Event) String() string {
	switch e {
	case ToggleAnimation:
		return "toggle-animation"
	case ToggleHearts:
		return "toggle-hearts"
	}
	return "unknown"
}

type Listener interface {
	Handle(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) Handle(e Event) { f(e) }

// Dispatcher fans an event out to its listeners in subscription order.
type Dispatcher struct {
	listeners []Listener
}

func (d *Dispatcher) Subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners {
		l.Handle(e)
	}
}

// AnimationListener flips the animator on ToggleAnimation.
func AnimationListener(a *sprite.Animator) Listener {
	return ListenerFunc(func(e Event) {
		if e == ToggleAnimation {
			a.Toggle()
		}
	})
}

// HeartsListener flips the particle effect on ToggleHearts.
func HeartsListener(s *State) Listener {
	return ListenerFunc(func(e Event) {
		if e == ToggleHearts {
			s.HeartsOn = !s.HeartsOn
		}
	})
}

// AudioControl is the part of the music player driven by clicks.
type AudioControl interface {
	IsPlaying() bool
	Loop()
	Pause()
}

// MusicListener follows the animation toggle: music loops while the animation
// is on and pauses when it is turned off. It tracks the toggle itself, starting
// from off like the animator.
type MusicListener struct {
	Audio AudioControl
	on    bool
}

func (m *MusicListener) Handle(e Event) {
	if e != ToggleAnimation {
		return
	}
	m.on = !m.on
	if m.Audio == nil {
		return
	}
	if m.on {
		if !m.Audio.IsPlaying() {
			m.Audio.Loop()
		}
	} else if m.Audio.IsPlaying() {
		m.Audio.Pause()
	}
}
