package media

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/heart-sprite/internal/config"
)

// Music is a looping background track. Nothing is heard until Loop is called.
//
// Chain: streamer -> loop -> ctrl -> volume -> tap -> speaker.
type Music struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *Tap

	started bool
	paused  bool
}

// LoadMusic decodes path and initialises the speaker for its sample rate.
func LoadMusic(path string) (*Music, error) {
	streamer, format, err := Open(path)
	if err != nil {
		return nil, err
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		_ = streamer.Close()
		return nil, err
	}

	m := newMusic(streamer)
	m.SetVolume(config.MusicVolume)
	return m, nil
}

func newMusic(streamer beep.StreamSeekCloser) *Music {
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}
	return &Music{
		streamer: streamer,
		ctrl:     ctrl,
		volume:   vol,
		tap:      NewTap(vol, config.VisualRingSize, config.LevelWindow),
		paused:   true,
	}
}

// IsPlaying reports whether the track is started and not paused.
func (m *Music) IsPlaying() bool {
	return m.started && !m.paused
}

// Loop starts the track, or resumes it after Pause.
func (m *Music) Loop() {
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
	m.paused = false

	if !m.started {
		speaker.Play(m.tap)
		m.started = true
	}
}

// Pause holds the playback position.
func (m *Music) Pause() {
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	m.paused = true
}

// SetVolume sets the gain in [0, 1]; 0 mutes.
func (m *Music) SetVolume(v float64) {
	v = clamp01(v)
	speaker.Lock()
	m.volume.Silent = v == 0
	if v > 0 {
		m.volume.Volume = math.Log2(v)
	}
	speaker.Unlock()
}

// Level is the current amplitude of what is being played.
func (m *Music) Level() float64 {
	return m.tap.Level()
}

func (m *Music) Close() error {
	speaker.Clear()
	return m.streamer.Close()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
